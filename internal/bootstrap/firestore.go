package bootstrap

import (
	"context"

	"cloud.google.com/go/firestore"
)

// InitFirestore falls back to project detection from the runtime
// credentials when no project ID is configured.
func InitFirestore(ctx context.Context, projectID string) (*firestore.Client, error) {
	if projectID == "" {
		projectID = firestore.DetectProjectID
	}
	return firestore.NewClient(ctx, projectID)
}
