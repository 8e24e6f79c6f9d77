package bootstrap

import (
	"context"
	"strings"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"

	"github.com/GregMSThompson/donations-backend/internal/errs"
)

// ResolveSecret returns value when set, otherwise the payload of the named
// Secret Manager version (projects/*/secrets/*/versions/*).
func ResolveSecret(ctx context.Context, value, secretName string) (string, error) {
	if value != "" || secretName == "" {
		return value, nil
	}

	client, err := secretmanager.NewClient(ctx)
	if err != nil {
		return "", errs.NewExternalServiceError("secretmanager", "failed to create secret manager client", false, err)
	}
	defer client.Close()

	resp, err := client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{
		Name: secretName,
	})
	if err != nil {
		return "", errs.NewExternalServiceError("secretmanager", "failed to access secret "+secretName, false, err)
	}
	return strings.TrimSpace(string(resp.GetPayload().GetData())), nil
}
