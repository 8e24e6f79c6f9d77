package firestore

import (
	"github.com/pulumi/pulumi-gcp/sdk/v9/go/gcp"
	"github.com/pulumi/pulumi-gcp/sdk/v9/go/gcp/firestore"
	"github.com/pulumi/pulumi-gcp/sdk/v9/go/gcp/projects"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi/config"
)

func SetupFirestore(ctx *pulumi.Context, prov *gcp.Provider) error {
	svc, err := enableFireStore(ctx, prov)
	if err != nil {
		return err
	}

	db, err := createDatabase(ctx, prov, svc)
	if err != nil {
		return err
	}

	return createDonationsIndex(ctx, prov, db)
}

func enableFireStore(ctx *pulumi.Context, prov *gcp.Provider) (*projects.Service, error) {
	return projects.NewService(ctx, "firestore", &projects.ServiceArgs{
		Service: pulumi.String("firestore.googleapis.com"),
	},
		pulumi.Provider(prov),
	)
}

func createDatabase(ctx *pulumi.Context, prov *gcp.Provider, res ...pulumi.Resource) (*firestore.Database, error) {
	gcpCfg := config.New(ctx, "gcp")
	projectID := gcpCfg.Require("project")
	region := gcpCfg.Require("region")

	return firestore.NewDatabase(ctx, "firestoreDatabase", &firestore.DatabaseArgs{
		Name:       pulumi.String("(default)"),
		Project:    pulumi.String(projectID),
		LocationId: pulumi.String(region),
		Type:       pulumi.String("FIRESTORE_NATIVE"),
	},
		pulumi.Provider(prov),
		pulumi.DependsOn(res),
	)
}

// single-field descending index on createdAt serves the admin listing
func createDonationsIndex(ctx *pulumi.Context, prov *gcp.Provider, db *firestore.Database) error {
	_, err := firestore.NewField(ctx, "donationsCreatedAt", &firestore.FieldArgs{
		Database:   db.Name,
		Collection: pulumi.String("donations"),
		Field:      pulumi.String("createdAt"),
		IndexConfig: &firestore.FieldIndexConfigArgs{
			Indexes: firestore.FieldIndexConfigIndexArray{
				&firestore.FieldIndexConfigIndexArgs{
					Order:      pulumi.String("DESCENDING"),
					QueryScope: pulumi.String("COLLECTION"),
				},
			},
		},
	},
		pulumi.Provider(prov),
	)
	return err
}
