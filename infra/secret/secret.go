package secret

import (
	"fmt"

	"github.com/pulumi/pulumi-gcp/sdk/v9/go/gcp"
	"github.com/pulumi/pulumi-gcp/sdk/v9/go/gcp/projects"
	"github.com/pulumi/pulumi-gcp/sdk/v9/go/gcp/secretmanager"
	"github.com/pulumi/pulumi-gcp/sdk/v9/go/gcp/serviceaccount"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi/config"
)

// Store creates the Braintree credential secrets read by the donations API.
type Store struct {
	prov    *gcp.Provider
	service *projects.Service
}

// SetupSecretManager enables the API and lets apiSA read secret versions.
func SetupSecretManager(ctx *pulumi.Context, prov *gcp.Provider, apiSA *serviceaccount.Account) (*Store, error) {
	svc, err := projects.NewService(ctx, "secretManagerService", &projects.ServiceArgs{
		Service: pulumi.String("secretmanager.googleapis.com"),
	},
		pulumi.Provider(prov),
	)
	if err != nil {
		return nil, err
	}

	projectID := config.New(ctx, "gcp").Require("project")
	_, err = projects.NewIAMMember(ctx, "secretManagerAccessor", &projects.IAMMemberArgs{
		Project: pulumi.String(projectID),
		Role:    pulumi.String("roles/secretmanager.secretAccessor"),
		Member: apiSA.Email.ApplyT(func(email string) string {
			return fmt.Sprintf("serviceAccount:%s", email)
		}).(pulumi.StringOutput),
	},
		pulumi.Provider(prov),
		pulumi.DependsOn([]pulumi.Resource{svc}),
	)
	if err != nil {
		return nil, err
	}

	return &Store{prov: prov, service: svc}, nil
}

// Add stores value as the first version of secretID and returns the secret
// id that Cloud Run env vars reference.
func (s *Store) Add(ctx *pulumi.Context, resourceName, secretID string, value pulumi.StringInput) (pulumi.StringOutput, error) {
	sec, err := secretmanager.NewSecret(ctx, resourceName, &secretmanager.SecretArgs{
		SecretId: pulumi.String(secretID),
		Labels:   pulumi.StringMap{"service": pulumi.String("donations-api")},
		Replication: &secretmanager.SecretReplicationArgs{
			Auto: &secretmanager.SecretReplicationAutoArgs{},
		},
	},
		pulumi.Provider(s.prov),
		pulumi.DependsOn([]pulumi.Resource{s.service}),
	)
	if err != nil {
		return pulumi.StringOutput{}, err
	}

	_, err = secretmanager.NewSecretVersion(ctx, resourceName+"Version", &secretmanager.SecretVersionArgs{
		Secret:     sec.ID(),
		SecretData: value,
	},
		pulumi.Provider(s.prov),
	)
	if err != nil {
		return pulumi.StringOutput{}, err
	}

	return sec.SecretId, nil
}
