package main

import (
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"

	"github.com/GregMSThompson/donations-backend/infra/cloudrun"
	"github.com/GregMSThompson/donations-backend/infra/docker"
	"github.com/GregMSThompson/donations-backend/infra/firestore"
	"github.com/GregMSThompson/donations-backend/infra/identity"
	"github.com/GregMSThompson/donations-backend/infra/provider"
)

func main() {
	pulumi.Run(func(ctx *pulumi.Context) error {
		// set default provider with the correct project
		prov, err := provider.SetupDefaultProvider(ctx)
		if err != nil {
			return err
		}

		// identity platform backs the firebase admin tokens for /api/donations
		ident, err := identity.SetupIdentity(ctx, prov)
		if err != nil {
			return err
		}

		// enable firestore and create a database for the donations collection
		err = firestore.SetupFirestore(ctx, prov)
		if err != nil {
			return err
		}

		// create docker repo
		repo, err := docker.CreateCloudrunRepo(ctx, prov)
		if err != nil {
			return err
		}

		_, err = cloudrun.SetupCloudRun(ctx, prov, ident, repo)
		return err
	})
}
