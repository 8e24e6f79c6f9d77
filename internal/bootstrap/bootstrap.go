package bootstrap

import (
	"context"
	"log/slog"

	"cloud.google.com/go/firestore"
	"firebase.google.com/go/v4/auth"
	"gorm.io/gorm"

	braintreeclient "github.com/GregMSThompson/donations-backend/internal/client/braintree"
	"github.com/GregMSThompson/donations-backend/internal/config"
	"github.com/GregMSThompson/donations-backend/pkg/logger"
)

type Bootstrap struct {
	Log              *slog.Logger
	Firestore        *firestore.Client
	SQL              *gorm.DB
	Firebase         *auth.Client
	BraintreeAdapter *braintreeclient.Adapter
}

func Run(cfg *config.Config) (*Bootstrap, error) {
	var err error
	applicationCtx := context.Background()
	bs := new(Bootstrap)

	bs.Log = logger.New(cfg.LogLevel, logger.NewCloudRunHandler)

	switch cfg.StoreDriver {
	case config.StoreSQLite:
		bs.SQL, err = InitSQLite(cfg.SQLitePath)
	default:
		bs.Firestore, err = InitFirestore(applicationCtx, cfg.ProjectID)
	}
	if err != nil {
		return bs, err
	}

	bs.Firebase, err = InitFirebase(applicationCtx, cfg.ProjectID)
	if err != nil {
		return bs, err
	}

	privateKey, err := ResolveSecret(applicationCtx, cfg.Braintree.PrivateKey, cfg.Braintree.PrivateKeySecret)
	if err != nil {
		return bs, err
	}
	bs.BraintreeAdapter = braintreeclient.NewAdapter(
		cfg.Braintree.Environment,
		cfg.Braintree.MerchantID,
		cfg.Braintree.PublicKey,
		privateKey,
	)

	return bs, nil
}

func (bs *Bootstrap) Close() {
	if bs.Firestore != nil {
		if err := bs.Firestore.Close(); err != nil {
			bs.Log.Warn("failed to close firestore client", "error", err)
		}
	}
	if bs.SQL != nil {
		if sqlDB, err := bs.SQL.DB(); err == nil {
			sqlDB.Close()
		}
	}
}
