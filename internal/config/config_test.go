package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GregMSThompson/donations-backend/internal/dto"
)

func TestNewDefaults(t *testing.T) {
	t.Chdir(t.TempDir()) // no .env

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, StoreFirestore, cfg.StoreDriver)
	assert.Equal(t, "donations", cfg.DonationsCollection)
	assert.Equal(t, dto.GatewaySandbox, cfg.Braintree.Environment)
	assert.Empty(t, cfg.Braintree.PrivateKeySecret)
}

func TestNewFromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PROJECTID", "donations-prod")
	t.Setenv("LOGLEVEL", "debug")
	t.Setenv("STOREDRIVER", "sqlite")
	t.Setenv("SQLITEPATH", "/tmp/d.db")
	t.Setenv("BRAINTREE_ENVIRONMENT", "production")
	t.Setenv("BRAINTREE_MERCHANT_ID", "merchant")
	t.Setenv("BRAINTREE_PUBLIC_KEY", "public")
	t.Setenv("BRAINTREE_PRIVATE_KEY_SECRET", "projects/p/secrets/bt/versions/latest")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "donations-prod", cfg.ProjectID)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, StoreSQLite, cfg.StoreDriver)
	assert.Equal(t, "/tmp/d.db", cfg.SQLitePath)
	assert.Equal(t, dto.GatewayProduction, cfg.Braintree.Environment)
	assert.Equal(t, "merchant", cfg.Braintree.MerchantID)
	assert.Equal(t, "public", cfg.Braintree.PublicKey)
	assert.Equal(t, "projects/p/secrets/bt/versions/latest", cfg.Braintree.PrivateKeySecret)
}

func TestUnknownGatewayEnvironmentFallsBackToSandbox(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("BRAINTREE_ENVIRONMENT", "qa")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, dto.GatewaySandbox, cfg.Braintree.Environment)
}
