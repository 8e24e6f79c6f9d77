package store

import (
	"context"
	"os"
	"testing"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GregMSThompson/donations-backend/internal/models"
)

func TestDonationStoreWithEmulator(t *testing.T) {
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}

	ctx := context.Background()
	client, err := firestore.NewClient(ctx, "test-project")
	require.NoError(t, err)
	defer client.Close()

	collection := "donations_test_" + time.Now().Format("20060102150405.000000000")
	store := NewDonationStore(client, collection)

	base := time.Date(2025, time.January, 15, 10, 0, 0, 0, time.UTC)
	donations := []*models.DonationDetails{
		{Name: "Ana Lee", Email: "a@b.com", Amount: 25, Currency: "USD", CreatedAt: base},
		{Name: "Card Name", Email: "c@d.com", Amount: 12.5, Currency: "USD", CreatedAt: base.Add(time.Hour)},
	}
	for _, d := range donations {
		require.NoError(t, store.Add(ctx, d))
	}

	docs, err := client.Collection(collection).Documents(ctx).GetAll()
	require.NoError(t, err)
	assert.Len(t, docs, 2)

	results, err := store.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Card Name", results[0].Name)
	assert.Equal(t, 12.5, results[0].Amount)
}
