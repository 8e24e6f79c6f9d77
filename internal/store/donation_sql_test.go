package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/GregMSThompson/donations-backend/internal/errs"
	"github.com/GregMSThompson/donations-backend/internal/models"
)

func newTestSQLStore(t *testing.T) *sqlDonationStore {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every pooled connection would otherwise get its own empty in-memory db
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	s := NewSQLDonationStore(db)
	require.NoError(t, s.Migrate())
	return s
}

func TestSQLDonationStoreAddAndList(t *testing.T) {
	s := newTestSQLStore(t)
	ctx := context.Background()

	base := time.Date(2025, time.January, 15, 10, 0, 0, 0, time.UTC)
	donations := []*models.DonationDetails{
		{Name: "Ana Lee", Email: "a@b.com", Amount: 25, Currency: "USD", CreatedAt: base},
		{Name: "", Email: "", Amount: 12.5, Currency: "EUR", CreatedAt: base.Add(time.Hour)},
		{Name: "Card Name", Email: "c@d.com", Amount: 5, Currency: "USD", CreatedAt: base.Add(-time.Hour)},
	}
	for _, d := range donations {
		require.NoError(t, s.Add(ctx, d))
	}

	got, err := s.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 3)

	// newest first
	assert.InDelta(t, 12.5, got[0].Amount, 1e-9)
	assert.Equal(t, "EUR", got[0].Currency)
	assert.Equal(t, "Ana Lee", got[1].Name)
	assert.Equal(t, "a@b.com", got[1].Email)
	assert.True(t, got[1].CreatedAt.Equal(base), "createdAt = %v, want %v", got[1].CreatedAt, base)
	assert.Equal(t, "Card Name", got[2].Name)
}

func TestSQLDonationStoreListLimit(t *testing.T) {
	s := newTestSQLStore(t)
	ctx := context.Background()

	base := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		require.NoError(t, s.Add(ctx, &models.DonationDetails{
			Amount:    float64(i),
			Currency:  "USD",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	got, err := s.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.InDelta(t, 4, got[0].Amount, 1e-9)
	assert.InDelta(t, 3, got[1].Amount, 1e-9)
}

func TestSQLDonationStoreWrapsErrors(t *testing.T) {
	s := newTestSQLStore(t)
	sqlDB, err := s.db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	err = s.Add(context.Background(), &models.DonationDetails{Currency: "USD"})

	var dbErr *errs.DatabaseError
	require.True(t, errors.As(err, &dbErr), "expected DatabaseError, got %T", err)
	assert.Equal(t, "create", dbErr.Operation)
}
