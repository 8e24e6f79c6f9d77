package bootstrap

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/GregMSThompson/donations-backend/internal/store"
)

// InitSQLite opens the local development database and migrates it.
func InitSQLite(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := store.NewSQLDonationStore(db).Migrate(); err != nil {
		return nil, err
	}
	return db, nil
}
