package store

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/GregMSThompson/donations-backend/internal/errs"
	"github.com/GregMSThompson/donations-backend/internal/models"
)

// donationRow is the SQL shape of a donation record.
type donationRow struct {
	ID        uint `gorm:"primaryKey"`
	Name      string
	Email     string
	Amount    float64
	Currency  string    `gorm:"size:3"`
	CreatedAt time.Time `gorm:"index;autoCreateTime:false"`
}

func (donationRow) TableName() string { return DefaultDonationsCollection }

type sqlDonationStore struct {
	db *gorm.DB
}

// NewSQLDonationStore is the GORM backed store used for local development.
func NewSQLDonationStore(db *gorm.DB) *sqlDonationStore {
	return &sqlDonationStore{db: db}
}

func (s *sqlDonationStore) Migrate() error {
	if err := s.db.AutoMigrate(&donationRow{}); err != nil {
		return errs.NewDatabaseError("migrate", "failed to migrate donations table", err)
	}
	return nil
}

func (s *sqlDonationStore) Add(ctx context.Context, donation *models.DonationDetails) error {
	row := donationRow{
		Name:      donation.Name,
		Email:     donation.Email,
		Amount:    donation.Amount,
		Currency:  donation.Currency,
		CreatedAt: donation.CreatedAt,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return errs.NewDatabaseError("create", "failed to add donation", err)
	}
	return nil
}

func (s *sqlDonationStore) List(ctx context.Context, limit int) ([]*models.DonationDetails, error) {
	var rows []donationRow
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, errs.NewDatabaseError("read", "failed to list donations", err)
	}

	donations := make([]*models.DonationDetails, 0, len(rows))
	for _, r := range rows {
		donations = append(donations, &models.DonationDetails{
			Name:      r.Name,
			Email:     r.Email,
			Amount:    r.Amount,
			Currency:  r.Currency,
			CreatedAt: r.CreatedAt,
		})
	}
	return donations, nil
}
