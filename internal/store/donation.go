package store

import (
	"context"

	"cloud.google.com/go/firestore"

	"github.com/GregMSThompson/donations-backend/internal/errs"
	"github.com/GregMSThompson/donations-backend/internal/models"
)

const DefaultDonationsCollection = "donations"

type donationStore struct {
	Client     *firestore.Client
	Collection *firestore.CollectionRef
}

func NewDonationStore(client *firestore.Client, collection string) *donationStore {
	if collection == "" {
		collection = DefaultDonationsCollection
	}
	return &donationStore{
		Client:     client,
		Collection: client.Collection(collection),
	}
}

// Add appends the donation as a new document with a generated ID.
func (s *donationStore) Add(ctx context.Context, donation *models.DonationDetails) error {
	if _, _, err := s.Collection.Add(ctx, donation); err != nil {
		return errs.NewDatabaseError("create", "failed to add donation", err)
	}
	return nil
}

func (s *donationStore) List(ctx context.Context, limit int) ([]*models.DonationDetails, error) {
	docs, err := s.Collection.OrderBy("createdAt", firestore.Desc).Limit(limit).Documents(ctx).GetAll()
	if err != nil {
		return nil, errs.NewDatabaseError("read", "failed to list donations", err)
	}

	donations := make([]*models.DonationDetails, 0, len(docs))
	for _, d := range docs {
		var donation models.DonationDetails
		if err := d.DataTo(&donation); err != nil {
			return nil, errs.NewDatabaseError("read", "failed to parse donation data", err)
		}
		donations = append(donations, &donation)
	}
	return donations, nil
}
