package models

import (
	"time"
)

// DonationDetails is the record persisted for every settled donation.
// Records are append-only and never updated.
type DonationDetails struct {
	Name      string    `firestore:"name" json:"name"`
	Email     string    `firestore:"email" json:"email"`
	Amount    float64   `firestore:"amount" json:"amount"`
	Currency  string    `firestore:"currency" json:"currency"`
	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
}
