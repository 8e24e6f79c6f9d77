package dto

import (
	"github.com/GregMSThompson/donations-backend/internal/models"
)

// DonationRequest is the inbound body of the donation endpoint.
type DonationRequest struct {
	DonationAmount float64 `json:"donationAmount"`
	Nonce          string  `json:"nonce"`
}

// DonationOutcome is the result of one donation attempt.
// Record is nil unless the sale succeeded. PersistErr is set when the sale
// succeeded but the record could not be written.
type DonationOutcome struct {
	Sale       *SaleResult
	Record     *models.DonationDetails
	PersistErr error
}

// Recorded reports whether a donation record was written.
func (o *DonationOutcome) Recorded() bool {
	return o.Record != nil && o.PersistErr == nil
}
