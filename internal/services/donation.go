package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/GregMSThompson/donations-backend/internal/dto"
	"github.com/GregMSThompson/donations-backend/internal/errs"
	"github.com/GregMSThompson/donations-backend/internal/models"
	"github.com/GregMSThompson/donations-backend/pkg/logger"
)

type paymentGateway interface {
	Sale(ctx context.Context, req dto.SaleRequest) (*dto.SaleResult, error)
}

// DonationStore is implemented by the Firestore and SQL donation stores.
type DonationStore interface {
	Add(ctx context.Context, donation *models.DonationDetails) error
	List(ctx context.Context, limit int) ([]*models.DonationDetails, error)
}

const (
	DefaultListLimit = 50
	MaxListLimit     = 500
)

type donationService struct {
	Gateway paymentGateway
	Store   DonationStore
}

func NewDonationService(gateway paymentGateway, store DonationStore) *donationService {
	return &donationService{
		Gateway: gateway,
		Store:   store,
	}
}

// Donate charges the nonce and, on a successful sale, writes the derived
// donation record before returning. A returned error means the sale was
// never attempted or the gateway could not be reached; a declined sale is
// reported through the outcome instead.
func (s *donationService) Donate(ctx context.Context, req dto.DonationRequest) (*dto.DonationOutcome, error) {
	log := logger.FromContext(ctx)

	sale, err := NewSaleRequest(req)
	if err != nil {
		return nil, err
	}

	result, err := s.Gateway.Sale(ctx, sale)
	if err != nil {
		log.Error("gateway sale failed", "error", err)
		var ext *errs.ExternalServiceError
		if errors.As(err, &ext) {
			return nil, err
		}
		return nil, errs.NewExternalServiceError("braintree", "sale request failed", false, err)
	}

	if logger.IsDebugEnabled(ctx) && result.Transaction != nil {
		log.Debug("sale result", "transaction_id", result.Transaction.ID, "status", result.Transaction.Status)
	}

	outcome := &dto.DonationOutcome{Sale: result}
	if !result.Success {
		log.Warn("sale declined", "message", result.Message, "error_count", len(result.Errors))
		return outcome, nil
	}

	record := BuildDonationRecord(result.Transaction)
	outcome.Record = &record

	txID := ""
	if result.Transaction != nil {
		txID = result.Transaction.ID
	}

	// the donor is already charged; a failed write does not fail the request
	if err := s.Store.Add(ctx, &record); err != nil {
		outcome.PersistErr = err
		log.Error("failed to persist donation record", "transaction_id", txID, "error", err)
		return outcome, nil
	}

	log.Info("donation recorded", "transaction_id", txID, "amount", record.Amount, "currency", record.Currency)
	return outcome, nil
}

// NewSaleRequest validates the inbound donation and builds a settle-now sale.
func NewSaleRequest(req dto.DonationRequest) (dto.SaleRequest, error) {
	if math.IsNaN(req.DonationAmount) || math.IsInf(req.DonationAmount, 0) {
		return dto.SaleRequest{}, errs.NewValidationError("donationAmount must be a finite number")
	}
	if req.DonationAmount < 0 {
		return dto.SaleRequest{}, errs.NewValidationError("donationAmount must not be negative")
	}
	if strings.TrimSpace(req.Nonce) == "" {
		return dto.SaleRequest{}, errs.NewValidationError("nonce is required")
	}

	return dto.SaleRequest{
		Amount:              decimal.NewFromFloatWithExponent(req.DonationAmount, -2).StringFixed(2),
		PaymentMethodNonce:  req.Nonce,
		SubmitForSettlement: true,
	}, nil
}

// ListDonations returns the most recent donations, newest first.
// A non-positive limit uses DefaultListLimit.
func (s *donationService) ListDonations(ctx context.Context, limit int) ([]*models.DonationDetails, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		return nil, errs.NewValidationError(fmt.Sprintf("limit must be at most %d", MaxListLimit))
	}
	return s.Store.List(ctx, limit)
}
