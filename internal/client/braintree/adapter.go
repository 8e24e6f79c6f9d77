package braintreeclient

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/braintree-go/braintree-go"
	"github.com/shopspring/decimal"

	"github.com/GregMSThompson/donations-backend/internal/dto"
	"github.com/GregMSThompson/donations-backend/internal/errs"
	"github.com/GregMSThompson/donations-backend/internal/models"
	"github.com/GregMSThompson/donations-backend/pkg/helpers"
)

const serviceName = "braintree"

type Adapter struct {
	gateway *braintree.Braintree
}

func NewAdapter(env dto.GatewayEnvironment, merchantID, publicKey, privateKey string) *Adapter {
	return &Adapter{
		gateway: braintree.New(toBraintreeEnv(env), merchantID, publicKey, privateKey),
	}
}

// Sale creates a sale transaction. Declines and validation failures come
// back as an unsuccessful SaleResult; only transport or decoding problems
// are returned as errors.
func (a *Adapter) Sale(ctx context.Context, req dto.SaleRequest) (*dto.SaleResult, error) {
	amount, err := toBraintreeAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	tx, err := a.gateway.Transaction().Create(ctx, &braintree.TransactionRequest{
		Type:               "sale",
		Amount:             amount,
		PaymentMethodNonce: req.PaymentMethodNonce,
		Options: &braintree.TransactionOptions{
			SubmitForSettlement: req.SubmitForSettlement,
		},
	})
	if err != nil {
		var btErr *braintree.BraintreeError
		if errors.As(err, &btErr) {
			return failedResult(btErr), nil
		}
		return nil, errs.NewExternalServiceError(serviceName, "transaction creation failed", true, err)
	}

	return toSaleResult(tx), nil
}

func toBraintreeEnv(env dto.GatewayEnvironment) braintree.Environment {
	if env == dto.GatewayProduction {
		return braintree.Production
	}
	return braintree.Sandbox
}

// toBraintreeAmount converts a two-decimal string into braintree's
// unscaled/scale representation, e.g. "50.00" -> NewDecimal(5000, 2).
func toBraintreeAmount(amount string) (*braintree.Decimal, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, errs.NewValidationError(fmt.Sprintf("invalid amount format: %q", amount))
	}
	cents := d.Round(2).Mul(decimal.NewFromInt(100)).IntPart()
	return braintree.NewDecimal(cents, 2), nil
}

func toSaleResult(tx *braintree.Transaction) *dto.SaleResult {
	result := &dto.SaleResult{
		Success:     true,
		Transaction: toTransaction(tx),
	}

	switch tx.Status {
	case braintree.TransactionStatusProcessorDeclined,
		braintree.TransactionStatusGatewayRejected,
		braintree.TransactionStatusFailed:
		result.Success = false
		result.Message = tx.ProcessorResponseText
		if result.Message == "" {
			result.Message = "transaction " + string(tx.Status)
		}
		result.Errors = []dto.GatewayError{{
			Code:      string(tx.Status),
			Attribute: "status",
			Message:   result.Message,
		}}
	}

	return result
}

// failedResult flattens an api-error-response. A processor decline reported
// this way carries the declined transaction and no field errors.
func failedResult(btErr *braintree.BraintreeError) *dto.SaleResult {
	result := &dto.SaleResult{
		Success:     false,
		Message:     btErr.ErrorMessage,
		Transaction: toTransaction(btErr.Transaction),
	}
	for _, ve := range btErr.All() {
		result.Errors = append(result.Errors, dto.GatewayError{
			Code:      ve.Code,
			Attribute: toSnakeCase(ve.Attribute),
			Message:   ve.Message,
		})
	}
	if len(result.Errors) > 0 {
		return result
	}

	if tx := btErr.Transaction; tx != nil && tx.Status != "" {
		result.Errors = []dto.GatewayError{{
			Code:      string(tx.Status),
			Attribute: "status",
			Message:   btErr.Error(),
		}}
		return result
	}
	result.Errors = []dto.GatewayError{{Message: btErr.Error()}}
	return result
}

// toSnakeCase restores the gateway's attribute names, which the SDK
// camel-cases (PaymentMethodNonce -> payment_method_nonce).
func toSnakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// formatAmount renders a gateway decimal at its own scale, e.g. 0.50.
func formatAmount(d *braintree.Decimal) string {
	places := int32(d.Scale)
	if places < 0 {
		places = 0
	}
	return decimal.New(d.Unscaled, -int32(d.Scale)).StringFixed(places)
}

func toTransaction(tx *braintree.Transaction) *models.GatewayTransaction {
	if tx == nil {
		return nil
	}

	out := &models.GatewayTransaction{
		ID:              tx.Id,
		Status:          string(tx.Status),
		Type:            tx.Type,
		CurrencyISOCode: tx.CurrencyISOCode,
		CreatedAt:       helpers.Value(tx.CreatedAt),
	}
	if tx.Amount != nil {
		out.Amount = formatAmount(tx.Amount)
	}
	if c := tx.Customer; c != nil {
		out.Customer = &models.Customer{
			FirstName: c.FirstName,
			LastName:  c.LastName,
			Email:     c.Email,
		}
	}
	if p := tx.PayPalDetails; p != nil {
		out.PayPalAccount = &models.PayPalAccount{
			PayerFirstName: p.PayerFirstName,
			PayerLastName:  p.PayerLastName,
			PayerEmail:     p.PayerEmail,
		}
	}
	if cc := tx.CreditCard; cc != nil {
		out.CreditCard = &models.CreditCard{
			CardholderName: cc.CardholderName,
		}
	}
	return out
}
