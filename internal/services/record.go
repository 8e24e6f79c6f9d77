package services

import (
	"github.com/shopspring/decimal"

	"github.com/GregMSThompson/donations-backend/internal/models"
)

// BuildDonationRecord derives the persisted donation record from a settled
// gateway transaction. It never fails: missing identity fields resolve to
// empty strings and an unparsable amount resolves to zero.
func BuildDonationRecord(tx *models.GatewayTransaction) models.DonationDetails {
	if tx == nil {
		return models.DonationDetails{}
	}

	return models.DonationDetails{
		Name:      resolveName(tx),
		Email:     resolveEmail(tx),
		Amount:    parseAmount(tx.Amount),
		Currency:  tx.CurrencyISOCode,
		CreatedAt: tx.CreatedAt,
	}
}

// resolveName picks the donor name from ordered tiers:
// cardholder name, then "first last" when both halves resolve, then "".
func resolveName(tx *models.GatewayTransaction) string {
	if name := cardholderTier(tx); name != "" {
		return name
	}
	return fullNameTier(tx)
}

func cardholderTier(tx *models.GatewayTransaction) string {
	if tx.CreditCard == nil {
		return ""
	}
	return tx.CreditCard.CardholderName
}

// A lone first or last name is not a name.
func fullNameTier(tx *models.GatewayTransaction) string {
	first := firstNonEmpty(customerField(tx, func(c *models.Customer) string { return c.FirstName }),
		payerField(tx, func(p *models.PayPalAccount) string { return p.PayerFirstName }))
	last := firstNonEmpty(customerField(tx, func(c *models.Customer) string { return c.LastName }),
		payerField(tx, func(p *models.PayPalAccount) string { return p.PayerLastName }))

	if first == "" || last == "" {
		return ""
	}
	return first + " " + last
}

func resolveEmail(tx *models.GatewayTransaction) string {
	return firstNonEmpty(
		customerField(tx, func(c *models.Customer) string { return c.Email }),
		payerField(tx, func(p *models.PayPalAccount) string { return p.PayerEmail }),
	)
}

func customerField(tx *models.GatewayTransaction, get func(*models.Customer) string) string {
	if tx.Customer == nil {
		return ""
	}
	return get(tx.Customer)
}

func payerField(tx *models.GatewayTransaction, get func(*models.PayPalAccount) string) string {
	if tx.PayPalAccount == nil {
		return ""
	}
	return get(tx.PayPalAccount)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func parseAmount(amount string) float64 {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return 0
	}
	return d.InexactFloat64()
}
