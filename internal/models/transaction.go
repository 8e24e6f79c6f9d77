package models

import (
	"time"
)

// GatewayTransaction is the subset of a Braintree transaction the service reads.
type GatewayTransaction struct {
	ID              string         `json:"id"`
	Status          string         `json:"status"`
	Type            string         `json:"type"`
	Amount          string         `json:"amount"` // decimal string as reported by the gateway
	CurrencyISOCode string         `json:"currencyIsoCode"`
	CreatedAt       time.Time      `json:"createdAt"`
	Customer        *Customer      `json:"customer,omitempty"`
	PayPalAccount   *PayPalAccount `json:"paypalAccount,omitempty"`
	CreditCard      *CreditCard    `json:"creditCard,omitempty"`
}

type Customer struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty"`
}

type PayPalAccount struct {
	PayerFirstName string `json:"payerFirstName,omitempty"`
	PayerLastName  string `json:"payerLastName,omitempty"`
	PayerEmail     string `json:"payerEmail,omitempty"`
}

type CreditCard struct {
	CardholderName string `json:"cardholderName,omitempty"`
}
