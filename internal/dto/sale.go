package dto

import (
	"github.com/GregMSThompson/donations-backend/internal/models"
)

// SaleRequest is what the service asks the gateway to charge.
type SaleRequest struct {
	Amount              string // fixed two-decimal string, e.g. "25.00"
	PaymentMethodNonce  string
	SubmitForSettlement bool
}

// GatewayError is one entry of the gateway's deep error list.
type GatewayError struct {
	Code      string `json:"code"`
	Attribute string `json:"attribute,omitempty"`
	Message   string `json:"message"`
}

// SaleResult mirrors the gateway response for a sale. When Success is false,
// Errors carries every nested validation or processor error.
type SaleResult struct {
	Success     bool                       `json:"success"`
	Transaction *models.GatewayTransaction `json:"transaction,omitempty"`
	Message     string                     `json:"message,omitempty"`
	Errors      []GatewayError             `json:"errors,omitempty"`
}

type GatewayEnvironment string

const (
	GatewaySandbox    GatewayEnvironment = "sandbox"
	GatewayProduction GatewayEnvironment = "production"
)
