package handlers

import (
	"log/slog"

	"github.com/GregMSThompson/donations-backend/internal/response"
)

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	DonationSvc     DonationService
}
