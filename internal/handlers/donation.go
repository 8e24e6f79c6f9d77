package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/donations-backend/internal/dto"
	"github.com/GregMSThompson/donations-backend/internal/errs"
	"github.com/GregMSThompson/donations-backend/internal/middleware"
	"github.com/GregMSThompson/donations-backend/internal/models"
	"github.com/GregMSThompson/donations-backend/internal/response"
	"github.com/GregMSThompson/donations-backend/pkg/logger"
)

type DonationService interface {
	Donate(ctx context.Context, req dto.DonationRequest) (*dto.DonationOutcome, error)
	ListDonations(ctx context.Context, limit int) ([]*models.DonationDetails, error)
}

type donationHandlers struct {
	ResponseHandler response.ResponseHandler
	DonationSvc     DonationService
}

func NewDonationHandlers(deps *Deps) *donationHandlers {
	return &donationHandlers{
		ResponseHandler: deps.ResponseHandler,
		DonationSvc:     deps.DonationSvc,
	}
}

func (h *donationHandlers) DonationRoutes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.Donate)
	return r
}

// AdminRoutes must be mounted behind the admin auth middleware.
func (h *donationHandlers) AdminRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListDonations)
	return r
}

// Donate answers 200 with the gateway payload on a successful sale and 500
// with an "errors" array otherwise.
func (h *donationHandlers) Donate(w http.ResponseWriter, r *http.Request) {
	var body dto.DonationRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.writeFailure(w, r, err)
		return
	}

	outcome, err := h.DonationSvc.Donate(r.Context(), body)
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}

	if !outcome.Sale.Success {
		h.ResponseHandler.WriteErrors(w, r, http.StatusInternalServerError, outcome.Sale.Errors)
		return
	}

	if !outcome.Recorded() {
		logger.FromContext(r.Context()).Warn("donation charged but not recorded")
	}
	h.ResponseHandler.WriteJSON(w, r, http.StatusOK, outcome.Sale)
}

func (h *donationHandlers) writeFailure(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromContext(r.Context()).Warn("donation request failed", "error", err)
	h.ResponseHandler.WriteErrors(w, r, http.StatusInternalServerError, []string{err.Error()})
}

func (h *donationHandlers) ListDonations(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			h.ResponseHandler.HandleError(w, r, errs.NewValidationError("limit must be an integer"))
			return
		}
		limit = n
	}

	uid := middleware.UID(r.Context())
	donations, err := h.DonationSvc.ListDonations(r.Context(), limit)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	logger.FromContext(r.Context()).Info("donations listed", "admin_uid", uid, "count", len(donations))

	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, donations)
}
