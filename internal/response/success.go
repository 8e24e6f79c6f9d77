package response

import (
	"encoding/json"
	"net/http"

	"github.com/GregMSThompson/donations-backend/pkg/logger"
)

type SuccessEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
}

func (h *responseHandler) WriteSuccess(w http.ResponseWriter, r *http.Request, status int, data any) {
	h.WriteJSON(w, r, status, SuccessEnvelope{
		Success: true,
		Data:    data,
	})
}

// WriteJSON writes body as-is, without the success envelope.
func (h *responseHandler) WriteJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		// Last-ditch logging; can't return an error now
		logger.FromContext(r.Context()).Error("failed to encode response", "error", err, "status", status)
	}
}
