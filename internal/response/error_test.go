package response

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GregMSThompson/donations-backend/internal/errs"
	"github.com/GregMSThompson/donations-backend/pkg/helpers"
	"github.com/GregMSThompson/donations-backend/pkg/logger"
)

func newTestHandler() *responseHandler {
	return New(logger.New("", logger.NewTestHandler))
}

func TestHandleErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"not found", errs.NewNotFoundError("missing"), http.StatusNotFound, "not_found"},
		{"validation", errs.NewValidationError("bad"), http.StatusBadRequest, "invalid_input"},
		{"unauthorized", errs.NewUnauthorizedError("no token"), http.StatusUnauthorized, "unauthorized"},
		{"forbidden", errs.NewForbiddenError("not admin"), http.StatusForbidden, "forbidden"},
		{"database", errs.NewDatabaseError("read", "failed", errors.New("x")), http.StatusInternalServerError, "internal_error"},
		{"external transient", errs.NewExternalServiceError("braintree", "down", true, nil), http.StatusServiceUnavailable, "service_unavailable"},
		{"external permanent", errs.NewExternalServiceError("braintree", "bad", false, nil), http.StatusBadGateway, "service_unavailable"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}

	h := newTestHandler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(helpers.TestCtx())
			rr := httptest.NewRecorder()

			h.HandleError(rr, req, tt.err)

			if rr.Code != tt.status {
				t.Fatalf("status = %d, want %d", rr.Code, tt.status)
			}
			var body ErrorResponse
			if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid json body: %v", err)
			}
			if body.Code != tt.code {
				t.Fatalf("code = %q, want %q", body.Code, tt.code)
			}
		})
	}
}

func TestWriteErrors(t *testing.T) {
	h := newTestHandler()
	req := httptest.NewRequest(http.MethodPost, "/", nil).WithContext(helpers.TestCtx())
	rr := httptest.NewRecorder()

	h.WriteErrors(rr, req, http.StatusInternalServerError, []string{"nonce is required"})

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content type = %q", ct)
	}
	var body struct {
		Errors []string `json:"errors"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	if len(body.Errors) != 1 || body.Errors[0] != "nonce is required" {
		t.Fatalf("unexpected errors: %+v", body.Errors)
	}
}

func TestWriteSuccessEnvelope(t *testing.T) {
	h := New(slog.New(slog.NewTextHandler(testDiscard{}, nil)))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	h.WriteSuccess(rr, req, http.StatusOK, map[string]string{"status": "ok"})

	var body struct {
		Success bool              `json:"success"`
		Data    map[string]string `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	if !body.Success || body.Data["status"] != "ok" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

type testDiscard struct{}

func (testDiscard) Write(p []byte) (int, error) { return len(p), nil }
