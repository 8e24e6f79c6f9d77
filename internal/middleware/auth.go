package middleware

import (
	"context"
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"

	"github.com/GregMSThompson/donations-backend/internal/errs"
	"github.com/GregMSThompson/donations-backend/internal/response"
	"github.com/GregMSThompson/donations-backend/pkg/logger"
)

// AdminClaim is the Firebase custom claim that grants access to donor data.
const AdminClaim = "admin"

type tokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

type Middleware struct {
	AuthClient      tokenVerifier
	ResponseHandler response.ResponseHandler
}

func NewMiddleware(client tokenVerifier, rh response.ResponseHandler) *Middleware {
	return &Middleware{AuthClient: client, ResponseHandler: rh}
}

// context key
type contextKey string

const UIDKey contextKey = "uid"

// RequireAdmin verifies the Firebase ID token and requires the admin claim.
func (m *Middleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			m.ResponseHandler.HandleError(w, r, errs.NewUnauthorizedError("missing Authorization header"))
			return
		}

		parts := strings.Fields(header)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			m.ResponseHandler.HandleError(w, r, errs.NewUnauthorizedError("invalid Authorization header"))
			return
		}

		token, err := m.AuthClient.VerifyIDToken(r.Context(), parts[1])
		if err != nil {
			m.ResponseHandler.HandleError(w, r, errs.NewUnauthorizedError("invalid or expired token"))
			return
		}

		if isAdmin, _ := token.Claims[AdminClaim].(bool); !isAdmin {
			m.ResponseHandler.HandleError(w, r, errs.NewForbiddenError("admin access required"))
			return
		}

		_, ctx := logger.With(r.Context(), "uid", token.UID)
		ctx = context.WithValue(ctx, UIDKey, token.UID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Helper to extract UID
func UID(ctx context.Context) string {
	uid, _ := ctx.Value(UIDKey).(string)
	return uid
}
