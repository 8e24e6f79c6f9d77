package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/GregMSThompson/donations-backend/internal/handlers"
	"github.com/GregMSThompson/donations-backend/internal/middleware"
)

type Options struct {
	Auth       *middleware.Middleware
	CORSOrigin string
}

func NewRouter(deps *handlers.Deps, opts Options) chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggerMiddleware(deps.Log).LoggerMiddleware)
	r.Use(chimiddleware.Recoverer)
	if opts.CORSOrigin != "" {
		r.Use(middleware.CORS(opts.CORSOrigin))
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		deps.ResponseHandler.WriteJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
	})

	dh := handlers.NewDonationHandlers(deps)

	r.Route("/api", func(r chi.Router) {
		if opts.Auth != nil {
			r.With(opts.Auth.RequireAdmin).Mount("/donations", dh.AdminRoutes())
		}
		r.Mount("/", dh.DonationRoutes())
	})
	return r
}
