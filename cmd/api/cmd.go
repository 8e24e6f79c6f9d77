package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/GregMSThompson/donations-backend/internal/bootstrap"
	"github.com/GregMSThompson/donations-backend/internal/config"
	"github.com/GregMSThompson/donations-backend/internal/handlers"
	"github.com/GregMSThompson/donations-backend/internal/middleware"
	"github.com/GregMSThompson/donations-backend/internal/response"
	"github.com/GregMSThompson/donations-backend/internal/router"
	"github.com/GregMSThompson/donations-backend/internal/services"
	"github.com/GregMSThompson/donations-backend/internal/store"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// bootstrap
	cfg, err := config.New()
	exitOnError("config failed", err, slog.Default())
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)
	defer bs.Close()

	// stores
	var dstore services.DonationStore
	if bs.SQL != nil {
		dstore = store.NewSQLDonationStore(bs.SQL)
	} else {
		dstore = store.NewDonationStore(bs.Firestore, cfg.DonationsCollection)
	}

	// services
	dserv := services.NewDonationService(bs.BraintreeAdapter, dstore)

	// response handler
	rh := response.New(bs.Log)

	// dependancies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = rh
	deps.DonationSvc = dserv

	// router
	r := router.NewRouter(deps, router.Options{
		Auth:       middleware.NewMiddleware(bs.Firebase, rh),
		CORSOrigin: cfg.CORSOrigin,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		bs.Log.Info("starting http server", "addr", srv.Addr, "store", string(cfg.StoreDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			exitOnError("server start failed", err, bs.Log)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	<-sigChan
	bs.Log.Info("signal received, shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		bs.Log.Error("http server shutdown failed", "error", err)
	}
}
