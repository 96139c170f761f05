package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"github.com/tipjarz/tipjarz/internal/config"
	"github.com/tipjarz/tipjarz/internal/database"
	"github.com/tipjarz/tipjarz/internal/logging"
	"github.com/tipjarz/tipjarz/internal/metrics"
	"github.com/tipjarz/tipjarz/internal/middleware"
	"github.com/tipjarz/tipjarz/services/tipjar"
	tipjarsupabase "github.com/tipjarz/tipjarz/services/tipjar/supabase"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "tipjarz:", err)
		os.Exit(1)
	}
}

func run() error {
	// Optional .env for local development; missing file is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logging.New(tipjar.ServiceID, cfg.Log.Level)

	dbClient, err := database.NewClient(database.Config{
		URL:        cfg.Supabase.URL,
		ServiceKey: cfg.Supabase.ServiceKey,
	})
	if err != nil {
		return fmt.Errorf("database client: %w", err)
	}
	repo := tipjarsupabase.NewRepository(database.NewRepository(dbClient))

	wallet := tipjar.NewSimulatedWallet(cfg.Wallet.SubmitDelay, cfg.Wallet.SuccessRate)

	svc, err := tipjar.New(tipjar.Config{
		DB:     repo,
		Wallet: wallet,
		Logger: log,
	})
	if err != nil {
		return fmt.Errorf("init service: %w", err)
	}

	m := metrics.New(tipjar.ServiceID)

	root := mux.NewRouter()
	root.Handle("/metrics", m.Handler()).Methods(http.MethodGet)
	root.PathPrefix("/").Handler(svc.Router())

	cors := middleware.NewCORSMiddleware(cfg.CORS.AllowedOrigins)
	tracing := middleware.NewTracingMiddleware(log)
	handler := cors.Handler(tracing.Handler(middleware.MetricsMiddleware(tipjar.ServiceID, m)(root)))

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info(ctx, "listening on "+cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	log.Info(context.Background(), "shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
