// Package server exposes the interpreter over HTTP.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/nmoralesv/informe/internal/interpreter"
	"github.com/nmoralesv/informe/internal/model"
	"github.com/nmoralesv/informe/internal/suggest"
)

// Store is the slice of the history store the API needs.
type Store interface {
	SaveReport(ctx context.Context, record *model.ReportRecord) error
	GetReport(ctx context.Context, id string) (*model.ReportRecord, error)
	ListReports(ctx context.Context, limit int) ([]model.ReportRecord, error)
	DeleteReport(ctx context.Context, id string) error
}

// Config holds the API's wiring and listen settings.
type Config struct {
	Store           Store
	Suggester       *suggest.Suggester
	Addr            string
	ShutdownTimeout time.Duration
}

// WebAPI is the HTTP surface over the interpreter and its history store.
type WebAPI struct {
	interp    *interpreter.Interpreter
	store     Store
	suggester *suggest.Suggester
	router    *chi.Mux
	server    *http.Server
	shutdown  time.Duration
}

// NewWebAPI builds the router and handlers.
func NewWebAPI(interp *interpreter.Interpreter, cfg Config) *WebAPI {
	api := &WebAPI{
		interp:    interp,
		store:     cfg.Store,
		suggester: cfg.Suggester,
		shutdown:  cfg.ShutdownTimeout,
	}
	if api.shutdown <= 0 {
		api.shutdown = 10 * time.Second
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(requestLogger)
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/interpret", api.handleInterpret)
		r.Get("/reports", api.handleListReports)
		r.Get("/reports/{id}", api.handleGetReport)
		r.Delete("/reports/{id}", api.handleDeleteReport)
		r.Post("/filters/suggestions", api.handleSuggestions)
	})

	api.router = router
	api.server = &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return api
}

// Handler returns the routing handler, used directly in tests.
func (a *WebAPI) Handler() http.Handler {
	return a.router
}

// Start serves until the context is canceled, then shuts down gracefully.
func (a *WebAPI) Start(ctx context.Context) error {
	serverErrors := make(chan error, 1)

	go func() {
		slog.Info("starting server", "addr", a.server.Addr)
		serverErrors <- a.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		slog.Info("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdown)
		defer cancel()

		if err := a.server.Shutdown(shutdownCtx); err != nil {
			slog.Error("graceful shutdown failed", "error", err)
			return a.server.Close()
		}
	}

	return nil
}
