package main

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/rs/cors"

	"github.com/Simplici0/printquote/internal/budget"
	"github.com/Simplici0/printquote/internal/storage"
)

const requestTimeout = 5 * time.Second

// quoteRepository keeps saved quote snapshots.
type quoteRepository interface {
	SaveQuote(ctx context.Context, title, notes string, state budget.State) (int64, error)
	ListQuotes(ctx context.Context, query string) ([]storage.QuoteSummary, error)
	GetQuote(ctx context.Context, id int64) (storage.QuoteDetail, error)
}

type server struct {
	store  *budget.Store
	quotes quoteRepository
	log    *slog.Logger
}

func newServer(store *budget.Store, quotes quoteRepository, log *slog.Logger) *server {
	return &server{store: store, quotes: quotes, log: log}
}

func (s *server) routes(allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{"Content-Disposition"},
	})

	r.Use(corsHandler.Handler)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/state", s.handleState)
		r.Get("/totals", s.handleTotals)
		r.Put("/info", s.handleUpdateInfo)

		r.Post("/items/{kind}", s.handleAddItem)
		r.Patch("/items/{kind}/{id}", s.handleEditItem)
		r.Delete("/items/{kind}/{id}", s.handleRemoveItem)

		r.Post("/images", s.handleAddImage)
		r.Delete("/images/{index}", s.handleRemoveImage)

		r.Get("/catalog", s.handleCatalog)
		r.Put("/catalog", s.handleReplaceCatalog)
		r.Post("/catalog/import", s.handleImportCatalog)
		r.Get("/catalog/export", s.handleExportCatalog)
		r.Get("/catalog/export.xlsx", s.handleExportCatalogWorkbook)
		r.Get("/catalog/prints/types", s.handlePrintTypes)
		r.Get("/catalog/prints/formats", s.handlePrintFormats)

		r.Get("/budget/text", s.handleBudgetText)
		r.Get("/budget/export.xlsx", s.handleBudgetWorkbook)

		r.Post("/quotes", s.handleSaveQuote)
		r.Get("/quotes", s.handleListQuotes)
		r.Get("/quotes/{id}", s.handleGetQuote)
	})

	return r
}

type errorResponse struct {
	Error string `json:"error"`
}

// fail logs err under op and writes a JSON error body with status.
func (s *server) fail(w http.ResponseWriter, r *http.Request, op string, status int, msg string, err error) {
	if err != nil {
		attrs := []any{slog.String("op", op), slog.String("error", err.Error())}
		if status >= http.StatusInternalServerError {
			s.log.Error(msg, attrs...)
		} else {
			s.log.Debug(msg, attrs...)
		}
	}

	render.Status(r, status)
	render.JSON(w, r, errorResponse{Error: msg})
}

func writeAttachment(w http.ResponseWriter, contentType, filename string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
