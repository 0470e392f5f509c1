package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/Simplici0/printquote/internal/report"
	"github.com/Simplici0/printquote/internal/storage"
)

func (s *server) handleBudgetText(w http.ResponseWriter, r *http.Request) {
	state := s.store.Snapshot()
	render.PlainText(w, r, report.BudgetText(state, state.Totals()))
}

func (s *server) handleBudgetWorkbook(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.handleBudgetWorkbook"

	state := s.store.Snapshot()
	data, err := report.BudgetWorkbook(state, state.Totals())
	if err != nil {
		s.fail(w, r, op, http.StatusInternalServerError, "failed to build workbook", err)
		return
	}

	writeAttachment(w, xlsxContentType, "orcamento.xlsx", data)
}

type saveQuoteRequest struct {
	Title string `json:"title"`
	Notes string `json:"notes"`
}

type saveQuoteResponse struct {
	ID int64 `json:"id"`
}

func (s *server) handleSaveQuote(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.handleSaveQuote"

	var req saveQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.fail(w, r, op, http.StatusBadRequest, "invalid quote payload", err)
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	req.Notes = strings.TrimSpace(req.Notes)
	if req.Title == "" {
		s.fail(w, r, op, http.StatusBadRequest, "title is required", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	id, err := s.quotes.SaveQuote(ctx, req.Title, req.Notes, s.store.Snapshot())
	if err != nil {
		s.fail(w, r, op, http.StatusInternalServerError, "failed to save quote", err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, saveQuoteResponse{ID: id})
}

func (s *server) handleListQuotes(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.handleListQuotes"

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	query := strings.TrimSpace(r.URL.Query().Get("q"))
	quotes, err := s.quotes.ListQuotes(ctx, query)
	if err != nil {
		s.fail(w, r, op, http.StatusInternalServerError, "failed to load quotes", err)
		return
	}

	render.JSON(w, r, quotes)
}

func (s *server) handleGetQuote(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.handleGetQuote"

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		s.fail(w, r, op, http.StatusBadRequest, "invalid quote id", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	quote, err := s.quotes.GetQuote(ctx, id)
	if errors.Is(err, storage.ErrQuoteNotFound) {
		s.fail(w, r, op, http.StatusNotFound, "quote not found", err)
		return
	}
	if err != nil {
		s.fail(w, r, op, http.StatusInternalServerError, "failed to load quote", err)
		return
	}

	render.JSON(w, r, quote)
}
