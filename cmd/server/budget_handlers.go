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

	"github.com/Simplici0/printquote/internal/budget"
	"github.com/Simplici0/printquote/internal/pricing"
)

type stateResponse struct {
	State  budget.State        `json:"state"`
	Totals pricing.Totals      `json:"totals"`
	Stale  []pricing.StaleItem `json:"stale"`
}

func (s *server) handleState(w http.ResponseWriter, r *http.Request) {
	state := s.store.Snapshot()
	render.JSON(w, r, stateResponse{
		State:  state,
		Totals: state.Totals(),
		Stale:  pricing.Stale(state.Catalog, state.Items),
	})
}

func (s *server) handleTotals(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, s.store.Totals())
}

func (s *server) handleUpdateInfo(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.handleUpdateInfo"

	var info pricing.JobInfo
	if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
		s.fail(w, r, op, http.StatusBadRequest, "invalid job info", err)
		return
	}

	if info.Technology == "" {
		info.Technology = pricing.Digital
	}
	if _, err := pricing.ParseTechnology(string(info.Technology)); err != nil {
		s.fail(w, r, op, http.StatusBadRequest, err.Error(), err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := s.store.UpdateInfo(ctx, info); err != nil {
		s.fail(w, r, op, http.StatusInternalServerError, "failed to save job info", err)
		return
	}

	render.JSON(w, r, s.store.Totals())
}

func (s *server) kindParam(w http.ResponseWriter, r *http.Request, op string) (pricing.Kind, bool) {
	kind, err := pricing.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		s.fail(w, r, op, http.StatusNotFound, err.Error(), err)
		return "", false
	}
	return kind, true
}

func (s *server) handleAddItem(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.handleAddItem"

	kind, ok := s.kindParam(w, r, op)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	var (
		item any
		err  error
	)
	switch kind {
	case pricing.KindPaper:
		item, err = s.store.AddPaper(ctx)
	case pricing.KindMaterial:
		item, err = s.store.AddMaterial(ctx)
	case pricing.KindPrint:
		item, err = s.store.AddPrint(ctx)
	case pricing.KindLabor:
		item, err = s.store.AddLabor(ctx)
	}
	if err != nil {
		s.fail(w, r, op, http.StatusInternalServerError, "failed to add item", err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, item)
}

type itemResponse struct {
	Item   any            `json:"item"`
	Totals pricing.Totals `json:"totals"`
}

func (s *server) handleEditItem(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.handleEditItem"

	kind, ok := s.kindParam(w, r, op)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	var (
		item      any
		err       error
		decodeErr error
	)
	dec := json.NewDecoder(r.Body)
	switch kind {
	case pricing.KindPaper:
		var patch paperPatch
		if decodeErr = dec.Decode(&patch); decodeErr == nil {
			item, err = s.store.EditPaper(ctx, id, patch.edits()...)
		}
	case pricing.KindMaterial:
		var patch materialPatch
		if decodeErr = dec.Decode(&patch); decodeErr == nil {
			item, err = s.store.EditMaterial(ctx, id, patch.edits()...)
		}
	case pricing.KindPrint:
		var patch printPatch
		if decodeErr = dec.Decode(&patch); decodeErr == nil {
			item, err = s.store.EditPrint(ctx, id, patch.edits()...)
		}
	case pricing.KindLabor:
		var patch laborPatch
		if decodeErr = dec.Decode(&patch); decodeErr == nil {
			item, err = s.store.EditLabor(ctx, id, patch.edits()...)
		}
	}

	if decodeErr != nil {
		s.fail(w, r, op, http.StatusBadRequest, "invalid item fields", decodeErr)
		return
	}
	if errors.Is(err, budget.ErrItemNotFound) {
		s.fail(w, r, op, http.StatusNotFound, "item not found", err)
		return
	}
	if err != nil {
		s.fail(w, r, op, http.StatusInternalServerError, "failed to update item", err)
		return
	}

	render.JSON(w, r, itemResponse{Item: item, Totals: s.store.Totals()})
}

func (s *server) handleRemoveItem(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.handleRemoveItem"

	kind, ok := s.kindParam(w, r, op)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	err := s.store.RemoveItem(ctx, kind, chi.URLParam(r, "id"))
	if errors.Is(err, budget.ErrItemNotFound) {
		s.fail(w, r, op, http.StatusNotFound, "item not found", err)
		return
	}
	if err != nil {
		s.fail(w, r, op, http.StatusInternalServerError, "failed to remove item", err)
		return
	}

	render.JSON(w, r, s.store.Totals())
}

type imageRequest struct {
	DataURL string `json:"dataUrl"`
}

type imageResponse struct {
	Index int `json:"index"`
}

func (s *server) handleAddImage(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.handleAddImage"

	var req imageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.fail(w, r, op, http.StatusBadRequest, "invalid image payload", err)
		return
	}
	if !strings.HasPrefix(req.DataURL, "data:image/") {
		s.fail(w, r, op, http.StatusBadRequest, "image must be a data:image URL", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	index, err := s.store.AddImage(ctx, req.DataURL)
	if err != nil {
		s.fail(w, r, op, http.StatusInternalServerError, "failed to add image", err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, imageResponse{Index: index})
}

func (s *server) handleRemoveImage(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.handleRemoveImage"

	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		s.fail(w, r, op, http.StatusBadRequest, "invalid image index", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	err = s.store.RemoveImage(ctx, index)
	if errors.Is(err, budget.ErrImageNotFound) {
		s.fail(w, r, op, http.StatusNotFound, "image not found", err)
		return
	}
	if err != nil {
		s.fail(w, r, op, http.StatusInternalServerError, "failed to remove image", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
