package budget

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/Simplici0/printquote/internal/catalog"
	"github.com/Simplici0/printquote/internal/pricing"
)

var (
	ErrItemNotFound  = errors.New("item not found")
	ErrImageNotFound = errors.New("image not found")
)

// Persister stores the session document.
type Persister interface {
	SaveState(ctx context.Context, state State) error
}

// Store serializes every mutation of the session state. A mutation runs on a
// copy, is persisted, and only then replaces the live state, so a failed save
// leaves the previous state in place.
type Store struct {
	mu        sync.Mutex
	state     State
	persister Persister
	log       *slog.Logger
}

func NewStore(initial State, persister Persister, log *slog.Logger) *Store {
	return &Store{state: initial.Clone(), persister: persister, log: log}
}

// Snapshot returns a copy of the live state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

func (s *Store) Totals() pricing.Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Totals()
}

func (s *Store) mutate(ctx context.Context, op string, fn func(*State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.Clone()
	if err := fn(&next); err != nil {
		return err
	}

	if err := s.persister.SaveState(ctx, next); err != nil {
		s.log.Error("failed to persist budget state", slog.String("op", op), slog.String("error", err.Error()))
		return fmt.Errorf("%s: persist state: %w", op, err)
	}

	s.state = next
	return nil
}

func (s *Store) UpdateInfo(ctx context.Context, info pricing.JobInfo) error {
	return s.mutate(ctx, "budget.UpdateInfo", func(st *State) error {
		st.Info = info
		return nil
	})
}

func (s *Store) AddPaper(ctx context.Context) (pricing.PaperItem, error) {
	var item pricing.PaperItem
	err := s.mutate(ctx, "budget.AddPaper", func(st *State) error {
		item = st.Items.AddPaper()
		return nil
	})
	return item, err
}

func (s *Store) AddMaterial(ctx context.Context) (pricing.MaterialItem, error) {
	var item pricing.MaterialItem
	err := s.mutate(ctx, "budget.AddMaterial", func(st *State) error {
		item = st.Items.AddMaterial()
		return nil
	})
	return item, err
}

func (s *Store) AddPrint(ctx context.Context) (pricing.PrintItem, error) {
	var item pricing.PrintItem
	err := s.mutate(ctx, "budget.AddPrint", func(st *State) error {
		item = st.Items.AddPrint()
		return nil
	})
	return item, err
}

func (s *Store) AddLabor(ctx context.Context) (pricing.LaborItem, error) {
	var item pricing.LaborItem
	err := s.mutate(ctx, "budget.AddLabor", func(st *State) error {
		item = st.Items.AddLabor()
		return nil
	})
	return item, err
}

func (s *Store) EditPaper(ctx context.Context, id string, edits ...pricing.PaperEdit) (pricing.PaperItem, error) {
	var item pricing.PaperItem
	err := s.mutate(ctx, "budget.EditPaper", func(st *State) error {
		var ok bool
		if item, ok = st.Items.EditPaper(st.Catalog, id, edits...); !ok {
			return ErrItemNotFound
		}
		return nil
	})
	return item, err
}

func (s *Store) EditMaterial(ctx context.Context, id string, edits ...pricing.MaterialEdit) (pricing.MaterialItem, error) {
	var item pricing.MaterialItem
	err := s.mutate(ctx, "budget.EditMaterial", func(st *State) error {
		var ok bool
		if item, ok = st.Items.EditMaterial(st.Catalog, id, edits...); !ok {
			return ErrItemNotFound
		}
		return nil
	})
	return item, err
}

func (s *Store) EditPrint(ctx context.Context, id string, edits ...pricing.PrintEdit) (pricing.PrintItem, error) {
	var item pricing.PrintItem
	err := s.mutate(ctx, "budget.EditPrint", func(st *State) error {
		var ok bool
		if item, ok = st.Items.EditPrint(st.Catalog, id, edits...); !ok {
			return ErrItemNotFound
		}
		return nil
	})
	return item, err
}

func (s *Store) EditLabor(ctx context.Context, id string, edits ...pricing.LaborEdit) (pricing.LaborItem, error) {
	var item pricing.LaborItem
	err := s.mutate(ctx, "budget.EditLabor", func(st *State) error {
		var ok bool
		if item, ok = st.Items.EditLabor(st.Catalog, id, edits...); !ok {
			return ErrItemNotFound
		}
		return nil
	})
	return item, err
}

func (s *Store) RemoveItem(ctx context.Context, kind pricing.Kind, id string) error {
	return s.mutate(ctx, "budget.RemoveItem", func(st *State) error {
		if !st.Items.Remove(kind, id) {
			return ErrItemNotFound
		}
		return nil
	})
}

// AddImage appends a reference image (a data URL) and returns its position.
func (s *Store) AddImage(ctx context.Context, dataURL string) (int, error) {
	var index int
	err := s.mutate(ctx, "budget.AddImage", func(st *State) error {
		st.Images = append(st.Images, dataURL)
		index = len(st.Images) - 1
		return nil
	})
	return index, err
}

func (s *Store) RemoveImage(ctx context.Context, index int) error {
	return s.mutate(ctx, "budget.RemoveImage", func(st *State) error {
		if index < 0 || index >= len(st.Images) {
			return ErrImageNotFound
		}
		st.Images = append(st.Images[:index], st.Images[index+1:]...)
		return nil
	})
}

// ReplaceCatalog commits an edited catalog in one step. Existing line items
// keep their cached prices until they are next edited.
func (s *Store) ReplaceCatalog(ctx context.Context, cat catalog.Catalog) error {
	return s.mutate(ctx, "budget.ReplaceCatalog", func(st *State) error {
		st.Catalog = cat.Clone()
		return nil
	})
}

// ImportCatalog decodes a price list document and commits it. A rejected
// document leaves the live catalog untouched.
func (s *Store) ImportCatalog(ctx context.Context, r io.Reader) (catalog.Catalog, error) {
	cat, err := catalog.Decode(r)
	if err != nil {
		return catalog.Catalog{}, err
	}
	if err := s.ReplaceCatalog(ctx, cat); err != nil {
		return catalog.Catalog{}, err
	}
	return cat, nil
}

func (s *Store) ExportCatalog(w io.Writer) error {
	return catalog.Encode(w, s.Snapshot().Catalog)
}
