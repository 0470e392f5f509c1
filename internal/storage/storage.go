// Package storage persists the budget session and saved quotes in SQLite.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Simplici0/printquote/internal/budget"
	"github.com/Simplici0/printquote/internal/pricing"
)

var ErrQuoteNotFound = errors.New("quote not found")

type Storage struct {
	db *sql.DB
}

func New(db *sql.DB) *Storage {
	return &Storage{db: db}
}

// LoadState reads the persisted session. ok is false when nothing was saved yet.
func (s *Storage) LoadState(ctx context.Context) (state budget.State, ok bool, err error) {
	const op = "storage.LoadState"

	var stateJSON string
	err = s.db.QueryRowContext(ctx, `SELECT state_json FROM app_state WHERE id = 1`).Scan(&stateJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return budget.State{}, false, nil
	}
	if err != nil {
		return budget.State{}, false, fmt.Errorf("%s: query app_state: %w", op, err)
	}

	if err := json.Unmarshal([]byte(stateJSON), &state); err != nil {
		return budget.State{}, false, fmt.Errorf("%s: decode state: %w", op, err)
	}
	return state, true, nil
}

// SaveState upserts the session singleton row.
func (s *Storage) SaveState(ctx context.Context, state budget.State) error {
	const op = "storage.SaveState"

	stateJSON, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("%s: encode state: %w", op, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO app_state (id, state_json, updated_at)
		VALUES (1, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			state_json = excluded.state_json,
			updated_at = CURRENT_TIMESTAMP
	`, string(stateJSON))
	if err != nil {
		return fmt.Errorf("%s: upsert app_state: %w", op, err)
	}
	return nil
}

type QuoteSummary struct {
	ID        int64   `json:"id"`
	CreatedAt string  `json:"createdAt"`
	Title     string  `json:"title"`
	Notes     string  `json:"notes"`
	Total     float64 `json:"total"`
}

type QuoteDetail struct {
	QuoteSummary
	State  budget.State   `json:"state"`
	Totals pricing.Totals `json:"totals"`
}

// SaveQuote snapshots state together with its totals as computed now.
func (s *Storage) SaveQuote(ctx context.Context, title, notes string, state budget.State) (int64, error) {
	const op = "storage.SaveQuote"

	totalsJSON, err := json.Marshal(state.Totals())
	if err != nil {
		return 0, fmt.Errorf("%s: encode totals: %w", op, err)
	}
	stateJSON, err := json.Marshal(state)
	if err != nil {
		return 0, fmt.Errorf("%s: encode state: %w", op, err)
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO quotes (title, notes, totals_json, state_json)
		VALUES (?, ?, ?, ?)
	`, title, notes, string(totalsJSON), string(stateJSON))
	if err != nil {
		return 0, fmt.Errorf("%s: insert quote: %w", op, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: last insert id: %w", op, err)
	}
	return id, nil
}

// ListQuotes returns saved quotes newest first, optionally filtered by a
// substring of the title or notes.
func (s *Storage) ListQuotes(ctx context.Context, query string) ([]QuoteSummary, error) {
	const op = "storage.ListQuotes"

	search := "%" + query + "%"
	rows, err := s.db.QueryContext(ctx, `
		SELECT
			id,
			created_at,
			COALESCE(title, ''),
			COALESCE(notes, ''),
			totals_json
		FROM quotes
		WHERE (? = '' OR COALESCE(title, '') LIKE ? OR COALESCE(notes, '') LIKE ?)
		ORDER BY datetime(created_at) DESC, id DESC
	`, query, search, search)
	if err != nil {
		return nil, fmt.Errorf("%s: query quotes: %w", op, err)
	}
	defer rows.Close()

	quotes := make([]QuoteSummary, 0)
	for rows.Next() {
		var q QuoteSummary
		var totalsJSON string
		if err := rows.Scan(&q.ID, &q.CreatedAt, &q.Title, &q.Notes, &totalsJSON); err != nil {
			return nil, fmt.Errorf("%s: scan quote: %w", op, err)
		}
		q.Total = extractTotalFromJSON(totalsJSON)
		quotes = append(quotes, q)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: iterate quotes: %w", op, err)
	}

	return quotes, nil
}

// GetQuote reads a saved quote exactly as snapshotted, without recalculation.
func (s *Storage) GetQuote(ctx context.Context, id int64) (QuoteDetail, error) {
	const op = "storage.GetQuote"

	var detail QuoteDetail
	var totalsJSON, stateJSON string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, created_at, COALESCE(title, ''), COALESCE(notes, ''), totals_json, state_json
		FROM quotes
		WHERE id = ?
	`, id).Scan(&detail.ID, &detail.CreatedAt, &detail.Title, &detail.Notes, &totalsJSON, &stateJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return QuoteDetail{}, ErrQuoteNotFound
	}
	if err != nil {
		return QuoteDetail{}, fmt.Errorf("%s: query quote: %w", op, err)
	}

	if err := json.Unmarshal([]byte(totalsJSON), &detail.Totals); err != nil {
		return QuoteDetail{}, fmt.Errorf("%s: decode totals: %w", op, err)
	}
	if err := json.Unmarshal([]byte(stateJSON), &detail.State); err != nil {
		return QuoteDetail{}, fmt.Errorf("%s: decode state: %w", op, err)
	}
	detail.Total = detail.Totals.GrandTotal

	return detail, nil
}

func extractTotalFromJSON(totalsJSON string) float64 {
	var values map[string]float64
	if err := json.Unmarshal([]byte(totalsJSON), &values); err != nil {
		return 0
	}

	for _, key := range []string{"grandTotal", "total"} {
		if total, ok := values[key]; ok {
			return total
		}
	}

	return 0
}
