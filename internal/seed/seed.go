package seed

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"

	"github.com/Simplici0/printquote/internal/budget"
	"github.com/Simplici0/printquote/internal/catalog"
)

// Config contains the values required by startup seed.
type Config struct {
	// CatalogPath optionally points at a price list document used instead of
	// the built-in catalog when the session row is first created.
	CatalogPath string
}

// Stats contains seed operation counters.
type Stats struct {
	Inserts int
}

// Run executes the startup seed in an idempotent way.
func Run(ctx context.Context, db *sql.DB, cfg Config) (Stats, error) {
	initial, err := initialState(cfg.CatalogPath)
	if err != nil {
		return Stats{}, err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return Stats{}, fmt.Errorf("begin seed transaction: %w", err)
	}

	stats := Stats{}

	if err := ensureState(ctx, tx, initial, &stats); err != nil {
		_ = tx.Rollback()
		return Stats{}, err
	}

	if err := tx.Commit(); err != nil {
		return Stats{}, fmt.Errorf("commit seed transaction: %w", err)
	}

	return stats, nil
}

func initialState(catalogPath string) (budget.State, error) {
	state := budget.DefaultState()
	if catalogPath == "" {
		return state, nil
	}

	f, err := os.Open(catalogPath)
	if err != nil {
		return budget.State{}, fmt.Errorf("open seed catalog: %w", err)
	}
	defer f.Close()

	cat, err := catalog.Decode(f)
	if err != nil {
		return budget.State{}, fmt.Errorf("decode seed catalog %s: %w", catalogPath, err)
	}
	state.Catalog = cat
	return state, nil
}

func ensureState(ctx context.Context, tx *sql.Tx, state budget.State, stats *Stats) error {
	var exists bool
	if err := tx.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM app_state WHERE id = 1)`).Scan(&exists); err != nil {
		return fmt.Errorf("check app state existence: %w", err)
	}
	if exists {
		return nil
	}

	stateJSON, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode initial state: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO app_state (id, state_json)
		VALUES (1, ?)
	`, string(stateJSON)); err != nil {
		return fmt.Errorf("insert app state singleton: %w", err)
	}
	stats.Inserts++
	return nil
}
