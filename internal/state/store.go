package state

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gagliardetto/solana-go"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pulkyeet/sol-arb-router/internal/arbitrage"
	"github.com/pulkyeet/sol-arb-router/internal/sol"
)

const schema = `
CREATE TABLE IF NOT EXISTS router_state (
	id        INTEGER PRIMARY KEY CHECK (id = 1),
	owner     TEXT    NOT NULL,
	is_paused INTEGER NOT NULL DEFAULT 0,
	bump      INTEGER NOT NULL
);
`

// Store is the persistent router-state singleton: owner identity, pause
// flag and the derivation bump of the canonical state address. Exactly one
// row exists per deployment; only Initialize creates it and only
// TogglePause mutates it.
type Store struct {
	db *sql.DB
}

func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create state dir: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open state db: %w", err)
	}

	// WAL so a pause toggle never blocks behind a reader
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("failed to enable WAL: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to initialise schema: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Initialize creates the singleton with is_paused=false and the given
// owner. Fails with ErrAlreadyInitialized if the row exists — the
// bootstrap is one-time by construction.
func (s *Store) Initialize(ctx context.Context, owner solana.PublicKey) error {
	_, bump, err := sol.RouterStateAddress()
	if err != nil {
		return fmt.Errorf("derive state address: %w", err)
	}

	res, err := s.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO router_state (id, owner, is_paused, bump) VALUES (1, ?, 0, ?)",
		owner.String(), bump,
	)
	if err != nil {
		return fmt.Errorf("initialize state: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return arbitrage.ErrAlreadyInitialized
	}
	return nil
}

func (s *Store) Owner(ctx context.Context) (solana.PublicKey, error) {
	var ownerStr string
	err := s.db.QueryRowContext(ctx, "SELECT owner FROM router_state WHERE id = 1").Scan(&ownerStr)
	if err == sql.ErrNoRows {
		return solana.PublicKey{}, arbitrage.ErrNotInitialized
	}
	if err != nil {
		return solana.PublicKey{}, err
	}
	return solana.PublicKeyFromBase58(ownerStr)
}

// IsPaused satisfies arbitrage.PauseGate.
func (s *Store) IsPaused(ctx context.Context) (bool, error) {
	var paused bool
	err := s.db.QueryRowContext(ctx, "SELECT is_paused FROM router_state WHERE id = 1").Scan(&paused)
	if err == sql.ErrNoRows {
		return false, arbitrage.ErrNotInitialized
	}
	if err != nil {
		return false, err
	}
	return paused, nil
}

// TogglePause flips the flag and returns the new value. The requester must
// be the stored owner; anyone else gets ErrUnauthorized and no change.
func (s *Store) TogglePause(ctx context.Context, requester solana.PublicKey) (bool, error) {
	owner, err := s.Owner(ctx)
	if err != nil {
		return false, err
	}
	if !requester.Equals(owner) {
		return false, fmt.Errorf("%w: %s is not the owner", arbitrage.ErrUnauthorized, requester)
	}

	if _, err := s.db.ExecContext(ctx,
		"UPDATE router_state SET is_paused = NOT is_paused WHERE id = 1"); err != nil {
		return false, fmt.Errorf("toggle pause: %w", err)
	}
	return s.IsPaused(ctx)
}
