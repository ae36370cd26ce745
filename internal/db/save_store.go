package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/AndrewDavidsonDigital/exile-manager/internal/persist"
)

// SaveStore is the Postgres persist.Store: one row per save slot.
type SaveStore struct {
	db   *DB
	slot string
}

var _ persist.Store = (*SaveStore)(nil)

// NewSaveStore returns a Store bound to one save slot.
func NewSaveStore(db *DB, slot string) *SaveStore {
	return &SaveStore{db: db, slot: slot}
}

// Get retrieves the stored snapshot. A missing row or an empty payload
// reports persist.ErrNoSave.
func (s *SaveStore) Get(ctx context.Context) (string, error) {
	var payload string
	err := s.db.pool.QueryRow(ctx,
		`SELECT payload FROM saves WHERE slot = $1`, s.slot,
	).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", persist.ErrNoSave
		}
		return "", fmt.Errorf("querying save slot %q: %w", s.slot, err)
	}
	if payload == "" {
		return "", persist.ErrNoSave
	}
	return payload, nil
}

// Set upserts the snapshot for this slot.
func (s *SaveStore) Set(ctx context.Context, value string) error {
	_, err := s.db.pool.Exec(ctx,
		`INSERT INTO saves (slot, payload, updated_at) VALUES ($1, $2, $3)
		 ON CONFLICT (slot) DO UPDATE SET payload = $2, updated_at = $3`,
		s.slot, value, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("writing save slot %q: %w", s.slot, err)
	}
	return nil
}

// SetObject serializes and stores the value.
func (s *SaveStore) SetObject(ctx context.Context, value any) error {
	raw, err := persist.Marshal(value)
	if err != nil {
		return err
	}
	return s.Set(ctx, raw)
}

// Clear empties the stored payload without deleting the row.
func (s *SaveStore) Clear(ctx context.Context) error {
	return s.Set(ctx, "")
}

// Remove deletes the save slot entirely.
func (s *SaveStore) Remove(ctx context.Context) error {
	_, err := s.db.pool.Exec(ctx, `DELETE FROM saves WHERE slot = $1`, s.slot)
	if err != nil {
		return fmt.Errorf("removing save slot %q: %w", s.slot, err)
	}
	return nil
}
