package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// Store keys. Each entity store is an independently keyed JSON array blob,
// most-recent-first.
const (
	keyPurchases    = "military_purchases"
	keyTransfers    = "military_transfers"
	keyAssignments  = "military_assignments"
	keyExpenditures = "military_expenditures"
)

// dateLayout is the ISO date format used for all server-stamped dates.
const dateLayout = "2006-01-02"

// getBlob reads a raw blob by key. The second return value is false when the
// key has never been written.
func getBlob(ctx context.Context, db *sql.DB, key string) (string, bool, error) {
	var value string
	err := db.QueryRowContext(ctx, `SELECT value FROM blobs WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading blob %q: %w", key, err)
	}
	return value, true, nil
}

// putBlob writes a blob, replacing any previous value.
func putBlob(ctx context.Context, db *sql.DB, key, value string) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO blobs (key, value) VALUES (?, ?)
		 ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("writing blob %q: %w", key, err)
	}
	return nil
}

// loadStore reads an entity store, materializing and persisting the seed list
// when the key has never been written. An existing blob is never re-seeded,
// even when it holds an empty array.
func loadStore[T any](ctx context.Context, db *sql.DB, key string, seed func() []T) ([]T, error) {
	raw, ok, err := getBlob(ctx, db, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		items := seed()
		if err := saveStore(ctx, db, key, items); err != nil {
			return nil, err
		}
		return items, nil
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("decoding blob %q: %w", key, err)
	}
	return items, nil
}

// saveStore persists the full entity store.
func saveStore[T any](ctx context.Context, db *sql.DB, key string, items []T) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encoding blob %q: %w", key, err)
	}
	return putBlob(ctx, db, key, string(data))
}
