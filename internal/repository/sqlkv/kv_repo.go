package sqlkv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"pleadmd/internal/domain"
	"pleadmd/internal/port"
)

type kvRepo struct {
	db *sqlx.DB
}

// NewKeyValueRepo creates a KeyValueStore over the kv_entries table. It works
// with any driver whose bind style sqlx knows.
func NewKeyValueRepo(db *sqlx.DB) port.KeyValueStore {
	return &kvRepo{db: db}
}

func (r *kvRepo) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := r.db.GetContext(ctx, &value,
		r.db.Rebind("SELECT value FROM kv_entries WHERE entry_key = ?"), key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("kvRepo.Get %s: %w", key, err)
	}
	return []byte(value), nil
}

func (r *kvRepo) Put(ctx context.Context, key string, value []byte) error {
	query := r.db.Rebind(`
		INSERT INTO kv_entries (entry_key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (entry_key) DO UPDATE
		SET value = excluded.value, updated_at = excluded.updated_at`)
	if _, err := r.db.ExecContext(ctx, query, key, string(value), time.Now().UTC()); err != nil {
		return fmt.Errorf("kvRepo.Put %s: %w", key, err)
	}
	return nil
}

func (r *kvRepo) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	return nil
}
