package storage

import (
	"context"
	"fmt"

	"pleadmd/internal/config"
	"pleadmd/internal/domain"
	"pleadmd/internal/port"
	"pleadmd/internal/repository/sqlkv"
	"pleadmd/internal/storage/file"
	s3store "pleadmd/internal/storage/s3"
)

// Backend names accepted by store.backend.
const (
	BackendFile     = "file"
	BackendS3       = "s3"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

// Open builds the KeyValueStore selected by cfg.Store.Backend. The returned
// close function releases any connection the backend holds.
func Open(ctx context.Context, cfg *config.Config) (port.KeyValueStore, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Store.Backend {
	case BackendFile, "":
		store, err := file.NewFileStore(cfg.Store.Dir)
		if err != nil {
			return nil, nil, err
		}
		return store, noop, nil

	case BackendS3:
		store, err := s3store.NewS3Store(ctx, &cfg.S3, cfg.Store.Prefix)
		if err != nil {
			return nil, nil, err
		}
		return store, noop, nil

	case BackendPostgres:
		db, err := sqlkv.NewPostgresDB(&cfg.DB)
		if err != nil {
			return nil, nil, err
		}
		return sqlkv.NewKeyValueRepo(db), db.Close, nil

	case BackendSQLite:
		db, err := sqlkv.NewSQLiteDB(&cfg.SQLite)
		if err != nil {
			return nil, nil, err
		}
		return sqlkv.NewKeyValueRepo(db), db.Close, nil

	default:
		return nil, nil, fmt.Errorf("%w: %q", domain.ErrUnknownStoreBackend, cfg.Store.Backend)
	}
}
