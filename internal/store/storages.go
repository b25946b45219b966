package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-web3-uploader/internal/config"
	"github.com/MKhiriev/go-web3-uploader/internal/logger"
)

// Storages groups the repositories of the application together with the
// connection they share.
type Storages struct {
	ResultRepository ResultRepository

	db *DB
}

// NewStorages opens the database named by cfg.DB.DSN and applies pending
// migrations. A postgres:// or postgresql:// DSN selects PostgreSQL through
// the pgx driver; anything else is a SQLite file path, created if missing.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	var (
		db  *DB
		err error
	)
	if IsPostgresDSN(cfg.DB.DSN) {
		db, err = NewConnectPostgres(ctx, cfg.DB, logger)
	} else {
		db, err = NewConnectSQLite(ctx, cfg.DB, logger)
	}
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		ResultRepository: NewResultRepository(db, logger),
		db:               db,
	}, nil
}

// Close releases the underlying connection pool.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
