package database

import (
	"fmt"

	"cfpr-go/internal/config"
	"cfpr-go/internal/recorder"
)

// NewDatabaseFromConfig opens the store described by cfg and ensures its
// schema. Any failure is wrapped in recorder.ErrStoreUnavailable.
func NewDatabaseFromConfig(cfg config.DatabaseConfig) (*SQLiteDatabase, error) {
	var path string
	switch cfg.Type {
	case "sqlite", "":
		if cfg.Path == "" {
			return nil, fmt.Errorf("%w: path required for sqlite database", recorder.ErrStoreUnavailable)
		}
		path = cfg.Path
	case "memory":
		path = ":memory:"
	default:
		return nil, fmt.Errorf("%w: unknown database type: %s", recorder.ErrStoreUnavailable, cfg.Type)
	}

	db, err := NewSQLiteDatabase(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", recorder.ErrStoreUnavailable, err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: ensuring schema: %w", recorder.ErrStoreUnavailable, err)
	}

	return db, nil
}
