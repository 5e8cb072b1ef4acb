package database

import (
	"errors"
	"path/filepath"
	"testing"

	"cfpr-go/internal/config"
	"cfpr-go/internal/recorder"
)

func sqliteConfig(path string) config.DatabaseConfig {
	return config.DatabaseConfig{Type: "sqlite", Path: path}
}

func TestNewDatabaseFromConfig(t *testing.T) {
	t.Run("memory database", func(t *testing.T) {
		got, err := NewDatabaseFromConfig(config.DatabaseConfig{Type: "memory"})
		if err != nil {
			t.Fatalf("NewDatabaseFromConfig() unexpected error: %v", err)
		}
		defer got.Close()

		if err := got.CheckMigrations(); err != nil {
			t.Errorf("CheckMigrations() error = %v", err)
		}
	})

	t.Run("sqlite database creates the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "db.db3")
		got, err := NewDatabaseFromConfig(sqliteConfig(path))
		if err != nil {
			t.Fatalf("NewDatabaseFromConfig() unexpected error: %v", err)
		}
		defer got.Close()

		if got.Path() != path {
			t.Errorf("Path() = %q, want %q", got.Path(), path)
		}
	})

	t.Run("sqlite database without path", func(t *testing.T) {
		got, err := NewDatabaseFromConfig(config.DatabaseConfig{Type: "sqlite"})
		if !errors.Is(err, recorder.ErrStoreUnavailable) {
			t.Errorf("NewDatabaseFromConfig() error = %v, want ErrStoreUnavailable", err)
		}
		if got != nil {
			t.Error("NewDatabaseFromConfig() should return nil on error")
			got.Close()
		}
	})

	t.Run("unopenable path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "dir", "db.db3")
		got, err := NewDatabaseFromConfig(sqliteConfig(path))
		if !errors.Is(err, recorder.ErrStoreUnavailable) {
			t.Errorf("NewDatabaseFromConfig() error = %v, want ErrStoreUnavailable", err)
		}
		if got != nil {
			got.Close()
		}
	})

	t.Run("unknown database type", func(t *testing.T) {
		got, err := NewDatabaseFromConfig(config.DatabaseConfig{Type: "unknown"})
		if !errors.Is(err, recorder.ErrStoreUnavailable) {
			t.Errorf("NewDatabaseFromConfig() error = %v, want ErrStoreUnavailable", err)
		}
		if got != nil {
			t.Error("NewDatabaseFromConfig() should return nil on error")
			got.Close()
		}
	})
}
