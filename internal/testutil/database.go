package testutil

import (
	"testing"

	"cfpr-go/internal/config"
	"cfpr-go/internal/database"
	"cfpr-go/internal/recorder"
)

// NewTestDatabase opens an in-memory store through the same path the CLI
// uses, migrations included. It is closed when the test completes.
func NewTestDatabase(t *testing.T) recorder.Database {
	t.Helper()

	db, err := database.NewDatabaseFromConfig(config.DatabaseConfig{Type: "memory"})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		db.Close()
	})
	return db
}
