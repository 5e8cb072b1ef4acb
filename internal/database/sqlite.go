package database

import (
	"context"
	"database/sql"
	"fmt"

	"cfpr-go/internal/database/migrations"
	"cfpr-go/internal/database/sqlc"
	"cfpr-go/internal/recorder"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteDatabase implements the recorder.Database interface using SQLite.
type SQLiteDatabase struct {
	db      *sql.DB
	queries *sqlc.Queries
	path    string
}

// NewSQLiteDatabase opens a SQLite database connection without touching the
// schema. path can be a file path or ":memory:" for an in-memory database.
func NewSQLiteDatabase(path string) (*SQLiteDatabase, error) {
	db, err := OpenConnection(path)
	if err != nil {
		return nil, err
	}

	return &SQLiteDatabase{
		db:      db,
		queries: sqlc.New(db),
		path:    path,
	}, nil
}

// OpenConnection opens and configures a SQLite database connection.
// The file is created on first use. Locking between concurrent invocations is
// left to SQLite.
func OpenConnection(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One connection per process. This also keeps ":memory:" databases
	// from splitting into one database per pooled connection.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return db, nil
}

// Migrate ensures the schema exists and is current.
func (s *SQLiteDatabase) Migrate() error {
	return migrations.Ensure(s.db)
}

// CheckMigrations verifies the database schema is up-to-date.
func (s *SQLiteDatabase) CheckMigrations() error {
	return migrations.CheckDBMigrationStatus(s.db)
}

func (s *SQLiteDatabase) InsertFileRecord(record *recorder.FileRecord) (int64, error) {
	row, err := s.queries.InsertFile(context.Background(), sqlc.InsertFileParams{
		Hash:        record.Digest,
		Size:        record.Size,
		Password:    record.Password,
		TimeCreated: FormatTimestamp(record.TimeCreated),
	})
	if err != nil {
		return 0, fmt.Errorf("%w: inserting file record: %w", recorder.ErrStoreWrite, err)
	}
	return row.ID, nil
}

func (s *SQLiteDatabase) FindFileRecordsByIdentity(digest, size string) ([]*recorder.FileRecord, error) {
	rows, err := s.queries.GetFilesByHashAndSize(context.Background(), sqlc.GetFilesByHashAndSizeParams{
		Hash: digest,
		Size: size,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: finding file records: %w", recorder.ErrStoreRead, err)
	}

	result := make([]*recorder.FileRecord, len(rows))
	for i := range rows {
		record, err := toFileRecord(&rows[i])
		if err != nil {
			return nil, fmt.Errorf("%w: %w", recorder.ErrStoreRead, err)
		}
		result[i] = record
	}
	return result, nil
}

func (s *SQLiteDatabase) CountFileRecords() (int64, error) {
	count, err := s.queries.CountFiles(context.Background())
	if err != nil {
		return 0, fmt.Errorf("%w: counting file records: %w", recorder.ErrStoreRead, err)
	}
	return count, nil
}

// toFileRecord converts a row into a FileRecord, decoding time_created.
func toFileRecord(row *sqlc.File) (*recorder.FileRecord, error) {
	created, err := ParseTimestamp(row.TimeCreated)
	if err != nil {
		return nil, fmt.Errorf("record %d: %w", row.ID, err)
	}
	return &recorder.FileRecord{
		ID:          row.ID,
		Digest:      row.Hash,
		Size:        row.Size,
		Password:    row.Password,
		TimeCreated: created,
	}, nil
}

// Path returns the database file path (or ":memory:" for in-memory databases).
func (s *SQLiteDatabase) Path() string {
	return s.path
}

// BackupTo creates a complete copy of the database at destPath using VACUUM INTO.
// destPath must not already exist.
func (s *SQLiteDatabase) BackupTo(destPath string) error {
	if _, err := s.db.Exec("VACUUM INTO ?", destPath); err != nil {
		return fmt.Errorf("%w: backing up database: %w", recorder.ErrStoreRead, err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteDatabase) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Compile-time check that SQLiteDatabase implements recorder.Database interface
var _ recorder.Database = (*SQLiteDatabase)(nil)
