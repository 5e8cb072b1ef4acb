package recorder

// Database provides an interface for record storage operations.
// Implementations wrap failures in ErrStoreRead or ErrStoreWrite.
type Database interface {
	// InsertFileRecord appends a record and returns its assigned ID.
	// No uniqueness check is performed on (Digest, Size).
	InsertFileRecord(record *FileRecord) (int64, error)

	// FindFileRecordsByIdentity returns every record with the given digest and
	// size, ordered by ascending ID. Returns an empty slice when none match.
	FindFileRecordsByIdentity(digest, size string) ([]*FileRecord, error)

	// CountFileRecords returns the number of stored records.
	CountFileRecords() (int64, error)

	// BackupTo writes a consistent copy of the store to destPath.
	BackupTo(destPath string) error

	// Close closes the database connection.
	Close() error
}
