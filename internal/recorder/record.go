package recorder

import "time"

// Fingerprint is the content identity of a file at the moment it was read.
// Digest and Size together form the lookup key for FileRecords.
type Fingerprint struct {
	Digest string // BLAKE2b-512, 128 lowercase hex characters
	Size   string // metadata byte length as a decimal string
}

// FileRecord is a stored password for a file identity.
// Records are append-only; there is no update or delete.
type FileRecord struct {
	ID          int64 // assigned by the store on insert
	Digest      string
	Size        string
	Password    string
	TimeCreated time.Time // wall clock at insertion
}
