package recorder

import (
	"fmt"
)

// RecorderService is the orchestration layer that coordinates the record
// store and the sealer to perform the operations needed by the CLI.
// Identities come from a Fingerprinter.
type RecorderService struct {
	database Database
	sealer   Sealer
	logger   Logger
	clock    Clock
}

// NewRecorderService creates a new RecorderService with the provided dependencies.
func NewRecorderService(database Database, sealer Sealer, logger Logger, clock Clock) *RecorderService {
	return &RecorderService{
		database: database,
		sealer:   sealer,
		logger:   logger,
		clock:    clock,
	}
}

// Save stores password for the file identity in fp and returns the new record.
// The password is stored verbatim (after sealing); no trimming is applied and
// no uniqueness check is made. The record is stamped with the time of insertion.
func (s *RecorderService) Save(fp *Fingerprint, password string) (*FileRecord, error) {
	stored, err := s.sealer.Seal(password)
	if err != nil {
		return nil, fmt.Errorf("sealing password: %w", err)
	}

	record := &FileRecord{
		Digest:      fp.Digest,
		Size:        fp.Size,
		Password:    stored,
		TimeCreated: s.clock.Now(),
	}

	id, err := s.database.InsertFileRecord(record)
	if err != nil {
		return nil, fmt.Errorf("saving record: %w", err)
	}
	record.ID = id

	s.logger.Info("record saved", "id", id, "digest", shortDigest(fp.Digest), "size", fp.Size)
	return record, nil
}

// Lookup returns the earliest record stored for the file identity in fp, with
// its password opened. Returns nil when no record matches. Later duplicates
// are ignored.
func (s *RecorderService) Lookup(fp *Fingerprint) (*FileRecord, error) {
	records, err := s.database.FindFileRecordsByIdentity(fp.Digest, fp.Size)
	if err != nil {
		return nil, fmt.Errorf("looking up record: %w", err)
	}
	if len(records) == 0 {
		s.logger.Info("no record", "digest", shortDigest(fp.Digest), "size", fp.Size)
		return nil, nil
	}
	if len(records) > 1 {
		s.logger.Debug("multiple records, using earliest", "count", len(records), "id", records[0].ID)
	}

	first := *records[0]
	password, err := s.sealer.Open(first.Password)
	if err != nil {
		return nil, fmt.Errorf("opening record %d: %w", first.ID, err)
	}
	first.Password = password

	s.logger.Info("record found", "id", first.ID)
	return &first, nil
}

// shortDigest trims a digest for log output.
func shortDigest(digest string) string {
	if len(digest) > 12 {
		return digest[:12]
	}
	return digest
}
