package recorder

import "fmt"

// History returns every record stored for the file identity in fp, oldest
// first. Passwords are left as stored.
func (s *RecorderService) History(fp *Fingerprint) ([]*FileRecord, error) {
	s.logger.Debug("fetching record history", "digest", shortDigest(fp.Digest), "size", fp.Size)

	records, err := s.database.FindFileRecordsByIdentity(fp.Digest, fp.Size)
	if err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}
	return records, nil
}

// Backup writes a consistent copy of the record store to destPath.
func (s *RecorderService) Backup(destPath string) error {
	if err := s.database.BackupTo(destPath); err != nil {
		return fmt.Errorf("backing up store: %w", err)
	}
	s.logger.Info("store backed up", "dest", destPath)
	return nil
}
