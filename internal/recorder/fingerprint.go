package recorder

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"golang.org/x/crypto/blake2b"
)

// Fingerprinter computes file identities. It never touches the record
// store, so an unreadable file is reported before the store is opened.
type Fingerprinter struct {
	fsmgr  FilesystemManager
	logger Logger
}

// NewFingerprinter creates a Fingerprinter reading through fsmgr.
func NewFingerprinter(fsmgr FilesystemManager, logger Logger) *Fingerprinter {
	return &Fingerprinter{fsmgr: fsmgr, logger: logger}
}

// Fingerprint computes the content identity of the file at rawPath.
// The whole file is read into memory and hashed with BLAKE2b-512. The size
// recorded is the metadata length, not the number of bytes read; the two only
// differ if the file changed underneath us, in which case metadata wins.
// Every failure is wrapped in ErrFileUnavailable.
func (f *Fingerprinter) Fingerprint(rawPath string) (*Fingerprint, error) {
	path, err := f.fsmgr.Resolve(rawPath)
	if err != nil {
		return nil, fmt.Errorf("%w: resolving path: %w", ErrFileUnavailable, err)
	}

	content, err := f.fsmgr.ReadAll(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading file: %w", ErrFileUnavailable, err)
	}

	info, err := f.fsmgr.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: stat file: %w", ErrFileUnavailable, err)
	}

	if info.Size() != int64(len(content)) {
		f.logger.Warn("size mismatch, using metadata size",
			"path", path.String(), "metadata", info.Size(), "read", len(content))
	}

	fp := &Fingerprint{
		Digest: DigestHex(content),
		Size:   strconv.FormatInt(info.Size(), 10),
	}

	f.logger.Debug("file fingerprinted", "path", path.String(), "digest", shortDigest(fp.Digest), "size", fp.Size)
	return fp, nil
}

// DigestHex returns the BLAKE2b-512 digest of data as 128 lowercase hex characters.
func DigestHex(data []byte) string {
	sum := blake2b.Sum512(data)
	return hex.EncodeToString(sum[:])
}
