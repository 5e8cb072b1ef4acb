package testutil

import (
	"strings"

	"cfpr-go/internal/recorder"
)

// PrefixSealer is a reversible Sealer that marks values with a prefix so tests
// can tell stored values from opened ones.
type PrefixSealer struct {
	SealErr error
	OpenErr error
}

const sealedPrefix = "sealed:"

func (s *PrefixSealer) Seal(password string) (string, error) {
	if s.SealErr != nil {
		return "", s.SealErr
	}
	return sealedPrefix + password, nil
}

func (s *PrefixSealer) Open(stored string) (string, error) {
	if !strings.HasPrefix(stored, sealedPrefix) {
		return stored, nil
	}
	if s.OpenErr != nil {
		return "", s.OpenErr
	}
	return strings.TrimPrefix(stored, sealedPrefix), nil
}

var _ recorder.Sealer = (*PrefixSealer)(nil)
