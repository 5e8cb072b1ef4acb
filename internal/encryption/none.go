package encryption

import (
	"fmt"

	"cfpr-go/internal/recorder"
)

// NoneSealer stores passwords in plaintext, exactly as entered.
// It refuses to open values sealed by AgeSealer rather than print ciphertext.
type NoneSealer struct{}

var _ recorder.Sealer = (*NoneSealer)(nil)

// NewNoneSealer creates a new NoneSealer.
func NewNoneSealer() *NoneSealer {
	return &NoneSealer{}
}

func (NoneSealer) Seal(password string) (string, error) {
	return password, nil
}

func (NoneSealer) Open(stored string) (string, error) {
	if isAgePayload(stored) {
		return "", fmt.Errorf("%w: enable age encryption to read it", recorder.ErrSealed)
	}
	return stored, nil
}
