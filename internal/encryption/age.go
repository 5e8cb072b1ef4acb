package encryption

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"filippo.io/age"
	"filippo.io/age/armor"

	"cfpr-go/internal/config"
	"cfpr-go/internal/recorder"
)

// PassphraseFunc supplies the passphrase used to seal and open passwords.
// It is called at most once per AgeSealer.
type PassphraseFunc func() (string, error)

// AgeSealer implements recorder.Sealer with age's scrypt passphrase
// encryption. Sealed values are ASCII-armored so they fit the TEXT column.
type AgeSealer struct {
	passphrase PassphraseFunc
	workFactor int

	unlocked bool
	cached   string
}

var _ recorder.Sealer = (*AgeSealer)(nil)

// NewAgeSealer creates an AgeSealer. The passphrase is requested lazily, the
// first time a value is sealed or a sealed value is opened.
func NewAgeSealer(cfg config.EncryptionConfig, passphrase PassphraseFunc) *AgeSealer {
	return &AgeSealer{
		passphrase: passphrase,
		workFactor: cfg.WorkFactor,
	}
}

// Seal encrypts password to the passphrase and returns the armored ciphertext.
func (s *AgeSealer) Seal(password string) (string, error) {
	pass, err := s.getPassphrase()
	if err != nil {
		return "", err
	}

	recipient, err := age.NewScryptRecipient(pass)
	if err != nil {
		return "", fmt.Errorf("creating scrypt recipient: %w", err)
	}
	if s.workFactor > 0 {
		recipient.SetWorkFactor(s.workFactor)
	}

	var buf bytes.Buffer
	armorWriter := armor.NewWriter(&buf)

	w, err := age.Encrypt(armorWriter, recipient)
	if err != nil {
		return "", fmt.Errorf("creating encrypted writer: %w", err)
	}
	if _, err := io.WriteString(w, password); err != nil {
		return "", fmt.Errorf("encrypting password: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("finalizing encryption: %w", err)
	}
	if err := armorWriter.Close(); err != nil {
		return "", fmt.Errorf("finalizing armor: %w", err)
	}

	return buf.String(), nil
}

// Open decrypts a sealed value. Plaintext values, such as rows written
// before encryption was enabled, are returned unchanged without asking for
// the passphrase.
func (s *AgeSealer) Open(stored string) (string, error) {
	if !s.Sealed(stored) {
		return stored, nil
	}

	pass, err := s.getPassphrase()
	if err != nil {
		return "", err
	}

	identity, err := age.NewScryptIdentity(pass)
	if err != nil {
		return "", fmt.Errorf("creating scrypt identity: %w", err)
	}

	r, err := age.Decrypt(armor.NewReader(strings.NewReader(stored)), identity)
	if err != nil {
		return "", fmt.Errorf("decrypting password: %w", err)
	}

	plain, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading decrypted password: %w", err)
	}
	return string(plain), nil
}

// Sealed reports whether stored is an armored age payload.
func (s *AgeSealer) Sealed(stored string) bool {
	return isAgePayload(stored)
}

func (s *AgeSealer) getPassphrase() (string, error) {
	if s.unlocked {
		return s.cached, nil
	}
	pass, err := s.passphrase()
	if err != nil {
		return "", fmt.Errorf("reading passphrase: %w", err)
	}
	s.cached = pass
	s.unlocked = true
	return pass, nil
}

// declineIdentity rejects every stanza, so decrypting with it parses the
// header and stops there.
type declineIdentity struct{}

func (declineIdentity) Unwrap([]*age.Stanza) ([]byte, error) {
	return nil, age.ErrIncorrectIdentity
}

// isAgePayload reports whether stored is a well-formed armored age file.
// Text that merely starts with the armor header line is not: the armor and
// the age header must both parse, which is only known once every identity
// has declined the recipient stanzas.
func isAgePayload(stored string) bool {
	if !strings.HasPrefix(stored, armor.Header) {
		return false
	}
	_, err := age.Decrypt(armor.NewReader(strings.NewReader(stored)), declineIdentity{})
	var noMatch *age.NoIdentityMatchError
	return errors.As(err, &noMatch)
}
