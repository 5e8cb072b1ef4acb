package encryption

import (
	"errors"
	"fmt"
	"testing"

	"filippo.io/age/armor"

	"cfpr-go/internal/config"
	"cfpr-go/internal/recorder"
)

func TestNoneSealer(t *testing.T) {
	s := NewNoneSealer()

	sealed, err := s.Seal("secret\n")
	if err != nil {
		t.Fatalf("Seal() error = %v", err)
	}
	if sealed != "secret\n" {
		t.Errorf("Seal() = %q, want the password unchanged", sealed)
	}

	opened, err := s.Open(sealed)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if opened != "secret\n" {
		t.Errorf("Open() = %q, want %q", opened, "secret\n")
	}
}

func TestNoneSealer_RejectsAgeValues(t *testing.T) {
	ageSealer, _ := newTestAgeSealer("pw")
	sealed, err := ageSealer.Seal("secret")
	if err != nil {
		t.Fatalf("Seal() error = %v", err)
	}

	_, err = NewNoneSealer().Open(sealed)
	if !errors.Is(err, recorder.ErrSealed) {
		t.Errorf("Open() error = %v, want ErrSealed", err)
	}
}

func TestNoneSealer_ArmorLookalikeIsPlaintext(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{name: "header line only", password: armor.Header + "\n"},
		{name: "header and footer", password: armor.Header + "\nbm90IGFnZQ==\n" + armor.Footer + "\n"},
		{name: "header prefix", password: armor.Header + "ish"},
	}

	s := NewNoneSealer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stored, err := s.Seal(tt.password)
			if err != nil {
				t.Fatalf("Seal() error = %v", err)
			}

			got, err := s.Open(stored)
			if err != nil {
				t.Fatalf("Open() error = %v", err)
			}
			if got != tt.password {
				t.Errorf("Open() = %q, want %q", got, tt.password)
			}
		})
	}
}

func TestNewSealerFromConfig(t *testing.T) {
	passphrase := func() (string, error) { return "pw", nil }

	tests := []struct {
		name       string
		cfg        config.EncryptionConfig
		passphrase PassphraseFunc
		wantType   string
		wantErr    bool
	}{
		{name: "default", cfg: config.EncryptionConfig{}, wantType: "*encryption.NoneSealer"},
		{name: "none", cfg: config.EncryptionConfig{Type: "none"}, wantType: "*encryption.NoneSealer"},
		{name: "age", cfg: config.EncryptionConfig{Type: "age"}, passphrase: passphrase, wantType: "*encryption.AgeSealer"},
		{name: "age without passphrase source", cfg: config.EncryptionConfig{Type: "age"}, wantErr: true},
		{name: "unknown", cfg: config.EncryptionConfig{Type: "rot13"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewSealerFromConfig(tt.cfg, tt.passphrase)
			if tt.wantErr {
				if err == nil {
					t.Errorf("NewSealerFromConfig() expected error, got %T", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewSealerFromConfig() error = %v", err)
			}
			if gotType := fmt.Sprintf("%T", got); gotType != tt.wantType {
				t.Errorf("NewSealerFromConfig() type = %s, want %s", gotType, tt.wantType)
			}
		})
	}
}
