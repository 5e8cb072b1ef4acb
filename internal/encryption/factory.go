package encryption

import (
	"fmt"

	"cfpr-go/internal/config"
	"cfpr-go/internal/recorder"
)

// NewSealerFromConfig creates a Sealer based on the configuration type.
// passphrase is only used by the age sealer.
func NewSealerFromConfig(cfg config.EncryptionConfig, passphrase PassphraseFunc) (recorder.Sealer, error) {
	switch cfg.Type {
	case "none", "":
		return NewNoneSealer(), nil
	case "age":
		if passphrase == nil {
			return nil, fmt.Errorf("age encryption requires a passphrase source")
		}
		return NewAgeSealer(cfg, passphrase), nil
	default:
		return nil, fmt.Errorf("unknown encryption type: %q", cfg.Type)
	}
}
