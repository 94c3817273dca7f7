package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"groupschedule/internal/domain"
)

// Storage modes for new events' passphrases.
const (
	ModePlain  = "plain"
	ModeBcrypt = "bcrypt"
)

// bcryptPrefixes identify stored values produced by bcrypt.
var bcryptPrefixes = []string{"$2a$", "$2b$", "$2y$"}

type passphraseGate struct {
	mode string
	cost int
}

// NewPassphraseGate returns a PassphraseGate. In ModePlain new passphrases are
// stored verbatim so existing share links keep working; in ModeBcrypt they are
// stored as bcrypt hashes. Verify accepts both stored forms either way.
func NewPassphraseGate(mode string, cost int) (domain.PassphraseGate, error) {
	switch mode {
	case ModePlain, "":
		return &passphraseGate{mode: ModePlain}, nil
	case ModeBcrypt:
		if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
			return nil, fmt.Errorf("bcrypt cost %d out of range", cost)
		}
		return &passphraseGate{mode: ModeBcrypt, cost: cost}, nil
	default:
		return nil, fmt.Errorf("unknown passphrase mode %q", mode)
	}
}

func (g *passphraseGate) Seal(plain string) (string, error) {
	if g.mode != ModeBcrypt {
		return plain, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), g.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash passphrase: %w", err)
	}
	return string(hash), nil
}

func (g *passphraseGate) Verify(stored, supplied string) bool {
	if stored == "" {
		return false
	}
	if isBcrypt(stored) {
		err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied))
		if err == nil {
			return true
		}
		// A malformed hash is a plaintext phrase that happens to share the prefix.
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false
		}
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
}

func isBcrypt(s string) bool {
	for _, p := range bcryptPrefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
