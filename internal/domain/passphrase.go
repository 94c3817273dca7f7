package domain

// PassphraseGate seals passphrases for storage and checks a supplied
// passphrase against the stored form. Anyone holding the phrase may edit or
// delete the event; it is a shared secret, not a per-user credential.
type PassphraseGate interface {
	// Seal returns the value to persist for a new event.
	Seal(plain string) (string, error)
	// Verify reports whether supplied matches stored.
	Verify(stored, supplied string) bool
}
