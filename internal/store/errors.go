package store

import "errors"

var (
	// ErrCorruptRecord is returned when a stored record exists but cannot be parsed.
	ErrCorruptRecord = errors.New("stored record is corrupt")

	// ErrWrongPassphrase is returned when a sealed record cannot be opened, either
	// because the passphrase is wrong or the ciphertext was modified.
	ErrWrongPassphrase = errors.New("wrong passphrase or corrupted check-in")

	// ErrSealed is returned when only a sealed record exists and no passphrase was given.
	ErrSealed = errors.New("check-in is sealed; a passphrase is required")
)
