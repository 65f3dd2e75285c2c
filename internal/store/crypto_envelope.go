package store

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"math/bits"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"becoming/internal/util/memzero"
)

// sealedFormatVersion is the current version of the sealed record format on disk.
const sealedFormatVersion = 1

// sealed is the on-disk JSON structure holding the ciphertext and KDF parameters.
type sealed struct {
	V      int    `json:"v"`
	Salt   []byte `json:"salt"`
	N      int    `json:"scrypt_N"`
	R      int    `json:"scrypt_r"`
	P      int    `json:"scrypt_p"`
	Cipher []byte `json:"cipher"`
}

// kdfParams are the scrypt cost parameters. Tests lower them.
type kdfParams struct{ N, R, P int }

func defaultKDF() kdfParams { return kdfParams{N: 1 << 15, R: 8, P: 1} }

// Upper bounds on the cost read back from disk. scrypt allocates 128·N·r
// bytes, so an edited envelope could otherwise exhaust memory.
const (
	maxScryptN      = 1 << 20
	maxScryptMemory = 1 << 28
	maxScryptRP     = 1 << 30
	saltSize        = 16
)

// check reports whether the parameters are ones seal could have written
// within the bounds above.
func (k kdfParams) check() error {
	switch {
	case k.N < 2 || k.N > maxScryptN || bits.OnesCount(uint(k.N)) != 1:
		return fmt.Errorf("scrypt N %d out of range", k.N)
	case k.R < 1 || k.P < 1 || k.R >= maxScryptRP || k.P >= maxScryptRP || k.R*k.P >= maxScryptRP:
		return fmt.Errorf("scrypt r=%d p=%d out of range", k.R, k.P)
	case 128*k.N*k.R > maxScryptMemory:
		return fmt.Errorf("scrypt N=%d r=%d needs too much memory", k.N, k.R)
	}
	return nil
}

// seal derives a key from passphrase and encrypts raw into a JSON envelope.
func seal(passphrase string, raw []byte, kdf kdfParams) ([]byte, error) {
	if err := kdf.check(); err != nil {
		return nil, err
	}
	var salt [saltSize]byte
	if _, err := rand.Read(salt[:]); err != nil {
		return nil, err
	}
	key, err := scrypt.Key([]byte(passphrase), salt[:], kdf.N, kdf.R, kdf.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	var nonce [chacha20poly1305.NonceSize]byte // zero nonce; the per-seal salt makes every key unique
	ct := aead.Seal(nil, nonce[:], raw, salt[:])

	return json.Marshal(sealed{
		V:      sealedFormatVersion,
		Salt:   salt[:],
		N:      kdf.N,
		R:      kdf.R,
		P:      kdf.P,
		Cipher: ct,
	})
}

// open decrypts an envelope produced by seal.
func open(passphrase string, b []byte) ([]byte, error) {
	var env sealed
	if err := decodeJSON(b, &env); err != nil {
		return nil, err
	}
	if env.V > sealedFormatVersion {
		return nil, fmt.Errorf("unsupported sealed record version %d", env.V)
	}

	kdf := kdfParams{N: env.N, R: env.R, P: env.P}
	if err := kdf.check(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptRecord, err)
	}
	if len(env.Salt) != saltSize {
		return nil, fmt.Errorf("%w: salt is %d bytes", ErrCorruptRecord, len(env.Salt))
	}

	key, err := scrypt.Key([]byte(passphrase), env.Salt, kdf.N, kdf.R, kdf.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptRecord, err)
	}
	defer memzero.Zero(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	var nonce [chacha20poly1305.NonceSize]byte
	pt, err := aead.Open(nil, nonce[:], env.Cipher, env.Salt)
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return pt, nil
}
