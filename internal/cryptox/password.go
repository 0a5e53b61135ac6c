// Package cryptox implements one-way password hashing. Encoded hashes carry
// their algorithm and parameters, so any supported hash can be verified
// regardless of which hasher is currently configured for new passwords.
package cryptox

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/recipeapp/internal/common"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

const (
	AlgorithmArgon2id = "argon2id"
	AlgorithmBcrypt   = "bcrypt"

	// UnusablePasswordPrefix marks an encoded value that never verifies.
	UnusablePasswordPrefix = "!"
)

var ErrUnknownAlgorithm = errors.New("unknown password hash algorithm")
var ErrMalformedHash = errors.New("malformed password hash")

// PasswordHasher turns a plaintext password into a self-describing encoded hash.
type PasswordHasher interface {
	Algorithm() string
	Hash(password []byte) (string, error)
	Verify(password []byte, encoded string) (bool, error)
}

// NewPasswordHasher returns the hasher for the named algorithm with default parameters.
// bcryptCost is only used for bcrypt; zero selects bcrypt.DefaultCost.
func NewPasswordHasher(algorithm string, bcryptCost int) (PasswordHasher, error) {
	switch algorithm {
	case "", AlgorithmArgon2id:
		return NewArgon2Hasher(), nil
	case AlgorithmBcrypt:
		return NewBcryptHasher(bcryptCost), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}
}

// Identify returns the algorithm prefix of an encoded hash.
func Identify(encoded string) string {
	algo, _, _ := strings.Cut(encoded, "$")
	return algo
}

// IsUsable reports whether encoded can ever verify a password.
func IsUsable(encoded string) bool {
	return encoded != "" && !strings.HasPrefix(encoded, UnusablePasswordPrefix)
}

// UnusablePassword returns a random encoded value that no password verifies against.
func UnusablePassword() string {
	s, err := common.MakeRandHexString(20)
	if err != nil {
		return UnusablePasswordPrefix
	}
	return UnusablePasswordPrefix + s
}

// CheckPassword verifies password against any supported encoded hash.
func CheckPassword(password []byte, encoded string) (bool, error) {
	if !IsUsable(encoded) {
		return false, common.ErrorUnusablePassword
	}
	h, err := NewPasswordHasher(Identify(encoded), 0)
	if err != nil {
		return false, err
	}
	return h.Verify(password, encoded)
}

// Argon2Hasher hashes with argon2id. Encoded form:
//
//	argon2id$v=19$m=65536,t=1,p=4$<salt>$<key>
//
// with salt and key in unpadded standard base64.
type Argon2Hasher struct {
	Time    uint32
	Memory  uint32
	Threads uint8
	KeyLen  uint32
	SaltLen int
}

func NewArgon2Hasher() *Argon2Hasher {
	return &Argon2Hasher{Time: 1, Memory: 64 * 1024, Threads: 4, KeyLen: 32, SaltLen: 16}
}

func (h *Argon2Hasher) Algorithm() string { return AlgorithmArgon2id }

func (h *Argon2Hasher) Hash(password []byte) (string, error) {
	salt := common.GenerateRandByteArray(h.SaltLen)
	key := argon2.IDKey(password, salt, h.Time, h.Memory, h.Threads, h.KeyLen)

	b64 := base64.RawStdEncoding
	return fmt.Sprintf("%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		AlgorithmArgon2id, argon2.Version, h.Memory, h.Time, h.Threads,
		b64.EncodeToString(salt), b64.EncodeToString(key)), nil
}

func (h *Argon2Hasher) Verify(password []byte, encoded string) (bool, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 5 || parts[0] != AlgorithmArgon2id {
		return false, ErrMalformedHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[1], "v=%d", &version); err != nil || version != argon2.Version {
		return false, ErrMalformedHash
	}

	var memory, time uint32
	var threads uint8
	if _, err := fmt.Sscanf(parts[2], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return false, ErrMalformedHash
	}

	b64 := base64.RawStdEncoding
	salt, err := b64.DecodeString(parts[3])
	if err != nil {
		return false, ErrMalformedHash
	}
	key, err := b64.DecodeString(parts[4])
	if err != nil || len(key) == 0 {
		return false, ErrMalformedHash
	}

	candidate := argon2.IDKey(password, salt, time, memory, threads, uint32(len(key)))
	return subtle.ConstantTimeCompare(key, candidate) == 1, nil
}

// BcryptHasher hashes with bcrypt. Encoded form: bcrypt$<bcrypt hash>.
// bcrypt rejects passwords longer than 72 bytes.
type BcryptHasher struct {
	Cost int
}

func NewBcryptHasher(cost int) *BcryptHasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{Cost: cost}
}

func (h *BcryptHasher) Algorithm() string { return AlgorithmBcrypt }

func (h *BcryptHasher) Hash(password []byte) (string, error) {
	b, err := bcrypt.GenerateFromPassword(password, h.Cost)
	if err != nil {
		return "", err
	}
	return AlgorithmBcrypt + "$" + string(b), nil
}

func (h *BcryptHasher) Verify(password []byte, encoded string) (bool, error) {
	algo, hash, ok := strings.Cut(encoded, "$")
	if !ok || algo != AlgorithmBcrypt {
		return false, ErrMalformedHash
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), password)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %v", ErrMalformedHash, err)
	}
}
