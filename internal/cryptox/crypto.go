// Package cryptox implements password hashing for operator credentials.
//
// Stored form: base64(salt) ":" base64(digest), where the digest is derived
// with Argon2id. Verification is constant-time and never reports why a
// stored form failed to verify.
package cryptox

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"strings"

	"golang.org/x/crypto/argon2"
)

const (
	saltLength   = 16
	digestLength = 32
)

// Params are the Argon2id cost parameters.
type Params struct {
	Iterations  uint32
	MemoryKB    uint32
	Parallelism uint8
}

// DefaultParams returns the production cost parameters: 2 iterations,
// 64 MB of memory, parallelism 1.
func DefaultParams() Params {
	return Params{Iterations: 2, MemoryKB: 64 * 1024, Parallelism: 1}
}

// HashPassword hashes password with a fresh random salt and DefaultParams.
func HashPassword(password string) (string, error) {
	return HashPasswordWithParams(password, DefaultParams())
}

// HashPasswordWithParams hashes password with a fresh random salt and the
// given cost parameters.
func HashPasswordWithParams(password string, p Params) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	digest := argon2.IDKey([]byte(password), salt, p.Iterations, p.MemoryKB, p.Parallelism, digestLength)
	return base64.StdEncoding.EncodeToString(salt) + ":" + base64.StdEncoding.EncodeToString(digest), nil
}

// VerifyPassword reports whether password matches the stored form produced
// by HashPassword. A malformed stored form yields false.
func VerifyPassword(password, stored string) bool {
	return VerifyPasswordWithParams(password, stored, DefaultParams())
}

// VerifyPasswordWithParams is VerifyPassword with explicit cost parameters.
// The parameters must match the ones used at hashing time.
func VerifyPasswordWithParams(password, stored string, p Params) bool {
	parts := strings.Split(stored, ":")
	if len(parts) != 2 {
		return false
	}
	salt, err := base64.StdEncoding.DecodeString(parts[0])
	if err != nil {
		return false
	}
	digest, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return false
	}
	candidate := argon2.IDKey([]byte(password), salt, p.Iterations, p.MemoryKB, p.Parallelism, digestLength)
	return subtle.ConstantTimeCompare(digest, candidate) == 1
}
