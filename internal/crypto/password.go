// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	stdcrypto "crypto"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

const (
	// AlgorithmSHA256 digests salt||password with SHA-256, base64 encoded.
	AlgorithmSHA256 = "sha256"
	// AlgorithmArgon2id derives the digest with argon2id.
	AlgorithmArgon2id = "argon2id"

	saltSize = 16 // 128 bits
)

// Argon2Params are the argon2id tuning parameters.
type Argon2Params struct {
	Time    uint32
	Memory  uint32
	Threads uint8
	KeyLen  uint32
}

// DefaultArgon2Params are the parameters recommended by OWASP (2024):
// 1 iteration, 64 MiB, 4 lanes, 256-bit output.
var DefaultArgon2Params = Argon2Params{
	Time:    1,
	Memory:  64 * 1024,
	Threads: 4,
	KeyLen:  32,
}

// passwordHasher is the private implementation of [PasswordHasher].
type passwordHasher struct {
	algorithm string
	digest    func(password, salt string) []byte
	random    io.Reader
}

// NewPasswordHasher constructs a [PasswordHasher] for algorithm.
//
// It fails with [ErrHashingUnavailable] when the SHA-256 primitive is not
// available in the running binary; callers treat that as fatal at startup.
// It fails with [ErrUnknownAlgorithm] for an unsupported scheme.
func NewPasswordHasher(algorithm string) (PasswordHasher, error) {
	return newPasswordHasher(algorithm, DefaultArgon2Params, rand.Reader)
}

func newPasswordHasher(algorithm string, params Argon2Params, random io.Reader) (*passwordHasher, error) {
	if err := EnsureHashingAvailable(); err != nil {
		return nil, err
	}

	h := &passwordHasher{algorithm: algorithm, random: random}

	switch algorithm {
	case AlgorithmSHA256:
		h.digest = sha256Digest
	case AlgorithmArgon2id:
		h.digest = func(password, salt string) []byte {
			return argon2.IDKey([]byte(password), []byte(salt), params.Time, params.Memory, params.Threads, params.KeyLen)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}

	return h, nil
}

// EnsureHashingAvailable reports [ErrHashingUnavailable] when the SHA-256
// primitive is not linked into the binary.
func EnsureHashingAvailable() error {
	if !stdcrypto.SHA256.Available() {
		return ErrHashingUnavailable
	}
	return nil
}

// sha256Digest hashes the encoded salt followed by the password.
func sha256Digest(password, salt string) []byte {
	h := sha256.New()
	h.Write([]byte(salt))
	h.Write([]byte(password))
	return h.Sum(nil)
}

// Algorithm implements [PasswordHasher].
func (h *passwordHasher) Algorithm() string {
	return h.algorithm
}

// GenerateSalt implements [PasswordHasher]. It reads 16 random bytes and
// returns them base64 encoded.
func (h *passwordHasher) GenerateSalt() (string, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(h.random, salt); err != nil {
		return "", fmt.Errorf("%w: %w", ErrGeneratingSalt, err)
	}
	return base64.StdEncoding.EncodeToString(salt), nil
}

// HashPassword implements [PasswordHasher]. The digest is base64 encoded.
func (h *passwordHasher) HashPassword(password, salt string) string {
	return base64.StdEncoding.EncodeToString(h.digest(password, salt))
}

// Verify implements [PasswordHasher].
func (h *passwordHasher) Verify(password, salt, digest string) bool {
	computed := h.HashPassword(password, salt)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(digest)) == 1
}
