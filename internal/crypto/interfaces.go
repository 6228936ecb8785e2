// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the password primitives of the credential store:
// per-user salt generation, salted one-way password digests and their
// constant-time verification.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher produces and verifies salted password digests.
// Implementations are safe for concurrent use.
type PasswordHasher interface {
	// Algorithm returns the configured scheme name ("sha256", "argon2id").
	Algorithm() string

	// GenerateSalt returns a fresh 128-bit value from the OS CSPRNG,
	// base64 encoded. Every call yields a new value.
	GenerateSalt() (string, error)

	// HashPassword returns the encoded digest of (salt, password). The result
	// is a deterministic function of its inputs.
	HashPassword(password, salt string) string

	// Verify recomputes the digest of (salt, password) and compares it with
	// digest in constant time.
	Verify(password, salt, digest string) bool
}
