// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the one-way password hashing used by the credential
// store. Plaintext passwords enter through [PasswordHasher.Hash] and are never
// persisted; login checks go through [PasswordHasher.Compare].
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher derives and verifies salted one-way password hashes.
type PasswordHasher interface {
	// Hash returns a salted hash of password. Two calls with the same input
	// produce different hashes.
	Hash(password string) (string, error)

	// Compare returns nil when password matches hash and ErrPasswordMismatch
	// otherwise. A malformed hash is reported as a distinct error.
	Compare(hash, password string) error
}
