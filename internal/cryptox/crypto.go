// Package cryptox implements the one-way credential digest used by the
// credential store: an Argon2id key derived from the password and a
// per-user salt, compressed into a fixed-size SHA-256 verifier.
package cryptox

import (
	"crypto/sha256"

	"golang.org/x/crypto/argon2"
)

// DeriveKey derives a 32-byte key from password and salt using Argon2id.
func DeriveKey(password, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}

// MakeVerifier hashes a derived key into the value that is stored and
// compared during login. Only the verifier is ever persisted.
func MakeVerifier(key []byte) []byte {
	hash := sha256.Sum256(key)
	return hash[:]
}

// Digest is the full password -> stored-credential pipeline.
func Digest(password, salt []byte) []byte {
	return MakeVerifier(DeriveKey(password, salt))
}
