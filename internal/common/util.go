package common

import "crypto/rand"

// RandBytes returns size cryptographically random bytes. It panics only if
// the platform random source is broken, which is unrecoverable anyway.
func RandBytes(size int) []byte {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return b
}

// WipeBytes overwrites the contents of b with zeros. Useful for removing
// passwords from memory after use. A nil slice is a no-op.
func WipeBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
