// Package credentials implements the static username-to-digest mapping used
// by the access gate. The store is loaded once at process start and never
// mutated; there is no enrollment flow.
package credentials

import (
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/blogkeeper/internal/common"
	"github.com/dmitrijs2005/blogkeeper/internal/cryptox"
)

type credential struct {
	salt     []byte
	verifier []byte
}

// Store is an immutable lookup table from username to credential.
type Store struct {
	entries map[string]credential
}

// fileEntry is the JSON DTO for a persisted credential; Salt and Verifier
// are base64 strings on disk via the standard []byte encoding.
type fileEntry struct {
	Username string `json:"username"`
	Salt     []byte `json:"salt"`
	Verifier []byte `json:"verifier"`
}

// LoadFile reads a credential store from a JSON file holding a list of
// fileEntry objects.
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read credentials: %w", err)
	}
	var entries []fileEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse credentials: %w", err)
	}
	s := &Store{entries: make(map[string]credential, len(entries))}
	for _, e := range entries {
		s.entries[e.Username] = credential{salt: e.Salt, verifier: e.Verifier}
	}
	return s, nil
}

// FromPlain builds a store from plaintext passwords, deriving a fresh salt
// and verifier per user. Used for the built-in development users and tests.
func FromPlain(users map[string]string) *Store {
	s := &Store{entries: make(map[string]credential, len(users))}
	for name, password := range users {
		salt := common.RandBytes(16)
		s.entries[name] = credential{
			salt:     salt,
			verifier: cryptox.Digest([]byte(password), salt),
		}
	}
	return s
}

// Verify reports whether the password matches the stored credential for
// username. The verifier comparison is constant-time.
func (s *Store) Verify(username string, password []byte) bool {
	c, ok := s.entries[username]
	if !ok {
		return false
	}
	candidate := cryptox.Digest(password, c.salt)
	return subtle.ConstantTimeCompare(candidate, c.verifier) == 1
}
