// Package credentials holds the operator credential set loaded at startup.
// The store is read-only after construction.
package credentials

import (
	"encoding/json"
	"fmt"
	"os"
)

// User is a single configured operator account.
type User struct {
	Username     string `json:"username"`
	PasswordHash string `json:"password_hash"`
}

// Store maps usernames to their Argon2id password hashes.
type Store struct {
	hashes map[string]string
}

// Load builds a Store from configured users. Usernames must be unique and
// both fields non-empty.
func Load(users []User) (*Store, error) {
	hashes := make(map[string]string, len(users))
	for _, u := range users {
		if u.Username == "" || u.PasswordHash == "" {
			return nil, fmt.Errorf("credentials: user entry with empty username or password hash")
		}
		if _, ok := hashes[u.Username]; ok {
			return nil, fmt.Errorf("credentials: duplicate username %q", u.Username)
		}
		hashes[u.Username] = u.PasswordHash
	}
	return &Store{hashes: hashes}, nil
}

// LoadFile reads a JSON array of users from path and builds a Store.
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("credentials: reading %s: %w", path, err)
	}
	var users []User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("credentials: parsing %s: %w", path, err)
	}
	return Load(users)
}

// Get returns the stored password hash for username.
func (s *Store) Get(username string) (string, bool) {
	h, ok := s.hashes[username]
	return h, ok
}

// Len returns the number of configured users.
func (s *Store) Len() int {
	return len(s.hashes)
}
