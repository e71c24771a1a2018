package credentials

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sync"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

var (
	ErrEmptyPassword  = errors.New("password must not be empty")
	ErrInvalidHash    = errors.New("stored password hash is not a bcrypt hash")
	ErrEmptyUsername  = errors.New("username must not be empty")
	ErrReadUsersFile  = errors.New("failed to read users file")
	ErrParseUsersFile = errors.New("failed to parse users file")
)

// dummyHash is compared against when the username is unknown, so unknown
// users cost about as much as known ones.
var dummyHash = sync.OnceValue(func() []byte {
	hash, _ := bcrypt.GenerateFromPassword([]byte("doccms"), bcrypt.DefaultCost)
	return hash
})

// Store answers whether a username/password pair is valid.
// It is read-only after construction and safe for concurrent use.
type Store struct {
	users map[string][]byte
}

// New builds a Store from a username -> bcrypt hash map.
func New(users map[string]string) (*Store, error) {
	s := &Store{users: make(map[string][]byte, len(users))}
	for username, hash := range users {
		if username == "" {
			return nil, ErrEmptyUsername
		}
		if _, err := bcrypt.Cost([]byte(hash)); err != nil {
			return nil, fmt.Errorf("%w: user %q", ErrInvalidHash, username)
		}
		s.users[username] = []byte(hash)
	}
	return s, nil
}

// LoadFile reads a YAML mapping of username to bcrypt hash:
//
//	admin: $2a$12$...
//	editor: $2a$12$...
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrReadUsersFile, err)
	}
	return Parse(data)
}

// Parse builds a Store from YAML bytes. An empty document yields a store
// with no users, which rejects every sign-in.
func Parse(data []byte) (*Store, error) {
	users := map[string]string{}
	if len(bytes.TrimSpace(data)) > 0 {
		if err := yaml.Unmarshal(data, &users); err != nil {
			return nil, errors.Join(ErrParseUsersFile, err)
		}
	}
	return New(users)
}

// Authenticate reports whether password matches the stored hash for username.
// Unknown users and wrong passwords are indistinguishable to the caller.
func (s *Store) Authenticate(username, password string) bool {
	hash, ok := s.users[username]
	if !ok {
		_ = bcrypt.CompareHashAndPassword(dummyHash(), []byte(password))
		return false
	}
	return bcrypt.CompareHashAndPassword(hash, []byte(password)) == nil
}

// Len returns the number of known users.
func (s *Store) Len() int {
	return len(s.users)
}

// Hash returns a bcrypt hash of password suitable for the users file.
// A cost of 0 selects bcrypt.DefaultCost.
func Hash(password string, cost int) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
