package mocks

import (
	"fmt"

	"github.com/myflix/myflix-api/internal/service/auth"
)

// MockPasswordHasher implements auth.PasswordHasher for testing without the
// cost of real bcrypt rounds.
type MockPasswordHasher struct {
	HashFn    func(password string) (string, error)
	CompareFn func(hashedPassword, password string) error

	HashCalls    int
	CompareCalls int
}

// Hash implements the PasswordHasher interface
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	m.HashCalls++
	if m.HashFn != nil {
		return m.HashFn(password)
	}
	return "hashed:" + password, nil
}

// Compare implements the PasswordHasher interface
func (m *MockPasswordHasher) Compare(hashedPassword, password string) error {
	m.CompareCalls++
	if m.CompareFn != nil {
		return m.CompareFn(hashedPassword, password)
	}
	if hashedPassword != "hashed:"+password {
		return fmt.Errorf("password mismatch")
	}
	return nil
}

var _ auth.PasswordHasher = (*MockPasswordHasher)(nil)
var _ auth.PasswordVerifier = (*MockPasswordHasher)(nil)
