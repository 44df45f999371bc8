package utils

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher turns submitted passwords into their stored form and
// checks submitted passwords against stored ones.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(stored, password string) bool
}

// NewPasswordHasher returns the hasher for mode: "bcrypt" stores bcrypt
// hashes, anything else keeps passwords as submitted.
func NewPasswordHasher(mode string) PasswordHasher {
	if mode == "bcrypt" {
		return bcryptHasher{cost: bcrypt.DefaultCost}
	}
	return plainHasher{}
}

type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) {
	return password, nil
}

func (plainHasher) Compare(stored, password string) bool {
	return stored == password
}

type bcryptHasher struct {
	cost int
}

func (h bcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return string(hash), nil
}

// Compare accepts stored values written before bcrypt was enabled by
// falling back to an exact match when stored is not a bcrypt hash.
func (h bcryptHasher) Compare(stored, password string) bool {
	if !strings.HasPrefix(stored, "$2") {
		return stored == password
	}
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
}
