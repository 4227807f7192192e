// Package cryptox wraps the password hashing primitive used for stored
// credentials.
package cryptox

import (
	"github.com/amrit110/moonshot-ui/internal/common"
	"golang.org/x/crypto/bcrypt"
)

// Hasher produces salted one-way hashes of plaintext passwords and checks
// candidates against them.
type Hasher interface {
	// Hash returns a self-describing hash string. Two calls with the same
	// password return different strings.
	Hash(password string) (string, error)

	// Check reports whether password matches hash.
	Check(password, hash string) bool
}

// BcryptHasher implements Hasher with bcrypt. The salt comes from crypto/rand
// and is embedded in the output together with the cost, e.g.
//
//	$2a$10$<22 chars of salt><31 chars of hash>
type BcryptHasher struct {
	Cost int
}

// NewBcryptHasher returns a hasher with the given cost. Costs below
// bcrypt.MinCost are replaced with bcrypt.DefaultCost by bcrypt itself;
// costs above bcrypt.MaxCost make Hash fail.
func NewBcryptHasher(cost int) *BcryptHasher {
	return &BcryptHasher{Cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	plain := []byte(password)
	defer common.WipeByteArray(plain)

	hash, err := bcrypt.GenerateFromPassword(plain, h.Cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (h *BcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
