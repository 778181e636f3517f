package hasher

import (
	"github.com/sm8ta/registration_microservice/internal/core/ports"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the work factor used for stored passwords.
const DefaultCost = 10

// MaxPasswordBytes is the bcrypt input limit; longer passwords are
// truncated before hashing and comparing.
const MaxPasswordBytes = 72

type BcryptHasher struct {
	cost int
}

func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword(truncate(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (h *BcryptHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), truncate(password)) == nil
}

func truncate(password string) []byte {
	b := []byte(password)
	if len(b) > MaxPasswordBytes {
		b = b[:MaxPasswordBytes]
	}
	return b
}

var _ ports.PasswordHasher = (*BcryptHasher)(nil)
