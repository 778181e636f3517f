package ports

import (
	"context"

	"github.com/sm8ta/registration_microservice/internal/core/domain"
)

// UserRepository is the persistent user store. CreateUser reports
// constraint violations as domain.ErrStoreRejected, lookups report a
// missing record as (nil, nil).
type UserRepository interface {
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserBySecretKey(ctx context.Context, secretKey string) (*domain.User, error)
}

type UserService interface {
	Register(ctx context.Context, registration domain.Registration) (*domain.User, error)
}

type RecordValidator interface {
	Validate(user *domain.User) map[string]string
}
