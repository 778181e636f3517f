package ports

import (
	"context"

	"github.com/sm8ta/registration_microservice/internal/core/domain"
)

type TokenService interface {
	CreateToken(user *domain.User) (string, error)
	VerifyToken(token string) (domain.TokenPayload, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

type AuthService interface {
	Login(ctx context.Context, credentials domain.Credentials) (string, *domain.User, error)
}
