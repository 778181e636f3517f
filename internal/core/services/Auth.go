package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/sm8ta/registration_microservice/internal/core/domain"
	"github.com/sm8ta/registration_microservice/internal/core/ports"
)

const lookupCacheTTL = 10 * time.Minute

type AuthService struct {
	userRepo     ports.UserRepository
	tokenService ports.TokenService
	hasher       ports.PasswordHasher
	logger       ports.LoggerPort
	cache        ports.CachePort
}

func NewAuthService(
	userRepo ports.UserRepository,
	tokenService ports.TokenService,
	hasher ports.PasswordHasher,
	logger ports.LoggerPort,
	cache ports.CachePort,
) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		tokenService: tokenService,
		hasher:       hasher,
		logger:       logger,
		cache:        cache,
	}
}

// Login never writes to the store; failed attempts leave the record as is.
func (s *AuthService) Login(ctx context.Context, credentials domain.Credentials) (string, *domain.User, error) {
	var (
		user *domain.User
		err  error
	)

	switch c := credentials.(type) {
	case domain.EmailCredentials:
		user, err = s.loginByEmail(ctx, c)
	case domain.SecretKeyCredentials:
		user, err = s.loginBySecretKey(ctx, c)
	default:
		return "", nil, domain.ErrInvalidLoginMethod
	}
	if err != nil {
		return "", nil, err
	}

	token, err := s.tokenService.CreateToken(user)
	if err != nil {
		s.logger.Error("Failed to create token", map[string]interface{}{
			"error":   err.Error(),
			"user_id": user.ID.Hex(),
		})
		return "", nil, err
	}

	userResponse := *user
	userResponse.Password = ""
	userResponse.SecretKey = ""
	return token, &userResponse, nil
}

func (s *AuthService) loginByEmail(ctx context.Context, c domain.EmailCredentials) (*domain.User, error) {
	email := NormalizeEmail(c.Email)

	user, err := s.lookup(ctx, "user_email:"+email, func() (*domain.User, error) {
		return s.userRepo.GetUserByEmail(ctx, email)
	})
	if err != nil {
		s.logger.Error("Failed to get user by email", map[string]interface{}{
			"email": email,
			"error": err.Error(),
		})
		return nil, err
	}
	if user == nil {
		s.logger.Info("Login for unknown email", map[string]interface{}{
			"email": email,
		})
		return nil, domain.ErrUserNotFound
	}

	if !s.hasher.Verify(c.Password, user.Password) {
		s.logger.Info("Invalid password attempt", map[string]interface{}{
			"email": email,
		})
		return nil, domain.ErrInvalidPassword
	}
	return user, nil
}

func (s *AuthService) loginBySecretKey(ctx context.Context, c domain.SecretKeyCredentials) (*domain.User, error) {
	if c.SecretKey == "" {
		return nil, domain.ErrInvalidSecretKey
	}

	user, err := s.lookup(ctx, "user_secret:"+c.SecretKey, func() (*domain.User, error) {
		return s.userRepo.GetUserBySecretKey(ctx, c.SecretKey)
	})
	if err != nil {
		s.logger.Error("Failed to get user by secret key", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}
	if user == nil {
		s.logger.Info("Invalid secret key attempt", nil)
		return nil, domain.ErrInvalidSecretKey
	}
	return user, nil
}

// lookup reads through the cache. Records are immutable once created, so
// cached entries never go stale; cache failures only cost a store read.
func (s *AuthService) lookup(ctx context.Context, key string, load func() (*domain.User, error)) (*domain.User, error) {
	cached, err := s.cache.Get(ctx, key)
	if err == nil {
		var user domain.User
		if err := bson.Unmarshal(cached, &user); err == nil {
			s.logger.Debug("User found in cache", map[string]interface{}{
				"user_id": user.ID.Hex(),
			})
			return &user, nil
		}
	}

	user, err := load()
	if err != nil || user == nil {
		return user, err
	}

	data, err := bson.Marshal(user)
	if err != nil {
		s.logger.Warn("Failed to marshal user for cache", map[string]interface{}{
			"error":   err.Error(),
			"user_id": user.ID.Hex(),
		})
		return user, nil
	}
	if err := s.cache.Set(ctx, key, data, lookupCacheTTL); err != nil && !errors.Is(err, context.Canceled) {
		s.logger.Warn("Failed to cache user", map[string]interface{}{
			"error":   err.Error(),
			"user_id": user.ID.Hex(),
		})
	}
	return user, nil
}

var _ ports.AuthService = (*AuthService)(nil)
