package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sm8ta/registration_microservice/internal/core/domain"
	"github.com/sm8ta/registration_microservice/internal/core/ports"
	"github.com/sm8ta/registration_microservice/internal/core/validation"
)

type UserService struct {
	repo      ports.UserRepository
	logger    ports.LoggerPort
	hasher    ports.PasswordHasher
	schema    ports.RecordValidator
	now       func() time.Time
	secretKey func() string
}

type UserServiceOption func(*UserService)

func WithClock(now func() time.Time) UserServiceOption {
	return func(us *UserService) { us.now = now }
}

func WithSecretKeyGenerator(gen func() string) UserServiceOption {
	return func(us *UserService) { us.secretKey = gen }
}

func NewUserService(
	repo ports.UserRepository,
	logger ports.LoggerPort,
	hasher ports.PasswordHasher,
	schema ports.RecordValidator,
	opts ...UserServiceOption,
) *UserService {
	us := &UserService{
		repo:      repo,
		logger:    logger,
		hasher:    hasher,
		schema:    schema,
		now:       time.Now,
		secretKey: NewSecretKey,
	}
	for _, opt := range opts {
		opt(us)
	}
	return us
}

// NewSecretKey returns an opaque, lowercase ULID.
func NewSecretKey() string {
	return strings.ToLower(ulid.Make().String())
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (us *UserService) Register(ctx context.Context, reg domain.Registration) (*domain.User, error) {
	now := us.now()

	if err := validation.ValidateRegistration(reg, now).Err(); err != nil {
		us.logger.Info("Registration form rejected", map[string]interface{}{
			"error":  err.Error(),
			"method": "Register",
		})
		return nil, err
	}

	hashedPassword, err := us.hasher.Hash(reg.Password)
	if err != nil {
		us.logger.Error("Error during hashing", map[string]interface{}{
			"error":  err.Error(),
			"method": "Register",
		})
		return nil, err
	}

	user := us.newUser(reg, hashedPassword, now)

	if fields := us.schema.Validate(user); len(fields) > 0 {
		verr := &domain.ValidationError{Fields: fields}
		us.logger.Info("User record rejected by schema", map[string]interface{}{
			"error":  verr.Error(),
			"method": "Register",
		})
		return nil, fmt.Errorf("%w: %w", domain.ErrStoreRejected, verr)
	}

	user, err = us.repo.CreateUser(ctx, user)
	if err != nil {
		us.logger.Error("Failed to create user in database", map[string]interface{}{
			"error":  err.Error(),
			"method": "Register",
		})
		return nil, err
	}

	us.logger.Info("User registered", map[string]interface{}{
		"user_id": user.ID.Hex(),
	})
	return user, nil
}

func (us *UserService) newUser(reg domain.Registration, hashedPassword string, now time.Time) *domain.User {
	gender := reg.Gender
	if gender == "" {
		gender = domain.Male
	}

	phones := reg.PhoneNumbers
	if phones == nil {
		phones = []string{}
	}

	return &domain.User{
		ID:           primitive.NewObjectID(),
		FirstName:    strings.TrimSpace(reg.FirstName),
		LastName:     strings.TrimSpace(reg.LastName),
		Email:        NormalizeEmail(reg.Email),
		Password:     hashedPassword,
		DateOfBirth:  reg.DateOfBirth,
		Gender:       gender,
		PhoneNumbers: phones,
		SecretKey:    us.secretKey(),
		Roles:        []string{domain.DefaultRole},
		Profile:      domain.NewProfile(),
		CreatedAt:    now.UTC(),
		UpdatedAt:    now.UTC(),
	}
}

var _ ports.UserService = (*UserService)(nil)
