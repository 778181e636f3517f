package services

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/sm8ta/registration_microservice/internal/adapter/hasher"
	"github.com/sm8ta/registration_microservice/internal/adapter/logger"
	"github.com/sm8ta/registration_microservice/internal/adapter/memory"
	"github.com/sm8ta/registration_microservice/internal/core/domain"
	"github.com/sm8ta/registration_microservice/internal/core/ports"
	"github.com/sm8ta/registration_microservice/internal/core/validation"
)

var errMiss = errors.New("miss")

type mapCache struct {
	mu   sync.Mutex
	data map[string][]byte
	sets int
}

func newMapCache() *mapCache {
	return &mapCache{data: make(map[string][]byte)}
}

func (c *mapCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[key]
	if !ok {
		return nil, errMiss
	}
	return v, nil
}

func (c *mapCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	c.sets++
	return nil
}

// countingRepo records store reads and can fail on demand.
type countingRepo struct {
	ports.UserRepository
	reads   int
	readErr error
}

func (r *countingRepo) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.reads++
	if r.readErr != nil {
		return nil, r.readErr
	}
	return r.UserRepository.GetUserByEmail(ctx, email)
}

func (r *countingRepo) GetUserBySecretKey(ctx context.Context, key string) (*domain.User, error) {
	r.reads++
	if r.readErr != nil {
		return nil, r.readErr
	}
	return r.UserRepository.GetUserBySecretKey(ctx, key)
}

type fakeTokens struct {
	err error
}

func (f fakeTokens) CreateToken(user *domain.User) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "token-for-" + user.ID.Hex(), nil
}

func (fakeTokens) VerifyToken(string) (domain.TokenPayload, error) {
	return domain.TokenPayload{}, errors.New("not implemented")
}

type failingHasher struct{}

func (failingHasher) Hash(string) (string, error) { return "", errors.New("hash failed") }
func (failingHasher) Verify(string, string) bool  { return false }

func discardLogger() ports.LoggerPort {
	return logger.NewLoggerAdapterTo("prod", io.Discard)
}

func testHasher() ports.PasswordHasher {
	return hasher.NewBcryptHasher(bcrypt.MinCost)
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newTestUserService(repo ports.UserRepository, now time.Time, opts ...UserServiceOption) *UserService {
	schema := validation.NewSchemaValidator(validator.New(), fixedClock(now))
	opts = append([]UserServiceOption{WithClock(fixedClock(now))}, opts...)
	return NewUserService(repo, discardLogger(), testHasher(), schema, opts...)
}

func newMemoryRepo() *memory.UserRepository {
	return memory.NewUserRepository()
}
