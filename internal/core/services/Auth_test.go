package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sm8ta/registration_microservice/internal/core/domain"
)

type authFixture struct {
	auth  *AuthService
	repo  *countingRepo
	cache *mapCache
	user  *domain.User
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	mem := newMemoryRepo()
	user, err := newTestUserService(mem, now).Register(context.Background(), registration())
	require.NoError(t, err)

	repo := &countingRepo{UserRepository: mem}
	cache := newMapCache()
	return &authFixture{
		auth:  NewAuthService(repo, fakeTokens{}, testHasher(), discardLogger(), cache),
		repo:  repo,
		cache: cache,
		user:  user,
	}
}

func TestLogin_ByEmail(t *testing.T) {
	f := newAuthFixture(t)

	token, user, err := f.auth.Login(context.Background(), domain.EmailCredentials{Email: "A@b.com ", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "token-for-"+f.user.ID.Hex(), token)
	assert.Equal(t, f.user.ID, user.ID)
	assert.Equal(t, []string{"user"}, user.Roles)
	assert.Empty(t, user.Password)
	assert.Empty(t, user.SecretKey)
}

func TestLogin_Failures(t *testing.T) {
	f := newAuthFixture(t)

	tests := []struct {
		name        string
		credentials domain.Credentials
		want        error
	}{
		{"unknown email", domain.EmailCredentials{Email: "x@y.com", Password: "secret1"}, domain.ErrUserNotFound},
		{"wrong password", domain.EmailCredentials{Email: "a@b.com", Password: "wrong12"}, domain.ErrInvalidPassword},
		{"empty password", domain.EmailCredentials{Email: "a@b.com"}, domain.ErrInvalidPassword},
		{"unknown secret key", domain.SecretKeyCredentials{SecretKey: "nope"}, domain.ErrInvalidSecretKey},
		{"empty secret key", domain.SecretKeyCredentials{}, domain.ErrInvalidSecretKey},
		{"no method", nil, domain.ErrInvalidLoginMethod},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, user, err := f.auth.Login(context.Background(), tt.credentials)
			require.ErrorIs(t, err, tt.want)
			assert.Empty(t, token)
			assert.Nil(t, user)
		})
	}
}

func TestLogin_BySecretKeyUsesCache(t *testing.T) {
	f := newAuthFixture(t)
	creds := domain.SecretKeyCredentials{SecretKey: f.user.SecretKey}

	_, user, err := f.auth.Login(context.Background(), creds)
	require.NoError(t, err)
	assert.Equal(t, f.user.ID, user.ID)
	assert.Equal(t, 1, f.repo.reads)
	assert.Equal(t, 1, f.cache.sets)

	_, user, err = f.auth.Login(context.Background(), creds)
	require.NoError(t, err)
	assert.Equal(t, f.user.ID, user.ID)
	assert.Equal(t, 1, f.repo.reads)
}

func TestLogin_CachedRecordKeepsPasswordHash(t *testing.T) {
	f := newAuthFixture(t)
	creds := domain.EmailCredentials{Email: "a@b.com", Password: "secret1"}

	_, _, err := f.auth.Login(context.Background(), creds)
	require.NoError(t, err)

	_, _, err = f.auth.Login(context.Background(), creds)
	require.NoError(t, err)
	assert.Equal(t, 1, f.repo.reads)

	_, _, err = f.auth.Login(context.Background(), domain.EmailCredentials{Email: "a@b.com", Password: "wrong12"})
	require.ErrorIs(t, err, domain.ErrInvalidPassword)
}

func TestLogin_StoreFailureIsNotAuthFailure(t *testing.T) {
	f := newAuthFixture(t)
	f.repo.readErr = errors.New("connection refused")

	_, _, err := f.auth.Login(context.Background(), domain.EmailCredentials{Email: "a@b.com", Password: "secret1"})
	require.EqualError(t, err, "connection refused")
	assert.False(t, errors.Is(err, domain.ErrUserNotFound))
}

func TestLogin_TokenFailure(t *testing.T) {
	f := newAuthFixture(t)
	f.auth.tokenService = fakeTokens{err: errors.New("sign failed")}

	_, _, err := f.auth.Login(context.Background(), domain.EmailCredentials{Email: "a@b.com", Password: "secret1"})
	require.EqualError(t, err, "sign failed")
}
