package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sm8ta/registration_microservice/internal/core/domain"
	"github.com/sm8ta/registration_microservice/internal/core/validation"
)

var now = time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)

func registration() domain.Registration {
	return domain.Registration{
		FirstName:    " A ",
		LastName:     "B",
		Email:        " A@B.com ",
		Password:     "secret1",
		PhoneNumbers: []string{"555"},
		DateOfBirth:  time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestRegister_BuildsRecordWithDefaults(t *testing.T) {
	repo := newMemoryRepo()
	us := newTestUserService(repo, now, WithSecretKeyGenerator(func() string { return "fixed-key" }))

	user, err := us.Register(context.Background(), registration())
	require.NoError(t, err)

	assert.False(t, user.ID.IsZero())
	assert.Equal(t, "A", user.FirstName)
	assert.Equal(t, "a@b.com", user.Email)
	assert.Equal(t, domain.Male, user.Gender)
	assert.Equal(t, "fixed-key", user.SecretKey)
	assert.Equal(t, []string{domain.DefaultRole}, user.Roles)
	assert.False(t, user.Verified)
	assert.False(t, user.IsApproved)
	assert.Equal(t, domain.DefaultPrivacySettings(), user.PrivacySettings)
	assert.Equal(t, now, user.CreatedAt)

	assert.NotEqual(t, "secret1", user.Password)
	assert.True(t, testHasher().Verify("secret1", user.Password))

	stored, err := repo.GetUserBySecretKey(context.Background(), "fixed-key")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, user.ID, stored.ID)
}

func TestRegister_FormViolationsNeverReachStore(t *testing.T) {
	repo := newMemoryRepo()
	us := newTestUserService(repo, now)

	reg := registration()
	reg.Password = "123"
	reg.PhoneNumbers = nil

	_, err := us.Register(context.Background(), reg)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.NotErrorIs(t, err, domain.ErrStoreRejected)
	assert.Equal(t, map[string]string{
		"password":     "Password must be at least 6 characters",
		"phoneNumbers": "At least one phone number is required",
	}, verr.Fields)
	assert.Zero(t, repo.Count())
}

func TestRegister_MinorWithoutPhone(t *testing.T) {
	repo := newMemoryRepo()
	us := newTestUserService(repo, now)

	reg := registration()
	reg.DateOfBirth = time.Date(2010, time.December, 31, 0, 0, 0, 0, time.UTC)
	reg.PhoneNumbers = nil

	user, err := us.Register(context.Background(), reg)
	require.NoError(t, err)
	assert.Equal(t, []string{}, user.PhoneNumbers)
}

func TestRegister_SchemaRejectionIsStoreRejection(t *testing.T) {
	us := newTestUserService(newMemoryRepo(), now)

	reg := registration()
	reg.Gender = "Other"

	_, err := us.Register(context.Background(), reg)
	require.ErrorIs(t, err, domain.ErrStoreRejected)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "gender")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	us := newTestUserService(newMemoryRepo(), now)

	_, err := us.Register(context.Background(), registration())
	require.NoError(t, err)

	again := registration()
	again.Email = "a@b.com"
	_, err = us.Register(context.Background(), again)
	require.ErrorIs(t, err, domain.ErrStoreRejected)
	require.ErrorIs(t, err, domain.ErrDuplicateKey)
}

func TestRegister_SecretKeyCollision(t *testing.T) {
	us := newTestUserService(newMemoryRepo(), now, WithSecretKeyGenerator(func() string { return "same" }))

	_, err := us.Register(context.Background(), registration())
	require.NoError(t, err)

	other := registration()
	other.Email = "c@d.com"
	_, err = us.Register(context.Background(), other)
	require.ErrorIs(t, err, domain.ErrDuplicateKey)
}

func TestRegister_HashFailure(t *testing.T) {
	repo := newMemoryRepo()
	schema := validation.NewSchemaValidator(validator.New(), fixedClock(now))
	us := NewUserService(repo, discardLogger(), failingHasher{}, schema, WithClock(fixedClock(now)))

	_, err := us.Register(context.Background(), registration())
	require.EqualError(t, err, "hash failed")
	assert.False(t, errors.Is(err, domain.ErrStoreRejected))
	assert.Zero(t, repo.Count())
}

func TestNewSecretKey_Unique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		k := NewSecretKey()
		require.Len(t, k, 26)
		_, dup := seen[k]
		require.False(t, dup)
		seen[k] = struct{}{}
	}
}
