package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sm8ta/registration_microservice/internal/core/domain"
)

var today = date(2026, time.June, 15)

func validRegistration() domain.Registration {
	return domain.Registration{
		FirstName:    "A",
		LastName:     "B",
		Email:        "a@b.com",
		Password:     "secret1",
		PhoneNumbers: []string{"555"},
		DateOfBirth:  date(1990, time.January, 1),
		Gender:       domain.Male,
	}
}

func TestValidateRegistration_Valid(t *testing.T) {
	errs := ValidateRegistration(validRegistration(), today)
	assert.False(t, errs.HasErrors())
	assert.NoError(t, errs.Err())
}

func TestValidateRegistration_CollectsEveryViolation(t *testing.T) {
	errs := ValidateRegistration(domain.Registration{
		FirstName:    "   ",
		LastName:     "",
		Email:        " ",
		Password:     "12345",
		PhoneNumbers: []string{""},
	}, today)

	assert.Equal(t, ValidationErrors{
		"firstName":    "First name is required",
		"lastName":     "Last name is required",
		"email":        "Email is required",
		"password":     "Password must be at least 6 characters",
		"dob":          "Date of birth is required",
		"phoneNumbers": "At least one phone number is required",
	}, errs)

	var verr *domain.ValidationError
	require.ErrorAs(t, errs.Err(), &verr)
	assert.Len(t, verr.Fields, 6)
}

func TestValidateRegistration_Email(t *testing.T) {
	tests := []struct {
		email string
		ok    bool
	}{
		{"a@b.com", true},
		{"first.last+tag@sub-domain.example.org", true},
		{"  padded@b.com  ", true},
		{"no-at-sign.com", false},
		{"a@b.c", false},
		{"a@b", false},
		{"a b@c.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			r := validRegistration()
			r.Email = tt.email
			errs := ValidateRegistration(r, today)
			if tt.ok {
				assert.NotContains(t, errs, "email")
			} else {
				assert.Equal(t, "Invalid email format", errs["email"])
			}
		})
	}
}

func TestValidateRegistration_PasswordLengthCountsCharacters(t *testing.T) {
	r := validRegistration()
	r.Password = "пароль"
	assert.NotContains(t, ValidateRegistration(r, today), "password")

	r.Password = "abcde"
	assert.Contains(t, ValidateRegistration(r, today), "password")
}

func TestValidateRegistration_PhoneDependsOnAge(t *testing.T) {
	minor := validRegistration()
	minor.DateOfBirth = date(2015, time.March, 3)
	minor.PhoneNumbers = nil
	assert.False(t, ValidateRegistration(minor, today).HasErrors())

	adult := validRegistration()
	adult.PhoneNumbers = []string{}
	assert.Equal(t, ValidationErrors{"phoneNumbers": "At least one phone number is required"},
		ValidateRegistration(adult, today))

	adult.PhoneNumbers = []string{"", "  ", "555-0100"}
	assert.False(t, ValidateRegistration(adult, today).HasErrors())
}
