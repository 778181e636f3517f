package validation

import (
	"strings"
	"time"

	openapierrors "github.com/go-openapi/errors"
	"github.com/go-openapi/validate"

	"github.com/sm8ta/registration_microservice/internal/core/domain"
)

const (
	emailPattern      = `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	minPasswordLength = 6
	in                = "body"
)

type ValidationErrors map[string]string

func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}

func (v ValidationErrors) Add(field, message string) {
	v[field] = message
}

// addIf records message for field when the rule produced a violation.
func (v ValidationErrors) addIf(field, message string, res *openapierrors.Validation) {
	if res != nil {
		v.Add(field, message)
	}
}

// Err returns nil for an empty set.
func (v ValidationErrors) Err() error {
	if !v.HasErrors() {
		return nil
	}
	return &domain.ValidationError{Fields: v}
}

// ValidateRegistration runs every form rule and collects all violations.
func ValidateRegistration(r domain.Registration, today time.Time) ValidationErrors {
	errs := make(ValidationErrors)

	errs.addIf("firstName", "First name is required",
		validate.RequiredString("firstName", in, strings.TrimSpace(r.FirstName)))
	errs.addIf("lastName", "Last name is required",
		validate.RequiredString("lastName", in, strings.TrimSpace(r.LastName)))

	email := strings.TrimSpace(r.Email)
	if res := validate.RequiredString("email", in, email); res != nil {
		errs.Add("email", "Email is required")
	} else {
		errs.addIf("email", "Invalid email format",
			validate.Pattern("email", in, email, emailPattern))
	}

	errs.addIf("password", "Password must be at least 6 characters",
		validate.MinLength("password", in, r.Password, minPasswordLength))

	dobMissing := validate.Required("dob", in, r.DateOfBirth)
	errs.addIf("dob", "Date of birth is required", dobMissing)

	// Without a birth date the age is unknown; the phone stays required.
	if dobMissing != nil || IsPhoneRequired(r.DateOfBirth, today) {
		errs.addIf("phoneNumbers", "At least one phone number is required",
			validate.MinItems("phoneNumbers", in, int64(countFilled(r.PhoneNumbers)), 1))
	}

	return errs
}

func countFilled(values []string) int {
	n := 0
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			n++
		}
	}
	return n
}
