package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/sm8ta/registration_microservice/internal/core/domain"
)

const phoneRequiredTag = "phone_required"

var looseEmail = regexp.MustCompile(`.+@.+\..+`)

// SchemaValidator enforces the collection rules on a fully built record
// right before it is written.
type SchemaValidator struct {
	validate *validator.Validate
	now      func() time.Time
}

func NewSchemaValidator(validate *validator.Validate, now func() time.Time) *SchemaValidator {
	if now == nil {
		now = time.Now
	}
	s := &SchemaValidator{validate: validate, now: now}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("bson"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	if err := validate.RegisterValidation("loose_email", func(fl validator.FieldLevel) bool {
		return looseEmail.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	validate.RegisterStructValidation(s.phoneRule, domain.User{})

	return s
}

// phoneRule is evaluated on every validation so the age is always computed
// against the current date.
func (s *SchemaValidator) phoneRule(sl validator.StructLevel) {
	user := sl.Current().Interface().(domain.User)
	if user.DateOfBirth.IsZero() {
		return
	}
	if IsPhoneRequired(user.DateOfBirth, s.now()) && len(user.PhoneNumbers) == 0 {
		sl.ReportError(user.PhoneNumbers, "phoneNumbers", "PhoneNumbers", phoneRequiredTag, "")
	}
}

func (s *SchemaValidator) Validate(user *domain.User) map[string]string {
	err := s.validate.Struct(user)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"_": err.Error()}
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = schemaMessage(fe)
	}
	return fields
}

func schemaMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Path `%s` is required.", fe.Field())
	case "loose_email":
		return "Please fill a valid email address"
	case "oneof":
		return fmt.Sprintf("`%v` is not a valid enum value for path `%s`.", fe.Value(), fe.Field())
	case phoneRequiredTag:
		return "At least one phone number is required for users older than 18."
	default:
		return fmt.Sprintf("Path `%s` failed on %s.", fe.Field(), fe.Tag())
	}
}
