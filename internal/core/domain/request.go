package domain

import "time"

// Registration is the validated shape of a sign-up form.
type Registration struct {
	FirstName    string
	LastName     string
	Email        string
	Password     string
	PhoneNumbers []string
	DateOfBirth  time.Time
	Gender       Gender
}

type LoginMethod string

const (
	LoginByEmail     LoginMethod = "email"
	LoginBySecretKey LoginMethod = "secretKey"
)

// Credentials is either EmailCredentials or SecretKeyCredentials.
type Credentials interface {
	Method() LoginMethod
}

type EmailCredentials struct {
	Email    string
	Password string
}

func (EmailCredentials) Method() LoginMethod { return LoginByEmail }

type SecretKeyCredentials struct {
	SecretKey string
}

func (SecretKeyCredentials) Method() LoginMethod { return LoginBySecretKey }
