package domain

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrInvalidSecretKey   = errors.New("invalid secret key")
	ErrInvalidLoginMethod = errors.New("invalid login method")

	// ErrStoreRejected marks writes refused by the store: constraint
	// violations, schema violations and failed inserts.
	ErrStoreRejected = errors.New("store rejected write")
	ErrDuplicateKey  = errors.New("duplicate key")
)

// ValidationError carries field -> message violations.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
