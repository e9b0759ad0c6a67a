// Package validation provides stateless field predicates shared by the
// request-handling layer. The rules mirror the struct-tag validation used
// by the usecase so both layers accept the same inputs.
package validation

import (
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

const (
	// MinNameLength is the minimum allowed name length in characters
	MinNameLength = 2
	// MaxNameLength is the maximum allowed name length in characters
	MaxNameLength = 100
	// MinAge is the minimum allowed age
	MinAge = 1
	// MaxAge is the maximum allowed age
	MaxAge = 150
)

var validate = validator.New()

// IsValidName reports whether name is non-blank and its trimmed length is
// within [MinNameLength, MaxNameLength]. Length is counted in characters,
// not bytes.
func IsValidName(name string) bool {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return false
	}
	n := utf8.RuneCountInString(trimmed)
	return n >= MinNameLength && n <= MaxNameLength
}

// IsValidAge reports whether age is within [MinAge, MaxAge].
func IsValidAge(age int) bool {
	return age >= MinAge && age <= MaxAge
}

// IsValidEmail reports whether email is a well-formed mailbox address
// (local-part@domain). Blank or whitespace-only strings are rejected, as
// are strings with multiple '@' signs, a missing domain, or embedded
// whitespace.
func IsValidEmail(email string) bool {
	if strings.TrimSpace(email) == "" {
		return false
	}
	return validate.Var(email, "email") == nil
}
