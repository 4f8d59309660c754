package store

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/MariamElsayed172/Notes-Management-API/internal/apperr"
)

// Validation is centralized here rather than scattered across schema
// declarations; every rule takes the candidate value explicitly and is
// applied by the stores on writes.

const (
	minAge = 18
	maxAge = 60
)

// ValidateUserFields checks the writable user fields. Email is any
// non-empty string; uniqueness, not shape, is what the store guarantees.
func ValidateUserFields(name, email, phone string, age int) error {
	if err := validation.Validate(name, validation.Required); err != nil {
		return apperr.NewValidation("name", "must not be empty")
	}
	if err := validation.Validate(email, validation.Required); err != nil {
		return apperr.NewValidation("email", "must not be empty")
	}
	if err := validation.Validate(phone, validation.Required); err != nil {
		return apperr.NewValidation("phone", "must not be empty")
	}
	if err := validation.Validate(age, validation.Min(minAge), validation.Max(maxAge)); err != nil {
		return apperr.NewValidation("age", "must be between 18 and 60")
	}
	return nil
}

// ValidatePassword rejects empty passwords before hashing.
func ValidatePassword(password string) error {
	if password == "" {
		return apperr.NewValidation("password", "must not be empty")
	}
	return nil
}

// ValidateTitle enforces the note title rule: required and not entirely
// upper-case. A title with no lower-case letters at all (digits only, say)
// counts as upper-case and is rejected.
func ValidateTitle(title string) error {
	if title == "" {
		return apperr.NewValidation("title", "must not be empty")
	}
	if title == strings.ToUpper(title) {
		return apperr.NewValidation("title", "must not be fully uppercase")
	}
	return nil
}

// ValidateContent rejects empty note content.
func ValidateContent(content string) error {
	if content == "" {
		return apperr.NewValidation("content", "must not be empty")
	}
	return nil
}
