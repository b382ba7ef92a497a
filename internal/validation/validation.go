// Package validation holds the pure field validators run before any
// mutation is submitted. Validators are order-independent; All is
// order-sensitive for which single error is surfaced first.
package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	DefaultTitleMinLength   = 1
	DefaultTitleMaxLength   = 200
	DefaultContentMinLength = 1
	DefaultPasswordMinLength = 6
)

var validate = validator.New()

type Result struct {
	Valid bool
	Error string
}

func ok() Result {
	return Result{Valid: true}
}

func fail(msg string) Result {
	return Result{Valid: false, Error: msg}
}

// Required checks non-emptiness after trim.
func Required(value, fieldName string) Result {
	if fieldName == "" {
		fieldName = "Field"
	}
	if strings.TrimSpace(value) == "" {
		return fail(fieldName + " is required")
	}
	return ok()
}

// Email checks a conservative local@domain.tld shape, not full RFC 5322.
func Email(email string) Result {
	if strings.TrimSpace(email) == "" {
		return fail("Email is required")
	}
	if err := validate.Var(email, "email"); err != nil {
		return fail("Invalid email format")
	}
	return ok()
}

func Password(password string, minLength int) Result {
	if minLength <= 0 {
		minLength = DefaultPasswordMinLength
	}
	if password == "" {
		return fail("Password is required")
	}
	if err := validate.Var(password, fmt.Sprintf("min=%d", minLength)); err != nil {
		return fail(fmt.Sprintf("Password must be at least %d characters", minLength))
	}
	return ok()
}

func PasswordMatch(password, confirmPassword string) Result {
	if password != confirmPassword {
		return fail("Passwords do not match")
	}
	return ok()
}

func PostTitle(title string, minLength, maxLength int) Result {
	if minLength <= 0 {
		minLength = DefaultTitleMinLength
	}
	if maxLength <= 0 {
		maxLength = DefaultTitleMaxLength
	}

	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return fail("Title is required")
	}
	if err := validate.Var(trimmed, fmt.Sprintf("min=%d", minLength)); err != nil {
		return fail(fmt.Sprintf("Title must be at least %d characters", minLength))
	}
	if err := validate.Var(trimmed, fmt.Sprintf("max=%d", maxLength)); err != nil {
		return fail(fmt.Sprintf("Title must be at most %d characters", maxLength))
	}
	return ok()
}

func PostContent(content string, minLength int) Result {
	if minLength <= 0 {
		minLength = DefaultContentMinLength
	}

	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return fail("Content is required")
	}
	if err := validate.Var(trimmed, fmt.Sprintf("min=%d", minLength)); err != nil {
		return fail(fmt.Sprintf("Content must be at least %d characters", minLength))
	}
	return ok()
}

// All returns the first error in list order, or "" when every result is
// valid.
func All(results ...Result) string {
	for _, r := range results {
		if !r.Valid {
			if r.Error == "" {
				return "Validation failed"
			}
			return r.Error
		}
	}
	return ""
}
