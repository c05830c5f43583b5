package service

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/jokeboard/server/internal/common/constants"
)

var (
	validate      = validator.New()
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_-]*[a-zA-Z0-9]$`)
)

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func AsValidationError(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}

func validateCredentials(username, password string) error {
	usernameRule := fmt.Sprintf("min=%d,max=%d", constants.UsernameMinLength, constants.UsernameMaxLength)
	if err := validate.Var(username, usernameRule); err != nil {
		return &ValidationError{
			Field: "username",
			Message: fmt.Sprintf("username must be between %d and %d characters",
				constants.UsernameMinLength, constants.UsernameMaxLength),
		}
	}

	if !usernameRegex.MatchString(username) {
		return &ValidationError{
			Field:   "username",
			Message: "username may contain only letters, digits, underscore and dash",
		}
	}

	passwordRule := fmt.Sprintf("min=%d,max=%d", constants.PasswordMinLength, constants.PasswordMaxLength)
	if err := validate.Var(password, passwordRule); err != nil {
		return &ValidationError{
			Field: "password",
			Message: fmt.Sprintf("password must be between %d and %d characters",
				constants.PasswordMinLength, constants.PasswordMaxLength),
		}
	}

	return nil
}
