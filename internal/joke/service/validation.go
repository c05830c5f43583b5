package service

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/jokeboard/server/internal/common/constants"
)

var validate = validator.New()

var (
	nameRule    = fmt.Sprintf("min=%d", constants.JokeNameMinLength)
	contentRule = fmt.Sprintf("min=%d", constants.JokeContentMinLength)
)

// ValidateJokeName returns a field error message, or "" when the name passes.
func ValidateJokeName(name string) string {
	if err := validate.Var(name, nameRule); err != nil {
		return "That joke`s name too short"
	}
	return ""
}

// ValidateJokeContent returns a field error message, or "" when the content passes.
func ValidateJokeContent(content string) string {
	if err := validate.Var(content, contentRule); err != nil {
		return "That joke too short"
	}
	return ""
}

// ValidateSubmission runs both field rules and reports every failure
// together, so the caller can annotate each invalid field in one round trip.
func ValidateSubmission(f Fields) (FieldErrors, bool) {
	fieldErrors := FieldErrors{
		Name:    ValidateJokeName(f.Name),
		Content: ValidateJokeContent(f.Content),
	}
	return fieldErrors, fieldErrors.Empty()
}
