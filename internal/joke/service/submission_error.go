package service

import "errors"

const formNotSubmittedCorrectly = "Form not submitted correctly."

// SubmissionError is the structured outcome of a rejected submission. It is
// transient: the caller re-renders the form from it and nothing is persisted.
// A FormError without field detail marks a malformed request; FieldErrors
// plus the echoed Fields mark a validation failure, preserving exactly what
// the user typed.
type SubmissionError struct {
	FormError   string
	FieldErrors FieldErrors
	Fields      *Fields
}

func (e *SubmissionError) Error() string {
	if e.FormError != "" {
		return e.FormError
	}
	return "joke submission rejected"
}

func AsSubmissionError(err error) (*SubmissionError, bool) {
	var subErr *SubmissionError
	if errors.As(err, &subErr) {
		return subErr, true
	}
	return nil, false
}

func newMalformedSubmission() *SubmissionError {
	return &SubmissionError{FormError: formNotSubmittedCorrectly}
}

func newValidationFailure(fieldErrors FieldErrors, fields Fields) *SubmissionError {
	return &SubmissionError{FieldErrors: fieldErrors, Fields: &fields}
}
