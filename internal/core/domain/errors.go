package domain

import (
	"errors"
	"fmt"
)

const (
	MsgTooFewAnswers = "At least two answers are required."
	MsgBlank         = "This field may not be left blank."
)

var (
	ErrNotFound         = errors.New("not found")
	ErrQuestionNotFound = fmt.Errorf("question %w", ErrNotFound)
	ErrAnswerNotFound   = fmt.Errorf("answer %w", ErrNotFound)
	ErrVoteNotFound     = fmt.Errorf("vote %w", ErrNotFound)
	ErrUserNotFound     = fmt.Errorf("user %w", ErrNotFound)
	ErrProfileNotFound  = fmt.Errorf("profile %w", ErrNotFound)

	ErrInvalidID     = errors.New("invalid id")
	ErrDuplicateVote = errors.New("user has already voted on this question")
	ErrForbidden     = errors.New("permission denied")
)

// ValidationError is returned when caller supplied data breaks a structural rule.
// Field is empty for errors that are not tied to a single input field.
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}
