// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Input errors.
	ErrSourceNotFound = errors.New("result source not found")
	ErrUnknownSource  = errors.New("unknown result source")
	ErrNoData         = errors.New("no data")

	// Chart errors.
	ErrUnknownChart = errors.New("unknown chart")

	// Configuration errors.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// IsSkippable reports whether err only affects a single chart or source, so the
// remaining work can continue.
func IsSkippable(err error) bool {
	return errors.Is(err, ErrSourceNotFound) || errors.Is(err, ErrNoData)
}
