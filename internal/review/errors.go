package review

import (
	"errors"
	"sort"
	"strings"
)

// ErrInvalid is matched by every ValidationError.
var ErrInvalid = errors.New("invalid review")

// Errors maps a field name, or FieldBase, to its messages in rule order.
type Errors map[string][]string

func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

func (e Errors) Any() bool {
	return len(e) > 0
}

func (e Errors) Has(field, message string) bool {
	for _, m := range e[field] {
		if m == message {
			return true
		}
	}
	return false
}

// Err returns nil when there are no messages.
func (e Errors) Err() error {
	if !e.Any() {
		return nil
	}
	return &ValidationError{Errors: e}
}

// ValidationError carries collected rule violations back to the caller as data.
type ValidationError struct {
	Errors Errors
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Errors))
	for field := range e.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+strings.Join(e.Errors[field], "; "))
	}
	return "invalid review: " + strings.Join(parts, ", ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalid }

// FieldErrors exposes the messages to the HTTP error mapping.
func (e *ValidationError) FieldErrors() map[string][]string { return e.Errors }
