package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrLookupFailed is matched by every LookupError.
var ErrLookupFailed = errors.New("required record not found")

// LookupError reports a required row that does not exist (unknown email,
// missing status, unknown currency...). It always aborts the enclosing
// transaction.
type LookupError struct {
	Entity string
	Key    interface{}
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%s %v not found", e.Entity, e.Key)
}

// Is lets errors.Is(err, ErrLookupFailed) match any LookupError
func (e *LookupError) Is(target error) bool {
	return target == ErrLookupFailed
}

// ValidationError reports request input the workflows cannot interpret
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// lookupError converts a gorm "not found" into a LookupError and wraps anything else.
func lookupError(entity string, key interface{}, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &LookupError{Entity: entity, Key: key}
	}
	return fmt.Errorf("failed to load %s %v: %w", entity, key, err)
}
