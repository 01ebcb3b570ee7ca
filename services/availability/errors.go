package availability

import (
	"errors"
	"fmt"
)

// ScopeError means the base catalog fetch for the requested scope failed.
// It aborts the whole query; no partial result is synthesized.
type ScopeError struct {
	Scope string
	Err   error
}

func (e *ScopeError) Error() string {
	return fmt.Sprintf("scope resolution failed for %s: %v", e.Scope, e.Err)
}

func (e *ScopeError) Unwrap() error { return e.Err }

// LookupError means a single worker or company read failed. It is recovered
// locally: the entity is dropped and the pipeline continues.
type LookupError struct {
	Kind string
	ID   string
	Err  error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%s lookup failed for %q: %v", e.Kind, e.ID, e.Err)
}

func (e *LookupError) Unwrap() error { return e.Err }

// IsRetryable reports whether the caller may usefully retry the query.
// Scope failures are transient store errors; everything else is terminal.
func IsRetryable(err error) bool {
	var se *ScopeError
	return errors.As(err, &se)
}
