package domain

import (
	"fmt"
	"sort"
	"strings"
)

// NotFoundError represents a missing resource.
// Rows owned by another account are reported the same way.
type NotFoundError struct {
	Resource string
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// Is enables errors.Is matching on NotFoundError.
func (e NotFoundError) Is(target error) bool {
	_, ok := target.(NotFoundError)
	if ok {
		return true
	}
	_, ok = target.(*NotFoundError)
	return ok
}

// ErrNotFound is the sentinel error for missing resources.
var ErrNotFound = NotFoundError{}

// ValidationError carries field level messages keyed by the json field name.
type ValidationError struct {
	Fields map[string]string
}

func (e ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

func (e ValidationError) Is(target error) bool {
	_, ok := target.(ValidationError)
	if ok {
		return true
	}
	_, ok = target.(*ValidationError)
	return ok
}

var ErrValidation = ValidationError{}

// AuthenticationError means the caller could not be identified.
type AuthenticationError struct {
	Reason string
}

func (e AuthenticationError) Error() string {
	if e.Reason == "" {
		return "authentication required"
	}
	return "authentication failed: " + e.Reason
}

func (e AuthenticationError) Is(target error) bool {
	_, ok := target.(AuthenticationError)
	if ok {
		return true
	}
	_, ok = target.(*AuthenticationError)
	return ok
}

var ErrAuthentication = AuthenticationError{}

// ConflictError reports a unique value that is already taken.
type ConflictError struct {
	Resource string
}

func (e ConflictError) Error() string {
	return fmt.Sprintf("%s already exists", e.Resource)
}

func (e ConflictError) Is(target error) bool {
	_, ok := target.(ConflictError)
	if ok {
		return true
	}
	_, ok = target.(*ConflictError)
	return ok
}

var ErrConflict = ConflictError{}
