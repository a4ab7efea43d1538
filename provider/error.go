package provider

import "github.com/pkg/errors"

type errorNotFound interface {
	NotFound() bool
}

// ErrorNotFound returns true if the error, or the error it wraps, is a "not found" type
func ErrorNotFound(err error) bool {
	if e, ok := errors.Cause(err).(errorNotFound); ok && e.NotFound() {
		return true
	}
	return false
}
