package aws

import (
	"fmt"

	"github.com/pkg/errors"
)

// errorNotFound means the requested item was not found
type errorNotFound string

// Error satisfies the error interface
func (e errorNotFound) Error() string {
	return string(e)
}

// NotFound defines the behavior of this error
func (e errorNotFound) NotFound() bool {
	return true
}

// ErrorNotFound returns true if the error is a "not found" type
func ErrorNotFound(err error) bool {
	if e, ok := errors.Cause(err).(errorNotFound); ok && e.NotFound() {
		return true
	}
	return false
}

func errorNoSuchRegion(name string) error {
	return errorNotFound(fmt.Sprintf("no such region: %s", name))
}
