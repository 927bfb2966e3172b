package settings

import (
	"errors"
	"fmt"

	"github.com/alpenstock/go-alpenstock/parse"
)

var (
	ErrValidation = errors.New("validation error")

	// ErrParse reports malformed document text.
	ErrParse = parse.ErrParse
)

// ValidationError reports a document value that cannot be bound to its
// declared field, or a required field the document omits. Path is the
// dotted path of the offending field, like "srv[1].port".
type ValidationError struct {
	Path   string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%v: %s", ErrValidation, e.Reason)
	}
	return fmt.Sprintf("%v: %s: %s", ErrValidation, e.Path, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
