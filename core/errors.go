package core

import "errors"

// ErrMissingField is returned when an invocation request lacks payload or response_url
var ErrMissingField = errors.New("missing required field")

// ErrEmptyAction is returned when the first token of a command payload is empty
var ErrEmptyAction = errors.New("empty action name")

// IsRequestError reports whether err was caused by a malformed invocation request
// rather than by the remote action or the relay.
func IsRequestError(err error) bool {
	return errors.Is(err, ErrMissingField) || errors.Is(err, ErrEmptyAction)
}
