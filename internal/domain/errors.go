package domain

import (
	"errors"
	"fmt"
)

// ErrSessionNotFound is returned by SessionStore implementations when the
// requested session id is unknown.
var ErrSessionNotFound = errors.New("session not found")

// ServiceError reports a failed completion call. It aborts the current
// turn; no stage retries it and no partial result is returned.
type ServiceError struct {
	Op  string // e.g. "generate content"
	Err error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("completion service: %s: %v", e.Op, e.Err)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}
