package wpsync

import (
	"errors"
	"fmt"
)

// ErrRemoteNotFound indicates the update target was deleted on the
// WordPress side; the engine recovers by falling back to create.
var ErrRemoteNotFound = errors.New("wpsync: remote property not found")

// RemoteError is a non-2xx response from the property endpoints.
type RemoteError struct {
	Status int
	Body   string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("wpsync: remote returned %d: %s", e.Status, e.Body)
}

// TaxonomyError wraps a failed category list/create call.
type TaxonomyError struct {
	Op  string // "list" | "create"
	Err error
}

func (e *TaxonomyError) Error() string {
	return fmt.Sprintf("wpsync: taxonomy %s failed: %v", e.Op, e.Err)
}

func (e *TaxonomyError) Unwrap() error { return e.Err }

// IsNotFound checks if the error indicates the remote record is gone.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrRemoteNotFound)
}
