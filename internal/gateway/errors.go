package gateway

import (
	"errors"
	"fmt"
)

// ErrNotFound reports an update or delete that affected zero rows. The
// storage layer cannot distinguish a missing record from a row-level
// policy silently rejecting the write, so both surface as this one error.
var ErrNotFound = errors.New("artwork not found")

// ValidationError is raised before any network call when a required
// field is missing.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// GatewayError wraps a transport or auth failure on a record operation.
type GatewayError struct {
	Op  string
	Err error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("gateway: %s: %v", e.Op, e.Err)
}

func (e *GatewayError) Unwrap() error { return e.Err }

// UploadError wraps a failed blob write to object storage.
type UploadError struct {
	Key string
	Err error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("upload %s: %v", e.Key, e.Err)
}

func (e *UploadError) Unwrap() error { return e.Err }
