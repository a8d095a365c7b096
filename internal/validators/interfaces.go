// Package validators checks request payloads of the go-places API before
// they reach the services.
//
// Each validator accepts the request types of one resource (users or
// places) by value or pointer and reports the first failing field as one of
// the sentinel errors in errors.go. Passing field names restricts the check
// to those fields; without names every field is checked.
package validators

import "context"

// Validator validates a request payload, optionally only the named fields.
// Unsupported payload types yield [ErrUnsupportedType], unknown field names
// [ErrUnknownField].
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
