package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName       = errors.New("name is required")
	ErrInvalidEmail    = errors.New("invalid email")
	ErrInvalidPassword = errors.New("password must be at least 6 characters and at most 72 bytes long")

	ErrEmptyTitle         = errors.New("title is required")
	ErrInvalidDescription = errors.New("description must be at least 5 characters long")
	ErrEmptyAddress       = errors.New("address is required")
	ErrInvalidPlaceID     = errors.New("invalid place id")
)
