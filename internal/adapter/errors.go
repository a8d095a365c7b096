package adapter

import "errors"

var (
	// ErrGeocodeFailed is returned when the geocoding API cannot be reached,
	// answers with a non-2xx status or returns an unreadable body.
	ErrGeocodeFailed = errors.New("geocoding request failed")

	// ErrAddressNotFound is returned when the geocoding API answers with a
	// status other than "OK" or without results.
	ErrAddressNotFound = errors.New("could not find location for the specified address")
)
