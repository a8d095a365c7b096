// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
)

// Sentinel errors produced by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrNoIdentity is returned when an authenticated route runs without an
	// identity in the request context.
	ErrNoIdentity = errors.New("no identity in request context")

	// ErrMalformedBody is returned when a JSON or multipart body cannot be
	// decoded.
	ErrMalformedBody = errors.New("malformed request body")

	// ErrUnsupportedImageType is returned when an uploaded file is neither
	// a PNG nor a JPEG image.
	ErrUnsupportedImageType = errors.New("unsupported image type")
)

// HTTPError is an error carrying the message and status code sent to the
// client. The underlying cause is logged but never serialized.
type HTTPError struct {
	Message    string
	StatusCode int

	cause error
}

func NewHTTPError(message string, statusCode int, cause error) *HTTPError {
	return &HTTPError{
		Message:    message,
		StatusCode: statusCode,
		cause:      cause,
	}
}

func (e *HTTPError) Error() string {
	if e.cause == nil {
		return e.Message
	}
	return e.Message + ": " + e.cause.Error()
}

func (e *HTTPError) Unwrap() error {
	return e.cause
}

// Status returns the response status code. A missing code means 500.
func (e *HTTPError) Status() int {
	if e.StatusCode == 0 {
		return http.StatusInternalServerError
	}
	return e.StatusCode
}
