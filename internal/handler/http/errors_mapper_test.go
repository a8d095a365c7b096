package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-places/internal/adapter"
	"github.com/MKhiriev/go-places/internal/service"
	"github.com/MKhiriev/go-places/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		fallback    string
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "creator missing wins over user not found",
			err:         fmt.Errorf("%w: %w", service.ErrCreatorNotFound, store.ErrUserNotFound),
			wantStatus:  http.StatusUnprocessableEntity,
			wantMessage: "Could not find creator by user id",
		},
		{
			name:        "validation",
			err:         fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, errors.New("empty title")),
			wantStatus:  http.StatusUnprocessableEntity,
			wantMessage: "Invalid input",
		},
		{
			name:        "deeply wrapped not found",
			err:         fmt.Errorf("a: %w", fmt.Errorf("b: %w", store.ErrPlaceNotFound)),
			wantStatus:  http.StatusNotFound,
			wantMessage: "Could not find place for provided place id",
		},
		{
			name:        "geocoding",
			err:         adapter.ErrAddressNotFound,
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Could not get coordinates for address",
		},
		{
			name:        "unknown error uses fallback",
			err:         errors.New("boom"),
			fallback:    "Could not update place",
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Could not update place",
		},
		{
			name:        "unknown error without fallback",
			err:         errors.New("boom"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "An unknown error occurred",
		},
		{
			name:        "http error passes through",
			err:         fmt.Errorf("ctx: %w", NewHTTPError("custom", http.StatusTeapot, store.ErrPlaceNotFound)),
			wantStatus:  http.StatusTeapot,
			wantMessage: "custom",
		},
		{
			name:        "http error without status",
			err:         NewHTTPError("no code", 0, nil),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "no code",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := toHTTPError(tt.err, tt.fallback)

			assert.Equal(t, tt.wantStatus, got.Status())
			assert.Equal(t, tt.wantMessage, got.Message)

			var passthrough *HTTPError
			if !errors.As(tt.err, &passthrough) {
				assert.ErrorIs(t, got, tt.err)
			}
		})
	}
}

func TestHTTPError_ErrorAndUnwrap(t *testing.T) {
	cause := store.ErrUserNotFound
	err := NewHTTPError("Could not find user to delete", http.StatusNotFound, cause)

	assert.Equal(t, "Could not find user to delete: user was not found", err.Error())
	assert.ErrorIs(t, err, store.ErrUserNotFound)
	assert.Equal(t, "plain", NewHTTPError("plain", http.StatusOK, nil).Error())
}

func TestWriteError_DoesNotLeakCause(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	writeError(rec, req, fmt.Errorf("%w: password=hunter2", store.ErrExecutingQuery), "Could not get users")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"Could not get users","error":"Internal Server Error"}`, rec.Body.String())
}
