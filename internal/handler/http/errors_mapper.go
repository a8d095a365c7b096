package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-places/internal/adapter"
	"github.com/MKhiriev/go-places/internal/app"
	"github.com/MKhiriev/go-places/internal/logger"
	"github.com/MKhiriev/go-places/internal/service"
	"github.com/MKhiriev/go-places/internal/store"
	"github.com/MKhiriev/go-places/internal/utils"
	"github.com/MKhiriev/go-places/models"
)

type errorMapping struct {
	target  error
	status  int
	message string
}

// errorMappings is checked top to bottom: a service error may wrap a store
// error, so the more specific sentinels come first.
var errorMappings = []errorMapping{
	{service.ErrInvalidDataProvided, http.StatusUnprocessableEntity, app.MsgInvalidInput},
	{ErrMalformedBody, http.StatusUnprocessableEntity, app.MsgInvalidInput},
	{ErrUnsupportedImageType, http.StatusUnprocessableEntity, app.MsgUnsupportedImage},
	{store.ErrImageTooLarge, http.StatusUnprocessableEntity, app.MsgImageTooLarge},

	{service.ErrCreatorNotFound, http.StatusUnprocessableEntity, app.MsgCreatorNotFound},
	{service.ErrNotPlaceCreator, http.StatusUnauthorized, app.MsgNotPlaceCreator},
	{service.ErrNotAccountOwner, http.StatusUnauthorized, app.MsgNotAccountOwner},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, app.MsgIncorrectLogin},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgAuthFailed},

	{store.ErrEmailAlreadyExists, http.StatusUnprocessableEntity, app.MsgEmailAlreadyExists},
	{store.ErrPlaceNotFound, http.StatusNotFound, app.MsgPlaceNotFound},
	{store.ErrUserNotFound, http.StatusNotFound, app.MsgUserNotFound},

	{adapter.ErrAddressNotFound, http.StatusInternalServerError, app.MsgGeocodeFailed},
	{adapter.ErrGeocodeFailed, http.StatusInternalServerError, app.MsgGeocodeFailed},
}

// toHTTPError converts err to an [*HTTPError]. Errors matching no known
// sentinel become a 500 carrying fallback as message.
func toHTTPError(err error, fallback string) *HTTPError {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return NewHTTPError(m.message, m.status, err)
		}
	}

	if fallback == "" {
		fallback = app.MsgUnknownError
	}
	return NewHTTPError(fallback, http.StatusInternalServerError, err)
}

// writeError logs err with the request logger and writes the JSON error body.
func writeError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	httpErr := toHTTPError(err, fallback)
	status := httpErr.Status()

	log := logger.FromRequest(r)
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Int("status", status).Msg(httpErr.Message)

	utils.WriteJSON(w, models.ErrorResponse{
		Message: httpErr.Message,
		Error:   http.StatusText(status),
	}, status)
}
