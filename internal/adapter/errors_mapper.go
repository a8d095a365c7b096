package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// geocodeStatusOK is the provider status of a successful lookup.
const geocodeStatusOK = "OK"

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	return fmt.Errorf("%w: http %d: %s", ErrGeocodeFailed, resp.StatusCode(), body)
}

func mapGeocodeStatus(result geocodeResponse) error {
	if result.Status == geocodeStatusOK && len(result.Results) > 0 {
		return nil
	}

	if result.ErrorMessage != "" {
		return fmt.Errorf("%w: status %s: %s", ErrAddressNotFound, result.Status, result.ErrorMessage)
	}

	return fmt.Errorf("%w: status %s", ErrAddressNotFound, result.Status)
}
