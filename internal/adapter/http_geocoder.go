package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-places/internal/config"
	"github.com/MKhiriev/go-places/internal/logger"
	"github.com/MKhiriev/go-places/internal/utils"
	"github.com/MKhiriev/go-places/models"
)

type httpGeocoder struct {
	client *utils.HTTPClient
	apiKey string

	logger *logger.Logger
}

// geocodeResponse is the subset of the Google Geocoding API payload the
// adapter reads.
type geocodeResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Results      []struct {
		FormattedAddress string `json:"formatted_address"`
		Geometry         struct {
			Location models.Location `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// NewHTTPGeocoder constructs a [Geocoder] calling "{BaseURL}/json". Returns an
// error if cfg.BaseURL is empty or not an absolute URL.
func NewHTTPGeocoder(cfg config.Geocoding, logger *logger.Logger) (Geocoder, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid geocoding base url: %w", err)
	}

	logger.Debug().Str("base_url", baseURL).Msg("creating geocoding adapter")
	return &httpGeocoder{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		apiKey: cfg.APIKey,
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// GetCoordsForAddress implements [Geocoder]. It sends
// GET /json?address=...&key=... and returns the location of the first result.
func (g *httpGeocoder) GetCoordsForAddress(ctx context.Context, address string) (models.Location, error) {
	log := logger.FromContext(ctx)

	var result geocodeResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetQueryParam("address", address).
		SetQueryParam("key", g.apiKey).
		SetResult(&result).
		Get("/json")
	if err != nil {
		log.Err(err).Str("func", "*httpGeocoder.GetCoordsForAddress").Msg("geocoding request failed")
		return models.Location{}, fmt.Errorf("%w: %w", ErrGeocodeFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Str("func", "*httpGeocoder.GetCoordsForAddress").Msg("geocoding api returned an error")
		return models.Location{}, err
	}
	if err = mapGeocodeStatus(result); err != nil {
		log.Warn().Err(err).Str("func", "*httpGeocoder.GetCoordsForAddress").Str("address", address).Msg("address not resolved")
		return models.Location{}, err
	}

	location := result.Results[0].Geometry.Location
	log.Debug().
		Str("func", "*httpGeocoder.GetCoordsForAddress").
		Float64("lat", location.Lat).
		Float64("lng", location.Lng).
		Msg("address resolved")

	return location, nil
}
