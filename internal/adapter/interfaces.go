// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides clients for the external services the go-places
// server depends on.
//
// The primary abstraction is [Geocoder], which decouples the place service
// from the geocoding provider. The package ships a Google Geocoding API
// implementation over HTTP ([NewHTTPGeocoder]).
//
// Transport and provider failures are mapped to the sentinel values defined
// in errors.go so callers can use [errors.Is] regardless of the provider.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-places/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// Geocoder resolves free-text addresses to coordinates.
type Geocoder interface {
	// GetCoordsForAddress returns the location of the first match for
	// address. It returns [ErrAddressNotFound] when the provider has no
	// match and [ErrGeocodeFailed] when the lookup itself fails.
	GetCoordsForAddress(ctx context.Context, address string) (models.Location, error)
}
