// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Location is a geocoded coordinate pair.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Place is a geotagged record created by a user.
type Place struct {
	// PlaceID is a UUID v7 string assigned on creation.
	PlaceID string `json:"id"`

	Title       string   `json:"title"`
	Description string   `json:"description"`
	Address     string   `json:"address"`
	Location    Location `json:"location"`
	Image       string   `json:"image"`

	// CreatorID references the user who created the place. The user's
	// owned-place list is the authoritative side of the relation.
	CreatorID string `json:"creator"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Place model.
func (p Place) TableName() string {
	return "places"
}

// IsCreatedBy reports whether userID is the creator of the place.
func (p Place) IsCreatedBy(userID string) bool {
	return p.CreatorID != "" && p.CreatorID == userID
}
