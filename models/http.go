package models

import "io"

// ImageUpload is an image file received with a request. Content is read once
// by the image storage.
type ImageUpload struct {
	// Ext is the lower-case file extension without the dot ("png", "jpg", "jpeg").
	Ext     string
	Size    int64
	Content io.Reader
}

// SignupRequest carries the fields of a new account.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`

	// Image is an optional profile image. When nil the default user image is used.
	Image *ImageUpload `json:"-"`
}

// LoginRequest carries user credentials.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreatePlaceRequest carries the fields of a new place. CreatorID is taken
// from the authenticated identity, never from the body.
type CreatePlaceRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Address     string `json:"address"`

	CreatorID string       `json:"-"`
	Image     *ImageUpload `json:"-"`
}

// UpdatePlaceRequest carries the mutable fields of a place.
type UpdatePlaceRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`

	PlaceID     string `json:"-"`
	RequesterID string `json:"-"`
}
