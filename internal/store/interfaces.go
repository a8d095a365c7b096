package store

import (
	"context"
	"io"

	"github.com/MKhiriev/go-places/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts together with their owned-place index.
type UserRepository interface {
	// CreateUser inserts user and returns it with server-assigned fields.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByID returns the user with its owned place ids.
	FindUserByID(ctx context.Context, userID string) (models.User, error)
	// FindUserByEmail returns the user with its owned place ids.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// ListUsers returns every user with its owned place ids.
	ListUsers(ctx context.Context) ([]models.User, error)
	// DeleteUser atomically deletes the user's owned places, its index and
	// the user itself. It returns the image references of the deleted places.
	DeleteUser(ctx context.Context, user models.User) ([]string, error)
}

// PlaceRepository persists places. Writes that touch both a place and its
// creator's owned-place index run in one transaction.
type PlaceRepository interface {
	// CreatePlace inserts place and appends it to the creator's index.
	CreatePlace(ctx context.Context, place models.Place) (models.Place, error)
	FindPlaceByID(ctx context.Context, placeID string) (models.Place, error)
	FindPlacesByCreator(ctx context.Context, creatorID string) ([]models.Place, error)
	// UpdatePlace persists the title and description of place.
	UpdatePlace(ctx context.Context, place models.Place) (models.Place, error)
	// DeletePlace deletes place and removes it from the creator's index.
	DeletePlace(ctx context.Context, place models.Place) error
}

// ImageStorage stores uploaded images and resolves their public references.
type ImageStorage interface {
	// Save writes content as a new image with extension ext and returns its
	// public reference (e.g. "/uploads/images/<id>.png").
	Save(ctx context.Context, ext string, content io.Reader) (string, error)
	// Delete removes the image behind ref. References not managed by the
	// storage (placeholders, remote URLs) are ignored.
	Delete(ctx context.Context, ref string) error
	// Dir is the directory images are written to.
	Dir() string
	// URLPrefix is the route prefix image references start with.
	URLPrefix() string
}
