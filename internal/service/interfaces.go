package service

import (
	"context"

	"github.com/MKhiriev/go-places/models"
)

type AuthService interface {
	CreateToken(ctx context.Context, identity models.Identity) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	Signup(ctx context.Context, req models.SignupRequest) (models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)
	// DeleteUser deletes userID together with every place it created.
	// Only the account owner may delete it.
	DeleteUser(ctx context.Context, requesterID, userID string) error
}

type PlaceService interface {
	GetPlaceByID(ctx context.Context, placeID string) (models.Place, error)
	ListPlacesByUser(ctx context.Context, userID string) ([]models.Place, error)
	CreatePlace(ctx context.Context, req models.CreatePlaceRequest) (models.Place, error)
	// UpdatePlace changes title and description. Only the creator may update.
	UpdatePlace(ctx context.Context, req models.UpdatePlaceRequest) (models.Place, error)
	// DeletePlace deletes placeID. Only the creator may delete.
	DeletePlace(ctx context.Context, requesterID, placeID string) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// UserServiceWrapper defines middleware composition for UserService.
// Implementations wrap an existing UserService to add behavior such as
// validating.
type UserServiceWrapper interface {
	Wrap(UserService) UserService
}

// PlaceServiceWrapper defines middleware composition for PlaceService.
type PlaceServiceWrapper interface {
	Wrap(PlaceService) PlaceService
}
