package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-places/internal/validators"
	"github.com/MKhiriev/go-places/models"
)

// UserValidationService rejects malformed signup and login requests before
// they reach the wrapped UserService.
type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService() UserServiceWrapper {
	return &UserValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *UserValidationService) ListUsers(ctx context.Context) ([]models.User, error) {
	return v.inner.ListUsers(ctx)
}

func (v *UserValidationService) Signup(ctx context.Context, req models.SignupRequest) (models.AuthResponse, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Signup(ctx, req)
}

func (v *UserValidationService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Login(ctx, req)
}

func (v *UserValidationService) DeleteUser(ctx context.Context, requesterID, userID string) error {
	return v.inner.DeleteUser(ctx, requesterID, userID)
}

func (v *UserValidationService) Wrap(inner UserService) UserService {
	v.inner = inner
	return v
}

// PlaceValidationService rejects malformed create and update requests before
// they reach the wrapped PlaceService.
type PlaceValidationService struct {
	inner     PlaceService
	validator validators.Validator
}

func NewPlaceValidationService() PlaceServiceWrapper {
	return &PlaceValidationService{
		validator: validators.NewPlaceValidator(),
	}
}

func (v *PlaceValidationService) GetPlaceByID(ctx context.Context, placeID string) (models.Place, error) {
	return v.inner.GetPlaceByID(ctx, placeID)
}

func (v *PlaceValidationService) ListPlacesByUser(ctx context.Context, userID string) ([]models.Place, error) {
	return v.inner.ListPlacesByUser(ctx, userID)
}

func (v *PlaceValidationService) CreatePlace(ctx context.Context, req models.CreatePlaceRequest) (models.Place, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Place{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreatePlace(ctx, req)
}

// UpdatePlace validates only the body fields; an unknown or malformed place
// id is reported as not found by the inner service.
func (v *PlaceValidationService) UpdatePlace(ctx context.Context, req models.UpdatePlaceRequest) (models.Place, error) {
	if err := v.validator.Validate(ctx, req, validators.FieldTitle, validators.FieldDescription); err != nil {
		return models.Place{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpdatePlace(ctx, req)
}

func (v *PlaceValidationService) DeletePlace(ctx context.Context, requesterID, placeID string) error {
	return v.inner.DeletePlace(ctx, requesterID, placeID)
}

func (v *PlaceValidationService) Wrap(inner PlaceService) PlaceService {
	v.inner = inner
	return v
}
