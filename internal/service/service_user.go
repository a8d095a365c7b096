package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-places/internal/config"
	"github.com/MKhiriev/go-places/internal/logger"
	"github.com/MKhiriev/go-places/internal/store"
	"github.com/MKhiriev/go-places/internal/utils"
	"github.com/MKhiriev/go-places/internal/validators"
	"github.com/MKhiriev/go-places/internal/workers"
	"github.com/MKhiriev/go-places/models"
)

// userService implements account signup, login, listing and deletion.
type userService struct {
	userRepository store.UserRepository
	images         store.ImageStorage
	imageRemover   workers.ImageRemover
	authService    AuthService
	ids            *utils.UUIDGenerator

	passwordHashCost int
	defaultImage     string

	logger *logger.Logger
}

// NewUserService constructs a UserService. Requests are validated by the
// user validation wrapper before reaching the service.
func NewUserService(
	storages *store.Storages,
	authService AuthService,
	imageRemover workers.ImageRemover,
	cfg config.App,
	logger *logger.Logger,
) UserService {
	svc := &userService{
		userRepository:   storages.UserRepository,
		images:           storages.ImageStorage,
		imageRemover:     imageRemover,
		authService:      authService,
		ids:              utils.NewUUIDGenerator(),
		passwordHashCost: cfg.PasswordHashCost,
		defaultImage:     cfg.DefaultUserImage,
		logger:           logger,
	}

	return NewUserValidationService().Wrap(svc)
}

// ListUsers returns every user. An empty slice is not an error.
func (u *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := u.userRepository.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}

	return users, nil
}

// Signup creates an account and returns a token for it.
//
// The email is normalised before the uniqueness check. An uploaded image is
// stored before the insert and removed again if the insert fails.
func (u *userService) Signup(ctx context.Context, req models.SignupRequest) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)
	email := validators.NormalizeEmail(req.Email)

	_, err := u.userRepository.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		log.Warn().Str("func", "*userService.Signup").Msg("email already exists")
		return models.AuthResponse{}, store.ErrEmailAlreadyExists
	case !errors.Is(err, store.ErrUserNotFound):
		return models.AuthResponse{}, fmt.Errorf("error checking email: %w", err)
	}

	hash, err := utils.HashPassword(req.Password, u.passwordHashCost)
	if err != nil {
		log.Err(err).Str("func", "*userService.Signup").Msg("failed to hash password")
		return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrPasswordHashing, err)
	}

	image := u.defaultImage
	if req.Image != nil {
		if image, err = u.images.Save(ctx, req.Image.Ext, req.Image.Content); err != nil {
			return models.AuthResponse{}, err
		}
	}

	user, err := u.userRepository.CreateUser(ctx, models.User{
		UserID:   u.ids.Generate(),
		Name:     strings.TrimSpace(req.Name),
		Email:    email,
		Password: hash,
		Image:    image,
	})
	if err != nil {
		u.imageRemover.Remove(ctx, image)
		return models.AuthResponse{}, fmt.Errorf("error creating user: %w", err)
	}

	log.Info().Str("func", "*userService.Signup").Str("user_id", user.UserID).Msg("user signed up")
	return u.authResponse(ctx, user)
}

// Login verifies the credentials and returns a fresh token.
func (u *userService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	user, err := u.userRepository.FindUserByEmail(ctx, validators.NormalizeEmail(req.Email))
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = utils.CheckPassword(user.Password, req.Password); err != nil {
		log.Warn().Str("func", "*userService.Login").Str("user_id", user.UserID).Msg("wrong password")
		return models.AuthResponse{}, ErrInvalidCredentials
	}

	return u.authResponse(ctx, user)
}

// DeleteUser removes the account, its places and their images.
func (u *userService) DeleteUser(ctx context.Context, requesterID, userID string) error {
	log := logger.FromContext(ctx)

	if !utils.IsValidUUID(userID) {
		return store.ErrUserNotFound
	}
	if requesterID != userID {
		log.Warn().
			Str("func", "*userService.DeleteUser").
			Str("requester_id", requesterID).
			Str("user_id", userID).
			Msg("attempt to delete another account")
		return ErrNotAccountOwner
	}

	user, err := u.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("error finding user to delete: %w", err)
	}

	placeImages, err := u.userRepository.DeleteUser(ctx, user)
	if err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}

	u.imageRemover.Remove(ctx, user.Image)
	for _, image := range placeImages {
		u.imageRemover.Remove(ctx, image)
	}

	return nil
}

func (u *userService) authResponse(ctx context.Context, user models.User) (models.AuthResponse, error) {
	token, err := u.authService.CreateToken(ctx, models.Identity{UserID: user.UserID, Email: user.Email})
	if err != nil {
		return models.AuthResponse{}, err
	}

	return models.AuthResponse{
		UserID: user.UserID,
		Email:  user.Email,
		Token:  token.String(),
	}, nil
}
