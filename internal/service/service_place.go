// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-places/internal/adapter"
	"github.com/MKhiriev/go-places/internal/config"
	"github.com/MKhiriev/go-places/internal/logger"
	"github.com/MKhiriev/go-places/internal/store"
	"github.com/MKhiriev/go-places/internal/utils"
	"github.com/MKhiriev/go-places/internal/workers"
	"github.com/MKhiriev/go-places/models"
)

// placeService implements the place lifecycle. Writes touching a place and
// its creator's owned-place index are delegated to the repository, which
// runs them in one transaction.
type placeService struct {
	placeRepository store.PlaceRepository
	userRepository  store.UserRepository
	images          store.ImageStorage
	imageRemover    workers.ImageRemover
	geocoder        adapter.Geocoder
	ids             *utils.UUIDGenerator

	defaultImage string

	logger *logger.Logger
}

// NewPlaceService constructs a PlaceService wrapped with request validation.
func NewPlaceService(
	storages *store.Storages,
	geocoder adapter.Geocoder,
	imageRemover workers.ImageRemover,
	cfg config.App,
	logger *logger.Logger,
) PlaceService {
	svc := &placeService{
		placeRepository: storages.PlaceRepository,
		userRepository:  storages.UserRepository,
		images:          storages.ImageStorage,
		imageRemover:    imageRemover,
		geocoder:        geocoder,
		ids:             utils.NewUUIDGenerator(),
		defaultImage:    cfg.DefaultPlaceImage,
		logger:          logger,
	}

	return NewPlaceValidationService().Wrap(svc)
}

// GetPlaceByID returns the place or store.ErrPlaceNotFound. Malformed ids
// never reach the database.
func (p *placeService) GetPlaceByID(ctx context.Context, placeID string) (models.Place, error) {
	if !utils.IsValidUUID(placeID) {
		return models.Place{}, store.ErrPlaceNotFound
	}

	place, err := p.placeRepository.FindPlaceByID(ctx, placeID)
	if err != nil {
		return models.Place{}, fmt.Errorf("error finding place: %w", err)
	}

	return place, nil
}

// ListPlacesByUser returns the places created by userID. Unknown users and
// users without places both yield an empty slice.
func (p *placeService) ListPlacesByUser(ctx context.Context, userID string) ([]models.Place, error) {
	if !utils.IsValidUUID(userID) {
		return []models.Place{}, nil
	}

	places, err := p.placeRepository.FindPlacesByCreator(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing places: %w", err)
	}

	return places, nil
}

// CreatePlace geocodes req.Address and stores the place for req.CreatorID.
//
// The creator must exist. The uploaded image, if any, is saved first and
// removed again when the insert fails.
func (p *placeService) CreatePlace(ctx context.Context, req models.CreatePlaceRequest) (models.Place, error) {
	log := logger.FromContext(ctx)

	creator, err := p.userRepository.FindUserByID(ctx, req.CreatorID)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Warn().Str("func", "*placeService.CreatePlace").Str("creator_id", req.CreatorID).Msg("creator not found")
		return models.Place{}, fmt.Errorf("%w: %w", ErrCreatorNotFound, err)
	}
	if err != nil {
		return models.Place{}, fmt.Errorf("error finding creator: %w", err)
	}

	location, err := p.geocoder.GetCoordsForAddress(ctx, req.Address)
	if err != nil {
		return models.Place{}, err
	}

	image := p.defaultImage
	if req.Image != nil {
		if image, err = p.images.Save(ctx, req.Image.Ext, req.Image.Content); err != nil {
			return models.Place{}, err
		}
	}

	place, err := p.placeRepository.CreatePlace(ctx, models.Place{
		PlaceID:     p.ids.Generate(),
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Address:     strings.TrimSpace(req.Address),
		Location:    location,
		Image:       image,
		CreatorID:   creator.UserID,
	})
	if err != nil {
		p.imageRemover.Remove(ctx, image)
		return models.Place{}, fmt.Errorf("error creating place: %w", err)
	}

	log.Info().
		Str("func", "*placeService.CreatePlace").
		Str("place_id", place.PlaceID).
		Str("creator_id", place.CreatorID).
		Msg("place created")

	return place, nil
}

// UpdatePlace changes the title and description of a place owned by
// req.RequesterID.
func (p *placeService) UpdatePlace(ctx context.Context, req models.UpdatePlaceRequest) (models.Place, error) {
	place, err := p.ownedPlace(ctx, req.RequesterID, req.PlaceID)
	if err != nil {
		return models.Place{}, err
	}

	place.Title = strings.TrimSpace(req.Title)
	place.Description = req.Description

	updated, err := p.placeRepository.UpdatePlace(ctx, place)
	if err != nil {
		return models.Place{}, fmt.Errorf("error updating place: %w", err)
	}

	return updated, nil
}

// DeletePlace removes a place owned by requesterID and schedules the removal
// of its image.
func (p *placeService) DeletePlace(ctx context.Context, requesterID, placeID string) error {
	place, err := p.ownedPlace(ctx, requesterID, placeID)
	if err != nil {
		return err
	}

	if err = p.placeRepository.DeletePlace(ctx, place); err != nil {
		return fmt.Errorf("error deleting place: %w", err)
	}

	p.imageRemover.Remove(ctx, place.Image)
	return nil
}

// ownedPlace loads placeID and checks that requesterID created it.
func (p *placeService) ownedPlace(ctx context.Context, requesterID, placeID string) (models.Place, error) {
	place, err := p.GetPlaceByID(ctx, placeID)
	if err != nil {
		return models.Place{}, err
	}

	if !place.IsCreatedBy(requesterID) {
		logger.FromContext(ctx).Warn().
			Str("func", "*placeService.ownedPlace").
			Str("requester_id", requesterID).
			Str("place_id", placeID).
			Msg("requester is not the creator")
		return models.Place{}, ErrNotPlaceCreator
	}

	return place, nil
}
