package store

import (
	"fmt"

	"github.com/MKhiriev/go-places/internal/config"
	"github.com/MKhiriev/go-places/internal/logger"
)

// Storages aggregates every persistence component handed to the services.
type Storages struct {
	UserRepository  UserRepository
	PlaceRepository PlaceRepository
	ImageStorage    ImageStorage
}

// NewStorages builds the repositories on top of db and the image storage
// from cfg.Files.
func NewStorages(db *DB, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	images, err := NewImageFileStorage(cfg.Files, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating image storage: %w", err)
	}

	return &Storages{
		UserRepository:  NewUserRepository(db, logger),
		PlaceRepository: NewPlaceRepository(db, logger),
		ImageStorage:    images,
	}, nil
}
