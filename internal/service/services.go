package service

import (
	"fmt"

	"github.com/MKhiriev/go-places/internal/adapter"
	"github.com/MKhiriev/go-places/internal/config"
	"github.com/MKhiriev/go-places/internal/logger"
	"github.com/MKhiriev/go-places/internal/store"
	"github.com/MKhiriev/go-places/internal/workers"
	"github.com/MKhiriev/go-places/models"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	PlaceService   PlaceService
	AppInfoService AppInfoService
}

func NewServices(
	storages *store.Storages,
	geocoder adapter.Geocoder,
	imageRemover workers.ImageRemover,
	cfg config.App,
	build models.AppBuildInfo,
	logger *logger.Logger,
) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg, build, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	authService := NewAuthService(cfg, logger)

	return &Services{
		AuthService:    authService,
		UserService:    NewUserService(storages, authService, imageRemover, cfg, logger),
		PlaceService:   NewPlaceService(storages, geocoder, imageRemover, cfg, logger),
		AppInfoService: appInfo,
	}, nil
}
