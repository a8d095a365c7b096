package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	DefaultHTTPAddress       = ":5000"
	DefaultTokenIssuer       = "go-places"
	DefaultTokenDuration     = time.Hour
	DefaultUserImage         = "https://dummyimage.com/300x300/000/fff"
	DefaultPlaceImage        = "https://dummyimage.com/600x400/000/fff"
	DefaultImagesDir         = "uploads/images"
	DefaultMaxImageSize      = 500 * 1024
	DefaultGeocodingBaseURL  = "https://maps.googleapis.com/maps/api/geocode"
	DefaultGeocodingTimeout  = 10 * time.Second
	DefaultImageCleanupQueue = 64
	DefaultVersion           = "dev"
	DefaultLogLevel          = "info"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:       DefaultTokenIssuer,
			TokenDuration:     DefaultTokenDuration,
			PasswordHashCost:  bcrypt.DefaultCost,
			DefaultUserImage:  DefaultUserImage,
			DefaultPlaceImage: DefaultPlaceImage,
			LogLevel:          DefaultLogLevel,
			Version:           DefaultVersion,
		},
		Storage: Storage{
			Files: Files{
				ImagesDir:    DefaultImagesDir,
				MaxImageSize: DefaultMaxImageSize,
			},
		},
		Server: Server{
			HTTPAddress: DefaultHTTPAddress,
		},
		Adapter: Adapter{
			Geocoding: Geocoding{
				BaseURL:        DefaultGeocodingBaseURL,
				RequestTimeout: DefaultGeocodingTimeout,
			},
		},
		Workers: Workers{
			ImageCleanupQueueSize: DefaultImageCleanupQueue,
		},
	}
}
