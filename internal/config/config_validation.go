// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
)

// validate checks that the final merged [StructuredConfig] can start the
// server. All violated groups are reported together.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.Storage.DB.DSN == "" || cfg.Storage.Files.ImagesDir == "" || cfg.Storage.Files.MaxImageSize < 0 {
		errs = append(errs, ErrInvalidStorageConfigs)
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		errs = append(errs, ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout < 0 {
		errs = append(errs, ErrInvalidServerConfigs)
	}

	if cfg.Adapter.Geocoding.APIKey == "" || cfg.Adapter.Geocoding.BaseURL == "" {
		errs = append(errs, ErrInvalidAdapterConfigs)
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %w", errors.Join(errs...))
	}

	return nil
}
