package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey      string   `json:"token_sign_key"`
		TokenIssuer       string   `json:"token_issuer"`
		TokenDuration     Duration `json:"token_duration"`
		PasswordHashCost  int      `json:"password_hash_cost"`
		DefaultUserImage  string   `json:"default_user_image"`
		DefaultPlaceImage string   `json:"default_place_image"`
		LogLevel          string   `json:"log_level"`
		Version           string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Files struct {
			ImagesDir    string `json:"images_dir"`
			MaxImageSize int64  `json:"max_image_size"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		Geocoding struct {
			APIKey         string   `json:"api_key"`
			BaseURL        string   `json:"base_url"`
			RequestTimeout Duration `json:"request_timeout"`
		} `json:"geocoding,omitempty"`
	} `json:"adapter,omitempty"`

	Workers struct {
		ImageCleanupQueueSize int `json:"image_cleanup_queue_size"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:      jsonCfg.App.TokenSignKey,
			TokenIssuer:       jsonCfg.App.TokenIssuer,
			TokenDuration:     time.Duration(jsonCfg.App.TokenDuration),
			PasswordHashCost:  jsonCfg.App.PasswordHashCost,
			DefaultUserImage:  jsonCfg.App.DefaultUserImage,
			DefaultPlaceImage: jsonCfg.App.DefaultPlaceImage,
			LogLevel:          jsonCfg.App.LogLevel,
			Version:           jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Files: Files{
				ImagesDir:    jsonCfg.Storage.Files.ImagesDir,
				MaxImageSize: jsonCfg.Storage.Files.MaxImageSize,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			Geocoding: Geocoding{
				APIKey:         jsonCfg.Adapter.Geocoding.APIKey,
				BaseURL:        jsonCfg.Adapter.Geocoding.BaseURL,
				RequestTimeout: time.Duration(jsonCfg.Adapter.Geocoding.RequestTimeout),
			},
		},
		Workers: Workers{
			ImageCleanupQueueSize: jsonCfg.Workers.ImageCleanupQueueSize,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
