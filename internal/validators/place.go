// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-places/internal/utils"
	"github.com/MKhiriev/go-places/models"
)

// Field name constants used to restrict validation of place requests to a
// subset of fields.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldAddress     = "address"
	FieldPlaceID     = "place_id"
)

// MinDescriptionLength is the shortest accepted place description, in characters.
const MinDescriptionLength = 5

type PlaceValidator struct {
}

func NewPlaceValidator() Validator {
	return &PlaceValidator{}
}

// Validate checks create and update place requests.
//
// Supported types (value or pointer):
//   - models.CreatePlaceRequest: title, description, address
//   - models.UpdatePlaceRequest: place_id, title, description
//
// Address, location, image and creator cannot be changed by an update, so
// only title and description are checked for it besides the id.
func (v *PlaceValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreatePlaceRequest:
		return v.validateCreatePlace(value, fields...)
	case *models.CreatePlaceRequest:
		return v.validateCreatePlace(*value, fields...)

	case models.UpdatePlaceRequest:
		return v.validateUpdatePlace(value, fields...)
	case *models.UpdatePlaceRequest:
		return v.validateUpdatePlace(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *PlaceValidator) validateCreatePlace(req models.CreatePlaceRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldDescription, FieldAddress}
	}

	for _, field := range fields {
		var err error
		switch field {
		case FieldTitle:
			err = validateTitle(req.Title)
		case FieldDescription:
			err = validateDescription(req.Description)
		case FieldAddress:
			if strings.TrimSpace(req.Address) == "" {
				err = ErrEmptyAddress
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *PlaceValidator) validateUpdatePlace(req models.UpdatePlaceRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPlaceID, FieldTitle, FieldDescription}
	}

	for _, field := range fields {
		var err error
		switch field {
		case FieldPlaceID:
			if !utils.IsValidUUID(req.PlaceID) {
				err = ErrInvalidPlaceID
			}
		case FieldTitle:
			err = validateTitle(req.Title)
		case FieldDescription:
			err = validateDescription(req.Description)
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	return nil
}

func validateDescription(description string) error {
	if utf8.RuneCountInString(description) < MinDescriptionLength {
		return ErrInvalidDescription
	}
	return nil
}
