// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-places/internal/logger"
	"github.com/MKhiriev/go-places/models"
)

// placeRepository is the PostgreSQL-backed implementation of
// [PlaceRepository]. Place writes keep "places" and the creator's row set in
// "user_places" consistent by running both statements in one transaction.
type placeRepository struct {
	*DB
	logger *logger.Logger
}

// NewPlaceRepository constructs a [PlaceRepository] backed by the provided
// database connection and logger.
func NewPlaceRepository(db *DB, logger *logger.Logger) PlaceRepository {
	logger.Debug().Msg("creating place repository")
	return &placeRepository{
		DB:     db,
		logger: logger,
	}
}

// CreatePlace inserts place and appends its id to the creator's owned-place
// index. Either both rows are written or neither is.
func (p *placeRepository) CreatePlace(ctx context.Context, place models.Place) (models.Place, error) {
	log := logger.FromContext(ctx)

	err := p.WithTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		query, args, err := buildInsertPlaceQuery(ctx, place)
		if err != nil {
			return err
		}
		if err = tx.QueryRowContext(ctx, query, args...).Scan(&place.CreatedAt, &place.UpdatedAt); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		query, args, err = buildInsertUserPlaceQuery(ctx, place.CreatorID, place.PlaceID)
		if err != nil {
			return err
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "*placeRepository.CreatePlace").
			Str("creator_id", place.CreatorID).
			Msg("failed to create place")
		return models.Place{}, err
	}

	log.Debug().
		Str("func", "*placeRepository.CreatePlace").
		Str("place_id", place.PlaceID).
		Str("creator_id", place.CreatorID).
		Msg("place created")

	return place, nil
}

// FindPlaceByID returns the place identified by placeID or [ErrPlaceNotFound].
func (p *placeRepository) FindPlaceByID(ctx context.Context, placeID string) (models.Place, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectPlaceQuery(ctx, placeID)
	if err != nil {
		log.Err(err).Str("func", "*placeRepository.FindPlaceByID").Msg("failed to create query")
		return models.Place{}, err
	}

	place, err := scanPlace(p.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Place{}, ErrPlaceNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*placeRepository.FindPlaceByID").Str("place_id", placeID).Msg("failed to select place")
		return models.Place{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return place, nil
}

// FindPlacesByCreator returns the places created by creatorID, oldest first.
// An empty slice is returned when the user has no places.
func (p *placeRepository) FindPlacesByCreator(ctx context.Context, creatorID string) ([]models.Place, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectPlacesByCreatorQuery(ctx, creatorID)
	if err != nil {
		log.Err(err).Str("func", "*placeRepository.FindPlacesByCreator").Msg("failed to create query")
		return nil, err
	}

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*placeRepository.FindPlacesByCreator").Str("creator_id", creatorID).Msg("failed to select places")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	places := make([]models.Place, 0)
	for rows.Next() {
		place, scanErr := scanPlace(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*placeRepository.FindPlacesByCreator").Msg("failed to scan place")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		places = append(places, place)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*placeRepository.FindPlacesByCreator").Msg("failed to iterate places")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return places, nil
}

// UpdatePlace writes the title and description of place. Other fields are
// never changed.
func (p *placeRepository) UpdatePlace(ctx context.Context, place models.Place) (models.Place, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdatePlaceQuery(ctx, place.PlaceID, place.Title, place.Description)
	if err != nil {
		log.Err(err).Str("func", "*placeRepository.UpdatePlace").Msg("failed to create query")
		return models.Place{}, err
	}

	err = p.DB.QueryRowContext(ctx, query, args...).Scan(&place.CreatedAt, &place.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Place{}, ErrPlaceNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*placeRepository.UpdatePlace").Str("place_id", place.PlaceID).Msg("failed to update place")
		return models.Place{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return place, nil
}

// DeletePlace deletes place and removes it from its creator's owned-place
// index in one transaction.
func (p *placeRepository) DeletePlace(ctx context.Context, place models.Place) error {
	log := logger.FromContext(ctx)

	err := p.WithTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		query, args, err := buildDeletePlaceQuery(ctx, place.PlaceID)
		if err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return ErrPlaceNotFound
		}

		query, args, err = buildDeleteUserPlaceQuery(ctx, place.CreatorID, place.PlaceID)
		if err != nil {
			return err
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*placeRepository.DeletePlace").Str("place_id", place.PlaceID).Msg("failed to delete place")
		return err
	}

	log.Info().
		Str("func", "*placeRepository.DeletePlace").
		Str("place_id", place.PlaceID).
		Str("creator_id", place.CreatorID).
		Msg("place deleted")

	return nil
}

func scanPlace(row rowScanner) (models.Place, error) {
	var place models.Place
	err := row.Scan(
		&place.PlaceID,
		&place.Title,
		&place.Description,
		&place.Address,
		&place.Location.Lat,
		&place.Location.Lng,
		&place.Image,
		&place.CreatorID,
		&place.CreatedAt,
		&place.UpdatedAt,
	)
	return place, err
}

// deletePlaces deletes the given places and returns their image references.
func deletePlaces(ctx context.Context, q querier, placeIDs []string) ([]string, error) {
	query, args, err := buildDeletePlacesQuery(ctx, placeIDs)
	if err != nil {
		return nil, err
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	images := make([]string, 0, len(placeIDs))
	for rows.Next() {
		var image string
		if err = rows.Scan(&image); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		images = append(images, image)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return images, nil
}
