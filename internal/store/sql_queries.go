package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-places/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	usersTable      = "users"
	placesTable     = "places"
	userPlacesTable = "user_places"
)

var (
	userColumns = []string{"user_id", "name", "email", "password", "image", "created_at"}

	placeColumns = []string{
		"place_id",
		"title",
		"description",
		"address",
		"lat",
		"lng",
		"image",
		"creator_id",
		"created_at",
		"updated_at",
	}
)

// psql builds Postgres statements with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func toSQL(ctx context.Context, b sq.Sqlizer) (string, []any, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// ── users ────────────────────────────────────────────────────────────────────

func buildInsertUserQuery(ctx context.Context, user models.User) (string, []any, error) {
	return toSQL(ctx, psql.Insert(usersTable).
		Columns("user_id", "name", "email", "password", "image").
		Values(user.UserID, user.Name, user.Email, user.Password, user.Image).
		Suffix("RETURNING created_at"))
}

func buildSelectUserQuery(ctx context.Context, where sq.Eq) (string, []any, error) {
	return toSQL(ctx, psql.Select(userColumns...).
		From(usersTable).
		Where(where).
		Limit(1))
}

func buildSelectAllUsersQuery(ctx context.Context) (string, []any, error) {
	return toSQL(ctx, psql.Select(userColumns...).
		From(usersTable).
		OrderBy("created_at", "user_id"))
}

// buildSelectUserPlacesQuery selects (user_id, place_id) pairs of the owned
// place index in insertion order. Without userIDs every pair is selected.
func buildSelectUserPlacesQuery(ctx context.Context, userIDs ...string) (string, []any, error) {
	b := psql.Select("user_id", "place_id").
		From(userPlacesTable).
		OrderBy("user_id", "position")

	if len(userIDs) > 0 {
		b = b.Where(sq.Eq{"user_id": userIDs})
	}

	return toSQL(ctx, b)
}

func buildDeleteUserQuery(ctx context.Context, userID string) (string, []any, error) {
	return toSQL(ctx, psql.Delete(usersTable).Where(sq.Eq{"user_id": userID}))
}

// ── places ───────────────────────────────────────────────────────────────────

func buildInsertPlaceQuery(ctx context.Context, place models.Place) (string, []any, error) {
	return toSQL(ctx, psql.Insert(placesTable).
		Columns("place_id", "title", "description", "address", "lat", "lng", "image", "creator_id").
		Values(
			place.PlaceID,
			place.Title,
			place.Description,
			place.Address,
			place.Location.Lat,
			place.Location.Lng,
			place.Image,
			place.CreatorID,
		).
		Suffix("RETURNING created_at, updated_at"))
}

func buildSelectPlaceQuery(ctx context.Context, placeID string) (string, []any, error) {
	return toSQL(ctx, psql.Select(placeColumns...).
		From(placesTable).
		Where(sq.Eq{"place_id": placeID}))
}

func buildSelectPlacesByCreatorQuery(ctx context.Context, creatorID string) (string, []any, error) {
	return toSQL(ctx, psql.Select(placeColumns...).
		From(placesTable).
		Where(sq.Eq{"creator_id": creatorID}).
		OrderBy("created_at", "place_id"))
}

func buildUpdatePlaceQuery(ctx context.Context, placeID, title, description string) (string, []any, error) {
	return toSQL(ctx, psql.Update(placesTable).
		Set("title", title).
		Set("description", description).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"place_id": placeID}).
		Suffix("RETURNING created_at, updated_at"))
}

func buildDeletePlaceQuery(ctx context.Context, placeID string) (string, []any, error) {
	return toSQL(ctx, psql.Delete(placesTable).Where(sq.Eq{"place_id": placeID}))
}

// buildDeletePlacesQuery deletes the given places and returns their images.
func buildDeletePlacesQuery(ctx context.Context, placeIDs []string) (string, []any, error) {
	return toSQL(ctx, psql.Delete(placesTable).
		Where(sq.Eq{"place_id": placeIDs}).
		Suffix("RETURNING image"))
}

// ── user_places ──────────────────────────────────────────────────────────────

func buildInsertUserPlaceQuery(ctx context.Context, userID, placeID string) (string, []any, error) {
	return toSQL(ctx, psql.Insert(userPlacesTable).
		Columns("user_id", "place_id").
		Values(userID, placeID))
}

func buildDeleteUserPlaceQuery(ctx context.Context, userID, placeID string) (string, []any, error) {
	return toSQL(ctx, psql.Delete(userPlacesTable).
		Where(sq.Eq{"user_id": userID, "place_id": placeID}))
}

func buildDeleteAllUserPlacesQuery(ctx context.Context, userID string) (string, []any, error) {
	return toSQL(ctx, psql.Delete(userPlacesTable).Where(sq.Eq{"user_id": userID}))
}
