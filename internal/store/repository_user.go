package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-places/internal/logger"
	"github.com/MKhiriev/go-places/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It works on the "users" table and reads the owned-place index from
// "user_places".
type userRepository struct {
	*DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateUser inserts a new user. A new user owns no places.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUserQuery(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to create query")
		return models.User{}, err
	}

	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&user.CreatedAt); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			log.Warn().Str("func", "*userRepository.CreateUser").Msg("email already exists")
			return models.User{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to insert user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	user.Places = []string{}
	return user, nil
}

// FindUserByID returns the user identified by userID or [ErrUserNotFound].
func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	return r.findUser(ctx, sq.Eq{"user_id": userID})
}

// FindUserByEmail returns the user registered with email or [ErrUserNotFound].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, sq.Eq{"email": email})
}

func (r *userRepository) findUser(ctx context.Context, where sq.Eq) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserQuery(ctx, where)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findUser").Msg("failed to create query")
		return models.User{}, err
	}

	user, err := scanUser(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findUser").Msg("failed to select user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	owned, err := selectOwnedPlaces(ctx, r.DB, user.UserID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findUser").Str("user_id", user.UserID).Msg("failed to select owned places")
		return models.User{}, err
	}
	user.Places = owned[user.UserID]
	if user.Places == nil {
		user.Places = []string{}
	}

	return user, nil
}

// ListUsers returns all users ordered by registration time. The owned-place
// index is read with one extra query for all users.
func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllUsersQuery(ctx)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("failed to select users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		user, scanErr := scanUser(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*userRepository.ListUsers").Msg("failed to scan user")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		users = append(users, user)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("failed to iterate users")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if len(users) == 0 {
		return users, nil
	}

	owned, err := selectOwnedPlaces(ctx, r.DB)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("failed to select owned places")
		return nil, err
	}
	for i := range users {
		users[i].Places = owned[users[i].UserID]
		if users[i].Places == nil {
			users[i].Places = []string{}
		}
	}

	return users, nil
}

// DeleteUser removes the user, every place in its owned-place index and the
// index itself in a single transaction.
func (r *userRepository) DeleteUser(ctx context.Context, user models.User) ([]string, error) {
	log := logger.FromContext(ctx)

	var images []string
	err := r.WithTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		var err error
		if len(user.Places) > 0 {
			if images, err = deletePlaces(ctx, tx, user.Places); err != nil {
				return err
			}
		}

		query, args, err := buildDeleteAllUserPlacesQuery(ctx, user.UserID)
		if err != nil {
			return err
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		query, args, err = buildDeleteUserQuery(ctx, user.UserID)
		if err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return ErrUserNotFound
		}

		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Str("user_id", user.UserID).Msg("failed to delete user")
		return nil, err
	}

	log.Info().
		Str("func", "*userRepository.DeleteUser").
		Str("user_id", user.UserID).
		Int("places_deleted", len(images)).
		Msg("user deleted")

	return images, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(&user.UserID, &user.Name, &user.Email, &user.Password, &user.Image, &user.CreatedAt)
	return user, err
}

// selectOwnedPlaces reads the owned-place index grouped by user id.
func selectOwnedPlaces(ctx context.Context, q querier, userIDs ...string) (map[string][]string, error) {
	query, args, err := buildSelectUserPlacesQuery(ctx, userIDs...)
	if err != nil {
		return nil, err
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	owned := make(map[string][]string)
	for rows.Next() {
		var userID, placeID string
		if err = rows.Scan(&userID, &placeID); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		owned[userID] = append(owned[userID], placeID)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return owned, nil
}
