package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/delis/schoolhub/internal/app/models"
	"github.com/delis/schoolhub/internal/pkg/apperrors"
	"github.com/delis/schoolhub/internal/pkg/dberrors"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db DB) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

// Insert creates a new user and returns it with the store-assigned id.
// The password field must already hold a hash.
func (r *UserRepository) Insert(ctx context.Context, user *models.User) (*models.User, error) {
	query := `
		INSERT INTO users (username, password)
		VALUES ($1, $2)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, user.Username, user.Password).Scan(&user.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		// The unique index on username is the backstop for the service
		// layer's check-then-act insert.
		if dberrors.IsUniqueViolation(err, "users_username_key") {
			return nil, apperrors.ErrUsernameAlreadyExists
		}
		return nil, apperrors.NewStoreError("user", "insert", user.Username, err)
	}

	return user, nil
}

// Update replaces a user record keyed by id. A zero-row outcome returns nil
// rather than an error.
func (r *UserRepository) Update(ctx context.Context, user *models.User) (*models.User, error) {
	query := `
		UPDATE users
		SET username = $1, password = $2
		WHERE id = $3
	`

	cmdTag, err := r.db.Exec(ctx, query, user.Username, user.Password, user.ID)
	if err != nil {
		// A unique violation here is not promoted: the already-exists
		// condition belongs to insert only, so update failures of any kind
		// surface as store errors.
		return nil, apperrors.NewStoreError("user", "update", user.ID, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return nil, nil
	}

	return user, nil
}

// Delete removes a user by id and reports whether a row was deleted.
func (r *UserRepository) Delete(ctx context.Context, id int64) (bool, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return false, apperrors.NewStoreError("user", "delete", id, err)
	}

	return cmdTag.RowsAffected() == 1, nil
}

// GetByID retrieves a user by ID. An absent row returns nil, nil.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `
		SELECT id, username, password
		FROM users
		WHERE id = $1
	`

	var user models.User
	err := r.db.QueryRow(ctx, query, id).Scan(&user.ID, &user.Username, &user.Password)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.NewStoreError("user", "get by id", id, err)
	}

	return &user, nil
}

// GetByUsername retrieves a user by exact username. An absent row returns
// nil, nil.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `
		SELECT id, username, password
		FROM users
		WHERE username = $1
	`

	var user models.User
	err := r.db.QueryRow(ctx, query, username).Scan(&user.ID, &user.Username, &user.Password)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.NewStoreError("user", "get by username", username, err)
	}

	return &user, nil
}

// GetByUsernameLike retrieves all users whose username begins with the given
// prefix. An empty prefix matches every row.
func (r *UserRepository) GetByUsernameLike(ctx context.Context, prefix string) ([]*models.User, error) {
	query := `
		SELECT id, username, password
		FROM users
		WHERE username LIKE $1
	`

	rows, err := r.db.Query(ctx, query, prefix+"%")
	if err != nil {
		return nil, apperrors.NewStoreError("user", "get by username like", prefix, err)
	}
	defer rows.Close()

	return scanUsers(rows, prefix)
}

// GetAll retrieves all users
func (r *UserRepository) GetAll(ctx context.Context) ([]*models.User, error) {
	query := `
		SELECT id, username, password
		FROM users
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewStoreError("user", "get all", nil, err)
	}
	defer rows.Close()

	return scanUsers(rows, nil)
}

func scanUsers(rows pgx.Rows, key any) ([]*models.User, error) {
	var users []*models.User
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Username, &user.Password); err != nil {
			return nil, apperrors.NewStoreError("user", "scan", key, err)
		}
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStoreError("user", "scan", key, err)
	}

	return users, nil
}
