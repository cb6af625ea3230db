package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/delis/schoolhub/internal/app/models"
	"github.com/delis/schoolhub/internal/pkg/apperrors"
	"github.com/delis/schoolhub/internal/pkg/dberrors"
)

// CityRepository handles database operations for cities
type CityRepository struct {
	db DB
}

// NewCityRepository creates a new city repository
func NewCityRepository(db DB) *CityRepository {
	return &CityRepository{
		db: db,
	}
}

// Insert creates a new city and returns it with the store-assigned id.
func (r *CityRepository) Insert(ctx context.Context, city *models.City) (*models.City, error) {
	query := `
		INSERT INTO cities (name)
		VALUES ($1)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, city.Name).Scan(&city.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		// The unique index on name is the backstop for the service layer's
		// check-then-act insert.
		if dberrors.IsUniqueViolation(err, "cities_name_key") {
			return nil, apperrors.ErrCityAlreadyExists
		}
		return nil, apperrors.NewStoreError("city", "insert", city.Name, err)
	}

	return city, nil
}

// Update replaces a city record keyed by id. A zero-row outcome returns nil
// rather than an error.
func (r *CityRepository) Update(ctx context.Context, city *models.City) (*models.City, error) {
	query := `
		UPDATE cities
		SET name = $1
		WHERE id = $2
	`

	cmdTag, err := r.db.Exec(ctx, query, city.Name, city.ID)
	if err != nil {
		return nil, apperrors.NewStoreError("city", "update", city.ID, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return nil, nil
	}

	return city, nil
}

// Delete removes a city by id and reports whether a row was actually
// deleted. Deleting a nonexistent id yields false, not an error.
func (r *CityRepository) Delete(ctx context.Context, id int64) (bool, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM cities WHERE id = $1`, id)
	if err != nil {
		return false, apperrors.NewStoreError("city", "delete", id, err)
	}

	return cmdTag.RowsAffected() == 1, nil
}

// GetByID retrieves a city by ID. An absent row returns nil, nil.
func (r *CityRepository) GetByID(ctx context.Context, id int64) (*models.City, error) {
	query := `
		SELECT id, name
		FROM cities
		WHERE id = $1
	`

	var city models.City
	err := r.db.QueryRow(ctx, query, id).Scan(&city.ID, &city.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.NewStoreError("city", "get by id", id, err)
	}

	return &city, nil
}

// GetByName retrieves a city by its exact name. An absent row returns nil, nil.
func (r *CityRepository) GetByName(ctx context.Context, name string) (*models.City, error) {
	query := `
		SELECT id, name
		FROM cities
		WHERE name = $1
	`

	var city models.City
	err := r.db.QueryRow(ctx, query, name).Scan(&city.ID, &city.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.NewStoreError("city", "get by name", name, err)
	}

	return &city, nil
}

// GetAll retrieves all cities
func (r *CityRepository) GetAll(ctx context.Context) ([]*models.City, error) {
	query := `
		SELECT id, name
		FROM cities
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewStoreError("city", "get all", nil, err)
	}
	defer rows.Close()

	var cities []*models.City
	for rows.Next() {
		var city models.City
		if err := rows.Scan(&city.ID, &city.Name); err != nil {
			return nil, apperrors.NewStoreError("city", "get all", nil, err)
		}
		cities = append(cities, &city)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStoreError("city", "get all", nil, err)
	}

	return cities, nil
}
