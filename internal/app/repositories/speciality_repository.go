package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/delis/schoolhub/internal/app/models"
	"github.com/delis/schoolhub/internal/pkg/apperrors"
)

// SpecialityRepository handles database operations for specialities
type SpecialityRepository struct {
	db DB
}

// NewSpecialityRepository creates a new speciality repository
func NewSpecialityRepository(db DB) *SpecialityRepository {
	return &SpecialityRepository{
		db: db,
	}
}

// Insert creates a new speciality and returns it with the store-assigned id.
// Speciality names carry no uniqueness rule.
func (r *SpecialityRepository) Insert(ctx context.Context, speciality *models.Speciality) (*models.Speciality, error) {
	query := `
		INSERT INTO specialities (name)
		VALUES ($1)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, speciality.Name).Scan(&speciality.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.NewStoreError("speciality", "insert", speciality.Name, err)
	}

	return speciality, nil
}

// Update replaces a speciality record keyed by id. A zero-row outcome
// returns nil rather than an error.
func (r *SpecialityRepository) Update(ctx context.Context, speciality *models.Speciality) (*models.Speciality, error) {
	query := `
		UPDATE specialities
		SET name = $1
		WHERE id = $2
	`

	cmdTag, err := r.db.Exec(ctx, query, speciality.Name, speciality.ID)
	if err != nil {
		return nil, apperrors.NewStoreError("speciality", "update", speciality.ID, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return nil, nil
	}

	return speciality, nil
}

// Delete removes a speciality by id and reports whether a row was deleted.
func (r *SpecialityRepository) Delete(ctx context.Context, id int64) (bool, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM specialities WHERE id = $1`, id)
	if err != nil {
		return false, apperrors.NewStoreError("speciality", "delete", id, err)
	}

	return cmdTag.RowsAffected() == 1, nil
}

// GetByID retrieves a speciality by ID. An absent row returns nil, nil.
func (r *SpecialityRepository) GetByID(ctx context.Context, id int64) (*models.Speciality, error) {
	query := `
		SELECT id, name
		FROM specialities
		WHERE id = $1
	`

	var speciality models.Speciality
	err := r.db.QueryRow(ctx, query, id).Scan(&speciality.ID, &speciality.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.NewStoreError("speciality", "get by id", id, err)
	}

	return &speciality, nil
}

// GetAll retrieves all specialities
func (r *SpecialityRepository) GetAll(ctx context.Context) ([]*models.Speciality, error) {
	query := `
		SELECT id, name
		FROM specialities
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewStoreError("speciality", "get all", nil, err)
	}
	defer rows.Close()

	var specialities []*models.Speciality
	for rows.Next() {
		var speciality models.Speciality
		if err := rows.Scan(&speciality.ID, &speciality.Name); err != nil {
			return nil, apperrors.NewStoreError("speciality", "get all", nil, err)
		}
		specialities = append(specialities, &speciality)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStoreError("speciality", "get all", nil, err)
	}

	return specialities, nil
}
