package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/delis/schoolhub/internal/app/models"
	"github.com/delis/schoolhub/internal/pkg/apperrors"
)

// TeacherRepository handles database operations for teachers. Reads hydrate
// the speciality and user relations with secondary lookups, mirroring the
// student repository.
type TeacherRepository struct {
	db           DB
	specialities *SpecialityRepository
	users        *UserRepository
}

// NewTeacherRepository creates a new teacher repository
func NewTeacherRepository(db DB) *TeacherRepository {
	return &TeacherRepository{
		db:           db,
		specialities: NewSpecialityRepository(db),
		users:        NewUserRepository(db),
	}
}

// Insert creates a new teacher and returns it with the store-assigned id.
// The referenced speciality and user ids are stored as given, not verified.
func (r *TeacherRepository) Insert(ctx context.Context, teacher *models.Teacher) (*models.Teacher, error) {
	query := `
		INSERT INTO teachers (ssn, firstname, lastname, speciality_id, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		teacher.SSN, teacher.Firstname, teacher.Lastname,
		teacher.SpecialityID, teacher.UserID,
	).Scan(&teacher.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.NewStoreError("teacher", "insert", teacher.Lastname, err)
	}

	return teacher, nil
}

// Update replaces a teacher record keyed by id. A zero-row outcome returns
// nil rather than an error.
func (r *TeacherRepository) Update(ctx context.Context, teacher *models.Teacher) (*models.Teacher, error) {
	query := `
		UPDATE teachers
		SET ssn = $1, firstname = $2, lastname = $3, speciality_id = $4, user_id = $5
		WHERE id = $6
	`

	cmdTag, err := r.db.Exec(ctx, query,
		teacher.SSN, teacher.Firstname, teacher.Lastname,
		teacher.SpecialityID, teacher.UserID, teacher.ID,
	)
	if err != nil {
		return nil, apperrors.NewStoreError("teacher", "update", teacher.ID, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return nil, nil
	}

	return teacher, nil
}

// Delete removes a teacher by id and reports whether a row was deleted.
func (r *TeacherRepository) Delete(ctx context.Context, id int64) (bool, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM teachers WHERE id = $1`, id)
	if err != nil {
		return false, apperrors.NewStoreError("teacher", "delete", id, err)
	}

	return cmdTag.RowsAffected() == 1, nil
}

// GetByID retrieves a teacher by ID, hydrated. An absent row returns
// nil, nil. A dangling speciality or user reference leaves the relation nil.
func (r *TeacherRepository) GetByID(ctx context.Context, id int64) (*models.Teacher, error) {
	return r.getOne(ctx, `
		SELECT id, ssn, firstname, lastname, speciality_id, user_id
		FROM teachers
		WHERE id = $1
	`, id)
}

// GetByUserID retrieves the teacher referencing the given user, hydrated.
// Each user is referenced by at most one teacher.
func (r *TeacherRepository) GetByUserID(ctx context.Context, userID int64) (*models.Teacher, error) {
	return r.getOne(ctx, `
		SELECT id, ssn, firstname, lastname, speciality_id, user_id
		FROM teachers
		WHERE user_id = $1
	`, userID)
}

func (r *TeacherRepository) getOne(ctx context.Context, query string, key int64) (*models.Teacher, error) {
	var teacher models.Teacher
	err := r.db.QueryRow(ctx, query, key).Scan(
		&teacher.ID,
		&teacher.SSN,
		&teacher.Firstname,
		&teacher.Lastname,
		&teacher.SpecialityID,
		&teacher.UserID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.NewStoreError("teacher", "get", key, err)
	}

	speciality, err := r.specialities.GetByID(ctx, teacher.SpecialityID)
	if err != nil {
		return nil, err
	}
	user, err := r.users.GetByID(ctx, teacher.UserID)
	if err != nil {
		return nil, err
	}
	teacher.Speciality = speciality
	teacher.User = user

	return &teacher, nil
}

// GetByLastname retrieves all teachers whose lastname begins with the given
// prefix, hydrated. An empty prefix matches every row. A dangling reference
// on this path is a hard failure carrying the related entity's error.
func (r *TeacherRepository) GetByLastname(ctx context.Context, prefix string) ([]*models.Teacher, error) {
	query := `
		SELECT id, ssn, firstname, lastname, speciality_id, user_id
		FROM teachers
		WHERE lastname LIKE $1
	`

	rows, err := r.db.Query(ctx, query, prefix+"%")
	if err != nil {
		return nil, apperrors.NewStoreError("teacher", "get by lastname", prefix, err)
	}
	defer rows.Close()

	var teachers []*models.Teacher
	for rows.Next() {
		var teacher models.Teacher
		if err := rows.Scan(
			&teacher.ID,
			&teacher.SSN,
			&teacher.Firstname,
			&teacher.Lastname,
			&teacher.SpecialityID,
			&teacher.UserID,
		); err != nil {
			return nil, apperrors.NewStoreError("teacher", "get by lastname", prefix, err)
		}
		teachers = append(teachers, &teacher)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStoreError("teacher", "get by lastname", prefix, err)
	}

	if err := r.hydrateAll(ctx, teachers); err != nil {
		return nil, err
	}

	return teachers, nil
}

// hydrateAll fills the speciality and user relations for a list of teachers
// using one batched lookup per relation.
func (r *TeacherRepository) hydrateAll(ctx context.Context, teachers []*models.Teacher) error {
	if len(teachers) == 0 {
		return nil
	}

	specialityIDs := make([]int64, 0, len(teachers))
	userIDs := make([]int64, 0, len(teachers))
	for _, t := range teachers {
		specialityIDs = append(specialityIDs, t.SpecialityID)
		userIDs = append(userIDs, t.UserID)
	}

	specialities, err := r.specialitiesByIDs(ctx, specialityIDs)
	if err != nil {
		return err
	}
	users, err := r.usersByIDs(ctx, userIDs)
	if err != nil {
		return err
	}

	for _, t := range teachers {
		speciality, ok := specialities[t.SpecialityID]
		if !ok {
			return apperrors.NewStoreError("speciality", "hydrate", t.SpecialityID, apperrors.ErrSpecialityNotFound)
		}
		user, ok := users[t.UserID]
		if !ok {
			return apperrors.NewStoreError("user", "hydrate", t.UserID, apperrors.ErrUserNotFound)
		}
		t.Speciality = speciality
		t.User = user
	}

	return nil
}

func (r *TeacherRepository) specialitiesByIDs(ctx context.Context, ids []int64) (map[int64]*models.Speciality, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM specialities WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, apperrors.NewStoreError("speciality", "get by ids", ids, err)
	}
	defer rows.Close()

	specialities := make(map[int64]*models.Speciality)
	for rows.Next() {
		var speciality models.Speciality
		if err := rows.Scan(&speciality.ID, &speciality.Name); err != nil {
			return nil, apperrors.NewStoreError("speciality", "get by ids", ids, err)
		}
		specialities[speciality.ID] = &speciality
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStoreError("speciality", "get by ids", ids, err)
	}

	return specialities, nil
}

func (r *TeacherRepository) usersByIDs(ctx context.Context, ids []int64) (map[int64]*models.User, error) {
	rows, err := r.db.Query(ctx, `SELECT id, username, password FROM users WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, apperrors.NewStoreError("user", "get by ids", ids, err)
	}
	defer rows.Close()

	users := make(map[int64]*models.User)
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Username, &user.Password); err != nil {
			return nil, apperrors.NewStoreError("user", "get by ids", ids, err)
		}
		users[user.ID] = &user
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStoreError("user", "get by ids", ids, err)
	}

	return users, nil
}
