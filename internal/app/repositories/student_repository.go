package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/delis/schoolhub/internal/app/models"
	"github.com/delis/schoolhub/internal/pkg/apperrors"
)

// StudentRepository handles database operations for students. Reads hydrate
// the city and user relations with secondary lookups against their own
// repositories; no join-based hydration is used.
type StudentRepository struct {
	db     DB
	cities *CityRepository
	users  *UserRepository
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db DB) *StudentRepository {
	return &StudentRepository{
		db:     db,
		cities: NewCityRepository(db),
		users:  NewUserRepository(db),
	}
}

// Insert creates a new student and returns it with the store-assigned id.
// The referenced city and user ids are stored as given, not verified.
func (r *StudentRepository) Insert(ctx context.Context, student *models.Student) (*models.Student, error) {
	query := `
		INSERT INTO students (firstname, lastname, gender, birth_date, city_id, user_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		student.Firstname, student.Lastname, string(student.Gender),
		student.BirthDate, student.CityID, student.UserID,
	).Scan(&student.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.NewStoreError("student", "insert", student.Lastname, err)
	}

	return student, nil
}

// Update replaces a student record keyed by id. A zero-row outcome returns
// nil rather than an error.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) (*models.Student, error) {
	query := `
		UPDATE students
		SET firstname = $1, lastname = $2, gender = $3, birth_date = $4, city_id = $5, user_id = $6
		WHERE id = $7
	`

	cmdTag, err := r.db.Exec(ctx, query,
		student.Firstname, student.Lastname, string(student.Gender),
		student.BirthDate, student.CityID, student.UserID, student.ID,
	)
	if err != nil {
		return nil, apperrors.NewStoreError("student", "update", student.ID, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return nil, nil
	}

	return student, nil
}

// Delete removes a student by id and reports whether a row was deleted.
func (r *StudentRepository) Delete(ctx context.Context, id int64) (bool, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return false, apperrors.NewStoreError("student", "delete", id, err)
	}

	return cmdTag.RowsAffected() == 1, nil
}

// GetByID retrieves a student by ID, hydrated. An absent row returns
// nil, nil. A dangling city or user reference leaves the relation nil.
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	return r.getOne(ctx, `
		SELECT id, firstname, lastname, gender, birth_date, city_id, user_id
		FROM students
		WHERE id = $1
	`, id)
}

// GetByUserID retrieves the student referencing the given user, hydrated.
// Each user is referenced by at most one student.
func (r *StudentRepository) GetByUserID(ctx context.Context, userID int64) (*models.Student, error) {
	return r.getOne(ctx, `
		SELECT id, firstname, lastname, gender, birth_date, city_id, user_id
		FROM students
		WHERE user_id = $1
	`, userID)
}

func (r *StudentRepository) getOne(ctx context.Context, query string, key int64) (*models.Student, error) {
	var student models.Student
	var gender string
	err := r.db.QueryRow(ctx, query, key).Scan(
		&student.ID,
		&student.Firstname,
		&student.Lastname,
		&gender,
		&student.BirthDate,
		&student.CityID,
		&student.UserID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.NewStoreError("student", "get", key, err)
	}
	student.Gender = models.Gender(gender)

	// Secondary point lookups; a dangling reference resolves to nil here.
	city, err := r.cities.GetByID(ctx, student.CityID)
	if err != nil {
		return nil, err
	}
	user, err := r.users.GetByID(ctx, student.UserID)
	if err != nil {
		return nil, err
	}
	student.City = city
	student.User = user

	return &student, nil
}

// GetByLastname retrieves all students whose lastname begins with the given
// prefix, hydrated. An empty prefix matches every row. The referenced cities
// and users are fetched in one batch per relation; a dangling reference on
// this path is a hard failure carrying the related entity's error.
func (r *StudentRepository) GetByLastname(ctx context.Context, prefix string) ([]*models.Student, error) {
	query := `
		SELECT id, firstname, lastname, gender, birth_date, city_id, user_id
		FROM students
		WHERE lastname LIKE $1
	`

	rows, err := r.db.Query(ctx, query, prefix+"%")
	if err != nil {
		return nil, apperrors.NewStoreError("student", "get by lastname", prefix, err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		var student models.Student
		var gender string
		if err := rows.Scan(
			&student.ID,
			&student.Firstname,
			&student.Lastname,
			&gender,
			&student.BirthDate,
			&student.CityID,
			&student.UserID,
		); err != nil {
			return nil, apperrors.NewStoreError("student", "get by lastname", prefix, err)
		}
		student.Gender = models.Gender(gender)
		students = append(students, &student)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStoreError("student", "get by lastname", prefix, err)
	}

	if err := r.hydrateAll(ctx, students); err != nil {
		return nil, err
	}

	return students, nil
}

// hydrateAll fills the city and user relations for a list of students using
// one batched lookup per relation.
func (r *StudentRepository) hydrateAll(ctx context.Context, students []*models.Student) error {
	if len(students) == 0 {
		return nil
	}

	cityIDs := make([]int64, 0, len(students))
	userIDs := make([]int64, 0, len(students))
	for _, s := range students {
		cityIDs = append(cityIDs, s.CityID)
		userIDs = append(userIDs, s.UserID)
	}

	cities, err := r.citiesByIDs(ctx, cityIDs)
	if err != nil {
		return err
	}
	users, err := r.usersByIDs(ctx, userIDs)
	if err != nil {
		return err
	}

	for _, s := range students {
		city, ok := cities[s.CityID]
		if !ok {
			return apperrors.NewStoreError("city", "hydrate", s.CityID, apperrors.ErrCityNotFound)
		}
		user, ok := users[s.UserID]
		if !ok {
			return apperrors.NewStoreError("user", "hydrate", s.UserID, apperrors.ErrUserNotFound)
		}
		s.City = city
		s.User = user
	}

	return nil
}

func (r *StudentRepository) citiesByIDs(ctx context.Context, ids []int64) (map[int64]*models.City, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM cities WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, apperrors.NewStoreError("city", "get by ids", ids, err)
	}
	defer rows.Close()

	cities := make(map[int64]*models.City)
	for rows.Next() {
		var city models.City
		if err := rows.Scan(&city.ID, &city.Name); err != nil {
			return nil, apperrors.NewStoreError("city", "get by ids", ids, err)
		}
		cities[city.ID] = &city
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStoreError("city", "get by ids", ids, err)
	}

	return cities, nil
}

func (r *StudentRepository) usersByIDs(ctx context.Context, ids []int64) (map[int64]*models.User, error) {
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
