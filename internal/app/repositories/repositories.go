package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/delis/schoolhub/internal/app/models"
)

// DB is the subset of pgxpool.Pool the repositories use. Each operation
// acquires and releases its own connection through it.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ICityRepository defines the store operations for cities.
type ICityRepository interface {
	Insert(ctx context.Context, city *models.City) (*models.City, error)
	Update(ctx context.Context, city *models.City) (*models.City, error)
	Delete(ctx context.Context, id int64) (bool, error)
	GetByID(ctx context.Context, id int64) (*models.City, error)
	GetByName(ctx context.Context, name string) (*models.City, error)
	GetAll(ctx context.Context) ([]*models.City, error)
}

// ISpecialityRepository defines the store operations for specialities.
type ISpecialityRepository interface {
	Insert(ctx context.Context, speciality *models.Speciality) (*models.Speciality, error)
	Update(ctx context.Context, speciality *models.Speciality) (*models.Speciality, error)
	Delete(ctx context.Context, id int64) (bool, error)
	GetByID(ctx context.Context, id int64) (*models.Speciality, error)
	GetAll(ctx context.Context) ([]*models.Speciality, error)
}

// IUserRepository defines the store operations for users.
type IUserRepository interface {
	Insert(ctx context.Context, user *models.User) (*models.User, error)
	Update(ctx context.Context, user *models.User) (*models.User, error)
	Delete(ctx context.Context, id int64) (bool, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByUsernameLike(ctx context.Context, prefix string) ([]*models.User, error)
	GetAll(ctx context.Context) ([]*models.User, error)
}

// IStudentRepository defines the store operations for students. All reads
// return fully hydrated records.
type IStudentRepository interface {
	Insert(ctx context.Context, student *models.Student) (*models.Student, error)
	Update(ctx context.Context, student *models.Student) (*models.Student, error)
	Delete(ctx context.Context, id int64) (bool, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetByUserID(ctx context.Context, userID int64) (*models.Student, error)
	GetByLastname(ctx context.Context, prefix string) ([]*models.Student, error)
}

// ITeacherRepository defines the store operations for teachers. All reads
// return fully hydrated records.
type ITeacherRepository interface {
	Insert(ctx context.Context, teacher *models.Teacher) (*models.Teacher, error)
	Update(ctx context.Context, teacher *models.Teacher) (*models.Teacher, error)
	Delete(ctx context.Context, id int64) (bool, error)
	GetByID(ctx context.Context, id int64) (*models.Teacher, error)
	GetByUserID(ctx context.Context, userID int64) (*models.Teacher, error)
	GetByLastname(ctx context.Context, prefix string) ([]*models.Teacher, error)
}

// Repositories holds all repository instances
type Repositories struct {
	CityRepository       *CityRepository
	SpecialityRepository *SpecialityRepository
	UserRepository       *UserRepository
	StudentRepository    *StudentRepository
	TeacherRepository    *TeacherRepository
}

// NewRepositories creates all repositories sharing the same pool.
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		CityRepository:       NewCityRepository(db),
		SpecialityRepository: NewSpecialityRepository(db),
		UserRepository:       NewUserRepository(db),
		StudentRepository:    NewStudentRepository(db),
		TeacherRepository:    NewTeacherRepository(db),
	}
}
