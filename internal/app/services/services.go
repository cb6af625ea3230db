package services

import (
	"context"

	"github.com/delis/schoolhub/internal/app/models"
	"github.com/delis/schoolhub/internal/app/models/dto"
)

// CityService enforces the business rules for cities: name uniqueness on
// insert, existence on update/delete, and not-found promotion on lookup.
type CityService interface {
	InsertCity(ctx context.Context, d dto.CityInsertDTO) (*models.City, error)
	UpdateCity(ctx context.Context, d dto.CityUpdateDTO) (*models.City, error)
	DeleteCity(ctx context.Context, id int64) error
	GetCityByID(ctx context.Context, id int64) (*models.City, error)
	GetAllCities(ctx context.Context) ([]*models.City, error)
}

// SpecialityService enforces the business rules for specialities. No
// uniqueness rule applies, and a single lookup for an absent id returns nil
// without error.
type SpecialityService interface {
	InsertSpeciality(ctx context.Context, d dto.SpecialityInsertDTO) (*models.Speciality, error)
	UpdateSpeciality(ctx context.Context, d dto.SpecialityUpdateDTO) (*models.Speciality, error)
	DeleteSpeciality(ctx context.Context, id int64) error
	GetSpecialityByID(ctx context.Context, id int64) (*models.Speciality, error)
	GetAllSpecialities(ctx context.Context) ([]*models.Speciality, error)
}

// UserService enforces the business rules for users, orchestrates the
// cascading delete of dependent student or teacher records, and performs
// the login check.
type UserService interface {
	InsertUser(ctx context.Context, d dto.UserInsertDTO) (*models.User, error)
	UpdateUser(ctx context.Context, d dto.UserUpdateDTO) (*models.User, error)
	DeleteUser(ctx context.Context, id int64) error
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUsersByUsernameLike(ctx context.Context, prefix string) ([]*models.User, error)
	GetAllUsers(ctx context.Context) ([]*models.User, error)
	Login(ctx context.Context, d dto.LoginDTO) (bool, error)
}

// StudentService enforces the business rules for students.
type StudentService interface {
	InsertStudent(ctx context.Context, d dto.StudentInsertDTO) (*models.Student, error)
	UpdateStudent(ctx context.Context, d dto.StudentUpdateDTO) (*models.Student, error)
	DeleteStudent(ctx context.Context, id int64) error
	GetStudentByID(ctx context.Context, id int64) (*models.Student, error)
	GetStudentsByLastname(ctx context.Context, prefix string) ([]*models.Student, error)
	GetAllStudents(ctx context.Context) ([]*models.Student, error)
}

// TeacherService enforces the business rules for teachers.
type TeacherService interface {
	InsertTeacher(ctx context.Context, d dto.TeacherInsertDTO) (*models.Teacher, error)
	UpdateTeacher(ctx context.Context, d dto.TeacherUpdateDTO) (*models.Teacher, error)
	DeleteTeacher(ctx context.Context, id int64) error
	GetTeacherByID(ctx context.Context, id int64) (*models.Teacher, error)
	GetTeachersByLastname(ctx context.Context, prefix string) ([]*models.Teacher, error)
	GetAllTeachers(ctx context.Context) ([]*models.Teacher, error)
}
