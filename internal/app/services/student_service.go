package services

import (
	"context"
	"fmt"

	"github.com/delis/schoolhub/internal/app/models"
	"github.com/delis/schoolhub/internal/app/models/dto"
	"github.com/delis/schoolhub/internal/app/repositories"
	"github.com/delis/schoolhub/internal/pkg/apperrors"
	"github.com/delis/schoolhub/internal/pkg/helpers"
)

type studentService struct {
	studentRepo repositories.IStudentRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo repositories.IStudentRepository) StudentService {
	return &studentService{
		studentRepo: studentRepo,
	}
}

// mapStudentInsert builds a student model from an insert DTO. The referenced
// city and user ids are taken as given; their existence is not verified
// before the insert.
func mapStudentInsert(d dto.StudentInsertDTO) (*models.Student, error) {
	gender := models.Gender(d.Gender)
	if !gender.Valid() {
		return nil, fmt.Errorf("%w: gender must be M or F", apperrors.ErrValidationFailed)
	}

	birthDate, err := helpers.ParseBirthDate(d.BirthDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidationFailed, err)
	}

	return &models.Student{
		Firstname: d.Firstname,
		Lastname:  d.Lastname,
		Gender:    gender,
		BirthDate: birthDate,
		CityID:    d.CityID,
		UserID:    d.UserID,
	}, nil
}

// InsertStudent creates a new student record.
func (s *studentService) InsertStudent(ctx context.Context, d dto.StudentInsertDTO) (*models.Student, error) {
	student, err := mapStudentInsert(d)
	if err != nil {
		return nil, err
	}

	return s.studentRepo.Insert(ctx, student)
}

// UpdateStudent replaces an existing student record.
func (s *studentService) UpdateStudent(ctx context.Context, d dto.StudentUpdateDTO) (*models.Student, error) {
	student, err := mapStudentInsert(dto.StudentInsertDTO{
		Firstname: d.Firstname,
		Lastname:  d.Lastname,
		Gender:    d.Gender,
		BirthDate: d.BirthDate,
		CityID:    d.CityID,
		UserID:    d.UserID,
	})
	if err != nil {
		return nil, err
	}
	student.ID = d.ID

	stored, err := s.studentRepo.GetByID(ctx, student.ID)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, fmt.Errorf("%w: id=%d", apperrors.ErrStudentNotFound, student.ID)
	}

	return s.studentRepo.Update(ctx, student)
}

// DeleteStudent deletes a student by id.
func (s *studentService) DeleteStudent(ctx context.Context, id int64) error {
	stored, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if stored == nil {
		return fmt.Errorf("%w: id=%d", apperrors.ErrStudentNotFound, id)
	}

	_, err = s.studentRepo.Delete(ctx, id)
	return err
}

// GetStudentByID retrieves a student by id. An absent row returns nil
// without error; there is no not-found promotion on this path.
func (s *studentService) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

// GetStudentsByLastname retrieves all students whose lastname begins with
// the given prefix.
func (s *studentService) GetStudentsByLastname(ctx context.Context, prefix string) ([]*models.Student, error) {
	return s.studentRepo.GetByLastname(ctx, prefix)
}

// GetAllStudents retrieves all students, layered on the prefix search with
// an empty prefix.
func (s *studentService) GetAllStudents(ctx context.Context) ([]*models.Student, error) {
	return s.studentRepo.GetByLastname(ctx, "")
}
