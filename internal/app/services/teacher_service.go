package services

import (
	"context"
	"fmt"

	"github.com/delis/schoolhub/internal/app/models"
	"github.com/delis/schoolhub/internal/app/models/dto"
	"github.com/delis/schoolhub/internal/app/repositories"
	"github.com/delis/schoolhub/internal/pkg/apperrors"
)

type teacherService struct {
	teacherRepo repositories.ITeacherRepository
}

// NewTeacherService creates a new teacher service instance
func NewTeacherService(teacherRepo repositories.ITeacherRepository) TeacherService {
	return &teacherService{
		teacherRepo: teacherRepo,
	}
}

// InsertTeacher creates a new teacher record. The referenced speciality and
// user ids are taken as given; their existence is not verified before the
// insert.
func (s *teacherService) InsertTeacher(ctx context.Context, d dto.TeacherInsertDTO) (*models.Teacher, error) {
	teacher := &models.Teacher{
		SSN:          d.SSN,
		Firstname:    d.Firstname,
		Lastname:     d.Lastname,
		SpecialityID: d.SpecialityID,
		UserID:       d.UserID,
	}

	return s.teacherRepo.Insert(ctx, teacher)
}

// UpdateTeacher replaces an existing teacher record.
func (s *teacherService) UpdateTeacher(ctx context.Context, d dto.TeacherUpdateDTO) (*models.Teacher, error) {
	teacher := &models.Teacher{
		ID:           d.ID,
		SSN:          d.SSN,
		Firstname:    d.Firstname,
		Lastname:     d.Lastname,
		SpecialityID: d.SpecialityID,
		UserID:       d.UserID,
	}

	stored, err := s.teacherRepo.GetByID(ctx, teacher.ID)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, fmt.Errorf("%w: id=%d", apperrors.ErrTeacherNotFound, teacher.ID)
	}

	return s.teacherRepo.Update(ctx, teacher)
}

// DeleteTeacher deletes a teacher by id.
func (s *teacherService) DeleteTeacher(ctx context.Context, id int64) error {
	stored, err := s.teacherRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if stored == nil {
		return fmt.Errorf("%w: id=%d", apperrors.ErrTeacherNotFound, id)
	}

	_, err = s.teacherRepo.Delete(ctx, id)
	return err
}

// GetTeacherByID retrieves a teacher by id. An absent row returns nil
// without error; there is no not-found promotion on this path.
func (s *teacherService) GetTeacherByID(ctx context.Context, id int64) (*models.Teacher, error) {
	return s.teacherRepo.GetByID(ctx, id)
}

// GetTeachersByLastname retrieves all teachers whose lastname begins with
// the given prefix.
func (s *teacherService) GetTeachersByLastname(ctx context.Context, prefix string) ([]*models.Teacher, error) {
	return s.teacherRepo.GetByLastname(ctx, prefix)
}

// GetAllTeachers retrieves all teachers, layered on the prefix search with
// an empty prefix.
func (s *teacherService) GetAllTeachers(ctx context.Context) ([]*models.Teacher, error) {
	return s.teacherRepo.GetByLastname(ctx, "")
}
