package services

import (
	"context"
	"fmt"

	"github.com/delis/schoolhub/internal/app/models"
	"github.com/delis/schoolhub/internal/app/models/dto"
	"github.com/delis/schoolhub/internal/app/repositories"
	"github.com/delis/schoolhub/internal/pkg/apperrors"
)

type specialityService struct {
	specialityRepo repositories.ISpecialityRepository
}

// NewSpecialityService creates a new speciality service instance
func NewSpecialityService(specialityRepo repositories.ISpecialityRepository) SpecialityService {
	return &specialityService{
		specialityRepo: specialityRepo,
	}
}

// InsertSpeciality creates a new speciality. No uniqueness check applies;
// two specialities may share a name.
func (s *specialityService) InsertSpeciality(ctx context.Context, d dto.SpecialityInsertDTO) (*models.Speciality, error) {
	speciality := &models.Speciality{Name: d.Name}
	return s.specialityRepo.Insert(ctx, speciality)
}

// UpdateSpeciality replaces an existing speciality record.
func (s *specialityService) UpdateSpeciality(ctx context.Context, d dto.SpecialityUpdateDTO) (*models.Speciality, error) {
	speciality := &models.Speciality{ID: d.ID, Name: d.Name}

	stored, err := s.specialityRepo.GetByID(ctx, speciality.ID)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, fmt.Errorf("%w: id=%d", apperrors.ErrSpecialityNotFound, speciality.ID)
	}

	return s.specialityRepo.Update(ctx, speciality)
}

// DeleteSpeciality deletes a speciality by id.
func (s *specialityService) DeleteSpeciality(ctx context.Context, id int64) error {
	stored, err := s.specialityRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if stored == nil {
		return fmt.Errorf("%w: id=%d", apperrors.ErrSpecialityNotFound, id)
	}

	// TODO: delete teachers referencing this speciality first, so the
	// delete cannot leave dangling speciality references.
	_, err = s.specialityRepo.Delete(ctx, id)
	return err
}

// GetSpecialityByID retrieves a speciality by id. An absent row returns
// nil without error; unlike cities and users, there is no not-found
// promotion on this path.
func (s *specialityService) GetSpecialityByID(ctx context.Context, id int64) (*models.Speciality, error) {
	return s.specialityRepo.GetByID(ctx, id)
}

// GetAllSpecialities retrieves all specialities
func (s *specialityService) GetAllSpecialities(ctx context.Context) ([]*models.Speciality, error) {
	return s.specialityRepo.GetAll(ctx)
}
