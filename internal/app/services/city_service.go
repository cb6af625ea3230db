package services

import (
	"context"
	"fmt"

	"github.com/delis/schoolhub/internal/app/models"
	"github.com/delis/schoolhub/internal/app/models/dto"
	"github.com/delis/schoolhub/internal/app/repositories"
	"github.com/delis/schoolhub/internal/pkg/apperrors"
)

type cityService struct {
	cityRepo repositories.ICityRepository
}

// NewCityService creates a new city service instance
func NewCityService(cityRepo repositories.ICityRepository) CityService {
	return &cityService{
		cityRepo: cityRepo,
	}
}

// InsertCity creates a new city after checking that no city with the same
// name exists. The check and the insert are not atomic; the unique index on
// the name column backstops concurrent inserts.
func (s *cityService) InsertCity(ctx context.Context, d dto.CityInsertDTO) (*models.City, error) {
	city := &models.City{Name: d.Name}

	stored, err := s.cityRepo.GetByName(ctx, city.Name)
	if err != nil {
		return nil, err
	}
	if stored != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrCityAlreadyExists, city.Name)
	}

	return s.cityRepo.Insert(ctx, city)
}

// UpdateCity replaces an existing city record.
func (s *cityService) UpdateCity(ctx context.Context, d dto.CityUpdateDTO) (*models.City, error) {
	city := &models.City{ID: d.ID, Name: d.Name}

	stored, err := s.cityRepo.GetByID(ctx, city.ID)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, fmt.Errorf("%w: id=%d", apperrors.ErrCityNotFound, city.ID)
	}

	return s.cityRepo.Update(ctx, city)
}

// DeleteCity deletes a city by id. Students referencing the city are not
// checked; a deleted city leaves their city reference dangling.
func (s *cityService) DeleteCity(ctx context.Context, id int64) error {
	stored, err := s.cityRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if stored == nil {
		return fmt.Errorf("%w: id=%d", apperrors.ErrCityNotFound, id)
	}

	_, err = s.cityRepo.Delete(ctx, id)
	return err
}

// GetCityByID retrieves a city by id, promoting an absent row to a
// not-found error.
func (s *cityService) GetCityByID(ctx context.Context, id int64) (*models.City, error) {
	city, err := s.cityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if city == nil {
		return nil, fmt.Errorf("%w: id=%d", apperrors.ErrCityNotFound, id)
	}

	return city, nil
}

// GetAllCities retrieves all cities
func (s *cityService) GetAllCities(ctx context.Context) ([]*models.City, error) {
	return s.cityRepo.GetAll(ctx)
}
