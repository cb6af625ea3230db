package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delis/schoolhub/internal/app/models/dto"
	"github.com/delis/schoolhub/internal/pkg/apperrors"
)

func TestInsertCity(t *testing.T) {
	repo := newFakeCityRepo()
	svc := NewCityService(repo)

	city, err := svc.InsertCity(context.Background(), dto.CityInsertDTO{Name: "Athens"})
	require.NoError(t, err)
	require.NotNil(t, city)
	assert.Equal(t, "Athens", city.Name)
	assert.NotZero(t, city.ID)
}

func TestInsertCity_DuplicateName(t *testing.T) {
	repo := newFakeCityRepo()
	svc := NewCityService(repo)

	_, err := svc.InsertCity(context.Background(), dto.CityInsertDTO{Name: "Athens"})
	require.NoError(t, err)

	_, err = svc.InsertCity(context.Background(), dto.CityInsertDTO{Name: "Athens"})
	assert.ErrorIs(t, err, apperrors.ErrCityAlreadyExists)
	assert.Len(t, repo.cities, 1)
}

func TestInsertCity_StoreFailure(t *testing.T) {
	repo := newFakeCityRepo()
	repo.err = errors.New("connection refused")
	svc := NewCityService(repo)

	_, err := svc.InsertCity(context.Background(), dto.CityInsertDTO{Name: "Athens"})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrCityAlreadyExists)
}

func TestUpdateCity(t *testing.T) {
	repo := newFakeCityRepo()
	svc := NewCityService(repo)

	city, err := svc.InsertCity(context.Background(), dto.CityInsertDTO{Name: "Athens"})
	require.NoError(t, err)

	updated, err := svc.UpdateCity(context.Background(), dto.CityUpdateDTO{ID: city.ID, Name: "Thessaloniki"})
	require.NoError(t, err)
	assert.Equal(t, "Thessaloniki", updated.Name)
}

func TestUpdateCity_NotFound(t *testing.T) {
	svc := NewCityService(newFakeCityRepo())

	_, err := svc.UpdateCity(context.Background(), dto.CityUpdateDTO{ID: 99, Name: "Patras"})
	assert.ErrorIs(t, err, apperrors.ErrCityNotFound)
}

func TestDeleteCity(t *testing.T) {
	repo := newFakeCityRepo()
	svc := NewCityService(repo)

	city, err := svc.InsertCity(context.Background(), dto.CityInsertDTO{Name: "Athens"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCity(context.Background(), city.ID))
	assert.Empty(t, repo.cities)

	err = svc.DeleteCity(context.Background(), city.ID)
	assert.ErrorIs(t, err, apperrors.ErrCityNotFound)
}

func TestGetCityByID_PromotesNotFound(t *testing.T) {
	svc := NewCityService(newFakeCityRepo())

	_, err := svc.GetCityByID(context.Background(), 404)
	assert.ErrorIs(t, err, apperrors.ErrCityNotFound)
}

func TestGetAllCities(t *testing.T) {
	repo := newFakeCityRepo()
	svc := NewCityService(repo)

	for _, name := range []string{"Athens", "Patras", "Larissa"} {
		_, err := svc.InsertCity(context.Background(), dto.CityInsertDTO{Name: name})
		require.NoError(t, err)
	}

	cities, err := svc.GetAllCities(context.Background())
	require.NoError(t, err)
	assert.Len(t, cities, 3)
}
