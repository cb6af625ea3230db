package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delis/schoolhub/internal/app/models/dto"
	"github.com/delis/schoolhub/internal/pkg/apperrors"
)

func TestInsertSpeciality_NoUniquenessRule(t *testing.T) {
	repo := newFakeSpecialityRepo()
	svc := NewSpecialityService(repo)

	_, err := svc.InsertSpeciality(context.Background(), dto.SpecialityInsertDTO{Name: "Mathematics"})
	require.NoError(t, err)

	// Same name again is accepted.
	_, err = svc.InsertSpeciality(context.Background(), dto.SpecialityInsertDTO{Name: "Mathematics"})
	require.NoError(t, err)
	assert.Len(t, repo.specialities, 2)
}

func TestUpdateSpeciality_NotFound(t *testing.T) {
	svc := NewSpecialityService(newFakeSpecialityRepo())

	_, err := svc.UpdateSpeciality(context.Background(), dto.SpecialityUpdateDTO{ID: 5, Name: "Physics"})
	assert.ErrorIs(t, err, apperrors.ErrSpecialityNotFound)
}

func TestDeleteSpeciality(t *testing.T) {
	repo := newFakeSpecialityRepo()
	svc := NewSpecialityService(repo)

	sp, err := svc.InsertSpeciality(context.Background(), dto.SpecialityInsertDTO{Name: "Physics"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteSpeciality(context.Background(), sp.ID))
	assert.Empty(t, repo.specialities)

	err = svc.DeleteSpeciality(context.Background(), sp.ID)
	assert.ErrorIs(t, err, apperrors.ErrSpecialityNotFound)
}

// Unlike cities and users, an absent speciality on a single lookup is not
// promoted to an error.
func TestGetSpecialityByID_AbsentReturnsNil(t *testing.T) {
	svc := NewSpecialityService(newFakeSpecialityRepo())

	sp, err := svc.GetSpecialityByID(context.Background(), 404)
	require.NoError(t, err)
	assert.Nil(t, sp)
}
