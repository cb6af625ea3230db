package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delis/schoolhub/internal/app/models"
	"github.com/delis/schoolhub/internal/pkg/apperrors"
)

func newCityRepoMock(t *testing.T) (*CityRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewCityRepository(mock), mock
}

func TestCityRepository_Insert(t *testing.T) {
	repo, mock := newCityRepoMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO cities (name)")).
		WithArgs("Athens").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))

	city, err := repo.Insert(context.Background(), &models.City{Name: "Athens"})
	require.NoError(t, err)
	require.NotNil(t, city)
	assert.Equal(t, int64(1), city.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCityRepository_Insert_NoRowReturned(t *testing.T) {
	repo, mock := newCityRepoMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO cities (name)")).
		WithArgs("Athens").
		WillReturnError(pgx.ErrNoRows)

	city, err := repo.Insert(context.Background(), &models.City{Name: "Athens"})
	require.NoError(t, err)
	assert.Nil(t, city)
}

func TestCityRepository_Insert_UniqueViolation(t *testing.T) {
	repo, mock := newCityRepoMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO cities (name)")).
		WithArgs("Athens").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "cities_name_key"})

	_, err := repo.Insert(context.Background(), &models.City{Name: "Athens"})
	assert.ErrorIs(t, err, apperrors.ErrCityAlreadyExists)
}

func TestCityRepository_Insert_OtherFailure(t *testing.T) {
	repo, mock := newCityRepoMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO cities (name)")).
		WithArgs("Athens").
		WillReturnError(errors.New("connection refused"))

	_, err := repo.Insert(context.Background(), &models.City{Name: "Athens"})
	assert.True(t, apperrors.IsStoreError(err))
}

func TestCityRepository_Update_ZeroRows(t *testing.T) {
	repo, mock := newCityRepoMock(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE cities")).
		WithArgs("Patras", int64(9)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	city, err := repo.Update(context.Background(), &models.City{ID: 9, Name: "Patras"})
	require.NoError(t, err)
	assert.Nil(t, city)
}

func TestCityRepository_Delete(t *testing.T) {
	repo, mock := newCityRepoMock(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM cities WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	deleted, err := repo.Delete(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestCityRepository_Delete_AbsentRow(t *testing.T) {
	repo, mock := newCityRepoMock(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM cities WHERE id = $1")).
		WithArgs(int64(404)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	deleted, err := repo.Delete(context.Background(), 404)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestCityRepository_GetByName_Absent(t *testing.T) {
	repo, mock := newCityRepoMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE name = $1")).
		WithArgs("Atlantis").
		WillReturnError(pgx.ErrNoRows)

	city, err := repo.GetByName(context.Background(), "Atlantis")
	require.NoError(t, err)
	assert.Nil(t, city)
}

func TestCityRepository_GetAll(t *testing.T) {
	repo, mock := newCityRepoMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name")).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name"}).
			AddRow(int64(1), "Athens").
			AddRow(int64(2), "Patras"))

	cities, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, cities, 2)
	assert.Equal(t, "Athens", cities[0].Name)
	assert.Equal(t, "Patras", cities[1].Name)
}
