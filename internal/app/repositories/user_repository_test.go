package repositories

import (
	"context"
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

func newUserRepoMock(t *testing.T) (*UserRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewUserRepository(mock), mock
}

func TestUserRepository_Insert(t *testing.T) {
	repo, mock := newUserRepoMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (username, password)")).
		WithArgs("delis", "hashed-pw").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(3)))

	user, err := repo.Insert(context.Background(), &models.User{Username: "delis", Password: "hashed-pw"})
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, int64(3), user.ID)
}

func TestUserRepository_Insert_UniqueViolation(t *testing.T) {
	repo, mock := newUserRepoMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (username, password)")).
		WithArgs("delis", "hashed-pw").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})

	_, err := repo.Insert(context.Background(), &models.User{Username: "delis", Password: "hashed-pw"})
	assert.ErrorIs(t, err, apperrors.ErrUsernameAlreadyExists)
}

// A unique violation during update is a plain store failure; only insert
// maps it to the already-exists sentinel.
func TestUserRepository_Update_UniqueViolationIsStoreError(t *testing.T) {
	repo, mock := newUserRepoMock(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users")).
		WithArgs("delis", "hashed-pw", int64(3)).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})

	_, err := repo.Update(context.Background(), &models.User{ID: 3, Username: "delis", Password: "hashed-pw"})
	require.Error(t, err)
	assert.True(t, apperrors.IsStoreError(err))
	assert.NotErrorIs(t, err, apperrors.ErrUsernameAlreadyExists)
}

func TestUserRepository_GetByUsername_Absent(t *testing.T) {
	repo, mock := newUserRepoMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE username = $1")).
		WithArgs("ghost").
		WillReturnError(pgx.ErrNoRows)

	user, err := repo.GetByUsername(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserRepository_GetByUsernameLike(t *testing.T) {
	repo, mock := newUserRepoMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE username LIKE $1")).
		WithArgs("del%").
		WillReturnRows(pgxmock.NewRows([]string{"id", "username", "password"}).
			AddRow(int64(1), "delis", "hash1").
			AddRow(int64(2), "delta", "hash2"))

	users, err := repo.GetByUsernameLike(context.Background(), "del")
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "delis", users[0].Username)
}

func TestUserRepository_Delete_AbsentRow(t *testing.T) {
	repo, mock := newUserRepoMock(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users WHERE id = $1")).
		WithArgs(int64(404)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	deleted, err := repo.Delete(context.Background(), 404)
	require.NoError(t, err)
	assert.False(t, deleted)
}
