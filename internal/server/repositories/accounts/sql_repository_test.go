package accounts

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/recipeapp/internal/common"
	"github.com/dmitrijs2005/recipeapp/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*SQLRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLRepository(db), mock
}

var columns = []string{"id", "email", "name", "password_hash", "is_active", "is_staff", "is_superuser", "created_at"}

func sampleAccount() *models.Account {
	return &models.Account{
		ID:           "11111111-1111-1111-1111-111111111111",
		Email:        "test@example.com",
		Name:         "Test",
		PasswordHash: "argon2id$hash",
		IsActive:     true,
		CreatedAt:    time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC),
	}
}

func TestCreate_Success(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	a := sampleAccount()

	mock.ExpectExec(`(?s)^INSERT\s+INTO\s+accounts\s*\(id,\s*email,\s*name,\s*password_hash,\s*is_active,\s*is_staff,\s*is_superuser,\s*created_at\)\s*VALUES`).
		WithArgs(a.ID, a.Email, a.Name, a.PasswordHash, true, false, false, a.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	got, err := repo.Create(context.Background(), a)
	require.NoError(t, err)
	assert.Same(t, a, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DuplicateEmail(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`INSERT INTO accounts`).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})

	_, err := repo.Create(context.Background(), sampleAccount())
	require.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestCreate_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`INSERT INTO accounts`).WillReturnError(errors.New("boom"))

	_, err := repo.Create(context.Background(), sampleAccount())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db error: boom")
	assert.NotErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestGetByEmail(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	a := sampleAccount()

	mock.ExpectQuery(`SELECT .* FROM accounts WHERE email = \$1`).
		WithArgs("test@example.com").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(a.ID, a.Email, a.Name, a.PasswordHash, true, true, false, a.CreatedAt))

	got, err := repo.GetByEmail(context.Background(), "test@example.com")
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)
	assert.Equal(t, a.Email, got.Email)
	assert.True(t, got.IsActive)
	assert.True(t, got.IsStaff)
	assert.False(t, got.IsSuperuser)
	assert.Equal(t, a.CreatedAt, got.CreatedAt)
}

func TestGetByEmail_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`FROM accounts WHERE email`).WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByEmail(context.Background(), "ghost@example.com")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestGetByID_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`FROM accounts WHERE id`).WillReturnError(errors.New("boom"))

	_, err := repo.GetByID(context.Background(), "x")
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrorNotFound)
}

func TestUpdatePassword(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`UPDATE accounts SET password_hash = \$1 WHERE id = \$2`).
		WithArgs("new-hash", "id-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.UpdatePassword(context.Background(), "id-1", "new-hash"))

	mock.ExpectExec(`UPDATE accounts`).
		WithArgs("new-hash", "ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))
	require.ErrorIs(t, repo.UpdatePassword(context.Background(), "ghost", "new-hash"), common.ErrorNotFound)

	mock.ExpectExec(`UPDATE accounts`).
		WillReturnResult(sqlmock.NewErrorResult(errors.New("no count")))
	err := repo.UpdatePassword(context.Background(), "id-1", "h")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rows affected error")
}

func TestDelete(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`DELETE FROM accounts WHERE id = \$1`).
		WithArgs("id-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Delete(context.Background(), "id-1"))

	mock.ExpectExec(`DELETE FROM accounts`).WillReturnError(errors.New("boom"))
	require.Error(t, repo.Delete(context.Background(), "id-1"))
}
