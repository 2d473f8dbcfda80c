package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rainwise/rainwise/internal/pkg/models"
)

func TestGetUserByEmail(t *testing.T) {
	repo, mock, cleanup := setupCodeRepoTest(t)
	defer cleanup()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "email", "fullname", "created_at", "updated_at", "is_active"}).
		AddRow("user-1", "user@example.com", "Ayu Lestari", now, now, true)

	mock.ExpectQuery("SELECT id, email, fullname").
		WithArgs("user@example.com").
		WillReturnRows(rows)

	user, err := repo.GetUserByEmail(context.Background(), "user@example.com")

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "user-1", user.ID)
	assert.Equal(t, "user@example.com", user.Email)
	assert.True(t, user.IsActive)
}

func TestGetUserByEmail_NotFound(t *testing.T) {
	repo, mock, cleanup := setupCodeRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("SELECT id, email, fullname").
		WithArgs("missing@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "fullname", "created_at", "updated_at", "is_active"}))

	user, err := repo.GetUserByEmail(context.Background(), "missing@example.com")

	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestCreateUser(t *testing.T) {
	repo, mock, cleanup := setupCodeRepoTest(t)
	defer cleanup()

	user := &models.User{
		Email:    "user@example.com",
		IsActive: true,
	}

	mock.ExpectExec("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), user.Email, user.FullName, sqlmock.AnyArg(), sqlmock.AnyArg(), true).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreateUser(context.Background(), user)

	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestCreateUser_DBError(t *testing.T) {
	repo, mock, cleanup := setupCodeRepoTest(t)
	defer cleanup()

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(errors.New("duplicate key"))

	err := repo.CreateUser(context.Background(), &models.User{Email: "user@example.com"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create user")
}
