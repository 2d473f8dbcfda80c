package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rainwise/rainwise/internal/pkg/database"
	"github.com/rainwise/rainwise/internal/pkg/models"
)

func setupCodeRepoTest(t *testing.T) (*AuthRepo, sqlmock.Sqlmock, func()) {
	// Create SQL mock
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	// Create sqlx DB with mock
	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	// Redis is not touched by the code store
	repo := &AuthRepo{
		db:          sqlxDB,
		redisClient: &database.RedisClient{},
		cfg:         &models.Config{},
	}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func TestInvalidateOutstanding(t *testing.T) {
	repo, mock, cleanup := setupCodeRepoTest(t)
	defer cleanup()

	mock.ExpectExec("UPDATE verification_codes").
		WithArgs("user@example.com").
		WillReturnResult(sqlmock.NewResult(0, 2))

	err := repo.InvalidateOutstanding(context.Background(), "user@example.com")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvalidateOutstanding_DBError(t *testing.T) {
	repo, mock, cleanup := setupCodeRepoTest(t)
	defer cleanup()

	mock.ExpectExec("UPDATE verification_codes").
		WithArgs("user@example.com").
		WillReturnError(errors.New("connection reset"))

	err := repo.InvalidateOutstanding(context.Background(), "user@example.com")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to invalidate outstanding codes")
}

func TestCreateVerificationCode(t *testing.T) {
	repo, mock, cleanup := setupCodeRepoTest(t)
	defer cleanup()

	now := time.Now()
	code := &models.VerificationCode{
		ID:        "code-1",
		Email:     "user@example.com",
		CodeHash:  "abcdef",
		CreatedAt: now,
		ExpiresAt: now.Add(5 * time.Minute),
		Used:      false,
		Attempts:  0,
	}

	mock.ExpectExec("INSERT INTO verification_codes").
		WithArgs(code.ID, code.Email, code.CodeHash, code.CreatedAt, code.ExpiresAt, false, 0).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreateVerificationCode(context.Background(), code)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetActiveVerificationCode(t *testing.T) {
	repo, mock, cleanup := setupCodeRepoTest(t)
	defer cleanup()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "email", "code_hash", "created_at", "expires_at", "used", "attempts"}).
		AddRow("code-1", "user@example.com", "abcdef", now, now.Add(5*time.Minute), false, 2)

	mock.ExpectQuery("SELECT id, email, code_hash").
		WithArgs("user@example.com").
		WillReturnRows(rows)

	code, err := repo.GetActiveVerificationCode(context.Background(), "user@example.com")

	require.NoError(t, err)
	require.NotNil(t, code)
	assert.Equal(t, "code-1", code.ID)
	assert.Equal(t, "user@example.com", code.Email)
	assert.Equal(t, "abcdef", code.CodeHash)
	assert.Equal(t, 2, code.Attempts)
	assert.False(t, code.Used)
}

func TestGetActiveVerificationCode_NotFound(t *testing.T) {
	repo, mock, cleanup := setupCodeRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("SELECT id, email, code_hash").
		WithArgs("user@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "code_hash", "created_at", "expires_at", "used", "attempts"}))

	code, err := repo.GetActiveVerificationCode(context.Background(), "user@example.com")

	assert.NoError(t, err)
	assert.Nil(t, code)
}

func TestRecordFailedAttempt(t *testing.T) {
	repo, mock, cleanup := setupCodeRepoTest(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"attempts", "used"}).AddRow(3, false)

	mock.ExpectQuery("RETURNING attempts, used").
		WithArgs("code-1", 5).
		WillReturnRows(rows)

	attempts, locked, err := repo.RecordFailedAttempt(context.Background(), "code-1", 5)

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
	assert.False(t, locked)
}

func TestRecordFailedAttempt_Lockout(t *testing.T) {
	repo, mock, cleanup := setupCodeRepoTest(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"attempts", "used"}).AddRow(5, true)

	mock.ExpectQuery("RETURNING attempts, used").
		WithArgs("code-1", 5).
		WillReturnRows(rows)

	attempts, locked, err := repo.RecordFailedAttempt(context.Background(), "code-1", 5)

	require.NoError(t, err)
	assert.Equal(t, 5, attempts)
	assert.True(t, locked)
}

func TestMarkVerificationCodeUsed(t *testing.T) {
	repo, mock, cleanup := setupCodeRepoTest(t)
	defer cleanup()

	mock.ExpectExec("UPDATE verification_codes").
		WithArgs("code-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.MarkVerificationCodeUsed(context.Background(), "code-1")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
