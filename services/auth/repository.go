package auth

import (
	"context"

	"github.com/rainwise/rainwise/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/rainwise/rainwise/services/auth AuthRepo

// AuthRepo represents the auth repository interface: verification code rows
// in Postgres, rate-limit windows in Redis, user accounts in Postgres.
type AuthRepo interface {
	// Verification code store. At most one unused code exists per email;
	// InvalidateOutstanding enforces that before every new issuance.
	InvalidateOutstanding(ctx context.Context, email string) error
	CreateVerificationCode(ctx context.Context, code *models.VerificationCode) error
	GetActiveVerificationCode(ctx context.Context, email string) (*models.VerificationCode, error)
	// RecordFailedAttempt atomically increments the attempt counter and marks
	// the row used once maxAttempts is reached. Returns the new counter value
	// and whether the row is now locked.
	RecordFailedAttempt(ctx context.Context, id string, maxAttempts int) (int, bool, error)
	MarkVerificationCodeUsed(ctx context.Context, id string) error

	// Issuance rate limiting per email.
	CheckAndRecordRequest(ctx context.Context, email string) (*models.RateLimitResult, error)
	ResetRateLimit(ctx context.Context, email string) error

	// Account resolution.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
}
