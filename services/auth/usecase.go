package auth

import (
	"context"

	"github.com/rainwise/rainwise/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/rainwise/rainwise/services/auth AuthUC

// AuthUC represents the auth usecase interface
type AuthUC interface {
	// RequestOTP issues a fresh verification code for the email and dispatches
	// it by mail. The response never reveals whether the email belongs to a
	// known account.
	RequestOTP(ctx context.Context, email string) (*models.OTPRequestResponse, error)

	// VerifyOTP checks a submitted code, consumes it on success, resolves or
	// creates the account and mints a session token.
	VerifyOTP(ctx context.Context, email, code string) (*models.AuthResponse, error)
}
