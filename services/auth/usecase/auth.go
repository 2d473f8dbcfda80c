package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rainwise/rainwise/internal/pkg/jwt"
	"github.com/rainwise/rainwise/internal/pkg/logger"
	"github.com/rainwise/rainwise/internal/pkg/models"
	"github.com/rainwise/rainwise/internal/utils"
)

// RequestOTP issues a fresh verification code for an email and dispatches it.
// Any previously outstanding code for the email is invalidated first, so at
// most one code can ever verify.
func (uc *AuthUC) RequestOTP(ctx context.Context, email string) (*models.OTPRequestResponse, error) {
	normalized, err := utils.NormalizeEmail(email)
	if err != nil {
		return nil, models.ErrInvalidEmail
	}

	limit, err := uc.authRepo.CheckAndRecordRequest(ctx, normalized)
	if err != nil {
		// No rate-limit decision means no code is issued
		return nil, fmt.Errorf("failed to check rate limit: %w", err)
	}
	if !limit.Allowed {
		logger.Warn("OTP request throttled",
			logger.String("email", normalized),
			logger.Int("retry_after", limit.RetryAfter))
		return nil, &models.RateLimitedError{RetryAfter: limit.RetryAfter}
	}

	if err := uc.authRepo.InvalidateOutstanding(ctx, normalized); err != nil {
		return nil, fmt.Errorf("failed to invalidate outstanding codes: %w", err)
	}

	code, err := utils.GenerateOTP()
	if err != nil {
		return nil, fmt.Errorf("failed to generate OTP: %w", err)
	}

	ttl := time.Duration(uc.cfg.OTP.CodeTTL) * time.Second
	now := time.Now()
	record := &models.VerificationCode{
		ID:        uuid.New().String(),
		Email:     normalized,
		CodeHash:  utils.HashOTP(code),
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}

	if err := uc.authRepo.CreateVerificationCode(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to store verification code: %w", err)
	}

	if err := uc.mailGW.SendOTPEmail(ctx, normalized, code, ttl); err != nil {
		// An undelivered code must not stay verifiable
		if invErr := uc.authRepo.MarkVerificationCodeUsed(ctx, record.ID); invErr != nil {
			logger.Error("failed to invalidate undelivered code",
				logger.String("code_id", record.ID),
				logger.Err(invErr))
		}
		return nil, fmt.Errorf("failed to send OTP email: %w", err)
	}

	logger.Info("OTP issued",
		logger.String("email", normalized),
		logger.Int("remaining_requests", limit.Remaining))

	return &models.OTPRequestResponse{ExpiresIn: uc.cfg.OTP.CodeTTL}, nil
}

// VerifyOTP checks a submitted code against the active verification record.
// On success the code is consumed before any downstream work, so a token is
// minted at most once per code.
func (uc *AuthUC) VerifyOTP(ctx context.Context, email, code string) (*models.AuthResponse, error) {
	normalized, err := utils.NormalizeEmail(email)
	if err != nil {
		return nil, models.ErrInvalidEmail
	}
	if !utils.IsValidOTPCode(code) {
		return nil, models.ErrInvalidOTPCode
	}

	record, err := uc.authRepo.GetActiveVerificationCode(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to load verification code: %w", err)
	}
	if record == nil {
		// No active code: same response as a wrong code
		return nil, &models.InvalidOTPError{Remaining: -1}
	}

	now := time.Now()
	if now.After(record.ExpiresAt) {
		// Expired reads the same as a wrong code; the caller only learns to
		// request a new one.
		if err := uc.authRepo.MarkVerificationCodeUsed(ctx, record.ID); err != nil {
			return nil, fmt.Errorf("failed to expire verification code: %w", err)
		}
		return nil, &models.InvalidOTPError{Remaining: -1}
	}

	if record.Attempts >= uc.cfg.OTP.MaxAttempts {
		if err := uc.authRepo.MarkVerificationCodeUsed(ctx, record.ID); err != nil {
			return nil, fmt.Errorf("failed to lock verification code: %w", err)
		}
		return nil, models.ErrTooManyAttempts
	}

	if !utils.OTPHashEquals(record.CodeHash, utils.HashOTP(code)) {
		attempts, locked, err := uc.authRepo.RecordFailedAttempt(ctx, record.ID, uc.cfg.OTP.MaxAttempts)
		if err != nil {
			return nil, fmt.Errorf("failed to record attempt: %w", err)
		}
		if locked {
			logger.Warn("verification code locked out",
				logger.String("email", normalized),
				logger.Int("attempts", attempts))
			return nil, models.ErrTooManyAttempts
		}
		return nil, &models.InvalidOTPError{Remaining: uc.cfg.OTP.MaxAttempts - attempts}
	}

	// Consume before minting: a crash past this point costs the user one
	// request, never yields a replayable code.
	if err := uc.authRepo.MarkVerificationCodeUsed(ctx, record.ID); err != nil {
		return nil, fmt.Errorf("failed to consume verification code: %w", err)
	}

	user, err := uc.authRepo.GetUserByEmail(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve user: %w", err)
	}
	if user == nil {
		user = &models.User{
			Email:    normalized,
			IsActive: true,
		}
		if err := uc.authRepo.CreateUser(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		logger.Info("created user on first verified login",
			logger.String("user_id", user.ID),
			logger.String("email", normalized))
	}

	token, expiresAt, err := jwt.GenerateToken(user.ID, user.Email, uc.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	// Post-verification bookkeeping is best effort; the login already succeeded.
	if err := uc.authRepo.ResetRateLimit(ctx, normalized); err != nil {
		logger.Warn("failed to reset rate-limit window",
			logger.String("email", normalized),
			logger.Err(err))
	}
	if err := uc.authGW.PublishUserVerified(ctx, &models.UserVerifiedEvent{
		UserID:     user.ID,
		Email:      user.Email,
		VerifiedAt: now,
	}); err != nil {
		logger.Warn("failed to publish user verified event",
			logger.String("user_id", user.ID),
			logger.Err(err))
	}

	logger.Info("OTP verified",
		logger.String("user_id", user.ID),
		logger.String("email", normalized))

	return &models.AuthResponse{
		Token:     token,
		UserID:    user.ID,
		ExpiresAt: expiresAt,
	}, nil
}
