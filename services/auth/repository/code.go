package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rainwise/rainwise/internal/pkg/models"
)

// InvalidateOutstanding marks every unused verification code for the email as
// used, so a newly issued code is the only live one.
func (r *AuthRepo) InvalidateOutstanding(ctx context.Context, email string) error {
	query := `
		UPDATE verification_codes
		SET used = true
		WHERE email = $1 AND used = false
	`

	if _, err := r.db.ExecContext(ctx, query, email); err != nil {
		return fmt.Errorf("failed to invalidate outstanding codes: %w", err)
	}

	return nil
}

// CreateVerificationCode inserts a new verification code record
func (r *AuthRepo) CreateVerificationCode(ctx context.Context, code *models.VerificationCode) error {
	query := `
		INSERT INTO verification_codes (id, email, code_hash, created_at, expires_at, used, attempts)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		code.ID,
		code.Email,
		code.CodeHash,
		code.CreatedAt,
		code.ExpiresAt,
		code.Used,
		code.Attempts,
	)

	if err != nil {
		return fmt.Errorf("failed to create verification code: %w", err)
	}

	return nil
}

// GetActiveVerificationCode retrieves the newest unused code for the email.
// The single-active-code invariant should leave at most one row, but the
// query tolerates duplicates left behind by races and picks the newest.
func (r *AuthRepo) GetActiveVerificationCode(ctx context.Context, email string) (*models.VerificationCode, error) {
	query := `
		SELECT id, email, code_hash, created_at, expires_at, used, attempts
		FROM verification_codes
		WHERE email = $1 AND used = false
		ORDER BY created_at DESC
		LIMIT 1
	`

	var code models.VerificationCode
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&code.ID,
		&code.Email,
		&code.CodeHash,
		&code.CreatedAt,
		&code.ExpiresAt,
		&code.Used,
		&code.Attempts,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get verification code: %w", err)
	}

	return &code, nil
}

// RecordFailedAttempt increments the attempt counter in a single conditional
// update so concurrent attempts cannot read the same counter value. The row
// is marked used once the counter reaches maxAttempts.
func (r *AuthRepo) RecordFailedAttempt(ctx context.Context, id string, maxAttempts int) (int, bool, error) {
	query := `
		UPDATE verification_codes
		SET attempts = attempts + 1,
		    used = (attempts + 1 >= $2)
		WHERE id = $1
		RETURNING attempts, used
	`

	var attempts int
	var locked bool
	err := r.db.QueryRowContext(ctx, query, id, maxAttempts).Scan(&attempts, &locked)
	if err != nil {
		return 0, false, fmt.Errorf("failed to record failed attempt: %w", err)
	}

	return attempts, locked, nil
}

// MarkVerificationCodeUsed marks a code as consumed. The used flag only ever
// moves false to true.
func (r *AuthRepo) MarkVerificationCodeUsed(ctx context.Context, id string) error {
	query := `
		UPDATE verification_codes
		SET used = true
		WHERE id = $1
	`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to mark verification code used: %w", err)
	}

	return nil
}
