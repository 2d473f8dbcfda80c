package models

import (
	"time"
)

// VerificationCode is a persisted OTP issuance record. The plaintext code is
// never stored, only its SHA-256 digest.
type VerificationCode struct {
	ID        string    `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	CodeHash  string    `json:"-" db:"code_hash"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	ExpiresAt time.Time `json:"expires_at" db:"expires_at"`
	Used      bool      `json:"used" db:"used"`
	Attempts  int       `json:"attempts" db:"attempts"`
}

// RateLimitWindow tracks OTP issuance requests for one email within the
// current counting window.
type RateLimitWindow struct {
	Email         string    `json:"email"`
	WindowStartAt time.Time `json:"window_start_at"`
	RequestCount  int       `json:"request_count"`
	LastRequestAt time.Time `json:"last_request_at"`
}

// RateLimitResult is the outcome of a rate-limit check for an issuance request
type RateLimitResult struct {
	Allowed    bool
	Remaining  int
	RetryAfter int // seconds until the window resets, set when throttled
}

// RequestOTPRequest represents a request to send an OTP to an email address
type RequestOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// VerifyOTPRequest represents a request to verify an OTP
type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,len=6"`
}

// OTPRequestResponse is returned after a code has been issued and dispatched
type OTPRequestResponse struct {
	ExpiresIn int `json:"expires_in"` // seconds until the code expires
}

// AuthResponse represents the response after successful verification
type AuthResponse struct {
	Token     string `json:"token"`
	UserID    string `json:"user_id"`
	ExpiresAt int64  `json:"expires_at"`
}

// User represents a RainWise account resolved or created on first verified login
type User struct {
	ID        string    `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	FullName  string    `json:"fullname" db:"fullname"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
	IsActive  bool      `json:"is_active" db:"is_active"`
}

// UserVerifiedEvent is published after a successful OTP verification so
// downstream services can react to a fresh login.
type UserVerifiedEvent struct {
	UserID     string    `json:"user_id"`
	Email      string    `json:"email"`
	VerifiedAt time.Time `json:"verified_at"`
}
