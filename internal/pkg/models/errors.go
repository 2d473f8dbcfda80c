package models

import (
	"errors"
	"fmt"
)

// Sentinel errors for the OTP flow. Handlers map these to HTTP statuses; the
// wording is deliberately uniform where distinguishing conditions would leak
// whether an account or code exists.
var (
	ErrInvalidEmail    = errors.New("invalid email address")
	ErrInvalidOTPCode  = errors.New("OTP must be a 6-digit code")
	ErrTooManyAttempts = errors.New("too many failed attempts, please request a new OTP")
)

// RateLimitedError is returned when an email has exhausted its issuance quota
// for the current window.
type RateLimitedError struct {
	RetryAfter int // seconds until the window resets
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("too many OTP requests, retry in %d seconds", e.RetryAfter)
}

// InvalidOTPError is returned for a wrong, consumed, or missing code. The
// message never says which, to prevent enumeration. Remaining is negative when
// no attempt counter applies (e.g. no active code exists).
type InvalidOTPError struct {
	Remaining int
}

func (e *InvalidOTPError) Error() string {
	return "invalid or expired OTP"
}
