package utils

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/big"
	"regexp"
)

var otpPattern = regexp.MustCompile(`^\d{6}$`)

// GenerateOTP creates a cryptographically secure 6-digit numeric code in
// [100000, 999999], so every code has exactly six significant digits.
func GenerateOTP() (string, error) {
	span := big.NewInt(900000)
	n, err := rand.Int(rand.Reader, span)
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP: %w", err)
	}
	return fmt.Sprintf("%d", n.Int64()+100000), nil
}

// HashOTP returns the SHA-256 hex digest of a code. Only digests are
// persisted; the plaintext code exists in the delivery email alone.
func HashOTP(code string) string {
	h := sha256.Sum256([]byte(code))
	return hex.EncodeToString(h[:])
}

// OTPHashEquals compares two digests in constant time
func OTPHashEquals(a, b string) bool {
	return hmac.Equal([]byte(a), []byte(b))
}

// IsValidOTPCode reports whether a submitted code is exactly 6 digits
func IsValidOTPCode(code string) bool {
	return otpPattern.MatchString(code)
}
