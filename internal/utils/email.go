package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// NormalizeEmail validates an email address and returns its canonical form
// (trimmed, lowercased). Validation happens before any store access so that
// malformed input never produces side effects.
func NormalizeEmail(email string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))

	if !emailPattern.MatchString(normalized) {
		return "", fmt.Errorf("invalid email address format")
	}

	return normalized, nil
}
