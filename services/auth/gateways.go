package auth

import (
	"context"
	"time"

	"github.com/rainwise/rainwise/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateways.go -package=mocks github.com/rainwise/rainwise/services/auth MailGW,AuthGW

// MailGW delivers OTP codes to users by email
type MailGW interface {
	SendOTPEmail(ctx context.Context, to, code string, ttl time.Duration) error
}

// AuthGW publishes auth events for the rest of the RainWise platform
type AuthGW interface {
	PublishUserVerified(ctx context.Context, event *models.UserVerifiedEvent) error
}
