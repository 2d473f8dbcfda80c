package usecase

import (
	"github.com/rainwise/rainwise/internal/pkg/models"
	"github.com/rainwise/rainwise/services/auth"
)

// AuthUC implements the auth usecase
type AuthUC struct {
	cfg      *models.Config
	authRepo auth.AuthRepo
	mailGW   auth.MailGW
	authGW   auth.AuthGW
}

// NewAuthUC creates a new auth usecase
func NewAuthUC(
	cfg *models.Config,
	authRepo auth.AuthRepo,
	mailGW auth.MailGW,
	authGW auth.AuthGW,
) auth.AuthUC {
	return &AuthUC{
		cfg:      cfg,
		authRepo: authRepo,
		mailGW:   mailGW,
		authGW:   authGW,
	}
}
