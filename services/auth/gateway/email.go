package gateway

import (
	"context"
	"fmt"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/rainwise/rainwise/internal/pkg/models"
)

// SMTPGateway delivers OTP emails through the configured SMTP provider
type SMTPGateway struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPGateway creates a new SMTP gateway from the SMTP configuration
func NewSMTPGateway(cfg *models.SMTPConfig) *SMTPGateway {
	return &SMTPGateway{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

// SendOTPEmail sends the verification code to the user. The code appears only
// in this message; nothing downstream sees it in plaintext.
func (g *SMTPGateway) SendOTPEmail(ctx context.Context, to, code string, ttl time.Duration) error {
	m := gomail.NewMessage()
	m.SetHeader("From", g.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Your RainWise verification code")
	m.SetBody("text/html", otpEmailBody(code, ttl))

	if err := g.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func otpEmailBody(code string, ttl time.Duration) string {
	minutes := int(ttl.Minutes())
	return fmt.Sprintf(`
		<div style="font-family: sans-serif; max-width: 480px;">
			<h2>RainWise sign-in</h2>
			<p>Use this code to sign in to your RainWise account:</p>
			<p style="font-size: 32px; font-weight: bold; letter-spacing: 6px;">%s</p>
			<p>The code expires in %d minutes. If you did not request it, you can ignore this email.</p>
		</div>`, code, minutes)
}
