package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rainwise/rainwise/internal/utils"
)

// SessionInfo describes the authenticated session behind a valid token
type SessionInfo struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// GetSession returns the identity carried by the presented token. The JWT
// middleware has already validated it and placed the claims on the context.
func (h *AuthHandler) GetSession(c echo.Context) error {
	userID, _ := c.Get("user_id").(string)
	email, _ := c.Get("email").(string)

	if userID == "" {
		return utils.UnauthorizedResponse(c, "Invalid token claims")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Session active", SessionInfo{
		UserID: userID,
		Email:  email,
	})
}
