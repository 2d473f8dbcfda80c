package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rainwise/rainwise/internal/pkg/logger"
	"github.com/rainwise/rainwise/internal/pkg/models"
	"github.com/rainwise/rainwise/internal/utils"
	"github.com/rainwise/rainwise/services/auth"
)

// AuthHandler handles HTTP requests for the OTP login flow
type AuthHandler struct {
	authUC auth.AuthUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUC auth.AuthUC) *AuthHandler {
	return &AuthHandler{
		authUC: authUC,
	}
}

// RequestOTP handles OTP issuance requests
func (h *AuthHandler) RequestOTP(c echo.Context) error {
	var req models.RequestOTPRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for OTP request",
			logger.Err(err),
			logger.String("endpoint", "RequestOTP"),
		)
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.authUC.RequestOTP(c.Request().Context(), req.Email)
	if err != nil {
		if errors.Is(err, models.ErrInvalidEmail) {
			return utils.BadRequestResponse(c, models.ErrInvalidEmail.Error())
		}
		var rateLimited *models.RateLimitedError
		if errors.As(err, &rateLimited) {
			return utils.ThrottledResponse(c, rateLimited.Error(), rateLimited.RetryAfter)
		}
		logger.Error("Failed to issue OTP",
			logger.Err(err),
			logger.String("endpoint", "RequestOTP"),
		)
		return utils.InternalServerErrorResponse(c, "Failed to process request")
	}

	return utils.SuccessResponse(c, http.StatusOK, "OTP sent", resp)
}

// VerifyOTP handles OTP verification requests
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req models.VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for OTP verification",
			logger.Err(err),
			logger.String("endpoint", "VerifyOTP"),
		)
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.authUC.VerifyOTP(c.Request().Context(), req.Email, req.OTP)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidEmail):
			return utils.BadRequestResponse(c, models.ErrInvalidEmail.Error())
		case errors.Is(err, models.ErrInvalidOTPCode):
			return utils.BadRequestResponse(c, models.ErrInvalidOTPCode.Error())
		case errors.Is(err, models.ErrTooManyAttempts):
			return utils.ErrorResponseHandler(c, http.StatusTooManyRequests, models.ErrTooManyAttempts.Error())
		}
		var invalidOTP *models.InvalidOTPError
		if errors.As(err, &invalidOTP) {
			return utils.InvalidCodeResponse(c, invalidOTP.Error(), invalidOTP.Remaining)
		}
		logger.Error("Failed to verify OTP",
			logger.Err(err),
			logger.String("endpoint", "VerifyOTP"),
		)
		return utils.InternalServerErrorResponse(c, "Failed to process request")
	}

	return utils.SuccessResponse(c, http.StatusOK, "OTP verified successfully", resp)
}
