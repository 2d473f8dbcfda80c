package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rainwise/rainwise/internal/pkg/models"
	"github.com/rainwise/rainwise/internal/utils"
	"github.com/rainwise/rainwise/services/auth/mocks"
)

func setupAuthHandlerTest(t *testing.T) (*AuthHandler, *mocks.MockAuthUC, func()) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockAuthUC(ctrl)
	return NewAuthHandler(mockUC), mockUC, ctrl.Finish
}

func performRequest(handler echo.HandlerFunc, body string) (*httptest.ResponseRecorder, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	err := handler(c)
	return rec, err
}

func TestRequestOTP_Success(t *testing.T) {
	handler, mockUC, finish := setupAuthHandlerTest(t)
	defer finish()

	mockUC.EXPECT().
		RequestOTP(gomock.Any(), "user@example.com").
		Return(&models.OTPRequestResponse{ExpiresIn: 300}, nil)

	rec, err := performRequest(handler.RequestOTP, `{"email":"user@example.com"}`)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, float64(300), data["expires_in"])
}

func TestRequestOTP_InvalidEmail(t *testing.T) {
	handler, mockUC, finish := setupAuthHandlerTest(t)
	defer finish()

	mockUC.EXPECT().
		RequestOTP(gomock.Any(), "not-an-email").
		Return(nil, models.ErrInvalidEmail)

	rec, err := performRequest(handler.RequestOTP, `{"email":"not-an-email"}`)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRequestOTP_Throttled(t *testing.T) {
	handler, mockUC, finish := setupAuthHandlerTest(t)
	defer finish()

	mockUC.EXPECT().
		RequestOTP(gomock.Any(), "user@example.com").
		Return(nil, &models.RateLimitedError{RetryAfter: 420})

	rec, err := performRequest(handler.RequestOTP, `{"email":"user@example.com"}`)

	require.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "420", rec.Header().Get("Retry-After"))

	var resp utils.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, 420, resp.RetryAfter)
}

func TestRequestOTP_InternalError(t *testing.T) {
	handler, mockUC, finish := setupAuthHandlerTest(t)
	defer finish()

	mockUC.EXPECT().
		RequestOTP(gomock.Any(), "user@example.com").
		Return(nil, errors.New("smtp timeout: dial tcp 10.0.0.5:587"))

	rec, err := performRequest(handler.RequestOTP, `{"email":"user@example.com"}`)

	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	// Internal details never reach the response body
	assert.NotContains(t, rec.Body.String(), "smtp")
	assert.NotContains(t, rec.Body.String(), "10.0.0.5")
}

func TestVerifyOTP_Success(t *testing.T) {
	handler, mockUC, finish := setupAuthHandlerTest(t)
	defer finish()

	mockUC.EXPECT().
		VerifyOTP(gomock.Any(), "user@example.com", "123456").
		Return(&models.AuthResponse{
			Token:     "jwt-token",
			UserID:    "user-1",
			ExpiresAt: 1893456000,
		}, nil)

	rec, err := performRequest(handler.VerifyOTP, `{"email":"user@example.com","otp":"123456"}`)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "jwt-token", data["token"])
	assert.Equal(t, "user-1", data["user_id"])
}

func TestVerifyOTP_InvalidCode(t *testing.T) {
	handler, mockUC, finish := setupAuthHandlerTest(t)
	defer finish()

	mockUC.EXPECT().
		VerifyOTP(gomock.Any(), "user@example.com", "999999").
		Return(nil, &models.InvalidOTPError{Remaining: 3})

	rec, err := performRequest(handler.VerifyOTP, `{"email":"user@example.com","otp":"999999"}`)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp utils.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "invalid or expired OTP", resp.Error)
	require.NotNil(t, resp.RemainingAttempts)
	assert.Equal(t, 3, *resp.RemainingAttempts)
}

func TestVerifyOTP_NoActiveCode(t *testing.T) {
	handler, mockUC, finish := setupAuthHandlerTest(t)
	defer finish()

	mockUC.EXPECT().
		VerifyOTP(gomock.Any(), "user@example.com", "123456").
		Return(nil, &models.InvalidOTPError{Remaining: -1})

	rec, err := performRequest(handler.VerifyOTP, `{"email":"user@example.com","otp":"123456"}`)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Same message as a wrong code, and no attempt counter
	var resp utils.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "invalid or expired OTP", resp.Error)
	assert.Nil(t, resp.RemainingAttempts)
}

func TestVerifyOTP_Lockout(t *testing.T) {
	handler, mockUC, finish := setupAuthHandlerTest(t)
	defer finish()

	mockUC.EXPECT().
		VerifyOTP(gomock.Any(), "user@example.com", "123456").
		Return(nil, models.ErrTooManyAttempts)

	rec, err := performRequest(handler.VerifyOTP, `{"email":"user@example.com","otp":"123456"}`)

	require.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "too many failed attempts")
}

func TestVerifyOTP_MalformedPayload(t *testing.T) {
	handler, _, finish := setupAuthHandlerTest(t)
	defer finish()

	rec, err := performRequest(handler.VerifyOTP, `{"email": 42}`)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
