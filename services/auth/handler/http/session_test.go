package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rainwise/rainwise/internal/utils"
)

func TestGetSession(t *testing.T) {
	handler, _, finish := setupAuthHandlerTest(t)
	defer finish()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/session", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "user-1")
	c.Set("email", "user@example.com")

	err := handler.GetSession(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "user-1", data["user_id"])
	assert.Equal(t, "user@example.com", data["email"])
}

func TestGetSession_MissingClaims(t *testing.T) {
	handler, _, finish := setupAuthHandlerTest(t)
	defer finish()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/session", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.GetSession(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
