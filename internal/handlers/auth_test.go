package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/yukikurage/home-inventory-api/internal/constants"
	"github.com/yukikurage/home-inventory-api/internal/dto"
	"github.com/yukikurage/home-inventory-api/internal/services"
)

func postJSON(t *testing.T, r *gin.Engine, url string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sessionRouter(env testEnv) *gin.Engine {
	r := gin.New()
	store := cookie.NewStore([]byte("secret"))
	r.Use(sessions.Sessions(constants.SessionCookieName, store))
	r.POST("/api/auth/signup", env.handlers.Auth.Signup)
	r.POST("/api/auth/login", env.handlers.Auth.Login)
	return r
}

func TestAuthHandler_Signup(t *testing.T) {
	env := setupTestEnv(t, nil)
	r := sessionRouter(env)

	w := postJSON(t, r, "/api/auth/signup", map[string]string{
		"email":    "newuser@example.com",
		"name":     "New User",
		"password": "supersecret",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var response dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "newuser@example.com", response.Email)
	require.Equal(t, "New User", response.Name)
	require.NotEmpty(t, response.ID)
}

func TestAuthHandler_SignupErrors(t *testing.T) {
	env := setupTestEnv(t, nil)
	r := sessionRouter(env)

	w := postJSON(t, r, "/api/auth/signup", map[string]string{"email": "a@example.com", "password": "short"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(t, r, "/api/auth/signup", map[string]string{"email": "not-an-email", "password": "supersecret"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(t, r, "/api/auth/signup", map[string]string{"email": "a@example.com", "password": "supersecret"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, r, "/api/auth/signup", map[string]string{"email": "a@example.com", "password": "supersecret"})
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestAuthHandler_Login(t *testing.T) {
	env := setupTestEnv(t, nil)

	_, err := env.auth.Signup(context.Background(), services.SignupInput{
		Email:    "existing@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	r := sessionRouter(env)

	w := postJSON(t, r, "/api/auth/login", map[string]string{
		"email":    "existing@example.com",
		"password": "supersecret",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var response dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "existing@example.com", response.Email)

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies, "expected session cookie to be set")

	w = postJSON(t, r, "/api/auth/login", map[string]string{
		"email":    "existing@example.com",
		"password": "wrongpassword",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_GetCurrentUser(t *testing.T) {
	env := setupTestEnv(t, nil)

	user, err := env.auth.Signup(context.Background(), services.SignupInput{
		Email:    "current-user@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	c, w := createAuthContext(http.MethodGet, "/api/auth/me", nil, user.ID)
	env.handlers.Auth.GetCurrentUser(c)

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, user.Email, response.Email)

	c, w = createAuthContext(http.MethodGet, "/api/auth/me", nil, "")
	env.handlers.Auth.GetCurrentUser(c)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
