package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/HoangPhanDev98/jobhunt-backend/db"
	"github.com/HoangPhanDev98/jobhunt-backend/forms"
	"github.com/HoangPhanDev98/jobhunt-backend/kv"
	"github.com/HoangPhanDev98/jobhunt-backend/service"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	binding.Validator = new(forms.DefaultValidator)
}

func newTestRouter(t *testing.T) (*gin.Engine, *db.MemoryUserStore) {
	t.Helper()

	store := db.NewMemoryUserStore()
	authService := service.NewAuthService(store, service.AuthConfig{
		AccessSecret:  []byte("test-access-secret"),
		AccessExpire:  15 * time.Minute,
		RefreshSecret: []byte("test-refresh-secret"),
		RefreshExpire: 72 * time.Hour,
	})
	userService := service.NewUserService(store)

	auth := NewAuthController(authService, userService)

	r := gin.New()
	api := r.Group("/api/v1")
	api.POST("/auth/register", auth.Register)
	api.POST("/auth/login", RateLimit(kv.NewMemory(), 5, time.Minute), auth.Login)
	api.POST("/auth/refresh", auth.Refresh)

	authed := api.Group("", auth.Authenticate)
	authed.POST("/auth/logout", auth.Logout)
	authed.GET("/auth/account", auth.Account)

	return r, store
}

func doRequest(r *gin.Engine, method, path, body string, mutate ...func(*http.Request)) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, m := range mutate {
		m(req)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func refreshCookieOf(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == refreshCookie {
			return c
		}
	}
	t.Fatalf("no %s cookie in response", refreshCookie)
	return nil
}

func withCookie(c *http.Cookie) func(*http.Request) {
	return func(r *http.Request) { r.AddCookie(c) }
}

func withBearer(token string) func(*http.Request) {
	return func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) }
}

const registerBody = `{"name":"Alice","email":"a@x.com","password":"p1secret","age":28,"gender":"female","address":"Hanoi"}`
const loginBody = `{"email":"a@x.com","password":"p1secret"}`

type authResponse struct {
	AccessToken string `json:"access_token"`
	User        struct {
		ID    string `json:"_id"`
		Name  string `json:"name"`
		Email string `json:"email"`
		Role  string `json:"role"`
	} `json:"user"`
}

func TestAuth_RegisterAndLogin(t *testing.T) {
	t.Parallel()

	r, _ := newTestRouter(t)

	w := doRequest(r, http.MethodPost, "/api/v1/auth/register", registerBody)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Duplicate registration is rejected.
	w = doRequest(r, http.MethodPost, "/api/v1/auth/register", registerBody)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(r, http.MethodPost, "/api/v1/auth/login", loginBody)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp authResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.User.ID)
	assert.Equal(t, "Alice", resp.User.Name)
	assert.Equal(t, "a@x.com", resp.User.Email)
	assert.Equal(t, "user", resp.User.Role)

	cookie := refreshCookieOf(t, w)
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, int((72 * time.Hour).Seconds()), cookie.MaxAge)
}

func TestAuth_Login_UniformFailure(t *testing.T) {
	t.Parallel()

	r, _ := newTestRouter(t)
	doRequest(r, http.MethodPost, "/api/v1/auth/register", registerBody)

	// Wrong password and unknown email are indistinguishable.
	wrongPass := doRequest(r, http.MethodPost, "/api/v1/auth/login", `{"email":"a@x.com","password":"wrongpass"}`)
	unknown := doRequest(r, http.MethodPost, "/api/v1/auth/login", `{"email":"ghost@x.com","password":"p1secret"}`)

	require.Equal(t, http.StatusUnauthorized, wrongPass.Code)
	require.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.JSONEq(t, wrongPass.Body.String(), unknown.Body.String())
}

func TestAuth_RefreshRotation(t *testing.T) {
	t.Parallel()

	r, _ := newTestRouter(t)
	doRequest(r, http.MethodPost, "/api/v1/auth/register", registerBody)

	login := doRequest(r, http.MethodPost, "/api/v1/auth/login", loginBody)
	require.Equal(t, http.StatusOK, login.Code)
	first := refreshCookieOf(t, login)

	refresh := doRequest(r, http.MethodPost, "/api/v1/auth/refresh", "", withCookie(first))
	require.Equal(t, http.StatusOK, refresh.Code, refresh.Body.String())

	var resp authResponse
	require.NoError(t, json.Unmarshal(refresh.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "a@x.com", resp.User.Email)

	second := refreshCookieOf(t, refresh)
	assert.NotEqual(t, first.Value, second.Value)

	// Replaying the superseded cookie fails; the fresh one still works.
	replay := doRequest(r, http.MethodPost, "/api/v1/auth/refresh", "", withCookie(first))
	require.Equal(t, http.StatusUnauthorized, replay.Code)

	again := doRequest(r, http.MethodPost, "/api/v1/auth/refresh", "", withCookie(second))
	require.Equal(t, http.StatusOK, again.Code)
}

func TestAuth_Refresh_NoCookie(t *testing.T) {
	t.Parallel()

	r, _ := newTestRouter(t)

	w := doRequest(r, http.MethodPost, "/api/v1/auth/refresh", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"Invalid refresh token"}`, w.Body.String())
}

func TestAuth_LogoutClearsSession(t *testing.T) {
	t.Parallel()

	r, _ := newTestRouter(t)
	doRequest(r, http.MethodPost, "/api/v1/auth/register", registerBody)

	login := doRequest(r, http.MethodPost, "/api/v1/auth/login", loginBody)
	require.Equal(t, http.StatusOK, login.Code)
	cookie := refreshCookieOf(t, login)

	var resp authResponse
	require.NoError(t, json.Unmarshal(login.Body.Bytes(), &resp))

	logout := doRequest(r, http.MethodPost, "/api/v1/auth/logout", "", withBearer(resp.AccessToken))
	require.Equal(t, http.StatusOK, logout.Code)

	cleared := refreshCookieOf(t, logout)
	assert.Empty(t, cleared.Value)
	assert.Negative(t, cleared.MaxAge)

	// Any prior refresh token is dead after logout.
	w := doRequest(r, http.MethodPost, "/api/v1/auth/refresh", "", withCookie(cookie))
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// Logout is idempotent.
	logout = doRequest(r, http.MethodPost, "/api/v1/auth/logout", "", withBearer(resp.AccessToken))
	require.Equal(t, http.StatusOK, logout.Code)
}

func TestAuth_Account(t *testing.T) {
	t.Parallel()

	r, _ := newTestRouter(t)
	doRequest(r, http.MethodPost, "/api/v1/auth/register", registerBody)

	login := doRequest(r, http.MethodPost, "/api/v1/auth/login", loginBody)
	var resp authResponse
	require.NoError(t, json.Unmarshal(login.Body.Bytes(), &resp))

	w := doRequest(r, http.MethodGet, "/api/v1/auth/account", "", withBearer(resp.AccessToken))
	require.Equal(t, http.StatusOK, w.Code)

	var account struct {
		User struct {
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &account))
	assert.Equal(t, "a@x.com", account.User.Email)
	assert.Equal(t, "user", account.User.Role)

	// No token, no account.
	w = doRequest(r, http.MethodGet, "/api/v1/auth/account", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// A refresh token is not accepted as an access token.
	w = doRequest(r, http.MethodGet, "/api/v1/auth/account", "", withBearer(refreshCookieOf(t, login).Value))
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// A valid token without the Bearer scheme is not accepted either.
	w = doRequest(r, http.MethodGet, "/api/v1/auth/account", "", func(req *http.Request) {
		req.Header.Set("Authorization", resp.AccessToken)
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_LoginRateLimit(t *testing.T) {
	t.Parallel()

	r, _ := newTestRouter(t)
	doRequest(r, http.MethodPost, "/api/v1/auth/register", registerBody)

	bad := `{"email":"a@x.com","password":"wrongpass"}`
	for i := 0; i < 5; i++ {
		w := doRequest(r, http.MethodPost, "/api/v1/auth/login", bad)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	}

	w := doRequest(r, http.MethodPost, "/api/v1/auth/login", bad)
	require.Equal(t, http.StatusTooManyRequests, w.Code)
}
