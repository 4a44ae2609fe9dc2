package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"selfcare_portal/internal/config"
	"selfcare_portal/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGuardedRouter(jwtUtil *utils.JWTUtil) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RouteGuard(config.DefaultRoutes(), jwtUtil))
	ok := func(c *gin.Context) {
		id, _ := AuthAccountID(c)
		c.String(http.StatusOK, "ok:"+id)
	}
	for _, p := range []string{"/api/user", "/api/auth/login", "/login", "/loginx", "/reset-password", "/verify-code", "/dashboard", "/"} {
		r.GET(p, ok)
	}
	return r
}

func doGet(r http.Handler, path string, mutate func(*http.Request)) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if mutate != nil {
		mutate(req)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func withCookie(token string) func(*http.Request) {
	return func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: token})
	}
}

func TestRouteGuard_API(t *testing.T) {
	jwtUtil := utils.NewJWTUtil("secret", 15*time.Minute)
	r := newGuardedRouter(jwtUtil)
	token, _, err := jwtUtil.GenerateToken("1")
	require.NoError(t, err)

	w := doGet(r, "/api/user", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"unauthorized"}`, w.Body.String())

	w = doGet(r, "/api/user", withCookie("garbage"))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doGet(r, "/api/user", withCookie(token))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok:1", w.Body.String())

	w = doGet(r, "/api/user", func(req *http.Request) { req.Header.Set("Authorization", "Bearer "+token) })
	assert.Equal(t, http.StatusOK, w.Code)

	// public API passes both with and without a session
	assert.Equal(t, http.StatusOK, doGet(r, "/api/auth/login", nil).Code)
	assert.Equal(t, http.StatusOK, doGet(r, "/api/auth/login", withCookie(token)).Code)
}

func TestRouteGuard_Pages(t *testing.T) {
	jwtUtil := utils.NewJWTUtil("secret", 15*time.Minute)
	r := newGuardedRouter(jwtUtil)
	token, _, _ := jwtUtil.GenerateToken("1")

	tests := []struct {
		name     string
		path     string
		token    string
		status   int
		location string
	}{
		{"protected anonymous", "/dashboard", "", http.StatusFound, "/login"},
		{"protected invalid token", "/dashboard", "garbage", http.StatusFound, "/login"},
		{"protected signed in", "/dashboard", token, http.StatusOK, ""},
		{"root anonymous", "/", "", http.StatusFound, "/login"},
		{"public anonymous", "/login", "", http.StatusOK, ""},
		{"public invalid token", "/login", "garbage", http.StatusOK, ""},
		{"public signed in", "/login", token, http.StatusFound, "/dashboard"},
		{"reset signed in", "/reset-password", token, http.StatusFound, "/dashboard"},
		{"verify anonymous", "/verify-code", "", http.StatusOK, ""},
		{"prefix is segment based", "/loginx", "", http.StatusFound, "/login"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var mutate func(*http.Request)
			if tt.token != "" {
				mutate = withCookie(tt.token)
			}
			w := doGet(r, tt.path, mutate)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.location, w.Header().Get("Location"))
		})
	}
}

func TestRouteGuard_ExpiredToken(t *testing.T) {
	issued := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	now := issued
	jwtUtil := utils.NewJWTUtil("secret", 15*time.Minute).WithClock(func() time.Time { return now })
	r := newGuardedRouter(jwtUtil)
	token, _, _ := jwtUtil.GenerateToken("1")

	now = issued.Add(14*time.Minute + 59*time.Second)
	assert.Equal(t, http.StatusOK, doGet(r, "/api/user", withCookie(token)).Code)

	now = issued.Add(15*time.Minute + time.Second)
	assert.Equal(t, http.StatusUnauthorized, doGet(r, "/api/user", withCookie(token)).Code)
}

func TestHasPathPrefix(t *testing.T) {
	assert.True(t, hasPathPrefix("/login", "/login"))
	assert.True(t, hasPathPrefix("/login/help", "/login"))
	assert.False(t, hasPathPrefix("/loginx", "/login"))
	assert.True(t, hasPathPrefix("/api/user", "/api"))
	assert.True(t, hasPathPrefix("/api/user", "/api/"))
	assert.False(t, hasPathPrefix("/anything", ""))
}
