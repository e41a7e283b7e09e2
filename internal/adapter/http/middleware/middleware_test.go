package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"liquidation_backoffice/internal/infrastructure/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(logger.RequestIDKey))
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	generated := w.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(generated)
	require.NoError(t, err)
	assert.Equal(t, generated, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func signed(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestJWTAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(JWTAuth(JWTConfig{Secret: "s3cret", SkipPaths: []string{"/v1/ping"}}))
	router.GET("/v1/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/v1/customers", func(c *gin.Context) {
		claims, _ := c.Get(JWTClaimsKey)
		c.JSON(http.StatusOK, claims)
	})

	call := func(path, auth string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if auth != "" {
			req.Header.Set(AuthHeaderKey, auth)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, call("/v1/ping", "").Code)
	assert.Equal(t, http.StatusUnauthorized, call("/v1/customers", "").Code)
	assert.Equal(t, http.StatusUnauthorized, call("/v1/customers", "Token abc").Code)

	valid := signed(t, "s3cret", jwt.MapClaims{"sub": "agent-1", "exp": time.Now().Add(time.Hour).Unix()})
	w := call("/v1/customers", BearerPrefix+valid)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"sub":"agent-1"`)

	wrongKey := signed(t, "other", jwt.MapClaims{"sub": "agent-1"})
	assert.Equal(t, http.StatusUnauthorized, call("/v1/customers", BearerPrefix+wrongKey).Code)

	expired := signed(t, "s3cret", jwt.MapClaims{"sub": "agent-1", "exp": time.Now().Add(-time.Hour).Unix()})
	w = call("/v1/customers", BearerPrefix+expired)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token expired")
}
