package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/treasury_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signedToken(t *testing.T, subject string, expiresIn time.Duration) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/whoami", handlers...)
	return r
}

func whoami(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromCtx(c.Request.Context())
	c.String(http.StatusOK, userID)
}

func TestAuthMiddleware(t *testing.T) {
	r := newRouter(middleware.AuthMiddleware(testSecret), whoami)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{"valid token", "Bearer " + signedToken(t, "cashier-7", time.Hour), http.StatusOK, "cashier-7"},
		{"missing header", "", http.StatusUnauthorized, ""},
		{"wrong scheme", "Token abc", http.StatusUnauthorized, ""},
		{"expired", "Bearer " + signedToken(t, "cashier-7", -time.Hour), http.StatusUnauthorized, ""},
		{"empty subject", "Bearer " + signedToken(t, "", time.Hour), http.StatusUnauthorized, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, w.Body.String())
			} else {
				assert.Contains(t, w.Body.String(), `"errorKind":"Unauthorized"`)
			}
		})
	}
}

func TestRateLimit(t *testing.T) {
	lim, err := middleware.NewRateLimiter("2-M")
	require.NoError(t, err)
	r := newRouter(middleware.RateLimit(lim), whoami)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	_, err = middleware.NewRateLimiter("lots")
	assert.Error(t, err)
}

func TestStructuredLoggingMiddleware_PropagatesRequestID(t *testing.T) {
	r := newRouter(middleware.StructuredLoggingMiddleware(nopLogger()), func(c *gin.Context) {
		assert.NotNil(t, middleware.GetLoggerFromCtx(c.Request.Context()))
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("X-Request-ID", "req-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))
}
