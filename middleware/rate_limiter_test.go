package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newLimitedRouter(perMinute int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimitMiddleware(perMinute, zap.NewNop()))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func ping(r *gin.Engine, remoteAddr, forwardedFor string) int {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = remoteAddr
	if forwardedFor != "" {
		req.Header.Set("X-Forwarded-For", forwardedFor)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec.Code
}

func TestRateLimitMiddleware_PerIP(t *testing.T) {
	r := newLimitedRouter(2)

	assert.Equal(t, http.StatusOK, ping(r, "10.0.0.1:1234", ""))
	assert.Equal(t, http.StatusOK, ping(r, "10.0.0.1:1234", ""))
	assert.Equal(t, http.StatusTooManyRequests, ping(r, "10.0.0.1:1234", ""))

	// Another client has its own budget.
	assert.Equal(t, http.StatusOK, ping(r, "10.0.0.2:1234", ""))
}

func TestRateLimitMiddleware_ForwardedFor(t *testing.T) {
	r := newLimitedRouter(1)

	assert.Equal(t, http.StatusOK, ping(r, "10.0.0.9:1", "203.0.113.7, 10.0.0.9"))
	assert.Equal(t, http.StatusTooManyRequests, ping(r, "10.0.0.9:2", "203.0.113.7"))
	assert.Equal(t, http.StatusOK, ping(r, "10.0.0.9:3", "198.51.100.1"))
}

func TestGetClientIP_IgnoresGarbageHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.RemoteAddr = "192.0.2.5:4000"
	c.Request.Header.Set("X-Forwarded-For", "not-an-ip")
	c.Request.Header.Set("X-Real-IP", "also bad")

	assert.Equal(t, "192.0.2.5", getClientIP(c))
}
