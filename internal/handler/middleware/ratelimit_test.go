//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"property-rental/internal/handler/middleware"
	"property-rental/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newLimitedRouter(cfg config.RateLimitConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/write", middleware.RateLimit(cfg), func(c *gin.Context) { c.Status(http.StatusCreated) })
	return r
}

func post(r *gin.Engine) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/write", nil))
	return w
}

func TestRateLimit(t *testing.T) {
	t.Run("burst is served then throttled", func(t *testing.T) {
		r := newLimitedRouter(config.RateLimitConfig{RPS: 0.001, Burst: 2})

		assert.Equal(t, http.StatusCreated, post(r).Code)
		assert.Equal(t, http.StatusCreated, post(r).Code)

		w := post(r)
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, "1", w.Header().Get("Retry-After"))
		assert.JSONEq(t, `{"error":{"message":"Too many requests"}}`, w.Body.String())
	})

	t.Run("disabled when rps is zero", func(t *testing.T) {
		r := newLimitedRouter(config.RateLimitConfig{})

		for range 20 {
			assert.Equal(t, http.StatusCreated, post(r).Code)
		}
	})
}
