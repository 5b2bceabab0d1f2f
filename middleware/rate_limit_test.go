package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func newSet(perMinute int) *limiterSet {
	return &limiterSet{
		limit:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    max(perMinute/2, 1),
		limiters: map[string]*rateLimiter{},
	}
}

func TestLimiterSetBurstPerKey(t *testing.T) {
	set := newSet(4)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	assert.True(t, set.allow("10.0.0.1", now))
	assert.True(t, set.allow("10.0.0.1", now))
	assert.False(t, set.allow("10.0.0.1", now))
	assert.True(t, set.allow("10.0.0.2", now))

	// One token comes back every 15s at 4/min.
	assert.True(t, set.allow("10.0.0.1", now.Add(15*time.Second)))
}

func TestLimiterSetForgetsIdleClients(t *testing.T) {
	set := newSet(4)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	set.allow("10.0.0.1", now)
	set.allow("10.0.0.2", now)
	assert.Len(t, set.limiters, 2)

	set.allow("10.0.0.3", now.Add(limiterIdleTTL+time.Second))
	assert.Len(t, set.limiters, 1)
}

func TestRateLimitDisabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/new", RateLimit(0), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for i := 0; i < 20; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/new", nil))
		assert.Equal(t, http.StatusNoContent, w.Code)
	}
}

func TestRateLimitRejects(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/new", RateLimit(1), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/new", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/new", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "429 Too Many Requests")
}
