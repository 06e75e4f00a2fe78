package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/yeremiapane/storefront-api/utils"
)

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	utils.InitLogger()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handlers...)
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": c.GetString(RequestIDKey)})
	})
	return r
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequestIDGenerated(t *testing.T) {
	r := newEngine(RequestID(), LoggerMiddleware())

	w := serve(r, httptest.NewRequest(http.MethodGet, "/ping", nil))

	id := w.Header().Get(RequestIDKey)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
	assert.Contains(t, w.Body.String(), id)
}

func TestRequestIDPropagated(t *testing.T) {
	r := newEngine(RequestID())
	want := uuid.NewString()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDKey, want)
	w := serve(r, req)
	assert.Equal(t, want, w.Header().Get(RequestIDKey))

	// anything that is not a uuid is replaced
	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDKey, "<script>")
	w = serve(r, req)
	assert.NotEqual(t, "<script>", w.Header().Get(RequestIDKey))
}

func TestCORS(t *testing.T) {
	t.Run("wildcard", func(t *testing.T) {
		r := newEngine(CORSMiddlewares([]string{"*"}))
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Origin", "http://any.example")

		w := serve(r, req)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("allow list", func(t *testing.T) {
		r := newEngine(CORSMiddlewares([]string{"http://shop.example"}))

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Origin", "http://shop.example")
		w := serve(r, req)
		assert.Equal(t, "http://shop.example", w.Header().Get("Access-Control-Allow-Origin"))

		req = httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Origin", "http://evil.example")
		w = serve(r, req)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight", func(t *testing.T) {
		r := newEngine(CORSMiddlewares([]string{"*"}))
		w := serve(r, httptest.NewRequest(http.MethodOptions, "/ping", nil))
		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestSecurityHeaders(t *testing.T) {
	r := newEngine(SecurityHeaders())

	w := serve(r, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Contains(t, w.Header().Get("Content-Security-Policy"), "default-src 'none'")
}

func TestRateLimit(t *testing.T) {
	rl := NewRateLimiter(1, 2)
	r := newEngine(rl.RateLimit())

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		codes = append(codes, serve(r, httptest.NewRequest(http.MethodGet, "/ping", nil)).Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// another client has its own bucket
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "10.0.0.9:1234"
	assert.Equal(t, http.StatusOK, serve(r, req).Code)
}

func TestRateLimitDisabled(t *testing.T) {
	r := newEngine(NewRateLimiter(0, 0).RateLimit())
	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, serve(r, httptest.NewRequest(http.MethodGet, "/ping", nil)).Code)
	}
}

func TestRateLimiterSweepsIdleClients(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	start := rl.lastSweep

	rl.limiter("10.0.0.1", start.Add(time.Minute))
	rl.limiter("10.0.0.2", start.Add(2*time.Minute))
	assert.Len(t, rl.clients, 2)

	// inside the sweep interval nothing is dropped
	rl.limiter("10.0.0.3", start.Add(rl.idleTTL))
	assert.Len(t, rl.clients, 3)

	// past it, clients idle for longer than idleTTL go
	rl.limiter("10.0.0.3", start.Add(rl.idleTTL+90*time.Second))
	assert.Len(t, rl.clients, 2)
	assert.NotContains(t, rl.clients, "10.0.0.1")
	assert.Equal(t, start.Add(rl.idleTTL+90*time.Second), rl.lastSweep)

	// the next sweep waits another idleTTL
	rl.limiter("10.0.0.4", start.Add(rl.idleTTL+3*time.Minute))
	assert.Len(t, rl.clients, 3)
}
