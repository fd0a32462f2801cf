package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func TestRateLimiter_Allow(t *testing.T) {
	rl := NewRateLimiterWithConfig(10, 5) // 10 per minute, burst of 5
	defer rl.Stop()

	key := "owner:" + uuid.NewString()

	for i := 0; i < 5; i++ {
		if !rl.Allow(key) {
			t.Errorf("Request %d should be allowed", i+1)
		}
	}

	if rl.Allow(key) {
		t.Error("Request 6 should be rate limited")
	}
}

func TestRateLimiter_DifferentKeys(t *testing.T) {
	rl := NewRateLimiterWithConfig(10, 3)
	defer rl.Stop()

	for i := 0; i < 3; i++ {
		if !rl.Allow("owner:a") {
			t.Errorf("owner a request %d should be allowed", i+1)
		}
	}
	if rl.Allow("owner:a") {
		t.Error("owner a should be rate limited")
	}

	for i := 0; i < 3; i++ {
		if !rl.Allow("owner:b") {
			t.Errorf("owner b request %d should be allowed", i+1)
		}
	}
}

func TestRateLimiter_DefaultsForInvalidConfig(t *testing.T) {
	rl := NewRateLimiterWithConfig(0, -1)
	defer rl.Stop()

	if rl.perMinute != DefaultRateLimit || rl.burstSize != DefaultBurstSize {
		t.Errorf("expected defaults, got %d/%d", rl.perMinute, rl.burstSize)
	}
	remaining, _ := rl.GetState("unknown")
	if remaining != DefaultBurstSize {
		t.Errorf("unknown keys report the full burst, got %d", remaining)
	}
}

func TestRateLimiter_StopTwice(t *testing.T) {
	rl := NewRateLimiter()
	rl.Stop()
	rl.Stop()
}

func newOwnerContext(e *echo.Echo, ownerID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
	if ownerID != uuid.Nil {
		req = req.WithContext(WithOwnerID(req.Context(), ownerID))
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRateLimitMiddleware_LimitsPerOwner(t *testing.T) {
	e := echo.New()
	rl := NewRateLimiterWithConfig(10, 2)
	defer rl.Stop()

	handler := func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	}
	owner := uuid.New()

	for i := 0; i < 2; i++ {
		c, rec := newOwnerContext(e, owner)
		if err := RateLimitMiddleware(rl)(handler)(c); err != nil {
			t.Fatalf("Request %d: Expected no error, got %v", i+1, err)
		}
		if rec.Code != http.StatusOK {
			t.Errorf("Request %d: Expected status 200, got %d", i+1, rec.Code)
		}
		if rec.Header().Get("X-RateLimit-Limit") != "10" {
			t.Errorf("Request %d: Expected X-RateLimit-Limit 10, got %q", i+1, rec.Header().Get("X-RateLimit-Limit"))
		}
	}

	c, rec := newOwnerContext(e, owner)
	if err := RateLimitMiddleware(rl)(handler)(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("Expected status 429, got %d", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("Expected Retry-After header")
	}

	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Status != "error" || body.Message == "" {
		t.Errorf("unexpected body %+v", body)
	}

	// a different owner is unaffected
	c, rec = newOwnerContext(e, uuid.New())
	_ = RateLimitMiddleware(rl)(handler)(c)
	if rec.Code != http.StatusOK {
		t.Errorf("Expected other owner to pass, got %d", rec.Code)
	}
}

func TestRateLimitMiddleware_AnonymousKeyedByIP(t *testing.T) {
	e := echo.New()
	rl := NewRateLimiterWithConfig(10, 1)
	defer rl.Stop()

	handler := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	c, _ := newOwnerContext(e, uuid.Nil)
	if got := rateLimitKey(c); got != "ip:"+c.RealIP() {
		t.Errorf("rateLimitKey = %q", got)
	}

	c, rec := newOwnerContext(e, uuid.Nil)
	_ = RateLimitMiddleware(rl)(handler)(c)
	if rec.Code != http.StatusOK {
		t.Fatalf("first anonymous request should pass, got %d", rec.Code)
	}

	c, rec = newOwnerContext(e, uuid.Nil)
	_ = RateLimitMiddleware(rl)(handler)(c)
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("second anonymous request from same IP should be limited, got %d", rec.Code)
	}
}
