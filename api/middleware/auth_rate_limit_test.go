package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeLimiterStore struct {
	mu     sync.Mutex
	counts map[string]int64
}

func newFakeLimiterStore() *fakeLimiterStore {
	return &fakeLimiterStore{counts: map[string]int64{}}
}

func (s *fakeLimiterStore) IncrWithTTL(_ context.Context, key string, _ time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts[key]++
	return s.counts[key], nil
}

func loginRequest(email string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{"email":"`+email+`","password":"demo123"}`))
	req.RemoteAddr = "198.51.100.7:4242"
	return req
}

func TestAuthRateLimitBlocksAfterEmailLimit(t *testing.T) {
	policy := NewAuthRateLimitPolicy("login", time.Minute, 0, 2)
	handler := AuthRateLimit(policy, newFakeLimiterStore(), nil)(okHandler())

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, loginRequest("admin@ensigotrace.org"))
		assert.Equal(t, http.StatusOK, rec.Code, "attempt %d", i+1)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, loginRequest("admin@ensigotrace.org"))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestAuthRateLimitTracksEmailsSeparately(t *testing.T) {
	policy := NewAuthRateLimitPolicy("login", time.Minute, 0, 1)
	handler := AuthRateLimit(policy, newFakeLimiterStore(), nil)(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, loginRequest("admin@ensigotrace.org"))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, loginRequest("collector@ensigotrace.org"))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthRateLimitBlocksByIP(t *testing.T) {
	policy := NewAuthRateLimitPolicy("login", time.Minute, 1, 0)
	handler := AuthRateLimit(policy, newFakeLimiterStore(), nil)(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, loginRequest("a@x.com"))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, loginRequest("b@x.com"))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestAuthRateLimitPassThroughWithoutStore(t *testing.T) {
	policy := NewAuthRateLimitPolicy("login", time.Minute, 1, 1)
	handler := AuthRateLimit(policy, nil, nil)(okHandler())

	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, loginRequest("admin@ensigotrace.org"))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestAuthRateLimitDisabledPolicy(t *testing.T) {
	policy := NewAuthRateLimitPolicy("login", 0, 10, 10)
	handler := AuthRateLimit(policy, newFakeLimiterStore(), nil)(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, loginRequest("admin@ensigotrace.org"))
	assert.Equal(t, http.StatusOK, rec.Code)
}
