package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ensigotrace/ensigotrace-backend/internal/auth"
	"github.com/ensigotrace/ensigotrace-backend/internal/collections"
	"github.com/ensigotrace/ensigotrace-backend/internal/payments"
	"github.com/ensigotrace/ensigotrace-backend/internal/sales"
	"github.com/ensigotrace/ensigotrace-backend/pkg/auth/session"
	"github.com/ensigotrace/ensigotrace-backend/pkg/config"
	"github.com/ensigotrace/ensigotrace-backend/pkg/metrics"
	"github.com/ensigotrace/ensigotrace-backend/pkg/store"
	"github.com/ensigotrace/ensigotrace-backend/pkg/types"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	kv := store.NewMemory()
	sessions := session.NewManager(kv, nil)
	registry := prometheus.NewRegistry()
	m := metrics.NewAPIMetrics(registry)

	authSvc, err := auth.NewService(auth.ServiceParams{
		Repo:     auth.NewRepository(kv, nil, nil),
		Sessions: sessions,
	})
	require.NoError(t, err)

	collectionsSvc, err := collections.NewService(collections.NewRepository(kv, nil, nil))
	require.NoError(t, err)

	salesSvc, err := sales.NewService(sales.NewRepository(kv, nil, nil), m)
	require.NoError(t, err)

	paymentsSvc, err := payments.NewService(payments.ServiceParams{Sales: salesSvc, Metrics: m})
	require.NoError(t, err)

	cfg := &config.Config{
		App:  config.AppConfig{Env: "development", Port: "0"},
		CORS: config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
	}

	return NewRouter(Deps{
		Config:      cfg,
		Store:       kv,
		Sessions:    sessions,
		Metrics:     m,
		Gatherer:    registry,
		Auth:        authSvc,
		Collections: collectionsSvc,
		Sales:       salesSvc,
		Payments:    paymentsSvc,
	})
}

func login(t *testing.T, router http.Handler, email string) string {
	t.Helper()
	body := []byte(`{"email":"` + email + `","password":"demo123"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	return envelope.Data.Token
}

func TestHealthEndpoints(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/health/live", "/health/ready"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGuardedRouteWithoutToken(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/collections", nil))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	var envelope types.ErrorEnvelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	details, ok := envelope.Error.Details.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "/login", details["redirect"])
}

func TestCollectorCanListCollections(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router, "collector@ensigotrace.org")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/collections", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCollectorIsRedirectedFromSales(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router, "collector@ensigotrace.org")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sales", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	var envelope types.ErrorEnvelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	details, ok := envelope.Error.Details.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "/dashboard", details["redirect"])
}

func TestNurseryCanReadSalesStats(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router, "nursery@ensigotrace.org")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sales/stats", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMenuReflectsRole(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router, "partner@ensigotrace.org")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/menu", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var envelope struct {
		Data []struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))

	ids := make([]string, 0, len(envelope.Data))
	for _, v := range envelope.Data {
		ids = append(ids, v.ID)
	}
	assert.Contains(t, ids, "partner-dashboard")
	assert.NotContains(t, ids, "admin-dashboard")
}

func TestPaymentCallbackIsPublic(t *testing.T) {
	router := newTestRouter(t)

	body := []byte(`{"status":"successful","transaction_id":"99","tx_ref":"SALE-2025-002"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/callback", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestFixturesReachableByAnyRole(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router, "admin@ensigotrace.org")

	for _, path := range []string{
		"/api/v1/fixtures/batches",
		"/api/v1/fixtures/mother-trees",
		"/api/v1/fixtures/nurseries",
		"/api/v1/fixtures/projects",
		"/api/v1/fixtures/analytics",
	} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}
