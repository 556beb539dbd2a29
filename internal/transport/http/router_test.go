package httptransport_test

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"mirath/internal/estate/handler"
	"mirath/internal/estate/service"
	"mirath/internal/estate/store"
	httptransport "mirath/internal/transport/http"
	"mirath/pkg/testutil"
)

type healthFunc func() error

func (f healthFunc) Health(context.Context) error { return f() }

func newRouter(t *testing.T, checkers ...httptransport.HealthChecker) http.Handler {
	t.Helper()
	logger := slog.New(slog.DiscardHandler)
	svc, err := service.New(store.NewInMemoryStore(), logger)
	if err != nil {
		t.Fatalf("service: %v", err)
	}
	return httptransport.NewRouter(handler.New(svc, logger), logger, checkers...)
}

func TestHealthEndpoint(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		router := newRouter(t, healthFunc(func() error { return nil }))
		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/healthz"))
		testutil.AssertStatus(t, rr, http.StatusOK)
	})

	t.Run("degraded dependency", func(t *testing.T) {
		router := newRouter(t, healthFunc(func() error { return errors.New("down") }))
		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/healthz"))
		testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
	})

	t.Run("nil checkers are skipped", func(t *testing.T) {
		router := newRouter(t, nil)
		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/healthz"))
		testutil.AssertStatus(t, rr, http.StatusOK)
	})
}

func TestRequestIDPropagation(t *testing.T) {
	router := newRouter(t)

	t.Run("generates id when absent", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/healthz"))
		assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
	})

	t.Run("echoes caller supplied id", func(t *testing.T) {
		req := testutil.NewRequest(t, http.MethodGet, "/healthz")
		req.Header.Set("X-Request-ID", "req-42")
		rr := testutil.DoRequest(router, req)
		assert.Equal(t, "req-42", rr.Header().Get("X-Request-ID"))
	})
}

func TestMetricsEndpoint(t *testing.T) {
	router := newRouter(t)
	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/metrics"))
	testutil.AssertStatus(t, rr, http.StatusOK)
}
