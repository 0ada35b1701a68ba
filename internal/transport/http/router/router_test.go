package router

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aishki/bazario/internal/application/auth"
	"github.com/aishki/bazario/internal/infrastructure/memory"
	"github.com/aishki/bazario/internal/infrastructure/security"
	"github.com/aishki/bazario/internal/logger"
	http_handlers "github.com/aishki/bazario/internal/transport/http/handlers"
)

func TestMain(m *testing.M) {
	logger.InitWithWriter(io.Discard)
	m.Run()
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	store := memory.NewStore()
	svc := auth.NewService(store.Users(), store.Profiles(), security.NewBcryptHasher(4))

	h, err := New(Deps{
		Health:          http_handlers.NewHealthHandler(),
		Auth:            http_handlers.NewAuthHandler(svc),
		BodyLimitBytes:  1 << 20,
		RateLimitPerMin: 1000,
	})
	if err != nil {
		t.Fatalf("router: %v", err)
	}
	return h
}

func TestNew_RequiresHandlers(t *testing.T) {
	if _, err := New(Deps{Auth: nil, Health: nil}); err == nil {
		t.Fatalf("expected error for nil handlers")
	}
}

func TestRouter_Healthz(t *testing.T) {
	h := newTestRouter(t)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"status":"ok"`) {
		t.Fatalf("unexpected body %q", rr.Body.String())
	}
}

func TestRouter_MetricsExposed(t *testing.T) {
	h := newTestRouter(t)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

func TestRouter_AuthRouteDispatches(t *testing.T) {
	h := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth", strings.NewReader(`{"action":"login","email":"ghost@x.com","password":"pw"}`))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 from login path, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestRouter_AuthRouteRejectsGet(t *testing.T) {
	h := newTestRouter(t)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/auth", nil))

	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rr.Code)
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	h := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/auth", nil)
	req.Header.Set("Origin", "https://shop.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected wildcard origin, got %q", got)
	}
	if got := rr.Header().Get("Access-Control-Max-Age"); got != "3600" {
		t.Fatalf("expected max-age 3600, got %q", got)
	}
}

func TestRouter_RequestIDHeaderSet(t *testing.T) {
	h := newTestRouter(t)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rr.Header().Get("X-Request-Id") == "" {
		t.Fatalf("expected request id header")
	}
}

func TestRouter_BodyLimitApplies(t *testing.T) {
	store := memory.NewStore()
	svc := auth.NewService(store.Users(), store.Profiles(), security.NewBcryptHasher(4))

	h, err := New(Deps{
		Health:          http_handlers.NewHealthHandler(),
		Auth:            http_handlers.NewAuthHandler(svc),
		BodyLimitBytes:  32,
		RateLimitPerMin: 1000,
	})
	if err != nil {
		t.Fatalf("router: %v", err)
	}

	body := `{"action":"login","email":"` + strings.Repeat("a", 128) + `@x.com","password":"pw"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth", strings.NewReader(body))
	req.ContentLength = int64(len(body))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d", rr.Code)
	}
}
