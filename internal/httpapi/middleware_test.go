package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"apiTareas/internal/testutil"
)

func TestProtectedRoute_NoHeader(t *testing.T) {
	e, _ := newTestServer(t)
	rec := doJSON(t, e, http.MethodGet, "/tareas", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if m := decodeMap(t, rec); m["error"] != "Token requerido" {
		t.Fatalf("unexpected body: %v", m)
	}
}

func TestProtectedRoute_EmptyBearer(t *testing.T) {
	e, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/tareas", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer ")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestProtectedRoute_GarbageToken(t *testing.T) {
	e, _ := newTestServer(t)
	rec := doJSON(t, e, http.MethodGet, "/tareas", "garbage", nil)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if m := decodeMap(t, rec); m["error"] != "Token inválido o expirado" {
		t.Fatalf("unexpected body: %v", m)
	}
}

func TestProtectedRoute_ExpiredToken(t *testing.T) {
	e, _ := newTestServer(t)
	expired := testutil.SignToken(t, testSecret, 1, "alice", time.Now().Add(-time.Minute))
	rec := doJSON(t, e, http.MethodGet, "/tareas", expired, nil)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestProtectedRoute_WrongSecret(t *testing.T) {
	e, _ := newTestServer(t)
	forged := testutil.SignToken(t, "other-secret", 1, "alice", time.Now().Add(time.Hour))
	rec := doJSON(t, e, http.MethodGet, "/tareas", forged, nil)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestProtectedRoute_ValidToken(t *testing.T) {
	e, _ := newTestServer(t)
	rec := doJSON(t, e, http.MethodGet, "/tareas", bearerFor(t, "alice"), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if body := rec.Body.String(); body != "[]\n" && body != "[]" {
		t.Fatalf("expected empty array, got %q", body)
	}
}
