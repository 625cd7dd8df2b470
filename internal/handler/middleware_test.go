package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"bazaar/internal/handler"
	"bazaar/internal/repository/sqlite"
	"bazaar/internal/service"
)

const testSessionSecret = "test-secret-for-handler-tests"

type testServices struct {
	tokens     *service.TokenService
	auth       *service.AuthService
	catalog    *service.CatalogService
	purchases  *service.PurchaseService
	settlement *service.SettlementService
	summary    *service.SummaryService
}

func newTestServices(t *testing.T) testServices {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New DB: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	tokens := service.NewTokenService(testSessionSecret, time.Hour)
	return testServices{
		tokens: tokens,
		// Use bcrypt cost 4 for fast tests.
		auth:       service.NewAuthService(db.Users(), tokens, 4),
		catalog:    service.NewCatalogService(db.Products()),
		purchases:  service.NewPurchaseService(db.Purchases()),
		settlement: service.NewSettlementService(db.Purchases()),
		summary:    service.NewSummaryService(db.Purchases()),
	}
}

func TestRequireAuth_ValidToken(t *testing.T) {
	svc := newTestServices(t)

	token, err := svc.tokens.Issue(7)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	var gotUserID int64
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := handler.UserIDFromContext(r.Context())
		if !ok {
			t.Fatal("expected user id in context")
		}
		gotUserID = id
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: handler.SessionCookieName, Value: token})
	w := httptest.NewRecorder()

	handler.RequireAuth(svc.tokens, inner).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if gotUserID != 7 {
		t.Fatalf("expected user id 7, got %d", gotUserID)
	}
}

func TestRequireAuth_MissingCookie(t *testing.T) {
	svc := newTestServices(t)

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("inner handler should not be called")
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()

	handler.RequireAuth(svc.tokens, inner).ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	svc := newTestServices(t)

	expired := service.NewTokenService(testSessionSecret, -time.Minute)
	token, err := expired.Issue(7)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("inner handler should not be called")
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: handler.SessionCookieName, Value: token})
	w := httptest.NewRecorder()

	handler.RequireAuth(svc.tokens, inner).ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for expired token, got %d", w.Code)
	}
}

func TestRequireAuth_ForeignSignature(t *testing.T) {
	svc := newTestServices(t)

	foreign := service.NewTokenService("another-secret-entirely-here!!!!", time.Hour)
	token, err := foreign.Issue(7)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("inner handler should not be called")
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: handler.SessionCookieName, Value: token})
	w := httptest.NewRecorder()

	handler.RequireAuth(svc.tokens, inner).ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for foreign signature, got %d", w.Code)
	}
}

func TestHandleRegister_NonLoopbackForbidden(t *testing.T) {
	svc := newTestServices(t)
	authHandler := handler.NewAuthHandler(svc.auth, svc.tokens, false)

	// httptest.NewRequest uses 192.0.2.0/24 as the remote address.
	req := httptest.NewRequest(http.MethodPost, "/register",
		nil)
	w := httptest.NewRecorder()

	authHandler.HandleRegister(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-loopback register, got %d", w.Code)
	}
}
