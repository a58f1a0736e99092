package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"my_taxi/internal/middleware"
	"my_taxi/internal/token"
)

func protectedRouter(tokens *token.Service, roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	handlers := []gin.HandlerFunc{middleware.RequireAuth(tokens)}
	if len(roles) > 0 {
		handlers = append(handlers, middleware.RequireRole(roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": middleware.UserID(c)})
	})

	r.GET("/protected", handlers...)
	return r
}

func get(r http.Handler, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuthMissingHeader(t *testing.T) {
	tokens := token.New("test-secret", time.Hour)
	r := protectedRouter(tokens)

	if w := get(r, ""); w.Code != http.StatusUnauthorized {
		t.Errorf("no header: status = %d, want 401", w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic abc")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("non-bearer header: status = %d, want 401", w.Code)
	}
}

func TestRequireAuthInvalidToken(t *testing.T) {
	tokens := token.New("test-secret", time.Hour)
	r := protectedRouter(tokens)

	if w := get(r, "not-a-token"); w.Code != http.StatusUnauthorized {
		t.Errorf("garbage token: status = %d, want 401", w.Code)
	}

	expired, err := token.New("test-secret", -time.Minute).Issue(1, "driver")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if w := get(r, expired); w.Code != http.StatusUnauthorized {
		t.Errorf("expired token: status = %d, want 401", w.Code)
	}
}

func TestRequireAuthValidToken(t *testing.T) {
	tokens := token.New("test-secret", time.Hour)
	r := protectedRouter(tokens)

	raw, err := tokens.Issue(7, "passenger")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	w := get(r, raw)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", w.Code, w.Body.String())
	}
	if got := w.Body.String(); got != `{"user_id":7}` {
		t.Errorf("body = %s, want user_id 7", got)
	}
}

func TestRequireRole(t *testing.T) {
	tokens := token.New("test-secret", time.Hour)

	driverToken, err := tokens.Issue(3, "driver")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	// Driver against an admin-only gate.
	if w := get(protectedRouter(tokens, "admin"), driverToken); w.Code != http.StatusForbidden {
		t.Errorf("driver vs admin gate: status = %d, want 403", w.Code)
	}

	// Driver against a driver gate.
	if w := get(protectedRouter(tokens, "driver"), driverToken); w.Code != http.StatusOK {
		t.Errorf("driver vs driver gate: status = %d, want 200", w.Code)
	}

	// Allow-list with several roles.
	if w := get(protectedRouter(tokens, "admin", "driver"), driverToken); w.Code != http.StatusOK {
		t.Errorf("driver vs admin|driver gate: status = %d, want 200", w.Code)
	}
}
