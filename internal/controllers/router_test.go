package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"my_taxi/internal/controllers"
	"my_taxi/internal/routes"
	"my_taxi/internal/store"
	"my_taxi/internal/token"
)

// newRouter builds the full route tree over an in-memory store.
func newRouter(st store.Store, access string) (*gin.Engine, *token.Service) {
	gin.SetMode(gin.TestMode)
	tokens := token.New("test-secret", time.Hour)
	r := routes.SetupRouter(routes.Deps{
		Auth:        &controllers.AuthController{Store: st, Tokens: tokens},
		Rides:       &controllers.RideController{Store: st},
		Analytics:   &controllers.AnalyticsController{Store: st},
		Tokens:      tokens,
		RidesAccess: access,
	})
	return r, tokens
}

func doJSON(t *testing.T, r http.Handler, method, path, bearer string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

// register creates a user through the API and returns a login token.
func register(t *testing.T, r http.Handler, email, password, role string) string {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/auth/signup", "", gin.H{
		"email": email, "password": password, "role": role,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("signup %s: status = %d, body %s", email, w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, "/auth/login", "", gin.H{
		"email": email, "password": password,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login %s: status = %d, body %s", email, w.Code, w.Body.String())
	}
	tok, _ := decode(t, w)["token"].(string)
	if tok == "" {
		t.Fatalf("login %s: no token in %s", email, w.Body.String())
	}
	return tok
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
