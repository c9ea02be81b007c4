package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/lmasumbuku/backend/internal/auth"
)

func protectedRouter(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := append(mw, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user": c.GetString("userID")})
	})
	r.GET("/protected", handlers...)
	return r
}

func get(r *gin.Engine, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := protectedRouter(AuthMiddleware())

	if w := get(r, nil); w.Code != http.StatusUnauthorized {
		t.Errorf("no header: status %d, want 401", w.Code)
	}
	if w := get(r, map[string]string{"Authorization": "token abc"}); w.Code != http.StatusUnauthorized {
		t.Errorf("bad scheme: status %d, want 401", w.Code)
	}
	if w := get(r, map[string]string{"Authorization": "Bearer not-a-token"}); w.Code != http.StatusUnauthorized {
		t.Errorf("garbage token: status %d, want 401", w.Code)
	}

	token, err := auth.GenerateToken("user-1", "luigi@example.com", auth.RoleRestaurant)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	w := get(r, map[string]string{"Authorization": "Bearer " + token})
	if w.Code != http.StatusOK {
		t.Fatalf("valid token: status %d, body %s", w.Code, w.Body.String())
	}
}

func TestRequireRole(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := protectedRouter(AuthMiddleware(), RequireRole(auth.RoleRestaurant))

	token, err := auth.GenerateToken("user-1", "luigi@example.com", "ADMIN")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if w := get(r, map[string]string{"Authorization": "Bearer " + token}); w.Code != http.StatusForbidden {
		t.Errorf("wrong role: status %d, want 403", w.Code)
	}

	token, err = auth.GenerateToken("user-1", "luigi@example.com", auth.RoleRestaurant)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if w := get(r, map[string]string{"Authorization": "Bearer " + token}); w.Code != http.StatusOK {
		t.Errorf("allowed role: status %d, want 200", w.Code)
	}
}

func TestAPIKeyMiddlewareEncodedQueryKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/guarded", APIKeyMiddleware("k$y!"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/guarded?key=k%24y%21", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("encoded key: status %d, want 200", w.Code)
	}
}

func TestAPIKeyMiddlewareRejectsWhenUnconfigured(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/guarded", APIKeyMiddleware(""), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("x-api-key", "anything")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("empty expected key: status %d, want 401", w.Code)
	}
}
