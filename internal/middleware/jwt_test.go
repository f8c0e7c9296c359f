package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"chakula/internal/config"
	"chakula/internal/models"
)

func authTestRouter(t *testing.T, adminHits *int) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	Setup(&config.Config{JWTSecret: "unit-test-secret", TokenTTL: time.Hour})

	r := gin.New()
	r.GET("/me", RequireAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": UserID(c)})
	})
	r.GET("/admin", RequireRole(models.RoleAdmin), func(c *gin.Context) {
		if adminHits != nil {
			*adminHits++
		}
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	return r
}

func get(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuth(t *testing.T) {
	r := authTestRouter(t, nil)

	token, err := GenerateToken(42, "jua@example.com", models.RoleMember)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if w := get(r, "/me", token); w.Code != http.StatusOK {
		t.Errorf("valid token: status = %d, want 200", w.Code)
	}
	if w := get(r, "/me", ""); w.Code != http.StatusUnauthorized {
		t.Errorf("no token: status = %d, want 401", w.Code)
	}
	if w := get(r, "/me", "not-a-jwt"); w.Code != http.StatusUnauthorized {
		t.Errorf("garbage token: status = %d, want 401", w.Code)
	}

	// a token signed with a different secret must not validate
	Setup(&config.Config{JWTSecret: "other-secret", TokenTTL: time.Hour})
	foreign, _ := GenerateToken(42, "jua@example.com", models.RoleMember)
	Setup(&config.Config{JWTSecret: "unit-test-secret", TokenTTL: time.Hour})
	if w := get(r, "/me", foreign); w.Code != http.StatusUnauthorized {
		t.Errorf("wrong secret: status = %d, want 401", w.Code)
	}
}

func TestRequireAuthExpiredToken(t *testing.T) {
	r := authTestRouter(t, nil)

	Setup(&config.Config{JWTSecret: "unit-test-secret", TokenTTL: -time.Minute})
	expired, err := GenerateToken(42, "jua@example.com", models.RoleMember)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	Setup(&config.Config{JWTSecret: "unit-test-secret", TokenTTL: time.Hour})

	if w := get(r, "/me", expired); w.Code != http.StatusUnauthorized {
		t.Errorf("expired token: status = %d, want 401", w.Code)
	}
}

func TestRequireRole(t *testing.T) {
	var adminHits int
	r := authTestRouter(t, &adminHits)

	admin, _ := GenerateToken(1, "admin@example.com", models.RoleAdmin)
	member, _ := GenerateToken(2, "member@example.com", models.RoleMember)

	if w := get(r, "/admin", admin); w.Code != http.StatusOK {
		t.Errorf("admin token: status = %d, want 200", w.Code)
	}
	if adminHits != 1 {
		t.Fatalf("handler runs after admin request = %d, want 1", adminHits)
	}

	// A wrong role must stop the chain before the endpoint; the handler must
	// not run at all, and the written status must be the 403.
	if w := get(r, "/admin", member); w.Code != http.StatusForbidden {
		t.Errorf("member token: status = %d, want 403", w.Code)
	}
	if adminHits != 1 {
		t.Errorf("handler ran for a forbidden role (runs = %d, want 1)", adminHits)
	}

	if w := get(r, "/admin", ""); w.Code != http.StatusUnauthorized {
		t.Errorf("no token: status = %d, want 401", w.Code)
	}
	if adminHits != 1 {
		t.Errorf("handler ran without a token (runs = %d, want 1)", adminHits)
	}
}

func TestUserIDClaimRoundTrip(t *testing.T) {
	r := authTestRouter(t, nil)

	token, err := GenerateToken(7, "seven@example.com", models.RoleMember)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	w := get(r, "/me", token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if got := w.Body.String(); got != `{"user_id":7}` {
		t.Errorf("body = %s, want {\"user_id\":7}", got)
	}
}
