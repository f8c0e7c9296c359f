package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"chakula/internal/config"
	"chakula/internal/controllers"
	"chakula/internal/middleware"
	"chakula/internal/models"
	"chakula/internal/routes"
)

// mailRecorder satisfies mailer.Sender so handlers under test never touch SMTP.
type mailRecorder struct {
	mu   sync.Mutex
	sent int
}

func (r *mailRecorder) Send(toEmail, toName, subject, htmlBody string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent++
	return nil
}

var clientSeq uint32

// setupTest gives each test its own in-memory database and router.
func setupTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := config.SeedStatusCatalog(db); err != nil {
		t.Fatalf("seed status catalog: %v", err)
	}
	config.DB = db

	cfg := &config.Config{
		JWTSecret:     "test-secret",
		TokenTTL:      time.Hour,
		VerifyCodeTTL: 10 * time.Minute,
		ResetTokenTTL: time.Hour,
	}
	middleware.Setup(cfg)
	controllers.Setup(cfg, &mailRecorder{})

	return routes.SetupRouter()
}

// doJSON performs one request against the router. Each test gets a distinct
// client IP so the shared rate limiter never interferes across tests.
func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = fmt.Sprintf("192.0.2.%d:1234", atomic.AddUint32(&clientSeq, 1)%250+1)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// seedVerifiedUser inserts a verified user directly, bypassing the
// registration flow, with the given plaintext password already hashed.
func seedVerifiedUser(t *testing.T, name, email, password string, role models.Role) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := models.User{
		Name:          name,
		Email:         email,
		EmailVerified: true,
		ContactPhone:  "0712345678",
		Password:      string(hash),
		Role:          role,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func mustStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("status = %d, want %d (body: %s)", w.Code, want, w.Body.String())
	}
}
