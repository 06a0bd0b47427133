package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/skilllink/skilllink/internal/app/models"
	"github.com/skilllink/skilllink/internal/pkg/auth"
)

func newTestRouter(m *AuthMiddleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", m.JWTAuth(), func(c *gin.Context) {
		userID, _ := GetUserID(c)
		role, _ := GetUserRole(c)
		c.JSON(http.StatusOK, gin.H{"userId": userID, "role": role})
	})
	router.GET("/admin", m.JWTAuth(), m.RoleRequired(models.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", time.Hour, "skilllink.app")
	router := newTestRouter(NewAuthMiddleware(jwtService))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestJWTAuth_MalformedHeader(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", time.Hour, "skilllink.app")
	router := newTestRouter(NewAuthMiddleware(jwtService))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", -time.Minute, "skilllink.app")
	router := newTestRouter(NewAuthMiddleware(jwtService))

	token, err := jwtService.GenerateToken(1, "a@b.com", models.RoleLearner)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestJWTAuth_ValidTokenSetsContext(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", time.Hour, "skilllink.app")
	router := newTestRouter(NewAuthMiddleware(jwtService))

	token, err := jwtService.GenerateToken(7, "jane@example.com", models.RoleTutor)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}
	body := w.Body.String()
	if body == "" || !containsAll(body, `"userId":7`, `"role":"Tutor"`) {
		t.Errorf("unexpected body: %s", body)
	}
}

func TestRoleRequired(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", time.Hour, "skilllink.app")
	router := newTestRouter(NewAuthMiddleware(jwtService))

	adminToken, _ := jwtService.GenerateToken(1, "admin@skilllink.app", models.RoleAdmin)
	learnerToken, _ := jwtService.GenerateToken(2, "learner@example.com", models.RoleLearner)

	tests := []struct {
		name   string
		token  string
		status int
	}{
		{"admin allowed", adminToken, http.StatusOK},
		{"learner forbidden", learnerToken, http.StatusForbidden},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			req.Header.Set("Authorization", "Bearer "+tc.token)
			router.ServeHTTP(w, req)

			if w.Code != tc.status {
				t.Errorf("status = %d, want %d", w.Code, tc.status)
			}
		})
	}
}

func containsAll(s string, subs ...string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}
