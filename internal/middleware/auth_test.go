package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

// fakeAuthService authorizes exactly one token for one role.
type fakeAuthService struct {
	validToken string
	role       string
}

func (s *fakeAuthService) Login(username, password string) (string, error) {
	return "", errors.New("not implemented")
}

func (s *fakeAuthService) IsAuthorized(token string, requiredRole string) bool {
	return token == s.validToken && s.role == requiredRole
}

func (s *fakeAuthService) Logout(token string) error {
	return nil
}

func (s *fakeAuthService) EnsureAdminUser(username, password string) error {
	return nil
}

func newGatedRouter(auth *fakeAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/admin/orders", RequireRole(auth, "admin"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"orders": []string{}})
	})
	return router
}

func getOrders(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/admin/orders", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequireRole_DeniesByDefault(t *testing.T) {
	auth := &fakeAuthService{validToken: "good-token", role: "admin"}

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "not a bearer token", header: "Token good-token"},
		{name: "empty bearer token", header: "Bearer "},
		{name: "unknown token", header: "Bearer wrong-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newGatedRouter(auth)
			if w := getOrders(router, tt.header); w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", w.Code)
			}
		})
	}
}

func TestRequireRole_DeniesWrongRole(t *testing.T) {
	// The session is real but for another role; the gate must still say no.
	auth := &fakeAuthService{validToken: "good-token", role: "support"}
	router := newGatedRouter(auth)

	if w := getOrders(router, "Bearer good-token"); w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401 for non-admin session", w.Code)
	}
}

func TestRequireRole_PassesValidAdminSession(t *testing.T) {
	auth := &fakeAuthService{validToken: "good-token", role: "admin"}
	router := newGatedRouter(auth)

	if w := getOrders(router, "Bearer good-token"); w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 for a valid admin session", w.Code)
	}
}
