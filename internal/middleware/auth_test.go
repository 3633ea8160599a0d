package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"media-service/internal/config"
	"media-service/internal/models"
	"media-service/internal/utils"

	"github.com/gin-gonic/gin"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	protected := r.Group("/protected")
	protected.Use(RequireAuth())
	protected.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, UserID(c))
	})

	editor := protected.Group("/edit")
	editor.Use(RequireEditor())
	editor.POST("/", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	admin := protected.Group("/admin")
	admin.Use(RequireAdmin())
	admin.POST("/", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	return r
}

func TestAuthMiddleware(t *testing.T) {
	config.LoadConfig()
	r := newTestRouter()

	readerToken, err := utils.GenerateJWT("user-1", models.RoleReader)
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}
	editorToken, _ := utils.GenerateJWT("user-2", models.RoleEditor)
	adminToken, _ := utils.GenerateJWT("user-3", models.RoleAdmin)

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		want   int
	}{
		{"missing token rejected", "GET", "/protected/whoami", "", http.StatusUnauthorized},
		{"garbage token rejected", "GET", "/protected/whoami", "not-a-jwt", http.StatusUnauthorized},
		{"reader passes auth", "GET", "/protected/whoami", readerToken, http.StatusOK},
		{"reader cannot edit", "POST", "/protected/edit/", readerToken, http.StatusForbidden},
		{"editor can edit", "POST", "/protected/edit/", editorToken, http.StatusOK},
		{"admin can edit", "POST", "/protected/edit/", adminToken, http.StatusOK},
		{"editor is not admin", "POST", "/protected/admin/", editorToken, http.StatusForbidden},
		{"admin passes admin gate", "POST", "/protected/admin/", adminToken, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tt.want {
				t.Errorf("%s %s: got status %d, want %d", tt.method, tt.path, w.Code, tt.want)
			}
		})
	}
}

func TestUserIDFromContext(t *testing.T) {
	config.LoadConfig()
	r := newTestRouter()

	token, err := utils.GenerateJWT("user-42", models.RoleReader)
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}

	req := httptest.NewRequest("GET", "/protected/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Body.String() != "user-42" {
		t.Errorf("UserID = %q, want %q", w.Body.String(), "user-42")
	}
}
