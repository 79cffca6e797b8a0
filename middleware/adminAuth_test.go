package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"innocurve/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func adminRouter() *gin.Engine {
	router := gin.New()
	router.GET("/api/admin/knowledge", AdminAuthMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestAdminAuth(t *testing.T) {
	config.AppConfig.AdminAPIToken = "test-admin-token"
	router := adminRouter()

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"wrong token", "Bearer nope", http.StatusUnauthorized},
		{"valid token", "Bearer test-admin-token", http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/admin/knowledge", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tc.want, w.Code)
		})
	}
}
