package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rakshakmorcha/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthRouter(jwtService *jwt.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	protected := r.Group("/admin")
	protected.Use(Auth(jwtService))
	protected.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"admin_id": c.GetString("admin_id"),
			"email":    c.GetString("admin_email"),
		})
	})
	return r
}

func getWithAuth(r http.Handler, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestAuth_ValidToken(t *testing.T) {
	svc := jwt.New("test-secret", time.Hour)
	r := setupAuthRouter(svc)

	token, err := svc.GenerateToken("admin", "admin@example.org")
	require.NoError(t, err)

	rr := getWithAuth(r, "Bearer "+token)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "admin", resp["admin_id"])
	assert.Equal(t, "admin@example.org", resp["email"])
}

func TestAuth_Rejections(t *testing.T) {
	svc := jwt.New("test-secret", time.Hour)
	other, err := jwt.New("other-secret", time.Hour).GenerateToken("admin", "a@b.co")
	require.NoError(t, err)

	r := setupAuthRouter(svc)

	cases := []struct {
		label  string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic abc"},
		{"empty bearer", "Bearer "},
		{"garbage token", "Bearer not.a.token"},
		{"wrong signature", "Bearer " + other},
	}

	for _, tc := range cases {
		t.Run(tc.label, func(t *testing.T) {
			rr := getWithAuth(r, tc.header)
			require.Equal(t, http.StatusUnauthorized, rr.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, false, resp["success"])
		})
	}
}
