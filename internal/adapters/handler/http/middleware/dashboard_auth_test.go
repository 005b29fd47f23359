package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestDashboardAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte("open-sesame"), bcrypt.MinCost)
	require.NoError(t, err)

	newRouter := func(h string) *gin.Engine {
		router := gin.New()
		router.Use(DashboardAuth(h))
		router.GET("/week", func(c *gin.Context) { c.Status(http.StatusOK) })
		return router
	}

	t.Run("Correct password", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/week", nil)
		req.SetBasicAuth("anyone", "open-sesame")
		newRouter(string(hash)).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Wrong password", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/week", nil)
		req.SetBasicAuth("anyone", "guess")
		newRouter(string(hash)).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, dashboardRealm, w.Header().Get("WWW-Authenticate"))
	})

	t.Run("No credentials", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/week", nil)
		newRouter(string(hash)).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Disabled when no hash configured", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/week", nil)
		newRouter("").ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
