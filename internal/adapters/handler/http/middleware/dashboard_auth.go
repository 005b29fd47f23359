package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

const dashboardRealm = `Basic realm="kanso-drift"`

// DashboardAuth guards read endpoints with HTTP basic auth checked against a
// bcrypt hash. The username is ignored. An empty hash disables the check.
func DashboardAuth(passwordHash string) gin.HandlerFunc {
	hash := []byte(passwordHash)

	return func(c *gin.Context) {
		if len(hash) == 0 {
			c.Next()
			return
		}

		_, password, ok := c.Request.BasicAuth()
		if !ok || bcrypt.CompareHashAndPassword(hash, []byte(password)) != nil {
			c.Header("WWW-Authenticate", dashboardRealm)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "dashboard credentials required"})
			return
		}

		c.Next()
	}
}
