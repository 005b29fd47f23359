package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	authorizationHeader   = "Authorization"
	authorizationType     = "Bearer"
	checkinTokenQuery     = "token"
	ContextCheckinDateKey = "checkinDate"
)

type CheckinTokenValidator interface {
	Validate(token string) (string, error)
}

// CheckinToken accepts the signed link token from ?token= or a Bearer header
// and stores the date it grants in the context.
func CheckinToken(validator CheckinTokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.Query(checkinTokenQuery)

		if tokenString == "" {
			if authHeader := c.GetHeader(authorizationHeader); authHeader != "" {
				fields := strings.Fields(authHeader)
				if len(fields) < 2 || fields[0] != authorizationType {
					c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
					return
				}
				tokenString = fields[1]
			}
		}

		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "check-in token required"})
			return
		}

		date, err := validator.Validate(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired check-in link"})
			return
		}

		c.Set(ContextCheckinDateKey, date)
		c.Next()
	}
}

func GetCheckinDate(c *gin.Context) (string, bool) {
	v, exists := c.Get(ContextCheckinDateKey)
	if !exists {
		return "", false
	}
	date, ok := v.(string)
	return date, ok
}
