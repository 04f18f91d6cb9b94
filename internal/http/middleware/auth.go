package middleware

import (
	"net/http"
	"strings"

	"fleetadmin/internal/domain"

	"github.com/gin-gonic/gin"
)

const (
	userIDKey   = "userID"
	userRoleKey = "userRole"
)

// TokenParser validates a bearer token and returns the user id and role it carries.
type TokenParser func(token string) (userID int64, role string, err error)

// Auth rejects requests without a valid bearer token and stores userID/userRole on the context.
func Auth(parse TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			abortUnauthorized(c, "token tidak ditemukan")
			return
		}
		userID, role, err := parse(token)
		if err != nil {
			abortUnauthorized(c, "token tidak valid")
			return
		}
		c.Set(userIDKey, userID)
		c.Set(userRoleKey, role)
		c.Next()
	}
}

// RequestContext collects the authenticated user and request id of c.
func RequestContext(c *gin.Context) domain.RequestContext {
	return domain.RequestContext{
		UserID:    c.GetInt64(userIDKey),
		Role:      c.GetString(userRoleKey),
		RequestID: GetRequestID(c),
	}
}

func bearerToken(c *gin.Context) string {
	h := strings.TrimSpace(c.GetHeader("Authorization"))
	if len(h) < 7 || !strings.EqualFold(h[:7], "bearer ") {
		return ""
	}
	return strings.TrimSpace(h[7:])
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":      msg,
		"request_id": GetRequestID(c),
	})
}
