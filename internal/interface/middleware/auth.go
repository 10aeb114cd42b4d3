package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-employee-auth/internal/application"
	"github.com/oksasatya/go-employee-auth/pkg/response"
)

const (
	TokenHeader  = "x-auth-token"
	CtxUserIDKey = "userID"
)

// Authenticator resolves a raw token to a user id.
type Authenticator interface {
	Authenticate(token string) (int64, error)
}

// Auth reads the x-auth-token header, verifies it, and stores the user id in
// the Gin context under CtxUserIDKey.
func Auth(authn Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, err := authn.Authenticate(c.GetHeader(TokenHeader))
		if err != nil {
			ae := application.AsAppError(err)
			response.AbortMsg(c, ae.Status, ae.Message)
			return
		}
		c.Set(CtxUserIDKey, uid)
		c.Next()
	}
}

// UserID returns the id stored by Auth, or false on an unprotected route.
func UserID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(CtxUserIDKey)
	if !ok {
		return 0, false
	}
	uid, ok := v.(int64)
	return uid, ok
}
