package auth

import (
	"net/http"

	"github.com/Afresh-Revolution/Knowrist/internal/api"

	"github.com/gin-gonic/gin"
)

const (
	ctxUserToken  = "auth.userToken"
	ctxAdminToken = "auth.adminToken"
	ctxAdminRole  = "auth.adminRole"
)

// UserTokenSource yields the logged-in user's backend token.
type UserTokenSource interface {
	Token() (string, bool)
}

// RequireUser guards endpoints that need an established user session.
func RequireUser(source UserTokenSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := source.Token()
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "user not authenticated"})
			return
		}
		c.Set(ctxUserToken, token)
		c.Next()
	}
}

// OptionalUser attaches the user token when a session exists but lets the
// request through either way. Used where demo mode must keep working.
func OptionalUser(source UserTokenSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := source.Token(); ok {
			c.Set(ctxUserToken, token)
		}
		c.Next()
	}
}

// RequireAdmin guards admin endpoints. When role is non-empty the session
// must carry exactly that role.
func RequireAdmin(service *AdminService, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, sessionRole, ok := service.Session()
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "admin not authenticated"})
			return
		}
		if role != "" && sessionRole != role {
			c.AbortWithStatusJSON(http.StatusForbidden, api.ErrorResponse{Error: "insufficient permissions"})
			return
		}
		c.Set(ctxAdminToken, token)
		c.Set(ctxAdminRole, sessionRole)
		c.Next()
	}
}

func UserToken(c *gin.Context) (string, bool) {
	return stringFromContext(c, ctxUserToken)
}

func AdminToken(c *gin.Context) (string, bool) {
	return stringFromContext(c, ctxAdminToken)
}

func AdminRole(c *gin.Context) (string, bool) {
	return stringFromContext(c, ctxAdminRole)
}

func stringFromContext(c *gin.Context, key string) (string, bool) {
	value, ok := c.Get(key)
	if !ok {
		return "", false
	}
	s, ok := value.(string)
	return s, ok
}
