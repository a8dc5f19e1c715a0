package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/trenchhq/trench-api/pkg/helpers"
	"github.com/trenchhq/trench-api/pkg/response"
)

const (
	// CtxIdentityKey holds the *Identity of the authenticated caller.
	CtxIdentityKey = "identity"
	// CtxUserIDKey holds the authenticated user ID for handler convenience.
	CtxUserIDKey = "userID"
)

// Identity is the authenticated caller as established by the Auth
// middleware. Handlers and the role gate read it from the Gin context.
type Identity struct {
	UserID string
	Email  string
	Name   string
	Role   string
}

// IdentityFrom returns the caller identity set by Auth, or nil when the
// request is unauthenticated.
func IdentityFrom(c *gin.Context) *Identity {
	v, ok := c.Get(CtxIdentityKey)
	if !ok {
		return nil
	}
	id, ok := v.(*Identity)
	if !ok {
		return nil
	}
	return id
}

// Auth validates the bearer token and injects the caller identity into the
// Gin context. The token is read from the Authorization header first, then
// from the access_token cookie for browser clients.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.Error[any](c, http.StatusUnauthorized, "Authentication required", nil)
			c.Abort()
			return
		}
		claims, err := jwt.Parse(token)
		if err != nil {
			response.Error[any](c, http.StatusUnauthorized, "Invalid or expired token", nil)
			c.Abort()
			return
		}

		id := &Identity{
			UserID: claims.UserID,
			Email:  claims.Email,
			Name:   claims.Name,
			Role:   claims.Role,
		}
		c.Set(CtxIdentityKey, id)
		c.Set(CtxUserIDKey, id.UserID)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); h != "" {
		parts := strings.SplitN(h, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
	}
	if tok, err := c.Cookie("access_token"); err == nil && tok != "" {
		return tok
	}
	return ""
}
