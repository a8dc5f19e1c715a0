package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/trenchhq/trench-api/internal/domain/entity"
	"github.com/trenchhq/trench-api/pkg/response"
)

// RequireRole gates a route to callers holding one of the given roles. It
// relies on Auth having run first; a request with no identity is rejected as
// unauthenticated rather than forbidden.
func RequireRole(roles ...entity.Role) gin.HandlerFunc {
	allowed := make(map[entity.Role]struct{}, len(roles))
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
		names = append(names, string(r))
	}
	return func(c *gin.Context) {
		id := IdentityFrom(c)
		if id == nil {
			response.Error[any](c, http.StatusUnauthorized, "Authentication required", nil)
			c.Abort()
			return
		}
		if _, ok := allowed[entity.Role(id.Role)]; !ok {
			msg := fmt.Sprintf("Access denied. Required roles: %s. Your role: %s",
				strings.Join(names, ", "), id.Role)
			response.Error[any](c, http.StatusForbidden, msg, nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
