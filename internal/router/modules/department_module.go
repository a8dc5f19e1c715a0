package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/trenchhq/trench-api/internal/domain/entity"
	handlers "github.com/trenchhq/trench-api/internal/interface/http"
	"github.com/trenchhq/trench-api/internal/interface/middleware"
	"github.com/trenchhq/trench-api/pkg/helpers"
)

type DepartmentModule struct {
	Handler *handlers.DepartmentHandler
	JWT     *helpers.JWTManager
}

func NewDepartmentModule(h *handlers.DepartmentHandler, jwt *helpers.JWTManager) *DepartmentModule {
	return &DepartmentModule{Handler: h, JWT: jwt}
}

func (m *DepartmentModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/departments")
	auth.Use(middleware.Auth(m.JWT))

	adminOnly := middleware.RequireRole(entity.RoleAdmin)

	auth.POST("", adminOnly, m.Handler.Create)
	auth.GET("", m.Handler.List)
	auth.GET("/:id", m.Handler.Get)
	auth.PUT("/:id", adminOnly, m.Handler.Update)
	auth.DELETE("/:id", adminOnly, m.Handler.Delete)
}
