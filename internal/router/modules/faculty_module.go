package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/trenchhq/trench-api/internal/domain/entity"
	handlers "github.com/trenchhq/trench-api/internal/interface/http"
	"github.com/trenchhq/trench-api/internal/interface/middleware"
	"github.com/trenchhq/trench-api/pkg/helpers"
)

type FacultyModule struct {
	Handler *handlers.FacultyHandler
	JWT     *helpers.JWTManager
}

func NewFacultyModule(h *handlers.FacultyHandler, jwt *helpers.JWTManager) *FacultyModule {
	return &FacultyModule{Handler: h, JWT: jwt}
}

func (m *FacultyModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/faculty")
	auth.Use(middleware.Auth(m.JWT))

	staffOnly := middleware.RequireRole(entity.RoleFaculty, entity.RoleAdmin)
	adminOnly := middleware.RequireRole(entity.RoleAdmin)

	auth.POST("", adminOnly, m.Handler.Create)
	auth.GET("", staffOnly, m.Handler.List)
	auth.GET("/:id", m.Handler.Get) // any authenticated role
	auth.PUT("/:id", staffOnly, m.Handler.Update)
	auth.DELETE("/:id", adminOnly, m.Handler.Delete)
}
