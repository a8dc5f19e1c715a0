package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/trenchhq/trench-api/internal/domain/entity"
	handlers "github.com/trenchhq/trench-api/internal/interface/http"
	"github.com/trenchhq/trench-api/internal/interface/middleware"
	"github.com/trenchhq/trench-api/pkg/helpers"
)

type StudentModule struct {
	Handler *handlers.StudentHandler
	JWT     *helpers.JWTManager
}

func NewStudentModule(h *handlers.StudentHandler, jwt *helpers.JWTManager) *StudentModule {
	return &StudentModule{Handler: h, JWT: jwt}
}

func (m *StudentModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/students")
	auth.Use(middleware.Auth(m.JWT))

	staffOnly := middleware.RequireRole(entity.RoleFaculty, entity.RoleAdmin)
	adminOnly := middleware.RequireRole(entity.RoleAdmin)

	auth.POST("", staffOnly, m.Handler.Create)
	auth.GET("", staffOnly, m.Handler.List)
	auth.GET("/:id", m.Handler.Get) // any authenticated role
	auth.PUT("/:id", staffOnly, m.Handler.Update)
	auth.DELETE("/:id", adminOnly, m.Handler.Delete)
}
