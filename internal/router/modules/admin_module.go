package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/trenchhq/trench-api/internal/domain/entity"
	handlers "github.com/trenchhq/trench-api/internal/interface/http"
	"github.com/trenchhq/trench-api/internal/interface/middleware"
	"github.com/trenchhq/trench-api/pkg/helpers"
)

type AdminModule struct {
	Handler *handlers.AdminHandler
	JWT     *helpers.JWTManager
}

func NewAdminModule(h *handlers.AdminHandler, jwt *helpers.JWTManager) *AdminModule {
	return &AdminModule{Handler: h, JWT: jwt}
}

func (m *AdminModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/admin")
	auth.Use(middleware.Auth(m.JWT), middleware.RequireRole(entity.RoleAdmin))

	auth.POST("", m.Handler.Create)
	auth.GET("", m.Handler.List)
	auth.GET("/stats", m.Handler.Stats)
	auth.GET("/:id", m.Handler.Get)
	auth.PUT("/:id", m.Handler.Update)
	auth.DELETE("/:id", m.Handler.Delete)
}
