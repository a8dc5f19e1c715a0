package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/trenchhq/trench-api/internal/application"
	"github.com/trenchhq/trench-api/pkg/response"
	"github.com/trenchhq/trench-api/pkg/validation"
)

type AdminHandler struct {
	Admins *application.AdminService
	Logger *logrus.Logger
}

func NewAdminHandler(admins *application.AdminService, logger *logrus.Logger) *AdminHandler {
	return &AdminHandler{Admins: admins, Logger: logger}
}

// Create POST /api/admin
func (h *AdminHandler) Create(c *gin.Context) {
	var req struct {
		Email        string `json:"email" binding:"required,email"`
		Name         string `json:"name" binding:"required"`
		Password     string `json:"password" binding:"required,pwd"`
		DepartmentID string `json:"departmentId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	a, err := h.Admins.Create(c.Request.Context(), application.CreateAdminInput{
		Email:        req.Email,
		Name:         req.Name,
		Password:     req.Password,
		DepartmentID: req.DepartmentID,
	})
	if err != nil {
		if errors.Is(err, application.ErrConflict) {
			response.Error[any](c, http.StatusConflict, "Admin already exists", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "create failed", nil)
		return
	}
	response.Success(c, http.StatusCreated, a, "admin created", nil)
}

// Get GET /api/admin/:id
func (h *AdminHandler) Get(c *gin.Context) {
	a, err := h.Admins.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error[any](c, http.StatusNotFound, "Admin not found", nil)
		return
	}
	response.Success(c, http.StatusOK, a, "admin", nil)
}

// List GET /api/admin
func (h *AdminHandler) List(c *gin.Context) {
	page, limit := pageParams(c)
	admins, p, l, total, err := h.Admins.List(c.Request.Context(), page, limit)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "list failed", nil)
		return
	}
	response.Success(c, http.StatusOK, admins, "admins", response.NewMeta(p, l, total))
}

// Update PUT /api/admin/:id
func (h *AdminHandler) Update(c *gin.Context) {
	var req struct {
		DepartmentID string `json:"departmentId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	a, err := h.Admins.Update(c.Request.Context(), c.Param("id"), application.UpdateAdminInput{
		DepartmentID: req.DepartmentID,
	})
	if err != nil {
		if errors.Is(err, application.ErrAdminNotFound) {
			response.Error[any](c, http.StatusNotFound, "Admin not found", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "update failed", nil)
		return
	}
	response.Success(c, http.StatusOK, a, "admin updated", nil)
}

// Delete DELETE /api/admin/:id
func (h *AdminHandler) Delete(c *gin.Context) {
	if err := h.Admins.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, application.ErrAdminNotFound) {
			response.Error[any](c, http.StatusNotFound, "Admin not found", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "delete failed", nil)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "admin deleted", nil)
}

// Stats GET /api/admin/stats
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.Admins.Stats(c.Request.Context())
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "stats failed", nil)
		return
	}
	response.Success(c, http.StatusOK, stats, "dashboard stats", nil)
}
