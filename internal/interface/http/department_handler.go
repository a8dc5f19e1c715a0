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

type DepartmentHandler struct {
	Departments *application.DepartmentService
	Logger      *logrus.Logger
}

func NewDepartmentHandler(departments *application.DepartmentService, logger *logrus.Logger) *DepartmentHandler {
	return &DepartmentHandler{Departments: departments, Logger: logger}
}

// Create POST /api/departments
func (h *DepartmentHandler) Create(c *gin.Context) {
	var req struct {
		Name      string `json:"name" binding:"required"`
		CollegeID string `json:"collegeId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	d, err := h.Departments.Create(c.Request.Context(), application.DepartmentInput{
		Name:      req.Name,
		CollegeID: req.CollegeID,
	})
	if err != nil {
		switch {
		case errors.Is(err, application.ErrCollegeNotFound):
			response.Error[any](c, http.StatusNotFound, "College not found", nil)
		case errors.Is(err, application.ErrConflict):
			response.Error[any](c, http.StatusConflict, "Department already exists", nil)
		default:
			response.Error[any](c, http.StatusInternalServerError, "create failed", nil)
		}
		return
	}
	response.Success(c, http.StatusCreated, d, "department created", nil)
}

// Get GET /api/departments/:id
func (h *DepartmentHandler) Get(c *gin.Context) {
	d, err := h.Departments.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error[any](c, http.StatusNotFound, "Department not found", nil)
		return
	}
	response.Success(c, http.StatusOK, d, "department", nil)
}

// List GET /api/departments?collegeId=...
func (h *DepartmentHandler) List(c *gin.Context) {
	page, limit := pageParams(c)
	collegeID := c.Query("collegeId")
	departments, p, l, total, err := h.Departments.List(c.Request.Context(), collegeID, page, limit)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "list failed", nil)
		return
	}
	response.Success(c, http.StatusOK, departments, "departments", response.NewMeta(p, l, total))
}

// Update PUT /api/departments/:id
func (h *DepartmentHandler) Update(c *gin.Context) {
	var req struct {
		Name      string `json:"name"`
		CollegeID string `json:"collegeId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	d, err := h.Departments.Update(c.Request.Context(), c.Param("id"), application.DepartmentInput{
		Name:      req.Name,
		CollegeID: req.CollegeID,
	})
	if err != nil {
		switch {
		case errors.Is(err, application.ErrDepartmentNotFound):
			response.Error[any](c, http.StatusNotFound, "Department not found", nil)
		case errors.Is(err, application.ErrCollegeNotFound):
			response.Error[any](c, http.StatusNotFound, "College not found", nil)
		default:
			response.Error[any](c, http.StatusInternalServerError, "update failed", nil)
		}
		return
	}
	response.Success(c, http.StatusOK, d, "department updated", nil)
}

// Delete DELETE /api/departments/:id
func (h *DepartmentHandler) Delete(c *gin.Context) {
	if err := h.Departments.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, application.ErrDepartmentNotFound) {
			response.Error[any](c, http.StatusNotFound, "Department not found", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "delete failed", nil)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "department deleted", nil)
}
