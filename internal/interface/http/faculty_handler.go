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

type FacultyHandler struct {
	Faculty *application.FacultyService
	Logger  *logrus.Logger
}

func NewFacultyHandler(faculty *application.FacultyService, logger *logrus.Logger) *FacultyHandler {
	return &FacultyHandler{Faculty: faculty, Logger: logger}
}

// Create POST /api/faculty
func (h *FacultyHandler) Create(c *gin.Context) {
	var req struct {
		Email          string `json:"email" binding:"required,email"`
		Name           string `json:"name" binding:"required"`
		Password       string `json:"password" binding:"required,pwd"`
		EmployeeID     string `json:"employeeId" binding:"required"`
		DepartmentID   string `json:"departmentId" binding:"required"`
		Designation    string `json:"designation"`
		Specialization string `json:"specialization"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	f, err := h.Faculty.Create(c.Request.Context(), application.CreateFacultyInput{
		Email:          req.Email,
		Name:           req.Name,
		Password:       req.Password,
		EmployeeID:     req.EmployeeID,
		DepartmentID:   req.DepartmentID,
		Designation:    req.Designation,
		Specialization: req.Specialization,
	})
	if err != nil {
		switch {
		case errors.Is(err, application.ErrEmployeeIDTaken):
			response.Error[any](c, http.StatusConflict, "Employee ID already in use", nil)
		case errors.Is(err, application.ErrConflict):
			response.Error[any](c, http.StatusConflict, "Faculty member already exists", nil)
		default:
			response.Error[any](c, http.StatusInternalServerError, "create failed", nil)
		}
		return
	}
	response.Success(c, http.StatusCreated, f, "faculty member created", nil)
}

// Get GET /api/faculty/:id
func (h *FacultyHandler) Get(c *gin.Context) {
	f, err := h.Faculty.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error[any](c, http.StatusNotFound, "Faculty member not found", nil)
		return
	}
	response.Success(c, http.StatusOK, f, "faculty member", nil)
}

// List GET /api/faculty
func (h *FacultyHandler) List(c *gin.Context) {
	page, limit := pageParams(c)
	faculty, p, l, total, err := h.Faculty.List(c.Request.Context(), page, limit)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "list failed", nil)
		return
	}
	response.Success(c, http.StatusOK, faculty, "faculty", response.NewMeta(p, l, total))
}

// Update PUT /api/faculty/:id
func (h *FacultyHandler) Update(c *gin.Context) {
	var req struct {
		EmployeeID     string `json:"employeeId"`
		DepartmentID   string `json:"departmentId"`
		Designation    string `json:"designation"`
		Specialization string `json:"specialization"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	f, err := h.Faculty.Update(c.Request.Context(), c.Param("id"), application.UpdateFacultyInput{
		EmployeeID:     req.EmployeeID,
		DepartmentID:   req.DepartmentID,
		Designation:    req.Designation,
		Specialization: req.Specialization,
	})
	if err != nil {
		switch {
		case errors.Is(err, application.ErrFacultyNotFound):
			response.Error[any](c, http.StatusNotFound, "Faculty member not found", nil)
		case errors.Is(err, application.ErrEmployeeIDTaken):
			response.Error[any](c, http.StatusConflict, "Employee ID already in use", nil)
		default:
			response.Error[any](c, http.StatusInternalServerError, "update failed", nil)
		}
		return
	}
	response.Success(c, http.StatusOK, f, "faculty member updated", nil)
}

// Delete DELETE /api/faculty/:id
func (h *FacultyHandler) Delete(c *gin.Context) {
	if err := h.Faculty.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, application.ErrFacultyNotFound) {
			response.Error[any](c, http.StatusNotFound, "Faculty member not found", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "delete failed", nil)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "faculty member deleted", nil)
}
