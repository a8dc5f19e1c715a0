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

type StudentHandler struct {
	Students *application.StudentService
	Logger   *logrus.Logger
}

func NewStudentHandler(students *application.StudentService, logger *logrus.Logger) *StudentHandler {
	return &StudentHandler{Students: students, Logger: logger}
}

// Create POST /api/students
func (h *StudentHandler) Create(c *gin.Context) {
	var req struct {
		Email        string `json:"email" binding:"required,email"`
		Name         string `json:"name" binding:"required"`
		Password     string `json:"password" binding:"required,pwd"`
		RollNumber   string `json:"rollNumber" binding:"required"`
		PRN          string `json:"prn"`
		DepartmentID string `json:"departmentId" binding:"required"`
		Year         int    `json:"year"`
		Division     string `json:"division"`
		AcademicYear string `json:"academicYear"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	st, err := h.Students.Create(c.Request.Context(), application.CreateStudentInput{
		Email:        req.Email,
		Name:         req.Name,
		Password:     req.Password,
		RollNumber:   req.RollNumber,
		PRN:          req.PRN,
		DepartmentID: req.DepartmentID,
		Year:         req.Year,
		Division:     req.Division,
		AcademicYear: req.AcademicYear,
	})
	if err != nil {
		switch {
		case errors.Is(err, application.ErrRollNumberTaken):
			response.Error[any](c, http.StatusConflict, "Roll number already in use", nil)
		case errors.Is(err, application.ErrPRNTaken):
			response.Error[any](c, http.StatusConflict, "PRN already in use", nil)
		case errors.Is(err, application.ErrConflict):
			response.Error[any](c, http.StatusConflict, "Student already exists", nil)
		default:
			response.Error[any](c, http.StatusInternalServerError, "create failed", nil)
		}
		return
	}
	response.Success(c, http.StatusCreated, st, "student created", nil)
}

// Get GET /api/students/:id
func (h *StudentHandler) Get(c *gin.Context) {
	st, err := h.Students.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error[any](c, http.StatusNotFound, "Student not found", nil)
		return
	}
	response.Success(c, http.StatusOK, st, "student", nil)
}

// List GET /api/students
func (h *StudentHandler) List(c *gin.Context) {
	page, limit := pageParams(c)
	students, p, l, total, err := h.Students.List(c.Request.Context(), page, limit)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "list failed", nil)
		return
	}
	response.Success(c, http.StatusOK, students, "students", response.NewMeta(p, l, total))
}

// Update PUT /api/students/:id
func (h *StudentHandler) Update(c *gin.Context) {
	var req struct {
		RollNumber   string `json:"rollNumber"`
		PRN          string `json:"prn"`
		DepartmentID string `json:"departmentId"`
		Year         int    `json:"year"`
		Division     string `json:"division"`
		AcademicYear string `json:"academicYear"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	st, err := h.Students.Update(c.Request.Context(), c.Param("id"), application.UpdateStudentInput{
		RollNumber:   req.RollNumber,
		PRN:          req.PRN,
		DepartmentID: req.DepartmentID,
		Year:         req.Year,
		Division:     req.Division,
		AcademicYear: req.AcademicYear,
	})
	if err != nil {
		switch {
		case errors.Is(err, application.ErrStudentNotFound):
			response.Error[any](c, http.StatusNotFound, "Student not found", nil)
		case errors.Is(err, application.ErrRollNumberTaken):
			response.Error[any](c, http.StatusConflict, "Roll number already in use", nil)
		case errors.Is(err, application.ErrPRNTaken):
			response.Error[any](c, http.StatusConflict, "PRN already in use", nil)
		default:
			response.Error[any](c, http.StatusInternalServerError, "update failed", nil)
		}
		return
	}
	response.Success(c, http.StatusOK, st, "student updated", nil)
}

// Delete DELETE /api/students/:id
func (h *StudentHandler) Delete(c *gin.Context) {
	if err := h.Students.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, application.ErrStudentNotFound) {
			response.Error[any](c, http.StatusNotFound, "Student not found", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "delete failed", nil)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "student deleted", nil)
}
