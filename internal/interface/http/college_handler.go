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

type CollegeHandler struct {
	Colleges *application.CollegeService
	Logger   *logrus.Logger
}

func NewCollegeHandler(colleges *application.CollegeService, logger *logrus.Logger) *CollegeHandler {
	return &CollegeHandler{Colleges: colleges, Logger: logger}
}

type collegeRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email" binding:"omitempty,email"`
	Website string `json:"website"`
}

// Create POST /api/colleges
func (h *CollegeHandler) Create(c *gin.Context) {
	var req collegeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if req.Name == "" {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", map[string]string{"name": "name is required"})
		return
	}

	col, err := h.Colleges.Create(c.Request.Context(), application.CollegeInput{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
		Email:   req.Email,
		Website: req.Website,
	})
	if err != nil {
		if errors.Is(err, application.ErrConflict) {
			response.Error[any](c, http.StatusConflict, "College already exists", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "create failed", nil)
		return
	}
	response.Success(c, http.StatusCreated, col, "college created", nil)
}

// Get GET /api/colleges/:id
func (h *CollegeHandler) Get(c *gin.Context) {
	col, err := h.Colleges.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error[any](c, http.StatusNotFound, "College not found", nil)
		return
	}
	response.Success(c, http.StatusOK, col, "college", nil)
}

// List GET /api/colleges
func (h *CollegeHandler) List(c *gin.Context) {
	page, limit := pageParams(c)
	colleges, p, l, total, err := h.Colleges.List(c.Request.Context(), page, limit)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "list failed", nil)
		return
	}
	response.Success(c, http.StatusOK, colleges, "colleges", response.NewMeta(p, l, total))
}

// Update PUT /api/colleges/:id
func (h *CollegeHandler) Update(c *gin.Context) {
	var req collegeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	col, err := h.Colleges.Update(c.Request.Context(), c.Param("id"), application.CollegeInput{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
		Email:   req.Email,
		Website: req.Website,
	})
	if err != nil {
		if errors.Is(err, application.ErrCollegeNotFound) {
			response.Error[any](c, http.StatusNotFound, "College not found", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "update failed", nil)
		return
	}
	response.Success(c, http.StatusOK, col, "college updated", nil)
}

// Delete DELETE /api/colleges/:id
func (h *CollegeHandler) Delete(c *gin.Context) {
	if err := h.Colleges.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, application.ErrCollegeNotFound) {
			response.Error[any](c, http.StatusNotFound, "College not found", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "delete failed", nil)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "college deleted", nil)
}
