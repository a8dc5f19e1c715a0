package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/trenchhq/trench-api/internal/application"
	"github.com/trenchhq/trench-api/internal/interface/middleware"
	"github.com/trenchhq/trench-api/pkg/response"
	"github.com/trenchhq/trench-api/pkg/validation"
)

type UserHandler struct {
	Users  *application.UserService
	Auth   *application.AuthService
	Logger *logrus.Logger
}

func NewUserHandler(users *application.UserService, auth *application.AuthService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Users: users, Auth: auth, Logger: logger}
}

func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	return page, limit
}

// GetProfile GET /api/users/profile
func (h *UserHandler) GetProfile(c *gin.Context) {
	id := middleware.IdentityFrom(c)
	u, err := h.Auth.GetProfile(c.Request.Context(), id.UserID)
	if err != nil {
		response.Error[any](c, http.StatusNotFound, "User not found", nil)
		return
	}
	response.Success(c, http.StatusOK, u, "profile", nil)
}

// UpdateProfile PUT /api/users/profile
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req struct {
		Name  string `json:"name"`
		Email string `json:"email" binding:"omitempty,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	id := middleware.IdentityFrom(c)
	u, err := h.Users.UpdateProfile(c.Request.Context(), id.UserID, application.UpdateProfileInput{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		switch {
		case errors.Is(err, application.ErrEmailTaken):
			response.Error[any](c, http.StatusConflict, "Email already registered", nil)
		case errors.Is(err, application.ErrUserNotFound):
			response.Error[any](c, http.StatusNotFound, "User not found", nil)
		default:
			response.Error[any](c, http.StatusInternalServerError, "update failed", nil)
		}
		return
	}
	response.Success(c, http.StatusOK, u, "profile updated", nil)
}

// DeleteProfile DELETE /api/users/profile
func (h *UserHandler) DeleteProfile(c *gin.Context) {
	id := middleware.IdentityFrom(c)
	if err := h.Users.DeleteUser(c.Request.Context(), id.UserID); err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.Error[any](c, http.StatusNotFound, "User not found", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "delete failed", nil)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "account deleted", nil)
}

// Restore POST /api/users/:id/restore
func (h *UserHandler) Restore(c *gin.Context) {
	userID := c.Param("id")
	if err := h.Users.RestoreUser(c.Request.Context(), userID); err != nil {
		if errors.Is(err, application.ErrUserNotDeleted) {
			response.Error[any](c, http.StatusBadRequest, "User is not deleted", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "restore failed", nil)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "user restored", nil)
}

// List GET /api/users
func (h *UserHandler) List(c *gin.Context) {
	page, limit := pageParams(c)
	includeDeleted := c.Query("includeDeleted") == "true"

	users, p, l, total, err := h.Users.ListUsers(c.Request.Context(), page, limit, includeDeleted)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "list failed", nil)
		return
	}
	response.Success(c, http.StatusOK, users, "users", response.NewMeta(p, l, total))
}
