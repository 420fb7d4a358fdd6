package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"recipehub-backend/internal/domains/user/model"
	"recipehub-backend/internal/domains/user/service"
	"recipehub-backend/internal/shared/middleware"
	"recipehub-backend/internal/shared/response"
)

type UserHandler struct {
	service service.ServiceInterface
}

func NewUserHandler(svc service.ServiceInterface) *UserHandler {
	return &UserHandler{service: svc}
}

// Register - POST /api/v1/auth/register
func (h *UserHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		switch err {
		case model.ErrEmailAlreadyExists, model.ErrUsernameAlreadyExists:
			response.Conflict(c, err.Error())
		default:
			response.BadRequest(c, err.Error())
		}
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

// Login - POST /api/v1/auth/login
func (h *UserHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if err == model.ErrInvalidCredentials {
			response.Unauthorized(c, err.Error())
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// GetProfile - GET /api/v1/users/me
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	resp, err := h.service.GetProfile(c.Request.Context(), userID, userID)
	if err != nil {
		if err == model.ErrUserNotFound {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalServerError(c, err.Error())
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// GetByID - GET /api/v1/users/:id
func (h *UserHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid UUID format")
		return
	}

	viewerID, _ := middleware.UserID(c)

	resp, err := h.service.GetProfile(c.Request.Context(), viewerID, id)
	if err != nil {
		if err == model.ErrUserNotFound {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalServerError(c, err.Error())
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// List - GET /api/v1/users?page=1&limit=10
func (h *UserHandler) List(c *gin.Context) {
	page, limit := pagination(c)
	viewerID, _ := middleware.UserID(c)

	users, total, err := h.service.List(c.Request.Context(), viewerID, page, limit)
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, users, &response.Meta{
		Page:  page,
		Limit: limit,
		Total: total,
	})
}

// ChangePassword - PUT /api/v1/users/change-password
func (h *UserHandler) ChangePassword(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	var req model.ChangePasswordRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), userID, req); err != nil {
		switch err {
		case model.ErrPasswordMismatch, model.ErrSamePassword:
			response.BadRequest(c, err.Error())
		case model.ErrUserNotFound:
			response.NotFound(c, err.Error())
		default:
			response.InternalServerError(c, err.Error())
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// SetAvatar - PUT /api/v1/users/me/avatar
func (h *UserHandler) SetAvatar(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	var req model.SetAvatarRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.SetAvatar(c.Request.Context(), userID, req)
	if err != nil {
		if err == model.ErrUserNotFound {
			response.NotFound(c, err.Error())
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// DeleteAvatar - DELETE /api/v1/users/me/avatar
func (h *UserHandler) DeleteAvatar(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	if err := h.service.DeleteAvatar(c.Request.Context(), userID); err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	c.Status(http.StatusNoContent)
}

func pagination(c *gin.Context) (page, limit int) {
	page = 1
	if p, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil && p > 0 {
		page = p
	}

	limit = 10
	if l, err := strconv.Atoi(c.DefaultQuery("limit", "10")); err == nil && l > 0 {
		if l > 100 {
			l = 100
		}
		limit = l
	}
	return page, limit
}
