package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"recipehub-backend/internal/domains/tag/model"
	"recipehub-backend/internal/domains/tag/service"
	"recipehub-backend/internal/shared/response"
)

type TagHandler struct {
	service service.ServiceInterface
}

func NewTagHandler(svc service.ServiceInterface) *TagHandler {
	return &TagHandler{service: svc}
}

// Create - POST /api/v1/admin/tags (admin only)
func (h *TagHandler) Create(c *gin.Context) {
	var req model.CreateTagRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	tag, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if err == model.ErrTagAlreadyExists {
			response.Conflict(c, err.Error())
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, http.StatusCreated, tag)
}

// List - GET /api/v1/tags
func (h *TagHandler) List(c *gin.Context) {
	tags, err := h.service.List(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.Success(c, http.StatusOK, tags)
}

// GetByID - GET /api/v1/tags/:id
func (h *TagHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid UUID format")
		return
	}

	tag, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == model.ErrTagNotFound {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalServerError(c, err.Error())
		return
	}

	response.Success(c, http.StatusOK, tag)
}
