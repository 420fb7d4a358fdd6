package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	recipemodel "recipehub-backend/internal/domains/recipe/model"
	"recipehub-backend/internal/domains/shortlink/model"
	"recipehub-backend/internal/domains/shortlink/service"
	"recipehub-backend/internal/shared/response"
)

type ShortlinkHandler struct {
	service service.ServiceInterface
}

func NewShortlinkHandler(svc service.ServiceInterface) *ShortlinkHandler {
	return &ShortlinkHandler{service: svc}
}

// GetLink - GET /api/v1/recipes/:id/get-link
func (h *ShortlinkHandler) GetLink(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid UUID format")
		return
	}

	link, err := h.service.GetLink(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, recipemodel.ErrRecipeNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalServerError(c, err.Error())
		return
	}

	response.Success(c, http.StatusOK, model.LinkResponse{ShortLink: link})
}

// Redirect - GET /s/:code
//
// Sends the browser to the recipe page. 302 rather than 301 so a deleted
// and re-minted code is never pinned by browser caches.
func (h *ShortlinkHandler) Redirect(c *gin.Context) {
	code := c.Param("code")

	id, err := h.service.Resolve(c.Request.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrInvalidCode):
			response.BadRequest(c, err.Error())
		case errors.Is(err, recipemodel.ErrRecipeNotFound):
			response.NotFound(c, "short link not found")
		default:
			response.InternalServerError(c, err.Error())
		}
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/recipes/%s", id))
}
