package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"recipehub-backend/internal/domains/ingredient/model"
	"recipehub-backend/internal/domains/ingredient/service"
	"recipehub-backend/internal/shared/response"
)

type IngredientHandler struct {
	service service.ServiceInterface
}

func NewIngredientHandler(svc service.ServiceInterface) *IngredientHandler {
	return &IngredientHandler{service: svc}
}

// Search - GET /api/v1/ingredients?name=flo
func (h *IngredientHandler) Search(c *gin.Context) {
	ingredients, err := h.service.Search(c.Request.Context(), c.Query("name"))
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.Success(c, http.StatusOK, ingredients)
}

// GetByID - GET /api/v1/ingredients/:id
func (h *IngredientHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid UUID format")
		return
	}

	ingredient, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == model.ErrIngredientNotFound {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalServerError(c, err.Error())
		return
	}

	response.Success(c, http.StatusOK, ingredient)
}
