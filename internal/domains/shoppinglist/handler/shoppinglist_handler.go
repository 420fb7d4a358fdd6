package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recipehub-backend/internal/domains/shoppinglist/service"
	"recipehub-backend/internal/shared/middleware"
	"recipehub-backend/internal/shared/response"
)

type ShoppingListHandler struct {
	service service.ServiceInterface
}

func NewShoppingListHandler(svc service.ServiceInterface) *ShoppingListHandler {
	return &ShoppingListHandler{service: svc}
}

// Get - GET /api/v1/shopping_cart
func (h *ShoppingListHandler) Get(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	items, err := h.service.BuildList(c.Request.Context(), userID)
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.Success(c, http.StatusOK, items)
}

// Download - GET /api/v1/recipes/download_shopping_cart
func (h *ShoppingListHandler) Download(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	items, err := h.service.BuildList(c.Request.Context(), userID)
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	c.Header("Content-Disposition", `attachment; filename="shopping_list.txt"`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(h.service.RenderText(items)))
}
