package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	recipemodel "recipehub-backend/internal/domains/recipe/model"
	"recipehub-backend/internal/domains/relationship/model"
	"recipehub-backend/internal/domains/relationship/service"
	usermodel "recipehub-backend/internal/domains/user/model"
	"recipehub-backend/internal/shared/middleware"
	"recipehub-backend/internal/shared/response"
)

type RelationshipHandler struct {
	service service.ServiceInterface
}

func NewRelationshipHandler(svc service.ServiceInterface) *RelationshipHandler {
	return &RelationshipHandler{service: svc}
}

// AddFavorite - POST /api/v1/recipes/:id/favorite
func (h *RelationshipHandler) AddFavorite(c *gin.Context) {
	h.addRecipeRelation(c, h.service.AddFavorite)
}

// RemoveFavorite - DELETE /api/v1/recipes/:id/favorite
func (h *RelationshipHandler) RemoveFavorite(c *gin.Context) {
	h.removeRecipeRelation(c, h.service.RemoveFavorite)
}

// AddToCart - POST /api/v1/recipes/:id/shopping_cart
func (h *RelationshipHandler) AddToCart(c *gin.Context) {
	h.addRecipeRelation(c, h.service.AddToCart)
}

// RemoveFromCart - DELETE /api/v1/recipes/:id/shopping_cart
func (h *RelationshipHandler) RemoveFromCart(c *gin.Context) {
	h.removeRecipeRelation(c, h.service.RemoveFromCart)
}

type addFunc func(ctx context.Context, userID, recipeID uuid.UUID) (*recipemodel.Summary, error)

func (h *RelationshipHandler) addRecipeRelation(c *gin.Context, add addFunc) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}
	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid UUID format")
		return
	}

	summary, err := add(c.Request.Context(), userID, recipeID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, summary)
}

func (h *RelationshipHandler) removeRecipeRelation(c *gin.Context, remove func(ctx context.Context, userID, recipeID uuid.UUID) error) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}
	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid UUID format")
		return
	}

	if err := remove(c.Request.Context(), userID, recipeID); err != nil {
		h.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Subscribe - POST /api/v1/users/:id/subscribe
func (h *RelationshipHandler) Subscribe(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}
	followeeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid UUID format")
		return
	}

	followee, err := h.service.Subscribe(c.Request.Context(), userID, followeeID, recipesLimit(c))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, followee)
}

// Unsubscribe - DELETE /api/v1/users/:id/subscribe
func (h *RelationshipHandler) Unsubscribe(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}
	followeeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid UUID format")
		return
	}

	if err := h.service.Unsubscribe(c.Request.Context(), userID, followeeID); err != nil {
		h.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListSubscriptions - GET /api/v1/users/subscriptions
func (h *RelationshipHandler) ListSubscriptions(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	followees, total, err := h.service.ListSubscriptions(c.Request.Context(), userID, page, limit, recipesLimit(c))
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, followees, &response.Meta{
		Page:  page,
		Limit: limit,
		Total: total,
	})
}

// recipesLimit reads the optional recipes_limit query parameter capping
// the recipe previews embedded per followee. Absent or malformed values
// mean no cap.
func recipesLimit(c *gin.Context) int {
	n, err := strconv.Atoi(c.Query("recipes_limit"))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func (h *RelationshipHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrAlreadyExists):
		response.Conflict(c, err.Error())
	case errors.Is(err, model.ErrRelationNotFound),
		errors.Is(err, recipemodel.ErrRecipeNotFound),
		errors.Is(err, usermodel.ErrUserNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, model.ErrSelfSubscription):
		response.BadRequest(c, err.Error())
	default:
		response.InternalServerError(c, err.Error())
	}
}
