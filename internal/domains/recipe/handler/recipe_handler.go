package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"recipehub-backend/internal/domains/recipe/model"
	"recipehub-backend/internal/domains/recipe/service"
	"recipehub-backend/internal/shared/middleware"
	"recipehub-backend/internal/shared/response"
)

type RecipeHandler struct {
	service service.ServiceInterface
}

func NewRecipeHandler(svc service.ServiceInterface) *RecipeHandler {
	return &RecipeHandler{service: svc}
}

// Create - POST /api/v1/recipes
func (h *RecipeHandler) Create(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req model.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	recipe, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, recipe.ToResponse())
}

// List - GET /api/v1/recipes
//
// Query parameters: tags (repeatable slug), author, is_favorited,
// is_in_shopping_cart, page, limit. The viewer-bound filters are ignored
// for anonymous requests, leaving the listing unfiltered.
func (h *RecipeHandler) List(c *gin.Context) {
	viewerID, _ := middleware.UserID(c)

	criteria := model.ListCriteria{
		TagSlugs: c.QueryArray("tags"),
	}

	if author := c.Query("author"); author != "" {
		authorID, err := uuid.Parse(author)
		if err != nil {
			response.BadRequest(c, "invalid author ID")
			return
		}
		criteria.AuthorID = authorID
	}
	if c.Query("is_favorited") == "1" {
		criteria.FavoritedBy = viewerID
	}
	if c.Query("is_in_shopping_cart") == "1" {
		criteria.InCartOf = viewerID
	}
	criteria.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	criteria.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))

	recipes, total, err := h.service.List(c.Request.Context(), viewerID, criteria)
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	results := make([]model.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		results = append(results, recipe.ToResponse())
	}

	response.SuccessWithMeta(c, http.StatusOK, results, &response.Meta{
		Page:  criteria.Page,
		Limit: criteria.Limit,
		Total: total,
	})
}

// GetByID - GET /api/v1/recipes/:id
func (h *RecipeHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid UUID format")
		return
	}
	viewerID, _ := middleware.UserID(c)

	recipe, err := h.service.GetByID(c.Request.Context(), viewerID, id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, recipe.ToResponse())
}

// Update - PUT/PATCH /api/v1/recipes/:id
//
// Both methods take the full payload; ingredient lines and tags are
// replaced wholesale.
func (h *RecipeHandler) Update(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid UUID format")
		return
	}

	var req model.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	recipe, err := h.service.Update(c.Request.Context(), userID, id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, recipe.ToResponse())
}

// Delete - DELETE /api/v1/recipes/:id
func (h *RecipeHandler) Delete(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid UUID format")
		return
	}

	isAdmin := c.GetString("userRole") == "admin"
	if err := h.service.Delete(c.Request.Context(), userID, isAdmin, id); err != nil {
		h.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *RecipeHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrRecipeNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, model.ErrRecipeNameTaken):
		response.Conflict(c, err.Error())
	case errors.Is(err, model.ErrNotRecipeAuthor):
		response.Forbidden(c, err.Error())
	case errors.Is(err, model.ErrUnknownIngredient), errors.Is(err, model.ErrUnknownTag):
		response.BadRequest(c, err.Error())
	default:
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid recipe payload", verrs)
			return
		}
		response.InternalServerError(c, err.Error())
	}
}
