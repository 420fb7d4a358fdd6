package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recipehub-backend/internal/shared/middleware"
	"recipehub-backend/internal/shared/response"
	"recipehub-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	// Short links live at the root so published URLs stay short.
	router.GET("/s/:code", c.ShortlinkHandler.Redirect)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(v1, c)
		setupUserRoutes(v1, c)
		setupTagRoutes(v1, c)
		setupIngredientRoutes(v1, c)
		setupRecipeRoutes(v1, c)
		setupShoppingCartRoutes(v1, c)
		setupAdminRoutes(v1, c)
	}

	return router
}

func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.UserHandler.Register)
		auth.POST("/login", c.UserHandler.Login)
	}
}

func setupUserRoutes(v1 *gin.RouterGroup, c *container.Container) {
	authRequired := middleware.AuthMiddleware(c.Config.JWT.Secret)
	authOptional := middleware.OptionalAuthMiddleware(c.Config.JWT.Secret)

	users := v1.Group("/users")
	{
		users.GET("", authOptional, c.UserHandler.List)
		users.GET("/me", authRequired, c.UserHandler.GetProfile)
		users.PUT("/me/avatar", authRequired, c.UserHandler.SetAvatar)
		users.DELETE("/me/avatar", authRequired, c.UserHandler.DeleteAvatar)
		users.PUT("/change-password", authRequired, c.UserHandler.ChangePassword)
		users.GET("/subscriptions", authRequired, c.RelationshipHandler.ListSubscriptions)
		users.GET("/:id", authOptional, c.UserHandler.GetByID)
		users.POST("/:id/subscribe", authRequired, c.RelationshipHandler.Subscribe)
		users.DELETE("/:id/subscribe", authRequired, c.RelationshipHandler.Unsubscribe)
	}
}

func setupTagRoutes(v1 *gin.RouterGroup, c *container.Container) {
	tags := v1.Group("/tags")
	{
		tags.GET("", c.TagHandler.List)
		tags.GET("/:id", c.TagHandler.GetByID)
	}
}

func setupAdminRoutes(v1 *gin.RouterGroup, c *container.Container) {
	admin := v1.Group("/admin")
	admin.Use(middleware.AuthMiddleware(c.Config.JWT.Secret), middleware.AdminMiddleware())
	{
		admin.POST("/tags", c.TagHandler.Create)
	}
}

func setupIngredientRoutes(v1 *gin.RouterGroup, c *container.Container) {
	ingredients := v1.Group("/ingredients")
	{
		ingredients.GET("", c.IngredientHandler.Search)
		ingredients.GET("/:id", c.IngredientHandler.GetByID)
	}
}

func setupRecipeRoutes(v1 *gin.RouterGroup, c *container.Container) {
	authRequired := middleware.AuthMiddleware(c.Config.JWT.Secret)
	authOptional := middleware.OptionalAuthMiddleware(c.Config.JWT.Secret)

	recipes := v1.Group("/recipes")
	{
		recipes.GET("", authOptional, c.RecipeHandler.List)
		recipes.POST("", authRequired, c.RecipeHandler.Create)
		recipes.GET("/:id", authOptional, c.RecipeHandler.GetByID)
		recipes.PUT("/:id", authRequired, c.RecipeHandler.Update)
		recipes.PATCH("/:id", authRequired, c.RecipeHandler.Update)
		recipes.DELETE("/:id", authRequired, c.RecipeHandler.Delete)
		recipes.GET("/:id/get-link", c.ShortlinkHandler.GetLink)
		recipes.GET("/download_shopping_cart", authRequired, c.ShoppingListHandler.Download)

		recipes.POST("/:id/favorite", authRequired, c.RelationshipHandler.AddFavorite)
		recipes.DELETE("/:id/favorite", authRequired, c.RelationshipHandler.RemoveFavorite)
		recipes.POST("/:id/shopping_cart", authRequired, c.RelationshipHandler.AddToCart)
		recipes.DELETE("/:id/shopping_cart", authRequired, c.RelationshipHandler.RemoveFromCart)
	}
}

func setupShoppingCartRoutes(v1 *gin.RouterGroup, c *container.Container) {
	authRequired := middleware.AuthMiddleware(c.Config.JWT.Secret)

	cart := v1.Group("/shopping_cart")
	cart.Use(authRequired)
	{
		cart.GET("", c.ShoppingListHandler.Get)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := gin.H{
			"status":  "ok",
			"name":    c.Config.App.Name,
			"version": c.Config.App.Version,
		}

		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			status["status"] = "degraded"
			response.ErrorWithDetails(ctx, http.StatusServiceUnavailable, "SERVICE_DEGRADED", err.Error(), status)
			return
		}

		response.Success(ctx, http.StatusOK, status)
	}
}
