package container

import (
	"context"
	"fmt"
	"time"

	"recipehub-backend/internal/config"
	infraCache "recipehub-backend/internal/infrastructure/cache"
	"recipehub-backend/internal/infrastructure/database"
	"recipehub-backend/pkg/cache"
	"recipehub-backend/pkg/jwt"
	"recipehub-backend/pkg/logger"

	ingredientHandler "recipehub-backend/internal/domains/ingredient/handler"
	ingredientRepo "recipehub-backend/internal/domains/ingredient/repository"
	ingredientService "recipehub-backend/internal/domains/ingredient/service"
	recipeHandler "recipehub-backend/internal/domains/recipe/handler"
	recipeRepo "recipehub-backend/internal/domains/recipe/repository"
	recipeService "recipehub-backend/internal/domains/recipe/service"
	relationshipHandler "recipehub-backend/internal/domains/relationship/handler"
	relationshipRepo "recipehub-backend/internal/domains/relationship/repository"
	relationshipService "recipehub-backend/internal/domains/relationship/service"
	shoppinglistHandler "recipehub-backend/internal/domains/shoppinglist/handler"
	shoppinglistRepo "recipehub-backend/internal/domains/shoppinglist/repository"
	shoppinglistService "recipehub-backend/internal/domains/shoppinglist/service"
	shortlinkHandler "recipehub-backend/internal/domains/shortlink/handler"
	shortlinkService "recipehub-backend/internal/domains/shortlink/service"
	tagHandler "recipehub-backend/internal/domains/tag/handler"
	tagRepo "recipehub-backend/internal/domains/tag/repository"
	tagService "recipehub-backend/internal/domains/tag/service"
	userHandler "recipehub-backend/internal/domains/user/handler"
	userRepo "recipehub-backend/internal/domains/user/repository"
	userService "recipehub-backend/internal/domains/user/service"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton wired once at startup, in layer order: config, infrastructure,
// repositories, services, handlers.
type Container struct {
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager

	UserRepo         userRepo.UserRepository
	TagRepo          tagRepo.TagRepository
	IngredientRepo   ingredientRepo.IngredientRepository
	RecipeRepo       recipeRepo.RecipeRepository
	RelationshipRepo relationshipRepo.RelationshipRepository
	ShoppingListRepo shoppinglistRepo.ShoppingListRepository

	UserService         userService.ServiceInterface
	TagService          tagService.ServiceInterface
	IngredientService   ingredientService.ServiceInterface
	RecipeService       recipeService.ServiceInterface
	RelationshipService relationshipService.ServiceInterface
	ShoppingListService shoppinglistService.ServiceInterface
	ShortlinkService    shortlinkService.ServiceInterface

	UserHandler         *userHandler.UserHandler
	TagHandler          *tagHandler.TagHandler
	IngredientHandler   *ingredientHandler.IngredientHandler
	RecipeHandler       *recipeHandler.RecipeHandler
	RelationshipHandler *relationshipHandler.RelationshipHandler
	ShoppingListHandler *shoppinglistHandler.ShoppingListHandler
	ShortlinkHandler    *shortlinkHandler.ShortlinkHandler
}

func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	db := database.NewPostgresDB(&cfg.Database)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(ctx); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db
	logger.Info().Msg("database connected")

	redisCache := infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(ctx); err != nil {
			// The resolver cache is an optimization, not a dependency;
			// start anyway and let reads fall through to Postgres.
			logger.Error().Err(err).Msg("redis connection failed, continuing without warm cache")
		} else {
			logger.Info().Msg("redis connected")
		}
	}
	c.Cache = redisCache

	c.JWTManager = jwt.NewManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
		time.Duration(cfg.JWT.RefreshTokenExpiry)*time.Hour,
	)

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	logger.Info().Msg("container initialized")
	return c, nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.UserRepo = userRepo.NewPostgresUserRepository(pool)
	c.TagRepo = tagRepo.NewPostgresTagRepository(pool)
	c.IngredientRepo = ingredientRepo.NewPostgresIngredientRepository(pool)
	c.RecipeRepo = recipeRepo.NewPostgresRecipeRepository(pool)
	c.RelationshipRepo = relationshipRepo.NewPostgresRelationshipRepository(pool)
	c.ShoppingListRepo = shoppinglistRepo.NewPostgresShoppingListRepository(pool)
}

func (c *Container) initServices() {
	// The relationship repository doubles as the user domain's
	// subscription checker.
	c.UserService = userService.NewUserService(c.UserRepo, c.RelationshipRepo, c.JWTManager)
	c.TagService = tagService.NewTagService(c.TagRepo)
	c.IngredientService = ingredientService.NewIngredientService(c.IngredientRepo)
	c.ShortlinkService = shortlinkService.NewShortlinkService(c.RecipeRepo, c.Cache, c.Config.App.BaseURL)
	// The shortlink service is both the recipe service's code minter and
	// its cache invalidator.
	c.RecipeService = recipeService.NewRecipeService(c.RecipeRepo, c.TagRepo, c.IngredientRepo, c.ShortlinkService, c.ShortlinkService)
	c.RelationshipService = relationshipService.NewRelationshipService(c.RelationshipRepo, c.RecipeRepo, c.UserRepo)
	c.ShoppingListService = shoppinglistService.NewShoppingListService(c.ShoppingListRepo)
}

func (c *Container) initHandlers() {
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.TagHandler = tagHandler.NewTagHandler(c.TagService)
	c.IngredientHandler = ingredientHandler.NewIngredientHandler(c.IngredientService)
	c.RecipeHandler = recipeHandler.NewRecipeHandler(c.RecipeService)
	c.RelationshipHandler = relationshipHandler.NewRelationshipHandler(c.RelationshipService)
	c.ShoppingListHandler = shoppinglistHandler.NewShoppingListHandler(c.ShoppingListService)
	c.ShortlinkHandler = shortlinkHandler.NewShortlinkHandler(c.ShortlinkService)
}

// Cleanup releases infrastructure resources during graceful shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			logger.Error().Err(err).Msg("failed to close redis")
		}
	}
	logger.Info().Msg("container cleanup completed")
}
