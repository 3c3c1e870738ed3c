package api

import (
	"time"

	"recipe-finder/internal/api/handlers"
	healthHandler "recipe-finder/internal/api/handlers/health"
	recipeHandler "recipe-finder/internal/api/handlers/recipe"
	"recipe-finder/internal/api/middleware"
	"recipe-finder/internal/core/ai/gemini"
	"recipe-finder/internal/core/image"
	recipeService "recipe-finder/internal/core/recipe"
	"recipe-finder/internal/infrastructure/config"
	"recipe-finder/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SetupRouter wires services, middleware and routes into a gin engine.
func SetupRouter(cfg *config.Config) *gin.Engine {
	common.LogInfo("starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(requestid.New())

	// Dev-friendly CORS; production policy is the operator's choice.
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(middleware.BodySizeLimit(cfg.Server.MaxBodySize))

	generator := gemini.NewClient(cfg)
	images := image.NewProvider(cfg)

	ideaSvc := recipeService.NewIdeaService(generator, images, cfg)
	detailSvc := recipeService.NewDetailService(generator, images, cfg)

	common.LogInfo("services initialized",
		zap.String("model", cfg.Gemini.Model),
		zap.Bool("pexels_enabled", cfg.Image.PexelsAPIKey != ""),
		zap.Duration("gemini_timeout", cfg.Gemini.Timeout),
		zap.Duration("image_timeout", cfg.Image.Timeout),
	)

	recipes := recipeHandler.NewHandler(ideaSvc, detailSvc)
	legacy := handlers.NewAIHandler(generator)

	api := router.Group("/api")
	{
		api.GET("/health", healthHandler.HealthCheck)
		api.GET("/categories", recipes.HandleCategories)
		api.POST("/ideas", recipes.HandleIdeas)
		api.POST("/recipe", recipes.HandleRecipeDetail)

		// Kept for clients of the pre-structured API.
		api.POST("/gemini", legacy.HandleGenerate)
	}

	common.LogInfo("router setup completed",
		zap.Int("port", cfg.Server.Port),
		zap.Int64("max_body_size", cfg.Server.MaxBodySize),
	)

	return router
}
