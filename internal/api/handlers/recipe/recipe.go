package recipe

import (
	"errors"
	"io"
	"net/http"

	recipeService "recipe-finder/internal/core/recipe"
	"recipe-finder/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handler serves the recipe endpoints.
type Handler struct {
	ideas   *recipeService.IdeaService
	details *recipeService.DetailService
}

// NewHandler creates a new recipe handler.
func NewHandler(ideas *recipeService.IdeaService, details *recipeService.DetailService) *Handler {
	return &Handler{
		ideas:   ideas,
		details: details,
	}
}

// HandleIdeas generates 5-10 recipe ideas from a query, a category and/or an
// ingredient list. It always answers 200 with an ideas array on success,
// even when the model produced nothing usable.
func (h *Handler) HandleIdeas(c *gin.Context) {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.New().String()
		c.Header("X-Request-ID", requestID)
	}

	var req recipeService.IdeasRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		common.LogError("invalid ideas request",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	common.LogInfo("processing ideas request",
		zap.String("request_id", requestID),
		zap.String("query", req.Query),
		zap.String("category_id", req.CategoryID),
		zap.Strings("ingredients", req.Ingredients),
	)

	ideas, err := h.ideas.GenerateIdeas(c.Request.Context(), req)
	if err != nil {
		common.LogError("ideas generation failed",
			zap.Error(err),
			zap.String("request_id", requestID),
			zap.String("query", req.Query),
			zap.String("category_id", req.CategoryID),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate ideas"})
		return
	}

	common.LogInfo("ideas generated",
		zap.String("request_id", requestID),
		zap.Int("count", len(ideas)),
	)

	c.JSON(http.StatusOK, gin.H{"ideas": ideas})
}

// HandleRecipeDetail generates one full recipe for a required title.
func (h *Handler) HandleRecipeDetail(c *gin.Context) {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.New().String()
		c.Header("X-Request-ID", requestID)
	}

	var req recipeService.DetailRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		common.LogError("invalid recipe detail request",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	common.LogInfo("processing recipe detail request",
		zap.String("request_id", requestID),
		zap.String("title", req.Title),
		zap.String("category_id", req.CategoryID),
	)

	detail, err := h.details.GenerateDetail(c.Request.Context(), req)
	if err != nil {
		if common.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		common.LogError("recipe detail generation failed",
			zap.Error(err),
			zap.String("request_id", requestID),
			zap.String("title", req.Title),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate recipe detail"})
		return
	}

	common.LogInfo("recipe detail generated",
		zap.String("request_id", requestID),
		zap.String("title", req.Title),
		zap.Bool("found", detail != nil),
	)

	c.JSON(http.StatusOK, gin.H{"recipe": detail})
}

// HandleCategories serves the static category catalog.
func (h *Handler) HandleCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": recipeService.Categories})
}
