package recipe

import (
	"context"
	"fmt"
	"strings"

	"recipe-finder/internal/core/ai/gemini"
	"recipe-finder/internal/infrastructure/config"
	"recipe-finder/internal/pkg/common"

	"go.uber.org/zap"
)

// DetailService turns a detail request into one normalized, image-enriched
// recipe.
type DetailService struct {
	generator gemini.Generator
	images    ImageSource
	config    *config.Config
}

// NewDetailService creates a new detail service.
func NewDetailService(generator gemini.Generator, images ImageSource, cfg *config.Config) *DetailService {
	return &DetailService{
		generator: generator,
		images:    images,
		config:    cfg,
	}
}

// GenerateDetail prompts the model for one full recipe and normalizes the
// result. A response without a usable "recipe" object yields (nil, nil); the
// handler renders that as recipe: null.
func (s *DetailService) GenerateDetail(ctx context.Context, req DetailRequest) (*RecipeDetail, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, common.NewValidationError("title is required")
	}

	raw, err := s.generator.GenerateText(ctx, detailPrompt(req))
	if err != nil {
		return nil, err
	}

	var doc map[string]interface{}
	if err := common.ParseModelJSON(raw, &doc); err != nil {
		return nil, err
	}

	m, ok := doc["recipe"].(map[string]interface{})
	if !ok {
		common.LogWarn("model returned no usable recipe object",
			zap.String("title", req.Title),
			zap.Int("response_length", len(raw)),
		)
		return nil, nil
	}

	id := common.Slugify(firstNonEmpty(asString(m["id"]), asString(m["title"])))
	if id == "" {
		id = firstNonEmpty(common.Slugify(req.Title), "recipe")
	}

	detail := &RecipeDetail{
		ID:               id,
		Title:            firstNonEmpty(asString(m["title"]), req.Title),
		Category:         firstNonEmpty(asString(m["category"]), req.CategoryID),
		Servings:         asPositiveInt(m["servings"], defaultServings),
		TotalTimeMinutes: asPositiveInt(m["totalTimeMinutes"], defaultTotalTimeMinutes),
		Ingredients:      asStringSlice(m["ingredients"]),
		Steps:            asStringSlice(m["steps"]),
		Tips:             asStringSlice(m["tips"]),
	}

	query := fmt.Sprintf("%s %s dish", detail.Title, s.config.Image.QuerySuffix)
	detail.ImageURL = s.images.GetImageURL(ctx, query, detail.ID)
	detail.ImageAlt = detail.Title

	return detail, nil
}
