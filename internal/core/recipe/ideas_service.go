package recipe

import (
	"context"
	"fmt"

	"recipe-finder/internal/core/ai/gemini"
	"recipe-finder/internal/infrastructure/config"
	"recipe-finder/internal/pkg/common"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// IdeaService turns an ideas request into a normalized, image-enriched list
// of recipe ideas.
type IdeaService struct {
	generator gemini.Generator
	images    ImageSource
	config    *config.Config
}

// NewIdeaService creates a new idea service.
func NewIdeaService(generator gemini.Generator, images ImageSource, cfg *config.Config) *IdeaService {
	return &IdeaService{
		generator: generator,
		images:    images,
		config:    cfg,
	}
}

// GenerateIdeas prompts the model, repairs and normalizes its JSON, then
// acquires an image URL per idea concurrently while preserving the model's
// order. A response without a usable "ideas" array yields an empty list, not
// an error.
func (s *IdeaService) GenerateIdeas(ctx context.Context, req IdeasRequest) ([]Idea, error) {
	raw, err := s.generator.GenerateText(ctx, ideasPrompt(req))
	if err != nil {
		return nil, err
	}

	var doc map[string]interface{}
	if err := common.ParseModelJSON(raw, &doc); err != nil {
		return nil, err
	}

	entries, ok := doc["ideas"].([]interface{})
	if !ok {
		common.LogWarn("model returned no usable ideas array",
			zap.Int("response_length", len(raw)),
		)
		return []Idea{}, nil
	}

	if len(entries) > maxIdeas {
		entries = entries[:maxIdeas]
	}

	ideas := make([]Idea, 0, len(entries))
	for _, entry := range entries {
		m, _ := entry.(map[string]interface{})
		id := common.Slugify(firstNonEmpty(asString(m["id"]), asString(m["title"]), defaultIdeaID))
		if id == "" {
			id = defaultIdeaID
		}
		ideas = append(ideas, Idea{
			ID:         id,
			Title:      firstNonEmpty(asString(m["title"]), defaultIdeaTitle),
			Blurb:      asString(m["blurb"]),
			CategoryID: firstNonEmpty(asString(m["categoryId"]), req.CategoryID),
		})
	}

	// Fan out image lookups; writes are by index so the response keeps the
	// model's order regardless of completion order.
	grp, grpCtx := errgroup.WithContext(ctx)
	for i := range ideas {
		i := i
		grp.Go(func() error {
			query := fmt.Sprintf("%s %s dish", ideas[i].Title, s.config.Image.QuerySuffix)
			ideas[i].ImageURL = s.images.GetImageURL(grpCtx, query, ideas[i].ID)
			ideas[i].ImageAlt = ideas[i].Title
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	return ideas, nil
}
