package recipe

import "context"

// ImageSource resolves an image URL for a (query, seed) pair. Lookups never
// fail; a deterministic fallback URL is returned on any provider error.
type ImageSource interface {
	GetImageURL(ctx context.Context, query, seed string) string
}

const (
	// maxIdeas caps an ideas response regardless of how many entries the
	// model returns.
	maxIdeas = 10

	defaultIdeaID    = "recipe-idea"
	defaultIdeaTitle = "Recipe Idea"

	defaultServings         = 2
	defaultTotalTimeMinutes = 30
)
