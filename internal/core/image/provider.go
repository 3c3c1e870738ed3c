package image

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"recipe-finder/internal/infrastructure/config"
	"recipe-finder/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Provider resolves an image URL for a search query. Tier 1 is the Pexels
// search API when a key is configured; every failure there falls through to
// a deterministic placeholder URL, so lookups never fail.
type Provider struct {
	config *config.Config
	client *resty.Client
}

// NewProvider creates an image provider.
func NewProvider(cfg *config.Config) *Provider {
	client := resty.New().
		SetBaseURL(cfg.Image.PexelsBaseURL).
		SetTimeout(cfg.Image.Timeout)

	return &Provider{
		config: cfg,
		client: client,
	}
}

type searchResponse struct {
	Photos []struct {
		Src struct {
			Original string `json:"original"`
			Large    string `json:"large"`
			Medium   string `json:"medium"`
		} `json:"src"`
	} `json:"photos"`
}

// GetImageURL returns an image URL for the query. The seed keys the fallback
// so identical (query, seed) pairs yield byte-identical URLs.
func (p *Provider) GetImageURL(ctx context.Context, query, seed string) string {
	if p.config.Image.PexelsAPIKey != "" {
		if src, ok := p.searchPexels(ctx, query); ok {
			return src
		}
	}
	return p.fallbackURL(query, seed)
}

func (p *Provider) searchPexels(ctx context.Context, query string) (string, bool) {
	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("Authorization", p.config.Image.PexelsAPIKey).
		SetQueryParam("query", query).
		SetQueryParam("per_page", "1").
		Get("/v1/search")

	if err != nil {
		common.LogWarn("Pexels request failed, using fallback image",
			zap.Error(err),
			zap.String("query", query),
		)
		return "", false
	}
	if resp.IsError() {
		common.LogWarn("Pexels returned error status, using fallback image",
			zap.Int("status", resp.StatusCode()),
			zap.String("query", query),
		)
		return "", false
	}

	var result searchResponse
	if err := common.ParseJSONBytes(resp.Body(), &result); err != nil {
		common.LogWarn("Pexels response malformed, using fallback image",
			zap.Error(err),
			zap.String("query", query),
		)
		return "", false
	}

	if len(result.Photos) == 0 {
		return "", false
	}

	src := result.Photos[0].Src
	for _, u := range []string{src.Medium, src.Large, src.Original} {
		if u != "" {
			return u, true
		}
	}
	return "", false
}

// fallbackURL builds the deterministic tier-2 URL:
// <base>/<w>/<h>/<tags>?lock=<seed> with tags = "food,<query>".
func (p *Provider) fallbackURL(query, seed string) string {
	return fmt.Sprintf("%s/%d/%d/%s?lock=%s",
		p.config.Image.FallbackBaseURL,
		p.config.Image.Width,
		p.config.Image.Height,
		escapeComponent("food,"+query),
		escapeComponent(seed),
	)
}

// escapeComponent percent-encodes like JS encodeURIComponent: spaces become
// %20, not '+'.
func escapeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
