package gemini

import (
	"context"
	"fmt"
	"strings"

	"recipe-finder/internal/infrastructure/config"
	"recipe-finder/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Generator produces raw model text for a prompt. Services depend on this
// interface so tests can substitute a fake model.
type Generator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Client calls the Gemini generateContent endpoint. It is stateless and safe
// for concurrent use.
type Client struct {
	config *config.Config
	client *resty.Client
}

// NewClient creates a Gemini client. The API key is sent as a query
// parameter; resty URL-encodes it.
func NewClient(cfg *config.Config) *Client {
	client := resty.New().
		SetBaseURL(cfg.Gemini.BaseURL).
		SetTimeout(cfg.Gemini.Timeout).
		SetHeader("Content-Type", "application/json")

	return &Client{
		config: cfg,
		client: client,
	}
}

type generateContentRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Role  string `json:"role"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GenerateText sends the prompt and returns the concatenated text of the
// first candidate's parts. Missing parts contribute empty strings; an
// entirely missing path yields an empty string.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	body := generateContentRequest{
		Contents: []content{
			{Role: "user", Parts: []part{{Text: prompt}}},
		},
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("key", c.config.Gemini.APIKey).
		SetBody(body).
		Post(fmt.Sprintf("/v1beta/models/%s:generateContent", c.config.Gemini.Model))

	if err != nil {
		return "", common.NewUpstreamTransportError("gemini", err)
	}

	if resp.IsError() {
		common.LogError("Gemini API error",
			zap.Int("status", resp.StatusCode()),
			zap.String("body", resp.String()),
		)
		return "", common.NewUpstreamStatusError("gemini", resp.StatusCode(), resp.String())
	}

	var result generateContentResponse
	if err := common.ParseJSONBytes(resp.Body(), &result); err != nil {
		return "", common.NewUpstreamTransportError("gemini", fmt.Errorf("malformed response envelope: %w", err))
	}

	if len(result.Candidates) == 0 {
		return "", nil
	}

	var sb strings.Builder
	for _, p := range result.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String(), nil
}
