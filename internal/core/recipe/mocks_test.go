package recipe

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"recipe-finder/internal/infrastructure/config"
)

// fakeGenerator returns a canned model response and counts calls.
type fakeGenerator struct {
	response string
	err      error
	calls    atomic.Int32
	prompts  []string
}

func (f *fakeGenerator) GenerateText(_ context.Context, prompt string) (string, error) {
	f.calls.Add(1)
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

// stubImages resolves every lookup to a URL derived from query and seed, so
// tests can assert on what was requested.
type stubImages struct{}

func (stubImages) GetImageURL(_ context.Context, query, seed string) string {
	return fmt.Sprintf("https://img.test/%s?lock=%s", query, seed)
}

func testConfig() *config.Config {
	return &config.Config{
		Image: config.ImageConfig{
			FallbackBaseURL: "https://loremflickr.com",
			Width:           640,
			Height:          420,
			QuerySuffix:     "indian paneer",
			Timeout:         5 * time.Second,
		},
	}
}
