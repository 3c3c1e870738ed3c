package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorKinds(t *testing.T) {
	validation := NewValidationError("title is required")
	upstream := NewUpstreamStatusError("gemini", 503, "overloaded")
	parse := NewParseError(errors.New("unexpected token"))

	assert.True(t, IsValidationError(validation))
	assert.False(t, IsValidationError(upstream))

	assert.True(t, IsUpstreamError(upstream))
	assert.False(t, IsUpstreamError(parse))

	assert.True(t, IsParseError(parse))
	assert.False(t, IsParseError(validation))

	assert.Equal(t, "title is required", validation.Error())
}

func TestUpstreamErrorCarriesStatusAndBody(t *testing.T) {
	err := NewUpstreamStatusError("gemini", 429, "quota exceeded")

	ue, ok := AsUpstreamError(err)
	require.True(t, ok)
	assert.Equal(t, 429, ue.Status)
	assert.Equal(t, "quota exceeded", ue.Body)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestErrorKindsSurviveWrapping(t *testing.T) {
	wrapped := fmt.Errorf("generating ideas: %w", NewUpstreamTransportError("gemini", errors.New("dial tcp: refused")))

	assert.True(t, IsUpstreamError(wrapped))

	ue, ok := AsUpstreamError(wrapped)
	require.True(t, ok)
	assert.Equal(t, "gemini", ue.Service)
}
