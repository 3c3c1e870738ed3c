package handlers

import (
	"net/http"
	"strings"

	"recipe-finder/internal/core/ai/gemini"
	"recipe-finder/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// legacyInstruction is the fixed system prompt of the original plain-text
// endpoint, kept for clients that predate the structured API.
const legacyInstruction = `You are Recipe Finder+. Given a list of ingredients, return 5 concise recipe ideas.
Number them 1-5 and keep each to a single sentence with a clear dish name.
Prefer quick, weeknight-friendly options.`

// AIHandler serves the legacy passthrough endpoint.
type AIHandler struct {
	generator gemini.Generator
}

// NewAIHandler creates a new legacy AI handler.
func NewAIHandler(generator gemini.Generator) *AIHandler {
	return &AIHandler{generator: generator}
}

// HandleGenerate wraps a free-text ingredient prompt in the legacy
// instruction and returns the model text verbatim. Unlike the structured
// endpoints, upstream errors are forwarded with their original status and
// body.
func (h *AIHandler) HandleGenerate(c *gin.Context) {
	var req struct {
		Prompt string `json:"prompt"`
	}

	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Prompt) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Prompt is required"})
		return
	}

	prompt := legacyInstruction + "\n\nIngredients: " + req.Prompt

	text, err := h.generator.GenerateText(c.Request.Context(), prompt)
	if err != nil {
		common.LogError("legacy generation failed", zap.Error(err))
		if ue, ok := common.AsUpstreamError(err); ok && ue.Status != 0 {
			c.JSON(ue.Status, gin.H{"error": ue.Body})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"text": strings.TrimSpace(text)})
}
