package recipe

import (
	"fmt"
	"strings"

	"recipe-finder/internal/pkg/common"
)

// The prompts are contracts with the model: field names and constraints here
// must stay in sync with the normalizers.

func ideasPrompt(req IdeasRequest) string {
	cat := "Category: (global)"
	if req.CategoryID != "" {
		cat = "Category: " + req.CategoryID
	}
	ing := "Ingredients: (none)"
	if len(req.Ingredients) > 0 {
		ing = "Ingredients: " + strings.Join(req.Ingredients, ", ")
	}
	q := "User query: (none)"
	if strings.TrimSpace(req.Query) != "" {
		q = "User query: " + strings.TrimSpace(req.Query)
	}

	return strings.TrimSpace(fmt.Sprintf(`
You are Recipe Finder+.
Return STRICT JSON with 5-10 recipe ideas:

{
  "ideas": [
    { "id": "quick-paneer-makhani", "title": "Quick Paneer Makhani", "blurb": "Creamy weeknight curry.", "categoryId": "quick-curries" }
  ]
}

Rules:
- "id" must be URL-safe slug (lowercase, hyphens).
- "title" concise and specific.
- "blurb" max 1 short sentence.
- Only 5-10 ideas.
- Consider category and ingredients when given.

%s
%s
%s`, cat, ing, q))
}

func detailPrompt(req DetailRequest) string {
	cat := "Category: (unspecified)"
	if req.CategoryID != "" {
		cat = "Category: " + req.CategoryID
	}
	ing := "Ingredients to incorporate: (none)"
	if len(req.Ingredients) > 0 {
		ing = "Ingredients to incorporate: " + strings.Join(req.Ingredients, ", ")
	}
	q := ""
	if strings.TrimSpace(req.Query) != "" {
		q = "Original user query: " + strings.TrimSpace(req.Query)
	}
	id := common.Slugify(req.Title)

	return strings.TrimSpace(fmt.Sprintf(`
You are Recipe Finder+.
Return STRICT JSON for ONE detailed recipe:

{
  "recipe": {
    "id": %q,
    "title": %q,
    "category": %q,
    "servings": 2,
    "totalTimeMinutes": 30,
    "ingredients": ["..."],
    "steps": ["..."],
    "tips": ["optional tip 1", "optional tip 2"]
  }
}

Constraints:
- 8-14 ingredients, realistic pantry items.
- 6-10 steps, each a single sentence (no numbering in text).
- Prefer weeknight-friendly unless category suggests otherwise.

%s
%s
%s`, id, req.Title, req.CategoryID, cat, ing, q))
}
