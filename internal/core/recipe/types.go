package recipe

// Category is one entry of the static catalog.
type Category struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
}

// Categories is the fixed catalog served verbatim at /api/categories.
var Categories = []Category{
	{ID: "quick-curries", Title: "Quick Curries", Summary: "30-minute paneer curries."},
	{ID: "grills-tikkas", Title: "Grills & Tikkas", Summary: "Skewers, tandoori, air-fryer."},
	{ID: "snacks", Title: "Snacks & Starters", Summary: "Bites, pakoras, rolls."},
	{ID: "wraps-bowls", Title: "Wraps & Bowls", Summary: "Rolls & bowl meals."},
	{ID: "street-style", Title: "Street-Style", Summary: "Chatpata, bold flavors."},
	{ID: "kid-friendly", Title: "Kid-Friendly", Summary: "Mild, cheesy twists."},
	{ID: "high-protein", Title: "High-Protein", Summary: "Gym-friendly meals."},
	{ID: "breakfast", Title: "Breakfast", Summary: "Bhurji, sandwiches."},
	{ID: "party", Title: "Party Dishes", Summary: "Crowd pleasers."},
	{ID: "pure-veg", Title: "100% Veg", Summary: "Pure veg options."},
}

// Idea is a short recipe suggestion.
type Idea struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Blurb      string `json:"blurb"`
	CategoryID string `json:"categoryId,omitempty"`
	ImageURL   string `json:"imageUrl"`
	ImageAlt   string `json:"imageAlt"`
}

// RecipeDetail is a full recipe. Ingredients, Steps and Tips are never nil
// on output; an empty slice is a valid value.
type RecipeDetail struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Category         string   `json:"category"`
	Servings         int      `json:"servings"`
	TotalTimeMinutes int      `json:"totalTimeMinutes"`
	Ingredients      []string `json:"ingredients"`
	Steps            []string `json:"steps"`
	Tips             []string `json:"tips"`
	ImageURL         string   `json:"imageUrl"`
	ImageAlt         string   `json:"imageAlt"`
}

// IdeasRequest asks for idea suggestions. All fields are optional; an empty
// request still produces a global prompt.
type IdeasRequest struct {
	Query       string   `json:"query"`
	CategoryID  string   `json:"categoryId"`
	Ingredients []string `json:"ingredients"`
}

// DetailRequest asks for one full recipe. Title is required.
type DetailRequest struct {
	Title       string   `json:"title"`
	CategoryID  string   `json:"categoryId"`
	Ingredients []string `json:"ingredients"`
	Query       string   `json:"query"`
}
