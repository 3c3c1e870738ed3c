package recipe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	recipeService "recipe-finder/internal/core/recipe"
	"recipe-finder/internal/infrastructure/config"
	"recipe-finder/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	response string
	err      error
	calls    atomic.Int32
}

func (f *fakeGenerator) GenerateText(_ context.Context, _ string) (string, error) {
	f.calls.Add(1)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

type stubImages struct{}

func (stubImages) GetImageURL(_ context.Context, query, seed string) string {
	return fmt.Sprintf("https://img.test/%s?lock=%s", query, seed)
}

func newTestRouter(gen *fakeGenerator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		Image: config.ImageConfig{
			QuerySuffix: "indian paneer",
			Timeout:     time.Second,
		},
	}

	h := NewHandler(
		recipeService.NewIdeaService(gen, stubImages{}, cfg),
		recipeService.NewDetailService(gen, stubImages{}, cfg),
	)

	router := gin.New()
	router.GET("/api/categories", h.HandleCategories)
	router.POST("/api/ideas", h.HandleIdeas)
	router.POST("/api/recipe", h.HandleRecipeDetail)
	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestHandleIdeasSuccess(t *testing.T) {
	gen := &fakeGenerator{
		response: `{"ideas":[{"id":"Quick Paneer","title":"Quick Paneer","blurb":"Fast."}]}`,
	}
	router := newTestRouter(gen)

	rr := postJSON(router, "/api/ideas", `{"query":"paneer dinner"}`)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "application/json")

	var body struct {
		Ideas []recipeService.Idea `json:"ideas"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Len(t, body.Ideas, 1)
	assert.Equal(t, "quick-paneer", body.Ideas[0].ID)
	assert.NotEmpty(t, body.Ideas[0].ImageURL)
}

func TestHandleIdeasEmptyBodyAllowed(t *testing.T) {
	gen := &fakeGenerator{response: `{"ideas":[]}`}
	router := newTestRouter(gen)

	rr := postJSON(router, "/api/ideas", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"ideas":[]}`, rr.Body.String())
}

func TestHandleIdeasNoUsableOutputIsStillOK(t *testing.T) {
	gen := &fakeGenerator{response: `{"unrelated":42}`}
	router := newTestRouter(gen)

	rr := postJSON(router, "/api/ideas", `{"query":"paneer"}`)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"ideas":[]}`, rr.Body.String())
}

func TestHandleIdeasUpstreamFailure(t *testing.T) {
	gen := &fakeGenerator{err: common.NewUpstreamStatusError("gemini", 503, "overloaded")}
	router := newTestRouter(gen)

	rr := postJSON(router, "/api/ideas", `{"query":"paneer"}`)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error":"Failed to generate ideas"}`, rr.Body.String())
}

func TestHandleIdeasUnparsableModelOutput(t *testing.T) {
	gen := &fakeGenerator{response: "Sorry, here is some prose instead."}
	router := newTestRouter(gen)

	rr := postJSON(router, "/api/ideas", `{"query":"paneer"}`)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error":"Failed to generate ideas"}`, rr.Body.String())
}

func TestHandleRecipeDetailSuccess(t *testing.T) {
	gen := &fakeGenerator{
		response: `{"recipe":{"title":"Palak Paneer","servings":"4","ingredients":["paneer"],"steps":["Cook."]}}`,
	}
	router := newTestRouter(gen)

	rr := postJSON(router, "/api/recipe", `{"title":"Palak Paneer","categoryId":"quick-curries"}`)

	require.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Recipe *recipeService.RecipeDetail `json:"recipe"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.NotNil(t, body.Recipe)
	assert.Equal(t, 4, body.Recipe.Servings)
	assert.Equal(t, "quick-curries", body.Recipe.Category)
	assert.NotEmpty(t, body.Recipe.ImageURL)
}

func TestHandleRecipeDetailMissingTitle(t *testing.T) {
	for _, body := range []string{`{}`, `{"title":""}`, `{"title":"   "}`} {
		gen := &fakeGenerator{response: `{}`}
		router := newTestRouter(gen)

		rr := postJSON(router, "/api/recipe", body)

		require.Equal(t, http.StatusBadRequest, rr.Code, "body %s", body)
		assert.JSONEq(t, `{"error":"title is required"}`, rr.Body.String())
		assert.Equal(t, int32(0), gen.calls.Load(), "no upstream call may precede validation")
	}
}

func TestHandleRecipeDetailNullRecipe(t *testing.T) {
	gen := &fakeGenerator{response: `{"nothing":"here"}`}
	router := newTestRouter(gen)

	rr := postJSON(router, "/api/recipe", `{"title":"Palak Paneer"}`)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"recipe":null}`, rr.Body.String())
}

func TestHandleRecipeDetailUpstreamFailure(t *testing.T) {
	gen := &fakeGenerator{err: common.NewUpstreamStatusError("gemini", 500, "boom")}
	router := newTestRouter(gen)

	rr := postJSON(router, "/api/recipe", `{"title":"Palak Paneer"}`)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error":"Failed to generate recipe detail"}`, rr.Body.String())
}

func TestHandleCategories(t *testing.T) {
	router := newTestRouter(&fakeGenerator{})

	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Categories []recipeService.Category `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Len(t, body.Categories, 10)
	assert.Equal(t, "quick-curries", body.Categories[0].ID)
	assert.Equal(t, "pure-veg", body.Categories[9].ID)
}
