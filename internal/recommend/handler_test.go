package recommend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/shrvya4/Glucose-Guardian/internal/glucose"
	"github.com/shrvya4/Glucose-Guardian/internal/menu"
)

type cannedStrategy struct {
	result *menu.Result
}

func (s *cannedStrategy) Name() string { return "map-service" }

func (s *cannedStrategy) Attempt(ctx context.Context, req menu.Request) (*menu.Result, error) {
	return s.result, nil
}

func analyzeRouter(h *Handler, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/restaurants/analyze", func(c *gin.Context) {
		if userID != "" {
			c.Set("userID", userID)
		}
		h.AnalyzeRestaurant(c)
	})
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestAnalyzeRestaurantRequiresProfile(t *testing.T) {
	pipeline := menu.NewPipeline(&cannedStrategy{
		result: &menu.Result{Dishes: []string{"A", "B", "C"}, Source: menu.SourceMapService},
	})
	h := NewHandler(pipeline, NewMatcher(&fakeLLM{out: recommendationJSON}), glucose.NewInMemoryRepository())

	w := postJSON(analyzeRouter(h, "user-1"), "/restaurants/analyze", `{"name": "Tandoor Palace"}`)
	if w.Code != http.StatusPreconditionFailed {
		t.Fatalf("status = %d, want 412", w.Code)
	}
}

func TestAnalyzeRestaurantRequiresName(t *testing.T) {
	h := NewHandler(nil, nil, glucose.NewInMemoryRepository())

	w := postJSON(analyzeRouter(h, "user-1"), "/restaurants/analyze", `{"address": "12 Curry Lane"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestAnalyzeRestaurantHappyPath(t *testing.T) {
	profiles := glucose.NewInMemoryRepository()
	_ = profiles.Upsert(context.Background(), "user-1", glucose.StoredProfile{
		Summary: "Lunches spike on refined carbs.",
	})

	pipeline := menu.NewPipeline(&cannedStrategy{
		result: &menu.Result{
			Dishes: []string{"Grilled Fish", "Pasta Alfredo", "Side Salad"},
			Source: menu.SourceMapService,
		},
	})
	h := NewHandler(pipeline, NewMatcher(&fakeLLM{out: recommendationJSON}), profiles)

	w := postJSON(analyzeRouter(h, "user-1"), "/restaurants/analyze", `{"name": "Tandoor Palace"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	body := w.Body.String()
	if !strings.Contains(body, `"source":"map-service"`) {
		t.Errorf("menu provenance missing: %s", body)
	}
	if !strings.Contains(body, "Grilled Fish") {
		t.Errorf("recommendation missing: %s", body)
	}
}

func TestAnalyzeRestaurantMenuUnavailable(t *testing.T) {
	profiles := glucose.NewInMemoryRepository()
	_ = profiles.Upsert(context.Background(), "user-1", glucose.StoredProfile{Summary: "summary"})

	// An empty pipeline means every strategy (there are none) failed.
	h := NewHandler(menu.NewPipeline(), NewMatcher(&fakeLLM{out: recommendationJSON}), profiles)

	w := postJSON(analyzeRouter(h, "user-1"), "/restaurants/analyze", `{"name": "Somewhere"}`)
	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", w.Code)
	}
}

func TestDishesFromText(t *testing.T) {
	text := "MENU\n\nGrilled Salmon $21\nab\n" + strings.Repeat("x", 250) + "\nTiramisu $7\n"

	dishes := dishesFromText(text)
	if len(dishes) != 3 {
		t.Fatalf("dishes = %v", dishes)
	}
	if dishes[1] != "Grilled Salmon $21" {
		t.Errorf("dishes[1] = %q", dishes[1])
	}
}
