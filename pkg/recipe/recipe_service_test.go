package recipe

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"Smart-Fridge-Manager/domain"
	"Smart-Fridge-Manager/entities"
	"Smart-Fridge-Manager/pkg/fridge"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
)

type mockFridgeRepository struct {
	fridge.FridgeRepository

	activeItems []*entities.FridgeItem
}

func (m *mockFridgeRepository) GetActiveItems(ctx context.Context, userID string) ([]*entities.FridgeItem, error) {
	return m.activeItems, nil
}

func newTestService(t *testing.T, spoonacular, edamam *httptest.Server) *recipeService {
	t.Helper()
	t.Setenv("SPOONACULAR_API_KEY", "test-key")
	t.Setenv("EDAMAM_APP_ID", "test-app")
	t.Setenv("EDAMAM_APP_KEY", "test-app-key")

	service := &recipeService{
		fridgeRepository: &mockFridgeRepository{},
		httpClient:       &http.Client{Timeout: 5 * time.Second},
		spoonacularURL:   "http://127.0.0.1:0",
		edamamURL:        "http://127.0.0.1:0",
	}
	if spoonacular != nil {
		service.spoonacularURL = spoonacular.URL
	}
	if edamam != nil {
		service.edamamURL = edamam.URL
	}
	return service
}

func TestGetSuggestions_Spoonacular(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/recipes/findByIngredients"):
			if got := r.URL.Query().Get("ranking"); got != "2" {
				t.Errorf("ranking = %q, want 2 (maximize used ingredients)", got)
			}
			json.NewEncoder(w).Encode([]map[string]interface{}{
				{
					"id":    101,
					"title": "Chicken Stir Fry",
					"image": "https://img.example.com/101.jpg",
					"usedIngredients": []map[string]string{
						{"name": "chicken"}, {"name": "broccoli"},
					},
					"missedIngredients": []map[string]string{
						{"name": "soy sauce"},
					},
				},
			})
		case strings.HasPrefix(r.URL.Path, "/recipes/101/information"):
			json.NewEncoder(w).Encode(map[string]interface{}{
				"readyInMinutes": 25,
				"servings":       4,
				"sourceUrl":      "https://recipes.example.com/101",
				"summary":        "Quick weeknight stir fry.",
			})
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	service := newTestService(t, server, nil)

	resp, err := service.GetSuggestions(context.Background(), domain.RecipeSuggestionRequest{
		Ingredients: []string{"chicken", "broccoli"},
	}, uuid.NewString())
	if err != nil {
		t.Fatalf("GetSuggestions returned error: %v", err)
	}

	if resp.Source != "spoonacular" {
		t.Errorf("source = %q, want spoonacular", resp.Source)
	}

	want := []domain.RecipeSuggestion{{
		ID:                "101",
		Title:             "Chicken Stir Fry",
		ImageURL:          "https://img.example.com/101.jpg",
		UsedIngredients:   []string{"chicken", "broccoli"},
		MissedIngredients: []string{"soy sauce"},
		ReadyInMinutes:    25,
		Servings:          4,
		SourceURL:         "https://recipes.example.com/101",
		Summary:           "Quick weeknight stir fry.",
	}}
	if diff := cmp.Diff(want, resp.Recipes); diff != "" {
		t.Errorf("recipes mismatch (-want +got):\n%s", diff)
	}
}

func TestGetSuggestions_FallsBackToEdamam(t *testing.T) {
	spoonacular := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusPaymentRequired)
	}))
	defer spoonacular.Close()

	edamam := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"hits": []map[string]interface{}{
				{"recipe": map[string]interface{}{
					"uri":   "edamam#abc",
					"label": "Veggie Pasta",
					"image": "https://img.example.com/pasta.jpg",
					"url":   "https://recipes.example.com/pasta",
					"yield": 2.0,
				}},
			},
		})
	}))
	defer edamam.Close()

	service := newTestService(t, spoonacular, edamam)

	resp, err := service.GetSuggestions(context.Background(), domain.RecipeSuggestionRequest{
		Ingredients: []string{"pasta", "tomato"},
	}, uuid.NewString())
	if err != nil {
		t.Fatalf("GetSuggestions returned error: %v", err)
	}

	if resp.Source != "edamam" {
		t.Errorf("source = %q, want edamam", resp.Source)
	}
	if len(resp.Recipes) != 1 || resp.Recipes[0].Title != "Veggie Pasta" {
		t.Errorf("unexpected recipes: %+v", resp.Recipes)
	}
}

func TestGetSuggestions_BothProvidersDown(t *testing.T) {
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer failing.Close()

	service := newTestService(t, failing, failing)

	_, err := service.GetSuggestions(context.Background(), domain.RecipeSuggestionRequest{
		Ingredients: []string{"rice"},
	}, uuid.NewString())
	if err != domain.ErrRecipeAPIFailed {
		t.Errorf("err = %v, want ErrRecipeAPIFailed", err)
	}
}

func TestGetSuggestions_WasteMinimizingUsesSoonestExpiring(t *testing.T) {
	var gotIngredients string
	spoonacular := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/recipes/findByIngredients") {
			gotIngredients = r.URL.Query().Get("ingredients")
		}
		json.NewEncoder(w).Encode([]interface{}{})
	}))
	defer spoonacular.Close()

	service := newTestService(t, spoonacular, nil)

	// GetActiveItems returns items ordered by expiration date ascending; only
	// the first five feed the suggestion query.
	items := make([]*entities.FridgeItem, 0, 6)
	for _, name := range []string{"milk", "spinach", "chicken", "yogurt", "carrots", "rice"} {
		items = append(items, &entities.FridgeItem{ID: uuid.New(), Name: name})
	}
	service.fridgeRepository = &mockFridgeRepository{activeItems: items}

	resp, err := service.GetSuggestions(context.Background(), domain.RecipeSuggestionRequest{
		WasteMinimizing: true,
	}, uuid.NewString())
	if err != nil {
		t.Fatalf("GetSuggestions returned error: %v", err)
	}

	if gotIngredients != "milk,spinach,chicken,yogurt,carrots" {
		t.Errorf("queried ingredients = %q, want the five soonest-expiring items", gotIngredients)
	}
	if diff := cmp.Diff([]string{"milk", "spinach", "chicken", "yogurt", "carrots"}, resp.Ingredients); diff != "" {
		t.Errorf("ingredients mismatch (-want +got):\n%s", diff)
	}
}

func TestGetSuggestions_NoIngredientsAndEmptyFridge(t *testing.T) {
	service := newTestService(t, nil, nil)
	service.fridgeRepository = &mockFridgeRepository{}

	_, err := service.GetSuggestions(context.Background(), domain.RecipeSuggestionRequest{}, uuid.NewString())
	if err != domain.ErrNoIngredients {
		t.Errorf("err = %v, want ErrNoIngredients", err)
	}
}
