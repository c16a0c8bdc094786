package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/raine/portionvision/internal/overlay"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupVisualObject(t *testing.T) {
	obj := LookupVisualObject("Deck of Cards")
	assert.Equal(t, "deck-of-cards", obj.ID)
	assert.Equal(t, overlay.ShapeDeckOfCards, obj.Shape)

	// Unknown and empty keys fall back to the default object, never fail
	fallback := LookupVisualObject("Bowling Ball")
	assert.Equal(t, "baseball", fallback.ID)
	assert.Equal(t, LookupVisualObject(""), fallback)
}

func TestVisualObjectFor_DefaultsWhenFoodHasNoReference(t *testing.T) {
	chai, ok := Builtin().Get("30")
	require.True(t, ok)
	require.Empty(t, chai.VisualReference)

	obj := VisualObjectFor(chai)
	assert.Equal(t, "baseball", obj.ID)
}

func TestBuiltinCatalog(t *testing.T) {
	c := Builtin()
	require.NotZero(t, c.Len())

	// Every food has a known category and resolves to a drawable guide
	valid := make(map[Category]bool)
	for _, cat := range Categories {
		valid[cat] = true
	}
	for _, f := range c.All() {
		assert.True(t, valid[f.Category], "food %s has unknown category %q", f.Name, f.Category)
		obj := VisualObjectFor(f)
		assert.NotEmpty(t, obj.Name)
	}
}

func TestFind(t *testing.T) {
	c := New([]FoodItem{
		{ID: "1", Name: "Samosa", Category: CategorySnacks},
		{ID: "2", Name: "Roti", Category: CategoryCarbs},
		{ID: "3", Name: "Gulab Jamun", Category: CategorySweets},
	})

	assert.Len(t, c.Find(Filter{}), 3)
	assert.Len(t, c.Find(Filter{Query: "samo"}), 1)
	assert.Len(t, c.Find(Filter{Query: "SWEETS"}), 1, "query matches category too")
	assert.Len(t, c.Find(Filter{Category: CategoryCarbs}), 1)
	assert.Empty(t, c.Find(Filter{Query: "biryani"}))

	favs := map[string]bool{"2": true}
	got := c.Find(Filter{FavoritesOnly: true, IsFavorite: func(id string) bool { return favs[id] }})
	require.Len(t, got, 1)
	assert.Equal(t, "Roti", got[0].Name)
}

func TestLoad_RemoteCatalog(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"r1","name":"Poha","category":"Carbs","calories":180}]`))
	}))
	defer ts.Close()

	c, err := Load(context.Background(), ts.URL)
	require.NoError(t, err)
	require.Equal(t, 1, c.Len())
	food, ok := c.Get("r1")
	require.True(t, ok)
	assert.Equal(t, "Poha", food.Name)
	assert.Equal(t, CategoryCarbs, food.Category)
}

func TestLoad_FallsBackToBuiltin(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer ts.Close()

	c, err := Load(context.Background(), ts.URL)
	assert.Error(t, err)
	require.NotNil(t, c)
	assert.Equal(t, Builtin().Len(), c.Len())

	// No URL configured: builtin, no error
	c, err = Load(context.Background(), "")
	assert.NoError(t, err)
	assert.Equal(t, Builtin().Len(), c.Len())
}
