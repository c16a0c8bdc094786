package catalog

import "strings"

// Catalog is the read-only food reference dataset.
type Catalog struct {
	foods []FoodItem
}

// New creates a catalog from the given foods. The slice is not copied; the
// catalog is treated as immutable by all callers.
func New(foods []FoodItem) *Catalog {
	return &Catalog{foods: foods}
}

// Builtin returns the catalog backed by the embedded food dataset.
func Builtin() *Catalog {
	return New(builtinFoods)
}

// All returns every food in catalog order.
func (c *Catalog) All() []FoodItem {
	return c.foods
}

// Len returns the number of foods in the catalog.
func (c *Catalog) Len() int {
	return len(c.foods)
}

// Get returns the food with the given id, if present.
func (c *Catalog) Get(id string) (FoodItem, bool) {
	for _, f := range c.foods {
		if f.ID == id {
			return f, true
		}
	}
	return FoodItem{}, false
}

// Filter narrows the catalog for the browse view.
type Filter struct {
	// Query matches case-insensitively against food name and category.
	Query string
	// Category restricts to one category when non-empty.
	Category Category
	// FavoritesOnly keeps only foods for which IsFavorite returns true.
	FavoritesOnly bool
	IsFavorite    func(foodID string) bool
}

// Find returns the foods matching the filter, preserving catalog order.
func (c *Catalog) Find(filter Filter) []FoodItem {
	query := strings.ToLower(filter.Query)
	var matched []FoodItem
	for _, f := range c.foods {
		if query != "" &&
			!strings.Contains(strings.ToLower(f.Name), query) &&
			!strings.Contains(strings.ToLower(string(f.Category)), query) {
			continue
		}
		if filter.Category != "" && f.Category != filter.Category {
			continue
		}
		if filter.FavoritesOnly && (filter.IsFavorite == nil || !filter.IsFavorite(f.ID)) {
			continue
		}
		matched = append(matched, f)
	}
	return matched
}
