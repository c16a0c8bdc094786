package catalog

// Category is the closed set of food categories.
type Category string

const (
	CategoryProtein   Category = "Protein"
	CategoryCarbs     Category = "Carbs"
	CategoryFats      Category = "Fats"
	CategoryProduce   Category = "Produce"
	CategorySweets    Category = "Sweets"
	CategoryDairy     Category = "Dairy"
	CategorySnacks    Category = "Snacks"
	CategoryBeverages Category = "Beverages"
)

// Categories lists all food categories in display order.
var Categories = []Category{
	CategoryProtein,
	CategoryCarbs,
	CategoryFats,
	CategoryProduce,
	CategorySweets,
	CategoryDairy,
	CategorySnacks,
	CategoryBeverages,
}

// FoodItem is a read-only entry from the food catalog. Items carry the
// visual reference key used to pick a comparison object; an empty or
// unknown key falls back to the default object in LookupVisualObject.
type FoodItem struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Category        Category `json:"category"`
	Calories        int      `json:"calories,omitempty"`
	PortionSize     string   `json:"portionSize,omitempty"`
	VisualReference string   `json:"visualReference,omitempty"`
	Description     string   `json:"description,omitempty"`
}
