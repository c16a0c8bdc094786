package catalog

import "github.com/raine/portionvision/internal/overlay"

// VisualObject describes a familiar physical item used as a portion size
// comparator, plus the guide shape drawn over the camera view for it.
type VisualObject struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Emoji         string        `json:"emoji"`
	RealWorldSize string        `json:"realWorldSize"`
	Dimensions    string        `json:"dimensions"`
	Shape         overlay.Shape `json:"shape"`
}

// DefaultVisualReference is used when a food specifies no reference object.
const DefaultVisualReference = "Baseball"

var visualObjects = map[string]VisualObject{
	"Deck of Cards":      {ID: "deck-of-cards", Name: "Deck of Cards", Emoji: "🃏", RealWorldSize: "100g meat", Dimensions: `3.5" x 2.5"`, Shape: overlay.ShapeDeckOfCards},
	"Baseball":           {ID: "baseball", Name: "Baseball", Emoji: "⚾", RealWorldSize: "1 cup", Dimensions: "Fist size", Shape: overlay.ShapeSphere},
	"Tennis Ball":        {ID: "tennis-ball", Name: "Tennis Ball", Emoji: "🎾", RealWorldSize: "Medium fruit", Dimensions: `2.7" diameter`, Shape: overlay.ShapeTennisBall},
	"Tennis Ball (Half)": {ID: "tennis-ball-half", Name: "Tennis Ball (Half)", Emoji: "🎾", RealWorldSize: "1/2 cup", Dimensions: `1.35" radius`, Shape: overlay.ShapeSphere},
	"Computer Mouse":     {ID: "computer-mouse", Name: "Computer Mouse", Emoji: "🖱️", RealWorldSize: "Medium potato", Dimensions: `4" x 2.5"`, Shape: overlay.ShapeComputerMouse},
	"Poker Chip":         {ID: "poker-chip", Name: "Poker Chip", Emoji: "🪙", RealWorldSize: "1 tbsp", Dimensions: `1.5" diameter`, Shape: overlay.ShapeSphere},
	"Compact Disc (CD)":  {ID: "cd", Name: "Compact Disc", Emoji: "💿", RealWorldSize: "Roti/Paratha", Dimensions: `4.7" diameter`, Shape: overlay.ShapeSphere},
	"Golf Ball":          {ID: "golf-ball", Name: "Golf Ball", Emoji: "⛳", RealWorldSize: "Small portion", Dimensions: `1.7" diameter`, Shape: overlay.ShapeSphere},
	"Checkbook":          {ID: "checkbook", Name: "Checkbook", Emoji: "📖", RealWorldSize: "Fish fillet", Dimensions: `6" x 3"`, Shape: overlay.ShapeCheckbook},
	"4 Dice":             {ID: "dice", Name: "4 Dice", Emoji: "🎲", RealWorldSize: "Cheese cube", Dimensions: `1" cube stack`, Shape: overlay.ShapeDice},
	"Pencil":             {ID: "pencil", Name: "Pencil", Emoji: "✏️", RealWorldSize: "Banana/Kebab", Dimensions: `7-8" length`, Shape: overlay.ShapeThumb},
	"Hockey Puck":        {ID: "hockey-puck", Name: "Hockey Puck", Emoji: "🏒", RealWorldSize: "Tikki/Patty", Dimensions: `3" diameter`, Shape: overlay.ShapeSphere},
}

// LookupVisualObject resolves a reference key to its descriptor. Unknown or
// empty keys resolve to the default object so the camera view always has a
// guide to draw.
func LookupVisualObject(key string) VisualObject {
	if obj, ok := visualObjects[key]; ok {
		return obj
	}
	return visualObjects[DefaultVisualReference]
}

// VisualObjectFor resolves the reference descriptor for a food item.
func VisualObjectFor(food FoodItem) VisualObject {
	return LookupVisualObject(food.VisualReference)
}
