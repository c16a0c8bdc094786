package logbook

import (
	"time"

	"github.com/raine/portionvision/internal/catalog"
)

// LogEntry is one confirmed portion. Food and object display fields are
// copied, not referenced: an entry must stay displayable even if the
// catalog entry it came from changes or disappears.
type LogEntry struct {
	ID         int64            `json:"id"`
	Timestamp  time.Time        `json:"timestamp"`
	FoodName   string           `json:"foodName"`
	ObjectName string           `json:"objectName"`
	Emoji      string           `json:"emoji"`
	Calories   int              `json:"calories"`
	Category   catalog.Category `json:"category,omitempty"`
}

// NewEntry builds a log entry from a food and the reference object used to
// estimate it. The id is derived from the creation time, giving entries a
// monotonic order.
func NewEntry(food catalog.FoodItem, object catalog.VisualObject, now time.Time) LogEntry {
	return LogEntry{
		ID:         now.UnixNano(),
		Timestamp:  now,
		FoodName:   food.Name,
		ObjectName: object.Name,
		Emoji:      object.Emoji,
		Calories:   food.Calories,
		Category:   food.Category,
	}
}

// Analytics summarizes the current log in a single pass.
type Analytics struct {
	TotalCalories int
	PerCategory   map[catalog.Category]int
	EntryCount    int
}
