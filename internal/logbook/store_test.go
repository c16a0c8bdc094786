package logbook

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/raine/portionvision/internal/catalog"
	"github.com/raine/portionvision/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(name string, calories int, category catalog.Category, at time.Time) LogEntry {
	return NewEntry(
		catalog.FoodItem{Name: name, Calories: calories, Category: category},
		catalog.LookupVisualObject("Baseball"),
		at,
	)
}

func TestStore_AppendOrdering(t *testing.T) {
	s := NewStore(storage.NewMemoryKV())
	now := time.Now()

	require.NoError(t, s.Append(entry("Roti", 110, catalog.CategoryCarbs, now)))
	require.NoError(t, s.Append(entry("Samosa", 130, catalog.CategorySnacks, now.Add(time.Minute))))

	entries := s.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "Samosa", entries[0].FoodName, "most recent entry comes first")
	assert.Equal(t, "Roti", entries[1].FoodName)
}

func TestStore_Clear(t *testing.T) {
	kv := storage.NewMemoryKV()
	s := NewStore(kv)
	now := time.Now()
	require.NoError(t, s.Append(entry("Roti", 110, catalog.CategoryCarbs, now)))
	require.NoError(t, s.Append(entry("Kheer", 180, catalog.CategorySweets, now)))

	require.NoError(t, s.Clear())
	assert.Empty(t, s.Entries())
	assert.Equal(t, 0, s.Analytics().EntryCount)

	// Clear persists: a fresh store over the same KV sees an empty log
	assert.Empty(t, NewStore(kv).Entries())
}

func TestStore_ToggleFavoriteInvolution(t *testing.T) {
	s := NewStore(storage.NewMemoryKV())

	assert.False(t, s.IsFavorite("7"))

	on, err := s.ToggleFavorite("7")
	require.NoError(t, err)
	assert.True(t, on)
	assert.True(t, s.IsFavorite("7"))
	assert.Equal(t, 1, s.FavoriteCount())

	off, err := s.ToggleFavorite("7")
	require.NoError(t, err)
	assert.False(t, off)
	assert.False(t, s.IsFavorite("7"))
	assert.Equal(t, 0, s.FavoriteCount())
}

func TestStore_Analytics(t *testing.T) {
	s := NewStore(storage.NewMemoryKV())
	now := time.Now()
	require.NoError(t, s.Append(entry("Chicken Tikka", 120, catalog.CategoryProtein, now)))
	require.NoError(t, s.Append(entry("Roti", 80, catalog.CategoryCarbs, now)))
	require.NoError(t, s.Append(entry("Boiled Egg", 0, catalog.CategoryProtein, now)))

	a := s.Analytics()
	assert.Equal(t, 200, a.TotalCalories)
	assert.Equal(t, 3, a.EntryCount)
	assert.Equal(t, 120, a.PerCategory[catalog.CategoryProtein])
	assert.Equal(t, 80, a.PerCategory[catalog.CategoryCarbs])
}

func TestStore_AnalyticsSkipsMissingCategory(t *testing.T) {
	s := NewStore(storage.NewMemoryKV())
	e := entry("Mystery", 50, "", time.Now())
	require.NoError(t, s.Append(e))

	a := s.Analytics()
	assert.Equal(t, 50, a.TotalCalories)
	assert.Empty(t, a.PerCategory)
}

func TestStore_RoundTripPersistence(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "portions.db")
	kv, err := storage.NewSQLiteKV(dbPath)
	require.NoError(t, err)

	s := NewStore(kv)
	base := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	e1 := entry("Chicken Tikka", 220, catalog.CategoryProtein, base)
	e2 := entry("Roti", 110, catalog.CategoryCarbs, base.Add(time.Minute))
	e3 := entry("Mango Lassi", 170, catalog.CategoryBeverages, base.Add(2*time.Minute))
	require.NoError(t, s.Append(e1))
	require.NoError(t, s.Append(e2))
	require.NoError(t, s.Append(e3))
	_, err = s.ToggleFavorite("16")
	require.NoError(t, err)
	require.NoError(t, kv.Close())

	reopened, err := storage.NewSQLiteKV(dbPath)
	require.NoError(t, err)
	defer reopened.Close()

	restored := NewStore(reopened)
	entries := restored.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, []LogEntry{e3, e2, e1}, entries)
	assert.True(t, restored.IsFavorite("16"))
}

func TestStore_CorruptStateTreatedAsEmpty(t *testing.T) {
	kv := storage.NewMemoryKV()
	require.NoError(t, kv.Set("portion_logs", "{not json"))
	require.NoError(t, kv.Set("portion_favorites", "also not json"))

	s := NewStore(kv)
	assert.Empty(t, s.Entries())
	assert.Equal(t, 0, s.FavoriteCount())

	// The store remains usable after recovering from corrupt state
	require.NoError(t, s.Append(entry("Roti", 110, catalog.CategoryCarbs, time.Now())))
	assert.Len(t, s.Entries(), 1)
}
