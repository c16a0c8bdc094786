package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/raine/portionvision/internal/catalog"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#60a5fa"))

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	tabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(lipgloss.Color("245"))

	activeTabStyle = tabStyle.
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color("#2563eb")).
			Bold(true)

	selectedRowStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#ffffff")).
				Background(lipgloss.Color("#1e3a8a"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	calorieStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fbbf24"))

	favoriteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#facc15"))

	toastStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color("#16a34a")).
			Bold(true)

	errorToastStyle = toastStyle.
			Background(lipgloss.Color("#dc2626"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ef4444")).
			Bold(true)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#60a5fa")).
			Padding(1, 3)

	guideStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#ffffff")).
			Align(lipgloss.Center, lipgloss.Center)

	guideFallbackStyle = guideStyle.
				Border(lipgloss.BlockBorder()).
				BorderForeground(lipgloss.Color("245"))
)

var categoryColors = map[catalog.Category]string{
	catalog.CategoryProtein:   "#ef4444",
	catalog.CategoryCarbs:     "#f59e0b",
	catalog.CategoryFats:      "#eab308",
	catalog.CategoryProduce:   "#22c55e",
	catalog.CategorySweets:    "#ec4899",
	catalog.CategoryDairy:     "#3b82f6",
	catalog.CategorySnacks:    "#a855f7",
	catalog.CategoryBeverages: "#06b6d4",
}

// badge renders a category as a colored pill.
func badge(category catalog.Category) string {
	color, ok := categoryColors[category]
	if !ok {
		color = "240"
	}
	return lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(lipgloss.Color("#ffffff")).
		Background(lipgloss.Color(color)).
		Render(string(category))
}
