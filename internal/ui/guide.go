package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/raine/portionvision/internal/overlay"
)

// Terminal cells per template unit. Cells are roughly twice as tall as
// they are wide, so the vertical factor is halved to keep proportions.
const (
	guideCellsPerUnitX = 0.22
	guideCellsPerUnitY = 0.09
)

var shapeGlyphs = map[overlay.Shape]string{
	overlay.ShapeDeckOfCards:   "🃏",
	overlay.ShapeSphere:        "◯",
	overlay.ShapeTennisBall:    "🎾",
	overlay.ShapeFist:          "✊",
	overlay.ShapeThumb:         "👍",
	overlay.ShapeComputerMouse: "🖱",
	overlay.ShapeCheckbook:     "📖",
	overlay.ShapeDice:          "🎲",
}

// renderGuide draws the alignment guide as a bordered box whose size
// tracks the template's scaled bounds. The vector strokes themselves are
// for graphical front ends; in the terminal the box and glyph carry the
// proportions.
func renderGuide(g overlay.Guide) string {
	w, h := g.Bounds()
	cols := int(w * guideCellsPerUnitX)
	rows := int(h * guideCellsPerUnitY)
	if cols < 8 {
		cols = 8
	}
	if rows < 3 {
		rows = 3
	}

	glyph, ok := shapeGlyphs[g.Shape]
	if !ok {
		glyph = "▦"
	}
	content := fmt.Sprintf("%s\n%s", glyph, g.Label)

	style := guideStyle
	if g.Fallback {
		style = guideFallbackStyle
	}
	box := style.Width(cols).Height(rows).Render(content)

	hint := dimStyle.Render(fmt.Sprintf("Align %s here · scale %d%%", g.Label, int(g.Scale*100)))
	return lipgloss.JoinVertical(lipgloss.Center, box, hint)
}
