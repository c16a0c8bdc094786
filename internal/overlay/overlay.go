// Package overlay maps reference object shapes to drawable alignment guides
// and applies the user-adjustable scale factor to them.
package overlay

// Shape identifies a hand-authored guide template. The set is closed;
// unknown shapes render as a generic dashed rectangle via Template.
type Shape string

const (
	ShapeDeckOfCards   Shape = "deck-of-cards"
	ShapeSphere        Shape = "sphere"
	ShapeTennisBall    Shape = "tennis-ball"
	ShapeFist          Shape = "fist"
	ShapeThumb         Shape = "thumb"
	ShapeComputerMouse Shape = "computer-mouse"
	ShapeCheckbook     Shape = "checkbook"
	ShapeDice          Shape = "dice"
)

// Scale bounds for the alignment guide.
const (
	MinScale     = 0.5
	MaxScale     = 2.0
	DefaultScale = 1.0
)

// Stroke is one drawable vector element of a guide, with path data in
// template (viewbox) units.
type Stroke struct {
	Path    string
	Width   float64
	Dashed  bool
	Opacity float64
}

// Guide is a drawable alignment guide: a set of strokes in a viewbox,
// scaled uniformly about its center at render time.
type Guide struct {
	Shape    Shape
	Label    string
	ViewBoxW float64
	ViewBoxH float64
	Scale    float64
	Strokes  []Stroke
	Fallback bool
}

// Bounds returns the rendered size of the guide with its scale applied.
func (g Guide) Bounds() (w, h float64) {
	return g.ViewBoxW * g.Scale, g.ViewBoxH * g.Scale
}

// ClampScale restricts a scale factor to [MinScale, MaxScale].
func ClampScale(factor float64) float64 {
	if factor < MinScale {
		return MinScale
	}
	if factor > MaxScale {
		return MaxScale
	}
	return factor
}

// ApplyScale returns a copy of the guide scaled uniformly about its center.
// The factor is clamped to the valid range.
func ApplyScale(g Guide, factor float64) Guide {
	g.Scale = ClampScale(factor)
	return g
}

var templates = map[Shape]Guide{
	// 2.5" x 3.5" card ratio
	ShapeDeckOfCards: {
		Shape: ShapeDeckOfCards, ViewBoxW: 100, ViewBoxH: 140,
		Strokes: []Stroke{
			{Path: "M5 5 H95 V135 H5 Z", Width: 3, Opacity: 1},
			{Path: "M50 40 L60 60 L50 80 L40 60 Z", Width: 1, Opacity: 0.5},
		},
	},
	ShapeSphere: {
		Shape: ShapeSphere, ViewBoxW: 100, ViewBoxH: 100,
		Strokes: []Stroke{
			{Path: "M50 5 A45 45 0 1 0 50 95 A45 45 0 1 0 50 5", Width: 3, Opacity: 1},
		},
	},
	ShapeTennisBall: {
		Shape: ShapeTennisBall, ViewBoxW: 100, ViewBoxH: 100,
		Strokes: []Stroke{
			{Path: "M50 5 A45 45 0 1 0 50 95 A45 45 0 1 0 50 5", Width: 3, Opacity: 1},
			// Seam curves
			{Path: "M15 25 Q50 50 85 25", Width: 2, Opacity: 0.8},
			{Path: "M15 75 Q50 50 85 75", Width: 2, Opacity: 0.8},
		},
	},
	ShapeFist: {
		Shape: ShapeFist, ViewBoxW: 100, ViewBoxH: 100,
		Strokes: []Stroke{
			{Path: "M25 40 Q20 40 20 55 Q20 70 30 80 Q40 95 60 95 Q80 95 85 75 Q90 55 85 40 Q80 25 60 25 Q50 25 45 35", Width: 3, Opacity: 1},
			// Thumb
			{Path: "M45 35 Q50 10 70 15", Width: 3, Opacity: 1},
			// Knuckles
			{Path: "M30 50 L80 50 M30 65 L80 65", Width: 1, Opacity: 1},
		},
	},
	ShapeThumb: {
		Shape: ShapeThumb, ViewBoxW: 100, ViewBoxH: 140,
		Strokes: []Stroke{
			{Path: "M30 130 L30 60 Q30 20 50 20 Q70 20 70 60 L70 130", Width: 3, Opacity: 1},
			{Path: "M35 50 Q50 55 65 50", Width: 1, Opacity: 1},
			{Path: "M40 35 Q50 30 60 35", Width: 1, Opacity: 0.6},
		},
	},
	ShapeComputerMouse: {
		Shape: ShapeComputerMouse, ViewBoxW: 100, ViewBoxH: 140,
		Strokes: []Stroke{
			{Path: "M20 50 L20 100 Q20 135 50 135 Q80 135 80 100 L80 50 Q80 10 50 10 Q20 10 20 50 Z", Width: 3, Opacity: 1},
			{Path: "M50 10 L50 50", Width: 1, Opacity: 1},
			{Path: "M20 50 L80 50", Width: 1, Opacity: 1},
		},
	},
	ShapeCheckbook: {
		Shape: ShapeCheckbook, ViewBoxW: 160, ViewBoxH: 80,
		Strokes: []Stroke{
			{Path: "M5 5 H155 V75 H5 Z", Width: 3, Opacity: 1},
			{Path: "M15 25 L100 25", Width: 1, Opacity: 1},
			{Path: "M15 45 L145 45", Width: 1, Opacity: 1},
		},
	},
	ShapeDice: {
		Shape: ShapeDice, ViewBoxW: 100, ViewBoxH: 100,
		Strokes: []Stroke{
			{Path: "M25 25 H75 V75 H25 Z", Width: 3, Opacity: 1},
			{Path: "M35 10 H85 V60 H35 Z", Width: 3, Dashed: true, Opacity: 0.6},
		},
	},
}

// Template returns the guide for a shape at the default scale. Unknown
// shapes return a generic dashed rectangle annotated with label, so the
// camera view always has something to align against.
func Template(shape Shape, label string) Guide {
	if g, ok := templates[shape]; ok {
		g.Label = label
		g.Scale = DefaultScale
		return g
	}
	return Guide{
		Shape: shape, Label: label,
		ViewBoxW: 100, ViewBoxH: 100,
		Scale:    DefaultScale,
		Fallback: true,
		Strokes: []Stroke{
			{Path: "M10 10 H90 V90 H10 Z", Width: 3, Dashed: true, Opacity: 1},
		},
	}
}
