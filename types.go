package engine

import "fmt"

// Color is a linear RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

// Common colors.
var (
	ColorWhite = Color{R: 1, G: 1, B: 1, A: 1}
	ColorBlack = Color{A: 1}

	// ColorTeal is the clear color of the demo programs.
	ColorTeal = Color{R: 0.2, G: 0.3, B: 0.3, A: 1}
)

// RGBA creates a color from individual components.
func RGBA(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Components returns the color as a four element array, the layout used by
// config files and glUniform4fv.
func (c Color) Components() [4]float32 {
	return [4]float32{c.R, c.G, c.B, c.A}
}

// Valid reports whether every component is within [0, 1].
func (c Color) Valid() bool {
	for _, v := range c.Components() {
		if v < 0 || v > 1 {
			return false
		}
	}
	return true
}

func (c Color) String() string {
	return fmt.Sprintf("rgba(%.2f, %.2f, %.2f, %.2f)", c.R, c.G, c.B, c.A)
}

// ColorFromComponents is the inverse of Components.
func ColorFromComponents(v [4]float32) Color {
	return Color{R: v[0], G: v[1], B: v[2], A: v[3]}
}

// PolygonMode selects how triangles are rasterized.
type PolygonMode int

const (
	// PolygonFill draws filled triangles.
	PolygonFill PolygonMode = iota
	// PolygonLine draws triangle edges only (wireframe).
	PolygonLine
)

func (m PolygonMode) String() string {
	switch m {
	case PolygonFill:
		return "fill"
	case PolygonLine:
		return "line"
	default:
		return fmt.Sprintf("PolygonMode(%d)", int(m))
	}
}
