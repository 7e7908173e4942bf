// Package entity implements the game objects of a level: shapes, drag
// targets, confetti particles and the arena that indexes them.
package entity

// ShapeType is the polygon a shape is drawn as.
type ShapeType int

const (
	Circle ShapeType = iota
	Square
	Triangle
	Star
	Heart
	Hexagon
	Diamond
	Oval
	ShapeTypeCount // Sentinel for counting types
)

// ShapeTypes lists all drawable shape types.
var ShapeTypes = []ShapeType{Circle, Square, Triangle, Star, Heart, Hexagon, Diamond, Oval}

// String returns the name of the shape type.
func (t ShapeType) String() string {
	switch t {
	case Circle:
		return "circle"
	case Square:
		return "square"
	case Triangle:
		return "triangle"
	case Star:
		return "star"
	case Heart:
		return "heart"
	case Hexagon:
		return "hexagon"
	case Diamond:
		return "diamond"
	case Oval:
		return "oval"
	default:
		return "?"
	}
}

// Glyph returns the terminal character for a shape type.
func (t ShapeType) Glyph() rune {
	switch t {
	case Circle:
		return '●'
	case Square:
		return '■'
	case Triangle:
		return '▲'
	case Star:
		return '★'
	case Heart:
		return '♥'
	case Hexagon:
		return '⬢'
	case Diamond:
		return '◆'
	case Oval:
		return '⬮'
	default:
		return '?'
	}
}

// ParseShapeType converts a name into a ShapeType. Unknown names map to
// Circle.
func ParseShapeType(s string) ShapeType {
	for _, t := range ShapeTypes {
		if t.String() == s {
			return t
		}
	}
	return Circle
}

// Expression is the face a shape shows.
type Expression int

const (
	Happy Expression = iota
	Surprised
	Sleeping
)

// String returns the name of the expression.
func (e Expression) String() string {
	switch e {
	case Happy:
		return "happy"
	case Surprised:
		return "surprised"
	case Sleeping:
		return "sleeping"
	default:
		return "?"
	}
}
