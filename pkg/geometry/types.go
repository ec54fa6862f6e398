// Package geometry provides basic geometric types used throughout the application.
package geometry

// Point2D represents a 2D point with floating-point coordinates.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect represents a rectangle with floating-point coordinates.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point2D {
	return Point2D{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Point2D) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// RectInt represents a rectangle with integer pixel coordinates.
type RectInt struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Right returns the X coordinate of the right edge.
func (r RectInt) Right() int {
	return r.X + r.Width
}

// Bottom returns the Y coordinate of the bottom edge.
func (r RectInt) Bottom() int {
	return r.Y + r.Height
}

// Area returns the rectangle area in pixels.
func (r RectInt) Area() int {
	return r.Width * r.Height
}

// AspectRatio returns the short-side to long-side ratio in (0, 1].
// Zero-sized rectangles return 0.
func (r RectInt) AspectRatio() float64 {
	if r.Width <= 0 || r.Height <= 0 {
		return 0
	}
	if r.Width < r.Height {
		return float64(r.Width) / float64(r.Height)
	}
	return float64(r.Height) / float64(r.Width)
}

// ToFloat converts to Rect.
func (r RectInt) ToFloat() Rect {
	return Rect{X: float64(r.X), Y: float64(r.Y), Width: float64(r.Width), Height: float64(r.Height)}
}
