package board

import "sudoku-scanner/pkg/geometry"

// Square is the largest square inscribed in a located board rectangle,
// centered over the longer dimension's excess.
type Square struct {
	X    int `json:"x"`
	Y    int `json:"y"`
	Size int `json:"size"`
}

// Squarify centers the largest inscribed square inside a rectangle.
// The shorter side sets the size; half the excess of the longer side is
// added to that dimension's starting coordinate.
func Squarify(r geometry.RectInt) Square {
	size := r.Width
	if r.Height < size {
		size = r.Height
	}
	sq := Square{X: r.X, Y: r.Y, Size: size}
	if r.Width > size {
		sq.X += (r.Width - size) / 2
	}
	if r.Height > size {
		sq.Y += (r.Height - size) / 2
	}
	return sq
}
