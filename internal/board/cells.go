package board

import "sudoku-scanner/pkg/geometry"

// GridSize is the number of cells per board side.
const GridSize = 9

// Cell describes where one of the 81 cells sits in the source photo.
// Bounds is the crop rectangle the canvas layer extracts before
// recognition; it is already shrunk inward by the configured margin.
type Cell struct {
	Row    int // 0-8, top to bottom
	Col    int // 0-8, left to right
	Bounds geometry.Rect
}

// Index returns the cell's position in row-major order (0-80).
func (c Cell) Index() int {
	return c.Row*GridSize + c.Col
}

// SplitCells partitions a squared board into the 9x9 cell grid. Each cell
// is shrunk inward by marginRatio of its size on every side, trimming the
// grid lines that would otherwise confuse recognition. Ratios outside
// [0, 0.5) are clamped.
func SplitCells(sq Square, marginRatio float64) []Cell {
	if marginRatio < 0 {
		marginRatio = 0
	}
	if marginRatio >= 0.5 {
		marginRatio = 0.49
	}

	cellSize := float64(sq.Size) / GridSize
	inset := cellSize * marginRatio

	cells := make([]Cell, 0, GridSize*GridSize)
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			cells = append(cells, Cell{
				Row: row,
				Col: col,
				Bounds: geometry.Rect{
					X:      float64(sq.X) + float64(col)*cellSize + inset,
					Y:      float64(sq.Y) + float64(row)*cellSize + inset,
					Width:  cellSize - 2*inset,
					Height: cellSize - 2*inset,
				},
			})
		}
	}
	return cells
}
