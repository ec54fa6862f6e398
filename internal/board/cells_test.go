package board

import (
	"math"
	"testing"
)

func TestSplitCellsNoMargin(t *testing.T) {
	cells := SplitCells(Square{X: 0, Y: 0, Size: 90}, 0)

	if len(cells) != 81 {
		t.Fatalf("got %d cells, want 81", len(cells))
	}
	for _, c := range cells {
		if c.Bounds.Width != 10 || c.Bounds.Height != 10 {
			t.Fatalf("cell (%d,%d) size %gx%g, want 10x10", c.Row, c.Col, c.Bounds.Width, c.Bounds.Height)
		}
		if c.Bounds.X != float64(c.Col)*10 || c.Bounds.Y != float64(c.Row)*10 {
			t.Fatalf("cell (%d,%d) at (%g,%g)", c.Row, c.Col, c.Bounds.X, c.Bounds.Y)
		}
	}
}

func TestSplitCellsRowMajorIndex(t *testing.T) {
	cells := SplitCells(Square{X: 0, Y: 0, Size: 450}, 0.1)
	for i, c := range cells {
		if c.Index() != i {
			t.Fatalf("cell %d reports index %d", i, c.Index())
		}
	}
	if cells[0].Row != 0 || cells[0].Col != 0 {
		t.Error("first cell is not (0,0)")
	}
	if cells[80].Row != 8 || cells[80].Col != 8 {
		t.Error("last cell is not (8,8)")
	}
	if cells[10].Row != 1 || cells[10].Col != 1 {
		t.Errorf("cell 10 = (%d,%d), want (1,1)", cells[10].Row, cells[10].Col)
	}
}

func TestSplitCellsMarginShrinksInward(t *testing.T) {
	sq := Square{X: 100, Y: 200, Size: 450}
	cells := SplitCells(sq, 0.154)

	cellSize := 50.0
	inset := cellSize * 0.154
	c := cells[0]
	if math.Abs(c.Bounds.X-(100+inset)) > 1e-9 {
		t.Errorf("X = %g, want %g", c.Bounds.X, 100+inset)
	}
	if math.Abs(c.Bounds.Y-(200+inset)) > 1e-9 {
		t.Errorf("Y = %g, want %g", c.Bounds.Y, 200+inset)
	}
	if math.Abs(c.Bounds.Width-(cellSize-2*inset)) > 1e-9 {
		t.Errorf("Width = %g, want %g", c.Bounds.Width, cellSize-2*inset)
	}

	// Every cell must stay inside its own ninth of the square.
	for _, c := range cells {
		left := float64(sq.X) + float64(c.Col)*cellSize
		top := float64(sq.Y) + float64(c.Row)*cellSize
		if c.Bounds.X < left || c.Bounds.X+c.Bounds.Width > left+cellSize+1e-9 {
			t.Fatalf("cell (%d,%d) overflows horizontally", c.Row, c.Col)
		}
		if c.Bounds.Y < top || c.Bounds.Y+c.Bounds.Height > top+cellSize+1e-9 {
			t.Fatalf("cell (%d,%d) overflows vertically", c.Row, c.Col)
		}
	}
}

func TestSplitCellsClampsMargin(t *testing.T) {
	for _, margin := range []float64{-0.2, 0.5, 0.9} {
		cells := SplitCells(Square{Size: 90}, margin)
		for _, c := range cells {
			if c.Bounds.Width <= 0 || c.Bounds.Height <= 0 {
				t.Fatalf("margin %g produced empty cell %dx%d crop %gx%g",
					margin, c.Row, c.Col, c.Bounds.Width, c.Bounds.Height)
			}
		}
	}
}
