package board

import (
	"testing"

	"sudoku-scanner/internal/pixel"
)

// edgeMask builds a Width x Height mask with edge pixels at the given
// (x, y) coordinates.
func edgeMask(w, h int, points [][2]int) *pixel.Gray {
	g := pixel.NewGray(w, h)
	for _, p := range points {
		g.Set(p[0], p[1], 255)
	}
	return g
}

func hRun(y, x0, x1 int) [][2]int {
	var pts [][2]int
	for x := x0; x <= x1; x++ {
		pts = append(pts, [2]int{x, y})
	}
	return pts
}

func vRun(x, y0, y1 int) [][2]int {
	var pts [][2]int
	for y := y0; y <= y1; y++ {
		pts = append(pts, [2]int{x, y})
	}
	return pts
}

func TestFindRowLines(t *testing.T) {
	// Row 10: full-width run. Row 20: 60% run. Row 30: 40% run (below
	// the coverage floor). Row 40: two 30% runs that never connect.
	var pts [][2]int
	pts = append(pts, hRun(10, 0, 99)...)
	pts = append(pts, hRun(20, 0, 59)...)
	pts = append(pts, hRun(30, 0, 39)...)
	pts = append(pts, hRun(40, 0, 29)...)
	pts = append(pts, hRun(40, 60, 89)...)
	mask := edgeMask(100, 100, pts)

	lines := findRowLines(mask)

	if len(lines) != 2 {
		t.Fatalf("found %d lines, want 2: %+v", len(lines), lines)
	}
	if lines[0].Pos != 10 || lines[0].Strength != 1.0 {
		t.Errorf("line 0 = %+v, want pos 10 strength 1.0", lines[0])
	}
	if lines[1].Pos != 20 || lines[1].Strength != 0.6 {
		t.Errorf("line 1 = %+v, want pos 20 strength 0.6", lines[1])
	}
}

func TestFindColumnLines(t *testing.T) {
	var pts [][2]int
	pts = append(pts, vRun(15, 0, 99)...)
	pts = append(pts, vRun(70, 20, 89)...) // 70% coverage
	pts = append(pts, vRun(90, 0, 29)...)  // 30%, rejected
	mask := edgeMask(100, 100, pts)

	lines := findColumnLines(mask)

	if len(lines) != 2 {
		t.Fatalf("found %d lines, want 2: %+v", len(lines), lines)
	}
	if lines[0].Pos != 15 || lines[1].Pos != 70 {
		t.Errorf("positions = %d, %d, want 15, 70", lines[0].Pos, lines[1].Pos)
	}
}

func TestGroupLines(t *testing.T) {
	tests := []struct {
		name   string
		in     []Line
		margin int
		want   []Line
	}{
		{
			name:   "nil input",
			in:     nil,
			margin: 5,
			want:   nil,
		},
		{
			name:   "distinct lines kept",
			in:     []Line{{10, 0.9}, {50, 0.8}},
			margin: 5,
			want:   []Line{{10, 0.9}, {50, 0.8}},
		},
		{
			name:   "nearby pair keeps the stronger",
			in:     []Line{{10, 0.6}, {12, 0.9}, {50, 0.8}},
			margin: 5,
			want:   []Line{{12, 0.9}, {50, 0.8}},
		},
		{
			name:   "stronger first survives the merge",
			in:     []Line{{10, 0.95}, {12, 0.7}},
			margin: 5,
			want:   []Line{{10, 0.95}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := groupLines(tt.in, tt.margin)
			if len(got) != len(tt.want) {
				t.Fatalf("got %+v, want %+v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestGroupMarginScalesWithImage(t *testing.T) {
	if m := groupMargin(1000, 800); m != 20 {
		t.Errorf("groupMargin(1000, 800) = %d, want 20", m)
	}
	if m := groupMargin(10, 10); m != 1 {
		t.Errorf("groupMargin(10, 10) = %d, want at least 1", m)
	}
}
