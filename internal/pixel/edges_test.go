package pixel

import "testing"

func TestDetectEdgesUniformImageIsAllZero(t *testing.T) {
	for _, v := range []uint8{0, 128, 255} {
		g := uniformGray(10, 10, v)
		out := DetectEdges(g)
		for i, got := range out.Pix {
			if got != 0 {
				t.Fatalf("value %d: pixel %d = %d, want 0", v, i, got)
			}
		}
	}
}

func TestDetectEdgesVerticalStep(t *testing.T) {
	// Left half black, right half white. The step column should be an
	// edge; regions far from the step should not.
	g := NewGray(10, 10)
	for y := 0; y < 10; y++ {
		for x := 5; x < 10; x++ {
			g.Set(x, y, 255)
		}
	}

	out := DetectEdges(g)

	foundEdge := false
	for y := 1; y < 9; y++ {
		if out.At(4, y) == 255 || out.At(5, y) == 255 {
			foundEdge = true
		}
	}
	if !foundEdge {
		t.Error("no edge detected along the intensity step")
	}

	for y := 1; y < 9; y++ {
		if out.At(2, y) != 0 {
			t.Errorf("flat region (2,%d) marked as edge", y)
		}
		if out.At(8, y) != 0 {
			t.Errorf("flat region (8,%d) marked as edge", y)
		}
	}
}

func TestDetectEdgesBordersAlwaysNonEdge(t *testing.T) {
	g := NewGray(8, 8)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if (x+y)%2 == 0 {
				g.Set(x, y, 255)
			}
		}
	}

	out := DetectEdges(g)
	for x := 0; x < 8; x++ {
		if out.At(x, 0) != 0 || out.At(x, 7) != 0 {
			t.Fatalf("border row pixel at x=%d marked as edge", x)
		}
	}
	for y := 0; y < 8; y++ {
		if out.At(0, y) != 0 || out.At(7, y) != 0 {
			t.Fatalf("border column pixel at y=%d marked as edge", y)
		}
	}
}

func TestDetectEdgesBinaryOutput(t *testing.T) {
	g := NewGray(12, 12)
	for y := 0; y < 12; y++ {
		for x := 0; x < 12; x++ {
			g.Set(x, y, uint8(x*20))
		}
	}
	out := DetectEdges(g)
	for i, v := range out.Pix {
		if v != 0 && v != 255 {
			t.Fatalf("pixel %d = %d, want 0 or 255", i, v)
		}
	}
}
