package canvas

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"sudoku-scanner/internal/pixel"
	"sudoku-scanner/pkg/geometry"
)

func TestCropResamplesToWorkingSize(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 100, 100))
	draw.Draw(src, src.Bounds(), image.NewUniform(color.RGBA{R: 200, G: 200, B: 200, A: 255}), image.Point{}, draw.Src)

	buf := Crop(src, geometry.Rect{X: 10, Y: 10, Width: 30, Height: 30}, 64)

	if buf.Width != 64 || buf.Height != 64 {
		t.Fatalf("crop size = %dx%d, want 64x64", buf.Width, buf.Height)
	}
	if got := buf.At(32, 32, 0); got != 200 {
		t.Errorf("uniform source resampled to %d, want 200", got)
	}
}

func TestCropPreservesRegionContent(t *testing.T) {
	// Black left half, white right half; cropping the left half must
	// produce a dark buffer.
	src := image.NewRGBA(image.Rect(0, 0, 100, 100))
	draw.Draw(src, image.Rect(50, 0, 100, 100), image.NewUniform(color.White), image.Point{}, draw.Src)

	left := Crop(src, geometry.Rect{X: 0, Y: 0, Width: 50, Height: 100}, 32)
	right := Crop(src, geometry.Rect{X: 50, Y: 0, Width: 50, Height: 100}, 32)

	if got := left.Luma(16, 16); got > 10 {
		t.Errorf("left crop luma = %d, want near 0", got)
	}
	if got := right.Luma(16, 16); got < 245 {
		t.Errorf("right crop luma = %d, want near 255", got)
	}
}

func TestCropOutsideImageYieldsBlank(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 10, 10))
	buf := Crop(src, geometry.Rect{X: 50, Y: 50, Width: 20, Height: 20}, 16)
	if buf.Width != 16 || buf.Height != 16 {
		t.Fatalf("crop size = %dx%d, want 16x16", buf.Width, buf.Height)
	}
}

func TestPad(t *testing.T) {
	buf := pixel.NewBuffer(4, 4) // all black, alpha 0

	out := Pad(buf, 3)

	if out.Width != 10 || out.Height != 10 {
		t.Fatalf("padded size = %dx%d, want 10x10", out.Width, out.Height)
	}
	// Border is white.
	for _, p := range [][2]int{{0, 0}, {9, 9}, {5, 0}, {0, 5}, {9, 4}} {
		for ch := 0; ch < 4; ch++ {
			if got := out.At(p[0], p[1], ch); got != 255 {
				t.Fatalf("border (%d,%d) ch%d = %d, want 255", p[0], p[1], ch, got)
			}
		}
	}
	// Interior keeps the original content.
	if got := out.At(3, 3, 0); got != 0 {
		t.Errorf("interior = %d, want original 0", got)
	}
}

func TestPadZeroBorderIsCopy(t *testing.T) {
	buf := pixel.NewBuffer(4, 4)
	buf.Set(1, 1, 9, 9, 9, 9)

	out := Pad(buf, 0)

	if out == buf {
		t.Fatal("Pad returned the input buffer instead of a copy")
	}
	for i := range buf.Data {
		if out.Data[i] != buf.Data[i] {
			t.Fatalf("copy differs at byte %d", i)
		}
	}
}
