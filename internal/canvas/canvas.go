// Package canvas performs the crop, resample and compositing operations
// the geometric pipeline describes but never executes itself.
package canvas

import (
	"image"
	"math"

	"golang.org/x/image/draw"

	"sudoku-scanner/internal/pixel"
	"sudoku-scanner/pkg/geometry"
)

// Crop extracts a region of the source photo and resamples it to a
// side-by-side working buffer. Catmull-Rom keeps thin digit strokes
// intact when cells are scaled up from a low-resolution photo.
func Crop(src *image.RGBA, region geometry.Rect, side int) *pixel.Buffer {
	sr := image.Rect(
		int(math.Round(region.X)),
		int(math.Round(region.Y)),
		int(math.Round(region.X+region.Width)),
		int(math.Round(region.Y+region.Height)),
	).Intersect(src.Bounds())

	dst := image.NewRGBA(image.Rect(0, 0, side, side))
	if sr.Empty() {
		return pixel.FromImage(dst)
	}
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, sr, draw.Src, nil)
	return pixel.FromImage(dst)
}

// Pad composites a buffer onto a larger white canvas, adding a uniform
// border on all sides. Recognition engines read isolated glyphs more
// reliably with breathing room around them.
func Pad(b *pixel.Buffer, border int) *pixel.Buffer {
	if border <= 0 {
		return b.Clone()
	}
	out := pixel.NewBuffer(b.Width+2*border, b.Height+2*border)
	for i := range out.Data {
		out.Data[i] = 255
	}
	for y := 0; y < b.Height; y++ {
		srcOff := y * b.Width * 4
		dstOff := ((y+border)*out.Width + border) * 4
		copy(out.Data[dstOff:dstOff+b.Width*4], b.Data[srcOff:srcOff+b.Width*4])
	}
	return out
}
