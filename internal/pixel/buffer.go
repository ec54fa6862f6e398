// Package pixel provides the raw pixel buffer types the scan pipeline
// operates on: 4-channel RGBA buffers as exchanged with the canvas layer,
// and single-channel intensity maps produced by the grayscale, smoothing
// and edge detection stages.
package pixel

import (
	"image"
	"image/draw"
)

// Buffer is a dense row-major RGBA pixel buffer, 4 bytes per pixel in
// R, G, B, A order. Invariant: len(Data) == Width*Height*4.
type Buffer struct {
	Data   []uint8
	Width  int
	Height int
}

// NewBuffer allocates a zeroed buffer of the given dimensions.
func NewBuffer(width, height int) *Buffer {
	return &Buffer{
		Data:   make([]uint8, width*height*4),
		Width:  width,
		Height: height,
	}
}

// At returns the channel value at (x, y). Channel 0-3 is R, G, B, A.
// Reads outside the buffer return 0.
func (b *Buffer) At(x, y, ch int) uint8 {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height || ch < 0 || ch > 3 {
		return 0
	}
	return b.Data[(y*b.Width+x)*4+ch]
}

// Set writes the four channel values at (x, y). Writes outside the buffer
// are dropped.
func (b *Buffer) Set(x, y int, r, g, bl, a uint8) {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return
	}
	off := (y*b.Width + x) * 4
	b.Data[off] = r
	b.Data[off+1] = g
	b.Data[off+2] = bl
	b.Data[off+3] = a
}

// Luma returns the perceptual brightness at (x, y) using the standard
// 0.299/0.587/0.114 channel weights. Out-of-range reads yield 0.
func (b *Buffer) Luma(x, y int) uint8 {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return 0
	}
	off := (y*b.Width + x) * 4
	return luma(b.Data[off], b.Data[off+1], b.Data[off+2])
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	out := NewBuffer(b.Width, b.Height)
	copy(out.Data, b.Data)
	return out
}

// FromImage converts any image.Image into a Buffer.
func FromImage(img image.Image) *Buffer {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	// Composite through an RGBA image so we read 8-bit channels directly
	// instead of going through the 16-bit color interface per pixel.
	rgba, ok := img.(*image.RGBA)
	if !ok {
		rgba = image.NewRGBA(image.Rect(0, 0, w, h))
		draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	}

	buf := NewBuffer(w, h)
	for y := 0; y < h; y++ {
		srcOff := rgba.PixOffset(rgba.Rect.Min.X, rgba.Rect.Min.Y+y)
		copy(buf.Data[y*w*4:(y+1)*w*4], rgba.Pix[srcOff:srcOff+w*4])
	}
	return buf
}

// ToImage converts the buffer back to an *image.RGBA sharing no storage.
func (b *Buffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.Width, b.Height))
	copy(img.Pix, b.Data)
	return img
}

// Gray is a dense row-major single-channel intensity map.
// Invariant: len(Pix) == Width*Height.
type Gray struct {
	Pix    []uint8
	Width  int
	Height int
}

// NewGray allocates a zeroed intensity map of the given dimensions.
func NewGray(width, height int) *Gray {
	return &Gray{
		Pix:    make([]uint8, width*height),
		Width:  width,
		Height: height,
	}
}

// At returns the intensity at (x, y). Reads outside the map return 0.
func (g *Gray) At(x, y int) uint8 {
	if x < 0 || y < 0 || x >= g.Width || y >= g.Height {
		return 0
	}
	return g.Pix[y*g.Width+x]
}

// Set writes the intensity at (x, y). Writes outside the map are dropped.
func (g *Gray) Set(x, y int, v uint8) {
	if x < 0 || y < 0 || x >= g.Width || y >= g.Height {
		return
	}
	g.Pix[y*g.Width+x] = v
}

// luma computes floor(0.299*R + 0.587*G + 0.114*B).
func luma(r, g, b uint8) uint8 {
	return uint8((299*uint32(r) + 587*uint32(g) + 114*uint32(b)) / 1000)
}
