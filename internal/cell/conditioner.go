// Package cell conditions a single cell buffer for recognition and
// decides whether a cell is blank at all. Every transform allocates a new
// buffer and leaves alpha unchanged.
package cell

import "sudoku-scanner/internal/pixel"

// dilateLumaMax is the neighbor luma below which a pixel is pulled to
// black during dilation.
const dilateLumaMax = 128

// Contrast pushes every color channel away from the buffer's mean luma by
// the given factor, clamped to [0, 255]. Factors above 1 stretch the
// separation between digit strokes and paper.
func Contrast(b *pixel.Buffer, factor float64) *pixel.Buffer {
	mean := meanLuma(b)
	out := b.Clone()
	for i := 0; i < len(out.Data); i += 4 {
		for ch := 0; ch < 3; ch++ {
			v := mean + (float64(out.Data[i+ch])-mean)*factor
			out.Data[i+ch] = clamp255(v)
		}
	}
	return out
}

// Binarize maps every pixel to full black or full white by comparing its
// luma against the threshold. Pixels below the threshold become black.
// Binarizing an already-binarized buffer with the same threshold is a
// no-op.
func Binarize(b *pixel.Buffer, threshold uint8) *pixel.Buffer {
	out := b.Clone()
	for i := 0; i < len(out.Data); i += 4 {
		v := uint8(0)
		if lumaAt(out.Data, i) >= threshold {
			v = 255
		}
		out.Data[i] = v
		out.Data[i+1] = v
		out.Data[i+2] = v
	}
	return out
}

// Dilate grows dark strokes by one pixel: any pixel with an 8-neighbor
// whose luma is below 128 becomes black. Used on the retry path after a
// failed recognition to thicken strokes a low-resolution scan renders as
// broken lines; an empty cell has no dark neighbors and is unaffected.
func Dilate(b *pixel.Buffer) *pixel.Buffer {
	out := b.Clone()
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			if hasDarkNeighbor(b, x, y) {
				off := (y*b.Width + x) * 4
				out.Data[off] = 0
				out.Data[off+1] = 0
				out.Data[off+2] = 0
			}
		}
	}
	return out
}

func hasDarkNeighbor(b *pixel.Buffer, x, y int) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if nx < 0 || ny < 0 || nx >= b.Width || ny >= b.Height {
				continue
			}
			if b.Luma(nx, ny) < dilateLumaMax {
				return true
			}
		}
	}
	return false
}

func meanLuma(b *pixel.Buffer) float64 {
	n := b.Width * b.Height
	if n == 0 {
		return 0
	}
	var sum float64
	for i := 0; i < len(b.Data); i += 4 {
		sum += float64(lumaAt(b.Data, i))
	}
	return sum / float64(n)
}

func lumaAt(data []uint8, off int) uint8 {
	return uint8((299*uint32(data[off]) + 587*uint32(data[off+1]) + 114*uint32(data[off+2])) / 1000)
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
