package pixel

// smoothKernel is a fixed 3x3 weighted-average kernel, normalized by 16.
var smoothKernel = [9]uint32{
	1, 2, 1,
	2, 4, 2,
	1, 2, 1,
}

// Smooth applies the 3x3 weighted-average blur to an intensity map and
// returns a new map. Border pixels keep their original value: the kernel
// is only applied where the full 3x3 neighborhood is in bounds, so the
// blur never fabricates edge artifacts at the image border.
func Smooth(g *Gray) *Gray {
	out := NewGray(g.Width, g.Height)
	copy(out.Pix, g.Pix)

	for y := 1; y < g.Height-1; y++ {
		for x := 1; x < g.Width-1; x++ {
			var sum uint32
			k := 0
			for dy := -1; dy <= 1; dy++ {
				row := (y + dy) * g.Width
				for dx := -1; dx <= 1; dx++ {
					sum += smoothKernel[k] * uint32(g.Pix[row+x+dx])
					k++
				}
			}
			out.Pix[y*g.Width+x] = uint8(sum / 16)
		}
	}
	return out
}
