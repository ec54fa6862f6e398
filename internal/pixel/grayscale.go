package pixel

// Grayscale reduces an RGBA buffer to a single-channel intensity map using
// the 0.299/0.587/0.114 luma weights. Alpha is ignored. The input is not
// modified.
func Grayscale(b *Buffer) *Gray {
	out := NewGray(b.Width, b.Height)
	n := b.Width * b.Height
	for i := 0; i < n; i++ {
		off := i * 4
		out.Pix[i] = luma(b.Data[off], b.Data[off+1], b.Data[off+2])
	}
	return out
}
