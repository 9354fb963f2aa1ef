package image

// FlipX mirrors the buffer horizontally in place (columns swap left/right).
func (b *ImageBuf) FlipX() {
	bpp := b.format.BytesPerPixel()
	tmp := make([]byte, bpp)
	for y := range b.height {
		row := b.RowBytes(y)
		for l, r := 0, b.width-1; l < r; l, r = l+1, r-1 {
			lo, ro := l*bpp, r*bpp
			copy(tmp, row[lo:lo+bpp])
			copy(row[lo:lo+bpp], row[ro:ro+bpp])
			copy(row[ro:ro+bpp], tmp)
		}
	}
}

// FlipY mirrors the buffer vertically in place (rows swap top/bottom).
func (b *ImageBuf) FlipY() {
	tmp := make([]byte, b.format.RowBytes(b.width))
	for t, bot := 0, b.height-1; t < bot; t, bot = t+1, bot-1 {
		top, bottom := b.RowBytes(t), b.RowBytes(bot)
		copy(tmp, top)
		copy(top, bottom)
		copy(bottom, tmp)
	}
}
