package render

import "image/color"

// Board colors, matching the original canvas demo.
var (
	GridColor  = color.RGBA{R: 0xCC, G: 0xCC, B: 0xCC, A: 0xFF}
	DeadColor  = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	AliveColor = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
)

// BoardBounds returns the pixel dimensions of a board of w x h cells drawn
// with cellSize-pixel squares separated by 1-pixel grid lines.
func BoardBounds(w, h, cellSize int) (int, int) {
	return (cellSize+1)*w + 1, (cellSize+1)*h + 1
}

// CellAtPoint translates a pixel position into board coordinates. It reports
// ok=false for points outside the board or on a grid line.
func CellAtPoint(px, py, cellSize, w, h int) (row, col int, ok bool) {
	pw, ph := BoardBounds(w, h, cellSize)
	if px < 0 || py < 0 || px >= pw || py >= ph {
		return 0, 0, false
	}
	span := cellSize + 1
	if px%span == 0 || py%span == 0 {
		return 0, 0, false
	}
	return py / span, px / span, true
}

// fillBoardRGBA converts binary cell data (0/1) into RGBA pixels in buf,
// drawing grid lines between cells. buf must hold 4 bytes per board pixel.
func fillBoardRGBA(buf []byte, cells []uint8, w, h, cellSize int, grid, dead, alive color.Color) {
	pw, ph := BoardBounds(w, h, cellSize)
	span := cellSize + 1

	gr, gg, gb, ga := rgba8(grid)
	dr, dg, db, da := rgba8(dead)
	ar, ag, ab, aa := rgba8(alive)

	for py := 0; py < ph; py++ {
		rowBase := py * pw * 4
		if py%span == 0 {
			for px := 0; px < pw; px++ {
				putPixel(buf, rowBase+px*4, gr, gg, gb, ga)
			}
			continue
		}
		row := (py / span) * w
		for px := 0; px < pw; px++ {
			base := rowBase + px*4
			if px%span == 0 {
				putPixel(buf, base, gr, gg, gb, ga)
				continue
			}
			if cells[row+px/span] != 0 {
				putPixel(buf, base, ar, ag, ab, aa)
			} else {
				putPixel(buf, base, dr, dg, db, da)
			}
		}
	}
}

func putPixel(buf []byte, base int, r, g, b, a uint8) {
	buf[base+0] = r
	buf[base+1] = g
	buf[base+2] = b
	buf[base+3] = a
}

func rgba8(c color.Color) (uint8, uint8, uint8, uint8) {
	r, g, b, a := c.RGBA()
	return uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)
}
