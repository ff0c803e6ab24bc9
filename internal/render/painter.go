//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// BoardPainter updates a single RGBA image with the board's grid lines and
// cell squares.
type BoardPainter struct {
	w, h     int
	cellSize int
	img      *ebiten.Image
	buf      []byte
}

// NewBoardPainter allocates a painter for a board of w x h cells.
func NewBoardPainter(w, h, cellSize int) *BoardPainter {
	if cellSize <= 0 {
		cellSize = 1
	}
	pw, ph := BoardBounds(w, h, cellSize)
	return &BoardPainter{
		w:        w,
		h:        h,
		cellSize: cellSize,
		img:      ebiten.NewImage(pw, ph),
		buf:      make([]byte, 4*pw*ph),
	}
}

// Blit uploads the provided cells into the painter image and draws it.
func (bp *BoardPainter) Blit(dst *ebiten.Image, cells []uint8, grid, dead, alive color.Color) {
	if len(cells) != bp.w*bp.h {
		return
	}
	fillBoardRGBA(bp.buf, cells, bp.w, bp.h, bp.cellSize, grid, dead, alive)
	bp.img.WritePixels(bp.buf)

	op := &ebiten.DrawImageOptions{}
	dst.DrawImage(bp.img, op)
}

// Size returns the pixel dimensions of the painted board.
func (bp *BoardPainter) Size() (int, int) {
	return BoardBounds(bp.w, bp.h, bp.cellSize)
}

// CellSize returns the pixel size of one cell square.
func (bp *BoardPainter) CellSize() int { return bp.cellSize }
