// This file is part of sidebyside.
//
// sidebyside is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// sidebyside is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with sidebyside.  If not, see <https://www.gnu.org/licenses/>.

package canvas

import (
	"github.com/jetsetilly/sidebyside/curated"
	"github.com/jetsetilly/sidebyside/logger"
)

// Error patterns returned by the canvas package.
const (
	OutOfBounds = "invalid position: (%d, %d) outside %dx%d canvas"
	SelfBlit    = "cannot blit canvas onto itself"
)

// Blit copies the src canvas into the canvas at position x, y. The position
// must be inside the canvas or an OutOfBounds error is returned and the canvas
// is left unchanged.
//
// The copied region is clamped to the canvas. Columns of src beyond the right
// edge and rows beyond the bottom edge are not copied.
func (c *Canvas) Blit(src *Canvas, x, y int) error {
	if src == c {
		return curated.Errorf(SelfBlit)
	}

	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return curated.Errorf(OutOfBounds, x, y, c.width, c.height)
	}

	// width and height of the region to copy, in pixels
	w := min(src.width, c.width-x)
	h := min(src.height, c.height-y)
	if w <= 0 || h <= 0 {
		return nil
	}

	if w < src.width || h < src.height {
		logger.Logf(logger.Allow, "canvas", "blit %s at (%d, %d) clamped to %dx%d", src, x, y, w, h)
	} else {
		logger.Logf(logger.Allow, "canvas", "blit %s at (%d, %d)", src, x, y)
	}

	n := w * PixelDepth
	for i := range h {
		s := i * src.Stride()
		d := (y+i)*c.Stride() + x*PixelDepth
		copy(c.pix[d:d+n], src.pix[s:s+n])
	}

	return nil
}
