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
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/jetsetilly/sidebyside/curated"
)

// PixelDepth is the number of bytes used by each pixel.
const PixelDepth = 4

// Error patterns returned by the canvas package.
const (
	InvalidDimensions = "invalid dimensions: %dx%d"
	InvalidPixelData  = "invalid pixel data: %d bytes for %dx%d canvas"
)

// Canvas is a flat RGBA pixel buffer. The length of the buffer is always
// width*height*PixelDepth and the dimensions never change once the canvas has
// been created.
type Canvas struct {
	width  int
	height int
	pix    []byte
}

func checkDimensions(width, height int) error {
	if width <= 0 || height <= 0 {
		return curated.Errorf(InvalidDimensions, width, height)
	}
	if width > math.MaxInt/PixelDepth/height {
		return curated.Errorf(InvalidDimensions, width, height)
	}
	return nil
}

// New creates a blank canvas. Every byte of the new canvas is zero.
func New(width, height int) (*Canvas, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}

	return &Canvas{
		width:  width,
		height: height,
		pix:    make([]byte, width*height*PixelDepth),
	}, nil
}

// NewFromPix creates a canvas from existing pixel data. The canvas takes
// ownership of the pix slice and the caller should not use it afterwards.
func NewFromPix(width, height int, pix []byte) (*Canvas, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}

	if len(pix) != width*height*PixelDepth {
		return nil, curated.Errorf(InvalidPixelData, len(pix), width, height)
	}

	return &Canvas{
		width:  width,
		height: height,
		pix:    pix,
	}, nil
}

func (c *Canvas) String() string {
	return fmt.Sprintf("%dx%d", c.width, c.height)
}

// Width of canvas in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height of canvas in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// Stride is the number of bytes in a single row.
func (c *Canvas) Stride() int {
	return c.width * PixelDepth
}

// Pix returns the underlying pixel data. The returned slice should be treated
// as read-only.
func (c *Canvas) Pix() []byte {
	return c.pix
}

// Pixel returns the colour of the pixel at x, y. Pixels outside the canvas
// are returned as the zero colour.
func (c *Canvas) Pixel(x, y int) color.NRGBA {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return color.NRGBA{}
	}
	i := y*c.Stride() + x*PixelDepth
	return color.NRGBA{R: c.pix[i], G: c.pix[i+1], B: c.pix[i+2], A: c.pix[i+3]}
}

// NRGBA returns the canvas as an instance of image.NRGBA. The image shares the
// canvas' pixel data, no copy is made.
//
// Colour values are not premultiplied by alpha, so NRGBA is the correct image
// type for the canvas rather than image.RGBA.
func (c *Canvas) NRGBA() *image.NRGBA {
	return &image.NRGBA{
		Pix:    c.pix,
		Stride: c.Stride(),
		Rect:   image.Rect(0, 0, c.width, c.height),
	}
}
