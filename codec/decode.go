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

package codec

import (
	"image"
	"io"
	"os"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"

	// imaging registers bmp and tiff. webp is decode only
	_ "golang.org/x/image/webp"

	"github.com/jetsetilly/sidebyside/canvas"
	"github.com/jetsetilly/sidebyside/curated"
	"github.com/jetsetilly/sidebyside/logger"
)

// Error patterns returned by Load() and Decode().
const (
	LoadError   = "could not load file: %v"
	DecodeError = "could not decode image: %v"
)

// Load reads and decodes the named image file.
func Load(filename string) (*canvas.Canvas, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf(LoadError, err)
	}
	defer f.Close()

	c, err := Decode(f)
	if err != nil {
		return nil, err
	}

	logger.Logf(logger.Allow, "codec", "loaded %s (%s)", filename, c)

	return c, nil
}

// Decode image data from io.Reader.
func Decode(r io.Reader) (*canvas.Canvas, error) {
	img, err := imaging.Decode(r)
	if err != nil {
		return nil, curated.Errorf(DecodeError, err)
	}

	c, err := fromImage(img)
	if err != nil {
		return nil, curated.Errorf(DecodeError, err)
	}

	return c, nil
}

// fromImage converts any image to a canvas. The origin of the image bounds
// becomes the top-left pixel of the canvas.
func fromImage(img image.Image) (*canvas.Canvas, error) {
	b := img.Bounds()

	// no conversion needed if the image is a tightly packed *image.NRGBA with
	// its origin at zero. the decoded image isn't referenced anywhere else so
	// the canvas can take ownership of the pixel data
	if n, ok := img.(*image.NRGBA); ok {
		if b.Min == (image.Point{}) && n.Stride == b.Dx()*canvas.PixelDepth {
			return canvas.NewFromPix(b.Dx(), b.Dy(), n.Pix[:n.Stride*b.Dy()])
		}
	}

	// use the x/image/draw package to convert to *image.NRGBA
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Copy(dst, image.Point{}, img, b, draw.Src, nil)

	return canvas.NewFromPix(b.Dx(), b.Dy(), dst.Pix)
}
