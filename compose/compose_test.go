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

package compose_test

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/sidebyside/canvas"
	"github.com/jetsetilly/sidebyside/codec"
	"github.com/jetsetilly/sidebyside/compose"
	"github.com/jetsetilly/sidebyside/curated"
	"github.com/jetsetilly/sidebyside/digest"
	"github.com/jetsetilly/sidebyside/test"
)

// source returns an opaque canvas where the red and green channels identify
// the pixel position.
func source(t *testing.T, width, height int) *canvas.Canvas {
	t.Helper()
	c, err := canvas.New(width, height)
	test.DemandSuccess(t, err)
	pix := c.Pix()
	for y := range height {
		for x := range width {
			i := y*c.Stride() + x*canvas.PixelDepth
			pix[i] = byte(x)
			pix[i+1] = byte(y)
			pix[i+2] = 0xaa
			pix[i+3] = 0xff
		}
	}
	return c
}

func TestDuplicate(t *testing.T) {
	const w = 80
	const h = 60

	src := source(t, w, h)
	before := digest.Of(src)

	dup, err := compose.Duplicate(src)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, dup.Width(), w*2)
	test.DemandEquality(t, dup.Height(), h)

	// source is never modified
	test.ExpectEquality(t, digest.Of(src), before)

	for y := range h {
		for x := range w * 2 {
			var expected color.NRGBA

			switch {
			case x < w:
				// left half is the original
				expected = src.Pixel(x, y)
			case x >= w+compose.Offset && y >= compose.Offset:
				// copy region is (w-Offset) x (h-Offset) from the top-left of src
				expected = src.Pixel(x-w-compose.Offset, y-compose.Offset)
			}

			if !test.ExpectEquality(t, dup.Pixel(x, y), expected, x, y) {
				return
			}
		}
	}
}

func TestDuplicateClampedRegion(t *testing.T) {
	const w = 51
	const h = 51

	src := source(t, w, h)
	dup, err := compose.Duplicate(src)
	test.DemandSuccess(t, err)

	// the copy is a single pixel in the bottom-right corner
	test.ExpectEquality(t, dup.Pixel(w*2-1, h-1), src.Pixel(0, 0))
	test.ExpectEquality(t, dup.Pixel(w*2-2, h-1), color.NRGBA{})
	test.ExpectEquality(t, dup.Pixel(w*2-1, h-2), color.NRGBA{})
}

func TestDuplicateTooSmall(t *testing.T) {
	for _, d := range [][2]int{{50, 100}, {100, 50}, {1, 1}} {
		src := source(t, d[0], d[1])
		_, err := compose.Duplicate(src)
		test.ExpectSuccess(t, curated.Is(err, canvas.OutOfBounds), d)
	}
}

func TestFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.png")
	output := filepath.Join(dir, "out.png")

	src := source(t, 64, 64)
	test.DemandSuccess(t, codec.Save(src, input))

	err := compose.File(input, output)
	test.DemandSuccess(t, err)

	expected, err := compose.Duplicate(src)
	test.DemandSuccess(t, err)

	got, err := codec.Load(output)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, got.Width(), 128)
	test.ExpectEquality(t, got.Height(), 64)
	test.ExpectSuccess(t, bytes.Equal(got.Pix(), expected.Pix()))
}

func TestFileErrors(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.png")
	output := filepath.Join(dir, "out.png")

	// missing input
	err := compose.File(input, output)
	test.ExpectSuccess(t, curated.Is(err, codec.LoadError))

	// input too small to duplicate. no output is written
	test.DemandSuccess(t, codec.Save(source(t, 10, 10), input))
	err = compose.File(input, output)
	test.ExpectSuccess(t, curated.Is(err, canvas.OutOfBounds))
	_, err = os.Stat(output)
	test.ExpectFailure(t, err)

	// unsupported output format
	test.DemandSuccess(t, codec.Save(source(t, 60, 60), input))
	err = compose.File(input, filepath.Join(dir, "out.unknown"))
	test.ExpectSuccess(t, curated.Is(err, codec.EncodeError))
}
