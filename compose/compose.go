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

// Package compose duplicates an image side by side. The original image is
// placed at the left of a canvas twice its width and a copy is placed to the
// right, shifted right and down by Offset pixels.
//
// Because the canvas is only twice the width of the image, the shifted copy
// is clamped. Its rightmost Offset columns and bottom Offset rows are not
// drawn. An image that is no larger than Offset in either dimension cannot be
// duplicated because the position of the copy falls outside the canvas.
package compose

import (
	"github.com/jetsetilly/sidebyside/canvas"
	"github.com/jetsetilly/sidebyside/codec"
	"github.com/jetsetilly/sidebyside/digest"
	"github.com/jetsetilly/sidebyside/logger"
)

// Offset of the copy from the right half of the canvas, in both directions.
const Offset = 50

// Duplicate creates a new canvas twice the width of src with src drawn at the
// left and again offset into the right half.
func Duplicate(src *canvas.Canvas) (*canvas.Canvas, error) {
	dup, err := canvas.New(src.Width()*2, src.Height())
	if err != nil {
		return nil, err
	}

	err = dup.Blit(src, 0, 0)
	if err != nil {
		return nil, err
	}

	err = dup.Blit(src, src.Width()+Offset, Offset)
	if err != nil {
		return nil, err
	}

	logger.Logf(logger.Allow, "compose", "duplicated %s into %s [%s]", src, dup, digest.Of(dup))

	return dup, nil
}

// File loads the input file, duplicates it and saves the result to the output
// file. The output format is decided by the extension of the output filename.
func File(input string, output string) error {
	img, err := codec.Load(input)
	if err != nil {
		return err
	}

	dup, err := Duplicate(img)
	if err != nil {
		return err
	}

	return codec.Save(dup, output)
}
