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

// Package canvas implements a flat RGBA pixel buffer and the Blit() function,
// which copies one canvas into another at an offset.
//
// Pixel data is stored row-major with four bytes per pixel in the order red,
// green, blue, alpha. There is no padding between rows so the stride of a
// canvas is always four times its width.
//
// Blit() clamps the copied region to the destination. Source rows and columns
// that would fall beyond the right or bottom edge of the destination are
// dropped. Only the offset itself must lie inside the destination. There is
// no scaling and no blending. Destination pixels are overwritten.
//
//	dest, _ := canvas.New(10, 10)
//	src, _ := canvas.New(5, 5)
//
//	// copies the top-left 2x2 pixels of src into the bottom-right corner of
//	// dest
//	err := dest.Blit(src, 8, 8)
package canvas
