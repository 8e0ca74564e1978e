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

// Package codec loads images from disk into a canvas and saves a canvas back
// to disk. The canvas package itself knows nothing about file formats.
//
// Decoding sniffs the format from the file contents. PNG, JPEG, GIF, BMP,
// TIFF and WebP are recognised. Encoding chooses the format from the
// extension of the output filename. WebP is not available for output.
//
// Saving is atomic. The image is encoded to a temporary file in the same
// directory as the output and renamed only once encoding has succeeded. A
// failed save never leaves a partially written file behind.
package codec
