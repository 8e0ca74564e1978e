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

// Package digest is used to create fingerprints of canvas pixel data. A
// fingerprint is a SHA-1 hash of the canvas dimensions and pixels.
//
// Digests are chained. Every call to Canvas.Update() includes the previous
// digest value in the new hash, so a single hash can fingerprint a sequence
// of canvases. Call ResetDigest() to start a new chain.
//
// For a one-off fingerprint use the Of() function.
package digest

// Digest implementations compute a hash of data they have been given. The
// hash is returned by the Hash() function as a string.
type Digest interface {
	Hash() string
	ResetDigest()
}
