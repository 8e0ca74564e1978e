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

package digest

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"

	"github.com/jetsetilly/sidebyside/canvas"
)

// Canvas is an implementation of the Digest interface for canvas pixel data.
type Canvas struct {
	digest [sha1.Size]byte
}

// NewCanvas is the preferred method of initialisation for the Canvas type.
func NewCanvas() *Canvas {
	return &Canvas{}
}

// Hash implements the Digest interface.
func (dig Canvas) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Canvas) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
}

// Update the digest with the contents of the canvas.
func (dig *Canvas) Update(c *canvas.Canvas) {
	h := sha1.New()

	// chain fingerprints by hashing the value of the last fingerprint before
	// the canvas data
	h.Write(dig.digest[:])

	// dimensions are part of the fingerprint. otherwise a 2x1 canvas and a
	// 1x2 canvas with the same pixels would be indistinguishable
	var dims [16]byte
	binary.LittleEndian.PutUint64(dims[:8], uint64(c.Width()))
	binary.LittleEndian.PutUint64(dims[8:], uint64(c.Height()))
	h.Write(dims[:])

	h.Write(c.Pix())
	copy(dig.digest[:], h.Sum(nil))
}

// Of returns the unchained digest of a single canvas.
func Of(c *canvas.Canvas) string {
	dig := NewCanvas()
	dig.Update(c)
	return dig.Hash()
}
