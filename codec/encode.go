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
	"io"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/jetsetilly/sidebyside/canvas"
	"github.com/jetsetilly/sidebyside/curated"
	"github.com/jetsetilly/sidebyside/logger"
)

// EncodeError is the error pattern returned by Save() and Encode().
const EncodeError = "could not save image: %v"

// permissions of a newly saved file. subject to the process umask like any
// other file created by os.Create()
const filePerm = 0644

// Format returns the image format implied by the extension of filename.
func Format(filename string) (imaging.Format, error) {
	format, err := imaging.FormatFromFilename(filename)
	if err != nil {
		return format, curated.Errorf(EncodeError, err)
	}
	return format, nil
}

// Encode canvas to io.Writer in the specified format.
func Encode(w io.Writer, c *canvas.Canvas, format imaging.Format) error {
	err := imaging.Encode(w, c.NRGBA(), format)
	if err != nil {
		return curated.Errorf(EncodeError, err)
	}
	return nil
}

// Save canvas to the named file. The format is decided by the file extension.
// An existing file will be replaced.
func Save(c *canvas.Canvas, filename string) error {
	format, err := Format(filename)
	if err != nil {
		return err
	}

	f, err := os.CreateTemp(filepath.Dir(filename), "."+filepath.Base(filename)+".*")
	if err != nil {
		return curated.Errorf(EncodeError, err)
	}

	// remove temporary file on any error. after a successful rename the
	// temporary file no longer exists and Remove() will fail harmlessly
	defer os.Remove(f.Name())

	err = Encode(f, c, format)
	if err != nil {
		f.Close()
		return err
	}

	err = f.Chmod(filePerm)
	if err != nil {
		f.Close()
		return curated.Errorf(EncodeError, err)
	}

	err = f.Close()
	if err != nil {
		return curated.Errorf(EncodeError, err)
	}

	err = os.Rename(f.Name(), filename)
	if err != nil {
		return curated.Errorf(EncodeError, err)
	}

	logger.Logf(logger.Allow, "codec", "saved %s (%s %s)", filename, c, format)

	return nil
}
