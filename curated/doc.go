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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The pattern is what identifies the kind of error. Packages export their
// patterns as constants so that callers can test for them with the Is()
// function:
//
//	const OutOfBounds = "invalid position: (%d, %d) outside %dx%d canvas"
//
//	e := curated.Errorf(OutOfBounds, x, y, w, h)
//
//	if curated.Is(e, OutOfBounds) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	e := curated.Errorf(OutOfBounds, x, y, w, h)
//	f := curated.Errorf("compose: %v", e)
//
//	if curated.Has(f, OutOfBounds) {
//		fmt.Println("true")
//	}
//
//	if curated.Is(f, OutOfBounds) {
//		// not printed. f was created with a different pattern
//		fmt.Println("true")
//	}
//
// Wrapped values that are errors, curated or not, are visible to the Unwrap()
// function of the standard errors package. This means that errors.Is() and
// errors.As() work as expected through a curated error:
//
//	_, err := os.Open(filename)
//	e := curated.Errorf("could not load file: %v", err)
//
//	if errors.Is(e, fs.ErrNotExist) {
//		fmt.Println("true")
//	}
//
// Repeated parts at the start of the message are collapsed. For example, an
// error wrapped twice with the same prefix:
//
//	e := curated.Errorf("codec: %v", curated.Errorf("codec: %v", "unsupported format"))
//
// will be printed as:
//
//	codec: unsupported format
package curated
