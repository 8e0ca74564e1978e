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

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jetsetilly/sidebyside/cmdline"
	"github.com/jetsetilly/sidebyside/compose"
	"github.com/jetsetilly/sidebyside/curated"
	"github.com/jetsetilly/sidebyside/logger"
	"github.com/jetsetilly/sidebyside/performance"
	"github.com/jetsetilly/sidebyside/statsview"
	"github.com/jetsetilly/sidebyside/version"
)

// UsageError is returned when the number of arguments is wrong.
const UsageError = "usage: %s [flags] <input> <output>"

const additionalHelp = `The input image is drawn at the left of a new image twice its width. A copy
is drawn in the right half, 50 pixels to the right and 50 pixels down. The
output format is chosen by the extension of the output filename.`

// the only place where an error ends the program. every other function returns
// the error to its caller
func main() {
	err := launch(os.Args[1:], os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func launch(argv []string, stdout io.Writer, stderr io.Writer) error {
	args := &cmdline.Args{Output: stdout}
	args.NewArgs(argv)
	args.Usage("[flags] <input> <output>")
	args.AdditionalHelp(additionalHelp)

	log := args.AddBool("log", false, "echo log to stderr")
	profile := args.AddBool("profile", false, "write cpu.profile and mem.profile to the working directory")
	stats := args.AddBool("statsview", false, "run stats server (only available in statsview builds)")
	showVersion := args.AddBool("version", false, "print version information and exit")

	switch p, err := args.Parse(); p {
	case cmdline.ParseHelp:
		return nil
	case cmdline.ParseError:
		return err
	}

	if *showVersion {
		fmt.Fprintln(stdout, version.String())
		return nil
	}

	if *log {
		logger.SetEcho(stderr)
		defer logger.SetEcho(nil)
	}

	if args.NArg() != 2 {
		return curated.Errorf(UsageError, version.ApplicationName)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(stderr)
		} else {
			logger.Log(logger.Allow, "statsview", "not available in this build")
		}
	}

	prof := performance.NoProfile
	if *profile {
		prof = performance.DefaultProfile
	}

	return performance.RunProfiler(prof, func() error {
		return compose.File(args.GetArg(0), args.GetArg(1))
	})
}
