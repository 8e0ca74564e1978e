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

// Package cmdline provides an easy way of handling command line arguments. It
// is a thin layer over the flag package from the standard library that
// formats help messages and makes the result of parsing explicit.
//
// The idiomatic usage is:
//
//	args := &cmdline.Args{Output: os.Stdout}
//	args.NewArgs(os.Args[1:])
//	log := args.AddBool("log", false, "echo log to stderr")
//
//	switch p, err := args.Parse(); p {
//	case cmdline.ParseHelp:
//		// help message has already been printed
//		return nil
//	case cmdline.ParseError:
//		return err
//	}
//
//	input := args.GetArg(0)
//
// Flags must come before positional arguments. This is the rule of the flag
// package.
package cmdline
