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

package cmdline

import (
	"flag"
	"io"
)

// Args is the set of flags and arguments for a program. The Output field
// should be specified before calling Parse() or you will not see any help
// messages.
type Args struct {
	// where to print output (help messages etc)
	Output io.Writer

	// the underlying flag structure. a new flagset is created on every call to
	// NewArgs()
	flags *flag.FlagSet

	// the argument list as specified by the NewArgs() function
	args []string

	// whether Parse() has been called since the last call to NewArgs()
	parsed bool

	// summary of positional arguments. printed as part of the help message
	usage string

	// some programs will benefit from a verbose explanation
	additionalHelp string
}

// NewArgs with a string of arguments (from the command line for example).
func (a *Args) NewArgs(args []string) {
	a.args = args
	a.flags = flag.NewFlagSet("", flag.ContinueOnError)
	a.parsed = false
}

// Usage is a short summary of the positional arguments, printed at the head of
// the help message. For example, "<input> <output>".
func (a *Args) Usage(usage string) {
	a.usage = usage
}

// AdditionalHelp allows you to add extensive help text to be displayed in
// addition to the regular help on available flags.
func (a *Args) AdditionalHelp(help string) {
	a.additionalHelp = help
}

// Parsed returns false if Parse() has not yet been called since a call to
// NewArgs(). Note that Args is considered to be Parsed() even if Parse()
// results in an error.
func (a *Args) Parsed() bool {
	return a.parsed
}

// ParseResult is returned from the Parse() function.
type ParseResult int

// a list of valid ParseResult values.
const (
	// Continue with command line processing.
	ParseContinue ParseResult = iota

	// Help was requested and has been printed.
	ParseHelp

	// an error has occurred and is returned as the second return value.
	ParseError
)

// Parse the arguments. Help messages are handled automatically by the
// function. The return value ParseHelp is to help you guide your program
// appropriately. It should be treated similarly to an error but without the
// need to display anything further to the user.
func (a *Args) Parse() (ParseResult, error) {
	a.parsed = true

	// set output of flags.Parse() to an instance of helpWriter
	hw := &helpWriter{}
	a.flags.SetOutput(hw)

	err := a.flags.Parse(a.args)
	if err != nil {
		if err == flag.ErrHelp {
			hw.Help(a.Output, a.usage, a.additionalHelp)
			return ParseHelp, nil
		}
		return ParseError, err
	}

	return ParseContinue, nil
}

// RemainingArgs after a call to Parse() ie. arguments that aren't flags.
func (a *Args) RemainingArgs() []string {
	return a.flags.Args()
}

// NArg is the number of arguments remaining after a call to Parse().
func (a *Args) NArg() int {
	return a.flags.NArg()
}

// GetArg returns the numbered argument that isn't a flag.
func (a *Args) GetArg(i int) string {
	return a.flags.Arg(i)
}

// AddBool flag for next call to Parse().
func (a *Args) AddBool(name string, value bool, usage string) *bool {
	return a.flags.Bool(name, value, usage)
}

// AddString flag for next call to Parse().
func (a *Args) AddString(name string, value string, usage string) *string {
	return a.flags.String(name, value, usage)
}
