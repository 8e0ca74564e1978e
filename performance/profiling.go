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

package performance

import (
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/jetsetilly/sidebyside/curated"
)

// ProfileError is the error pattern for any failure to create a profile.
const ProfileError = "profiling: %v"

// Profile selects which profiles to create.
type Profile struct {
	CPU    string
	Memory string
}

// NoProfile runs the function without any profiling.
var NoProfile = Profile{}

// DefaultProfile writes both profiles to files in the working directory.
var DefaultProfile = Profile{
	CPU:    "cpu.profile",
	Memory: "mem.profile",
}

// RunProfiler runs the function and creates the profiles named in the Profile
// argument. An empty filename means that profile is not created. The error
// returned by run() takes precedence over any profiling error.
func RunProfiler(profile Profile, run func() error) error {
	if profile.CPU != "" {
		f, err := os.Create(profile.CPU)
		if err != nil {
			return curated.Errorf(ProfileError, err)
		}
		defer f.Close()

		err = pprof.StartCPUProfile(f)
		if err != nil {
			return curated.Errorf(ProfileError, err)
		}
		defer pprof.StopCPUProfile()
	}

	err := run()
	if err != nil {
		return err
	}

	if profile.Memory != "" {
		f, err := os.Create(profile.Memory)
		if err != nil {
			return curated.Errorf(ProfileError, err)
		}
		defer f.Close()

		runtime.GC()
		err = pprof.WriteHeapProfile(f)
		if err != nil {
			return curated.Errorf(ProfileError, err)
		}
	}

	return nil
}
