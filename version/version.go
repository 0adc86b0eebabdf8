// This file is part of Frameinput.
//
// Frameinput is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Frameinput is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Frameinput.  If not, see <https://www.gnu.org/licenses/>.

// Package version reports the version of the program. The version number is
// set at link time:
//
//	go build -ldflags "-X github.com/jetsetilly/frameinput/version.number=v0.1.0"
//
// Without a version number the VCS information recorded by the Go toolchain is
// used instead.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "Frameinput"

// set with the -X linker flag
var number string

// Version returns the version string, the revision string and whether this is
// a numbered release.
//
// The version is "unreleased" if there is no version number but there is VCS
// information and "local" if there is neither. The revision is suffixed with
// "+dirty" if the source had uncommitted modifications.
func Version() (string, string, bool) {
	info, _ := debug.ReadBuildInfo()
	return describe(number, info)
}

func describe(number string, info *debug.BuildInfo) (string, string, bool) {
	var vcs bool
	var revision string
	var modified bool

	if info != nil {
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				revision = s.Value
			case "vcs.modified":
				modified = s.Value == "true"
			}
		}
	}

	if revision == "" {
		revision = "no revision information"
	} else if modified {
		revision = fmt.Sprintf("%s+dirty", revision)
	}

	switch {
	case number != "":
		return number, revision, true
	case vcs:
		return "unreleased", revision, false
	}
	return "local", revision, false
}

// Title returns the application name and version suitable for a window
// title.
func Title() string {
	v, _, _ := Version()
	return fmt.Sprintf("%s (%s)", ApplicationName, v)
}
