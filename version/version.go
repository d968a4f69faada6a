// This file is part of GopherAce.
//
// GopherAce is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherAce is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherAce.  If not, see <https://www.gnu.org/licenses/>.

// Package version reports the name and version of the application. The
// version number is set by the linker for release builds, for example:
//
//	go build -ldflags "-X github.com/gopherace/gopherace/version.number=v0.1.0"
//
// Otherwise the version is derived from the build information embedded by
// the Go toolchain.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "GopherAce"

// set by the linker for release builds
var number string

var (
	version  string
	revision string
)

// Version returns the version string, the revision string and whether this
// is a numbered release.
//
// The version string is "unreleased" if the program has been built from a
// repository without a version number and "local" if there is no version
// control information at all. The revision string is suffixed with "+dirty"
// if the repository had uncommitted changes.
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// String returns a single line describing the application version.
func String() string {
	if number != "" {
		return fmt.Sprintf("%s %s", ApplicationName, version)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, version, revision)
}

func init() {
	settings := make(map[string]string)
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			settings[s.Key] = s.Value
		}
	}

	revision = settings["vcs.revision"]
	switch {
	case revision == "":
		revision = "no revision information"
	case settings["vcs.modified"] == "true":
		revision = fmt.Sprintf("%s+dirty", revision)
	}

	switch {
	case number != "":
		version = number
	case settings["vcs"] != "":
		version = "unreleased"
	default:
		version = "local"
	}
}
