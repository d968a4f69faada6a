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

package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// the base path for all resources. the value should not be used directly;
// use getBasePath() instead.
const baseResourcePath = ".gopherace"

// ResourcePath returns the resource string (representing the resource to be
// loaded) prepended with operating system specific details. Empty path
// elements are ignored.
func ResourcePath(resource ...string) string {
	p := make([]string, 0, len(resource)+1)
	p = append(p, getBasePath())
	for _, r := range resource {
		if r != "" {
			p = append(p, r)
		}
	}
	return filepath.Join(p...)
}

// MakeResourceDir ensures that the directory for the resource exists.
func MakeResourceDir(resource ...string) error {
	return os.MkdirAll(ResourcePath(resource...), 0o700)
}

// getBasePath returns baseResourcePath unadorned if it can be found in the
// current directory. Otherwise the user's config directory is prepended and
// the leading dot removed.
func getBasePath() string {
	if _, err := os.Stat(baseResourcePath); err == nil {
		return baseResourcePath
	}

	cnf, err := os.UserConfigDir()
	if err != nil {
		return baseResourcePath
	}
	return filepath.Join(cnf, baseResourcePath[1:])
}

// UniqueFilename creates a filename that (assuming a functioning clock) should
// not collide with any existing file. The function does not check for this.
//
// Format of returned string is:
//
//	prepend_name_YYYYMMDD_HHMMSS
//
// If name is empty the returned string will be of the format:
//
//	prepend_YYYYMMDD_HHMMSS
func UniqueFilename(prepend string, name string) string {
	timestamp := time.Now().Format("20060102_150405")
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Sprintf("%s_%s", prepend, timestamp)
	}
	return fmt.Sprintf("%s_%s_%s", prepend, name, timestamp)
}
