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

package paths_test

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/gopherace/gopherace/paths"
	"github.com/gopherace/gopherace/test"
)

func TestPaths(t *testing.T) {
	// a .gopherace directory in the current directory takes priority
	dir := t.TempDir()
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(dir))
	defer os.Chdir(wd)

	test.DemandSuccess(t, os.Mkdir(".gopherace", 0o700))

	test.ExpectEquality(t, paths.ResourcePath("foo/bar", "baz"), ".gopherace/foo/bar/baz")
	test.ExpectEquality(t, paths.ResourcePath("foo/bar", ""), ".gopherace/foo/bar")
	test.ExpectEquality(t, paths.ResourcePath("", "baz"), ".gopherace/baz")
	test.ExpectEquality(t, paths.ResourcePath("", ""), ".gopherace")

	test.ExpectSuccess(t, paths.MakeResourceDir("tapes"))
	_, err = os.Stat(filepath.Join(".gopherace", "tapes"))
	test.ExpectSuccess(t, err)
}

func TestUniqueFilename(t *testing.T) {
	fn := paths.UniqueFilename("memviz", "")
	test.ExpectSuccess(t, regexp.MustCompile(`^memviz_\d{8}_\d{6}$`).MatchString(fn))

	fn = paths.UniqueFilename("tape", " game ")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "tape_game_"))
}
