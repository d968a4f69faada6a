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

// Package options processes the command line.
//
// There is one option. An argument equal to -s, in either case, attaches the
// following argument to the spooler. The upper case form, -S, also turns on
// warp mode before the file is attached. Any other argument is ignored. An
// option without a filename produces a diagnostic and is otherwise ignored.
//
// The flag package in the standard library is not used because it stops at
// the first unrecognised argument and does not allow case insensitive flags.
package options

import (
	"fmt"
	"io"
	"strings"

	"github.com/gopherace/gopherace/logger"
)

// tag string used in calls to Log().
const logTag = "options"

// The spool option in its two forms.
const (
	SpoolFlag     = "-s"
	SpoolWarpFlag = "-S"
)

// Target is the recipient of the actions requested on the command line.
type Target interface {
	Warp()
	Spool(path string) error
}

// Process the arguments, which should not include the program name.
// Diagnostics about malformed options are written to output. Failures to
// attach a file are logged and otherwise ignored. Returns the number of
// files successfully attached.
func Process(args []string, output io.Writer, tgt Target) int {
	var attached int

	for i := 0; i < len(args); i++ {
		flag := args[i]
		if !strings.EqualFold(flag, SpoolFlag) {
			continue
		}

		if flag == SpoolWarpFlag {
			tgt.Warp()
		}

		i++
		if i >= len(args) {
			fmt.Fprintf(output, "Error: Missing filename for %s arg\n", flag)
			continue
		}

		if err := tgt.Spool(args[i]); err != nil {
			logger.Log(logger.Allow, logTag, err)
			continue
		}
		attached++
	}

	return attached
}
