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

// Package preferences collates the preference values used by the emulated
// machine and the host harness. Values are stored on disk in the file named
// by PrefsFile in the resource directory (see the paths package).
//
// Values can be overridden for a single run with the GOPHERACE_PREFS
// environment variable, which takes a prefs string as described by the prefs
// package. For example:
//
//	GOPHERACE_PREFS="display.kind::terminal; pacing.ticksPerSecond::25"
package preferences
