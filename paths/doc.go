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

// Package paths contains functions to prepare paths to GopherAce resources.
//
// The ResourcePath() function modifies the supplied resource string such that
// it is prepended with the appropriate config directory. For example, the
// following will return the path to the preferences file.
//
//	p := paths.ResourcePath("", "preferences")
//
// If the base resource path, ".gopherace", is present in the current
// directory then that is the base path used. Otherwise the user's config
// directory is used, as returned by os.UserConfigDir(). On a Linux system the
// path in the example above will be:
//
//	/home/user/.config/gopherace/preferences
package paths
