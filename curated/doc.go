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

// Package curated is a helper package for the plain Go error type. Curated
// errors are created with Errorf(), which takes a pattern and placeholder
// values in the same way as fmt.Errorf(). The difference is that the pattern
// is remembered and can be tested for later:
//
//	const UnsupportedRate = "pacing: unsupported tick rate (%d)"
//
//	err := curated.Errorf(UnsupportedRate, 7)
//	if curated.Is(err, UnsupportedRate) {
//		...
//	}
//
// Packages that return curated errors define their patterns as exported
// string constants.
//
// Is() only checks the outermost error. Has() searches the whole chain of
// curated errors, which is formed by passing a curated error as one of the
// values to Errorf():
//
//	err := curated.Errorf("startup: %s: %v", "firmware", curated.Errorf(NoFirmware))
//	curated.Has(err, NoFirmware) == true
//
// The Error() string is normalised so that adjacent duplicate parts of the
// chain are removed. The parts of a chain are separated by ": ". This means a
// package can wrap an error with its own prefix without worrying whether the
// callee has already done so.
//
// The first value that is an error (curated or not) is returned by Unwrap(),
// so the standard library's errors.Is() and errors.As() functions also work
// through a curated error.
package curated
