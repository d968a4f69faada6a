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

// Package statsview is an optional package that is only fully built when the
// statsview build tag is present. Without the tag, Launch() does nothing and
// Available() returns false. The server is stopped by calling the function
// returned by Launch().
//
// It provides a HTTP server running locally offering runtime statistics of
// the emulator process. Underlying functionality provided by
// "github.com/go-echarts/statsview"
//
// After launch, graphical statistics will be viewable at:
//
//	localhost:12680/debug/statsview
//
// And standard Go pprof statistics available at:
//
//	localhost:12680/debug/pprof/
package statsview
