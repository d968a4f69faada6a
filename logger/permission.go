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

package logger

// Permission is implemented by anything that decides whether a log request
// should result in a new entry. The emulator's Environment is the usual
// implementation.
type Permission interface {
	AllowLogging() bool
}

type always bool

func (a always) AllowLogging() bool {
	return bool(a)
}

// Allow permits every request. For use where there is no Environment.
var Allow Permission = always(true)
