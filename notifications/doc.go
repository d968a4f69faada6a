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

// Package notifications allow the emulated machine's peripherals to
// communicate directly with the host. For example, the tape deck notifies the
// host when a block has been loaded so that the event can be shown to the
// user.
//
// Notifications are sometimes passed onto the display to indicate to the user
// the event that has happened. For some notifications it is appropriate for
// the host to deal with the notification invisibly.
package notifications
