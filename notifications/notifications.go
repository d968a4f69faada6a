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

package notifications

// Notice describes events that somehow change the presentation of the
// emulation.
type Notice string

// List of defined notifications.
const (
	// the spool file has started or finished being typed into the machine
	NotifySpoolStarted Notice = "NotifySpoolStarted"
	NotifySpoolEnded   Notice = "NotifySpoolEnded"

	// a tape has been inserted into or removed from the tape deck
	NotifyTapeInserted Notice = "NotifyTapeInserted"
	NotifyTapeEjected  Notice = "NotifyTapeEjected"

	// a block has been transferred by one of the tape traps
	NotifyTapeBlockLoaded Notice = "NotifyTapeBlockLoaded"
	NotifyTapeBlockSaved  Notice = "NotifyTapeBlockSaved"

	// the tape has run out of blocks
	NotifyTapeEnd Notice = "NotifyTapeEnd"

	// the preferences file has been reloaded
	NotifyPrefsReloaded Notice = "NotifyPrefsReloaded"
)

// Notify is used for direct communication between the peripherals and the
// host.
type Notify interface {
	Notify(notice Notice) error
}
