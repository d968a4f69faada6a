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

// Package prefs facilitates the storage of preference values. Values are
// added to a Disk instance under a key and can then be saved to and loaded
// from the named file.
//
// The file format is one key/value pair per line, separated by " :: ". The
// first line of the file is WarningBoilerPlate. Keys that are in the file but
// which have not been added to the Disk instance are preserved when the file
// is saved.
//
// Values can also be supplied on the command line (or through the
// environment) with PushCommandLineStack(). A value found on the top of the
// stack takes priority over the value in the file when the Disk is loaded.
//
// The Watcher type notices when the file is changed by another program so
// that it can be reloaded at a safe moment.
package prefs
