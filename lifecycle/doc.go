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

// Package lifecycle starts, runs and stops the emulation.
//
// Startup is a fixed sequence of steps. The display is acquired first,
// followed by the memory image and firmware. RAM is then filled, the spooler
// and display are bound to the interrupt coordinator and the signal handlers
// are installed. The pacing timer is armed, the command line is processed
// and the tape deck and keyboard are initialised. Finally the CPU core is
// created. A failing step stops the sequence and is reported as a
// StartupFailure naming the step.
//
// The CPU core calls Manager.Interrupt() for every emulated interrupt. This
// is where the coordinator runs and where requests to stop, from a fatal
// signal or from the display, are noticed. Signal handling never does more
// than record the request. Teardown always happens on the main goroutine.
//
// Shutdown() ejects the tape, closes the spooler and destroys the display,
// in that order. It can be called any number of times but only the first
// call has any effect.
package lifecycle
