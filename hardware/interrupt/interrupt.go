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

package interrupt

import "github.com/gopherace/gopherace/curated"

// DefaultDivisor is the default ratio between the interrupt rate and the
// rate at which the tape is polled.
const DefaultDivisor = 4

// Sentinal error patterns.
const (
	InvalidDivisor = "interrupt: invalid divisor (%d)"
)

// Tick is the coordinator's view of the pacing timer.
type Tick interface {
	Pending() bool
	Clear()
}

// Hooks are the functions called by the Coordinator. Nil hooks are skipped.
// None of the hooks should block for long.
type Hooks struct {
	Refresh    func()
	PollEvents func()
	PollTape   func()
}

// Coordinator dispatches housekeeping for each interrupt.
type Coordinator struct {
	tick    Tick
	hooks   Hooks
	divisor int
	counter int
}

// NewCoordinator is the preferred method of initialisation for the
// Coordinator type. The divisor is set to DefaultDivisor.
func NewCoordinator(tick Tick) *Coordinator {
	return &Coordinator{
		tick:    tick,
		divisor: DefaultDivisor,
	}
}

// SetHooks replaces the hooks called by the Coordinator.
func (co *Coordinator) SetHooks(hooks Hooks) {
	co.hooks = hooks
}

// SetDivisor changes the number of interrupts between each tape poll. The
// interrupt counter restarts.
func (co *Coordinator) SetDivisor(divisor int) error {
	if divisor < 1 {
		return curated.Errorf(InvalidDivisor, divisor)
	}
	co.divisor = divisor
	co.counter = 0
	return nil
}

// Divisor returns the current divisor.
func (co *Coordinator) Divisor() int {
	return co.divisor
}

// Interrupt should be called once for every interrupt raised by the CPU.
func (co *Coordinator) Interrupt() {
	co.counter = (co.counter + 1) % co.divisor
	if co.counter == 0 && co.hooks.PollTape != nil {
		co.hooks.PollTape()
	}

	if co.tick.Pending() {
		if co.hooks.Refresh != nil {
			co.hooks.Refresh()
		}
		if co.hooks.PollEvents != nil {
			co.hooks.PollEvents()
		}
		co.tick.Clear()
	}
}
