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

package cpu

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
)

// Halted is a CPU core that is permanently halted with interrupts enabled.
type Halted struct {
	pacer Pacer
	irq   Interrupter

	// number of interrupts raised
	interrupts atomic.Uint64
}

// NewHalted is the preferred method of initialisation for the Halted type.
func NewHalted(pacer Pacer, irq Interrupter) *Halted {
	return &Halted{
		pacer: pacer,
		irq:   irq,
	}
}

func (mc *Halted) String() string {
	return fmt.Sprintf("halted: %d interrupts", mc.Interrupts())
}

// Interrupts returns the number of interrupts raised so far.
func (mc *Halted) Interrupts() uint64 {
	return mc.interrupts.Load()
}

// Run implements the Core interface. Unless warp mode is on, each interrupt
// waits for the pacer.
func (mc *Halted) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}

		if !mc.pacer.Warp() {
			if err := mc.pacer.Wait(ctx); err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return nil
				}
				return err
			}
		}

		mc.interrupts.Add(1)
		if err := mc.irq.Interrupt(); err != nil {
			return err
		}
	}
}
