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

package pacing

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopherace/gopherace/curated"
)

// Sentinal error patterns.
const (
	InvalidRate = "pacing: invalid rate (%d ticks per second): %s"
)

// MinRate and MaxRate are the limits of ticks per second accepted by
// Configure().
const (
	MinRate = 1
	MaxRate = 1000
)

// how often the measured rate is recalculated.
const measurementPeriod = time.Second

// ValidateRate returns a curated error with the InvalidRate pattern if the
// number of ticks per second cannot be represented exactly as a whole number
// of milliseconds.
func ValidateRate(ticksPerSecond int) error {
	if ticksPerSecond < MinRate || ticksPerSecond > MaxRate {
		return curated.Errorf(InvalidRate, ticksPerSecond, "out of range")
	}
	if 1000%ticksPerSecond != 0 {
		return curated.Errorf(InvalidRate, ticksPerSecond, "period is not a whole number of milliseconds")
	}
	return nil
}

// Timer is the host side source of pacing ticks.
type Timer struct {
	tickPending atomic.Bool
	warp        atomic.Bool

	// signalled (without blocking) whenever tickPending is set. capacity of
	// one
	wake chan struct{}

	// crit protects the fields relating to the ticker goroutine
	crit           sync.Mutex
	ticksPerSecond int
	period         time.Duration
	stop           chan struct{}
	done           chan struct{}

	// the number of times a ticker has been armed
	arms int

	// measurement of the rate at which ticks are consumed. the pulse only
	// runs while the timer is armed
	measuringPulse *time.Ticker
	measuring      bool
	measureTime    time.Time
	measureCt      int
	measured       atomic.Value // float32
}

// NewTimer is the preferred method of initialisation for the Timer type. The
// Timer is not armed until Configure() is called.
func NewTimer() *Timer {
	tmr := &Timer{
		wake:           make(chan struct{}, 1),
		measuringPulse: time.NewTicker(measurementPeriod),
		measureTime:    time.Now(),
	}
	tmr.measuringPulse.Stop()
	tmr.measured.Store(float32(0))
	return tmr
}

// Configure arms the timer with a period of 1000/ticksPerSecond milliseconds.
// Any previously armed ticker is stopped first. Invalid rates are rejected
// and leave the previous configuration in place.
func (tmr *Timer) Configure(ticksPerSecond int) error {
	if err := ValidateRate(ticksPerSecond); err != nil {
		return err
	}

	tmr.crit.Lock()
	defer tmr.crit.Unlock()

	tmr.disarm()

	tmr.ticksPerSecond = ticksPerSecond
	tmr.period = time.Duration(1000/ticksPerSecond) * time.Millisecond
	tmr.stop = make(chan struct{})
	tmr.done = make(chan struct{})
	tmr.arms++

	go tmr.run(time.NewTicker(tmr.period), tmr.stop, tmr.done)

	tmr.measuringPulse.Reset(measurementPeriod)
	tmr.measuring = true
	tmr.measureCt = 0
	tmr.measureTime = time.Now()

	return nil
}

// the ticker goroutine. the only state it touches is the pending flag and the
// wake channel
func (tmr *Timer) run(ticker *time.Ticker, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			tmr.tickPending.Store(true)
			select {
			case tmr.wake <- struct{}{}:
			default:
			}
		}
	}
}

// disarm the running ticker goroutine and wait for it to end. must be called
// with crit held
func (tmr *Timer) disarm() {
	if tmr.stop == nil {
		return
	}
	close(tmr.stop)
	<-tmr.done
	tmr.stop = nil
	tmr.done = nil
}

// Stop disarms the timer. It is safe to call more than once.
func (tmr *Timer) Stop() {
	tmr.crit.Lock()
	defer tmr.crit.Unlock()
	tmr.disarm()
	tmr.measuringPulse.Stop()
	tmr.measuring = false
}

// Period returns the configured period. Zero if the timer has never been
// configured.
func (tmr *Timer) Period() time.Duration {
	tmr.crit.Lock()
	defer tmr.crit.Unlock()
	return tmr.period
}

// TicksPerSecond returns the configured rate.
func (tmr *Timer) TicksPerSecond() int {
	tmr.crit.Lock()
	defer tmr.crit.Unlock()
	return tmr.ticksPerSecond
}

// SetWarp enables or disables warp mode. The ticker is unaffected.
func (tmr *Timer) SetWarp(enabled bool) {
	tmr.warp.Store(enabled)
}

// Warp returns true if warp mode is enabled.
func (tmr *Timer) Warp() bool {
	return tmr.warp.Load()
}

// Pending returns true if a tick has elapsed since the last call to Clear().
func (tmr *Timer) Pending() bool {
	return tmr.tickPending.Load()
}

// Clear the pending tick. Clearing a tick counts towards the measured rate.
func (tmr *Timer) Clear() {
	tmr.tickPending.Store(false)
	tmr.measureCt++
	tmr.measure()
}

// measure the consumed tick rate on every pulse of the measuringPulse
func (tmr *Timer) measure() {
	select {
	case <-tmr.measuringPulse.C:
		t := time.Now()
		tmr.measured.Store(float32(tmr.measureCt) / float32(t.Sub(tmr.measureTime).Seconds()))
		tmr.measureTime = t
		tmr.measureCt = 0
	default:
	}
}

// Measured returns the rate at which ticks have been cleared, in ticks per
// second. The value is updated about once a second.
func (tmr *Timer) Measured() float32 {
	return tmr.measured.Load().(float32)
}

// Wait blocks until a tick is pending or the context is done. The pending
// flag is not cleared.
func (tmr *Timer) Wait(ctx context.Context) error {
	for !tmr.tickPending.Load() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tmr.wake:
		}
	}
	return nil
}
