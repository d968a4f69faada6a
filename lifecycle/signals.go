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

package lifecycle

import (
	"os"
	"os/signal"
	"syscall"
)

// the fatal signals and the exit status used when they are received
var fatalSignals = []struct {
	sig    os.Signal
	status int
}{
	{sig: syscall.SIGINT, status: 1},
	{sig: syscall.SIGHUP, status: 1},
	{sig: syscall.SIGILL, status: 1},
	{sig: syscall.SIGTERM, status: 1},
	{sig: syscall.SIGQUIT, status: 1},
	{sig: syscall.SIGSEGV, status: 1},
}

// SignalInstaller arranges for the signal to be delivered on the channel.
type SignalInstaller func(c chan<- os.Signal, sig os.Signal) error

func installSignal(c chan<- os.Signal, sig os.Signal) error {
	signal.Notify(c, sig)
	return nil
}

// the signal goroutine. it only records the request for the main loop to
// act upon
func (m *Manager) watchSignals(c <-chan os.Signal, status map[os.Signal]int) {
	for sig := range c {
		m.status.Store(int32(status[sig]))
		m.signalled.Store(sig.String())
		m.shutdown.Store(true)
	}
}

func (m *Manager) startSignals() error {
	sigs := make(chan os.Signal, len(fatalSignals))
	status := make(map[os.Signal]int, len(fatalSignals))

	for _, fs := range fatalSignals {
		if err := m.installSignal(sigs, fs.sig); err != nil {
			signal.Stop(sigs)
			return err
		}
		status[fs.sig] = fs.status
	}

	m.sigs = sigs
	go m.watchSignals(sigs, status)

	return nil
}

func (m *Manager) stopSignals() {
	if m.sigs == nil {
		return
	}
	signal.Stop(m.sigs)
	close(m.sigs)
	m.sigs = nil
}
