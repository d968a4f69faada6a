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

package prefs

import (
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/howeyc/fsnotify"

	"github.com/gopherace/gopherace/curated"
)

// the period of quiet after a change before the Watcher reports it. editors
// often write a file in more than one step.
const settleDuration = 100 * time.Millisecond

// Watcher notices changes to the file of a Disk instance made by other
// programs. The Disk itself is not reloaded by the Watcher. The owner of the
// Disk should check Changed() at a safe point and call Load().
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	changed atomic.Bool
	done    chan struct{}
	errors  chan error
}

// NewWatcher starts watching the file of the Disk instance. The directory
// containing the file is watched so that files that are replaced rather than
// rewritten are also noticed.
func NewWatcher(dsk *Disk) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, curated.Errorf("prefs: watcher: %v", err)
	}

	w := &Watcher{
		watcher: fw,
		path:    filepath.Clean(dsk.Path()),
		done:    make(chan struct{}),
		errors:  make(chan error, 1),
	}

	if err := fw.Watch(filepath.Dir(w.path)); err != nil {
		fw.Close()
		return nil, curated.Errorf("prefs: watcher: %v", err)
	}

	go w.run()

	return w, nil
}

func (w *Watcher) run() {
	var settle <-chan time.Time
	for {
		select {
		case <-w.done:
			return
		case ev := <-w.watcher.Event:
			if ev == nil {
				return
			}
			if filepath.Clean(ev.Name) == w.path && !ev.IsAttrib() {
				settle = time.After(settleDuration)
			}
		case <-settle:
			settle = nil
			w.changed.Store(true)
		case err := <-w.watcher.Error:
			if err == nil {
				return
			}
			select {
			case w.errors <- err:
			default:
			}
		}
	}
}

// Changed returns true if the file has changed since the last call to
// Changed().
func (w *Watcher) Changed() bool {
	return w.changed.Swap(false)
}

// Err returns the most recent error from the underlying watcher, if any.
func (w *Watcher) Err() error {
	select {
	case err := <-w.errors:
		return curated.Errorf("prefs: watcher: %v", err)
	default:
		return nil
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	select {
	case <-w.done:
		return nil
	default:
	}
	close(w.done)
	if err := w.watcher.Close(); err != nil {
		return curated.Errorf("prefs: watcher: %v", err)
	}
	return nil
}
