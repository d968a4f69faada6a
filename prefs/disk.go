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
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/gopherace/gopherace/curated"
)

// WarningBoilerPlate is the first line of every prefs file.
const WarningBoilerPlate = "*** do not edit this file by hand while GopherAce is running ***"

// separates key and value on each line of a prefs file.
const separator = " :: "

// Disk represents preference values as stored on disk.
type Disk struct {
	path string

	crit    sync.Mutex
	entries map[string]pref

	// values taken from the command line stack. they are kept so that they
	// are still applied when the file is reloaded
	overrides map[string]Value
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, curated.Errorf("prefs: no path for prefs file")
	}
	return &Disk{
		path:      path,
		entries:   make(map[string]pref),
		overrides: make(map[string]Value),
	}, nil
}

// Path returns the file path of the Disk instance.
func (dsk *Disk) Path() string {
	return dsk.path
}

// Add preference value to list of values to store/load from Disk. The key
// argument specifies the label under which the value is stored.
func (dsk *Disk) Add(key string, p pref) error {
	if strings.Contains(key, separator) || strings.TrimSpace(key) != key || key == "" {
		return curated.Errorf("prefs: illegal key (%s)", key)
	}

	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf("prefs: key already added (%s)", key)
	}
	dsk.entries[key] = p
	return nil
}

// Reset all preference values to their zero value.
func (dsk *Disk) Reset() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	for k, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return curated.Errorf("prefs: %s: %v", k, err)
		}
	}
	return nil
}

// Save current preference values to disk. Entries in the file that are not
// known to the Disk instance are preserved.
func (dsk *Disk) Save() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	data, err := dsk.read()
	if err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	for k, p := range dsk.entries {
		data[k] = p.String()
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, WarningBoilerPlate)
	for _, k := range keys {
		fmt.Fprintf(w, "%s%s%s\n", k, separator, data[k])
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return curated.Errorf("prefs: %v", err)
	}
	if err := f.Close(); err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	return nil
}

// Load preference values from disk. A missing file is not an error; values
// keep their current setting. Values on the command line stack take priority
// over values in the file.
func (dsk *Disk) Load() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	data, err := dsk.read()
	if err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	for k, p := range dsk.entries {
		if ok, v := GetCommandLinePref(k); ok {
			dsk.overrides[k] = v
		}

		if v, ok := dsk.overrides[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf("prefs: %s: %v", k, err)
			}
			continue
		}

		if v, ok := data[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf("prefs: %s: %v", k, err)
			}
		}
	}

	return nil
}

// read the prefs file into a map of strings. the map is empty if the file
// does not exist.
func (dsk *Disk) read() (map[string]string, error) {
	data := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return data, nil
		}
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if scanner.Scan() && scanner.Text() != WarningBoilerPlate {
		return nil, fmt.Errorf("not a valid prefs file (%s)", dsk.path)
	}

	for scanner.Scan() {
		k, v, ok := strings.Cut(scanner.Text(), separator)
		if !ok {
			continue
		}
		data[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return data, nil
}
