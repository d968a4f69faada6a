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

// Package environment provides the context for an emulation: its label, its
// preferences and where to send notifications. The Environment type also
// implements the logger.Permission interface so that only the main emulation
// creates log entries.
package environment

import (
	"github.com/gopherace/gopherace/hardware/preferences"
	"github.com/gopherace/gopherace/notifications"
)

// Label is used to name the environment.
type Label string

// MainEmulation is the label of the main emulation.
const MainEmulation = Label("")

// Environment is used to provide context for an emulation.
type Environment struct {
	Label Label

	// the emulation preferences
	Prefs *preferences.Preferences

	// notifications from peripherals are sent here. never nil
	Notifications notifications.Notify
}

// discard is the Notify implementation used when none is supplied.
type discard struct{}

func (discard) Notify(_ notifications.Notice) error {
	return nil
}

// NewEnvironment is the preferred method of initialisation for the
// Environment type. If prefs is nil a new Preferences instance is created. A
// nil notify argument means that notifications are discarded.
func NewEnvironment(label Label, prefs *preferences.Preferences, notify notifications.Notify) (*Environment, error) {
	env := &Environment{
		Label:         label,
		Prefs:         prefs,
		Notifications: notify,
	}

	if env.Prefs == nil {
		var err error
		env.Prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, err
		}
	}

	if env.Notifications == nil {
		env.Notifications = discard{}
	}

	return env, nil
}

// Notify sends the notice to the environment's notification handler.
func (env *Environment) Notify(notice notifications.Notice) error {
	return env.Notifications.Notify(notice)
}

// IsMainEmulation returns true if the environment is intended for the main
// emulation in the system.
func (env *Environment) IsMainEmulation() bool {
	return env.Label == MainEmulation
}

// AllowLogging implements the logger.Permission interface.
func (env *Environment) AllowLogging() bool {
	return env.IsMainEmulation()
}
