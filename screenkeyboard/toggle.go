// SPDX-FileCopyrightText: 2018 - 2023 Gooroom <gooroom@gooroom.kr>
//
// SPDX-License-Identifier: GPL-2.0-or-later

// Package screenkeyboard switches the on-screen keyboard through the
// gsettings command line tool.
package screenkeyboard

import (
	"strconv"

	"github.com/gooroom/gooroom-tablet-mode/common/command"
	"github.com/gooroom/gooroom-tablet-mode/common/logutil"
)

var logger = logutil.NewLogger("gooroom/screenkeyboard")

const (
	gsettingsBin = "/usr/bin/gsettings"

	SchemaA11yApplications = "org.gnome.desktop.a11y.applications"
	SchemaInterface        = "org.gnome.desktop.interface"

	KeyScreenKeyboardEnabled = "screen-keyboard-enabled"
	KeyToolkitAccessibility  = "toolkit-accessibility"
)

// StateReader reads the current value of the screen keyboard key.
type StateReader interface {
	ScreenKeyboardEnabled() (bool, error)
}

type Toggle struct {
	runner command.Runner
}

func NewToggle(runner command.Runner) *Toggle {
	return &Toggle{runner: runner}
}

// SetScreenKeyboard writes the screen keyboard key, then turns toolkit
// accessibility on. Both commands always run and their results are only
// logged.
func (t *Toggle) SetScreenKeyboard(enabled bool) {
	t.set(SchemaA11yApplications, KeyScreenKeyboardEnabled, enabled)
	t.set(SchemaInterface, KeyToolkitAccessibility, true)
}

func (t *Toggle) set(schema, key string, value bool) {
	args := []string{"set", schema, key, strconv.FormatBool(value)}
	err := t.runner.Run(gsettingsBin, args...)
	if err != nil {
		logger.Debug("ignore failed command:", command.Line(gsettingsBin, args...), err)
	}
}

// Flip reads the current screen keyboard state and applies its negation.
// Nothing is changed when the state cannot be read.
func (t *Toggle) Flip(state StateReader) bool {
	enabled, err := state.ScreenKeyboardEnabled()
	if err != nil {
		logger.Error("failed to read screen keyboard state:", err)
		return false
	}
	t.SetScreenKeyboard(!enabled)
	return true
}
