// SPDX-FileCopyrightText: 2018 - 2023 Gooroom <gooroom@gooroom.kr>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"github.com/gooroom/gooroom-tablet-mode/screenkeyboard"
	gio "github.com/linuxdeepin/go-gir/gio-2.0"
	dutils "github.com/linuxdeepin/go-lib/utils"
	"golang.org/x/xerrors"
)

// gsettingsState reads the screen keyboard key through GIO. The schema is
// looked up first so a missing schema is an error instead of an abort.
type gsettingsState struct{}

func newA11ySettings() (*gio.Settings, error) {
	return dutils.CheckAndNewGSettings(screenkeyboard.SchemaA11yApplications)
}

func (gsettingsState) ScreenKeyboardEnabled() (bool, error) {
	settings, err := newA11ySettings()
	if err != nil {
		return false, xerrors.Errorf("couldn't get schema %q: %w",
			screenkeyboard.SchemaA11yApplications, err)
	}
	defer settings.Unref()

	return settings.GetBoolean(screenkeyboard.KeyScreenKeyboardEnabled), nil
}
