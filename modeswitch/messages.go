// SPDX-FileCopyrightText: 2018 - 2023 Gooroom <gooroom@gooroom.kr>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package modeswitch

import (
	"fmt"

	"github.com/gooroom/gooroom-tablet-mode/tabletmode"
	. "github.com/linuxdeepin/go-lib/gettext"
)

func titleSwitching() string {
	return Tr("Desktop Mode Switching")
}

func titleLogoutError() string {
	return Tr("System Logout Error")
}

func titleRestoreFailure() string {
	return Tr("Desktop Mode Restore Failure")
}

func promptText(target tabletmode.Mode) string {
	if target == tabletmode.Tablet {
		return Tr("To switch to tablet mode, you must log in again.\n" +
			"Would you like to log in again now?")
	}
	return Tr("To switch to normal mode, you must log in again.\n" +
		"Would you like to log in again now?")
}

func switchFailedText(target tabletmode.Mode, helper string) string {
	if target == tabletmode.Tablet {
		return fmt.Sprintf(Tr("Failed to switch Tablet Mode.\nPlease check %s program"), helper)
	}
	return fmt.Sprintf(Tr("Failed to switch Normal(PC) Mode.\nPlease check %s program"), helper)
}

func logoutFailedText() string {
	return Tr("Failed to system logout\n" +
		"Please check gooroom-logout or gnome-session-quit program.")
}

func logoutUnavailableText() string {
	return Tr("Not found logout command.\n" +
		"Install gooroom-logout or gnome-session-bin packages.")
}

// restoreFailedText tells the user how to put the sentinel file back into
// the state matching initial.
func restoreFailedText(initial tabletmode.Mode, sentinel string) string {
	if initial == tabletmode.Tablet {
		return fmt.Sprintf(Tr("Failed to restore Tablet Mode\nPlease create %s manually."), sentinel)
	}
	return fmt.Sprintf(Tr("Failed to restore Normal(PC) Mode\nPlease delete %s manually."), sentinel)
}
