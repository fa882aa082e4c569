// SPDX-FileCopyrightText: 2018 - 2023 Gooroom <gooroom@gooroom.kr>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package tabletmode

import (
	"github.com/gooroom/gooroom-tablet-mode/common/logutil"
	dutils "github.com/linuxdeepin/go-lib/utils"
)

var logger = logutil.NewLogger("gooroom/tabletmode")

const (
	// DefaultSentinelFile exists while the system is in tablet mode. Only
	// the privileged mode-change helper creates or removes it.
	DefaultSentinelFile = "/etc/gooroom/.tablet-mode"

	DefaultElevationTool = "pkexec"
)

// DefaultHelper is the privileged program that performs the switch. It may
// be overridden at link time with -X.
var DefaultHelper = "/usr/lib/gooroom/gooroom-tablet-mode-change-helper"

// Mode is the desktop mode of the system.
type Mode bool

const (
	Desktop Mode = false
	Tablet  Mode = true
)

func (m Mode) Negate() Mode {
	return !m
}

func (m Mode) String() string {
	if m == Tablet {
		return "tablet"
	}
	return "desktop"
}

// ReadMode reports Tablet if the sentinel file exists, Desktop otherwise.
func ReadMode(sentinel string) Mode {
	return Mode(dutils.IsFileExist(sentinel))
}
