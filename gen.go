// SPDX-FileCopyrightText: 2018 - 2023 Gooroom <gooroom@gooroom.kr>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package tabletmodeutils

//go:generate go build -o target/ github.com/gooroom/gooroom-tablet-mode/bin/gooroom-desktop-mode-switcher
//go:generate go build -o target/ github.com/gooroom/gooroom-tablet-mode/bin/gooroom-screen-keyboard-toggler
