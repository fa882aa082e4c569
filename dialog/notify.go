// SPDX-FileCopyrightText: 2018 - 2023 Gooroom <gooroom@gooroom.kr>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package dialog

import (
	"github.com/godbus/dbus/v5"
	notifications "github.com/linuxdeepin/go-dbus-factory/session/org.freedesktop.notifications"
)

const (
	notifyIconError = "dialog-error"
	// stays until the user closes it
	notifyExpireNever = 0
)

// DBusNotifier posts desktop notifications on the session bus.
type DBusNotifier struct {
	appName string
}

func NewDBusNotifier(appName string) *DBusNotifier {
	return &DBusNotifier{appName: appName}
}

func (n *DBusNotifier) Notify(summary, body string) error {
	sessionBus, err := dbus.SessionBus()
	if err != nil {
		return err
	}
	notifier := notifications.NewNotifications(sessionBus)
	_, err = notifier.Notify(0, n.appName, 0, notifyIconError,
		summary, body, nil, nil, notifyExpireNever)
	return err
}
