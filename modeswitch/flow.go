// SPDX-FileCopyrightText: 2018 - 2023 Gooroom <gooroom@gooroom.kr>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package modeswitch

import (
	"github.com/gooroom/gooroom-tablet-mode/common/logutil"
	"github.com/gooroom/gooroom-tablet-mode/dialog"
	"github.com/gooroom/gooroom-tablet-mode/session/logout"
	"github.com/gooroom/gooroom-tablet-mode/tabletmode"
	"golang.org/x/xerrors"
)

var logger = logutil.NewLogger("gooroom/modeswitch")

type ModeSwitcher interface {
	SwitchMode(target tabletmode.Mode) error
}

type KeyboardSetter interface {
	SetScreenKeyboard(enabled bool)
}

type Logouter interface {
	Logout() error
}

// Flow runs a Machine to completion, performing the effects it asks for.
// Everything happens on the calling goroutine.
type Flow struct {
	machine  Machine
	dialogs  dialog.Presenter
	switcher ModeSwitcher
	keyboard KeyboardSetter
	logouter Logouter
}

func NewFlow(m Machine, dialogs dialog.Presenter, switcher ModeSwitcher,
	keyboard KeyboardSetter, logouter Logouter) *Flow {
	return &Flow{
		machine:  m,
		dialogs:  dialogs,
		switcher: switcher,
		keyboard: keyboard,
		logouter: logouter,
	}
}

// Run returns once a terminal state is reached and every effect of the
// final transition, rollback commands included, has completed.
func (f *Flow) Run() State {
	ev := EventStart
	for {
		next, effects, err := f.machine.Step(ev)
		if err != nil {
			// only reachable if an effect is mapped to the wrong event
			logger.Error(err)
			return f.machine.State()
		}
		logger.Debugf("%v --%v--> %v", f.machine.State(), ev, next.State())
		f.machine = next

		var (
			nextEv  Event
			hasNext bool
		)
		for _, effect := range effects {
			e, ok := f.perform(effect)
			if ok {
				nextEv, hasNext = e, true
			}
		}

		if f.machine.State().Terminal() {
			return f.machine.State()
		}
		if !hasNext {
			logger.Error("no event produced in state", f.machine.State())
			return f.machine.State()
		}
		ev = nextEv
	}
}

// perform executes effect and returns the event its outcome maps to in
// the state just entered, if any.
func (f *Flow) perform(effect Effect) (Event, bool) {
	switch effect.Kind {
	case EffectPrompt:
		yes, err := f.dialogs.Ask(effect.Title, effect.Text)
		if err != nil {
			logger.Warning("failed to ask for confirmation:", err)
		}
		if yes {
			return EventConfirmed, true
		}
		return EventDeclined, true

	case EffectSwitchMode:
		err := f.switcher.SwitchMode(effect.Target)
		if f.machine.State() == StateRestoreAttempt {
			if err != nil {
				return EventRestoreFailed, true
			}
			return EventRestoreSucceeded, true
		}
		if err != nil {
			return EventSwitchFailed, true
		}
		return EventSwitchSucceeded, true

	case EffectSetScreenKeyboard:
		f.keyboard.SetScreenKeyboard(effect.Enabled)
		if f.machine.State() == StateSettingUp {
			return EventSettingsApplied, true
		}
		return 0, false

	case EffectLogout:
		err := f.logouter.Logout()
		switch {
		case err == nil:
			return EventLogoutSucceeded, true
		case xerrors.Is(err, logout.ErrNoLogoutCommand):
			return EventLogoutUnavailable, true
		default:
			return EventLogoutFailed, true
		}

	case EffectShowError:
		f.dialogs.ShowError(effect.Title, effect.Text)

	case EffectQuit:
		logger.Debug("quit")
	}
	return 0, false
}
