// SPDX-FileCopyrightText: 2018 - 2023 Gooroom <gooroom@gooroom.kr>
//
// SPDX-License-Identifier: GPL-2.0-or-later

// Package modeswitch implements the confirmation, switch, logout and
// rollback sequence of the desktop mode switcher.
package modeswitch

import (
	"fmt"

	"github.com/gooroom/gooroom-tablet-mode/tabletmode"
	"golang.org/x/xerrors"
)

type State int

const (
	StateIdle State = iota
	StatePrompting
	StateSwitching
	StateSettingUp
	StateLoggingOut
	StateRestoreAttempt
	StateSucceeded
	StateFailed
	StateCancelled
)

var stateNames = [...]string{
	StateIdle:           "Idle",
	StatePrompting:      "Prompting",
	StateSwitching:      "Switching",
	StateSettingUp:      "SettingUp",
	StateLoggingOut:     "LoggingOut",
	StateRestoreAttempt: "RestoreAttempt",
	StateSucceeded:      "Succeeded",
	StateFailed:         "Failed",
	StateCancelled:      "Cancelled",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

func (s State) Terminal() bool {
	return s == StateSucceeded || s == StateFailed || s == StateCancelled
}

type Event int

const (
	EventStart Event = iota
	EventConfirmed
	EventDeclined
	EventSwitchSucceeded
	EventSwitchFailed
	EventSettingsApplied
	EventLogoutSucceeded
	EventLogoutUnavailable
	EventLogoutFailed
	EventRestoreSucceeded
	EventRestoreFailed
)

var eventNames = [...]string{
	EventStart:             "Start",
	EventConfirmed:         "Confirmed",
	EventDeclined:          "Declined",
	EventSwitchSucceeded:   "SwitchSucceeded",
	EventSwitchFailed:      "SwitchFailed",
	EventSettingsApplied:   "SettingsApplied",
	EventLogoutSucceeded:   "LogoutSucceeded",
	EventLogoutUnavailable: "LogoutUnavailable",
	EventLogoutFailed:      "LogoutFailed",
	EventRestoreSucceeded:  "RestoreSucceeded",
	EventRestoreFailed:     "RestoreFailed",
}

func (e Event) String() string {
	if e < 0 || int(e) >= len(eventNames) {
		return fmt.Sprintf("Event(%d)", int(e))
	}
	return eventNames[e]
}

type EffectKind int

const (
	EffectPrompt EffectKind = iota
	EffectSwitchMode
	EffectSetScreenKeyboard
	EffectLogout
	EffectShowError
	EffectQuit
)

// Effect is a side effect requested by a transition. Only the fields
// relevant to Kind are set.
type Effect struct {
	Kind EffectKind

	// EffectPrompt, EffectShowError
	Title string
	Text  string

	// EffectSwitchMode
	Target tabletmode.Mode

	// EffectSetScreenKeyboard
	Enabled bool
}

// ErrUnexpectedEvent is returned by Step for an event the current state
// does not handle.
var ErrUnexpectedEvent = xerrors.New("unexpected event")

// Machine holds the mode read at startup and the current state. It is a
// value: Step returns a new Machine and never touches the receiver.
type Machine struct {
	initial  tabletmode.Mode
	state    State
	helper   string
	sentinel string
}

func NewMachine(initial tabletmode.Mode, helper, sentinel string) Machine {
	return Machine{
		initial:  initial,
		state:    StateIdle,
		helper:   helper,
		sentinel: sentinel,
	}
}

func (m Machine) State() State {
	return m.state
}

func (m Machine) Initial() tabletmode.Mode {
	return m.initial
}

func (m Machine) Target() tabletmode.Mode {
	return m.initial.Negate()
}

func (m Machine) to(s State, effects ...Effect) (Machine, []Effect, error) {
	m.state = s
	return m, effects, nil
}

func quit() Effect {
	return Effect{Kind: EffectQuit}
}

func showError(title, text string) Effect {
	return Effect{Kind: EffectShowError, Title: title, Text: text}
}

func switchMode(target tabletmode.Mode) Effect {
	return Effect{Kind: EffectSwitchMode, Target: target}
}

func setScreenKeyboard(mode tabletmode.Mode) Effect {
	return Effect{Kind: EffectSetScreenKeyboard, Enabled: mode == tabletmode.Tablet}
}

// Step computes the state reached from m on ev and the effects to perform,
// in order. It has no side effects.
func (m Machine) Step(ev Event) (Machine, []Effect, error) {
	switch m.state {
	case StateIdle:
		if ev == EventStart {
			return m.to(StatePrompting, Effect{
				Kind:  EffectPrompt,
				Title: titleSwitching(),
				Text:  promptText(m.Target()),
			})
		}

	case StatePrompting:
		switch ev {
		case EventDeclined:
			return m.to(StateCancelled, quit())
		case EventConfirmed:
			return m.to(StateSwitching, switchMode(m.Target()))
		}

	case StateSwitching:
		switch ev {
		case EventSwitchFailed:
			return m.to(StateFailed,
				showError(titleSwitching(), switchFailedText(m.Target(), m.helper)),
				quit())
		case EventSwitchSucceeded:
			return m.to(StateSettingUp, setScreenKeyboard(m.Target()))
		}

	case StateSettingUp:
		if ev == EventSettingsApplied {
			return m.to(StateLoggingOut, Effect{Kind: EffectLogout})
		}

	case StateLoggingOut:
		switch ev {
		case EventLogoutSucceeded:
			return m.to(StateSucceeded, quit())
		case EventLogoutUnavailable:
			return m.to(StateRestoreAttempt,
				showError(titleLogoutError(), logoutUnavailableText()),
				switchMode(m.initial))
		case EventLogoutFailed:
			return m.to(StateRestoreAttempt,
				showError(titleLogoutError(), logoutFailedText()),
				switchMode(m.initial))
		}

	case StateRestoreAttempt:
		switch ev {
		case EventRestoreFailed:
			return m.to(StateFailed,
				showError(titleRestoreFailure(), restoreFailedText(m.initial, m.sentinel)),
				setScreenKeyboard(m.initial),
				quit())
		case EventRestoreSucceeded:
			return m.to(StateFailed, setScreenKeyboard(m.initial), quit())
		}
	}

	return m, nil, xerrors.Errorf("%v in state %v: %w", ev, m.state, ErrUnexpectedEvent)
}
