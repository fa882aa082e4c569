// SPDX-FileCopyrightText: 2018 - 2023 Gooroom <gooroom@gooroom.kr>
//
// SPDX-License-Identifier: GPL-2.0-or-later

// Package logout ends the desktop session with whichever logout program
// is installed.
package logout

import (
	"fmt"

	"github.com/gooroom/gooroom-tablet-mode/common/command"
	"github.com/gooroom/gooroom-tablet-mode/common/logutil"
	"golang.org/x/xerrors"
)

var logger = logutil.NewLogger("gooroom/logout")

// ErrNoLogoutCommand means none of the known logout programs is installed.
var ErrNoLogoutCommand = xerrors.New("no logout command available")

// Command is a logout program and the arguments that log out without asking.
type Command struct {
	Name string
	Args []string
}

// DefaultCommands lists logout programs in order of preference.
var DefaultCommands = []Command{
	{Name: "gooroom-logout-command", Args: []string{"--logout", "--delay=500"}},
	{Name: "gnome-session-quit", Args: []string{"--logout", "--force", "--no-prompt"}},
}

// Error is returned when a logout program was found but failed.
type Error struct {
	Line string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("failed to execute command %q: %v", e.Line, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

type Logouter struct {
	runner   command.Runner
	commands []Command
}

func New(runner command.Runner, commands []Command) *Logouter {
	if len(commands) == 0 {
		commands = DefaultCommands
	}
	return &Logouter{runner: runner, commands: commands}
}

// Select returns the resolved path and arguments of the first installed
// logout program.
func (l *Logouter) Select() (string, []string, error) {
	for _, c := range l.commands {
		p, err := l.runner.LookPath(c.Name)
		if err != nil {
			logger.Debug("logout command not found:", c.Name)
			continue
		}
		return p, c.Args, nil
	}
	return "", nil, ErrNoLogoutCommand
}

// Logout blocks until the logout program exits. A successful logout
// usually terminates this process along with the session.
func (l *Logouter) Logout() error {
	p, args, err := l.Select()
	if err != nil {
		logger.Warning(err)
		return err
	}

	line := command.Line(p, args...)
	logger.Info("logout:", line)
	err = l.runner.Run(p, args...)
	if err != nil {
		logger.Warningf("Error attempting to execute command: %s: %v", line, err)
		return &Error{Line: line, Err: err}
	}
	return nil
}
