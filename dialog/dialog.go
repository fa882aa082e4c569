// SPDX-FileCopyrightText: 2018 - 2023 Gooroom <gooroom@gooroom.kr>
//
// SPDX-License-Identifier: GPL-2.0-or-later

// Package dialog shows modal questions and error messages by running an
// external dialog program.
package dialog

import (
	"github.com/gooroom/gooroom-tablet-mode/common/command"
	"github.com/gooroom/gooroom-tablet-mode/common/logutil"
	"github.com/linuxdeepin/go-lib/gettext"
	"golang.org/x/xerrors"
)

var logger = logutil.NewLogger("gooroom/dialog")

const DefaultProgram = "zenity"

// ErrNoDialogProgram is returned by Ask when the dialog program is not
// installed.
var ErrNoDialogProgram = xerrors.New("dialog program not found")

// Presenter shows modal dialogs. Both methods block until the dialog is
// closed.
type Presenter interface {
	// Ask shows a Yes/No question. Closing the dialog answers No.
	Ask(title, text string) (bool, error)

	// ShowError shows an error message with a single close button.
	ShowError(title, text string)
}

// Notifier delivers a message when no dialog can be shown.
type Notifier interface {
	Notify(summary, body string) error
}

const (
	exitOK     = 0
	exitCancel = 1
	exitExpire = 5
)

type Zenity struct {
	runner   command.Runner
	program  string
	fallback Notifier
}

var _ Presenter = (*Zenity)(nil)

// NewZenity returns a Presenter running program. fallback may be nil.
func NewZenity(runner command.Runner, program string, fallback Notifier) *Zenity {
	if program == "" {
		program = DefaultProgram
	}
	return &Zenity{
		runner:   runner,
		program:  program,
		fallback: fallback,
	}
}

func (z *Zenity) Ask(title, text string) (bool, error) {
	p, err := z.runner.LookPath(z.program)
	if err != nil {
		return false, xerrors.Errorf("%s: %w", z.program, ErrNoDialogProgram)
	}

	err = z.runner.Run(p, "--question", "--modal", "--no-markup",
		"--title="+title,
		"--text="+text,
		"--ok-label="+gettext.Tr("Yes"),
		"--cancel-label="+gettext.Tr("No"))
	switch code := command.ExitCode(err); code {
	case exitOK:
		return true, nil
	case exitCancel, exitExpire:
		return false, nil
	default:
		return false, xerrors.Errorf("run %s: %w", z.program, err)
	}
}

func (z *Zenity) ShowError(title, text string) {
	logger.Warning(title+":", text)

	p, err := z.runner.LookPath(z.program)
	if err == nil {
		err = z.runner.Run(p, "--error", "--modal", "--no-markup",
			"--title="+title,
			"--text="+text)
		code := command.ExitCode(err)
		if code == exitOK || code == exitCancel {
			return
		}
	}
	logger.Warning("failed to show error dialog:", err)

	if z.fallback == nil {
		return
	}
	err = z.fallback.Notify(title, text)
	if err != nil {
		logger.Warning("failed to send notification:", err)
	}
}
