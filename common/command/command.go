// SPDX-FileCopyrightText: 2018 - 2023 Gooroom <gooroom@gooroom.kr>
//
// SPDX-License-Identifier: GPL-2.0-or-later

// Package command runs the external programs the mode utilities depend on.
// Every call is synchronous: the caller is blocked until the child exits.
package command

import (
	"os/exec"
	"strings"

	"golang.org/x/xerrors"
)

// Runner looks up and runs external programs.
type Runner interface {
	// LookPath searches for an executable named name in the directories
	// named by the PATH environment variable.
	LookPath(name string) (string, error)

	// Run starts the program and waits for it to exit. A non-zero exit
	// status is reported as an error carrying the status.
	Run(name string, args ...string) error
}

type ExecRunner struct{}

func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

func (*ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

func (*ExecRunner) Run(name string, args ...string) error {
	cmd := exec.Command(name, args...) // #nosec G204
	return cmd.Run()
}

type exitCoder interface {
	ExitCode() int
}

// ExitCode returns the exit status carried by err, 0 for a nil error and -1
// when the program did not get to exit (spawn failure, signal).
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ec exitCoder
	if xerrors.As(err, &ec) {
		return ec.ExitCode()
	}
	return -1
}

// Line renders a command line for log and error messages.
func Line(name string, args ...string) string {
	if len(args) == 0 {
		return name
	}
	return name + " " + strings.Join(args, " ")
}
