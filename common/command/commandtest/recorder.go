// SPDX-FileCopyrightText: 2018 - 2023 Gooroom <gooroom@gooroom.kr>
//
// SPDX-License-Identifier: GPL-2.0-or-later

// Package commandtest provides a scripted command.Runner for tests.
package commandtest

import (
	"os/exec"
	"path/filepath"
	"strconv"

	"github.com/gooroom/gooroom-tablet-mode/common/command"
)

// ExitError simulates a program that exited with a non-zero status.
type ExitError int

func (e ExitError) Error() string {
	return "exit status " + strconv.Itoa(int(e))
}

func (e ExitError) ExitCode() int {
	return int(e)
}

// Recorder implements command.Runner. Programs listed in Paths are found by
// LookPath; Results maps a full command line to the error Run returns.
type Recorder struct {
	// Paths maps a program name to its resolved path.
	Paths map[string]string

	// Results maps "name arg1 arg2" to the result of Run.
	Results map[string]error

	// Log records every command line passed to Run, in order.
	Log []string
}

var _ command.Runner = (*Recorder)(nil)

func NewRecorder() *Recorder {
	return &Recorder{
		Paths:   make(map[string]string),
		Results: make(map[string]error),
	}
}

// Install makes name resolvable under /usr/bin.
func (r *Recorder) Install(names ...string) *Recorder {
	for _, name := range names {
		r.Paths[name] = filepath.Join("/usr/bin", name)
	}
	return r
}

// Fail makes Run return err for the given command line.
func (r *Recorder) Fail(line string, err error) *Recorder {
	r.Results[line] = err
	return r
}

func (r *Recorder) LookPath(name string) (string, error) {
	if p, ok := r.Paths[name]; ok {
		return p, nil
	}
	return "", &exec.Error{Name: name, Err: exec.ErrNotFound}
}

func (r *Recorder) Run(name string, args ...string) error {
	line := command.Line(name, args...)
	r.Log = append(r.Log, line)
	return r.Results[line]
}
