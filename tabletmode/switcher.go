// SPDX-FileCopyrightText: 2018 - 2023 Gooroom <gooroom@gooroom.kr>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package tabletmode

import (
	"fmt"

	"github.com/gooroom/gooroom-tablet-mode/common/command"
	"golang.org/x/xerrors"
)

// ErrToolNotFound is returned when the elevation tool is not on the search path.
var ErrToolNotFound = xerrors.New("elevation tool not found")

// CommandError describes a helper invocation that was started but did not
// succeed, either because it could not be spawned or because it exited
// with a non-zero status.
type CommandError struct {
	Line string
	Err  error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("failed to execute command %q: %v", e.Line, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Switcher asks the mode-change helper, through the elevation tool, to
// enable or disable tablet mode.
type Switcher struct {
	runner        command.Runner
	elevationTool string
	helper        string
}

func NewSwitcher(runner command.Runner, elevationTool, helper string) *Switcher {
	if elevationTool == "" {
		elevationTool = DefaultElevationTool
	}
	if helper == "" {
		helper = DefaultHelper
	}
	return &Switcher{
		runner:        runner,
		elevationTool: elevationTool,
		helper:        helper,
	}
}

// Helper returns the path of the mode-change helper.
func (s *Switcher) Helper() string {
	return s.helper
}

func (s *Switcher) args(target Mode) []string {
	if target == Tablet {
		return []string{s.helper}
	}
	return []string{s.helper, "-d"}
}

// SwitchMode blocks until the helper exits. The switch is treated as all
// or nothing: on error no part of it is assumed to have been applied.
func (s *Switcher) SwitchMode(target Mode) error {
	tool, err := s.runner.LookPath(s.elevationTool)
	if err != nil {
		logger.Warningf("Error attempting to find %s: %v", s.elevationTool, err)
		return xerrors.Errorf("%s: %w", s.elevationTool, ErrToolNotFound)
	}

	args := s.args(target)
	line := command.Line(tool, args...)
	logger.Debug("switch to", target, "mode:", line)

	err = s.runner.Run(tool, args...)
	if err != nil {
		logger.Warningf("Error attempting to execute command: %s: %v", line, err)
		return &CommandError{Line: line, Err: err}
	}
	return nil
}
