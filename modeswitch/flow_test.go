// SPDX-FileCopyrightText: 2018 - 2023 Gooroom <gooroom@gooroom.kr>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package modeswitch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gooroom/gooroom-tablet-mode/common/command/commandtest"
	"github.com/gooroom/gooroom-tablet-mode/screenkeyboard"
	"github.com/gooroom/gooroom-tablet-mode/session/logout"
	"github.com/gooroom/gooroom-tablet-mode/tabletmode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	cmdEnableTablet  = "/usr/bin/pkexec " + testHelper
	cmdDisableTablet = "/usr/bin/pkexec " + testHelper + " -d"
	cmdKeyboardOn    = "/usr/bin/gsettings set org.gnome.desktop.a11y.applications screen-keyboard-enabled true"
	cmdKeyboardOff   = "/usr/bin/gsettings set org.gnome.desktop.a11y.applications screen-keyboard-enabled false"
	cmdA11yOn        = "/usr/bin/gsettings set org.gnome.desktop.interface toolkit-accessibility true"
	cmdGooroomLogout = "/usr/bin/gooroom-logout-command --logout --delay=500"
	cmdGnomeLogout   = "/usr/bin/gnome-session-quit --logout --force --no-prompt"
)

type fakeDialogs struct {
	answer bool
	err    error
	asked  []string
	errors []string
}

func (d *fakeDialogs) Ask(title, text string) (bool, error) {
	d.asked = append(d.asked, text)
	return d.answer, d.err
}

func (d *fakeDialogs) ShowError(title, text string) {
	d.errors = append(d.errors, text)
}

type countingSwitcher struct {
	inner   ModeSwitcher
	targets []tabletmode.Mode
}

func (s *countingSwitcher) SwitchMode(target tabletmode.Mode) error {
	s.targets = append(s.targets, target)
	return s.inner.SwitchMode(target)
}

type countingKeyboard struct {
	inner KeyboardSetter
	calls []bool
}

func (k *countingKeyboard) SetScreenKeyboard(enabled bool) {
	k.calls = append(k.calls, enabled)
	k.inner.SetScreenKeyboard(enabled)
}

type fixture struct {
	rec      *commandtest.Recorder
	dialogs  *fakeDialogs
	switcher *countingSwitcher
	keyboard *countingKeyboard
	flow     *Flow
}

func newFixture(initial tabletmode.Mode, answer bool, rec *commandtest.Recorder) *fixture {
	f := &fixture{
		rec:     rec,
		dialogs: &fakeDialogs{answer: answer},
		switcher: &countingSwitcher{
			inner: tabletmode.NewSwitcher(rec, "pkexec", testHelper),
		},
		keyboard: &countingKeyboard{
			inner: screenkeyboard.NewToggle(rec),
		},
	}
	m := NewMachine(initial, testHelper, testSentinel)
	f.flow = NewFlow(m, f.dialogs, f.switcher, f.keyboard, logout.New(rec, nil))
	return f
}

func TestFlow_cancelled(t *testing.T) {
	for _, initial := range []tabletmode.Mode{tabletmode.Desktop, tabletmode.Tablet} {
		f := newFixture(initial, false, commandtest.NewRecorder().Install("pkexec", "gnome-session-quit"))

		assert.Equal(t, StateCancelled, f.flow.Run())
		assert.Len(t, f.dialogs.asked, 1)
		assert.Empty(t, f.switcher.targets)
		assert.Empty(t, f.keyboard.calls)
		assert.Empty(t, f.rec.Log)
	}
}

func TestFlow_dialogFailureCountsAsDismissal(t *testing.T) {
	f := newFixture(tabletmode.Desktop, false, commandtest.NewRecorder().Install("pkexec"))
	f.dialogs.err = assert.AnError

	assert.Equal(t, StateCancelled, f.flow.Run())
	assert.Empty(t, f.rec.Log)
}

func TestFlow_switchFailed(t *testing.T) {
	rec := commandtest.NewRecorder().Install("pkexec", "gooroom-logout-command").
		Fail(cmdEnableTablet, commandtest.ExitError(126))
	f := newFixture(tabletmode.Desktop, true, rec)

	assert.Equal(t, StateFailed, f.flow.Run())
	assert.Equal(t, []tabletmode.Mode{tabletmode.Tablet}, f.switcher.targets)
	assert.Empty(t, f.keyboard.calls)
	assert.Equal(t, []string{cmdEnableTablet}, rec.Log)
	require.Len(t, f.dialogs.errors, 1)
	assert.Contains(t, f.dialogs.errors[0], testHelper)
}

func TestFlow_elevationToolMissing(t *testing.T) {
	rec := commandtest.NewRecorder().Install("gooroom-logout-command")
	f := newFixture(tabletmode.Tablet, true, rec)

	assert.Equal(t, StateFailed, f.flow.Run())
	assert.Empty(t, rec.Log)
	assert.Empty(t, f.keyboard.calls)
	require.Len(t, f.dialogs.errors, 1)
	assert.Contains(t, f.dialogs.errors[0], "Normal(PC) Mode")
}

// desktop -> tablet, logout helper present and succeeds
func TestFlow_scenarioSuccess(t *testing.T) {
	dir := t.TempDir()
	sentinel := filepath.Join(dir, ".tablet-mode")
	initial := tabletmode.ReadMode(sentinel)
	require.Equal(t, tabletmode.Desktop, initial)

	rec := commandtest.NewRecorder().Install("pkexec", "gooroom-logout-command", "gnome-session-quit")
	f := newFixture(initial, true, rec)

	assert.Equal(t, StateSucceeded, f.flow.Run())
	assert.Equal(t, []string{
		cmdEnableTablet,
		cmdKeyboardOn,
		cmdA11yOn,
		cmdGooroomLogout,
	}, rec.Log)
	assert.Empty(t, f.dialogs.errors)

	// the helper owns the sentinel; emulate it to check the expected effect
	require.NoError(t, os.WriteFile(sentinel, nil, 0644))
	assert.Equal(t, f.switcher.targets[0], tabletmode.ReadMode(sentinel))
}

// tablet -> desktop, no logout tool at all, restore fails
func TestFlow_scenarioRestore(t *testing.T) {
	rec := commandtest.NewRecorder().Install("pkexec").
		Fail(cmdEnableTablet, commandtest.ExitError(1))
	f := newFixture(tabletmode.Tablet, true, rec)

	assert.Equal(t, StateFailed, f.flow.Run())
	assert.Equal(t, []tabletmode.Mode{tabletmode.Desktop, tabletmode.Tablet}, f.switcher.targets)
	assert.Equal(t, []bool{false, true}, f.keyboard.calls)
	assert.Equal(t, []string{
		cmdDisableTablet,
		cmdKeyboardOff,
		cmdA11yOn,
		cmdEnableTablet,
		cmdKeyboardOn,
		cmdA11yOn,
	}, rec.Log)
	assert.Equal(t, []string{
		"Not found logout command.\nInstall gooroom-logout or gnome-session-bin packages.",
		"Failed to restore Tablet Mode\nPlease create " + testSentinel + " manually.",
	}, f.dialogs.errors)
}

func TestFlow_logoutFailedRestoreSucceeded(t *testing.T) {
	rec := commandtest.NewRecorder().Install("pkexec", "gnome-session-quit").
		Fail(cmdGnomeLogout, commandtest.ExitError(1))
	f := newFixture(tabletmode.Desktop, true, rec)

	assert.Equal(t, StateFailed, f.flow.Run())
	// exactly one more switch, back to the original mode
	assert.Equal(t, []tabletmode.Mode{tabletmode.Tablet, tabletmode.Desktop}, f.switcher.targets)
	assert.Equal(t, []string{
		cmdEnableTablet,
		cmdKeyboardOn,
		cmdA11yOn,
		cmdGnomeLogout,
		cmdDisableTablet,
		cmdKeyboardOff,
		cmdA11yOn,
	}, rec.Log)
	assert.Equal(t, []string{
		"Failed to system logout\nPlease check gooroom-logout or gnome-session-quit program.",
	}, f.dialogs.errors)
}
