// SPDX-FileCopyrightText: 2018 - 2023 Gooroom <gooroom@gooroom.kr>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package logout

import (
	"errors"
	"testing"

	"github.com/gooroom/gooroom-tablet-mode/common/command/commandtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"
)

func TestSelect(t *testing.T) {
	tests := []struct {
		name      string
		installed []string
		wantPath  string
		wantArgs  []string
		wantErr   error
	}{
		{
			name:      "primary preferred",
			installed: []string{"gooroom-logout-command", "gnome-session-quit"},
			wantPath:  "/usr/bin/gooroom-logout-command",
			wantArgs:  []string{"--logout", "--delay=500"},
		},
		{
			name:      "fallback",
			installed: []string{"gnome-session-quit"},
			wantPath:  "/usr/bin/gnome-session-quit",
			wantArgs:  []string{"--logout", "--force", "--no-prompt"},
		},
		{
			name:    "none",
			wantErr: ErrNoLogoutCommand,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := commandtest.NewRecorder().Install(tt.installed...)
			p, args, err := New(rec, nil).Select()
			if tt.wantErr != nil {
				assert.True(t, xerrors.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPath, p)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestLogout(t *testing.T) {
	rec := commandtest.NewRecorder().Install("gnome-session-quit")

	require.NoError(t, New(rec, nil).Logout())
	assert.Equal(t, []string{"/usr/bin/gnome-session-quit --logout --force --no-prompt"}, rec.Log)
}

func TestLogout_notFound(t *testing.T) {
	rec := commandtest.NewRecorder()

	err := New(rec, nil).Logout()
	assert.True(t, xerrors.Is(err, ErrNoLogoutCommand))
	assert.Empty(t, rec.Log)
}

func TestLogout_failed(t *testing.T) {
	const line = "/usr/bin/gooroom-logout-command --logout --delay=500"
	rec := commandtest.NewRecorder().Install("gooroom-logout-command").
		Fail(line, commandtest.ExitError(2))

	err := New(rec, nil).Logout()
	var logoutErr *Error
	require.True(t, errors.As(err, &logoutErr))
	assert.Equal(t, line, logoutErr.Line)
	assert.False(t, xerrors.Is(err, ErrNoLogoutCommand))
}

func TestNew_customCommands(t *testing.T) {
	rec := commandtest.NewRecorder().Install("my-logout")
	l := New(rec, []Command{{Name: "my-logout", Args: []string{"-q"}}})

	require.NoError(t, l.Logout())
	assert.Equal(t, []string{"/usr/bin/my-logout -q"}, rec.Log)
}
