// SPDX-FileCopyrightText: 2018 - 2023 Gooroom <gooroom@gooroom.kr>
//
// SPDX-License-Identifier: GPL-2.0-or-later

// Package config loads the optional configuration file shared by the
// desktop mode utilities.
package config

import (
	"github.com/gooroom/gooroom-tablet-mode/common/logutil"
	"github.com/gooroom/gooroom-tablet-mode/dialog"
	"github.com/gooroom/gooroom-tablet-mode/tabletmode"
	"github.com/linuxdeepin/go-lib/keyfile"
	dutils "github.com/linuxdeepin/go-lib/utils"
)

var logger = logutil.NewLogger("gooroom/config")

const DefaultFile = "/etc/gooroom/desktop-mode.conf"

const (
	sectionMode   = "Mode"
	sectionDialog = "Dialog"

	keySentinelFile   = "SentinelFile"
	keyHelper         = "Helper"
	keyElevationTool  = "ElevationTool"
	keyProgram        = "Program"
	keyNotifyFallback = "NotifyFallback"
)

type Config struct {
	SentinelFile   string
	Helper         string
	ElevationTool  string
	DialogProgram  string
	NotifyFallback bool
}

func Default() *Config {
	return &Config{
		SentinelFile:   tabletmode.DefaultSentinelFile,
		Helper:         tabletmode.DefaultHelper,
		ElevationTool:  tabletmode.DefaultElevationTool,
		DialogProgram:  dialog.DefaultProgram,
		NotifyFallback: true,
	}
}

// Load reads file on top of the defaults. A missing file is not an error;
// keys that are absent or empty keep their default value.
func Load(file string) (*Config, error) {
	cfg := Default()
	if !dutils.IsFileExist(file) {
		logger.Debug("config file not found, use defaults:", file)
		return cfg, nil
	}

	kf := keyfile.NewKeyFile()
	err := kf.LoadFromFile(file)
	if err != nil {
		return cfg, err
	}

	loadString(kf, sectionMode, keySentinelFile, &cfg.SentinelFile)
	loadString(kf, sectionMode, keyHelper, &cfg.Helper)
	loadString(kf, sectionMode, keyElevationTool, &cfg.ElevationTool)
	loadString(kf, sectionDialog, keyProgram, &cfg.DialogProgram)

	v, err := kf.GetBool(sectionDialog, keyNotifyFallback)
	if err == nil {
		cfg.NotifyFallback = v
	} else if raw, _ := kf.GetString(sectionDialog, keyNotifyFallback); raw != "" {
		logger.Warningf("invalid value %q of %s/%s: %v", raw, sectionDialog, keyNotifyFallback, err)
	}
	return cfg, nil
}

func loadString(kf *keyfile.KeyFile, section, key string, dest *string) {
	v, err := kf.GetString(section, key)
	if err != nil || v == "" {
		return
	}
	*dest = v
}
