// SPDX-FileCopyrightText: 2018 - 2023 Gooroom <gooroom@gooroom.kr>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"flag"

	"github.com/gooroom/gooroom-tablet-mode/common/command"
	"github.com/gooroom/gooroom-tablet-mode/common/logutil"
	"github.com/gooroom/gooroom-tablet-mode/config"
	"github.com/gooroom/gooroom-tablet-mode/screenkeyboard"
	"github.com/gooroom/gooroom-tablet-mode/tabletmode"
	"github.com/linuxdeepin/go-lib/log"
)

var logger = logutil.NewLogger("gooroom-screen-keyboard-toggler")

var _options struct {
	verbose    bool
	configFile string
}

func init() {
	const verboseUsage = "Show much more message."
	flag.BoolVar(&_options.verbose, "v", false, verboseUsage)
	flag.BoolVar(&_options.verbose, "verbose", false, verboseUsage)

	const configUsage = "Read configuration from this file."
	flag.StringVar(&_options.configFile, "c", config.DefaultFile, configUsage)
	flag.StringVar(&_options.configFile, "config", config.DefaultFile, configUsage)
}

func main() {
	flag.Parse()
	if _options.verbose {
		logutil.SetLogLevel(log.LevelDebug)
	}

	cfg, err := config.Load(_options.configFile)
	if err != nil {
		logger.Warning("failed to load config, use defaults:", err)
		cfg = config.Default()
	}

	if tabletmode.ReadMode(cfg.SentinelFile) != tabletmode.Tablet {
		logger.Error("No Tablet Mode")
		return
	}

	toggle := screenkeyboard.NewToggle(command.NewExecRunner())
	if toggle.Flip(gsettingsState{}) {
		logger.Debug("screen keyboard toggled")
	}
}
