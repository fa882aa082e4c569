// SPDX-FileCopyrightText: 2018 - 2023 Gooroom <gooroom@gooroom.kr>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gooroom/gooroom-tablet-mode/common/command"
	"github.com/gooroom/gooroom-tablet-mode/common/logutil"
	"github.com/gooroom/gooroom-tablet-mode/config"
	"github.com/gooroom/gooroom-tablet-mode/dialog"
	"github.com/gooroom/gooroom-tablet-mode/modeswitch"
	"github.com/gooroom/gooroom-tablet-mode/screenkeyboard"
	"github.com/gooroom/gooroom-tablet-mode/session/logout"
	"github.com/gooroom/gooroom-tablet-mode/tabletmode"
	"github.com/linuxdeepin/go-lib/gettext"
	"github.com/linuxdeepin/go-lib/log"
)

const (
	appName       = "gooroom-desktop-mode-switcher"
	gettextDomain = appName
)

var logger = logutil.NewLogger("gooroom/desktop-mode-switcher")

var _options struct {
	verbose    bool
	logLevel   string
	configFile string
	status     bool
	watch      bool
}

func init() {
	// -v | -verbose
	const verboseUsage = "Show much more message, shorthand for --loglevel debug."
	flag.BoolVar(&_options.verbose, "v", false, verboseUsage)
	flag.BoolVar(&_options.verbose, "verbose", false, verboseUsage)

	// -l | -loglevel
	const logLevelUsage = "Set log level, possible value is error/warn/info/debug/no, info is default"
	flag.StringVar(&_options.logLevel, "l", "", logLevelUsage)
	flag.StringVar(&_options.logLevel, "loglevel", "", logLevelUsage)

	// -c | -config
	const configUsage = "Read configuration from this file."
	flag.StringVar(&_options.configFile, "c", config.DefaultFile, configUsage)
	flag.StringVar(&_options.configFile, "config", config.DefaultFile, configUsage)

	flag.BoolVar(&_options.status, "status", false, "Print the current mode and exit.")
	flag.BoolVar(&_options.watch, "watch", false, "Print the mode each time it changes.")
}

func main() {
	flag.Parse()

	gettext.InitI18n()
	gettext.BindTextdomainCodeset(gettextDomain, "UTF-8")
	gettext.Textdomain(gettextDomain)

	if _options.verbose {
		_options.logLevel = "debug"
	}
	logLevel, err := logutil.ParseLevel(_options.logLevel)
	if err != nil {
		logger.Warning("failed to parse loglevel:", err)
		logLevel = log.LevelInfo
	}
	logutil.SetLogLevel(logLevel)

	cfg, err := config.Load(_options.configFile)
	if err != nil {
		logger.Warning("failed to load config, use defaults:", err)
		cfg = config.Default()
	}

	switch {
	case _options.status:
		fmt.Println(tabletmode.ReadMode(cfg.SentinelFile))
	case _options.watch:
		watchMode(cfg.SentinelFile)
	default:
		runSwitch(cfg)
	}
}

func runSwitch(cfg *config.Config) {
	// read once; the helper is the only writer of the sentinel
	initial := tabletmode.ReadMode(cfg.SentinelFile)
	logger.Info("current mode:", initial)

	runner := command.NewExecRunner()

	var fallback dialog.Notifier
	if cfg.NotifyFallback {
		fallback = dialog.NewDBusNotifier(appName)
	}
	dialogs := dialog.NewZenity(runner, cfg.DialogProgram, fallback)
	switcher := tabletmode.NewSwitcher(runner, cfg.ElevationTool, cfg.Helper)

	machine := modeswitch.NewMachine(initial, switcher.Helper(), cfg.SentinelFile)
	flow := modeswitch.NewFlow(machine, dialogs, switcher,
		screenkeyboard.NewToggle(runner), logout.New(runner, nil))

	state := flow.Run()
	logger.Info("finished:", state)
	// errors were reported by dialog; the exit status stays 0
}

func watchMode(sentinel string) {
	w, err := tabletmode.Watch(sentinel)
	if err != nil {
		logger.Warning(err)
		os.Exit(1)
	}
	defer w.Close()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	fmt.Println(tabletmode.ReadMode(sentinel))
	for {
		select {
		case mode, ok := <-w.Changes():
			if !ok {
				return
			}
			fmt.Println(mode)
		case sig := <-sigCh:
			logger.Debug("received signal:", sig)
			return
		}
	}
}
