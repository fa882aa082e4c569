// SPDX-FileCopyrightText: 2018 - 2023 Gooroom <gooroom@gooroom.kr>
//
// SPDX-License-Identifier: GPL-2.0-or-later

// Package logutil keeps track of the package loggers so a program can set
// one log level for all of them.
package logutil

import (
	"fmt"
	"strings"
	"sync"

	"github.com/linuxdeepin/go-lib/log"
)

var (
	mu      sync.Mutex
	loggers []*log.Logger
)

// NewLogger creates a logger that follows SetLogLevel.
func NewLogger(name string) *log.Logger {
	l := log.NewLogger(name)
	mu.Lock()
	loggers = append(loggers, l)
	mu.Unlock()
	return l
}

func SetLogLevel(pri log.Priority) {
	mu.Lock()
	defer mu.Unlock()
	for _, l := range loggers {
		l.SetLogLevel(pri)
	}
}

// ParseLevel maps error/warn/info/debug/no to a log priority. The empty
// string means info.
func ParseLevel(name string) (log.Priority, error) {
	switch strings.ToLower(name) {
	case "", "info":
		return log.LevelInfo, nil
	case "error":
		return log.LevelError, nil
	case "warn":
		return log.LevelWarning, nil
	case "debug":
		return log.LevelDebug, nil
	case "no":
		return log.LevelDisable, nil
	}
	return log.LevelInfo, fmt.Errorf("%s is not support", name)
}
