// SPDX-FileCopyrightText: 2018 - 2023 Gooroom <gooroom@gooroom.kr>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package tabletmode

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/xerrors"
)

// Watcher reports mode changes caused by the helper creating or removing
// the sentinel file. The parent directory is watched because the file
// itself comes and goes.
type Watcher struct {
	sentinel string
	watcher  *fsnotify.Watcher
	changes  chan Mode
	quit     chan struct{}
	wg       sync.WaitGroup
	once     sync.Once
}

func Watch(sentinel string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, xerrors.Errorf("create watcher: %w", err)
	}

	dir := filepath.Dir(sentinel)
	err = fw.Add(dir)
	if err != nil {
		_ = fw.Close()
		return nil, xerrors.Errorf("watch %s: %w", dir, err)
	}

	w := &Watcher{
		sentinel: sentinel,
		watcher:  fw,
		changes:  make(chan Mode, 1),
		quit:     make(chan struct{}),
	}
	w.wg.Add(1)
	go w.loop(ReadMode(sentinel))
	return w, nil
}

// Changes delivers the new mode each time it differs from the last one
// seen. The channel is closed when the watcher stops.
func (w *Watcher) Changes() <-chan Mode {
	return w.changes
}

func (w *Watcher) loop(last Mode) {
	defer w.wg.Done()
	defer close(w.changes)

	for {
		select {
		case <-w.quit:
			return
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Warning("Receive file watcher error:", err)
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != filepath.Clean(w.sentinel) {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}

			mode := ReadMode(w.sentinel)
			if mode == last {
				continue
			}
			last = mode
			logger.Debug("[Fsnotify] mode changed:", mode, ev)

			select {
			case w.changes <- mode:
			case <-w.quit:
				return
			}
		}
	}
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.quit)
		err = w.watcher.Close()
		w.wg.Wait()
	})
	return err
}
