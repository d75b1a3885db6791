// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"log/slog"
	"path/filepath"

	"github.com/z5labs/candor/internal/emit"
	"github.com/z5labs/candor/internal/logattr"
	"github.com/z5labs/candor/observe"
	"github.com/z5labs/candor/result"

	"github.com/fsnotify/fsnotify"
)

// Watcher re-applies a settings file whenever it changes on disk.
type Watcher struct {
	path    string
	name    string
	watcher *fsnotify.Watcher
	done    chan struct{}
}

// Watch starts watching path and re-applies it through the same
// validated merge as [FromFile] every time it is written. The file's
// directory is watched rather than the file itself so atomic replace
// by rename updates, the way most editors and config rollers write
// files, keep being seen.
//
// Watch does not apply the file it is handed, pair it with [FromFile]
// for the initial load. An update which fails validation is reported
// under "candor.config" and leaves the current settings untouched.
func Watch(path string) result.Result[*Watcher] {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return result.Err[*Watcher](err, result.In(ownNamespace))
	}

	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	err = fw.Add(dir)
	if err != nil {
		_ = fw.Close()
		return result.Err[*Watcher](err, result.In(ownNamespace))
	}

	w := &Watcher{
		path:    path,
		name:    name,
		watcher: fw,
		done:    make(chan struct{}),
	}
	go w.run()
	return result.Ok(w)
}

// Close stops watching and waits for the reload loop to exit.
func (w *Watcher) Close() error {
	err := w.watcher.Close()
	<-w.done
	return err
}

func (w *Watcher) run() {
	defer close(w.done)

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if filepath.Base(event.Name) != w.name {
				continue
			}
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			emit.Log(emit.Default(), nil, observe.KindReload, ownNamespace, slog.LevelWarn,
				"settings watch error",
				logattr.Path(w.path), logattr.Error(err))
		}
	}
}

func (w *Watcher) reload() {
	_, err := applyFile(w.path)
	if err != nil {
		emit.Log(emit.Default(), nil, observe.KindReload, ownNamespace, slog.LevelWarn,
			"settings reload failed",
			logattr.Path(w.path), logattr.Error(err))
		return
	}
	emit.Log(emit.Default(), nil, observe.KindReload, ownNamespace, slog.LevelInfo,
		"settings reloaded",
		logattr.Path(w.path))
}
