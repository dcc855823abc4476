// Copyright (C) 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"

	"github.com/google/vkstate/core/log"
)

// Watch reloads the settings file at path whenever it changes and passes the
// new settings to onChange. Files that fail to load are logged and ignored.
// The watcher is registered before Watch returns and runs until ctx is
// cancelled or stop is called.
func Watch(ctx context.Context, path string, onChange func(context.Context, Settings)) (stop func(), err error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "creating watcher")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		w.Close()
		return nil, err
	}
	// Editors often replace the file rather than write it, so watch the
	// directory and filter by name.
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, errors.Wrapf(err, "watching %s", path)
	}

	ctx, cancel := context.WithCancel(ctx)
	ctx = log.Enter(ctx, "config.Watch")
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != abs || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				s, err := Load(abs)
				if err != nil {
					log.E(ctx, "Reloading settings: %v", err)
					continue
				}
				log.I(ctx, "Reloaded settings from %v", path)
				onChange(ctx, s)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.W(ctx, "Settings watcher: %v", err)
			}
		}
	}()
	return func() { cancel(); <-done }, nil
}
