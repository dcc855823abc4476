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

package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/vkstate/core/app"
	"github.com/google/vkstate/core/log"
	"github.com/google/vkstate/layer/config"
)

type settingsVerb struct {
	Watch bool `help:"Keep running and print the settings again each time the file changes"`
}

func init() {
	app.AddVerb(&app.Verb{
		Name:       "settings",
		ShortHelp:  "Loads, validates and prints a layer settings file",
		ShortUsage: "<settings.yaml|settings.toml>",
		Auto:       &settingsVerb{},
	})
}

func (v *settingsVerb) Run(ctx context.Context, flags flag.FlagSet) error {
	if flags.NArg() != 1 {
		app.Usage(ctx, "Exactly one settings file expected")
		return nil
	}
	path := flags.Arg(0)
	s, err := config.Load(path)
	if err != nil {
		return err
	}
	if err := printSettings(path, s); err != nil {
		return err
	}
	if !v.Watch {
		return nil
	}

	stop, err := config.Watch(ctx, path, func(ctx context.Context, s config.Settings) {
		log.I(ctx, "Reloaded %s", path)
		if err := printSettings(path, s); err != nil {
			log.E(ctx, "Printing settings failed: %v", err)
		}
	})
	if err != nil {
		return err
	}
	defer stop()
	<-ctx.Done()
	return nil
}

// printSettings writes s to stdout in the encoding of path.
func printSettings(path string, s config.Settings) error {
	data, err := config.Marshal(path, s)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
