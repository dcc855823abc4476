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
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/google/vkstate/core/app"
	"github.com/google/vkstate/core/log"
	"github.com/google/vkstate/layer/caps"
	"github.com/google/vkstate/layer/config"
	"github.com/google/vkstate/layer/dispatch"
	"github.com/google/vkstate/layer/report"
	"github.com/google/vkstate/layer/state"
	"github.com/google/vkstate/layer/trace"
	"github.com/google/vkstate/layer/vulkan"
)

// IssuesExit is the exit code when a trace raised an error.
const IssuesExit = app.ExitCode(4)

type checkVerb struct {
	Settings string   `help:"Layer settings file (.yaml, .yml or .toml)"`
	Profile  string   `help:"Device profile, overriding the one named by the traces and the settings"`
	Report   string   `help:"Write the issues as JSON to this file, overriding the settings"`
	Mute     []string `help:"Message id never reported, may be repeated"`
	BreakOn  []string `help:"Message id that skips the offending call, may be repeated"`
	Jobs     int      `help:"Number of traces checked at the same time"`
	Color    bool     `help:"Colour the issues printed"`
}

func init() {
	verb := &checkVerb{Jobs: runtime.NumCPU(), Color: true}
	app.AddVerb(&app.Verb{
		Name:       "check",
		ShortHelp:  "Replays traces through the layer and prints the issues found",
		ShortUsage: "<trace.yaml> [trace.yaml...]",
		Auto:       verb,
	})
}

// checked is the outcome of checking one trace.
type checked struct {
	path  string
	stats trace.Stats
	rep   *report.Collector
}

func (v *checkVerb) Run(ctx context.Context, flags flag.FlagSet) error {
	if flags.NArg() == 0 {
		app.Usage(ctx, "At least one trace file expected")
		return nil
	}
	s, err := v.settings()
	if err != nil {
		return err
	}

	results := make([]*checked, flags.NArg())
	g, ctx := errgroup.WithContext(ctx)
	if v.Jobs > 0 {
		g.SetLimit(v.Jobs)
	}
	for i, path := range flags.Args() {
		i, path := i, path
		g.Go(func() error {
			r, err := v.check(ctx, path, s)
			results[i] = r
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	p := newPrinter(os.Stdout, v.Color)
	errs := 0
	for _, r := range results {
		p.print(r)
		errs += r.rep.Errors()
	}
	if s.Report != "" {
		if err := writeReport(s.Report, results); err != nil {
			return err
		}
		log.I(ctx, "Report written to %s", s.Report)
	}
	if errs > 0 {
		return IssuesExit
	}
	return nil
}

// settings returns the layer settings with the command line flags applied.
func (v *checkVerb) settings() (config.Settings, error) {
	s := config.Default()
	if v.Settings != "" {
		var err error
		if s, err = config.Load(v.Settings); err != nil {
			return config.Settings{}, err
		}
	}
	if v.Report != "" {
		s.Report = v.Report
	}
	s.Mute = append(s.Mute, v.Mute...)
	s.BreakOn = append(s.BreakOn, v.BreakOn...)
	return s, nil
}

// profile returns the device capabilities path for the trace: the flag first,
// then the trace's own profile, then the settings.
func (v *checkVerb) profile(path string, t *trace.Trace, s config.Settings) string {
	if v.Profile != "" {
		return v.Profile
	}
	if p := t.ProfilePath(filepath.Dir(path)); p != "" {
		return p
	}
	return s.Profile
}

func (v *checkVerb) check(ctx context.Context, path string, s config.Settings) (*checked, error) {
	ctx = log.Enter(ctx, filepath.Base(path))
	t, err := trace.Load(path)
	if err != nil {
		return nil, err
	}
	var provider caps.Provider = caps.NewStatic(caps.Default())
	if p := v.profile(path, t, s); p != "" {
		st, err := caps.Load(p)
		if err != nil {
			return nil, err
		}
		provider = st
	}
	rep := report.NewCollector(s.ReportSettings())
	dev := state.NewDevice(vulkan.VkDevice(1), provider, rep)
	stats, err := trace.Replay(ctx, dispatch.New(dev, trace.NewDriver(t)), t)
	if err != nil {
		return nil, err
	}
	log.D(ctx, "%d issues", len(rep.Issues()))
	return &checked{path: path, stats: stats, rep: rep}, nil
}
