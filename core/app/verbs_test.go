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

package app

import (
	"context"
	"flag"
	"testing"

	"github.com/google/vkstate/core/assert"
	"github.com/google/vkstate/core/log"
)

type echoVerb struct {
	Limit int    `help:"maximum number of reports"`
	Out   string `help:"output path"`
	ran   bool
}

func (v *echoVerb) Run(ctx context.Context, flags flag.FlagSet) error {
	v.ran = true
	return nil
}

func TestVerbInvoke(t *testing.T) {
	ctx := log.Testing(t)
	root := &Verb{Name: "root"}
	check := &echoVerb{Limit: 5}
	root.Add(&Verb{Name: "check", ShortHelp: "checks traces", Auto: check})
	root.Add(&Verb{Name: "settings", ShortHelp: "prints settings", Auto: &echoVerb{}})

	err := root.Invoke(ctx, []string{"che", "-limit", "7", "-out", "report.json", "trace.yaml"})
	assert.For(ctx, "err").ThatError(err).Succeeded()
	assert.For(ctx, "ran").That(check.ran).Equals(true)
	assert.For(ctx, "limit").That(check.Limit).Equals(7)
	assert.For(ctx, "out").That(check.Out).Equals("report.json")
	assert.For(ctx, "filter").ThatSlice(root.Filter("s")).IsLength(1)
}

func TestVerbDuplicatePanics(t *testing.T) {
	ctx := log.Testing(t)
	root := &Verb{Name: "root"}
	root.Add(&Verb{Name: "check", Auto: &echoVerb{}})
	defer func() {
		assert.For(ctx, "recovered").That(recover()).IsNotNil()
	}()
	root.Add(&Verb{Name: "check", Auto: &echoVerb{}})
}
