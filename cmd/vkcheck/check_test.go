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
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/vkstate/core/assert"
	"github.com/google/vkstate/core/log"
	"github.com/google/vkstate/layer/config"
	"github.com/google/vkstate/layer/trace"
)

const testdata = "../../layer/trace/testdata"

func TestCheck(t *testing.T) {
	ctx := log.Testing(t)
	v := &checkVerb{}
	s := config.Default()
	good, err := v.check(ctx, filepath.Join(testdata, "frame.yaml"), s)
	if !assert.For(ctx, "frame").ThatError(err).Succeeded() {
		return
	}
	assert.For(ctx, "frame errors").ThatInteger(good.rep.Errors()).Equals(0)

	bad, err := v.check(ctx, filepath.Join(testdata, "unpresented.yaml"), s)
	if !assert.For(ctx, "unpresented").ThatError(err).Succeeded() {
		return
	}
	assert.For(ctx, "unpresented errors").ThatInteger(bad.rep.Errors()).Equals(1)

	buf := &bytes.Buffer{}
	newPrinter(buf, false).print(bad)
	assert.For(ctx, "printed").ThatString(buf.String()).Contains("error vkQueuePresentKHR [VUID-VkPresentInfoKHR-pImageIndices-01296]")

	out := filepath.Join(t.TempDir(), "report.json")
	if !assert.For(ctx, "report").ThatError(writeReport(out, []*checked{good, bad})).Succeeded() {
		return
	}
	data, err := os.ReadFile(out)
	assert.For(ctx, "read").ThatError(err).Succeeded()
	got := map[string]struct {
		Errors float64 `json:"errors"`
	}{}
	assert.For(ctx, "json").ThatError(json.Unmarshal(data, &got)).Succeeded()
	assert.For(ctx, "reported errors").That(got[bad.path].Errors).Equals(1.0)
	assert.For(ctx, "reported traces").ThatInteger(len(got)).Equals(2)
}

func TestProfileChoice(t *testing.T) {
	ctx := log.Testing(t)
	s := config.Settings{Profile: "settings.yaml"}
	tr := &trace.Trace{Profile: "device.yaml"}
	bare := &trace.Trace{}

	v := &checkVerb{Profile: "flag.yaml"}
	assert.For(ctx, "flag").ThatString(v.profile("dir/t.yaml", tr, s)).Equals("flag.yaml")
	v.Profile = ""
	assert.For(ctx, "trace").ThatString(v.profile("dir/t.yaml", tr, s)).Equals(filepath.Join("dir", "device.yaml"))
	assert.For(ctx, "settings").ThatString(v.profile("dir/t.yaml", bare, s)).Equals("settings.yaml")
}

func TestFlagsMuteIssues(t *testing.T) {
	ctx := log.Testing(t)
	v := &checkVerb{Mute: []string{"VUID-VkPresentInfoKHR-pImageIndices-01296"}}
	s, err := v.settings()
	if !assert.For(ctx, "settings").ThatError(err).Succeeded() {
		return
	}
	r, err := v.check(ctx, filepath.Join(testdata, "unpresented.yaml"), s)
	if !assert.For(ctx, "check").ThatError(err).Succeeded() {
		return
	}
	assert.For(ctx, "errors").ThatInteger(r.rep.Errors()).Equals(0)
}
