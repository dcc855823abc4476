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

package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/google/vkstate/core/log"
	"github.com/google/vkstate/layer/config"
)

func write(t *testing.T, dir, name, content string) string {
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0666))
	return path
}

func TestLoadYAML(t *testing.T) {
	path := write(t, t.TempDir(), "vkstate.yaml", `
break_on: [VUID-vkQueueSubmit-pCommandBuffers-00070]
mute:
  - UNASSIGNED-CoreValidation-Swapchain-PreTransform
severity: error
`)
	s, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, []string{"VUID-vkQueueSubmit-pCommandBuffers-00070"}, s.BreakOn)
	require.Equal(t, []string{"UNASSIGNED-CoreValidation-Swapchain-PreTransform"}, s.Mute)
	require.Equal(t, 10, s.DuplicateLimit, "default kept")

	r := s.ReportSettings()
	require.False(t, r.ReportWarnings)
	require.False(t, r.BreakOnError)
}

func TestLoadTOML(t *testing.T) {
	path := write(t, t.TempDir(), "vkstate.toml", `
break_on_error = true
duplicate_message_limit = 3
severity = "performance"
report = "out.json"
`)
	s, err := config.Load(path)
	require.NoError(t, err)
	require.True(t, s.BreakOnError)
	require.Equal(t, 3, s.DuplicateLimit)
	require.Equal(t, "out.json", s.Report)
	require.True(t, s.ReportSettings().ReportWarnings)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := config.Load(write(t, dir, "vkstate.ini", "severity=error"))
	require.ErrorIs(t, err, config.ErrUnknownFormat)

	_, err = config.Load(write(t, dir, "bad.yaml", "severity: loud\n"))
	require.ErrorContains(t, err, "severity")

	_, err = config.Load(write(t, dir, "neg.toml", "duplicate_message_limit = -1\n"))
	require.Error(t, err)

	_, err = config.Load(write(t, dir, "typo.yaml", "brake_on: []\n"))
	require.Error(t, err, "unknown fields are rejected")

	_, err = config.Load(write(t, dir, "both.yaml", "severity: loud\nduplicate_message_limit: -2\n"))
	require.ErrorContains(t, err, "severity")
	require.ErrorContains(t, err, "duplicate_message_limit")

	_, err = config.Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}

func TestMarshalRoundTrip(t *testing.T) {
	in := config.Settings{BreakOn: []string{"a"}, Mute: []string{"b"}, DuplicateLimit: 4, Severity: "warning"}
	for _, name := range []string{"s.yaml", "s.toml"} {
		data, err := config.Marshal(name, in)
		require.NoError(t, err)
		var out config.Settings
		require.NoError(t, config.Unmarshal(name, data, &out))
		require.Equal(t, in, out, name)
	}
}

func TestWatch(t *testing.T) {
	ctx := log.Testing(t)
	dir := t.TempDir()
	path := write(t, dir, "vkstate.yaml", "severity: warning\n")

	got := make(chan config.Settings, 16)
	stop, err := config.Watch(ctx, path, func(_ context.Context, s config.Settings) {
		select {
		case got <- s:
		default:
		}
	})
	require.NoError(t, err)
	defer stop()

	write(t, dir, "other.yaml", "severity: error\n")
	write(t, dir, "vkstate.yaml", "severity: error\nduplicate_message_limit: 1\n")

	// The write may be seen as a truncation followed by the content.
	timeout := time.After(10 * time.Second)
	for {
		select {
		case s := <-got:
			if s.Severity != "error" {
				continue
			}
			require.Equal(t, 1, s.DuplicateLimit)
			return
		case <-timeout:
			t.Fatal("settings were not reloaded")
		}
	}
}
