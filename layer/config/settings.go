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
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"

	"github.com/google/vkstate/core/fault"
	"github.com/google/vkstate/layer/report"
)

// Settings are the user facing layer settings.
type Settings struct {
	// BreakOn lists message ids that cause the offending call to be skipped.
	BreakOn []string `yaml:"break_on" toml:"break_on"`
	// BreakOnError skips every call that raises an error.
	BreakOnError bool `yaml:"break_on_error" toml:"break_on_error"`
	// Mute lists message ids that are never reported.
	Mute []string `yaml:"mute" toml:"mute"`
	// DuplicateLimit caps the number of reports per message id. Zero is
	// unlimited.
	DuplicateLimit int `yaml:"duplicate_message_limit" toml:"duplicate_message_limit"`
	// Severity is the lowest severity reported: error, warning or
	// performance.
	Severity string `yaml:"severity" toml:"severity"`
	// Report is the path the JSON report is written to, if any.
	Report string `yaml:"report,omitempty" toml:"report,omitempty"`
	// Profile is the path of the device profile, if any.
	Profile string `yaml:"profile,omitempty" toml:"profile,omitempty"`
}

var severities = []string{"error", "warning", "performance"}

// Default returns the settings used when no file is given.
func Default() Settings {
	return Settings{DuplicateLimit: 10, Severity: "warning"}
}

// Validate checks the settings for values the layer cannot honour. Every
// problem found is reported.
func (s Settings) Validate() error {
	errs := fault.List{}
	if s.DuplicateLimit < 0 {
		errs.Collect(fmt.Errorf("duplicate_message_limit must not be negative, got %d", s.DuplicateLimit))
	}
	if s.Severity != "" && !slices.ContainsFunc(severities, func(v string) bool { return strings.EqualFold(s.Severity, v) }) {
		errs.Collect(fmt.Errorf("severity %q is not one of %s", s.Severity, strings.Join(severities, ", ")))
	}
	return errs.Err()
}

// ReportSettings returns the collector settings matching s.
func (s Settings) ReportSettings() report.Settings {
	return report.Settings{
		BreakOn:        s.BreakOn,
		BreakOnError:   s.BreakOnError,
		Mute:           s.Mute,
		DuplicateLimit: s.DuplicateLimit,
		ReportWarnings: !strings.EqualFold(s.Severity, "error"),
	}
}

// Load reads and validates the settings file at path. Fields missing from the
// file keep their default values.
func Load(path string) (Settings, error) {
	s := Default()
	if err := ReadFile(path, &s); err != nil {
		return Settings{}, err
	}
	if err := s.Validate(); err != nil {
		return Settings{}, errors.Wrap(err, path)
	}
	return s, nil
}
