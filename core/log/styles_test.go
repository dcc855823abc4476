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

package log_test

import (
	"strings"
	"testing"

	"github.com/google/vkstate/core/assert"
	"github.com/google/vkstate/core/log"
)

func TestStyles(t *testing.T) {
	for _, test := range testMessages {
		wri, buf := log.Buffer()
		for _, w := range []struct {
			handler  log.Handler
			name     string
			expected string
		}{
			{log.Raw.Handler(wri), "Raw", test.raw},
			{log.Brief.Handler(wri), "Brief", test.brief},
			{log.Normal.Handler(wri), "Normal", test.normal},
			{log.Detailed.Handler(wri), "Detailed", test.detailed},
		} {
			buf.Reset()
			test.send(w.handler)
			assert.To(t).
				For("%s(%s)", w.name, test.msg).
				ThatString(strings.TrimRight(buf.String(), "\n")).Equals(w.expected)
		}
	}
}
