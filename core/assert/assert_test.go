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

package assert_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/google/vkstate/core/assert"
)

type recorder struct {
	fatal bytes.Buffer
	error bytes.Buffer
	log   bytes.Buffer
}

func (r *recorder) Fatal(args ...interface{}) { fmt.Fprintln(&r.fatal, args...) }
func (r *recorder) Error(args ...interface{}) { fmt.Fprintln(&r.error, args...) }
func (r *recorder) Log(args ...interface{})   { fmt.Fprintln(&r.log, args...) }

type layoutPair struct {
	Image  uint64
	Layers []string
}

func TestDeepEqualsReportsDiff(t *testing.T) {
	r := &recorder{}
	a := layoutPair{1, []string{"GENERAL", "PRESENT_SRC"}}
	b := layoutPair{1, []string{"GENERAL", "UNDEFINED"}}

	if !assert.To(r).For("same").That(a).DeepEquals(a) {
		t.Errorf("DeepEquals of identical values failed")
	}
	if r.error.Len() != 0 {
		t.Errorf("Unexpected output for passing assertion: %q", r.error.String())
	}
	if assert.To(r).For("different").That(a).DeepEquals(b) {
		t.Errorf("DeepEquals of different values passed")
	}
	got := r.error.String()
	if !strings.HasPrefix(got, "Error:different") {
		t.Errorf("Diff output missing title: %q", got)
	}
	if !strings.Contains(got, "Layers[1]") {
		t.Errorf("Diff output missing differing field: %q", got)
	}
}

func TestLevels(t *testing.T) {
	r := &recorder{}
	assert.To(r).For("levels").Log("to log")
	assert.To(r).For("levels").Error("to error")
	assert.To(r).For("levels").Fatal("to fatal")
	for _, test := range []struct {
		name string
		buf  *bytes.Buffer
		want string
	}{
		{"log", &r.log, "to log"},
		{"error", &r.error, "to error"},
		{"fatal", &r.fatal, "to fatal"},
	} {
		if !strings.Contains(test.buf.String(), test.want) {
			t.Errorf("%s output %q does not contain %q", test.name, test.buf.String(), test.want)
		}
	}
}

func TestSliceAndError(t *testing.T) {
	r := &recorder{}
	assert := assert.To(r)
	assert.For("slice").ThatSlice([]int{1, 2}).Equals([]int{1, 2})
	assert.For("empty").ThatSlice([]int{}).IsEmpty()
	assert.For("nil error").ThatError(nil).Succeeded()
	if r.error.Len() != 0 {
		t.Errorf("Unexpected failures: %q", r.error.String())
	}
	assert.For("error").ThatError(nil).Failed()
	if r.error.Len() == 0 {
		t.Errorf("Failed() of a nil error did not report")
	}
}
