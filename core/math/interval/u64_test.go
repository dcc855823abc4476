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

package interval

import (
	"testing"

	"github.com/google/vkstate/core/assert"
	"github.com/google/vkstate/core/log"
)

func TestU64SpanListIndexOf(t *testing.T) {
	l := U64SpanList{U64Span{10, 20}, U64Span{30, 40}, U64Span{50, 60}}
	ctx := log.Testing(t)
	ctx = log.V{"List": l}.Bind(ctx)
	for _, test := range []struct {
		value uint64
		index int
	}{
		{0, -1},
		{9, -1},
		{10, 0},
		{15, 0},
		{19, 0},
		{20, -1},
		{32, 1},
		{59, 2},
		{60, -1},
	} {
		ctx := log.V{"Value": test.value}.Bind(ctx)
		assert.For(ctx, "index").That(IndexOf(l, test.value)).Equals(test.index)
		assert.For(ctx, "contains").That(Contains(l, test.value)).Equals(test.index >= 0)
	}
}

func TestSearch(t *testing.T) {
	ctx := log.Testing(t)
	l := U64SpanList{U64Span{0, 4}, U64Span{4, 8}, U64Span{12, 16}}
	for _, test := range []struct {
		start uint64
		index int
	}{
		{0, 0},
		{5, 1},
		{12, 2},
		{13, 2},
		{16, 3},
	} {
		ctx := log.V{"Start": test.start}.Bind(ctx)
		got := Search(l, func(s U64Span) bool { return s.End > test.start })
		assert.For(ctx, "index").That(got).Equals(test.index)
	}
}

func TestU64Span(t *testing.T) {
	ctx := log.Testing(t)
	s := U64Span{4, 10}
	assert.For(ctx, "len").That(s.Len()).Equals(uint64(6))
	assert.For(ctx, "inside").That(s.Overlaps(U64Span{5, 6})).Equals(true)
	assert.For(ctx, "touching").That(s.Overlaps(U64Span{10, 12})).Equals(false)
	assert.For(ctx, "straddling").That(s.Overlaps(U64Span{0, 5})).Equals(true)
	assert.For(ctx, "empty list").That(IndexOf(U64SpanList{}, 3)).Equals(-1)
}
