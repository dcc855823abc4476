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

func TestUpdate(t *testing.T) {
	ctx := log.Testing(t)
	add1 := func(x interface{}) interface{} {
		if x == nil {
			return 0
		}
		return x.(int) + 1
	}
	const1 := func(x interface{}) interface{} {
		return 1
	}
	for _, test := range []struct {
		name     string
		list     ValueSpanList
		span     U64Span
		f        func(interface{}) interface{}
		expected ValueSpanList
	}{
		{"Empty",
			ValueSpanList{},
			U64Span{0, 10},
			add1,
			ValueSpanList{ValueSpan{U64Span{0, 10}, 0}},
		},
		{"match",
			ValueSpanList{ValueSpan{U64Span{0, 10}, 1}},
			U64Span{0, 10},
			add1,
			ValueSpanList{ValueSpan{U64Span{0, 10}, 2}},
		},
		{"split",
			ValueSpanList{ValueSpan{U64Span{5, 25}, 1}},
			U64Span{15, 20},
			add1,
			ValueSpanList{
				ValueSpan{U64Span{5, 15}, 1},
				ValueSpan{U64Span{15, 20}, 2},
				ValueSpan{U64Span{20, 25}, 1},
			},
		},
		{"split match front",
			ValueSpanList{ValueSpan{U64Span{5, 25}, 1}},
			U64Span{5, 20},
			add1,
			ValueSpanList{
				ValueSpan{U64Span{5, 20}, 2},
				ValueSpan{U64Span{20, 25}, 1},
			},
		},
		{"split match end",
			ValueSpanList{ValueSpan{U64Span{5, 25}, 1}},
			U64Span{15, 25},
			add1,
			ValueSpanList{
				ValueSpan{U64Span{5, 15}, 1},
				ValueSpan{U64Span{15, 25}, 2},
			},
		},
		{"split front",
			ValueSpanList{ValueSpan{U64Span{15, 25}, 1}},
			U64Span{10, 20},
			add1,
			ValueSpanList{
				ValueSpan{U64Span{10, 15}, 0},
				ValueSpan{U64Span{15, 20}, 2},
				ValueSpan{U64Span{20, 25}, 1},
			},
		},
		{"split front match front",
			ValueSpanList{ValueSpan{U64Span{15, 25}, 1}},
			U64Span{10, 15},
			add1,
			ValueSpanList{
				ValueSpan{U64Span{10, 15}, 0},
				ValueSpan{U64Span{15, 25}, 1},
			},
		},
		{"split front match end",
			ValueSpanList{ValueSpan{U64Span{15, 25}, 1}},
			U64Span{10, 25},
			add1,
			ValueSpanList{
				ValueSpan{U64Span{10, 15}, 0},
				ValueSpan{U64Span{15, 25}, 2},
			},
		},
		{"split end",
			ValueSpanList{ValueSpan{U64Span{5, 15}, 1}},
			U64Span{10, 20},
			add1,
			ValueSpanList{
				ValueSpan{U64Span{5, 10}, 1},
				ValueSpan{U64Span{10, 15}, 2},
				ValueSpan{U64Span{15, 20}, 0},
			},
		},
		{"split end match front",
			ValueSpanList{ValueSpan{U64Span{5, 15}, 1}},
			U64Span{15, 20},
			add1,
			ValueSpanList{
				ValueSpan{U64Span{5, 15}, 1},
				ValueSpan{U64Span{15, 20}, 0},
			},
		},
		{"split end match end",
			ValueSpanList{ValueSpan{U64Span{5, 15}, 1}},
			U64Span{5, 20},
			add1,
			ValueSpanList{
				ValueSpan{U64Span{5, 15}, 2},
				ValueSpan{U64Span{15, 20}, 0},
			},
		},
		{"between",
			ValueSpanList{
				ValueSpan{U64Span{5, 10}, 1},
				ValueSpan{U64Span{25, 30}, 2},
			},
			U64Span{15, 20},
			add1,
			ValueSpanList{
				ValueSpan{U64Span{5, 10}, 1},
				ValueSpan{U64Span{15, 20}, 0},
				ValueSpan{U64Span{25, 30}, 2},
			},
		},
		{"between match",
			ValueSpanList{
				ValueSpan{U64Span{5, 10}, 1},
				ValueSpan{U64Span{25, 30}, 2},
			},
			U64Span{10, 25},
			add1,
			ValueSpanList{
				ValueSpan{U64Span{5, 10}, 1},
				ValueSpan{U64Span{10, 25}, 0},
				ValueSpan{U64Span{25, 30}, 2},
			},
		},
		{"merge intersection",
			ValueSpanList{
				ValueSpan{U64Span{5, 15}, 2},
				ValueSpan{U64Span{20, 30}, 2},
			},
			U64Span{10, 25},
			const1,
			ValueSpanList{
				ValueSpan{U64Span{5, 10}, 2},
				ValueSpan{U64Span{10, 25}, 1},
				ValueSpan{U64Span{25, 30}, 2},
			},
		},
		{"merge front",
			ValueSpanList{
				ValueSpan{U64Span{5, 15}, 1},
				ValueSpan{U64Span{20, 30}, 2},
			},
			U64Span{10, 25},
			const1,
			ValueSpanList{
				ValueSpan{U64Span{5, 25}, 1},
				ValueSpan{U64Span{25, 30}, 2},
			},
		},
		{"merge front match front",
			ValueSpanList{ValueSpan{U64Span{15, 25}, 0}},
			U64Span{10, 15},
			add1,
			ValueSpanList{
				ValueSpan{U64Span{10, 25}, 0},
			},
		},
		{"merge end",
			ValueSpanList{
				ValueSpan{U64Span{5, 15}, 2},
				ValueSpan{U64Span{20, 30}, 1},
			},
			U64Span{10, 25},
			const1,
			ValueSpanList{
				ValueSpan{U64Span{5, 10}, 2},
				ValueSpan{U64Span{10, 30}, 1},
			},
		},
		{"merge end match front",
			ValueSpanList{ValueSpan{U64Span{5, 15}, 0}},
			U64Span{15, 20},
			add1,
			ValueSpanList{
				ValueSpan{U64Span{5, 20}, 0},
			},
		},
		{"merge union",
			ValueSpanList{
				ValueSpan{U64Span{5, 15}, 1},
				ValueSpan{U64Span{20, 30}, 1},
			},
			U64Span{10, 25},
			const1,
			ValueSpanList{
				ValueSpan{U64Span{5, 30}, 1},
			},
		},
		{"merge union match front",
			ValueSpanList{
				ValueSpan{U64Span{5, 15}, 1},
				ValueSpan{U64Span{20, 30}, 1},
			},
			U64Span{15, 25},
			const1,
			ValueSpanList{
				ValueSpan{U64Span{5, 30}, 1},
			},
		},
		{"merge union match end",
			ValueSpanList{
				ValueSpan{U64Span{5, 15}, 1},
				ValueSpan{U64Span{20, 30}, 1},
			},
			U64Span{10, 20},
			const1,
			ValueSpanList{
				ValueSpan{U64Span{5, 30}, 1},
			},
		},
		{"merge union match both",
			ValueSpanList{
				ValueSpan{U64Span{5, 15}, 1},
				ValueSpan{U64Span{20, 30}, 1},
			},
			U64Span{15, 20},
			const1,
			ValueSpanList{
				ValueSpan{U64Span{5, 30}, 1},
			},
		},
	} {
		ctx := log.Enter(ctx, test.name)
		Update(&test.list, test.span, test.f)
		assert.For(ctx, "list").ThatSlice(test.list).Equals(test.expected)
	}
}

func TestVisitAndLookup(t *testing.T) {
	ctx := log.Testing(t)
	l := ValueSpanList{
		ValueSpan{U64Span{0, 4}, "a"},
		ValueSpan{U64Span{6, 10}, "b"},
		ValueSpan{U64Span{10, 12}, "c"},
	}
	type visit struct {
		span  U64Span
		value interface{}
	}
	got := []visit{}
	Visit(&l, U64Span{2, 11}, func(s U64Span, v interface{}) bool {
		got = append(got, visit{s, v})
		return true
	})
	assert.For(ctx, "visits").ThatSlice(got).Equals([]visit{
		{U64Span{2, 4}, "a"},
		{U64Span{6, 10}, "b"},
		{U64Span{10, 11}, "c"},
	})

	got = got[:0]
	Visit(&l, U64Span{0, 12}, func(s U64Span, v interface{}) bool {
		got = append(got, visit{s, v})
		return false
	})
	assert.For(ctx, "stopped visits").ThatSlice(got).Equals([]visit{{U64Span{0, 4}, "a"}})

	assert.For(ctx, "lookup hit").That(Lookup(&l, 7)).Equals("b")
	assert.For(ctx, "lookup gap").That(Lookup(&l, 5)).IsNil()
	assert.For(ctx, "lookup end").That(Lookup(&l, 12)).IsNil()
}

func TestUpdateSkipsEmptyParts(t *testing.T) {
	ctx := log.Testing(t)
	l := ValueSpanList{
		ValueSpan{U64Span{0, 4}, "a"},
		ValueSpan{U64Span{4, 8}, "b"},
	}
	calls := []interface{}{}
	Update(&l, U64Span{0, 8}, func(v interface{}) interface{} {
		calls = append(calls, v)
		return v
	})
	assert.For(ctx, "covered calls").ThatSlice(calls).Equals([]interface{}{"a", "b"})

	calls = calls[:0]
	Update(&l, U64Span{2, 10}, func(v interface{}) interface{} {
		calls = append(calls, v)
		if v == nil {
			return "c"
		}
		return v
	})
	assert.For(ctx, "gap calls").ThatSlice(calls).Equals([]interface{}{"a", "b", nil})
	assert.For(ctx, "list").ThatSlice(l).Equals(ValueSpanList{
		ValueSpan{U64Span{0, 4}, "a"},
		ValueSpan{U64Span{4, 8}, "b"},
		ValueSpan{U64Span{8, 10}, "c"},
	})

	gappy := ValueSpanList{ValueSpan{U64Span{5, 10}, "a"}}
	Update(&gappy, U64Span{0, 10}, func(v interface{}) interface{} {
		if v == nil {
			return nil
		}
		return "b"
	})
	assert.For(ctx, "gap left empty").ThatSlice(gappy).Equals(ValueSpanList{ValueSpan{U64Span{5, 10}, "b"}})
}
