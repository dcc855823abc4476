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

// Package layout tracks the layouts of image subresources.
//
// A Map holds two layouts per subresource: the layout the subresource is
// expected to be in when first used (the initial layout) and the layout it is
// left in (the current layout). Command buffers hold one Map per image they
// touch, the device holds the layouts of every image after the work
// submitted so far.
package layout

import (
	"golang.org/x/exp/slices"

	"github.com/google/vkstate/core/math/interval"
	"github.com/google/vkstate/layer/vulkan"
)

// None is the layout of a subresource with no known layout.
const None = vulkan.VkImageLayout_VK_IMAGE_LAYOUT_MAX_ENUM

// Map holds the initial and current layouts of the subresources of one image.
// The zero Map is not usable, use NewMap.
type Map struct {
	image   vulkan.VkImage
	enc     Encoder
	initial interval.ValueSpanList
	current interval.ValueSpanList
	changes uint64
}

// NewMap returns an empty map for image.
func NewMap(image vulkan.VkImage, enc Encoder) *Map {
	return &Map{image: image, enc: enc}
}

// Image returns the image the map is for.
func (m *Map) Image() vulkan.VkImage { return m.image }

// Encoder returns the subresource encoder of the image.
func (m *Map) Encoder() Encoder { return m.enc }

// ChangeCount returns the number of modifications made to the map. Two reads
// with the same count see the same layouts.
func (m *Map) ChangeCount() uint64 { return m.changes }

// Empty returns true if no subresource has a layout.
func (m *Map) Empty() bool { return len(m.initial) == 0 && len(m.current) == 0 }

// Clone returns an independent copy of m.
func (m *Map) Clone() *Map {
	return &Map{
		image:   m.image,
		enc:     m.enc,
		initial: m.initial.Clone(),
		current: m.current.Clone(),
		changes: m.changes,
	}
}

func setIfUnset(l *interval.ValueSpanList, span interval.U64Span, layout vulkan.VkImageLayout) bool {
	changed := false
	interval.Update(l, span, func(v interface{}) interface{} {
		if v != nil {
			return v
		}
		changed = true
		return layout
	})
	return changed
}

func set(l *interval.ValueSpanList, span interval.U64Span, layout vulkan.VkImageLayout) bool {
	changed := false
	interval.Update(l, span, func(v interface{}) interface{} {
		if v != layout {
			changed = true
		}
		return layout
	})
	return changed
}

// SetSubresourceRangeLayout sets the current layout of the subresources in r
// to layout. Subresources without an initial layout get expected, or layout if
// expected is None. It returns true if the map changed.
func (m *Map) SetSubresourceRangeLayout(r vulkan.VkImageSubresourceRange, layout, expected vulkan.VkImageLayout) bool {
	if expected == None {
		expected = layout
	}
	changed := false
	for _, span := range m.enc.Spans(r) {
		if set(&m.current, span, layout) {
			changed = true
		}
		if setIfUnset(&m.initial, span, expected) {
			changed = true
		}
	}
	if changed {
		m.changes++
	}
	return changed
}

// SetSubresourceRangeInitialLayout records layout as the initial layout of the
// subresources in r that have no initial layout yet. Current layouts are not
// changed. It returns true if the map changed.
func (m *Map) SetSubresourceRangeInitialLayout(r vulkan.VkImageSubresourceRange, layout vulkan.VkImageLayout) bool {
	changed := false
	for _, span := range m.enc.Spans(r) {
		if setIfUnset(&m.initial, span, layout) {
			changed = true
		}
	}
	if changed {
		m.changes++
	}
	return changed
}

func layoutOf(l interval.ValueSpanList, i uint64) vulkan.VkImageLayout {
	if v := interval.Lookup(&l, i); v != nil {
		return v.(vulkan.VkImageLayout)
	}
	return None
}

// CurrentLayout returns the current layout of s, or None.
func (m *Map) CurrentLayout(s Subresource) vulkan.VkImageLayout {
	return layoutOf(m.current, m.enc.Encode(s))
}

// InitialLayout returns the initial layout of s, or None.
func (m *Map) InitialLayout(s Subresource) vulkan.VkImageLayout {
	return layoutOf(m.initial, m.enc.Encode(s))
}

// Entry is a run of consecutive subresources sharing the same layouts.
type Entry struct {
	// First is the first subresource of the run.
	First   Subresource
	Count   uint64
	Initial vulkan.VkImageLayout
	Current vulkan.VkImageLayout
}

// ForRange calls f for each run of subresources in r that has an initial or
// current layout, in ascending order. Iteration stops when f returns false.
func (m *Map) ForRange(r vulkan.VkImageSubresourceRange, f func(Entry) bool) {
	for _, span := range m.enc.Spans(r) {
		if !m.forSpan(span, f) {
			return
		}
	}
}

// ForAll calls f for each run of subresources with a layout.
func (m *Map) ForAll(f func(Entry) bool) {
	m.forSpan(interval.U64Span{Start: 0, End: m.enc.Size()}, f)
}

func (m *Map) forSpan(span interval.U64Span, f func(Entry) bool) bool {
	// Split the span at every boundary of either list.
	bounds := []uint64{}
	collect := func(l interval.ValueSpanList) {
		interval.Visit(&l, span, func(s interval.U64Span, _ interface{}) bool {
			bounds = append(bounds, s.Start, s.End)
			return true
		})
	}
	collect(m.initial)
	collect(m.current)
	if len(bounds) == 0 {
		return true
	}
	slices.Sort(bounds)
	bounds = slices.Compact(bounds)
	for i := 0; i+1 < len(bounds); i++ {
		start, end := bounds[i], bounds[i+1]
		e := Entry{
			First:   m.enc.Decode(start),
			Count:   end - start,
			Initial: layoutOf(m.initial, start),
			Current: layoutOf(m.current, start),
		}
		if e.Initial == None && e.Current == None {
			continue
		}
		if !f(e) {
			return false
		}
	}
	return true
}

// UpdateFrom folds other, recorded after m, into m. Initial layouts already
// in m are kept, current layouts from other replace those in m.
func (m *Map) UpdateFrom(other *Map) bool {
	changed := false
	for _, vs := range other.initial {
		if setIfUnset(&m.initial, vs.Span, vs.Value.(vulkan.VkImageLayout)) {
			changed = true
		}
	}
	for _, vs := range other.current {
		if set(&m.current, vs.Span, vs.Value.(vulkan.VkImageLayout)) {
			changed = true
		}
	}
	if changed {
		m.changes++
	}
	return changed
}

// Mismatch is a run of subresources whose initial layout in a command buffer
// differs from the layout they are in when the command buffer executes.
type Mismatch struct {
	First    Subresource
	Count    uint64
	Expected vulkan.VkImageLayout
	Actual   vulkan.VkImageLayout
}

// Mismatches compares the initial layouts of m with the current layouts of
// the given maps. For each subresource the first map that knows its layout is
// used. Subresources expected in UNDEFINED accept any layout.
func (m *Map) Mismatches(against ...*Map) []Mismatch {
	out := []Mismatch{}
	for _, vs := range m.initial {
		expected := vs.Value.(vulkan.VkImageLayout)
		if expected == vulkan.VkImageLayout_VK_IMAGE_LAYOUT_UNDEFINED {
			continue
		}
		resolve(vs.Span, against, func(s interval.U64Span, actual vulkan.VkImageLayout) {
			if actual != expected {
				out = append(out, Mismatch{
					First:    m.enc.Decode(s.Start),
					Count:    s.End - s.Start,
					Expected: expected,
					Actual:   actual,
				})
			}
		})
	}
	return out
}

// resolve calls f with the current layout of each part of span, taken from the
// first map in maps that knows it.
func resolve(span interval.U64Span, maps []*Map, f func(interval.U64Span, vulkan.VkImageLayout)) {
	if len(maps) == 0 || span.Start >= span.End {
		return
	}
	if maps[0] == nil {
		resolve(span, maps[1:], f)
		return
	}
	next := span.Start
	interval.Visit(&maps[0].current, span, func(s interval.U64Span, v interface{}) bool {
		resolve(interval.U64Span{Start: next, End: s.Start}, maps[1:], f)
		f(s, v.(vulkan.VkImageLayout))
		next = s.End
		return true
	})
	resolve(interval.U64Span{Start: next, End: span.End}, maps[1:], f)
}
