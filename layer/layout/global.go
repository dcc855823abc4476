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

package layout

import (
	"sync"

	"github.com/google/vkstate/layer/vulkan"
)

// Global holds the layouts of the images of a device after all the work
// submitted so far.
type Global struct {
	mu   sync.RWMutex
	maps map[vulkan.VkImage]*Map
}

// NewGlobal returns an empty global layout map.
func NewGlobal() *Global {
	return &Global{maps: map[vulkan.VkImage]*Map{}}
}

// AddImage starts tracking img with every subresource in layout. A layout of
// None leaves the subresources unknown.
func (g *Global) AddImage(img vulkan.VkImage, enc Encoder, layout vulkan.VkImageLayout) {
	m := NewMap(img, enc)
	if layout != None {
		m.SetSubresourceRangeLayout(enc.Whole(), layout, None)
	}
	g.mu.Lock()
	g.maps[img] = m
	g.mu.Unlock()
}

// RemoveImage stops tracking img.
func (g *Global) RemoveImage(img vulkan.VkImage) {
	g.mu.Lock()
	delete(g.maps, img)
	g.mu.Unlock()
}

// Snapshot returns a copy of the map of img, or nil if img is not tracked.
func (g *Global) Snapshot(img vulkan.VkImage) *Map {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if m, ok := g.maps[img]; ok {
		return m.Clone()
	}
	return nil
}

// Layout returns the current layout of the subresource of img, or None.
func (g *Global) Layout(img vulkan.VkImage, s Subresource) vulkan.VkImageLayout {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if m, ok := g.maps[img]; ok {
		return m.CurrentLayout(s)
	}
	return None
}

// SetLayout sets the current layout of the range of img, as done by the
// presentation engine or host image transitions.
func (g *Global) SetLayout(img vulkan.VkImage, r vulkan.VkImageSubresourceRange, layout vulkan.VkImageLayout) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if m, ok := g.maps[img]; ok {
		m.SetSubresourceRangeLayout(r, layout, None)
	}
}

// Apply folds the current layouts of the per image maps of s into the global
// state. Images that are not tracked are ignored.
func (g *Global) Apply(s *Set) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, img := range s.Images() {
		if m, ok := g.maps[img]; ok {
			src := s.Get(img)
			for _, vs := range src.current {
				set(&m.current, vs.Span, vs.Value.(vulkan.VkImageLayout))
			}
			m.changes++
		}
	}
}
