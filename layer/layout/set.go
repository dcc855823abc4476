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
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/google/vkstate/layer/vulkan"
)

// Set holds the layout maps of the images used by one command buffer.
//
// Maps adopted from another set with Share are read-only until the first
// mutation, which replaces them with a private copy.
type Set struct {
	maps   map[vulkan.VkImage]*Map
	shared map[vulkan.VkImage]bool
}

// NewSet returns an empty set.
func NewSet() *Set {
	return &Set{maps: map[vulkan.VkImage]*Map{}, shared: map[vulkan.VkImage]bool{}}
}

// Get returns the map for img, or nil. The returned map must not be modified.
func (s *Set) Get(img vulkan.VkImage) *Map { return s.maps[img] }

// Mutable returns a map for img that may be modified, creating it with enc
// if needed.
func (s *Set) Mutable(img vulkan.VkImage, enc Encoder) *Map {
	m, ok := s.maps[img]
	switch {
	case !ok:
		m = NewMap(img, enc)
		s.maps[img] = m
	case s.shared[img]:
		m = m.Clone()
		s.maps[img] = m
		delete(s.shared, img)
	}
	return m
}

// Shared returns true if the map for img is borrowed from another set.
func (s *Set) Shared(img vulkan.VkImage) bool { return s.shared[img] }

// Merge folds the maps of other, recorded after the maps in s, into s. Images
// s has no map for borrow the map of other.
func (s *Set) Merge(other *Set) {
	for _, img := range other.Images() {
		src := other.maps[img]
		if _, ok := s.maps[img]; !ok {
			s.maps[img] = src
			s.shared[img] = true
			continue
		}
		s.Mutable(img, src.enc).UpdateFrom(src)
	}
}

// Delete drops the map for img.
func (s *Set) Delete(img vulkan.VkImage) {
	delete(s.maps, img)
	delete(s.shared, img)
}

// Images returns the images with a map, in handle order.
func (s *Set) Images() []vulkan.VkImage {
	out := maps.Keys(s.maps)
	slices.Sort(out)
	return out
}

// Len returns the number of images with a map.
func (s *Set) Len() int { return len(s.maps) }

// Clear drops every map.
func (s *Set) Clear() {
	s.maps = map[vulkan.VkImage]*Map{}
	s.shared = map[vulkan.VkImage]bool{}
}
