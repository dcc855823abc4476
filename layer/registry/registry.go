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

// Package registry maps Vulkan handles to the state objects tracking them.
//
// Objects are registered under their handle type and value, so handles of
// different types with the same value never collide. Lookups are typed:
//
//	img := registry.Get[*state.Image](reg, vkImg)
//
// returns nil when the handle is unknown or refers to a different kind of
// object.
package registry

import (
	"sort"
	"sync"

	"golang.org/x/exp/maps"

	"github.com/google/vkstate/layer/vulkan"
)

type key struct {
	ty    string
	value uint64
}

func keyOf(h vulkan.Handle) key { return key{h.HandleType(), h.Value()} }

// Registry is a set of state objects keyed by handle.
type Registry struct {
	mu      sync.RWMutex
	objects map[key]Object
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{objects: map[key]Object{}}
}

// Add registers obj under its node's handle, replacing any previous object
// with the same handle.
func (r *Registry) Add(obj Object) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.objects[keyOf(obj.Base().Handle())] = obj
}

// Lookup returns the object registered for h, or nil.
func (r *Registry) Lookup(h vulkan.Handle) Object {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.objects[keyOf(h)]
}

// Delete removes and returns the object registered for h, or nil.
func (r *Registry) Delete(h vulkan.Handle) Object {
	r.mu.Lock()
	defer r.mu.Unlock()
	k := keyOf(h)
	obj := r.objects[k]
	delete(r.objects, k)
	return obj
}

// Len returns the number of registered objects.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.objects)
}

// Get returns the object of type T registered for h, or the zero T if there
// is none.
func Get[T Object](r *Registry, h vulkan.Handle) T {
	obj, _ := r.Lookup(h).(T)
	return obj
}

// Remove unregisters the object of type T for h and returns it. If the handle
// refers to an object of another type nothing is removed.
func Remove[T Object](r *Registry, h vulkan.Handle) T {
	r.mu.Lock()
	defer r.mu.Unlock()
	k := keyOf(h)
	obj, ok := r.objects[k].(T)
	if ok {
		delete(r.objects, k)
	}
	return obj
}

// All returns every registered object of type T, ordered by handle value.
func All[T Object](r *Registry) []T {
	r.mu.RLock()
	keys := maps.Keys(r.objects)
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].ty != keys[j].ty {
			return keys[i].ty < keys[j].ty
		}
		return keys[i].value < keys[j].value
	})
	out := []T{}
	for _, k := range keys {
		if obj, ok := r.objects[k].(T); ok {
			out = append(out, obj)
		}
	}
	r.mu.RUnlock()
	return out
}
