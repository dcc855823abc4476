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

package registry

import (
	"context"
	"sync"

	"github.com/google/vkstate/layer/vulkan"
)

// Object is implemented by every tracked state object.
type Object interface {
	// Base returns the node embedded in the object.
	Base() *Node
}

// Parent is an object that holds references to other objects, and is told
// when one of them becomes invalid.
type Parent interface {
	Object
	// NotifyInvalidate is called when the objects in invalid, listed from the
	// destroyed object outwards, are no longer valid. If unlink is true the
	// first object has been destroyed and must no longer be referenced.
	NotifyInvalidate(ctx context.Context, invalid []*Node, unlink bool)
	// InUse returns true if the parent is in use by the device.
	InUse() bool
}

// Node is the part of a state object that takes part in the object graph.
// Parents are held weakly: a node never keeps its parents alive, a parent
// removes itself when it drops its reference.
type Node struct {
	mu        sync.Mutex
	handle    vulkan.Handle
	destroyed bool
	parents   map[Parent]struct{}
}

// Init prepares the node for the object with the handle h.
func (n *Node) Init(h vulkan.Handle) {
	n.handle = h
	n.parents = map[Parent]struct{}{}
}

// Base returns n.
func (n *Node) Base() *Node { return n }

// Handle returns the handle of the object.
func (n *Node) Handle() vulkan.Handle { return n.handle }

// Destroyed returns true once Destroy has been called.
func (n *Node) Destroyed() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.destroyed
}

// AddParent records that p references the node. It returns false if the node
// has already been destroyed.
func (n *Node) AddParent(p Parent) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.destroyed {
		return false
	}
	n.parents[p] = struct{}{}
	return true
}

// RemoveParent records that p no longer references the node.
func (n *Node) RemoveParent(p Parent) {
	n.mu.Lock()
	defer n.mu.Unlock()
	delete(n.parents, p)
}

// Parents returns the objects currently referencing the node.
func (n *Node) Parents() []Parent {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]Parent, 0, len(n.parents))
	for p := range n.parents {
		out = append(out, p)
	}
	return out
}

// InUse returns true if any parent is in use by the device.
func (n *Node) InUse() bool {
	for _, p := range n.Parents() {
		if p.InUse() {
			return true
		}
	}
	return false
}

// Invalidate tells every parent that the node is no longer valid.
func (n *Node) Invalidate(ctx context.Context, unlink bool) {
	invalid := []*Node{n}
	for _, p := range n.Parents() {
		p.NotifyInvalidate(ctx, invalid, unlink)
	}
	if unlink {
		n.mu.Lock()
		n.parents = map[Parent]struct{}{}
		n.mu.Unlock()
	}
}

// Destroy invalidates and unlinks all the parents and marks the node as
// destroyed.
func (n *Node) Destroy(ctx context.Context) {
	n.Invalidate(ctx, true)
	n.mu.Lock()
	n.destroyed = true
	n.mu.Unlock()
}
