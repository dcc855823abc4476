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

package registry_test

import (
	"context"
	"testing"

	"github.com/google/vkstate/core/assert"
	"github.com/google/vkstate/core/log"
	"github.com/google/vkstate/layer/registry"
	"github.com/google/vkstate/layer/vulkan"
)

type image struct {
	registry.Node
}

func newImage(h vulkan.VkImage) *image {
	i := &image{}
	i.Init(h)
	return i
}

type buffer struct {
	registry.Node
}

type holder struct {
	registry.Node
	pending     bool
	invalidated [][]*registry.Node
	unlinked    []bool
}

func (h *holder) NotifyInvalidate(ctx context.Context, invalid []*registry.Node, unlink bool) {
	h.invalidated = append(h.invalidated, invalid)
	h.unlinked = append(h.unlinked, unlink)
}

func (h *holder) InUse() bool { return h.pending }

func TestGetIsTyped(t *testing.T) {
	ctx := log.Testing(t)
	r := registry.New()
	r.Add(newImage(7))
	b := &buffer{}
	b.Init(vulkan.VkBuffer(7))
	r.Add(b)

	assert.For(ctx, "len").That(r.Len()).Equals(2)
	assert.For(ctx, "image").That(registry.Get[*image](r, vulkan.VkImage(7))).IsNotNil()
	assert.For(ctx, "buffer").That(registry.Get[*buffer](r, vulkan.VkBuffer(7))).Equals(b)
	assert.For(ctx, "wrong type").That(registry.Get[*buffer](r, vulkan.VkImage(7))).IsNil()
	assert.For(ctx, "missing").That(registry.Get[*image](r, vulkan.VkImage(8))).IsNil()

	assert.For(ctx, "remove wrong type").That(registry.Remove[*buffer](r, vulkan.VkImage(7))).IsNil()
	assert.For(ctx, "remove").That(registry.Remove[*image](r, vulkan.VkImage(7))).IsNotNil()
	assert.For(ctx, "removed").That(registry.Get[*image](r, vulkan.VkImage(7))).IsNil()
}

func TestAllIsOrdered(t *testing.T) {
	ctx := log.Testing(t)
	r := registry.New()
	for _, h := range []vulkan.VkImage{30, 10, 20} {
		r.Add(newImage(h))
	}
	got := []uint64{}
	for _, i := range registry.All[*image](r) {
		got = append(got, i.Handle().Value())
	}
	assert.For(ctx, "order").ThatSlice(got).Equals([]uint64{10, 20, 30})
}

func TestDestroyInvalidatesParents(t *testing.T) {
	ctx := log.Testing(t)
	img := newImage(1)
	h := &holder{}
	h.Init(vulkan.VkCommandBuffer(2))

	assert.For(ctx, "add parent").That(img.AddParent(h)).Equals(true)
	img.Invalidate(ctx, false)
	assert.For(ctx, "notified").That(len(h.invalidated)).Equals(1)
	assert.For(ctx, "not unlinked").That(h.unlinked[0]).Equals(false)
	assert.For(ctx, "still parent").That(len(img.Parents())).Equals(1)

	h.pending = true
	assert.For(ctx, "in use").That(img.InUse()).Equals(true)

	img.Destroy(ctx)
	assert.For(ctx, "notified twice").That(len(h.invalidated)).Equals(2)
	assert.For(ctx, "unlinked").That(h.unlinked[1]).Equals(true)
	assert.For(ctx, "first invalid").That(h.invalidated[1][0]).Equals(&img.Node)
	assert.For(ctx, "destroyed").That(img.Destroyed()).Equals(true)
	assert.For(ctx, "no parents").That(len(img.Parents())).Equals(0)
	assert.For(ctx, "add after destroy").That(img.AddParent(h)).Equals(false)
}
