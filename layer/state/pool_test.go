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

package state_test

import (
	"testing"

	"github.com/google/vkstate/core/assert"
	"github.com/google/vkstate/layer/registry"
	"github.com/google/vkstate/layer/state"
	"github.com/google/vkstate/layer/vulkan"
)

func TestPoolOwnsCommandBuffers(t *testing.T) {
	f := newFixture(t)
	a, b := f.allocate(primary), f.allocate(secondary)
	assert.For(f.ctx, "buffers").ThatSlice(f.pool.CommandBuffers()).Equals([]*state.CommandBuffer{a, b})
	assert.For(f.ctx, "registered").That(registry.Get[*state.CommandBuffer](f.dev.Registry(), a.VkCommandBuffer())).Equals(a)

	f.dev.ValidateDestroyCommandPool(f.ctx, poolHandle)
	f.dev.DestroyCommandPool(f.ctx, poolHandle)
	assert.For(f.ctx, "errors").ThatInteger(f.rep.Errors()).Equals(0)
	assert.For(f.ctx, "freed").That(registry.Get[*state.CommandBuffer](f.dev.Registry(), a.VkCommandBuffer())).IsNil()
	assert.For(f.ctx, "freed secondary").That(registry.Get[*state.CommandBuffer](f.dev.Registry(), b.VkCommandBuffer())).IsNil()
	assert.For(f.ctx, "pool").That(registry.Get[*state.CommandPool](f.dev.Registry(), poolHandle)).IsNil()
}

func TestPoolInUse(t *testing.T) {
	f := newFixture(t)
	cb := f.allocate(primary)
	f.begin(cb, 0)
	f.end(cb)
	f.submit(cb)

	f.dev.ValidateResetCommandPool(f.ctx, poolHandle)
	assert.For(f.ctx, "reset").ThatBoolean(f.rep.Has("VUID-vkResetCommandPool-commandPool-00040")).IsTrue()
	f.dev.ValidateFreeCommandBuffers(f.ctx, poolHandle, []vulkan.VkCommandBuffer{cb.VkCommandBuffer()})
	assert.For(f.ctx, "free").ThatBoolean(f.rep.Has("VUID-vkFreeCommandBuffers-pCommandBuffers-00047")).IsTrue()
	f.dev.ValidateDestroyCommandPool(f.ctx, poolHandle)
	assert.For(f.ctx, "destroy").ThatBoolean(f.rep.Has("VUID-vkDestroyCommandPool-commandPool-00041")).IsTrue()

	f.dev.DeviceWaitIdle(f.ctx)
	f.pool.Reset(f.ctx)
	assert.For(f.ctx, "new").That(cb.State()).Equals(state.New)
}

func TestFreeSecondaryInvalidatesPrimary(t *testing.T) {
	f := newFixture(t)
	sub := f.allocate(secondary)
	f.begin(sub, 0)
	f.end(sub)
	cb := f.allocate(primary)
	f.begin(cb, 0)
	cb.ExecuteCommands(f.ctx, []vulkan.VkCommandBuffer{sub.VkCommandBuffer()})

	f.pool.Free(f.ctx, []vulkan.VkCommandBuffer{sub.VkCommandBuffer()})
	assert.For(f.ctx, "state").That(cb.State()).Equals(state.InvalidIncomplete)
	assert.For(f.ctx, "linked").ThatSlice(cb.Linked()).IsEmpty()
	cb.ValidateCmd(f.ctx, "vkCmdPipelineBarrier")
	assert.For(f.ctx, "broken").ThatBoolean(
		f.rep.Has("UNASSIGNED-CoreValidation-DrawState-InvalidCommandBuffer-CommandBuffer")).IsTrue()
}
