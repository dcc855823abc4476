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

package state

import (
	"context"
	"sort"
	"sync"

	"github.com/google/vkstate/core/log"
	"github.com/google/vkstate/layer/caps"
	"github.com/google/vkstate/layer/registry"
	"github.com/google/vkstate/layer/report"
	"github.com/google/vkstate/layer/vulkan"
)

// CommandPool is the state of a VkCommandPool. The pool owns the command
// buffers allocated from it.
type CommandPool struct {
	registry.Node
	dev         *Device
	CreateFlags vulkan.VkCommandPoolCreateFlags
	QueueFamily uint32
	QueueFlags  vulkan.VkQueueFlags
	// Unprotected is set for pools whose command buffers may not use
	// protected memory.
	Unprotected bool

	mu      sync.Mutex
	buffers map[vulkan.VkCommandBuffer]*CommandBuffer
}

// Resettable returns true if the command buffers of the pool can be reset
// individually.
func (p *CommandPool) Resettable() bool {
	return p.CreateFlags&vulkan.VkCommandPoolCreateFlags(vulkan.VkCommandPoolCreateFlagBits_VK_COMMAND_POOL_CREATE_RESET_COMMAND_BUFFER_BIT) != 0
}

// CommandBuffers returns the command buffers of the pool in handle order.
func (p *CommandPool) CommandBuffers() []*CommandBuffer {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]*CommandBuffer, 0, len(p.buffers))
	for _, cb := range p.buffers {
		out = append(out, cb)
	}
	sortCommandBuffers(out)
	return out
}

// CreateCommandPool records a new command pool.
func (d *Device) CreateCommandPool(ctx context.Context, h vulkan.VkCommandPool, ci vulkan.VkCommandPoolCreateInfo) *CommandPool {
	p := &CommandPool{
		dev:         d,
		CreateFlags: ci.Flags,
		QueueFamily: ci.QueueFamilyIndex,
		QueueFlags:  caps.QueueFamilyFlags(d.caps, ci.QueueFamilyIndex),
		Unprotected: ci.Flags&vulkan.VkCommandPoolCreateFlags(vulkan.VkCommandPoolCreateFlagBits_VK_COMMAND_POOL_CREATE_PROTECTED_BIT) == 0,
		buffers:     map[vulkan.VkCommandBuffer]*CommandBuffer{},
	}
	p.Init(h)
	d.reg.Add(p)
	return p
}

// validateCommandBuffersNotInUse reports vuid for each command buffer that is
// pending.
func (d *Device) validateCommandBuffersNotInUse(ctx context.Context, cbs []*CommandBuffer, vuid, call string) bool {
	skip := false
	for _, cb := range cbs {
		if cb.InUse() {
			skip = d.rep.LogError(ctx, report.Objs(cb.Handle()), vuid,
				"%s(): %v is in use and has not completed.", call, vulkan.HandleString(cb.Handle())) || skip
		}
	}
	return skip
}

// ValidateDestroyCommandPool checks that none of the command buffers of the
// pool is pending.
func (d *Device) ValidateDestroyCommandPool(ctx context.Context, h vulkan.VkCommandPool) bool {
	p := registry.Get[*CommandPool](d.reg, h)
	if p == nil {
		return false
	}
	return d.validateCommandBuffersNotInUse(ctx, p.CommandBuffers(), "VUID-vkDestroyCommandPool-commandPool-00041", "vkDestroyCommandPool")
}

// DestroyCommandPool frees every command buffer of the pool and forgets it.
func (d *Device) DestroyCommandPool(ctx context.Context, h vulkan.VkCommandPool) {
	p := registry.Remove[*CommandPool](d.reg, h)
	if p == nil {
		return
	}
	for _, cb := range p.CommandBuffers() {
		p.free(ctx, cb)
	}
	p.Destroy(ctx)
}

// ValidateResetCommandPool checks that none of the command buffers of the
// pool is pending.
func (d *Device) ValidateResetCommandPool(ctx context.Context, h vulkan.VkCommandPool) bool {
	p := registry.Get[*CommandPool](d.reg, h)
	if p == nil {
		return false
	}
	return d.validateCommandBuffersNotInUse(ctx, p.CommandBuffers(), "VUID-vkResetCommandPool-commandPool-00040", "vkResetCommandPool")
}

// Reset returns every command buffer of the pool to the new state.
func (p *CommandPool) Reset(ctx context.Context) {
	for _, cb := range p.CommandBuffers() {
		cb.Reset(ctx)
	}
}

// Allocate records the command buffers returned by vkAllocateCommandBuffers.
func (p *CommandPool) Allocate(ctx context.Context, info vulkan.VkCommandBufferAllocateInfo, hs []vulkan.VkCommandBuffer) []*CommandBuffer {
	out := make([]*CommandBuffer, 0, len(hs))
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, h := range hs {
		cb := newCommandBuffer(p.dev, p, h, info.Level)
		p.buffers[h] = cb
		p.dev.reg.Add(cb)
		out = append(out, cb)
	}
	log.D(ctx, "%v: allocated %d command buffers", vulkan.HandleString(p.Handle()), len(hs))
	return out
}

// ValidateFreeCommandBuffers checks a vkFreeCommandBuffers call.
func (d *Device) ValidateFreeCommandBuffers(ctx context.Context, pool vulkan.VkCommandPool, hs []vulkan.VkCommandBuffer) bool {
	cbs := []*CommandBuffer{}
	for _, h := range hs {
		if cb := registry.Get[*CommandBuffer](d.reg, h); cb != nil {
			cbs = append(cbs, cb)
		}
	}
	return d.validateCommandBuffersNotInUse(ctx, cbs, "VUID-vkFreeCommandBuffers-pCommandBuffers-00047", "vkFreeCommandBuffers")
}

// Free forgets the command buffers. Primaries that executed a freed
// secondary become invalid.
func (p *CommandPool) Free(ctx context.Context, hs []vulkan.VkCommandBuffer) {
	for _, h := range hs {
		p.mu.Lock()
		cb := p.buffers[h]
		p.mu.Unlock()
		if cb != nil {
			p.free(ctx, cb)
		}
	}
}

func (p *CommandPool) free(ctx context.Context, cb *CommandBuffer) {
	p.mu.Lock()
	delete(p.buffers, cb.VkCommandBuffer())
	p.mu.Unlock()
	registry.Remove[*CommandBuffer](p.dev.reg, cb.Handle())
	cb.destroy(ctx)
}

func sortCommandBuffers(cbs []*CommandBuffer) {
	sort.Slice(cbs, func(i, j int) bool { return cbs[i].VkCommandBuffer() < cbs[j].VkCommandBuffer() })
}

func sortHandles(hs []vulkan.Handle) {
	sort.Slice(hs, func(i, j int) bool {
		if hs[i].HandleType() != hs[j].HandleType() {
			return hs[i].HandleType() < hs[j].HandleType()
		}
		return hs[i].Value() < hs[j].Value()
	})
}

func sortedQueries(set map[QueryObject]struct{}) []QueryObject {
	out := make([]QueryObject, 0, len(set))
	for q := range set {
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Pool != out[j].Pool {
			return out[i].Pool < out[j].Pool
		}
		return out[i].Query < out[j].Query
	})
	return out
}
