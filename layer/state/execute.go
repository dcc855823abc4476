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

	"github.com/google/vkstate/layer/registry"
	"github.com/google/vkstate/layer/report"
	"github.com/google/vkstate/layer/vulkan"
)

// ValidateExecuteCommands checks a vkCmdExecuteCommands call recorded into
// the primary command buffer cb.
func (cb *CommandBuffer) ValidateExecuteCommands(ctx context.Context, hs []vulkan.VkCommandBuffer) bool {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	skip := cb.validateCmd(ctx, "vkCmdExecuteCommands")
	seen := map[*CommandBuffer]bool{}
	for _, sh := range hs {
		sub := registry.Get[*CommandBuffer](cb.dev.reg, sh)
		if sub == nil {
			continue
		}
		skip = cb.validateSecondary(ctx, sub, seen[sub]) || skip
		seen[sub] = true
	}
	return skip
}

func (cb *CommandBuffer) validateSecondary(ctx context.Context, sub *CommandBuffer, duplicate bool) bool {
	sub.mu.RLock()
	defer sub.mu.RUnlock()
	rep, objs := cb.dev.rep, report.Objs(cb.Handle(), sub.Handle())
	name := vulkan.HandleString(sub.Handle())
	if sub.IsPrimary() {
		return rep.LogError(ctx, objs, "VUID-vkCmdExecuteCommands-pCommandBuffers-00088",
			"vkCmdExecuteCommands(): %v is a primary command buffer.", name)
	}
	skip := false
	if sub.state != Recorded {
		if sub.state.Invalid() {
			skip = sub.reportBroken(ctx, "vkCmdExecuteCommands") || skip
		}
		skip = rep.LogError(ctx, objs, "VUID-vkCmdExecuteCommands-pCommandBuffers-00089",
			"vkCmdExecuteCommands(): %v is %v, not executable.", name, sub.state) || skip
	}
	simultaneous := sub.beginInfo.Flags&simultaneousBit != 0
	if !simultaneous {
		if sub.InUse() {
			skip = rep.LogError(ctx, objs, "VUID-vkCmdExecuteCommands-pCommandBuffers-00090",
				"vkCmdExecuteCommands(): %v is pending and was not begun with "+
					"VK_COMMAND_BUFFER_USAGE_SIMULTANEOUS_USE_BIT.", name) || skip
		}
		if _, ok := cb.linked[sub]; ok {
			skip = rep.LogError(ctx, objs, "VUID-vkCmdExecuteCommands-pCommandBuffers-00092",
				"vkCmdExecuteCommands(): %v was already executed by %v and was not begun with "+
					"VK_COMMAND_BUFFER_USAGE_SIMULTANEOUS_USE_BIT.", name, vulkan.HandleString(cb.Handle())) || skip
		}
		if duplicate {
			skip = rep.LogError(ctx, objs, "VUID-vkCmdExecuteCommands-pCommandBuffers-00093",
				"vkCmdExecuteCommands(): %v appears more than once and was not begun with "+
					"VK_COMMAND_BUFFER_USAGE_SIMULTANEOUS_USE_BIT.", name) || skip
		}
	}
	if sub.Pool.QueueFamily != cb.Pool.QueueFamily {
		skip = rep.LogError(ctx, report.Objs(cb.Handle(), sub.Handle(), sub.Pool.Handle()),
			"VUID-vkCmdExecuteCommands-pCommandBuffers-00094",
			"vkCmdExecuteCommands(): %v was allocated for queue family %d but %v for queue family %d.",
			name, sub.Pool.QueueFamily, vulkan.HandleString(cb.Handle()), cb.Pool.QueueFamily) || skip
	}
	continues := sub.beginInfo.Flags&continueBit != 0
	switch {
	case cb.inRenderPass() && !continues:
		skip = rep.LogError(ctx, objs, "VUID-vkCmdExecuteCommands-pCommandBuffers-00096",
			"vkCmdExecuteCommands(): %v is executed inside a render pass instance but was not begun with "+
				"VK_COMMAND_BUFFER_USAGE_RENDER_PASS_CONTINUE_BIT.", name) || skip
	case !cb.inRenderPass() && continues:
		skip = rep.LogError(ctx, objs, "VUID-vkCmdExecuteCommands-pCommandBuffers-00100",
			"vkCmdExecuteCommands(): %v was begun with VK_COMMAND_BUFFER_USAGE_RENDER_PASS_CONTINUE_BIT but is "+
				"executed outside of a render pass instance.", name) || skip
	}
	if cb.renderPass != nil && continues {
		if inh := sub.beginInfo.InheritanceInfo; inh != nil && inh.Subpass != cb.subpass {
			skip = rep.LogError(ctx, objs, "VUID-vkCmdExecuteCommands-pCommandBuffers-00097",
				"vkCmdExecuteCommands(): %v inherits subpass %d but is executed in subpass %d.",
				name, inh.Subpass, cb.subpass) || skip
		}
	}
	for _, f := range sub.executeFuncs {
		skip = f(ctx, sub, cb, cb.framebuffer) || skip
	}
	return skip
}

// ExecuteCommands records a vkCmdExecuteCommands call. The primary takes
// over the image layouts, ownership transfers and deferred checks of each
// secondary and becomes one of its parents.
func (cb *CommandBuffer) ExecuteCommands(ctx context.Context, hs []vulkan.VkCommandBuffer) {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.recordCmd()
	for _, sh := range hs {
		sub := registry.Get[*CommandBuffer](cb.dev.reg, sh)
		if sub == nil || sub == cb {
			continue
		}
		cb.link(sub)
	}
}

// link folds sub into cb. It must be called with the lock of cb held.
func (cb *CommandBuffer) link(sub *CommandBuffer) {
	sub.mu.Lock()
	defer sub.mu.Unlock()
	if sub.beginInfo.Flags&simultaneousBit == 0 {
		cb.beginInfo.Flags &^= simultaneousBit
	}
	cb.layouts.Merge(sub.layouts)
	cb.barriers.Merge(sub.barriers)
	if sub.AddParent(cb) {
		cb.linked[sub] = struct{}{}
		sub.linked[cb] = struct{}{}
	}
	cb.submitFuncs = append(cb.submitFuncs, sub.submitFuncs...)
	cb.queryUpdates = append(cb.queryUpdates, sub.queryUpdates...)
	cb.eventUpdates = append(cb.eventUpdates, sub.eventUpdates...)
	cb.events = append(cb.events, sub.events...)
	for q := range sub.startedQueries {
		cb.startedQueries[q] = struct{}{}
	}
	for q := range sub.resetQueries {
		cb.resetQueries[q] = struct{}{}
	}
	for q := range sub.updatedQueries {
		cb.updatedQueries[q] = struct{}{}
	}
	cb.hasDraw = cb.hasDraw || sub.hasDraw
	cb.hasDispatch = cb.hasDispatch || sub.hasDispatch
	cb.hasTraceRays = cb.hasTraceRays || sub.hasTraceRays
	cb.hasBuildAccel = cb.hasBuildAccel || sub.hasBuildAccel
	if !cb.hasRenderPassInstance && sub.resumesRenderPassInstance {
		cb.resumesRenderPassInstance = true
	}
	if sub.hasRenderPassInstance {
		cb.hasRenderPassInstance = true
		cb.suspendsRenderPassInstance = sub.suspendsRenderPassInstance
	}
}
