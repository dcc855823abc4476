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

	"github.com/google/vkstate/layer/layout"
	"github.com/google/vkstate/layer/registry"
	"github.com/google/vkstate/layer/report"
	"github.com/google/vkstate/layer/vulkan"
)

const (
	suspendingBit = vulkan.VkRenderingFlagBits_VK_RENDERING_SUSPENDING_BIT
	resumingBit   = vulkan.VkRenderingFlagBits_VK_RENDERING_RESUMING_BIT
)

// layoutProbe returns a map expecting the range of img in l.
func layoutProbe(img *Image, r vulkan.VkImageSubresourceRange, l vulkan.VkImageLayout) *layout.Map {
	m := layout.NewMap(img.VkImage(), img.Encoder)
	m.SetSubresourceRangeInitialLayout(r, l)
	return m
}

// ValidateBeginRenderPass checks a vkCmdBeginRenderPass call.
func (cb *CommandBuffer) ValidateBeginRenderPass(ctx context.Context, info vulkan.VkRenderPassBeginInfo) bool {
	skip := cb.ValidateCmd(ctx, "vkCmdBeginRenderPass")
	rep, h := cb.dev.rep, cb.Handle()
	rp := registry.Get[*RenderPass](cb.dev.reg, info.RenderPass)
	fb := registry.Get[*Framebuffer](cb.dev.reg, info.Framebuffer)
	if rp == nil {
		skip = rep.LogError(ctx, report.Objs(h, info.RenderPass), "VUID-VkRenderPassBeginInfo-renderPass-parameter",
			"vkCmdBeginRenderPass(): %v is not a valid render pass.", vulkan.HandleString(info.RenderPass)) || skip
	}
	if fb == nil {
		return rep.LogError(ctx, report.Objs(h, info.Framebuffer), "VUID-VkRenderPassBeginInfo-framebuffer-parameter",
			"vkCmdBeginRenderPass(): %v is not a valid framebuffer.", vulkan.HandleString(info.Framebuffer)) || skip
	}
	if rp != nil && len(fb.Attachments) != len(rp.CreateInfo.Attachments) {
		skip = rep.LogError(ctx, report.Objs(h, info.RenderPass, info.Framebuffer), "VUID-VkRenderPassBeginInfo-renderPass-00904",
			"vkCmdBeginRenderPass(): %v has %d attachments but %v has %d.",
			vulkan.HandleString(info.Framebuffer), len(fb.Attachments),
			vulkan.HandleString(info.RenderPass), len(rp.CreateInfo.Attachments)) || skip
	}
	return skip
}

// BeginRenderPass records a vkCmdBeginRenderPass call. Attachments are
// expected in their initial layouts and move to the layouts of the first
// subpass.
func (cb *CommandBuffer) BeginRenderPass(ctx context.Context, info vulkan.VkRenderPassBeginInfo, contents vulkan.VkSubpassContents) {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.recordCmd()
	rp := registry.Get[*RenderPass](cb.dev.reg, info.RenderPass)
	fb := registry.Get[*Framebuffer](cb.dev.reg, info.Framebuffer)
	if rp == nil || fb == nil {
		return
	}
	cb.renderPass, cb.subpass, cb.subpassContents = rp, 0, contents
	cb.framebuffer = fb
	cb.attachments = append([]*ImageView{}, fb.Attachments...)
	cb.hasRenderPassInstance = true
	cb.bind(rp)
	cb.bind(fb)
	for i, desc := range rp.CreateInfo.Attachments {
		if i < len(cb.attachments) {
			cb.setViewLayout(cb.attachments[i], desc.InitialLayout, desc.InitialLayout)
		}
	}
	cb.transitionSubpass()
}

// transitionSubpass moves the attachments referenced by the current subpass
// to the layouts it uses.
func (cb *CommandBuffer) transitionSubpass() {
	if int(cb.subpass) >= len(cb.renderPass.CreateInfo.Subpasses) {
		return
	}
	sp := cb.renderPass.CreateInfo.Subpasses[cb.subpass]
	refs := append([]vulkan.VkAttachmentReference{}, sp.InputAttachments...)
	refs = append(refs, sp.ColorAttachments...)
	refs = append(refs, sp.ResolveAttachments...)
	if sp.DepthStencilAttachment != nil {
		refs = append(refs, *sp.DepthStencilAttachment)
	}
	for _, ref := range refs {
		if ref.Attachment == vulkan.VK_ATTACHMENT_UNUSED || int(ref.Attachment) >= len(cb.attachments) {
			continue
		}
		cb.setViewLayout(cb.attachments[ref.Attachment], ref.Layout, layout.None)
	}
}

// ValidateNextSubpass checks a vkCmdNextSubpass call.
func (cb *CommandBuffer) ValidateNextSubpass(ctx context.Context) bool {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	skip := cb.validateCmd(ctx, "vkCmdNextSubpass")
	if rp := cb.renderPass; rp != nil && int(cb.subpass)+1 >= len(rp.CreateInfo.Subpasses) {
		skip = cb.dev.rep.LogError(ctx, report.Objs(cb.Handle(), rp.Handle()), "VUID-vkCmdNextSubpass-None-00909",
			"vkCmdNextSubpass(): subpass %d is the last subpass of %v.", cb.subpass, vulkan.HandleString(rp.Handle())) || skip
	}
	return skip
}

// NextSubpass records a vkCmdNextSubpass call.
func (cb *CommandBuffer) NextSubpass(ctx context.Context, contents vulkan.VkSubpassContents) {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.recordCmd()
	if cb.renderPass == nil {
		return
	}
	cb.subpass++
	cb.subpassContents = contents
	cb.transitionSubpass()
}

// ValidateEndRenderPass checks a vkCmdEndRenderPass call.
func (cb *CommandBuffer) ValidateEndRenderPass(ctx context.Context) bool {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	skip := cb.validateCmd(ctx, "vkCmdEndRenderPass")
	if rp := cb.renderPass; rp != nil && int(cb.subpass)+1 != len(rp.CreateInfo.Subpasses) {
		skip = cb.dev.rep.LogError(ctx, report.Objs(cb.Handle(), rp.Handle()), "VUID-vkCmdEndRenderPass-None-00910",
			"vkCmdEndRenderPass(): subpass %d is not the last subpass of %v.", cb.subpass, vulkan.HandleString(rp.Handle())) || skip
	}
	return skip
}

// EndRenderPass records a vkCmdEndRenderPass call, moving the attachments to
// their final layouts.
func (cb *CommandBuffer) EndRenderPass(ctx context.Context) {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.recordCmd()
	if rp := cb.renderPass; rp != nil {
		for i, desc := range rp.CreateInfo.Attachments {
			if i < len(cb.attachments) {
				cb.setViewLayout(cb.attachments[i], desc.FinalLayout, layout.None)
			}
		}
	}
	cb.renderPass, cb.subpass, cb.framebuffer, cb.attachments = nil, 0, nil, nil
	cb.subpassContents = vulkan.VkSubpassContents_VK_SUBPASS_CONTENTS_INLINE
}

// ValidateBeginRendering checks a vkCmdBeginRendering call.
func (cb *CommandBuffer) ValidateBeginRendering(ctx context.Context, info vulkan.VkRenderingInfo) bool {
	skip := cb.ValidateCmd(ctx, "vkCmdBeginRendering")
	for _, a := range renderingAttachments(info) {
		if a.ImageView == vulkan.VK_NULL_HANDLE {
			continue
		}
		if registry.Get[*ImageView](cb.dev.reg, a.ImageView) == nil {
			skip = cb.dev.rep.LogError(ctx, report.Objs(cb.Handle(), a.ImageView), "VUID-VkRenderingAttachmentInfo-imageView-parameter",
				"vkCmdBeginRendering(): %v is not a valid image view.", vulkan.HandleString(a.ImageView)) || skip
		}
	}
	return skip
}

func renderingAttachments(info vulkan.VkRenderingInfo) []vulkan.VkRenderingAttachmentInfo {
	out := append([]vulkan.VkRenderingAttachmentInfo{}, info.ColorAttachments...)
	if info.DepthAttachment != nil {
		out = append(out, *info.DepthAttachment)
	}
	if info.StencilAttachment != nil {
		out = append(out, *info.StencilAttachment)
	}
	return out
}

// BeginRendering records a vkCmdBeginRendering call. A command buffer whose
// first render pass instance resumes a suspended one resumes across command
// buffers.
func (cb *CommandBuffer) BeginRendering(ctx context.Context, info vulkan.VkRenderingInfo) {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.recordCmd()
	cb.rendering = &vulkan.VkRenderingInfo{}
	deepCopy(ctx, cb.rendering, &info)
	if !cb.hasRenderPassInstance && info.Flags&resumingBit != 0 {
		cb.resumesRenderPassInstance = true
	}
	cb.hasRenderPassInstance = true
	cb.suspendsRenderPassInstance = info.Flags&suspendingBit != 0
	for _, a := range renderingAttachments(info) {
		if v := registry.Get[*ImageView](cb.dev.reg, a.ImageView); v != nil {
			cb.setViewLayout(v, a.ImageLayout, layout.None)
		}
	}
}

// EndRendering records a vkCmdEndRendering call.
func (cb *CommandBuffer) EndRendering(ctx context.Context) {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.recordCmd()
	cb.rendering = nil
}
