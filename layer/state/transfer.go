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

// layoutUse is an image operand of a transfer command: the layouts it may
// legally be in and the VUIDs reported when it is not.
type layoutUse struct {
	allowed  []vulkan.VkImageLayout
	mismatch string
	illegal  string
}

var (
	generalLayout       = vulkan.VkImageLayout_VK_IMAGE_LAYOUT_GENERAL
	sharedPresentLayout = vulkan.VkImageLayout_VK_IMAGE_LAYOUT_SHARED_PRESENT_KHR
	transferSrcLayout   = vulkan.VkImageLayout_VK_IMAGE_LAYOUT_TRANSFER_SRC_OPTIMAL
	transferDstLayout   = vulkan.VkImageLayout_VK_IMAGE_LAYOUT_TRANSFER_DST_OPTIMAL
)

var (
	copyImageSrc = layoutUse{[]vulkan.VkImageLayout{transferSrcLayout, generalLayout, sharedPresentLayout},
		"VUID-vkCmdCopyImage-srcImageLayout-00128", "VUID-vkCmdCopyImage-srcImageLayout-01917"}
	copyImageDst = layoutUse{[]vulkan.VkImageLayout{transferDstLayout, generalLayout, sharedPresentLayout},
		"VUID-vkCmdCopyImage-dstImageLayout-00133", "VUID-vkCmdCopyImage-dstImageLayout-01395"}
	copyBufferToImageDst = layoutUse{[]vulkan.VkImageLayout{transferDstLayout, generalLayout, sharedPresentLayout},
		"VUID-vkCmdCopyBufferToImage-dstImageLayout-00180", "VUID-vkCmdCopyBufferToImage-dstImageLayout-01396"}
	copyImageToBufferSrc = layoutUse{[]vulkan.VkImageLayout{transferSrcLayout, generalLayout, sharedPresentLayout},
		"VUID-vkCmdCopyImageToBuffer-srcImageLayout-00189", "VUID-vkCmdCopyImageToBuffer-srcImageLayout-01397"}
	clearColor = layoutUse{[]vulkan.VkImageLayout{transferDstLayout, generalLayout, sharedPresentLayout},
		"VUID-vkCmdClearColorImage-imageLayout-00004", "VUID-vkCmdClearColorImage-imageLayout-01394"}
	clearDepthStencil = layoutUse{[]vulkan.VkImageLayout{transferDstLayout, generalLayout},
		"VUID-vkCmdClearDepthStencilImage-imageLayout-00011", "VUID-vkCmdClearDepthStencilImage-imageLayout-00012"}
)

// verifyImageLayout checks that the ranges of img used by a command are in
// l, as far as the recording so far tells, and that l is legal for the use.
// It must be called with the lock held.
func (cb *CommandBuffer) verifyImageLayout(ctx context.Context, call string, img *Image,
	ranges []vulkan.VkImageSubresourceRange, l vulkan.VkImageLayout, use layoutUse) bool {

	rep, objs := cb.dev.rep, report.Objs(cb.Handle(), img.Handle())
	skip := false
	legal := false
	for _, a := range use.allowed {
		legal = legal || a == l
	}
	if !legal {
		skip = rep.LogError(ctx, objs, use.illegal, "%s(): %v is used in %v, which is not legal for the command.",
			call, vulkan.HandleString(img.Handle()), l) || skip
	}
	m := cb.layouts.Get(img.VkImage())
	if m == nil {
		return skip
	}
	for _, r := range ranges {
		m.ForRange(r, func(e layout.Entry) bool {
			if e.Current != layout.None && e.Current != l {
				skip = rep.LogError(ctx, objs, use.mismatch,
					"%s(): %v %v is in %v but the command uses %v.",
					call, vulkan.HandleString(img.Handle()), e.First, e.Current, l) || skip
				return false
			}
			return true
		})
	}
	return skip
}

// useImage records that the ranges of img are used in l.
func (cb *CommandBuffer) useImage(img *Image, ranges []vulkan.VkImageSubresourceRange, l vulkan.VkImageLayout) {
	for _, r := range ranges {
		cb.setImageLayout(img, r, l, layout.None)
	}
}

func (cb *CommandBuffer) bindBuffer(h vulkan.VkBuffer) {
	if b := registry.Get[*Buffer](cb.dev.reg, h); b != nil {
		cb.bind(b)
	}
}

func copyRanges(regions []vulkan.VkImageCopy) (src, dst []vulkan.VkImageSubresourceRange) {
	for _, r := range regions {
		src = append(src, r.SrcSubresource.Range())
		dst = append(dst, r.DstSubresource.Range())
	}
	return src, dst
}

func bufferImageRanges(regions []vulkan.VkBufferImageCopy) []vulkan.VkImageSubresourceRange {
	out := make([]vulkan.VkImageSubresourceRange, len(regions))
	for i, r := range regions {
		out[i] = r.ImageSubresource.Range()
	}
	return out
}

// ValidateCopyImage checks a vkCmdCopyImage call.
func (cb *CommandBuffer) ValidateCopyImage(ctx context.Context, c *vulkan.VkCmdCopyImage) bool {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	skip := cb.validateCmd(ctx, "vkCmdCopyImage")
	src, dst := copyRanges(c.Regions)
	if img := registry.Get[*Image](cb.dev.reg, c.SrcImage); img != nil {
		skip = cb.verifyImageLayout(ctx, "vkCmdCopyImage", img, src, c.SrcImageLayout, copyImageSrc) || skip
	}
	if img := registry.Get[*Image](cb.dev.reg, c.DstImage); img != nil {
		skip = cb.verifyImageLayout(ctx, "vkCmdCopyImage", img, dst, c.DstImageLayout, copyImageDst) || skip
	}
	return skip
}

// CopyImage records a vkCmdCopyImage call.
func (cb *CommandBuffer) CopyImage(ctx context.Context, c *vulkan.VkCmdCopyImage) {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.recordCmd()
	src, dst := copyRanges(c.Regions)
	if img := registry.Get[*Image](cb.dev.reg, c.SrcImage); img != nil {
		cb.useImage(img, src, c.SrcImageLayout)
	}
	if img := registry.Get[*Image](cb.dev.reg, c.DstImage); img != nil {
		cb.useImage(img, dst, c.DstImageLayout)
	}
}

// ValidateCopyBufferToImage checks a vkCmdCopyBufferToImage call.
func (cb *CommandBuffer) ValidateCopyBufferToImage(ctx context.Context, c *vulkan.VkCmdCopyBufferToImage) bool {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	skip := cb.validateCmd(ctx, "vkCmdCopyBufferToImage")
	if img := registry.Get[*Image](cb.dev.reg, c.DstImage); img != nil {
		skip = cb.verifyImageLayout(ctx, "vkCmdCopyBufferToImage", img, bufferImageRanges(c.Regions),
			c.DstImageLayout, copyBufferToImageDst) || skip
	}
	return skip
}

// CopyBufferToImage records a vkCmdCopyBufferToImage call.
func (cb *CommandBuffer) CopyBufferToImage(ctx context.Context, c *vulkan.VkCmdCopyBufferToImage) {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.recordCmd()
	cb.bindBuffer(c.SrcBuffer)
	if img := registry.Get[*Image](cb.dev.reg, c.DstImage); img != nil {
		cb.useImage(img, bufferImageRanges(c.Regions), c.DstImageLayout)
	}
}

// ValidateCopyImageToBuffer checks a vkCmdCopyImageToBuffer call.
func (cb *CommandBuffer) ValidateCopyImageToBuffer(ctx context.Context, c *vulkan.VkCmdCopyImageToBuffer) bool {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	skip := cb.validateCmd(ctx, "vkCmdCopyImageToBuffer")
	if img := registry.Get[*Image](cb.dev.reg, c.SrcImage); img != nil {
		skip = cb.verifyImageLayout(ctx, "vkCmdCopyImageToBuffer", img, bufferImageRanges(c.Regions),
			c.SrcImageLayout, copyImageToBufferSrc) || skip
	}
	return skip
}

// CopyImageToBuffer records a vkCmdCopyImageToBuffer call.
func (cb *CommandBuffer) CopyImageToBuffer(ctx context.Context, c *vulkan.VkCmdCopyImageToBuffer) {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.recordCmd()
	cb.bindBuffer(c.DstBuffer)
	if img := registry.Get[*Image](cb.dev.reg, c.SrcImage); img != nil {
		cb.useImage(img, bufferImageRanges(c.Regions), c.SrcImageLayout)
	}
}

// ValidateClearImage checks a vkCmdClearColorImage call, or a
// vkCmdClearDepthStencilImage call if depthStencil is set.
func (cb *CommandBuffer) ValidateClearImage(ctx context.Context, h vulkan.VkImage, l vulkan.VkImageLayout,
	ranges []vulkan.VkImageSubresourceRange, depthStencil bool) bool {

	call, use := "vkCmdClearColorImage", clearColor
	if depthStencil {
		call, use = "vkCmdClearDepthStencilImage", clearDepthStencil
	}
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	skip := cb.validateCmd(ctx, call)
	if img := registry.Get[*Image](cb.dev.reg, h); img != nil {
		skip = cb.verifyImageLayout(ctx, call, img, ranges, l, use) || skip
	}
	return skip
}

// ClearImage records a vkCmdClearColorImage or vkCmdClearDepthStencilImage
// call.
func (cb *CommandBuffer) ClearImage(ctx context.Context, h vulkan.VkImage, l vulkan.VkImageLayout, ranges []vulkan.VkImageSubresourceRange) {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.recordCmd()
	if img := registry.Get[*Image](cb.dev.reg, h); img != nil {
		cb.useImage(img, ranges, l)
	}
}
