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
	"github.com/google/vkstate/layer/qfo"
	"github.com/google/vkstate/layer/registry"
	"github.com/google/vkstate/layer/report"
	"github.com/google/vkstate/layer/vulkan"
)

// barrierStructs names the barrier structures of vkCmdPipelineBarrier and
// vkCmdPipelineBarrier2 in the VUIDs they report.
type barrierStructs struct{ buffer, image string }

var (
	barriersV1 = barrierStructs{"VkBufferMemoryBarrier", "VkImageMemoryBarrier"}
	barriersV2 = barrierStructs{"VkBufferMemoryBarrier2", "VkImageMemoryBarrier2"}
)

// validateBarriers checks the buffer and image barriers of a barrier or wait
// command. It must be called with the lock held.
func (cb *CommandBuffer) validateBarriers(ctx context.Context, call string, names barrierStructs,
	buffers []vulkan.VkBufferMemoryBarrier, images []vulkan.VkImageMemoryBarrier) bool {

	rep, h := cb.dev.rep, cb.Handle()
	skip := false
	for _, b := range buffers {
		buf := registry.Get[*Buffer](cb.dev.reg, b.Buffer)
		if buf == nil {
			continue
		}
		if b.Offset >= buf.CreateInfo.Size {
			skip = rep.LogError(ctx, report.Objs(h, b.Buffer), "VUID-"+names.buffer+"-offset-01187",
				"%s(): barrier offset %d is not less than the size %d of %v.",
				call, b.Offset, buf.CreateInfo.Size, vulkan.HandleString(b.Buffer)) || skip
		}
	}
	for _, b := range images {
		img := registry.Get[*Image](cb.dev.reg, b.Image)
		if img == nil {
			continue
		}
		if b.NewLayout == vulkan.VkImageLayout_VK_IMAGE_LAYOUT_UNDEFINED ||
			b.NewLayout == vulkan.VkImageLayout_VK_IMAGE_LAYOUT_PREINITIALIZED {
			skip = rep.LogError(ctx, report.Objs(h, b.Image), "VUID-"+names.image+"-newLayout-01198",
				"%s(): %v cannot be transitioned to %v.", call, vulkan.HandleString(b.Image), b.NewLayout) || skip
		}
		if b.OldLayout == vulkan.VkImageLayout_VK_IMAGE_LAYOUT_UNDEFINED {
			continue
		}
		m := cb.layouts.Get(b.Image)
		if m == nil {
			continue
		}
		r := img.Encoder.Normalize(b.SubresourceRange)
		m.ForRange(r, func(e layout.Entry) bool {
			if e.Current != layout.None && e.Current != b.OldLayout {
				skip = rep.LogError(ctx, report.Objs(h, b.Image), "VUID-"+names.image+"-oldLayout-01197",
					"%s(): %v %v is in %v, not the barrier's old layout %v.",
					call, vulkan.HandleString(b.Image), e.First, e.Current, b.OldLayout) || skip
			}
			return true
		})
	}
	return skip
}

// recordBarriers records the ownership transfers and layout transitions of
// the barriers. A release leaves the layout to the acquiring queue family.
// It must be called with the lock held.
func (cb *CommandBuffer) recordBarriers(ctx context.Context, buffers []vulkan.VkBufferMemoryBarrier, images []vulkan.VkImageMemoryBarrier) {
	family := cb.Pool.QueueFamily
	cb.barriers.RecordBarriers(ctx, cb.dev.rep, cb.VkCommandBuffer(), family, buffers, images)
	for _, b := range buffers {
		if buf := registry.Get[*Buffer](cb.dev.reg, b.Buffer); buf != nil {
			cb.bind(buf)
		}
	}
	for _, b := range images {
		img := registry.Get[*Image](cb.dev.reg, b.Image)
		if img == nil {
			continue
		}
		if qfo.DirectionOf(family, b) == qfo.Release {
			cb.bind(img)
			continue
		}
		cb.setImageLayout(img, b.SubresourceRange, b.NewLayout, b.OldLayout)
	}
}

// ValidatePipelineBarrier checks a vkCmdPipelineBarrier call.
func (cb *CommandBuffer) ValidatePipelineBarrier(ctx context.Context, c *vulkan.VkCmdPipelineBarrier) bool {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	skip := cb.validateCmd(ctx, "vkCmdPipelineBarrier")
	return cb.validateBarriers(ctx, "vkCmdPipelineBarrier", barriersV1, c.BufferMemoryBarriers, c.ImageMemoryBarriers) || skip
}

// PipelineBarrier records a vkCmdPipelineBarrier call.
func (cb *CommandBuffer) PipelineBarrier(ctx context.Context, c *vulkan.VkCmdPipelineBarrier) {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.recordCmd()
	cb.recordBarriers(ctx, c.BufferMemoryBarriers, c.ImageMemoryBarriers)
}

// ValidatePipelineBarrier2 checks a vkCmdPipelineBarrier2 call.
func (cb *CommandBuffer) ValidatePipelineBarrier2(ctx context.Context, info vulkan.VkDependencyInfo) bool {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	skip := cb.validateCmd(ctx, "vkCmdPipelineBarrier2")
	return cb.validateBarriers(ctx, "vkCmdPipelineBarrier2", barriersV2, info.BufferMemoryBarriers, info.ImageMemoryBarriers) || skip
}

// PipelineBarrier2 records a vkCmdPipelineBarrier2 call.
func (cb *CommandBuffer) PipelineBarrier2(ctx context.Context, info vulkan.VkDependencyInfo) {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.recordCmd()
	cb.recordBarriers(ctx, info.BufferMemoryBarriers, info.ImageMemoryBarriers)
}
