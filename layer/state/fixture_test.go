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
	"context"
	"testing"

	"github.com/google/vkstate/core/log"
	"github.com/google/vkstate/layer/caps"
	"github.com/google/vkstate/layer/layout"
	"github.com/google/vkstate/layer/report"
	"github.com/google/vkstate/layer/state"
	"github.com/google/vkstate/layer/vulkan"
)

const (
	devHandle   = vulkan.VkDevice(1)
	queueHandle = vulkan.VkQueue(10)
	poolHandle  = vulkan.VkCommandPool(20)
	imgHandle   = vulkan.VkImage(30)
	viewHandle  = vulkan.VkImageView(31)
	bufHandle   = vulkan.VkBuffer(40)
	rpHandle    = vulkan.VkRenderPass(50)
	fbHandle    = vulkan.VkFramebuffer(51)
)

var (
	colorAspect = vulkan.VkImageAspectFlags(vulkan.VkImageAspectFlagBits_VK_IMAGE_ASPECT_COLOR_BIT)
	colorRange  = vulkan.VkImageSubresourceRange{AspectMask: colorAspect, LevelCount: 1, LayerCount: 1}

	// layoutOrigin is the first colour subresource of an image.
	layoutOrigin = layout.Subresource{Aspect: vulkan.VkImageAspectFlagBits_VK_IMAGE_ASPECT_COLOR_BIT}

	undefined   = vulkan.VkImageLayout_VK_IMAGE_LAYOUT_UNDEFINED
	general     = vulkan.VkImageLayout_VK_IMAGE_LAYOUT_GENERAL
	colorOpt    = vulkan.VkImageLayout_VK_IMAGE_LAYOUT_COLOR_ATTACHMENT_OPTIMAL
	transferDst = vulkan.VkImageLayout_VK_IMAGE_LAYOUT_TRANSFER_DST_OPTIMAL
	transferSrc = vulkan.VkImageLayout_VK_IMAGE_LAYOUT_TRANSFER_SRC_OPTIMAL
	shaderRead  = vulkan.VkImageLayout_VK_IMAGE_LAYOUT_SHADER_READ_ONLY_OPTIMAL
	presentSrc  = vulkan.VkImageLayout_VK_IMAGE_LAYOUT_PRESENT_SRC_KHR

	primary   = vulkan.VkCommandBufferLevel_VK_COMMAND_BUFFER_LEVEL_PRIMARY
	secondary = vulkan.VkCommandBufferLevel_VK_COMMAND_BUFFER_LEVEL_SECONDARY

	graphics = vulkan.VkPipelineBindPoint_VK_PIPELINE_BIND_POINT_GRAPHICS
	compute  = vulkan.VkPipelineBindPoint_VK_PIPELINE_BIND_POINT_COMPUTE

	resettable = vulkan.VkCommandPoolCreateFlags(vulkan.VkCommandPoolCreateFlagBits_VK_COMMAND_POOL_CREATE_RESET_COMMAND_BUFFER_BIT)
	simulUse   = vulkan.VkCommandBufferUsageFlags(vulkan.VkCommandBufferUsageFlagBits_VK_COMMAND_BUFFER_USAGE_SIMULTANEOUS_USE_BIT)
	oneTime    = vulkan.VkCommandBufferUsageFlags(vulkan.VkCommandBufferUsageFlagBits_VK_COMMAND_BUFFER_USAGE_ONE_TIME_SUBMIT_BIT)
	continueRP = vulkan.VkCommandBufferUsageFlags(vulkan.VkCommandBufferUsageFlagBits_VK_COMMAND_BUFFER_USAGE_RENDER_PASS_CONTINUE_BIT)
)

type fixture struct {
	ctx   context.Context
	rep   *report.Collector
	dev   *state.Device
	queue *state.Queue
	pool  *state.CommandPool
	next  vulkan.VkCommandBuffer
}

func newFixture(t *testing.T) *fixture {
	ctx := log.Testing(t)
	rep := report.NewCollector(report.DefaultSettings)
	dev := state.NewDevice(devHandle, caps.NewStatic(caps.Default()), rep)
	f := &fixture{ctx: ctx, rep: rep, dev: dev, next: 1000}
	f.queue = dev.GetDeviceQueue(ctx, 0, 0, queueHandle)
	f.pool = dev.CreateCommandPool(ctx, poolHandle, vulkan.VkCommandPoolCreateInfo{Flags: resettable})
	return f
}

func (f *fixture) allocate(level vulkan.VkCommandBufferLevel) *state.CommandBuffer {
	f.next++
	info := vulkan.VkCommandBufferAllocateInfo{CommandPool: poolHandle, Level: level, CommandBufferCount: 1}
	return f.pool.Allocate(f.ctx, info, []vulkan.VkCommandBuffer{f.next})[0]
}

func (f *fixture) begin(cb *state.CommandBuffer, flags vulkan.VkCommandBufferUsageFlags) {
	info := vulkan.VkCommandBufferBeginInfo{Flags: flags}
	if !cb.IsPrimary() {
		info.InheritanceInfo = &vulkan.VkCommandBufferInheritanceInfo{}
	}
	f.beginWith(cb, info)
}

func (f *fixture) beginWith(cb *state.CommandBuffer, info vulkan.VkCommandBufferBeginInfo) {
	cb.ValidateBegin(f.ctx, info)
	cb.Begin(f.ctx, info)
}

func (f *fixture) end(cb *state.CommandBuffer) {
	cb.ValidateEnd(f.ctx)
	cb.End(f.ctx, vulkan.VkResult_VK_SUCCESS)
}

func (f *fixture) image(h vulkan.VkImage, initial vulkan.VkImageLayout) *state.Image {
	return f.dev.CreateImage(f.ctx, h, vulkan.VkImageCreateInfo{
		Format:        vulkan.VkFormat_VK_FORMAT_R8G8B8A8_UNORM,
		Extent:        vulkan.VkExtent3D{Width: 64, Height: 64, Depth: 1},
		MipLevels:     1,
		ArrayLayers:   1,
		InitialLayout: initial,
	})
}

func (f *fixture) submit(cbs ...*state.CommandBuffer) bool {
	return f.submitWithFence(vulkan.VK_NULL_HANDLE, cbs...)
}

func (f *fixture) submitWithFence(fence vulkan.VkFence, cbs ...*state.CommandBuffer) bool {
	info := vulkan.VkSubmitInfo{}
	for _, cb := range cbs {
		info.CommandBuffers = append(info.CommandBuffers, cb.VkCommandBuffer())
	}
	submits := []vulkan.VkSubmitInfo{info}
	before := f.rep.Errors()
	f.queue.ValidateSubmit(f.ctx, submits, fence)
	f.queue.RecordSubmit(f.ctx, submits, fence, vulkan.VkResult_VK_SUCCESS)
	return f.rep.Errors() == before
}

func (f *fixture) barrier(cb *state.CommandBuffer, img vulkan.VkImage, from, to vulkan.VkImageLayout) {
	c := &vulkan.VkCmdPipelineBarrier{
		CommandBuffer: cb.VkCommandBuffer(),
		ImageMemoryBarriers: []vulkan.VkImageMemoryBarrier{{
			OldLayout:           from,
			NewLayout:           to,
			SrcQueueFamilyIndex: vulkan.VK_QUEUE_FAMILY_IGNORED,
			DstQueueFamilyIndex: vulkan.VK_QUEUE_FAMILY_IGNORED,
			Image:               img,
			SubresourceRange:    colorRange,
		}},
	}
	cb.ValidatePipelineBarrier(f.ctx, c)
	cb.PipelineBarrier(f.ctx, c)
}
