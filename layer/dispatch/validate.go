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

package dispatch

import (
	"context"

	"github.com/google/vkstate/layer/state"
	"github.com/google/vkstate/layer/vulkan"
)

// validate runs the checks made before cmd reaches the driver. It returns
// true if the call must be skipped.
func (l *Layer) validate(ctx context.Context, cmd vulkan.Cmd) (bool, error) {
	if c, ok := cmd.(vulkan.CommandBufferCmd); ok {
		cb, err := l.commandBuffer(cmd.CmdName(), c.Target())
		if err != nil {
			return false, err
		}
		return validateRecording(ctx, cb, c), nil
	}

	dev, w := l.dev, l.wsi
	switch c := cmd.(type) {
	case *vulkan.VkDestroyCommandPool:
		return dev.ValidateDestroyCommandPool(ctx, c.CommandPool), nil
	case *vulkan.VkResetCommandPool:
		if _, err := l.pool(c.CmdName(), c.CommandPool); err != nil {
			return false, err
		}
		return dev.ValidateResetCommandPool(ctx, c.CommandPool), nil
	case *vulkan.VkAllocateCommandBuffers:
		_, err := l.pool(c.CmdName(), c.AllocateInfo.CommandPool)
		return false, err
	case *vulkan.VkFreeCommandBuffers:
		if _, err := l.pool(c.CmdName(), c.CommandPool); err != nil {
			return false, err
		}
		return dev.ValidateFreeCommandBuffers(ctx, c.CommandPool, c.CommandBuffers), nil

	case *vulkan.VkBeginCommandBuffer:
		cb, err := l.commandBuffer(c.CmdName(), c.CommandBuffer)
		if err != nil {
			return false, err
		}
		return cb.ValidateBegin(ctx, c.BeginInfo), nil
	case *vulkan.VkEndCommandBuffer:
		cb, err := l.commandBuffer(c.CmdName(), c.CommandBuffer)
		if err != nil {
			return false, err
		}
		return cb.ValidateEnd(ctx), nil
	case *vulkan.VkResetCommandBuffer:
		cb, err := l.commandBuffer(c.CmdName(), c.CommandBuffer)
		if err != nil {
			return false, err
		}
		return cb.ValidateReset(ctx), nil

	case *vulkan.VkDestroyImage:
		return dev.ValidateDestroyImage(ctx, c.Image), nil
	case *vulkan.VkDestroyImageView:
		return dev.ValidateDestroyImageView(ctx, c.ImageView), nil
	case *vulkan.VkDestroyBuffer:
		return dev.ValidateDestroyBuffer(ctx, c.Buffer), nil
	case *vulkan.VkDestroyPipeline:
		return dev.ValidateDestroyPipeline(ctx, c.Pipeline), nil
	case *vulkan.VkFreeDescriptorSets:
		return dev.ValidateFreeDescriptorSets(ctx, c.DescriptorSets), nil
	case *vulkan.VkUpdateDescriptorSets:
		return dev.ValidateUpdateDescriptorSets(ctx, c.DescriptorWrites), nil
	case *vulkan.VkDestroyRenderPass:
		return dev.ValidateDestroyRenderPass(ctx, c.RenderPass), nil
	case *vulkan.VkCreateFramebuffer:
		return dev.ValidateCreateFramebuffer(ctx, c.CreateInfo), nil
	case *vulkan.VkDestroyFramebuffer:
		return dev.ValidateDestroyFramebuffer(ctx, c.Framebuffer), nil
	case *vulkan.VkDestroyEvent:
		return dev.ValidateDestroyEvent(ctx, c.Event), nil
	case *vulkan.VkDestroyQueryPool:
		return dev.ValidateDestroyQueryPool(ctx, c.QueryPool), nil
	case *vulkan.VkDestroySemaphore:
		return dev.ValidateDestroySemaphore(ctx, c.Semaphore), nil
	case *vulkan.VkDestroyFence:
		return dev.ValidateDestroyFence(ctx, c.Fence), nil
	case *vulkan.VkResetFences:
		return dev.ValidateResetFences(ctx, c.Fences), nil

	case *vulkan.VkQueueSubmit:
		q, err := l.queue(c.CmdName(), c.Queue)
		if err != nil {
			return false, err
		}
		return q.ValidateSubmit(ctx, c.Submits, c.Fence), nil
	case *vulkan.VkQueueWaitIdle:
		_, err := l.queue(c.CmdName(), c.Queue)
		return false, err

	case *vulkan.VkCreateDisplayPlaneSurfaceKHR:
		return w.ValidateCreateDisplayPlaneSurface(ctx, c.CreateInfo), nil
	case *vulkan.VkDestroySurfaceKHR:
		return w.ValidateDestroySurface(ctx, c.Surface), nil
	case *vulkan.VkGetPhysicalDeviceSurfaceSupportKHR:
		return w.ValidateGetPhysicalDeviceSurfaceSupport(ctx, c.QueueFamilyIndex, c.Surface), nil
	case *vulkan.VkGetDisplayPlaneSupportedDisplaysKHR:
		return w.ValidateDisplayPlaneIndex(ctx, c.CmdName(), c.PlaneIndex), nil
	case *vulkan.VkGetDisplayPlaneCapabilitiesKHR:
		return w.ValidateDisplayPlaneIndex(ctx, c.CmdName(), c.PlaneIndex), nil
	case *vulkan.VkCreateSwapchainKHR:
		return w.ValidateCreateSwapchain(ctx, c.CreateInfo), nil
	case *vulkan.VkCreateSharedSwapchainsKHR:
		return w.ValidateCreateSharedSwapchains(ctx, c.CreateInfos), nil
	case *vulkan.VkDestroySwapchainKHR:
		return w.ValidateDestroySwapchain(ctx, c.Swapchain), nil
	case *vulkan.VkGetSwapchainImagesKHR:
		return w.ValidateGetSwapchainImages(ctx, c.Swapchain, c.Count, c.Images != nil), nil
	case *vulkan.VkAcquireNextImageKHR:
		return w.ValidateAcquireNextImage(ctx, c.Swapchain, c.Timeout, c.Semaphore, c.Fence), nil
	case *vulkan.VkAcquireNextImage2KHR:
		return w.ValidateAcquireNextImage2(ctx, c.AcquireInfo), nil
	case *vulkan.VkQueuePresentKHR:
		if _, err := l.queue(c.CmdName(), c.Queue); err != nil {
			return false, err
		}
		return w.ValidateQueuePresent(ctx, c.Queue, c.PresentInfo), nil
	case *vulkan.VkWaitForPresentKHR:
		return w.ValidateWaitForPresent(ctx, c.Swapchain), nil
	case *vulkan.VkAcquireFullScreenExclusiveModeEXT:
		return w.ValidateAcquireFullScreenExclusiveMode(ctx, c.Swapchain), nil
	case *vulkan.VkReleaseFullScreenExclusiveModeEXT:
		return w.ValidateReleaseFullScreenExclusiveMode(ctx, c.Swapchain), nil
	}
	return false, nil
}

// validateRecording runs the checks of a command recorded into cb.
func validateRecording(ctx context.Context, cb *state.CommandBuffer, cmd vulkan.CommandBufferCmd) bool {
	switch c := cmd.(type) {
	case *vulkan.VkCmdBindPipeline:
		return cb.ValidateBindPipeline(ctx, c.PipelineBindPoint, c.Pipeline)

	case *vulkan.VkCmdDraw, *vulkan.VkCmdDrawIndirect:
		return cb.ValidateDraw(ctx, c.CmdName(), false)
	case *vulkan.VkCmdDrawIndexed, *vulkan.VkCmdDrawIndexedIndirect:
		return cb.ValidateDraw(ctx, c.CmdName(), true)
	case *vulkan.VkCmdDispatch, *vulkan.VkCmdDispatchIndirect:
		return cb.ValidateDispatch(ctx, c.CmdName(), vulkan.VkPipelineBindPoint_VK_PIPELINE_BIND_POINT_COMPUTE)
	case *vulkan.VkCmdTraceRaysKHR:
		return cb.ValidateDispatch(ctx, c.CmdName(), vulkan.VkPipelineBindPoint_VK_PIPELINE_BIND_POINT_RAY_TRACING_KHR)

	case *vulkan.VkCmdBeginRenderPass:
		return cb.ValidateBeginRenderPass(ctx, c.RenderPassBegin)
	case *vulkan.VkCmdNextSubpass:
		return cb.ValidateNextSubpass(ctx)
	case *vulkan.VkCmdEndRenderPass:
		return cb.ValidateEndRenderPass(ctx)
	case *vulkan.VkCmdBeginRendering:
		return cb.ValidateBeginRendering(ctx, c.RenderingInfo)
	case *vulkan.VkCmdExecuteCommands:
		return cb.ValidateExecuteCommands(ctx, c.CommandBuffers)

	case *vulkan.VkCmdPipelineBarrier:
		return cb.ValidatePipelineBarrier(ctx, c)
	case *vulkan.VkCmdPipelineBarrier2:
		return cb.ValidatePipelineBarrier2(ctx, c.DependencyInfo)
	case *vulkan.VkCmdWaitEvents:
		return cb.ValidateWaitEvents(ctx, c)

	case *vulkan.VkCmdBeginQuery:
		return cb.ValidateBeginQuery(ctx, c.QueryPool, c.Query)
	case *vulkan.VkCmdEndQuery:
		return cb.ValidateEndQuery(ctx, c.QueryPool, c.Query)
	case *vulkan.VkCmdResetQueryPool:
		return cb.ValidateResetQueryPool(ctx, c.QueryPool, c.FirstQuery, c.QueryCount)
	case *vulkan.VkCmdWriteTimestamp:
		return cb.ValidateWriteTimestamp(ctx, c.QueryPool, c.Query)

	case *vulkan.VkCmdCopyImage:
		return cb.ValidateCopyImage(ctx, c)
	case *vulkan.VkCmdCopyBufferToImage:
		return cb.ValidateCopyBufferToImage(ctx, c)
	case *vulkan.VkCmdCopyImageToBuffer:
		return cb.ValidateCopyImageToBuffer(ctx, c)
	case *vulkan.VkCmdClearColorImage:
		return cb.ValidateClearImage(ctx, c.Image, c.ImageLayout, c.Ranges, false)
	case *vulkan.VkCmdClearDepthStencilImage:
		return cb.ValidateClearImage(ctx, c.Image, c.ImageLayout, c.Ranges, true)
	}
	// Binds, state setters, events and the remaining commands only have the
	// checks every recorded command has.
	return cb.ValidateCmd(ctx, cmd.CmdName())
}
