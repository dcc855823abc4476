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

	"github.com/google/vkstate/core/log"
	"github.com/google/vkstate/layer/registry"
	"github.com/google/vkstate/layer/state"
	"github.com/google/vkstate/layer/vulkan"
)

const (
	bindGraphics   = vulkan.VkPipelineBindPoint_VK_PIPELINE_BIND_POINT_GRAPHICS
	bindCompute    = vulkan.VkPipelineBindPoint_VK_PIPELINE_BIND_POINT_COMPUTE
	bindRayTracing = vulkan.VkPipelineBindPoint_VK_PIPELINE_BIND_POINT_RAY_TRACING_KHR
)

// record updates the tracked state with the effects of cmd, which the driver
// executed with the given result.
func (l *Layer) record(ctx context.Context, cmd vulkan.Cmd, result vulkan.VkResult) {
	if c, ok := cmd.(vulkan.CommandBufferCmd); ok {
		if cb := registry.Get[*state.CommandBuffer](l.dev.Registry(), c.Target()); cb != nil {
			recordRecording(ctx, cb, c)
		}
		return
	}
	if l.recordWSI(ctx, cmd, result) {
		return
	}

	dev, reg := l.dev, l.dev.Registry()
	ok := result.Succeeded()
	switch c := cmd.(type) {
	case *vulkan.VkGetDeviceQueue:
		dev.GetDeviceQueue(ctx, c.QueueFamilyIndex, c.QueueIndex, c.Queue)

	case *vulkan.VkCreateCommandPool:
		if ok {
			dev.CreateCommandPool(ctx, c.CommandPool, c.CreateInfo)
		}
	case *vulkan.VkDestroyCommandPool:
		dev.DestroyCommandPool(ctx, c.CommandPool)
	case *vulkan.VkResetCommandPool:
		if p := registry.Get[*state.CommandPool](reg, c.CommandPool); p != nil && ok {
			p.Reset(ctx)
		}
	case *vulkan.VkAllocateCommandBuffers:
		if p := registry.Get[*state.CommandPool](reg, c.AllocateInfo.CommandPool); p != nil && ok {
			p.Allocate(ctx, c.AllocateInfo, c.CommandBuffers)
		}
	case *vulkan.VkFreeCommandBuffers:
		if p := registry.Get[*state.CommandPool](reg, c.CommandPool); p != nil {
			p.Free(ctx, c.CommandBuffers)
		}

	case *vulkan.VkBeginCommandBuffer:
		if cb := registry.Get[*state.CommandBuffer](reg, c.CommandBuffer); cb != nil && ok {
			cb.Begin(ctx, c.BeginInfo)
		}
	case *vulkan.VkEndCommandBuffer:
		if cb := registry.Get[*state.CommandBuffer](reg, c.CommandBuffer); cb != nil {
			cb.End(ctx, result)
		}
	case *vulkan.VkResetCommandBuffer:
		if cb := registry.Get[*state.CommandBuffer](reg, c.CommandBuffer); cb != nil && ok {
			cb.Reset(ctx)
		}

	case *vulkan.VkCreateImage:
		if ok {
			dev.CreateImage(ctx, c.Image, c.CreateInfo)
		}
	case *vulkan.VkDestroyImage:
		dev.DestroyImage(ctx, c.Image)
	case *vulkan.VkCreateImageView:
		if ok {
			dev.CreateImageView(ctx, c.View, c.CreateInfo)
		}
	case *vulkan.VkDestroyImageView:
		dev.DestroyImageView(ctx, c.ImageView)
	case *vulkan.VkCreateBuffer:
		if ok {
			dev.CreateBuffer(ctx, c.Buffer, c.CreateInfo)
		}
	case *vulkan.VkDestroyBuffer:
		dev.DestroyBuffer(ctx, c.Buffer)
	case *vulkan.VkCreateGraphicsPipelines:
		if ok {
			dev.CreateGraphicsPipelines(ctx, c.CreateInfos, c.Pipelines)
		}
	case *vulkan.VkCreateComputePipelines:
		if ok {
			dev.CreateComputePipelines(ctx, c.Pipelines)
		}
	case *vulkan.VkDestroyPipeline:
		dev.DestroyPipeline(ctx, c.Pipeline)
	case *vulkan.VkAllocateDescriptorSets:
		if ok {
			dev.AllocateDescriptorSets(ctx, c.AllocateInfo, c.DescriptorSets)
		}
	case *vulkan.VkFreeDescriptorSets:
		dev.FreeDescriptorSets(ctx, c.DescriptorSets)
	case *vulkan.VkUpdateDescriptorSets:
		dev.UpdateDescriptorSets(ctx, c.DescriptorWrites)
	case *vulkan.VkCreateRenderPass:
		if ok {
			dev.CreateRenderPass(ctx, c.RenderPass, c.CreateInfo)
		}
	case *vulkan.VkDestroyRenderPass:
		dev.DestroyRenderPass(ctx, c.RenderPass)
	case *vulkan.VkCreateFramebuffer:
		if ok {
			dev.CreateFramebuffer(ctx, c.Framebuffer, c.CreateInfo)
		}
	case *vulkan.VkDestroyFramebuffer:
		dev.DestroyFramebuffer(ctx, c.Framebuffer)

	case *vulkan.VkCreateEvent:
		if ok {
			dev.CreateEvent(ctx, c.Event)
		}
	case *vulkan.VkDestroyEvent:
		dev.DestroyEvent(ctx, c.Event)
	case *vulkan.VkSetEvent:
		if ok {
			dev.SetEvent(ctx, c.Event)
		}
	case *vulkan.VkResetEvent:
		if ok {
			dev.ResetEvent(ctx, c.Event)
		}
	case *vulkan.VkCreateQueryPool:
		if ok {
			dev.CreateQueryPool(ctx, c.QueryPool, c.CreateInfo)
		}
	case *vulkan.VkDestroyQueryPool:
		dev.DestroyQueryPool(ctx, c.QueryPool)
	case *vulkan.VkResetQueryPool:
		dev.ResetQueryPool(ctx, c.QueryPool, c.FirstQuery, c.QueryCount)

	case *vulkan.VkCreateSemaphore:
		if ok {
			dev.CreateSemaphore(ctx, c.Semaphore, c.CreateInfo)
		}
	case *vulkan.VkDestroySemaphore:
		dev.DestroySemaphore(ctx, c.Semaphore)
	case *vulkan.VkCreateFence:
		if ok {
			dev.CreateFence(ctx, c.Fence, c.CreateInfo)
		}
	case *vulkan.VkDestroyFence:
		dev.DestroyFence(ctx, c.Fence)
	case *vulkan.VkResetFences:
		if ok {
			dev.ResetFences(ctx, c.Fences)
		}
	case *vulkan.VkWaitForFences:
		dev.WaitForFences(ctx, c.Fences, c.WaitAll, result)
	case *vulkan.VkGetFenceStatus:
		if result == vulkan.VkResult_VK_SUCCESS {
			dev.FenceSignaled(ctx, c.Fence)
		}

	case *vulkan.VkQueueSubmit:
		if q := registry.Get[*state.Queue](reg, c.Queue); q != nil {
			q.RecordSubmit(ctx, c.Submits, c.Fence, result)
		}
	case *vulkan.VkQueueWaitIdle:
		if q := registry.Get[*state.Queue](reg, c.Queue); q != nil && result == vulkan.VkResult_VK_SUCCESS {
			q.WaitIdle(ctx)
		}
	case *vulkan.VkDeviceWaitIdle:
		if result == vulkan.VkResult_VK_SUCCESS {
			dev.DeviceWaitIdle(ctx)
		}

	default:
		log.D(ctx, "Nothing to record")
	}
}

// recordWSI records the surface and swapchain calls. It returns false if cmd
// is not one of them.
func (l *Layer) recordWSI(ctx context.Context, cmd vulkan.Cmd, result vulkan.VkResult) bool {
	w, ok := l.wsi, result.Succeeded()
	switch c := cmd.(type) {
	case *vulkan.VkCreateHeadlessSurfaceEXT:
		if ok {
			w.CreateSurface(ctx, c.Surface)
		}
	case *vulkan.VkCreateAndroidSurfaceKHR:
		if ok {
			w.CreateSurface(ctx, c.Surface)
		}
	case *vulkan.VkCreateDisplayPlaneSurfaceKHR:
		if ok {
			w.CreateDisplayPlaneSurface(ctx, c.CreateInfo, c.Surface)
		}
	case *vulkan.VkDestroySurfaceKHR:
		w.DestroySurface(ctx, c.Surface)
	case *vulkan.VkGetPhysicalDeviceDisplayPlanePropertiesKHR:
		if ok {
			w.GetPhysicalDeviceDisplayPlaneProperties(ctx, c.Properties)
		}
	case *vulkan.VkCreateSwapchainKHR:
		w.CreateSwapchain(ctx, c.CreateInfo, c.Swapchain, result)
	case *vulkan.VkCreateSharedSwapchainsKHR:
		w.CreateSharedSwapchains(ctx, c.CreateInfos, c.Swapchains, result)
	case *vulkan.VkDestroySwapchainKHR:
		w.DestroySwapchain(ctx, c.Swapchain)
	case *vulkan.VkGetSwapchainImagesKHR:
		w.GetSwapchainImages(ctx, c.Swapchain, c.Count, c.Images, result)
	case *vulkan.VkAcquireNextImageKHR:
		w.AcquireNextImage(ctx, c.Swapchain, c.Semaphore, c.Fence, c.ImageIndex, result)
	case *vulkan.VkAcquireNextImage2KHR:
		w.AcquireNextImage2(ctx, c.AcquireInfo, c.ImageIndex, result)
	case *vulkan.VkQueuePresentKHR:
		w.QueuePresent(ctx, c.Queue, c.PresentInfo, result)
	case *vulkan.VkAcquireFullScreenExclusiveModeEXT:
		w.AcquireFullScreenExclusiveMode(ctx, c.Swapchain, result)
	case *vulkan.VkReleaseFullScreenExclusiveModeEXT:
		w.ReleaseFullScreenExclusiveMode(ctx, c.Swapchain, result)
	case *vulkan.VkGetPhysicalDeviceSurfaceSupportKHR,
		*vulkan.VkGetDisplayPlaneSupportedDisplaysKHR,
		*vulkan.VkGetDisplayPlaneCapabilitiesKHR,
		*vulkan.VkWaitForPresentKHR:
	default:
		return false
	}
	return true
}

// recordRecording records a command into cb.
func recordRecording(ctx context.Context, cb *state.CommandBuffer, cmd vulkan.CommandBufferCmd) {
	switch c := cmd.(type) {
	case *vulkan.VkCmdBindPipeline:
		cb.BindPipeline(ctx, c.PipelineBindPoint, c.Pipeline)
	case *vulkan.VkCmdBindDescriptorSets:
		cb.UpdateLastBoundDescriptorSets(ctx, c.PipelineBindPoint, c.FirstSet, c.DescriptorSets, c.DynamicOffsets)
	case *vulkan.VkCmdPushDescriptorSetKHR:
		cb.PushDescriptorSetState(ctx, c.PipelineBindPoint, c.Set, c.DescriptorWrites)
	case *vulkan.VkCmdBindVertexBuffers:
		cb.BindVertexBuffers(ctx, c.FirstBinding, c.Buffers)
	case *vulkan.VkCmdBindIndexBuffer:
		cb.BindIndexBuffer(ctx, c.Buffer)

	case *vulkan.VkCmdDraw, *vulkan.VkCmdDrawIndexed, *vulkan.VkCmdDrawIndirect, *vulkan.VkCmdDrawIndexedIndirect:
		cb.RecordWork(ctx, state.WorkDraw, bindGraphics, c.CmdName())
	case *vulkan.VkCmdDispatch, *vulkan.VkCmdDispatchIndirect:
		cb.RecordWork(ctx, state.WorkDispatch, bindCompute, c.CmdName())
	case *vulkan.VkCmdTraceRaysKHR:
		cb.RecordWork(ctx, state.WorkTraceRays, bindRayTracing, c.CmdName())
	case *vulkan.VkCmdBuildAccelerationStructuresKHR:
		cb.RecordWork(ctx, state.WorkBuildAccelerationStructure, bindCompute, c.CmdName())

	case *vulkan.VkCmdBeginRenderPass:
		cb.BeginRenderPass(ctx, c.RenderPassBegin, c.Contents)
	case *vulkan.VkCmdNextSubpass:
		cb.NextSubpass(ctx, c.Contents)
	case *vulkan.VkCmdEndRenderPass:
		cb.EndRenderPass(ctx)
	case *vulkan.VkCmdBeginRendering:
		cb.BeginRendering(ctx, c.RenderingInfo)
	case *vulkan.VkCmdEndRendering:
		cb.EndRendering(ctx)
	case *vulkan.VkCmdExecuteCommands:
		cb.ExecuteCommands(ctx, c.CommandBuffers)

	case *vulkan.VkCmdPipelineBarrier:
		cb.PipelineBarrier(ctx, c)
	case *vulkan.VkCmdPipelineBarrier2:
		cb.PipelineBarrier2(ctx, c.DependencyInfo)
	case *vulkan.VkCmdSetEvent:
		cb.SetEvent(ctx, c.Event, c.StageMask)
	case *vulkan.VkCmdResetEvent:
		cb.ResetEvent(ctx, c.Event)
	case *vulkan.VkCmdWaitEvents:
		cb.WaitEvents(ctx, c)

	case *vulkan.VkCmdBeginQuery:
		cb.BeginQuery(ctx, c.QueryPool, c.Query)
	case *vulkan.VkCmdEndQuery:
		cb.EndQuery(ctx, c.QueryPool, c.Query)
	case *vulkan.VkCmdResetQueryPool:
		cb.ResetQueryPool(ctx, c.QueryPool, c.FirstQuery, c.QueryCount)
	case *vulkan.VkCmdWriteTimestamp:
		cb.WriteTimestamp(ctx, c.QueryPool, c.Query)

	case *vulkan.VkCmdCopyImage:
		cb.CopyImage(ctx, c)
	case *vulkan.VkCmdCopyBufferToImage:
		cb.CopyBufferToImage(ctx, c)
	case *vulkan.VkCmdCopyImageToBuffer:
		cb.CopyImageToBuffer(ctx, c)
	case *vulkan.VkCmdClearColorImage:
		cb.ClearImage(ctx, c.Image, c.ImageLayout, c.Ranges)
	case *vulkan.VkCmdClearDepthStencilImage:
		cb.ClearImage(ctx, c.Image, c.ImageLayout, c.Ranges)

	default:
		if bits, ok := state.StateCmds[cmd.CmdName()]; ok {
			cb.RecordStateCmd(ctx, bits)
			return
		}
		cb.RecordCmd(ctx)
	}
}
