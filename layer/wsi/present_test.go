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

package wsi_test

import (
	"testing"

	"github.com/google/vkstate/core/assert"
	"github.com/google/vkstate/layer/caps"
	"github.com/google/vkstate/layer/state"
	"github.com/google/vkstate/layer/vulkan"
	"github.com/google/vkstate/layer/wsi"
)

const acquireCount = "VUID-vkAcquireNextImageKHR-swapchain-01802"

func TestAcquireLimit(t *testing.T) {
	// Three images with a surface minimum of two leave two to acquire.
	f := newSwapchainFixture(t, caps.Default())
	assert.For(f.ctx, "first").ThatBoolean(f.acquire(0)).IsTrue()
	assert.For(f.ctx, "second").ThatBoolean(f.acquire(1)).IsTrue()
	assert.For(f.ctx, "acquired").ThatInteger(int(f.sc.Acquired())).Equals(2)
	assert.For(f.ctx, "third").ThatBoolean(f.acquire(2)).IsFalse()
	assert.For(f.ctx, "reported").ThatInteger(f.rep.Count(acquireCount)).Equals(1)

	// A bounded wait may acquire more.
	f.wsi.ValidateAcquireNextImage(f.ctx, swapchainHandle, 1000, vulkan.VK_NULL_HANDLE, vulkan.VK_NULL_HANDLE)
	assert.For(f.ctx, "bounded").ThatInteger(f.rep.Count(acquireCount)).Equals(1)

	f.toPresent(0)
	assert.For(f.ctx, "present").ThatBoolean(f.present(presentOf(0))).IsTrue()
	assert.For(f.ctx, "state").That(f.sc.Images()[0].State).Equals(wsi.ImagePresented)
	assert.For(f.ctx, "after present").ThatInteger(int(f.sc.Acquired())).Equals(2)
	f.toPresent(1)
	f.present(presentOf(1))
	assert.For(f.ctx, "reacquire").ThatBoolean(f.acquire(0)).IsTrue()
}

func TestAcquireBeforeImages(t *testing.T) {
	f := newFixture(t, caps.Default())
	f.sc = f.wsi.CreateSwapchain(f.ctx, createInfo(), swapchainHandle, vulkan.VkResult_VK_SUCCESS)
	f.wsi.ValidateAcquireNextImage(f.ctx, swapchainHandle, vulkan.UINT64_MAX, vulkan.VK_NULL_HANDLE, vulkan.VK_NULL_HANDLE)
	assert.For(f.ctx, "no images").ThatInteger(f.rep.Errors()).Equals(0)
}

func TestAcquireSyncObjects(t *testing.T) {
	f := newSwapchainFixture(t, caps.Default())
	binary := f.dev.CreateSemaphore(f.ctx, semHandle, vulkan.VkSemaphoreCreateInfo{})
	f.dev.CreateSemaphore(f.ctx, semHandle+1, vulkan.VkSemaphoreCreateInfo{
		SemaphoreType: vulkan.VkSemaphoreType_VK_SEMAPHORE_TYPE_TIMELINE,
	})
	fence := f.dev.CreateFence(f.ctx, fenceHandle, vulkan.VkFenceCreateInfo{})

	f.wsi.ValidateAcquireNextImage(f.ctx, swapchainHandle, 0, semHandle+1, vulkan.VK_NULL_HANDLE)
	assert.For(f.ctx, "timeline").ThatInteger(f.rep.Count("VUID-vkAcquireNextImageKHR-semaphore-03265")).Equals(1)

	assert.For(f.ctx, "valid").ThatBoolean(
		f.wsi.ValidateAcquireNextImage(f.ctx, swapchainHandle, 0, semHandle, fenceHandle)).IsFalse()
	f.wsi.AcquireNextImage(f.ctx, swapchainHandle, semHandle, fenceHandle, 0, vulkan.VkResult_VK_SUBOPTIMAL_KHR)
	assert.For(f.ctx, "signaled").ThatBoolean(binary.Signaled()).IsTrue()
	assert.For(f.ctx, "signaler").That(binary.Signaler()).Equals(vulkan.Handle(swapchainHandle))
	assert.For(f.ctx, "fence").That(fence.State()).Equals(state.FenceInflight)

	f.wsi.ValidateAcquireNextImage(f.ctx, swapchainHandle, 0, semHandle, fenceHandle)
	assert.For(f.ctx, "semaphore reuse").ThatInteger(f.rep.Count("VUID-vkAcquireNextImageKHR-semaphore-01286")).Equals(1)
	assert.For(f.ctx, "fence reuse").ThatInteger(f.rep.Count("VUID-vkAcquireNextImageKHR-fence-01287")).Equals(1)

	f.dev.FenceSignaled(f.ctx, fenceHandle)
	f.wsi.ValidateAcquireNextImage(f.ctx, swapchainHandle, 0, vulkan.VK_NULL_HANDLE, fenceHandle)
	assert.For(f.ctx, "signaled fence").ThatInteger(f.rep.Count("VUID-vkAcquireNextImageKHR-fence-01287")).Equals(2)

	// A failed acquire has no effect.
	f.wsi.AcquireNextImage(f.ctx, swapchainHandle, vulkan.VK_NULL_HANDLE, vulkan.VK_NULL_HANDLE, 1, vulkan.VkResult_VK_ERROR_OUT_OF_DATE_KHR)
	assert.For(f.ctx, "failed").ThatInteger(int(f.sc.Acquired())).Equals(1)
}

func TestAcquireNextImage2(t *testing.T) {
	f := newSwapchainFixture(t, caps.Default())
	f.dev.CreateSemaphore(f.ctx, semHandle, vulkan.VkSemaphoreCreateInfo{
		SemaphoreType: vulkan.VkSemaphoreType_VK_SEMAPHORE_TYPE_TIMELINE,
	})
	info := vulkan.VkAcquireNextImageInfoKHR{Swapchain: swapchainHandle, Timeout: vulkan.UINT64_MAX, DeviceMask: 0}
	f.wsi.ValidateAcquireNextImage2(f.ctx, info)
	assert.For(f.ctx, "zero mask").ThatInteger(f.rep.Count("VUID-VkAcquireNextImageInfoKHR-deviceMask-01291")).Equals(1)

	info.DeviceMask = 0x2
	f.wsi.ValidateAcquireNextImage2(f.ctx, info)
	assert.For(f.ctx, "mask").ThatInteger(f.rep.Count("VUID-VkAcquireNextImageInfoKHR-deviceMask-01290")).Equals(1)

	info.DeviceMask, info.Semaphore = 0x1, semHandle
	f.wsi.ValidateAcquireNextImage2(f.ctx, info)
	assert.For(f.ctx, "timeline").ThatInteger(f.rep.Count("VUID-VkAcquireNextImageInfoKHR-semaphore-03266")).Equals(1)

	info.Semaphore = vulkan.VK_NULL_HANDLE
	for i := uint32(0); i < 2; i++ {
		f.wsi.AcquireNextImage2(f.ctx, info, i, vulkan.VkResult_VK_SUCCESS)
	}
	f.wsi.ValidateAcquireNextImage2(f.ctx, info)
	assert.For(f.ctx, "count").ThatInteger(f.rep.Count("VUID-vkAcquireNextImage2KHR-swapchain-01803")).Equals(1)
}

func TestPresentImageChecks(t *testing.T) {
	f := newSwapchainFixture(t, caps.Default())
	const vuid = "VUID-VkPresentInfoKHR-pImageIndices-01296"

	f.present(presentOf(5))
	assert.For(f.ctx, "range").ThatInteger(f.rep.Count(vuid)).Equals(1)
	f.present(presentOf(0))
	assert.For(f.ctx, "not acquired").ThatInteger(f.rep.Count(vuid)).Equals(2)

	f.acquire(0)
	assert.For(f.ctx, "undefined layout").ThatBoolean(f.present(presentOf(0))).IsFalse()
	assert.For(f.ctx, "layout").ThatInteger(f.rep.Count(vuid)).Equals(3)

	// A rejected present still hands the image back.
	f.acquire(0)
	f.toPresent(0)
	assert.For(f.ctx, "valid").ThatBoolean(f.present(presentOf(0))).IsTrue()
}

func TestPresentLayoutFromSubmit(t *testing.T) {
	f := newSwapchainFixture(t, caps.Default())
	pool := f.dev.CreateCommandPool(f.ctx, vulkan.VkCommandPool(20), vulkan.VkCommandPoolCreateInfo{})
	cb := pool.Allocate(f.ctx, vulkan.VkCommandBufferAllocateInfo{
		CommandPool:        20,
		Level:              vulkan.VkCommandBufferLevel_VK_COMMAND_BUFFER_LEVEL_PRIMARY,
		CommandBufferCount: 1,
	}, []vulkan.VkCommandBuffer{1000})[0]
	cb.Begin(f.ctx, vulkan.VkCommandBufferBeginInfo{})
	cb.PipelineBarrier(f.ctx, &vulkan.VkCmdPipelineBarrier{
		CommandBuffer: cb.VkCommandBuffer(),
		ImageMemoryBarriers: []vulkan.VkImageMemoryBarrier{{
			OldLayout:           vulkan.VkImageLayout_VK_IMAGE_LAYOUT_UNDEFINED,
			NewLayout:           presentSrc,
			SrcQueueFamilyIndex: vulkan.VK_QUEUE_FAMILY_IGNORED,
			DstQueueFamilyIndex: vulkan.VK_QUEUE_FAMILY_IGNORED,
			Image:               firstImage + 1,
			SubresourceRange:    colorRange,
		}},
	})
	cb.End(f.ctx, vulkan.VkResult_VK_SUCCESS)

	f.acquire(1)
	submits := []vulkan.VkSubmitInfo{{CommandBuffers: []vulkan.VkCommandBuffer{cb.VkCommandBuffer()}}}
	f.queue.ValidateSubmit(f.ctx, submits, vulkan.VK_NULL_HANDLE)
	f.queue.RecordSubmit(f.ctx, submits, vulkan.VK_NULL_HANDLE, vulkan.VkResult_VK_SUCCESS)
	assert.For(f.ctx, "present").ThatBoolean(f.present(presentOf(1))).IsTrue()
}

func TestPresentWaits(t *testing.T) {
	f := newSwapchainFixture(t, caps.Default())
	sem := f.dev.CreateSemaphore(f.ctx, semHandle, vulkan.VkSemaphoreCreateInfo{})
	f.dev.CreateSemaphore(f.ctx, semHandle+1, vulkan.VkSemaphoreCreateInfo{
		SemaphoreType: vulkan.VkSemaphoreType_VK_SEMAPHORE_TYPE_TIMELINE,
	})

	info := presentOf(0)
	info.WaitSemaphores = []vulkan.VkSemaphore{semHandle + 1, semHandle}
	f.wsi.ValidateAcquireNextImage(f.ctx, swapchainHandle, 0, semHandle, vulkan.VK_NULL_HANDLE)
	f.wsi.AcquireNextImage(f.ctx, swapchainHandle, semHandle, vulkan.VK_NULL_HANDLE, 0, vulkan.VkResult_VK_SUCCESS)
	f.toPresent(0)
	f.present(info)
	assert.For(f.ctx, "timeline").ThatInteger(f.rep.Count("VUID-vkQueuePresentKHR-pWaitSemaphores-03267")).Equals(1)
	assert.For(f.ctx, "progress").ThatInteger(f.rep.Count("UNASSIGNED-CoreValidation-DrawState-QueueForwardProgress")).Equals(0)
	assert.For(f.ctx, "consumed").ThatBoolean(sem.Signaled()).IsFalse()

	f.acquire(1)
	f.toPresent(1)
	info = presentOf(1)
	info.WaitSemaphores = []vulkan.VkSemaphore{semHandle}
	f.present(info)
	assert.For(f.ctx, "unsignaled").ThatInteger(f.rep.Count("UNASSIGNED-CoreValidation-DrawState-QueueForwardProgress")).Equals(1)
}

func TestPresentQueueSupport(t *testing.T) {
	f := newSwapchainFixture(t, caps.Default())
	f.dev.GetDeviceQueue(f.ctx, 1, 0, queueHandle+1)
	f.acquire(0)
	f.toPresent(0)
	f.wsi.ValidateQueuePresent(f.ctx, queueHandle+1, presentOf(0))
	assert.For(f.ctx, "family").ThatInteger(f.rep.Count("VUID-vkQueuePresentKHR-pSwapchains-01292")).Equals(1)
}

func TestPresentRegions(t *testing.T) {
	f := newFixture(t, caps.Default())
	ci := createInfo()
	ci.PreTransform = vulkan.VkSurfaceTransformFlagBitsKHR_VK_SURFACE_TRANSFORM_ROTATE_90_BIT_KHR
	f.sc = f.wsi.CreateSwapchain(f.ctx, ci, swapchainHandle, vulkan.VkResult_VK_SUCCESS)
	f.getImages(swapchainHandle, 3)
	f.acquire(0)
	f.toPresent(0)

	info := presentOf(0)
	info.Regions = []vulkan.VkPresentRegionKHR{{Rectangles: []vulkan.VkRectLayerKHR{
		// Fits the image once offset and extent are swapped.
		{Offset: vulkan.VkOffset2D{X: 600, Y: 0}, Extent: vulkan.VkExtent2D{Width: 100, Height: 1280}},
		// 600 + 200 overflows the height of 720 after the swap.
		{Offset: vulkan.VkOffset2D{X: 600, Y: 0}, Extent: vulkan.VkExtent2D{Width: 200, Height: 100}},
		{Extent: vulkan.VkExtent2D{Width: 1, Height: 1}, Layer: 1},
	}}}
	f.wsi.ValidateQueuePresent(f.ctx, queueHandle, info)
	assert.For(f.ctx, "offset").ThatInteger(f.rep.Count("VUID-VkRectLayerKHR-offset-04864")).Equals(1)
	assert.For(f.ctx, "layer").ThatInteger(f.rep.Count("VUID-VkRectLayerKHR-layer-01262")).Equals(1)
}

func TestPresentTimesAndDisplay(t *testing.T) {
	f := newSwapchainFixture(t, caps.Default())
	f.acquire(0)
	f.toPresent(0)
	info := presentOf(0)
	info.Times = []vulkan.VkPresentTimeGOOGLE{{PresentID: 1}, {PresentID: 2}}
	info.DisplayPresent = &vulkan.VkDisplayPresentInfoKHR{
		SrcRect: vulkan.VkRect2D{Offset: vulkan.VkOffset2D{X: 100}, Extent: vulkan.VkExtent2D{Width: 1280, Height: 720}},
	}
	f.wsi.ValidateQueuePresent(f.ctx, queueHandle, info)
	assert.For(f.ctx, "times").ThatInteger(f.rep.Count("VUID-VkPresentTimesInfoGOOGLE-swapchainCount-01247")).Equals(1)
	assert.For(f.ctx, "src rect").ThatInteger(f.rep.Count("VUID-VkDisplayPresentInfoKHR-srcRect-01257")).Equals(1)
}

func TestPresentIDs(t *testing.T) {
	p := caps.Default()
	p.Extensions = append(p.Extensions, vulkan.VK_KHR_present_id)
	p.Features.PresentID = true
	f := newSwapchainFixture(t, p)

	info := presentOf(0)
	info.PresentIds = []uint64{5}
	f.acquire(0)
	f.toPresent(0)
	assert.For(f.ctx, "first id").ThatBoolean(f.present(info)).IsTrue()
	assert.For(f.ctx, "max").That(f.sc.MaxPresentID()).Equals(uint64(5))

	f.acquire(0)
	assert.For(f.ctx, "repeated id").ThatBoolean(f.present(info)).IsFalse()
	assert.For(f.ctx, "reported").ThatInteger(f.rep.Count("VUID-VkPresentIdKHR-presentIds-04999")).Equals(1)

	// Zero never identifies a present.
	f.acquire(0)
	info.PresentIds = []uint64{0}
	assert.For(f.ctx, "zero").ThatBoolean(f.present(info)).IsTrue()

	f.acquire(0)
	info.PresentIds = []uint64{6, 7}
	f.present(info)
	assert.For(f.ctx, "count").ThatInteger(f.rep.Count("VUID-VkPresentIdKHR-swapchainCount-04998")).Equals(1)
}

func TestPresentIDWithoutFeature(t *testing.T) {
	f := newSwapchainFixture(t, caps.Default())
	f.acquire(0)
	f.toPresent(0)
	info := presentOf(0)
	info.PresentIds = []uint64{1}
	f.wsi.ValidateQueuePresent(f.ctx, queueHandle, info)
	assert.For(f.ctx, "feature").ThatInteger(f.rep.Count("VUID-VkPresentInfoKHR-pNext-06235")).Equals(1)
}

func TestWaitForPresent(t *testing.T) {
	p := caps.Default()
	p.Features.PresentWait = true
	f := newSwapchainFixture(t, p)
	assert.For(f.ctx, "valid").ThatBoolean(f.wsi.ValidateWaitForPresent(f.ctx, swapchainHandle)).IsFalse()
	assert.For(f.ctx, "issues").ThatInteger(len(f.rep.Issues())).Equals(0)
}
