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

package wsi

import (
	"context"
	"math/bits"

	"github.com/google/vkstate/core/log"
	"github.com/google/vkstate/layer/report"
	"github.com/google/vkstate/layer/state"
	"github.com/google/vkstate/layer/vulkan"
)

type acquireVUIDs struct {
	call, semaphoreType, semaphoreSignaled, retired, count string
}

var (
	acquire1 = acquireVUIDs{
		call:              "vkAcquireNextImageKHR",
		semaphoreType:     "VUID-vkAcquireNextImageKHR-semaphore-03265",
		semaphoreSignaled: "VUID-vkAcquireNextImageKHR-semaphore-01286",
		retired:           "VUID-vkAcquireNextImageKHR-swapchain-01285",
		count:             "VUID-vkAcquireNextImageKHR-swapchain-01802",
	}
	acquire2 = acquireVUIDs{
		call:              "vkAcquireNextImage2KHR",
		semaphoreType:     "VUID-VkAcquireNextImageInfoKHR-semaphore-03266",
		semaphoreSignaled: "VUID-VkAcquireNextImageInfoKHR-semaphore-01288",
		retired:           "VUID-VkAcquireNextImageInfoKHR-swapchain-01675",
		count:             "VUID-vkAcquireNextImage2KHR-swapchain-01803",
	}
)

// ValidateAcquireNextImage checks a vkAcquireNextImageKHR call.
func (t *Tracker) ValidateAcquireNextImage(ctx context.Context, sc vulkan.VkSwapchainKHR, timeout uint64,
	sem vulkan.VkSemaphore, fence vulkan.VkFence) bool {
	return t.validateAcquire(ctx, acquire1, sc, timeout, sem, fence)
}

// ValidateAcquireNextImage2 checks a vkAcquireNextImage2KHR call.
func (t *Tracker) ValidateAcquireNextImage2(ctx context.Context, info vulkan.VkAcquireNextImageInfoKHR) bool {
	skip := false
	objs := report.Objs(info.Swapchain)
	if n := t.caps().PhysicalDeviceCount(); n < 32 && info.DeviceMask>>n != 0 {
		skip = t.rep().LogError(ctx, objs, "VUID-VkAcquireNextImageInfoKHR-deviceMask-01290",
			"vkAcquireNextImage2KHR(): deviceMask 0x%x has bit %d set, but the device group has %d physical devices.",
			info.DeviceMask, 31-bits.LeadingZeros32(info.DeviceMask), n) || skip
	}
	if info.DeviceMask == 0 {
		skip = t.rep().LogError(ctx, objs, "VUID-VkAcquireNextImageInfoKHR-deviceMask-01291",
			"vkAcquireNextImage2KHR(): deviceMask is zero.") || skip
	}
	return t.validateAcquire(ctx, acquire2, info.Swapchain, info.Timeout, info.Semaphore, info.Fence) || skip
}

func (t *Tracker) validateAcquire(ctx context.Context, v acquireVUIDs, h vulkan.VkSwapchainKHR, timeout uint64,
	semH vulkan.VkSemaphore, fenceH vulkan.VkFence) bool {
	rep := t.rep()
	skip := false

	if sem := t.semaphore(semH); sem != nil {
		if sem.Type != vulkan.VkSemaphoreType_VK_SEMAPHORE_TYPE_BINARY {
			skip = rep.LogError(ctx, report.Objs(semH), v.semaphoreType,
				"%s(): %v is not a VK_SEMAPHORE_TYPE_BINARY semaphore.", v.call, vulkan.HandleString(semH)) || skip
		} else if sem.Signaled() {
			skip = rep.LogError(ctx, report.Objs(semH), v.semaphoreSignaled,
				"%s(): %v must not be currently signaled.", v.call, vulkan.HandleString(semH)) || skip
		}
	}

	if f := t.fence(fenceH); f != nil {
		switch f.State() {
		case state.FenceInflight:
			skip = rep.LogError(ctx, report.Objs(fenceH), "VUID-vkAcquireNextImageKHR-fence-01287",
				"%s(): %v is already in use by another submission.", v.call, vulkan.HandleString(fenceH)) || skip
		case state.FenceSignaled:
			skip = rep.LogError(ctx, report.Objs(fenceH), "VUID-vkAcquireNextImageKHR-fence-01287",
				"%s(): %v is signaled and must be reset before being passed to a queue.",
				v.call, vulkan.HandleString(fenceH)) || skip
		}
	}

	sc := t.Swapchain(h)
	if sc == nil {
		return skip
	}
	if sc.Retired() {
		skip = rep.LogError(ctx, report.Objs(h), v.retired,
			"%s(): %v has been retired. The application can still present any images it has acquired, "+
				"but cannot acquire any more.", v.call, vulkan.HandleString(h)) || skip
	}

	if timeout != vulkan.UINT64_MAX {
		return skip
	}
	count := len(sc.Images())
	if count == 0 {
		return skip
	}
	minCount := int(t.caps().SurfaceCapabilities(sc.CreateInfo.Surface).MinImageCount)
	acquired := int(sc.Acquired())
	if acquired > count-minCount {
		acquirable := count - minCount + 1
		skip = rep.LogError(ctx, report.Objs(h), v.count,
			"%s(): the application has already acquired %d images from the swapchain. Only %d can be acquired "+
				"with a timeout of UINT64_MAX, given the swapchain has %d and minImageCount is %d.",
			v.call, acquired, acquirable, count, minCount) || skip
	}
	return skip
}

// AcquireNextImage records a successful acquire of the image index from the
// swapchain h, signaling sem and fence.
func (t *Tracker) AcquireNextImage(ctx context.Context, h vulkan.VkSwapchainKHR, sem vulkan.VkSemaphore,
	fence vulkan.VkFence, index uint32, result vulkan.VkResult) {
	if result != vulkan.VkResult_VK_SUCCESS && result != vulkan.VkResult_VK_SUBOPTIMAL_KHR {
		return
	}
	if f := t.fence(fence); f != nil {
		// The presentation engine signals the fence, not a queue.
		f.Enqueue(nil, 0)
	}
	if s := t.semaphore(sem); s != nil {
		s.Signal(h)
	}
	sc := t.Swapchain(h)
	if sc == nil {
		return
	}
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if int(index) >= len(sc.images) {
		log.W(ctx, "Acquired image %d of %v, which only has %d images", index, vulkan.HandleString(h), len(sc.images))
		return
	}
	if sc.images[index].State != ImageAcquired {
		sc.acquired++
	}
	sc.images[index].State = ImageAcquired
}

// AcquireNextImage2 records a vkAcquireNextImage2KHR call.
func (t *Tracker) AcquireNextImage2(ctx context.Context, info vulkan.VkAcquireNextImageInfoKHR, index uint32, result vulkan.VkResult) {
	t.AcquireNextImage(ctx, info.Swapchain, info.Semaphore, info.Fence, index, result)
}

// ValidateAcquireFullScreenExclusiveMode checks a
// vkAcquireFullScreenExclusiveModeEXT call.
func (t *Tracker) ValidateAcquireFullScreenExclusiveMode(ctx context.Context, h vulkan.VkSwapchainKHR) bool {
	sc := t.Swapchain(h)
	if sc == nil {
		return false
	}
	rep, objs := t.rep(), report.Objs(h)
	skip := false
	if sc.Retired() {
		skip = rep.LogError(ctx, objs, "VUID-vkAcquireFullScreenExclusiveModeEXT-swapchain-02674",
			"vkAcquireFullScreenExclusiveModeEXT(): %v is retired.", vulkan.HandleString(h)) || skip
	}
	if sc.CreateInfo.FullScreenExclusive != vulkan.VkFullScreenExclusiveEXT_VK_FULL_SCREEN_EXCLUSIVE_APPLICATION_CONTROLLED_EXT {
		skip = rep.LogError(ctx, objs, "VUID-vkAcquireFullScreenExclusiveModeEXT-swapchain-02675",
			"vkAcquireFullScreenExclusiveModeEXT(): %v was not created with "+
				"VK_FULL_SCREEN_EXCLUSIVE_APPLICATION_CONTROLLED_EXT.", vulkan.HandleString(h)) || skip
	}
	if sc.FullScreenExclusive() {
		skip = rep.LogError(ctx, objs, "VUID-vkAcquireFullScreenExclusiveModeEXT-swapchain-02676",
			"vkAcquireFullScreenExclusiveModeEXT(): %v already has exclusive full-screen access.", vulkan.HandleString(h)) || skip
	}
	return skip
}

// AcquireFullScreenExclusiveMode records a successful exclusive mode acquire.
func (t *Tracker) AcquireFullScreenExclusiveMode(ctx context.Context, h vulkan.VkSwapchainKHR, result vulkan.VkResult) {
	t.setExclusive(h, true, result)
}

// ValidateReleaseFullScreenExclusiveMode checks a
// vkReleaseFullScreenExclusiveModeEXT call.
func (t *Tracker) ValidateReleaseFullScreenExclusiveMode(ctx context.Context, h vulkan.VkSwapchainKHR) bool {
	sc := t.Swapchain(h)
	if sc == nil {
		return false
	}
	rep, objs := t.rep(), report.Objs(h)
	skip := false
	if sc.Retired() {
		skip = rep.LogError(ctx, objs, "VUID-vkReleaseFullScreenExclusiveModeEXT-swapchain-02677",
			"vkReleaseFullScreenExclusiveModeEXT(): %v is retired.", vulkan.HandleString(h)) || skip
	}
	if sc.CreateInfo.FullScreenExclusive != vulkan.VkFullScreenExclusiveEXT_VK_FULL_SCREEN_EXCLUSIVE_APPLICATION_CONTROLLED_EXT {
		skip = rep.LogError(ctx, objs, "VUID-vkReleaseFullScreenExclusiveModeEXT-swapchain-02678",
			"vkReleaseFullScreenExclusiveModeEXT(): %v was not created with "+
				"VK_FULL_SCREEN_EXCLUSIVE_APPLICATION_CONTROLLED_EXT.", vulkan.HandleString(h)) || skip
	}
	return skip
}

// ReleaseFullScreenExclusiveMode records a successful exclusive mode release.
func (t *Tracker) ReleaseFullScreenExclusiveMode(ctx context.Context, h vulkan.VkSwapchainKHR, result vulkan.VkResult) {
	t.setExclusive(h, false, result)
}

func (t *Tracker) setExclusive(h vulkan.VkSwapchainKHR, exclusive bool, result vulkan.VkResult) {
	sc := t.Swapchain(h)
	if sc == nil || result != vulkan.VkResult_VK_SUCCESS {
		return
	}
	sc.mu.Lock()
	sc.exclusive = exclusive
	sc.mu.Unlock()
}
