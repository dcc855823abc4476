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

	"github.com/google/vkstate/layer/layout"
	"github.com/google/vkstate/layer/report"
	"github.com/google/vkstate/layer/state"
	"github.com/google/vkstate/layer/vulkan"
)

// ValidateQueuePresent checks a vkQueuePresentKHR call on the queue q.
func (t *Tracker) ValidateQueuePresent(ctx context.Context, q vulkan.VkQueue, info vulkan.VkPresentInfoKHR) bool {
	queue := t.queue(ctx, q)
	skip := t.validatePresentWaits(ctx, q, info.WaitSemaphores)
	for i, h := range info.Swapchains {
		sc := t.Swapchain(h)
		if sc == nil {
			continue
		}
		var index uint32
		if i < len(info.ImageIndices) {
			index = info.ImageIndices[i]
		}
		skip = t.validatePresentImage(ctx, q, i, sc, index, info.DisplayPresent) || skip
		if queue != nil && !t.anySurface() && !t.caps().SurfaceSupport(queue.Family, sc.CreateInfo.Surface) {
			skip = t.rep().LogError(ctx, report.Objs(h, q), "VUID-vkQueuePresentKHR-pSwapchains-01292",
				"vkQueuePresentKHR(): presenting pSwapchains[%d] on %v, whose family %d cannot present to %v.",
				i, vulkan.HandleString(q), queue.Family, vulkan.HandleString(sc.CreateInfo.Surface)) || skip
		}
	}
	skip = t.validatePresentRegions(ctx, info) || skip
	if info.Times != nil && len(info.Times) != len(info.Swapchains) {
		skip = t.rep().LogError(ctx, report.Objs(q), "VUID-VkPresentTimesInfoGOOGLE-swapchainCount-01247",
			"vkQueuePresentKHR(): VkPresentTimesInfoGOOGLE has %d entries, but %d swapchains are presented.",
			len(info.Times), len(info.Swapchains)) || skip
	}
	return t.validatePresentIDs(ctx, q, info) || skip
}

func (t *Tracker) validatePresentWaits(ctx context.Context, q vulkan.VkQueue, hs []vulkan.VkSemaphore) bool {
	skip := false
	waited := map[*state.Semaphore]bool{}
	for i, h := range hs {
		sem := t.semaphore(h)
		if sem == nil {
			continue
		}
		if sem.Type != vulkan.VkSemaphoreType_VK_SEMAPHORE_TYPE_BINARY {
			skip = t.rep().LogError(ctx, report.Objs(h), "VUID-vkQueuePresentKHR-pWaitSemaphores-03267",
				"vkQueuePresentKHR(): pWaitSemaphores[%d] (%v) is not a VK_SEMAPHORE_TYPE_BINARY semaphore.",
				i, vulkan.HandleString(h)) || skip
			continue
		}
		if waited[sem] || !sem.Signaled() {
			skip = t.rep().LogError(ctx, report.Objs(q, h), vuidForwardProgress,
				"vkQueuePresentKHR(): %v waits on %v, which has no way to be signaled.",
				vulkan.HandleString(q), vulkan.HandleString(h)) || skip
		}
		waited[sem] = true
	}
	return skip
}

func (t *Tracker) presentLayoutOK(l vulkan.VkImageLayout) bool {
	switch l {
	case layout.None, vulkan.VkImageLayout_VK_IMAGE_LAYOUT_PRESENT_SRC_KHR:
		return true
	case vulkan.VkImageLayout_VK_IMAGE_LAYOUT_SHARED_PRESENT_KHR:
		return t.caps().HasExtension(vulkan.VK_KHR_shared_presentable_image)
	}
	return false
}

func (t *Tracker) validatePresentImage(ctx context.Context, q vulkan.VkQueue, i int, sc *Swapchain, index uint32,
	display *vulkan.VkDisplayPresentInfoKHR) bool {
	vuid := "VUID-VkPresentInfoKHR-pImageIndices-01296"
	if t.caps().HasExtension(vulkan.VK_KHR_shared_presentable_image) {
		vuid = "VUID-VkPresentInfoKHR-pImageIndices-01430"
	}
	h := sc.VkSwapchain()
	images := sc.Images()
	switch {
	case int(index) >= len(images):
		return t.rep().LogError(ctx, report.Objs(h), vuid,
			"vkQueuePresentKHR(): pSwapchains[%d] image index %d is too large, the swapchain has %d images.",
			i, index, len(images))
	case images[index].Image == nil || images[index].State != ImageAcquired:
		return t.rep().LogError(ctx, report.Objs(h), vuid,
			"vkQueuePresentKHR(): pSwapchains[%d] image at index %d was not acquired from the swapchain.", i, index)
	}

	skip := false
	img := images[index].Image
	if m := t.dev.Layouts().Snapshot(img.VkImage()); m != nil {
		m.ForAll(func(e layout.Entry) bool {
			if !t.presentLayoutOK(e.Current) {
				skip = t.rep().LogError(ctx, report.Objs(q, img.VkImage()), vuid,
					"vkQueuePresentKHR(): pSwapchains[%d] images passed to present must be in layout "+
						"VK_IMAGE_LAYOUT_PRESENT_SRC_KHR or VK_IMAGE_LAYOUT_SHARED_PRESENT_KHR but %v is in %v.",
					i, e.First, e.Current) || skip
			}
			return true
		})
	}

	if display != nil {
		r, ext := display.SrcRect, img.CreateInfo.Extent
		if r.Offset.X < 0 || r.Offset.Y < 0 ||
			uint64(r.Offset.X)+uint64(r.Extent.Width) > uint64(ext.Width) ||
			uint64(r.Offset.Y)+uint64(r.Extent.Height) > uint64(ext.Height) {
			skip = t.rep().LogError(ctx, report.Objs(q), "VUID-VkDisplayPresentInfoKHR-srcRect-01257",
				"vkQueuePresentKHR(): VkDisplayPresentInfoKHR::srcRect (offset (%d, %d), extent (%d, %d)) is not a "+
					"subset of the image being presented (extent (%d, %d)).",
				r.Offset.X, r.Offset.Y, r.Extent.Width, r.Extent.Height, ext.Width, ext.Height) || skip
		}
	}
	return skip
}

func (t *Tracker) validatePresentRegions(ctx context.Context, info vulkan.VkPresentInfoKHR) bool {
	skip := false
	for i, region := range info.Regions {
		if i >= len(info.Swapchains) {
			break
		}
		sc := t.Swapchain(info.Swapchains[i])
		if sc == nil {
			continue
		}
		h, ci := sc.VkSwapchain(), sc.CreateInfo
		for j, rect := range region.Rectangles {
			x, y := int64(rect.Offset.X), int64(rect.Offset.Y)
			w, ht := int64(rect.Extent.Width), int64(rect.Extent.Height)
			if ci.PreTransform.SwapsExtent() {
				x, y = y, x
				w, ht = ht, w
			}
			if x+w > int64(ci.ImageExtent.Width) {
				skip = t.rep().LogError(ctx, report.Objs(h), "VUID-VkRectLayerKHR-offset-04864",
					"vkQueuePresentKHR(): pRegions[%d].pRectangles[%d] offset.x (%d) plus extent.width (%d) after "+
						"applying preTransform 0x%x is greater than the imageExtent.width (%d) of the swapchain.",
					i, j, x, w, ci.PreTransform, ci.ImageExtent.Width) || skip
			}
			if y+ht > int64(ci.ImageExtent.Height) {
				skip = t.rep().LogError(ctx, report.Objs(h), "VUID-VkRectLayerKHR-offset-04864",
					"vkQueuePresentKHR(): pRegions[%d].pRectangles[%d] offset.y (%d) plus extent.height (%d) after "+
						"applying preTransform 0x%x is greater than the imageExtent.height (%d) of the swapchain.",
					i, j, y, ht, ci.PreTransform, ci.ImageExtent.Height) || skip
			}
			if rect.Layer >= ci.ImageArrayLayers {
				skip = t.rep().LogError(ctx, report.Objs(h), "VUID-VkRectLayerKHR-layer-01262",
					"vkQueuePresentKHR(): pRegions[%d].pRectangles[%d] layer %d is not less than the "+
						"imageArrayLayers (%d) of the swapchain.", i, j, rect.Layer, ci.ImageArrayLayers) || skip
			}
		}
	}
	return skip
}

func (t *Tracker) validatePresentIDs(ctx context.Context, q vulkan.VkQueue, info vulkan.VkPresentInfoKHR) bool {
	if info.PresentIds == nil {
		return false
	}
	skip := false
	first := report.Objs(q)
	if len(info.Swapchains) > 0 {
		first = report.Objs(info.Swapchains[0])
	}
	if !t.caps().Features().PresentID {
		for i, id := range info.PresentIds {
			if id != 0 {
				skip = t.rep().LogError(ctx, first, "VUID-VkPresentInfoKHR-pNext-06235",
					"vkQueuePresentKHR(): the presentId feature is not enabled and pPresentIds[%d] is %d.", i, id) || skip
			}
		}
	}
	if len(info.PresentIds) != len(info.Swapchains) {
		skip = t.rep().LogError(ctx, first, "VUID-VkPresentIdKHR-swapchainCount-04998",
			"vkQueuePresentKHR(): VkPresentIdKHR has %d entries, but %d swapchains are presented.",
			len(info.PresentIds), len(info.Swapchains)) || skip
	}
	for i, id := range info.PresentIds {
		if i >= len(info.Swapchains) {
			break
		}
		sc := t.Swapchain(info.Swapchains[i])
		if sc == nil || id == 0 {
			continue
		}
		if last := sc.MaxPresentID(); id <= last {
			skip = t.rep().LogError(ctx, report.Objs(info.Swapchains[i]), "VUID-VkPresentIdKHR-presentIds-04999",
				"vkQueuePresentKHR(): pPresentIds[%d] is %d and the largest id presented to the swapchain is %d.",
				i, id, last) || skip
		}
	}
	return skip
}

// QueuePresent records a vkQueuePresentKHR call that returned result. The
// wait semaphores are consumed and each presented image is handed back to
// the presentation engine.
func (t *Tracker) QueuePresent(ctx context.Context, q vulkan.VkQueue, info vulkan.VkPresentInfoKHR, result vulkan.VkResult) {
	switch result {
	case vulkan.VkResult_VK_ERROR_OUT_OF_HOST_MEMORY,
		vulkan.VkResult_VK_ERROR_OUT_OF_DEVICE_MEMORY,
		vulkan.VkResult_VK_ERROR_DEVICE_LOST:
		return
	}
	for _, h := range info.WaitSemaphores {
		if s := t.semaphore(h); s != nil {
			s.Wait()
		}
	}
	for i, h := range info.Swapchains {
		sc := t.Swapchain(h)
		if sc == nil || i >= len(info.ImageIndices) {
			continue
		}
		var id uint64
		if i < len(info.PresentIds) {
			id = info.PresentIds[i]
		}
		sc.present(info.ImageIndices[i], id)
	}
}

func (s *Swapchain) present(index uint32, id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id > s.maxPresentID {
		s.maxPresentID = id
	}
	if int(index) >= len(s.images) || s.images[index].State != ImageAcquired {
		return
	}
	// Shared presentable images stay acquired for the life of the swapchain.
	if s.CreateInfo.PresentMode.IsShared() {
		return
	}
	s.images[index].State = ImagePresented
	s.acquired--
}

// ValidateWaitForPresent checks a vkWaitForPresentKHR call.
func (t *Tracker) ValidateWaitForPresent(ctx context.Context, h vulkan.VkSwapchainKHR) bool {
	skip := false
	if !t.caps().Features().PresentWait {
		skip = t.rep().LogError(ctx, report.Objs(h), "VUID-vkWaitForPresentKHR-presentWait-06234",
			"vkWaitForPresentKHR(): the presentWait feature is not enabled.") || skip
	}
	if sc := t.Swapchain(h); sc != nil && sc.Retired() {
		skip = t.rep().LogError(ctx, report.Objs(h), "VUID-vkWaitForPresentKHR-swapchain-04997",
			"vkWaitForPresentKHR(): %v is retired.", vulkan.HandleString(h)) || skip
	}
	return skip
}
