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
	"context"
	"testing"

	"github.com/google/vkstate/core/log"
	"github.com/google/vkstate/layer/caps"
	"github.com/google/vkstate/layer/report"
	"github.com/google/vkstate/layer/state"
	"github.com/google/vkstate/layer/vulkan"
	"github.com/google/vkstate/layer/wsi"
)

const (
	devHandle       = vulkan.VkDevice(1)
	queueHandle     = vulkan.VkQueue(10)
	surfaceHandle   = vulkan.VkSurfaceKHR(100)
	swapchainHandle = vulkan.VkSwapchainKHR(200)
	semHandle       = vulkan.VkSemaphore(300)
	fenceHandle     = vulkan.VkFence(400)
	firstImage      = vulkan.VkImage(500)
)

var (
	presentSrc = vulkan.VkImageLayout_VK_IMAGE_LAYOUT_PRESENT_SRC_KHR
	colorRange = vulkan.VkImageSubresourceRange{
		AspectMask: vulkan.VkImageAspectFlags(vulkan.VkImageAspectFlagBits_VK_IMAGE_ASPECT_COLOR_BIT),
		LevelCount: 1,
		LayerCount: 1,
	}
)

type fixture struct {
	ctx   context.Context
	rep   *report.Collector
	dev   *state.Device
	wsi   *wsi.Tracker
	queue *state.Queue
	sc    *wsi.Swapchain
}

func createInfo() vulkan.VkSwapchainCreateInfoKHR {
	return vulkan.VkSwapchainCreateInfoKHR{
		Surface:          surfaceHandle,
		MinImageCount:    3,
		ImageFormat:      vulkan.VkFormat_VK_FORMAT_B8G8R8A8_UNORM,
		ImageColorSpace:  vulkan.VkColorSpaceKHR_VK_COLOR_SPACE_SRGB_NONLINEAR_KHR,
		ImageExtent:      vulkan.VkExtent2D{Width: 1280, Height: 720},
		ImageArrayLayers: 1,
		ImageUsage:       vulkan.VkImageUsageFlags(vulkan.VkImageUsageFlagBits_VK_IMAGE_USAGE_COLOR_ATTACHMENT_BIT),
		ImageSharingMode: vulkan.VkSharingMode_VK_SHARING_MODE_EXCLUSIVE,
		PreTransform:     vulkan.VkSurfaceTransformFlagBitsKHR_VK_SURFACE_TRANSFORM_IDENTITY_BIT_KHR,
		CompositeAlpha:   vulkan.VkCompositeAlphaFlagBitsKHR_VK_COMPOSITE_ALPHA_OPAQUE_BIT_KHR,
		PresentMode:      vulkan.VkPresentModeKHR_VK_PRESENT_MODE_FIFO_KHR,
		Clipped:          true,
	}
}

// newFixture returns a device with one queue, a surface and no swapchain.
func newFixture(t *testing.T, p caps.Profile) *fixture {
	ctx := log.Testing(t)
	rep := report.NewCollector(report.DefaultSettings)
	dev := state.NewDevice(devHandle, caps.NewStatic(p), rep)
	f := &fixture{ctx: ctx, rep: rep, dev: dev, wsi: wsi.New(dev)}
	f.queue = dev.GetDeviceQueue(ctx, 0, 0, queueHandle)
	f.wsi.CreateSurface(ctx, surfaceHandle)
	return f
}

// newSwapchainFixture also creates a swapchain and retrieves its three
// images the usual two-call way.
func newSwapchainFixture(t *testing.T, p caps.Profile) *fixture {
	f := newFixture(t, p)
	ci := createInfo()
	f.wsi.ValidateCreateSwapchain(f.ctx, ci)
	f.sc = f.wsi.CreateSwapchain(f.ctx, ci, swapchainHandle, vulkan.VkResult_VK_SUCCESS)
	f.getImages(swapchainHandle, 3)
	return f
}

func (f *fixture) getImages(h vulkan.VkSwapchainKHR, n int) {
	f.wsi.ValidateGetSwapchainImages(f.ctx, h, 0, false)
	f.wsi.GetSwapchainImages(f.ctx, h, uint32(n), nil, vulkan.VkResult_VK_SUCCESS)
	images := make([]vulkan.VkImage, n)
	for i := range images {
		images[i] = firstImage + vulkan.VkImage(i)
	}
	f.wsi.ValidateGetSwapchainImages(f.ctx, h, uint32(n), true)
	f.wsi.GetSwapchainImages(f.ctx, h, uint32(n), images, vulkan.VkResult_VK_SUCCESS)
}

// acquire runs an unbounded acquire of index and returns true if it passed
// validation.
func (f *fixture) acquire(index uint32) bool {
	before := f.rep.Errors()
	f.wsi.ValidateAcquireNextImage(f.ctx, swapchainHandle, vulkan.UINT64_MAX, vulkan.VK_NULL_HANDLE, vulkan.VK_NULL_HANDLE)
	f.wsi.AcquireNextImage(f.ctx, swapchainHandle, vulkan.VK_NULL_HANDLE, vulkan.VK_NULL_HANDLE, index, vulkan.VkResult_VK_SUCCESS)
	return f.rep.Errors() == before
}

// present presents the images at indices and returns true if the call passed
// validation.
func (f *fixture) present(info vulkan.VkPresentInfoKHR) bool {
	before := f.rep.Errors()
	f.wsi.ValidateQueuePresent(f.ctx, queueHandle, info)
	f.wsi.QueuePresent(f.ctx, queueHandle, info, vulkan.VkResult_VK_SUCCESS)
	return f.rep.Errors() == before
}

func presentOf(index uint32) vulkan.VkPresentInfoKHR {
	return vulkan.VkPresentInfoKHR{
		Swapchains:   []vulkan.VkSwapchainKHR{swapchainHandle},
		ImageIndices: []uint32{index},
	}
}

// toPresent moves the image at index to PRESENT_SRC as a submitted barrier
// would.
func (f *fixture) toPresent(index int) {
	f.dev.Layouts().SetLayout(firstImage+vulkan.VkImage(index), colorRange, presentSrc)
}
