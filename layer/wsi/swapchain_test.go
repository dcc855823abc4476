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
	"github.com/google/vkstate/layer/registry"
	"github.com/google/vkstate/layer/state"
	"github.com/google/vkstate/layer/vulkan"
	"github.com/google/vkstate/layer/wsi"
)

func TestCreateSwapchain(t *testing.T) {
	f := newSwapchainFixture(t, caps.Default())
	assert.For(f.ctx, "errors").ThatInteger(f.rep.Errors()).Equals(0)
	assert.For(f.ctx, "issues").ThatSlice(f.rep.Issues()).IsEmpty()
	assert.For(f.ctx, "swapchain").That(f.sc).IsNotNil()
	assert.For(f.ctx, "surface link").That(f.wsi.Surface(surfaceHandle).Swapchain()).Equals(f.sc)
	assert.For(f.ctx, "images").ThatInteger(len(f.sc.Images())).Equals(3)
	assert.For(f.ctx, "query").That(f.sc.ImagesQuery()).Equals(wsi.ImagesDetailsQueried)

	img := registry.Get[*state.Image](f.dev.Registry(), firstImage+2)
	assert.For(f.ctx, "image").That(img).IsNotNil()
	assert.For(f.ctx, "image swapchain").That(img.Swapchain).Equals(swapchainHandle)
	assert.For(f.ctx, "image extent").That(img.CreateInfo.Extent).Equals(vulkan.VkExtent3D{Width: 1280, Height: 720, Depth: 1})
}

func TestCreateSwapchainChecks(t *testing.T) {
	const (
		rotate90       = vulkan.VkSurfaceTransformFlagBitsKHR_VK_SURFACE_TRANSFORM_ROTATE_90_BIT_KHR
		mirrorRotate90 = vulkan.VkSurfaceTransformFlagBitsKHR_VK_SURFACE_TRANSFORM_HORIZONTAL_MIRROR_ROTATE_90_BIT_KHR
	)
	for _, test := range []struct {
		name   string
		modify func(*vulkan.VkSwapchainCreateInfoKHR)
		vuid   string
	}{
		{"empty extent", func(ci *vulkan.VkSwapchainCreateInfoKHR) { ci.ImageExtent.Width = 0 },
			"VUID-VkSwapchainCreateInfoKHR-imageExtent-01689"},
		{"too few images", func(ci *vulkan.VkSwapchainCreateInfoKHR) { ci.MinImageCount = 1 },
			"VUID-VkSwapchainCreateInfoKHR-minImageCount-01271"},
		{"too many images", func(ci *vulkan.VkSwapchainCreateInfoKHR) { ci.MinImageCount = 9 },
			"VUID-VkSwapchainCreateInfoKHR-minImageCount-01272"},
		{"extent too large", func(ci *vulkan.VkSwapchainCreateInfoKHR) { ci.ImageExtent.Width = 5000 },
			"VUID-VkSwapchainCreateInfoKHR-imageExtent-01274"},
		{"transform differs", func(ci *vulkan.VkSwapchainCreateInfoKHR) { ci.PreTransform = rotate90 },
			"UNASSIGNED-CoreValidation-SwapchainPreTransform"},
		{"transform unsupported", func(ci *vulkan.VkSwapchainCreateInfoKHR) { ci.PreTransform = mirrorRotate90 },
			"VUID-VkSwapchainCreateInfoKHR-preTransform-01279"},
		{"composite alpha", func(ci *vulkan.VkSwapchainCreateInfoKHR) {
			ci.CompositeAlpha = vulkan.VkCompositeAlphaFlagBitsKHR_VK_COMPOSITE_ALPHA_PRE_MULTIPLIED_BIT_KHR
		}, "VUID-VkSwapchainCreateInfoKHR-compositeAlpha-01280"},
		{"array layers", func(ci *vulkan.VkSwapchainCreateInfoKHR) { ci.ImageArrayLayers = 2 },
			"VUID-VkSwapchainCreateInfoKHR-imageArrayLayers-01275"},
		{"usage", func(ci *vulkan.VkSwapchainCreateInfoKHR) {
			ci.ImageUsage |= vulkan.VkImageUsageFlags(vulkan.VkImageUsageFlagBits_VK_IMAGE_USAGE_DEPTH_STENCIL_ATTACHMENT_BIT)
		}, "VUID-VkSwapchainCreateInfoKHR-presentMode-01427"},
		{"usage format features", func(ci *vulkan.VkSwapchainCreateInfoKHR) {
			ci.ImageUsage |= vulkan.VkImageUsageFlags(vulkan.VkImageUsageFlagBits_VK_IMAGE_USAGE_DEPTH_STENCIL_ATTACHMENT_BIT)
		}, "VUID-VkSwapchainCreateInfoKHR-imageFormat-01778"},
		{"protected", func(ci *vulkan.VkSwapchainCreateInfoKHR) {
			ci.Flags |= vulkan.VkSwapchainCreateFlagBitsKHR_VK_SWAPCHAIN_CREATE_PROTECTED_BIT_KHR
		}, "VUID-VkSwapchainCreateInfoKHR-flags-03187"},
		{"color space", func(ci *vulkan.VkSwapchainCreateInfoKHR) {
			ci.ImageColorSpace = vulkan.VkColorSpaceKHR_VK_COLOR_SPACE_PASS_THROUGH_EXT
		}, "VUID-VkSwapchainCreateInfoKHR-imageFormat-01273"},
		{"present mode", func(ci *vulkan.VkSwapchainCreateInfoKHR) {
			ci.PresentMode = vulkan.VkPresentModeKHR_VK_PRESENT_MODE_FIFO_RELAXED_KHR
		}, "VUID-VkSwapchainCreateInfoKHR-presentMode-01281"},
		{"shared without extension", func(ci *vulkan.VkSwapchainCreateInfoKHR) {
			ci.PresentMode = vulkan.VkPresentModeKHR_VK_PRESENT_MODE_SHARED_DEMAND_REFRESH_KHR
		}, "UNASSIGNED-CoreValidation-DrawState-ExtensionNotEnabled"},
		{"concurrent families", func(ci *vulkan.VkSwapchainCreateInfoKHR) {
			ci.ImageSharingMode = vulkan.VkSharingMode_VK_SHARING_MODE_CONCURRENT
			ci.QueueFamilyIndices = []uint32{0, 5}
		}, "VUID-VkSwapchainCreateInfoKHR-imageSharingMode-01428"},
		{"split instance", func(ci *vulkan.VkSwapchainCreateInfoKHR) {
			ci.Flags |= vulkan.VkSwapchainCreateFlagBitsKHR_VK_SWAPCHAIN_CREATE_SPLIT_INSTANCE_BIND_REGIONS_BIT_KHR
		}, "VUID-VkSwapchainCreateInfoKHR-physicalDeviceCount-01429"},
	} {
		t.Run(test.name, func(t *testing.T) {
			f := newFixture(t, caps.Default())
			ci := createInfo()
			test.modify(&ci)
			f.wsi.ValidateCreateSwapchain(f.ctx, ci)
			assert.For(f.ctx, "reported").ThatBoolean(f.rep.Has(test.vuid)).IsTrue()
		})
	}
}

func TestCreateSwapchainSurfaceSupport(t *testing.T) {
	p := caps.Default()
	p.QueueFamilies[0].Present = false
	f := newFixture(t, p)
	f.wsi.ValidateCreateSwapchain(f.ctx, createInfo())
	assert.For(f.ctx, "unsupported").ThatInteger(f.rep.Count("VUID-VkSwapchainCreateInfoKHR-surface-01270")).Equals(1)
}

func TestSharedSwapchain(t *testing.T) {
	p := caps.Default()
	p.Extensions = append(p.Extensions, vulkan.VK_KHR_shared_presentable_image)
	f := newFixture(t, p)
	ci := createInfo()
	ci.PresentMode = vulkan.VkPresentModeKHR_VK_PRESENT_MODE_SHARED_DEMAND_REFRESH_KHR
	ci.ImageUsage |= vulkan.VkImageUsageFlags(vulkan.VkImageUsageFlagBits_VK_IMAGE_USAGE_SAMPLED_BIT)
	f.wsi.ValidateCreateSwapchain(f.ctx, ci)
	assert.For(f.ctx, "count").ThatBoolean(f.rep.Has("VUID-VkSwapchainCreateInfoKHR-minImageCount-01383")).IsTrue()
	assert.For(f.ctx, "usage").ThatBoolean(f.rep.Has("VUID-VkSwapchainCreateInfoKHR-imageUsage-01384")).IsTrue()
	assert.For(f.ctx, "no minimum").ThatBoolean(f.rep.Has("VUID-VkSwapchainCreateInfoKHR-minImageCount-01271")).IsFalse()
}

func TestCreateSharedSwapchains(t *testing.T) {
	f := newFixture(t, caps.Default())
	f.wsi.CreateSurface(f.ctx, surfaceHandle+1)
	good, bad := createInfo(), createInfo()
	bad.Surface = surfaceHandle + 1
	bad.ImageExtent.Height = 0
	f.wsi.ValidateCreateSharedSwapchains(f.ctx, []vulkan.VkSwapchainCreateInfoKHR{good, bad})
	issues := f.rep.Issues()
	assert.For(f.ctx, "issues").ThatInteger(len(issues)).Equals(2)
	assert.For(f.ctx, "call").ThatString(issues[0].Message).Contains("vkCreateSharedSwapchainsKHR[1]")

	f.wsi.CreateSharedSwapchains(f.ctx, []vulkan.VkSwapchainCreateInfoKHR{good, good},
		[]vulkan.VkSwapchainKHR{swapchainHandle, swapchainHandle + 1}, vulkan.VkResult_VK_SUCCESS)
	assert.For(f.ctx, "swapchains").ThatInteger(len(f.wsi.Swapchains())).Equals(2)
}

func TestOldSwapchain(t *testing.T) {
	f := newSwapchainFixture(t, caps.Default())
	ci := createInfo()
	ci.OldSwapchain = swapchainHandle
	f.wsi.ValidateCreateSwapchain(f.ctx, ci)
	assert.For(f.ctx, "valid replacement").ThatInteger(f.rep.Errors()).Equals(0)

	// The old swapchain is retired even if the creation fails.
	f.wsi.CreateSwapchain(f.ctx, ci, vulkan.VK_NULL_HANDLE, vulkan.VkResult_VK_ERROR_OUT_OF_DATE_KHR)
	assert.For(f.ctx, "retired").ThatBoolean(f.sc.Retired()).IsTrue()

	f.wsi.ValidateCreateSwapchain(f.ctx, ci)
	assert.For(f.ctx, "retired old").ThatInteger(f.rep.Count("VUID-VkSwapchainCreateInfoKHR-oldSwapchain-01933")).Equals(1)

	f.wsi.ValidateAcquireNextImage(f.ctx, swapchainHandle, 0, vulkan.VK_NULL_HANDLE, vulkan.VK_NULL_HANDLE)
	assert.For(f.ctx, "acquire").ThatInteger(f.rep.Count("VUID-vkAcquireNextImageKHR-swapchain-01285")).Equals(1)
	f.wsi.ValidateAcquireNextImage2(f.ctx, vulkan.VkAcquireNextImageInfoKHR{Swapchain: swapchainHandle, DeviceMask: 1})
	assert.For(f.ctx, "acquire2").ThatInteger(f.rep.Count("VUID-VkAcquireNextImageInfoKHR-swapchain-01675")).Equals(1)
	f.wsi.ValidateWaitForPresent(f.ctx, swapchainHandle)
	assert.For(f.ctx, "wait").ThatInteger(f.rep.Count("VUID-vkWaitForPresentKHR-swapchain-04997")).Equals(1)
	assert.For(f.ctx, "wait feature").ThatInteger(f.rep.Count("VUID-vkWaitForPresentKHR-presentWait-06234")).Equals(1)
}

func TestOldSwapchainOtherSurface(t *testing.T) {
	f := newSwapchainFixture(t, caps.Default())
	f.wsi.CreateSurface(f.ctx, surfaceHandle+1)
	ci := createInfo()
	ci.Surface = surfaceHandle + 1
	ci.OldSwapchain = swapchainHandle
	f.wsi.ValidateCreateSwapchain(f.ctx, ci)
	assert.For(f.ctx, "mismatch").ThatInteger(f.rep.Count("VUID-VkSwapchainCreateInfoKHR-oldSwapchain-01933")).Equals(1)
}

func TestGetSwapchainImagesCounts(t *testing.T) {
	f := newFixture(t, caps.Default())
	f.sc = f.wsi.CreateSwapchain(f.ctx, createInfo(), swapchainHandle, vulkan.VkResult_VK_SUCCESS)

	f.wsi.ValidateGetSwapchainImages(f.ctx, swapchainHandle, 0, true)
	assert.For(f.ctx, "prior count").ThatInteger(f.rep.Count("UNASSIGNED-CoreValidation-SwapchainPriorCount")).Equals(1)

	f.wsi.GetSwapchainImages(f.ctx, swapchainHandle, 3, nil, vulkan.VkResult_VK_SUCCESS)
	assert.For(f.ctx, "count queried").That(f.sc.ImagesQuery()).Equals(wsi.ImagesCountQueried)
	f.wsi.ValidateGetSwapchainImages(f.ctx, swapchainHandle, 4, true)
	assert.For(f.ctx, "invalid count").ThatInteger(f.rep.Count("UNASSIGNED-CoreValidation-SwapchainInvalidCount")).Equals(1)

	// A short read creates only the images returned.
	f.wsi.GetSwapchainImages(f.ctx, swapchainHandle, 2, []vulkan.VkImage{firstImage, firstImage + 1}, vulkan.VkResult_VK_INCOMPLETE)
	assert.For(f.ctx, "partial").ThatInteger(len(f.sc.Images())).Equals(2)
	f.wsi.GetSwapchainImages(f.ctx, swapchainHandle, 3, []vulkan.VkImage{firstImage, firstImage + 1, firstImage + 2}, vulkan.VkResult_VK_SUCCESS)
	assert.For(f.ctx, "complete").ThatInteger(len(f.sc.Images())).Equals(3)
	assert.For(f.ctx, "same image").That(f.sc.Images()[0].Image).Equals(registry.Get[*state.Image](f.dev.Registry(), firstImage))
}

func TestDestroySurfaceBeforeSwapchain(t *testing.T) {
	f := newSwapchainFixture(t, caps.Default())
	f.wsi.ValidateDestroySurface(f.ctx, surfaceHandle)
	assert.For(f.ctx, "live swapchain").ThatInteger(f.rep.Count("VUID-vkDestroySurfaceKHR-surface-01266")).Equals(1)

	f.wsi.ValidateDestroySwapchain(f.ctx, swapchainHandle)
	f.wsi.DestroySwapchain(f.ctx, swapchainHandle)
	assert.For(f.ctx, "swapchain gone").That(f.wsi.Swapchain(swapchainHandle)).IsNil()
	assert.For(f.ctx, "images gone").That(registry.Get[*state.Image](f.dev.Registry(), firstImage)).IsNil()
	assert.For(f.ctx, "unlinked").That(f.wsi.Surface(surfaceHandle).Swapchain()).IsNil()

	f.wsi.ValidateDestroySurface(f.ctx, surfaceHandle)
	f.wsi.DestroySurface(f.ctx, surfaceHandle)
	assert.For(f.ctx, "reported once").ThatInteger(f.rep.Count("VUID-vkDestroySurfaceKHR-surface-01266")).Equals(1)
	assert.For(f.ctx, "surface gone").That(f.wsi.Surface(surfaceHandle)).IsNil()
}

func TestSurfaceQueries(t *testing.T) {
	p := caps.Default()
	for i := range p.QueueFamilies {
		p.QueueFamilies[i].Present = false
	}
	f := newFixture(t, p)
	const vuid = "VUID-vkGetPhysicalDeviceSurfaceCapabilitiesKHR-surface-06211"
	f.wsi.ValidateSurfaceQuery(f.ctx, "vkGetPhysicalDeviceSurfaceCapabilitiesKHR", vuid, surfaceHandle)
	assert.For(f.ctx, "unsupported").ThatInteger(f.rep.Count(vuid)).Equals(1)

	f.wsi.ValidateGetPhysicalDeviceSurfaceSupport(f.ctx, 2, surfaceHandle)
	f.wsi.ValidateGetPhysicalDeviceSurfaceSupport(f.ctx, 3, surfaceHandle)
	assert.For(f.ctx, "family").ThatInteger(
		f.rep.Count("VUID-vkGetPhysicalDeviceSurfaceSupportKHR-queueFamilyIndex-01269")).Equals(1)
}

func TestDisplayPlaneSurface(t *testing.T) {
	f := newFixture(t, caps.Default())
	global := vulkan.VkDisplayPlaneAlphaFlagBitsKHR_VK_DISPLAY_PLANE_ALPHA_GLOBAL_BIT_KHR
	ci := vulkan.VkDisplaySurfaceCreateInfoKHR{
		DisplayMode: 1,
		PlaneIndex:  3,
		GlobalAlpha: 1.5,
		AlphaMode:   global,
		ImageExtent: vulkan.VkExtent2D{Width: 16384, Height: 1080},
	}

	// The plane index is only known to be wrong once the planes were queried.
	f.wsi.ValidateCreateDisplayPlaneSurface(f.ctx, ci)
	assert.For(f.ctx, "alpha").ThatInteger(f.rep.Count("VUID-VkDisplaySurfaceCreateInfoKHR-alphaMode-01254")).Equals(1)
	assert.For(f.ctx, "width").ThatInteger(f.rep.Count("VUID-VkDisplaySurfaceCreateInfoKHR-width-01256")).Equals(1)
	assert.For(f.ctx, "unqueried").ThatInteger(f.rep.Count("VUID-VkDisplaySurfaceCreateInfoKHR-planeIndex-01252")).Equals(0)

	f.wsi.GetPhysicalDeviceDisplayPlaneProperties(f.ctx, f.dev.Caps().DisplayPlaneProperties())
	f.wsi.ValidateCreateDisplayPlaneSurface(f.ctx, ci)
	assert.For(f.ctx, "plane").ThatInteger(f.rep.Count("VUID-VkDisplaySurfaceCreateInfoKHR-planeIndex-01252")).Equals(1)
	f.wsi.ValidateDisplayPlaneIndex(f.ctx, "vkGetDisplayPlaneSupportedDisplaysKHR", 1)
	assert.For(f.ctx, "plane query").ThatInteger(
		f.rep.Count("VUID-vkGetDisplayPlaneSupportedDisplaysKHR-planeIndex-01249")).Equals(1)

	f.rep.Reset()
	ci.PlaneIndex, ci.GlobalAlpha, ci.ImageExtent.Width = 0, 0.5, 1920
	ci.AlphaMode = vulkan.VkDisplayPlaneAlphaFlagBitsKHR_VK_DISPLAY_PLANE_ALPHA_PER_PIXEL_BIT_KHR
	f.wsi.ValidateCreateDisplayPlaneSurface(f.ctx, ci)
	assert.For(f.ctx, "supported alpha").ThatInteger(f.rep.Count("VUID-VkDisplaySurfaceCreateInfoKHR-alphaMode-01255")).Equals(1)

	f.rep.Reset()
	ci.AlphaMode = global
	assert.For(f.ctx, "valid").ThatBoolean(f.wsi.ValidateCreateDisplayPlaneSurface(f.ctx, ci)).IsFalse()
	assert.For(f.ctx, "no issues").ThatInteger(len(f.rep.Issues())).Equals(0)
	s := f.wsi.CreateDisplayPlaneSurface(f.ctx, ci, surfaceHandle+1)
	assert.For(f.ctx, "display").That(*s.Display).Equals(ci)
}

func TestFullScreenExclusive(t *testing.T) {
	f := newFixture(t, caps.Default())
	ci := createInfo()
	ci.FullScreenExclusive = vulkan.VkFullScreenExclusiveEXT_VK_FULL_SCREEN_EXCLUSIVE_APPLICATION_CONTROLLED_EXT
	sc := f.wsi.CreateSwapchain(f.ctx, ci, swapchainHandle, vulkan.VkResult_VK_SUCCESS)
	f.wsi.CreateSwapchain(f.ctx, createInfo(), swapchainHandle+1, vulkan.VkResult_VK_SUCCESS)

	assert.For(f.ctx, "acquire").ThatBoolean(f.wsi.ValidateAcquireFullScreenExclusiveMode(f.ctx, swapchainHandle)).IsFalse()
	f.wsi.AcquireFullScreenExclusiveMode(f.ctx, swapchainHandle, vulkan.VkResult_VK_SUCCESS)
	assert.For(f.ctx, "held").ThatBoolean(sc.FullScreenExclusive()).IsTrue()
	f.wsi.ValidateAcquireFullScreenExclusiveMode(f.ctx, swapchainHandle)
	assert.For(f.ctx, "held twice").ThatInteger(
		f.rep.Count("VUID-vkAcquireFullScreenExclusiveModeEXT-swapchain-02676")).Equals(1)

	f.wsi.ValidateReleaseFullScreenExclusiveMode(f.ctx, swapchainHandle)
	f.wsi.ReleaseFullScreenExclusiveMode(f.ctx, swapchainHandle, vulkan.VkResult_VK_SUCCESS)
	assert.For(f.ctx, "released").ThatBoolean(sc.FullScreenExclusive()).IsFalse()
	assert.For(f.ctx, "errors").ThatInteger(f.rep.Errors()).Equals(1)

	f.wsi.ValidateAcquireFullScreenExclusiveMode(f.ctx, swapchainHandle+1)
	f.wsi.ValidateReleaseFullScreenExclusiveMode(f.ctx, swapchainHandle+1)
	assert.For(f.ctx, "not controlled").ThatInteger(
		f.rep.Count("VUID-vkAcquireFullScreenExclusiveModeEXT-swapchain-02675")).Equals(1)
	assert.For(f.ctx, "not controlled release").ThatInteger(
		f.rep.Count("VUID-vkReleaseFullScreenExclusiveModeEXT-swapchain-02678")).Equals(1)
}
