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

	"github.com/google/vkstate/layer/report"
	"github.com/google/vkstate/layer/vulkan"
)

func singleBit(v uint32) bool { return v != 0 && v&(v-1) == 0 }

func insideBounds(e, lo, hi vulkan.VkExtent2D) bool {
	return e.Width >= lo.Width && e.Width <= hi.Width && e.Height >= lo.Height && e.Height <= hi.Height
}

// ValidateCreateSwapchain checks a vkCreateSwapchainKHR call against the
// capabilities of the surface and the physical device.
func (t *Tracker) ValidateCreateSwapchain(ctx context.Context, ci vulkan.VkSwapchainCreateInfoKHR) bool {
	return t.validateCreateSwapchain(ctx, "vkCreateSwapchainKHR", ci)
}

func (t *Tracker) validateCreateSwapchain(ctx context.Context, call string, ci vulkan.VkSwapchainCreateInfoKHR) bool {
	rep, p := t.rep(), t.caps()
	dev := report.Objs(t.dev.Handle)
	skip := false

	if !t.anySurface() && !t.deviceCanPresent(ci.Surface) {
		skip = rep.LogError(ctx, report.Objs(t.dev.Handle, ci.Surface), "VUID-VkSwapchainCreateInfoKHR-surface-01270",
			"%s(): %v is not supported for presentation by any queue of the device.", call, vulkan.HandleString(ci.Surface)) || skip
	}

	if old := t.Swapchain(ci.OldSwapchain); old != nil {
		if old.CreateInfo.Surface != ci.Surface {
			skip = rep.LogError(ctx, report.Objs(ci.OldSwapchain), "VUID-VkSwapchainCreateInfoKHR-oldSwapchain-01933",
				"%s(): oldSwapchain %v presents to %v, not %v.", call, vulkan.HandleString(ci.OldSwapchain),
				vulkan.HandleString(old.CreateInfo.Surface), vulkan.HandleString(ci.Surface)) || skip
		}
		if old.Retired() {
			skip = rep.LogError(ctx, report.Objs(ci.OldSwapchain), "VUID-VkSwapchainCreateInfoKHR-oldSwapchain-01933",
				"%s(): oldSwapchain %v is retired.", call, vulkan.HandleString(ci.OldSwapchain)) || skip
		}
	}

	if ci.ImageExtent.Width == 0 || ci.ImageExtent.Height == 0 {
		skip = rep.LogError(ctx, dev, "VUID-VkSwapchainCreateInfoKHR-imageExtent-01689",
			"%s(): imageExtent (%d, %d) is empty.", call, ci.ImageExtent.Width, ci.ImageExtent.Height) || skip
	}

	sc := p.SurfaceCapabilities(ci.Surface)
	if ci.PreTransform != sc.CurrentTransform {
		skip = rep.LogPerformanceWarning(ctx, dev, vuidPreTransform,
			"%s(): preTransform 0x%x does not match the currentTransform 0x%x of the surface, the presentation "+
				"engine will transform the image content as part of the presentation operation.",
			call, ci.PreTransform, sc.CurrentTransform) || skip
	}

	shared := ci.PresentMode.IsShared()
	sharedExt := p.HasExtension(vulkan.VK_KHR_shared_presentable_image)
	if ci.MinImageCount < sc.MinImageCount && !shared {
		vuid := "VUID-VkSwapchainCreateInfoKHR-minImageCount-01271"
		if sharedExt {
			vuid = "VUID-VkSwapchainCreateInfoKHR-presentMode-02839"
		}
		skip = rep.LogError(ctx, dev, vuid, "%s(): minImageCount %d is below the minImageCount %d of the surface.",
			call, ci.MinImageCount, sc.MinImageCount) || skip
	}
	if sc.MaxImageCount > 0 && ci.MinImageCount > sc.MaxImageCount {
		skip = rep.LogError(ctx, dev, "VUID-VkSwapchainCreateInfoKHR-minImageCount-01272",
			"%s(): minImageCount %d is above the maxImageCount %d of the surface.",
			call, ci.MinImageCount, sc.MaxImageCount) || skip
	}
	if !insideBounds(ci.ImageExtent, sc.MinImageExtent, sc.MaxImageExtent) {
		skip = rep.LogError(ctx, dev, "VUID-VkSwapchainCreateInfoKHR-imageExtent-01274",
			"%s(): imageExtent (%d, %d) is outside the bounds (%d, %d) to (%d, %d) of the surface.",
			call, ci.ImageExtent.Width, ci.ImageExtent.Height, sc.MinImageExtent.Width, sc.MinImageExtent.Height,
			sc.MaxImageExtent.Width, sc.MaxImageExtent.Height) || skip
	}
	if !singleBit(uint32(ci.PreTransform)) || uint32(ci.PreTransform)&uint32(sc.SupportedTransforms) == 0 {
		skip = rep.LogError(ctx, dev, "VUID-VkSwapchainCreateInfoKHR-preTransform-01279",
			"%s(): preTransform 0x%x is not one of the supported transforms 0x%x.",
			call, ci.PreTransform, sc.SupportedTransforms) || skip
	}
	if !singleBit(uint32(ci.CompositeAlpha)) || uint32(ci.CompositeAlpha)&uint32(sc.SupportedCompositeAlpha) == 0 {
		skip = rep.LogError(ctx, dev, "VUID-VkSwapchainCreateInfoKHR-compositeAlpha-01280",
			"%s(): compositeAlpha 0x%x is not one of the supported modes 0x%x.",
			call, ci.CompositeAlpha, sc.SupportedCompositeAlpha) || skip
	}
	if ci.ImageArrayLayers > sc.MaxImageArrayLayers {
		skip = rep.LogError(ctx, dev, "VUID-VkSwapchainCreateInfoKHR-imageArrayLayers-01275",
			"%s(): imageArrayLayers %d is above the maximum of %d.", call, ci.ImageArrayLayers, sc.MaxImageArrayLayers) || skip
	}
	if ci.ImageUsage&^sc.SupportedUsageFlags != 0 && !shared {
		skip = rep.LogError(ctx, dev, "VUID-VkSwapchainCreateInfoKHR-presentMode-01427",
			"%s(): imageUsage 0x%08x is not supported, the supported flags are 0x%08x.",
			call, ci.ImageUsage, sc.SupportedUsageFlags) || skip
	}

	if ci.Flags&vulkan.VkSwapchainCreateFlagBitsKHR_VK_SWAPCHAIN_CREATE_PROTECTED_BIT_KHR != 0 &&
		(!p.HasExtension(vulkan.VK_KHR_surface_protected_capabilities) || !p.ProtectedSurface(ci.Surface)) {
		skip = rep.LogError(ctx, dev, "VUID-VkSwapchainCreateInfoKHR-flags-03187",
			"%s(): flags contains VK_SWAPCHAIN_CREATE_PROTECTED_BIT_KHR but the surface does not support protected swapchains.",
			call) || skip
	}

	skip = t.validateSurfaceFormat(ctx, call, ci) || skip

	modeFound := false
	for _, m := range p.SurfacePresentModes(ci.Surface) {
		if m == ci.PresentMode {
			modeFound = true
			break
		}
	}
	if !modeFound {
		skip = rep.LogError(ctx, dev, "VUID-VkSwapchainCreateInfoKHR-presentMode-01281",
			"%s(): presentMode %d is not supported by the surface.", call, ci.PresentMode) || skip
	}

	if shared {
		if !sharedExt {
			skip = rep.LogError(ctx, dev, vuidExtensionNotEnabled,
				"%s(): presentMode %d requires the %s extension, which has not been enabled.",
				call, ci.PresentMode, vulkan.VK_KHR_shared_presentable_image) || skip
		} else if ci.MinImageCount != 1 {
			skip = rep.LogError(ctx, dev, "VUID-VkSwapchainCreateInfoKHR-minImageCount-01383",
				"%s(): minImageCount must be 1 for a shared presentable image, but is %d.", call, ci.MinImageCount) || skip
		}
		if supported := p.SharedPresentSurfaceUsage(ci.Surface); ci.ImageUsage&^supported != 0 {
			skip = rep.LogError(ctx, dev, "VUID-VkSwapchainCreateInfoKHR-imageUsage-01384",
				"%s(): imageUsage 0x%08x is not supported for shared presentation, the supported flags are 0x%08x.",
				call, ci.ImageUsage, supported) || skip
		}
	}

	if ci.ImageSharingMode == vulkan.VkSharingMode_VK_SHARING_MODE_CONCURRENT {
		families := len(p.QueueFamilyProperties())
		for i, f := range ci.QueueFamilyIndices {
			if int(f) >= families {
				skip = rep.LogError(ctx, dev, "VUID-VkSwapchainCreateInfoKHR-imageSharingMode-01428",
					"%s(): pQueueFamilyIndices[%d] (%d) is not less than the %d queue families of the device.",
					call, i, f, families) || skip
			}
		}
	}

	skip = t.validateImageFormat(ctx, call, ci) || skip

	if ci.Flags&vulkan.VkSwapchainCreateFlagBitsKHR_VK_SWAPCHAIN_CREATE_SPLIT_INSTANCE_BIND_REGIONS_BIT_KHR != 0 &&
		p.PhysicalDeviceCount() == 1 {
		skip = rep.LogError(ctx, dev, "VUID-VkSwapchainCreateInfoKHR-physicalDeviceCount-01429",
			"%s(): flags contains VK_SWAPCHAIN_CREATE_SPLIT_INSTANCE_BIND_REGIONS_BIT_KHR but the device group has "+
				"a single physical device.", call) || skip
	}
	return skip
}

// deviceCanPresent returns true if the family of one of the queues retrieved
// from the device can present to s.
func (t *Tracker) deviceCanPresent(s vulkan.VkSurfaceKHR) bool {
	for _, q := range t.dev.Queues() {
		if t.caps().SurfaceSupport(q.Family, s) {
			return true
		}
	}
	return false
}

func (t *Tracker) validateSurfaceFormat(ctx context.Context, call string, ci vulkan.VkSwapchainCreateInfoKHR) bool {
	foundFormat, foundColorSpace := false, false
	for _, f := range t.caps().SurfaceFormats(ci.Surface) {
		if f.Format == ci.ImageFormat && f.ColorSpace == ci.ImageColorSpace {
			return false
		}
		foundFormat = foundFormat || f.Format == ci.ImageFormat
		foundColorSpace = foundColorSpace || f.ColorSpace == ci.ImageColorSpace
	}
	skip := false
	dev := report.Objs(t.dev.Handle)
	if !foundFormat {
		skip = t.rep().LogError(ctx, dev, "VUID-VkSwapchainCreateInfoKHR-imageFormat-01273",
			"%s(): imageFormat %d is not supported by the surface.", call, ci.ImageFormat) || skip
	}
	if !foundColorSpace {
		skip = t.rep().LogError(ctx, dev, "VUID-VkSwapchainCreateInfoKHR-imageFormat-01273",
			"%s(): imageColorSpace %d is not supported by the surface.", call, ci.ImageColorSpace) || skip
	}
	return skip
}

// usageFeatures pairs image usage bits with the optimal tiling features they
// need. An image usage needs any one of the listed features.
var usageFeatures = []struct {
	usage    vulkan.VkImageUsageFlagBits
	features vulkan.VkFormatFeatureFlagBits
}{
	{vulkan.VkImageUsageFlagBits_VK_IMAGE_USAGE_SAMPLED_BIT, vulkan.VkFormatFeatureFlagBits_VK_FORMAT_FEATURE_SAMPLED_IMAGE_BIT},
	{vulkan.VkImageUsageFlagBits_VK_IMAGE_USAGE_STORAGE_BIT, vulkan.VkFormatFeatureFlagBits_VK_FORMAT_FEATURE_STORAGE_IMAGE_BIT},
	{vulkan.VkImageUsageFlagBits_VK_IMAGE_USAGE_COLOR_ATTACHMENT_BIT, vulkan.VkFormatFeatureFlagBits_VK_FORMAT_FEATURE_COLOR_ATTACHMENT_BIT},
	{vulkan.VkImageUsageFlagBits_VK_IMAGE_USAGE_DEPTH_STENCIL_ATTACHMENT_BIT, vulkan.VkFormatFeatureFlagBits_VK_FORMAT_FEATURE_DEPTH_STENCIL_ATTACHMENT_BIT},
	{vulkan.VkImageUsageFlagBits_VK_IMAGE_USAGE_INPUT_ATTACHMENT_BIT,
		vulkan.VkFormatFeatureFlagBits_VK_FORMAT_FEATURE_COLOR_ATTACHMENT_BIT | vulkan.VkFormatFeatureFlagBits_VK_FORMAT_FEATURE_DEPTH_STENCIL_ATTACHMENT_BIT},
}

func (t *Tracker) validateImageFormat(ctx context.Context, call string, ci vulkan.VkSwapchainCreateInfoKHR) bool {
	rep, p := t.rep(), t.caps()
	dev := report.Objs(t.dev.Handle)
	const vuid = "VUID-VkSwapchainCreateInfoKHR-imageFormat-01778"

	features := p.FormatProperties(ci.ImageFormat).OptimalTilingFeatures
	if features == 0 {
		return rep.LogError(ctx, dev, vuid, "%s(): imageFormat %d has no optimal tiling features.", call, ci.ImageFormat)
	}
	for _, u := range usageFeatures {
		if ci.ImageUsage&vulkan.VkImageUsageFlags(u.usage) != 0 && features&vulkan.VkFormatFeatureFlags(u.features) == 0 {
			return rep.LogError(ctx, dev, vuid, "%s(): imageFormat %d with optimal tiling does not support usage 0x%x.",
				call, ci.ImageFormat, u.usage)
		}
	}

	ici := ImageCreateInfo(ci)
	props, res := p.ImageFormatProperties(ici.Format, ici.ImageType, ici.Tiling, ici.Usage, ici.Flags)
	if res != vulkan.VkResult_VK_SUCCESS {
		return rep.LogError(ctx, dev, vuid, "%s(): vkGetPhysicalDeviceImageFormatProperties() failed with %v for "+
			"format %d, usage 0x%x and flags 0x%x.", call, res, ici.Format, ici.Usage, ici.Flags)
	}
	skip := false
	if ci.ImageArrayLayers > props.MaxArrayLayers {
		skip = rep.LogError(ctx, dev, vuid, "%s(): imageArrayLayers %d is above the %d supported for imageFormat %d.",
			call, ci.ImageArrayLayers, props.MaxArrayLayers, ci.ImageFormat) || skip
	}
	if ci.ImageExtent.Width > props.MaxExtent.Width || ci.ImageExtent.Height > props.MaxExtent.Height {
		skip = rep.LogError(ctx, dev, vuid, "%s(): imageExtent (%d, %d) is above the maximum extent (%d, %d) of imageFormat %d.",
			call, ci.ImageExtent.Width, ci.ImageExtent.Height, props.MaxExtent.Width, props.MaxExtent.Height, ci.ImageFormat) || skip
	}
	return skip
}
