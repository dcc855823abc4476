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
	"sync"

	"github.com/google/vkstate/core/log"
	"github.com/google/vkstate/layer/caps"
	"github.com/google/vkstate/layer/registry"
	"github.com/google/vkstate/layer/report"
	"github.com/google/vkstate/layer/vulkan"
)

// Surface is the state of a VkSurfaceKHR.
type Surface struct {
	registry.Node
	// Display holds the creation parameters of a display plane surface.
	Display *vulkan.VkDisplaySurfaceCreateInfoKHR

	mu        sync.Mutex
	swapchain *Swapchain
}

// VkSurface returns the handle of the surface.
func (s *Surface) VkSurface() vulkan.VkSurfaceKHR { return s.Handle().(vulkan.VkSurfaceKHR) }

// Swapchain returns the swapchain currently presenting to the surface.
func (s *Surface) Swapchain() *Swapchain {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.swapchain
}

func (s *Surface) setSwapchain(sc *Swapchain) {
	s.mu.Lock()
	s.swapchain = sc
	s.mu.Unlock()
}

// releaseSwapchain forgets sc if it is still the swapchain of the surface.
func (s *Surface) releaseSwapchain(sc *Swapchain) {
	s.mu.Lock()
	if s.swapchain == sc {
		s.swapchain = nil
	}
	s.mu.Unlock()
}

// CreateSurface records a surface created by one of the platform specific
// vkCreate*SurfaceKHR calls.
func (t *Tracker) CreateSurface(ctx context.Context, h vulkan.VkSurfaceKHR) *Surface {
	s := &Surface{}
	s.Init(h)
	t.reg().Add(s)
	log.D(ctx, "Surface %v created", vulkan.HandleString(h))
	return s
}

// ValidateCreateDisplayPlaneSurface checks a vkCreateDisplayPlaneSurfaceKHR
// call.
func (t *Tracker) ValidateCreateDisplayPlaneSurface(ctx context.Context, ci vulkan.VkDisplaySurfaceCreateInfoKHR) bool {
	skip := false
	objs := report.Objs(ci.DisplayMode)
	if ci.AlphaMode == vulkan.VkDisplayPlaneAlphaFlagBitsKHR_VK_DISPLAY_PLANE_ALPHA_GLOBAL_BIT_KHR &&
		(ci.GlobalAlpha < 0 || ci.GlobalAlpha > 1) {
		skip = t.rep().LogError(ctx, objs, "VUID-VkDisplaySurfaceCreateInfoKHR-alphaMode-01254",
			"vkCreateDisplayPlaneSurfaceKHR(): alphaMode is VK_DISPLAY_PLANE_ALPHA_GLOBAL_BIT_KHR but globalAlpha is %f.",
			ci.GlobalAlpha) || skip
	}

	limit := t.caps().Limits().MaxImageDimension2D
	if ci.ImageExtent.Width >= limit {
		skip = t.rep().LogError(ctx, objs, "VUID-VkDisplaySurfaceCreateInfoKHR-width-01256",
			"vkCreateDisplayPlaneSurfaceKHR(): width (%d) exceeds device limit maxImageDimension2D (%d).",
			ci.ImageExtent.Width, limit) || skip
	}
	if ci.ImageExtent.Height >= limit {
		skip = t.rep().LogError(ctx, objs, "VUID-VkDisplaySurfaceCreateInfoKHR-width-01256",
			"vkCreateDisplayPlaneSurfaceKHR(): height (%d) exceeds device limit maxImageDimension2D (%d).",
			ci.ImageExtent.Height, limit) || skip
	}

	planes, queried := t.planeCount()
	if !queried {
		return skip
	}
	if int(ci.PlaneIndex) >= planes {
		return t.rep().LogError(ctx, objs, "VUID-VkDisplaySurfaceCreateInfoKHR-planeIndex-01252",
			"vkCreateDisplayPlaneSurfaceKHR(): planeIndex (%d) must be less than the %d planes returned by "+
				"vkGetPhysicalDeviceDisplayPlanePropertiesKHR.", ci.PlaneIndex, planes) || skip
	}
	supported := t.caps().DisplayPlaneCapabilities(ci.DisplayMode, ci.PlaneIndex).SupportedAlpha
	if vulkan.VkDisplayPlaneAlphaFlagsKHR(ci.AlphaMode)&supported == 0 {
		skip = t.rep().LogError(ctx, objs, "VUID-VkDisplaySurfaceCreateInfoKHR-alphaMode-01255",
			"vkCreateDisplayPlaneSurfaceKHR(): alphaMode 0x%x is not in the supportedAlpha (0x%x) of plane %d.",
			ci.AlphaMode, supported, ci.PlaneIndex) || skip
	}
	return skip
}

// CreateDisplayPlaneSurface records a surface created by
// vkCreateDisplayPlaneSurfaceKHR.
func (t *Tracker) CreateDisplayPlaneSurface(ctx context.Context, ci vulkan.VkDisplaySurfaceCreateInfoKHR, h vulkan.VkSurfaceKHR) *Surface {
	s := t.CreateSurface(ctx, h)
	s.Display = &vulkan.VkDisplaySurfaceCreateInfoKHR{}
	*s.Display = ci
	return s
}

// ValidateDestroySurface checks that no swapchain still presents to the
// surface.
func (t *Tracker) ValidateDestroySurface(ctx context.Context, h vulkan.VkSurfaceKHR) bool {
	s := t.Surface(h)
	if s == nil {
		return false
	}
	sc := s.Swapchain()
	if sc == nil {
		return false
	}
	return t.rep().LogError(ctx, report.Objs(h, sc.Handle()), "VUID-vkDestroySurfaceKHR-surface-01266",
		"vkDestroySurfaceKHR(): %v is destroyed before its swapchain %v.",
		vulkan.HandleString(h), vulkan.HandleString(sc.Handle()))
}

// DestroySurface forgets the surface.
func (t *Tracker) DestroySurface(ctx context.Context, h vulkan.VkSurfaceKHR) {
	if s := registry.Remove[*Surface](t.reg(), h); s != nil {
		s.Destroy(ctx)
	}
}

// ValidateGetPhysicalDeviceSurfaceSupport checks the queue family index of a
// vkGetPhysicalDeviceSurfaceSupportKHR call.
func (t *Tracker) ValidateGetPhysicalDeviceSurfaceSupport(ctx context.Context, family uint32, s vulkan.VkSurfaceKHR) bool {
	count := len(t.caps().QueueFamilyProperties())
	if int(family) < count {
		return false
	}
	return t.rep().LogError(ctx, report.Objs(s), "VUID-vkGetPhysicalDeviceSurfaceSupportKHR-queueFamilyIndex-01269",
		"vkGetPhysicalDeviceSurfaceSupportKHR(): queueFamilyIndex (%d) is not less than the %d queue families of the device.",
		family, count)
}

// ValidateSurfaceQuery checks that one of the queue families of the device
// can present to the surface passed to a surface capability, format or
// present mode query. vuid is the identifier for the named call.
func (t *Tracker) ValidateSurfaceQuery(ctx context.Context, call, vuid string, s vulkan.VkSurfaceKHR) bool {
	if t.Surface(s) == nil || caps.AnySurfaceSupport(t.caps(), s) {
		return false
	}
	return t.rep().LogError(ctx, report.Objs(s), vuid, "%s(): %v is not supported by the physical device.",
		call, vulkan.HandleString(s))
}

// GetPhysicalDeviceDisplayPlaneProperties records the number of display
// planes returned to the application.
func (t *Tracker) GetPhysicalDeviceDisplayPlaneProperties(ctx context.Context, props []vulkan.VkDisplayPlanePropertiesKHR) {
	t.mu.Lock()
	t.planes = len(props)
	t.mu.Unlock()
}

func (t *Tracker) planeCount() (int, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.planes, t.planes >= 0
}

// ValidateDisplayPlaneIndex checks the plane index of
// vkGetDisplayPlaneSupportedDisplaysKHR and vkGetDisplayPlaneCapabilitiesKHR
// against the planes previously returned to the application.
func (t *Tracker) ValidateDisplayPlaneIndex(ctx context.Context, call string, plane uint32) bool {
	planes, queried := t.planeCount()
	if !queried || int(plane) < planes {
		return false
	}
	return t.rep().LogError(ctx, nil, "VUID-vkGetDisplayPlaneSupportedDisplaysKHR-planeIndex-01249",
		"%s(): planeIndex (%d) must be less than the %d planes returned by "+
			"vkGetPhysicalDeviceDisplayPlanePropertiesKHR.", call, plane, planes)
}
