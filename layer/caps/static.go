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

package caps

import (
	"github.com/google/vkstate/layer/vulkan"
)

// Static is a Provider that answers from a Profile.
type Static struct {
	profile    Profile
	extensions map[string]bool
	formats    map[vulkan.VkFormat]Format
}

var _ Provider = (*Static)(nil)

// NewStatic returns a Provider for the profile p.
func NewStatic(p Profile) *Static {
	s := &Static{
		profile:    p,
		extensions: map[string]bool{},
		formats:    map[vulkan.VkFormat]Format{},
	}
	for _, e := range p.Extensions {
		s.extensions[e] = true
	}
	for _, f := range p.Formats {
		s.formats[f.Format] = f
	}
	return s
}

// Profile returns the profile the provider answers from.
func (s *Static) Profile() Profile { return s.profile }

func (s *Static) PhysicalDeviceCount() uint32 {
	if s.profile.PhysicalDevices == 0 {
		return 1
	}
	return s.profile.PhysicalDevices
}

func (s *Static) QueueFamilyProperties() []vulkan.VkQueueFamilyProperties {
	out := make([]vulkan.VkQueueFamilyProperties, len(s.profile.QueueFamilies))
	for i, f := range s.profile.QueueFamilies {
		out[i] = vulkan.VkQueueFamilyProperties{QueueFlags: f.Flags, QueueCount: f.Count}
	}
	return out
}

func (s *Static) Limits() vulkan.VkPhysicalDeviceLimits {
	return vulkan.VkPhysicalDeviceLimits{MaxImageDimension2D: s.profile.MaxImageDimension2D}
}

func (s *Static) HasExtension(name string) bool { return s.extensions[name] }

func (s *Static) Features() Features { return s.profile.Features }

func (s *Static) surface(h vulkan.VkSurfaceKHR) Surface {
	for _, o := range s.profile.Surfaces {
		if o.Handle == uint64(h) {
			return o
		}
	}
	return s.profile.Surface
}

func (s *Static) SurfaceCapabilities(h vulkan.VkSurfaceKHR) vulkan.VkSurfaceCapabilitiesKHR {
	sf := s.surface(h)
	return vulkan.VkSurfaceCapabilitiesKHR{
		MinImageCount:           sf.MinImageCount,
		MaxImageCount:           sf.MaxImageCount,
		CurrentExtent:           sf.CurrentExtent.vk(),
		MinImageExtent:          sf.MinExtent.vk(),
		MaxImageExtent:          sf.MaxExtent.vk(),
		MaxImageArrayLayers:     sf.MaxArrayLayers,
		SupportedTransforms:     sf.Transforms,
		CurrentTransform:        sf.CurrentTransform,
		SupportedCompositeAlpha: sf.CompositeAlpha,
		SupportedUsageFlags:     sf.Usage,
	}
}

func (s *Static) SurfaceFormats(h vulkan.VkSurfaceKHR) []vulkan.VkSurfaceFormatKHR {
	sf := s.surface(h)
	out := make([]vulkan.VkSurfaceFormatKHR, len(sf.Formats))
	for i, f := range sf.Formats {
		out[i] = vulkan.VkSurfaceFormatKHR{Format: f.Format, ColorSpace: f.ColorSpace}
	}
	return out
}

func (s *Static) SurfacePresentModes(h vulkan.VkSurfaceKHR) []vulkan.VkPresentModeKHR {
	return append([]vulkan.VkPresentModeKHR{}, s.surface(h).PresentModes...)
}

func (s *Static) SurfaceSupport(family uint32, h vulkan.VkSurfaceKHR) bool {
	if int(family) >= len(s.profile.QueueFamilies) {
		return false
	}
	if fams := s.surface(h).PresentFamilies; len(fams) > 0 {
		for _, f := range fams {
			if f == family {
				return true
			}
		}
		return false
	}
	return s.profile.QueueFamilies[family].Present
}

func (s *Static) SharedPresentSurfaceUsage(h vulkan.VkSurfaceKHR) vulkan.VkImageUsageFlags {
	return s.surface(h).SharedUsage
}

func (s *Static) ProtectedSurface(h vulkan.VkSurfaceKHR) bool { return s.surface(h).Protected }

func (s *Static) FormatProperties(f vulkan.VkFormat) vulkan.VkFormatProperties {
	p, ok := s.formats[f]
	if !ok {
		p = s.profile.FormatFeatures
	}
	return vulkan.VkFormatProperties{LinearTilingFeatures: p.Linear, OptimalTilingFeatures: p.Optimal}
}

func (s *Static) ImageFormatProperties(f vulkan.VkFormat, ty vulkan.VkImageType, tiling vulkan.VkImageTiling,
	usage vulkan.VkImageUsageFlags, flags vulkan.VkImageCreateFlags) (vulkan.VkImageFormatProperties, vulkan.VkResult) {

	l := s.profile.ImageFormat
	for _, u := range l.Unsupported {
		if u == f {
			return vulkan.VkImageFormatProperties{}, vulkan.VkResult_VK_ERROR_FORMAT_NOT_SUPPORTED
		}
	}
	depth := uint32(1)
	if ty == vulkan.VkImageType_VK_IMAGE_TYPE_3D {
		depth = l.MaxWidth
	}
	return vulkan.VkImageFormatProperties{
		MaxExtent:      vulkan.VkExtent3D{Width: l.MaxWidth, Height: l.MaxHeight, Depth: depth},
		MaxMipLevels:   l.MaxMipLevels,
		MaxArrayLayers: l.MaxArrayLayers,
		SampleCounts:   1,
	}, vulkan.VkResult_VK_SUCCESS
}

func (s *Static) DisplayPlaneProperties() []vulkan.VkDisplayPlanePropertiesKHR {
	out := make([]vulkan.VkDisplayPlanePropertiesKHR, len(s.profile.DisplayPlanes))
	for i, p := range s.profile.DisplayPlanes {
		out[i] = vulkan.VkDisplayPlanePropertiesKHR{CurrentDisplay: p.CurrentDisplay, CurrentStackIndex: p.StackIndex}
	}
	return out
}

func (s *Static) DisplayPlaneSupportedDisplays(plane uint32) []vulkan.VkDisplayKHR {
	if int(plane) >= len(s.profile.DisplayPlanes) {
		return nil
	}
	return append([]vulkan.VkDisplayKHR{}, s.profile.DisplayPlanes[plane].Displays...)
}

func (s *Static) DisplayPlaneCapabilities(mode vulkan.VkDisplayModeKHR, plane uint32) vulkan.VkDisplayPlaneCapabilitiesKHR {
	if int(plane) >= len(s.profile.DisplayPlanes) {
		return vulkan.VkDisplayPlaneCapabilitiesKHR{}
	}
	return vulkan.VkDisplayPlaneCapabilitiesKHR{SupportedAlpha: s.profile.DisplayPlanes[plane].SupportedAlpha}
}
