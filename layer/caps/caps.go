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

// Package caps answers the physical device and surface capability queries
// the validation needs.
package caps

import "github.com/google/vkstate/layer/vulkan"

// Provider is the read-only view of the physical device capabilities.
type Provider interface {
	// PhysicalDeviceCount is the number of physical devices in the device
	// group of the logical device.
	PhysicalDeviceCount() uint32
	QueueFamilyProperties() []vulkan.VkQueueFamilyProperties
	Limits() vulkan.VkPhysicalDeviceLimits
	// HasExtension returns true if the named device or instance extension is
	// enabled.
	HasExtension(name string) bool
	Features() Features

	SurfaceCapabilities(s vulkan.VkSurfaceKHR) vulkan.VkSurfaceCapabilitiesKHR
	SurfaceFormats(s vulkan.VkSurfaceKHR) []vulkan.VkSurfaceFormatKHR
	SurfacePresentModes(s vulkan.VkSurfaceKHR) []vulkan.VkPresentModeKHR
	SurfaceSupport(queueFamily uint32, s vulkan.VkSurfaceKHR) bool
	// SharedPresentSurfaceUsage is the usage supported for the shared
	// presentable image modes.
	SharedPresentSurfaceUsage(s vulkan.VkSurfaceKHR) vulkan.VkImageUsageFlags
	// ProtectedSurface returns true if swapchains on s may be protected.
	ProtectedSurface(s vulkan.VkSurfaceKHR) bool

	FormatProperties(f vulkan.VkFormat) vulkan.VkFormatProperties
	// ImageFormatProperties returns the limits for images created with the
	// given parameters, or a failure result if the combination is not
	// supported.
	ImageFormatProperties(f vulkan.VkFormat, ty vulkan.VkImageType, tiling vulkan.VkImageTiling,
		usage vulkan.VkImageUsageFlags, flags vulkan.VkImageCreateFlags) (vulkan.VkImageFormatProperties, vulkan.VkResult)

	DisplayPlaneProperties() []vulkan.VkDisplayPlanePropertiesKHR
	DisplayPlaneSupportedDisplays(plane uint32) []vulkan.VkDisplayKHR
	DisplayPlaneCapabilities(mode vulkan.VkDisplayModeKHR, plane uint32) vulkan.VkDisplayPlaneCapabilitiesKHR
}

// Features are the enabled device features the validation consults.
type Features struct {
	PresentID        bool `yaml:"present_id" toml:"present_id"`
	PresentWait      bool `yaml:"present_wait" toml:"present_wait"`
	Synchronization2 bool `yaml:"synchronization2" toml:"synchronization2"`
	DynamicRendering bool `yaml:"dynamic_rendering" toml:"dynamic_rendering"`
}

// QueueFamilyFlags returns the capability flags of the queue family, or zero
// if the index is out of range.
func QueueFamilyFlags(p Provider, family uint32) vulkan.VkQueueFlags {
	props := p.QueueFamilyProperties()
	if int(family) >= len(props) {
		return 0
	}
	return props[family].QueueFlags
}

// AnySurfaceSupport returns true if any queue family can present to s.
func AnySurfaceSupport(p Provider, s vulkan.VkSurfaceKHR) bool {
	for i := range p.QueueFamilyProperties() {
		if p.SurfaceSupport(uint32(i), s) {
			return true
		}
	}
	return false
}
