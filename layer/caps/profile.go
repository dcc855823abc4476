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
	"github.com/google/vkstate/layer/config"
	"github.com/google/vkstate/layer/vulkan"
)

// Profile describes a physical device as data. Profiles are read from YAML or
// TOML files with Load.
type Profile struct {
	Name            string        `yaml:"name" toml:"name"`
	PhysicalDevices uint32        `yaml:"physical_devices" toml:"physical_devices"`
	Extensions      []string      `yaml:"extensions" toml:"extensions"`
	Features        Features      `yaml:"features" toml:"features"`
	QueueFamilies   []QueueFamily `yaml:"queue_families" toml:"queue_families"`
	// MaxImageDimension2D is the only device limit consulted.
	MaxImageDimension2D uint32 `yaml:"max_image_dimension_2d" toml:"max_image_dimension_2d"`
	// Surface applies to every surface without an entry in Surfaces.
	Surface  Surface   `yaml:"surface" toml:"surface"`
	Surfaces []Surface `yaml:"surfaces" toml:"surfaces"`
	// FormatFeatures applies to every format without an entry in Formats.
	FormatFeatures Format         `yaml:"format_features" toml:"format_features"`
	Formats        []Format       `yaml:"formats" toml:"formats"`
	ImageFormat    ImageFormat    `yaml:"image_format" toml:"image_format"`
	DisplayPlanes  []DisplayPlane `yaml:"display_planes" toml:"display_planes"`
}

// QueueFamily is one queue family of the device.
type QueueFamily struct {
	Flags vulkan.VkQueueFlags `yaml:"flags" toml:"flags"`
	Count uint32              `yaml:"count" toml:"count"`
	// Present is true if the family can present to surfaces that do not
	// list their present families.
	Present bool `yaml:"present" toml:"present"`
}

// Extent is a two dimensional size.
type Extent struct {
	Width  uint32 `yaml:"width" toml:"width"`
	Height uint32 `yaml:"height" toml:"height"`
}

func (e Extent) vk() vulkan.VkExtent2D { return vulkan.VkExtent2D{Width: e.Width, Height: e.Height} }

// SurfaceFormat is a supported format and colour space pair.
type SurfaceFormat struct {
	Format     vulkan.VkFormat        `yaml:"format" toml:"format"`
	ColorSpace vulkan.VkColorSpaceKHR `yaml:"color_space" toml:"color_space"`
}

// Surface holds the capabilities of a presentation surface.
type Surface struct {
	// Handle selects the surface an override applies to.
	Handle           uint64                               `yaml:"handle,omitempty" toml:"handle,omitempty"`
	MinImageCount    uint32                               `yaml:"min_image_count" toml:"min_image_count"`
	MaxImageCount    uint32                               `yaml:"max_image_count" toml:"max_image_count"`
	CurrentExtent    Extent                               `yaml:"current_extent" toml:"current_extent"`
	MinExtent        Extent                               `yaml:"min_extent" toml:"min_extent"`
	MaxExtent        Extent                               `yaml:"max_extent" toml:"max_extent"`
	MaxArrayLayers   uint32                               `yaml:"max_array_layers" toml:"max_array_layers"`
	Transforms       vulkan.VkSurfaceTransformFlagsKHR    `yaml:"transforms" toml:"transforms"`
	CurrentTransform vulkan.VkSurfaceTransformFlagBitsKHR `yaml:"current_transform" toml:"current_transform"`
	CompositeAlpha   vulkan.VkCompositeAlphaFlagsKHR      `yaml:"composite_alpha" toml:"composite_alpha"`
	Usage            vulkan.VkImageUsageFlags             `yaml:"usage" toml:"usage"`
	SharedUsage      vulkan.VkImageUsageFlags             `yaml:"shared_present_usage" toml:"shared_present_usage"`
	Protected        bool                                 `yaml:"protected" toml:"protected"`
	Formats          []SurfaceFormat                      `yaml:"formats" toml:"formats"`
	PresentModes     []vulkan.VkPresentModeKHR            `yaml:"present_modes" toml:"present_modes"`
	// PresentFamilies lists the queue families that can present to the
	// surface. When empty the Present flag of each family is used.
	PresentFamilies []uint32 `yaml:"present_families,omitempty" toml:"present_families,omitempty"`
}

// Format holds the features of a format.
type Format struct {
	Format  vulkan.VkFormat             `yaml:"format,omitempty" toml:"format,omitempty"`
	Linear  vulkan.VkFormatFeatureFlags `yaml:"linear" toml:"linear"`
	Optimal vulkan.VkFormatFeatureFlags `yaml:"optimal" toml:"optimal"`
}

// ImageFormat holds the limits of every supported image.
type ImageFormat struct {
	MaxWidth       uint32            `yaml:"max_width" toml:"max_width"`
	MaxHeight      uint32            `yaml:"max_height" toml:"max_height"`
	MaxMipLevels   uint32            `yaml:"max_mip_levels" toml:"max_mip_levels"`
	MaxArrayLayers uint32            `yaml:"max_array_layers" toml:"max_array_layers"`
	Unsupported    []vulkan.VkFormat `yaml:"unsupported,omitempty" toml:"unsupported,omitempty"`
}

// DisplayPlane is one display plane of the device.
type DisplayPlane struct {
	CurrentDisplay vulkan.VkDisplayKHR                `yaml:"current_display" toml:"current_display"`
	StackIndex     uint32                             `yaml:"stack_index" toml:"stack_index"`
	Displays       []vulkan.VkDisplayKHR              `yaml:"displays" toml:"displays"`
	SupportedAlpha vulkan.VkDisplayPlaneAlphaFlagsKHR `yaml:"supported_alpha" toml:"supported_alpha"`
}

const (
	allFormatFeatures = vulkan.VkFormatFeatureFlags(
		vulkan.VkFormatFeatureFlagBits_VK_FORMAT_FEATURE_SAMPLED_IMAGE_BIT |
			vulkan.VkFormatFeatureFlagBits_VK_FORMAT_FEATURE_STORAGE_IMAGE_BIT |
			vulkan.VkFormatFeatureFlagBits_VK_FORMAT_FEATURE_COLOR_ATTACHMENT_BIT |
			vulkan.VkFormatFeatureFlagBits_VK_FORMAT_FEATURE_TRANSFER_SRC_BIT |
			vulkan.VkFormatFeatureFlagBits_VK_FORMAT_FEATURE_TRANSFER_DST_BIT)

	swapchainUsage = vulkan.VkImageUsageFlags(
		vulkan.VkImageUsageFlagBits_VK_IMAGE_USAGE_TRANSFER_SRC_BIT |
			vulkan.VkImageUsageFlagBits_VK_IMAGE_USAGE_TRANSFER_DST_BIT |
			vulkan.VkImageUsageFlagBits_VK_IMAGE_USAGE_SAMPLED_BIT |
			vulkan.VkImageUsageFlagBits_VK_IMAGE_USAGE_STORAGE_BIT |
			vulkan.VkImageUsageFlagBits_VK_IMAGE_USAGE_COLOR_ATTACHMENT_BIT)
)

// Default returns the profile of a single desktop class device with one
// universal queue family and a 1280x720 window surface.
func Default() Profile {
	return Profile{
		Name:            "default",
		PhysicalDevices: 1,
		Extensions: []string{
			vulkan.VK_KHR_synchronization2,
			vulkan.VK_KHR_dynamic_rendering,
			vulkan.VK_KHR_incremental_present,
		},
		Features: Features{Synchronization2: true, DynamicRendering: true},
		QueueFamilies: []QueueFamily{
			{
				Flags: vulkan.VkQueueFlags(vulkan.VkQueueFlagBits_VK_QUEUE_GRAPHICS_BIT |
					vulkan.VkQueueFlagBits_VK_QUEUE_COMPUTE_BIT |
					vulkan.VkQueueFlagBits_VK_QUEUE_TRANSFER_BIT),
				Count:   4,
				Present: true,
			},
			{
				Flags: vulkan.VkQueueFlags(vulkan.VkQueueFlagBits_VK_QUEUE_COMPUTE_BIT |
					vulkan.VkQueueFlagBits_VK_QUEUE_TRANSFER_BIT),
				Count: 2,
			},
			{
				Flags: vulkan.VkQueueFlags(vulkan.VkQueueFlagBits_VK_QUEUE_TRANSFER_BIT),
				Count: 1,
			},
		},
		MaxImageDimension2D: 16384,
		Surface: Surface{
			MinImageCount:  2,
			MaxImageCount:  8,
			CurrentExtent:  Extent{1280, 720},
			MinExtent:      Extent{1, 1},
			MaxExtent:      Extent{4096, 4096},
			MaxArrayLayers: 1,
			Transforms: vulkan.VkSurfaceTransformFlagsKHR(
				vulkan.VkSurfaceTransformFlagBitsKHR_VK_SURFACE_TRANSFORM_IDENTITY_BIT_KHR |
					vulkan.VkSurfaceTransformFlagBitsKHR_VK_SURFACE_TRANSFORM_ROTATE_90_BIT_KHR |
					vulkan.VkSurfaceTransformFlagBitsKHR_VK_SURFACE_TRANSFORM_ROTATE_180_BIT_KHR |
					vulkan.VkSurfaceTransformFlagBitsKHR_VK_SURFACE_TRANSFORM_ROTATE_270_BIT_KHR),
			CurrentTransform: vulkan.VkSurfaceTransformFlagBitsKHR_VK_SURFACE_TRANSFORM_IDENTITY_BIT_KHR,
			CompositeAlpha: vulkan.VkCompositeAlphaFlagsKHR(
				vulkan.VkCompositeAlphaFlagBitsKHR_VK_COMPOSITE_ALPHA_OPAQUE_BIT_KHR),
			Usage:       swapchainUsage,
			SharedUsage: vulkan.VkImageUsageFlags(vulkan.VkImageUsageFlagBits_VK_IMAGE_USAGE_COLOR_ATTACHMENT_BIT),
			Formats: []SurfaceFormat{
				{vulkan.VkFormat_VK_FORMAT_B8G8R8A8_UNORM, vulkan.VkColorSpaceKHR_VK_COLOR_SPACE_SRGB_NONLINEAR_KHR},
				{vulkan.VkFormat_VK_FORMAT_B8G8R8A8_SRGB, vulkan.VkColorSpaceKHR_VK_COLOR_SPACE_SRGB_NONLINEAR_KHR},
				{vulkan.VkFormat_VK_FORMAT_R8G8B8A8_UNORM, vulkan.VkColorSpaceKHR_VK_COLOR_SPACE_SRGB_NONLINEAR_KHR},
			},
			PresentModes: []vulkan.VkPresentModeKHR{
				vulkan.VkPresentModeKHR_VK_PRESENT_MODE_FIFO_KHR,
				vulkan.VkPresentModeKHR_VK_PRESENT_MODE_MAILBOX_KHR,
				vulkan.VkPresentModeKHR_VK_PRESENT_MODE_IMMEDIATE_KHR,
			},
		},
		FormatFeatures: Format{
			Linear:  allFormatFeatures,
			Optimal: allFormatFeatures,
		},
		Formats: []Format{
			{
				Format: vulkan.VkFormat_VK_FORMAT_D24_UNORM_S8_UINT,
				Optimal: vulkan.VkFormatFeatureFlags(
					vulkan.VkFormatFeatureFlagBits_VK_FORMAT_FEATURE_SAMPLED_IMAGE_BIT |
						vulkan.VkFormatFeatureFlagBits_VK_FORMAT_FEATURE_DEPTH_STENCIL_ATTACHMENT_BIT |
						vulkan.VkFormatFeatureFlagBits_VK_FORMAT_FEATURE_TRANSFER_SRC_BIT |
						vulkan.VkFormatFeatureFlagBits_VK_FORMAT_FEATURE_TRANSFER_DST_BIT),
			},
		},
		ImageFormat: ImageFormat{
			MaxWidth:       16384,
			MaxHeight:      16384,
			MaxMipLevels:   15,
			MaxArrayLayers: 2048,
		},
		DisplayPlanes: []DisplayPlane{
			{
				CurrentDisplay: 1,
				Displays:       []vulkan.VkDisplayKHR{1},
				SupportedAlpha: vulkan.VkDisplayPlaneAlphaFlagsKHR(
					vulkan.VkDisplayPlaneAlphaFlagBitsKHR_VK_DISPLAY_PLANE_ALPHA_OPAQUE_BIT_KHR |
						vulkan.VkDisplayPlaneAlphaFlagBitsKHR_VK_DISPLAY_PLANE_ALPHA_GLOBAL_BIT_KHR),
			},
		},
	}
}

// Load reads a profile from the YAML or TOML file at path. Sections missing
// from the file keep the values of the default profile.
func Load(path string) (*Static, error) {
	p := Default()
	if err := config.ReadFile(path, &p); err != nil {
		return nil, err
	}
	return NewStatic(p), nil
}
