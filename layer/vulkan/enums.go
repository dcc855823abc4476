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

package vulkan

import "fmt"

type VkResult int32

const (
	VkResult_VK_SUCCESS                        VkResult = 0
	VkResult_VK_NOT_READY                      VkResult = 1
	VkResult_VK_TIMEOUT                        VkResult = 2
	VkResult_VK_INCOMPLETE                     VkResult = 5
	VkResult_VK_ERROR_OUT_OF_HOST_MEMORY       VkResult = -1
	VkResult_VK_ERROR_OUT_OF_DEVICE_MEMORY     VkResult = -2
	VkResult_VK_ERROR_INITIALIZATION_FAILED    VkResult = -3
	VkResult_VK_ERROR_DEVICE_LOST              VkResult = -4
	VkResult_VK_ERROR_FORMAT_NOT_SUPPORTED     VkResult = -11
	VkResult_VK_ERROR_SURFACE_LOST_KHR         VkResult = -1000000000
	VkResult_VK_ERROR_NATIVE_WINDOW_IN_USE_KHR VkResult = -1000000001
	VkResult_VK_SUBOPTIMAL_KHR                 VkResult = 1000001003
	VkResult_VK_ERROR_OUT_OF_DATE_KHR          VkResult = -1000001004
	VkResult_VK_ERROR_VALIDATION_FAILED_EXT    VkResult = -1000011001
)

var vkResultNames = map[VkResult]string{
	VkResult_VK_SUCCESS:                        "VK_SUCCESS",
	VkResult_VK_NOT_READY:                      "VK_NOT_READY",
	VkResult_VK_TIMEOUT:                        "VK_TIMEOUT",
	VkResult_VK_INCOMPLETE:                     "VK_INCOMPLETE",
	VkResult_VK_ERROR_OUT_OF_HOST_MEMORY:       "VK_ERROR_OUT_OF_HOST_MEMORY",
	VkResult_VK_ERROR_OUT_OF_DEVICE_MEMORY:     "VK_ERROR_OUT_OF_DEVICE_MEMORY",
	VkResult_VK_ERROR_INITIALIZATION_FAILED:    "VK_ERROR_INITIALIZATION_FAILED",
	VkResult_VK_ERROR_DEVICE_LOST:              "VK_ERROR_DEVICE_LOST",
	VkResult_VK_ERROR_FORMAT_NOT_SUPPORTED:     "VK_ERROR_FORMAT_NOT_SUPPORTED",
	VkResult_VK_ERROR_SURFACE_LOST_KHR:         "VK_ERROR_SURFACE_LOST_KHR",
	VkResult_VK_ERROR_NATIVE_WINDOW_IN_USE_KHR: "VK_ERROR_NATIVE_WINDOW_IN_USE_KHR",
	VkResult_VK_SUBOPTIMAL_KHR:                 "VK_SUBOPTIMAL_KHR",
	VkResult_VK_ERROR_OUT_OF_DATE_KHR:          "VK_ERROR_OUT_OF_DATE_KHR",
	VkResult_VK_ERROR_VALIDATION_FAILED_EXT:    "VK_ERROR_VALIDATION_FAILED_EXT",
}

func (r VkResult) String() string {
	if n, ok := vkResultNames[r]; ok {
		return n
	}
	return fmt.Sprintf("VkResult(%d)", int32(r))
}

// Succeeded returns true for VK_SUCCESS and the positive success codes.
func (r VkResult) Succeeded() bool { return r >= 0 }

// ParseResult returns the VkResult named name, such as "VK_SUCCESS".
func ParseResult(name string) (VkResult, bool) {
	for r, n := range vkResultNames {
		if n == name {
			return r, true
		}
	}
	return 0, false
}

type VkImageLayout uint32

const (
	VkImageLayout_VK_IMAGE_LAYOUT_UNDEFINED                        VkImageLayout = 0
	VkImageLayout_VK_IMAGE_LAYOUT_GENERAL                          VkImageLayout = 1
	VkImageLayout_VK_IMAGE_LAYOUT_COLOR_ATTACHMENT_OPTIMAL         VkImageLayout = 2
	VkImageLayout_VK_IMAGE_LAYOUT_DEPTH_STENCIL_ATTACHMENT_OPTIMAL VkImageLayout = 3
	VkImageLayout_VK_IMAGE_LAYOUT_DEPTH_STENCIL_READ_ONLY_OPTIMAL  VkImageLayout = 4
	VkImageLayout_VK_IMAGE_LAYOUT_SHADER_READ_ONLY_OPTIMAL         VkImageLayout = 5
	VkImageLayout_VK_IMAGE_LAYOUT_TRANSFER_SRC_OPTIMAL             VkImageLayout = 6
	VkImageLayout_VK_IMAGE_LAYOUT_TRANSFER_DST_OPTIMAL             VkImageLayout = 7
	VkImageLayout_VK_IMAGE_LAYOUT_PREINITIALIZED                   VkImageLayout = 8
	VkImageLayout_VK_IMAGE_LAYOUT_PRESENT_SRC_KHR                  VkImageLayout = 1000001002
	VkImageLayout_VK_IMAGE_LAYOUT_SHARED_PRESENT_KHR               VkImageLayout = 1000111000
	VkImageLayout_VK_IMAGE_LAYOUT_ATTACHMENT_OPTIMAL               VkImageLayout = 1000314001

	// VkImageLayout_VK_IMAGE_LAYOUT_MAX_ENUM marks "no layout" in layout
	// tracking. It is never a legal layout for a command.
	VkImageLayout_VK_IMAGE_LAYOUT_MAX_ENUM VkImageLayout = 0x7FFFFFFF
)

var vkImageLayoutNames = map[VkImageLayout]string{
	VkImageLayout_VK_IMAGE_LAYOUT_UNDEFINED:                        "VK_IMAGE_LAYOUT_UNDEFINED",
	VkImageLayout_VK_IMAGE_LAYOUT_GENERAL:                          "VK_IMAGE_LAYOUT_GENERAL",
	VkImageLayout_VK_IMAGE_LAYOUT_COLOR_ATTACHMENT_OPTIMAL:         "VK_IMAGE_LAYOUT_COLOR_ATTACHMENT_OPTIMAL",
	VkImageLayout_VK_IMAGE_LAYOUT_DEPTH_STENCIL_ATTACHMENT_OPTIMAL: "VK_IMAGE_LAYOUT_DEPTH_STENCIL_ATTACHMENT_OPTIMAL",
	VkImageLayout_VK_IMAGE_LAYOUT_DEPTH_STENCIL_READ_ONLY_OPTIMAL:  "VK_IMAGE_LAYOUT_DEPTH_STENCIL_READ_ONLY_OPTIMAL",
	VkImageLayout_VK_IMAGE_LAYOUT_SHADER_READ_ONLY_OPTIMAL:         "VK_IMAGE_LAYOUT_SHADER_READ_ONLY_OPTIMAL",
	VkImageLayout_VK_IMAGE_LAYOUT_TRANSFER_SRC_OPTIMAL:             "VK_IMAGE_LAYOUT_TRANSFER_SRC_OPTIMAL",
	VkImageLayout_VK_IMAGE_LAYOUT_TRANSFER_DST_OPTIMAL:             "VK_IMAGE_LAYOUT_TRANSFER_DST_OPTIMAL",
	VkImageLayout_VK_IMAGE_LAYOUT_PREINITIALIZED:                   "VK_IMAGE_LAYOUT_PREINITIALIZED",
	VkImageLayout_VK_IMAGE_LAYOUT_PRESENT_SRC_KHR:                  "VK_IMAGE_LAYOUT_PRESENT_SRC_KHR",
	VkImageLayout_VK_IMAGE_LAYOUT_SHARED_PRESENT_KHR:               "VK_IMAGE_LAYOUT_SHARED_PRESENT_KHR",
	VkImageLayout_VK_IMAGE_LAYOUT_ATTACHMENT_OPTIMAL:               "VK_IMAGE_LAYOUT_ATTACHMENT_OPTIMAL",
	VkImageLayout_VK_IMAGE_LAYOUT_MAX_ENUM:                         "VK_IMAGE_LAYOUT_MAX_ENUM",
}

func (l VkImageLayout) String() string {
	if n, ok := vkImageLayoutNames[l]; ok {
		return n
	}
	return fmt.Sprintf("VkImageLayout(%d)", uint32(l))
}

type VkImageAspectFlagBits uint32
type VkImageAspectFlags uint32

const (
	VkImageAspectFlagBits_VK_IMAGE_ASPECT_COLOR_BIT    VkImageAspectFlagBits = 0x1
	VkImageAspectFlagBits_VK_IMAGE_ASPECT_DEPTH_BIT    VkImageAspectFlagBits = 0x2
	VkImageAspectFlagBits_VK_IMAGE_ASPECT_STENCIL_BIT  VkImageAspectFlagBits = 0x4
	VkImageAspectFlagBits_VK_IMAGE_ASPECT_METADATA_BIT VkImageAspectFlagBits = 0x8
	VkImageAspectFlagBits_VK_IMAGE_ASPECT_PLANE_0_BIT  VkImageAspectFlagBits = 0x10
	VkImageAspectFlagBits_VK_IMAGE_ASPECT_PLANE_1_BIT  VkImageAspectFlagBits = 0x20
	VkImageAspectFlagBits_VK_IMAGE_ASPECT_PLANE_2_BIT  VkImageAspectFlagBits = 0x40
)

type VkCommandPoolCreateFlagBits uint32
type VkCommandPoolCreateFlags uint32

const (
	VkCommandPoolCreateFlagBits_VK_COMMAND_POOL_CREATE_TRANSIENT_BIT            VkCommandPoolCreateFlagBits = 0x1
	VkCommandPoolCreateFlagBits_VK_COMMAND_POOL_CREATE_RESET_COMMAND_BUFFER_BIT VkCommandPoolCreateFlagBits = 0x2
	VkCommandPoolCreateFlagBits_VK_COMMAND_POOL_CREATE_PROTECTED_BIT            VkCommandPoolCreateFlagBits = 0x4
)

type VkCommandBufferLevel uint32

const (
	VkCommandBufferLevel_VK_COMMAND_BUFFER_LEVEL_PRIMARY   VkCommandBufferLevel = 0
	VkCommandBufferLevel_VK_COMMAND_BUFFER_LEVEL_SECONDARY VkCommandBufferLevel = 1
)

type VkCommandBufferUsageFlagBits uint32
type VkCommandBufferUsageFlags uint32

const (
	VkCommandBufferUsageFlagBits_VK_COMMAND_BUFFER_USAGE_ONE_TIME_SUBMIT_BIT      VkCommandBufferUsageFlagBits = 0x1
	VkCommandBufferUsageFlagBits_VK_COMMAND_BUFFER_USAGE_RENDER_PASS_CONTINUE_BIT VkCommandBufferUsageFlagBits = 0x2
	VkCommandBufferUsageFlagBits_VK_COMMAND_BUFFER_USAGE_SIMULTANEOUS_USE_BIT     VkCommandBufferUsageFlagBits = 0x4
)

type VkCommandBufferResetFlags uint32
type VkCommandPoolResetFlags uint32

type VkQueueFlagBits uint32
type VkQueueFlags uint32

const (
	VkQueueFlagBits_VK_QUEUE_GRAPHICS_BIT       VkQueueFlagBits = 0x1
	VkQueueFlagBits_VK_QUEUE_COMPUTE_BIT        VkQueueFlagBits = 0x2
	VkQueueFlagBits_VK_QUEUE_TRANSFER_BIT       VkQueueFlagBits = 0x4
	VkQueueFlagBits_VK_QUEUE_SPARSE_BINDING_BIT VkQueueFlagBits = 0x8
	VkQueueFlagBits_VK_QUEUE_PROTECTED_BIT      VkQueueFlagBits = 0x10
)

type VkPipelineBindPoint uint32

const (
	VkPipelineBindPoint_VK_PIPELINE_BIND_POINT_GRAPHICS        VkPipelineBindPoint = 0
	VkPipelineBindPoint_VK_PIPELINE_BIND_POINT_COMPUTE         VkPipelineBindPoint = 1
	VkPipelineBindPoint_VK_PIPELINE_BIND_POINT_RAY_TRACING_KHR VkPipelineBindPoint = 1000165000
)

type VkDynamicState uint32

const (
	VkDynamicState_VK_DYNAMIC_STATE_VIEWPORT                     VkDynamicState = 0
	VkDynamicState_VK_DYNAMIC_STATE_SCISSOR                      VkDynamicState = 1
	VkDynamicState_VK_DYNAMIC_STATE_LINE_WIDTH                   VkDynamicState = 2
	VkDynamicState_VK_DYNAMIC_STATE_DEPTH_BIAS                   VkDynamicState = 3
	VkDynamicState_VK_DYNAMIC_STATE_BLEND_CONSTANTS              VkDynamicState = 4
	VkDynamicState_VK_DYNAMIC_STATE_DEPTH_BOUNDS                 VkDynamicState = 5
	VkDynamicState_VK_DYNAMIC_STATE_STENCIL_COMPARE_MASK         VkDynamicState = 6
	VkDynamicState_VK_DYNAMIC_STATE_STENCIL_WRITE_MASK           VkDynamicState = 7
	VkDynamicState_VK_DYNAMIC_STATE_STENCIL_REFERENCE            VkDynamicState = 8
	VkDynamicState_VK_DYNAMIC_STATE_CULL_MODE                    VkDynamicState = 1000267000
	VkDynamicState_VK_DYNAMIC_STATE_FRONT_FACE                   VkDynamicState = 1000267001
	VkDynamicState_VK_DYNAMIC_STATE_PRIMITIVE_TOPOLOGY           VkDynamicState = 1000267002
	VkDynamicState_VK_DYNAMIC_STATE_VIEWPORT_WITH_COUNT          VkDynamicState = 1000267003
	VkDynamicState_VK_DYNAMIC_STATE_SCISSOR_WITH_COUNT           VkDynamicState = 1000267004
	VkDynamicState_VK_DYNAMIC_STATE_VERTEX_INPUT_BINDING_STRIDE  VkDynamicState = 1000267005
	VkDynamicState_VK_DYNAMIC_STATE_DEPTH_TEST_ENABLE            VkDynamicState = 1000267006
	VkDynamicState_VK_DYNAMIC_STATE_DEPTH_WRITE_ENABLE           VkDynamicState = 1000267007
	VkDynamicState_VK_DYNAMIC_STATE_DEPTH_COMPARE_OP             VkDynamicState = 1000267008
	VkDynamicState_VK_DYNAMIC_STATE_DEPTH_BOUNDS_TEST_ENABLE     VkDynamicState = 1000267009
	VkDynamicState_VK_DYNAMIC_STATE_STENCIL_TEST_ENABLE          VkDynamicState = 1000267010
	VkDynamicState_VK_DYNAMIC_STATE_STENCIL_OP                   VkDynamicState = 1000267011
	VkDynamicState_VK_DYNAMIC_STATE_VIEWPORT_W_SCALING_NV        VkDynamicState = 1000087000
	VkDynamicState_VK_DYNAMIC_STATE_DISCARD_RECTANGLE_EXT        VkDynamicState = 1000099000
	VkDynamicState_VK_DYNAMIC_STATE_SAMPLE_LOCATIONS_EXT         VkDynamicState = 1000143000
	VkDynamicState_VK_DYNAMIC_STATE_EXCLUSIVE_SCISSOR_NV         VkDynamicState = 1000205001
	VkDynamicState_VK_DYNAMIC_STATE_VIEWPORT_SHADING_RATE_NV     VkDynamicState = 1000164004
	VkDynamicState_VK_DYNAMIC_STATE_VIEWPORT_COARSE_SAMPLE_ORDER VkDynamicState = 1000164006
	VkDynamicState_VK_DYNAMIC_STATE_LINE_STIPPLE_EXT             VkDynamicState = 1000259000
	VkDynamicState_VK_DYNAMIC_STATE_VERTEX_INPUT_EXT             VkDynamicState = 1000352000
	VkDynamicState_VK_DYNAMIC_STATE_PATCH_CONTROL_POINTS_EXT     VkDynamicState = 1000377000
	VkDynamicState_VK_DYNAMIC_STATE_RASTERIZER_DISCARD_ENABLE    VkDynamicState = 1000377001
	VkDynamicState_VK_DYNAMIC_STATE_DEPTH_BIAS_ENABLE            VkDynamicState = 1000377002
	VkDynamicState_VK_DYNAMIC_STATE_LOGIC_OP_EXT                 VkDynamicState = 1000377003
	VkDynamicState_VK_DYNAMIC_STATE_PRIMITIVE_RESTART_ENABLE     VkDynamicState = 1000377004
	VkDynamicState_VK_DYNAMIC_STATE_COLOR_WRITE_ENABLE_EXT       VkDynamicState = 1000381000
)

type VkImageType uint32

const (
	VkImageType_VK_IMAGE_TYPE_1D VkImageType = 0
	VkImageType_VK_IMAGE_TYPE_2D VkImageType = 1
	VkImageType_VK_IMAGE_TYPE_3D VkImageType = 2
)

type VkImageTiling uint32

const (
	VkImageTiling_VK_IMAGE_TILING_OPTIMAL VkImageTiling = 0
	VkImageTiling_VK_IMAGE_TILING_LINEAR  VkImageTiling = 1
)

type VkImageCreateFlags uint32

const (
	VkImageCreateFlagBits_VK_IMAGE_CREATE_MUTABLE_FORMAT_BIT              VkImageCreateFlags = 0x8
	VkImageCreateFlagBits_VK_IMAGE_CREATE_SPLIT_INSTANCE_BIND_REGIONS_BIT VkImageCreateFlags = 0x40
	VkImageCreateFlagBits_VK_IMAGE_CREATE_EXTENDED_USAGE_BIT              VkImageCreateFlags = 0x100
	VkImageCreateFlagBits_VK_IMAGE_CREATE_PROTECTED_BIT                   VkImageCreateFlags = 0x800
)

type VkImageUsageFlagBits uint32
type VkImageUsageFlags uint32

const (
	VkImageUsageFlagBits_VK_IMAGE_USAGE_TRANSFER_SRC_BIT             VkImageUsageFlagBits = 0x1
	VkImageUsageFlagBits_VK_IMAGE_USAGE_TRANSFER_DST_BIT             VkImageUsageFlagBits = 0x2
	VkImageUsageFlagBits_VK_IMAGE_USAGE_SAMPLED_BIT                  VkImageUsageFlagBits = 0x4
	VkImageUsageFlagBits_VK_IMAGE_USAGE_STORAGE_BIT                  VkImageUsageFlagBits = 0x8
	VkImageUsageFlagBits_VK_IMAGE_USAGE_COLOR_ATTACHMENT_BIT         VkImageUsageFlagBits = 0x10
	VkImageUsageFlagBits_VK_IMAGE_USAGE_DEPTH_STENCIL_ATTACHMENT_BIT VkImageUsageFlagBits = 0x20
	VkImageUsageFlagBits_VK_IMAGE_USAGE_TRANSIENT_ATTACHMENT_BIT     VkImageUsageFlagBits = 0x40
	VkImageUsageFlagBits_VK_IMAGE_USAGE_INPUT_ATTACHMENT_BIT         VkImageUsageFlagBits = 0x80
)

type VkSharingMode uint32

const (
	VkSharingMode_VK_SHARING_MODE_EXCLUSIVE  VkSharingMode = 0
	VkSharingMode_VK_SHARING_MODE_CONCURRENT VkSharingMode = 1
)

type VkFormat uint32

const (
	VkFormat_VK_FORMAT_UNDEFINED           VkFormat = 0
	VkFormat_VK_FORMAT_R8G8B8A8_UNORM      VkFormat = 37
	VkFormat_VK_FORMAT_R8G8B8A8_SRGB       VkFormat = 43
	VkFormat_VK_FORMAT_B8G8R8A8_UNORM      VkFormat = 44
	VkFormat_VK_FORMAT_B8G8R8A8_SRGB       VkFormat = 50
	VkFormat_VK_FORMAT_A2B10G10R10_UNORM   VkFormat = 64
	VkFormat_VK_FORMAT_R16G16B16A16_SFLOAT VkFormat = 97
	VkFormat_VK_FORMAT_D16_UNORM           VkFormat = 124
	VkFormat_VK_FORMAT_D32_SFLOAT          VkFormat = 126
	VkFormat_VK_FORMAT_S8_UINT             VkFormat = 127
	VkFormat_VK_FORMAT_D24_UNORM_S8_UINT   VkFormat = 129
	VkFormat_VK_FORMAT_D32_SFLOAT_S8_UINT  VkFormat = 130
)

// IsDepthOrStencil returns true if the format has a depth or stencil
// component.
func (f VkFormat) IsDepthOrStencil() bool {
	switch f {
	case VkFormat_VK_FORMAT_D16_UNORM, VkFormat_VK_FORMAT_D32_SFLOAT, VkFormat_VK_FORMAT_S8_UINT,
		VkFormat_VK_FORMAT_D24_UNORM_S8_UINT, VkFormat_VK_FORMAT_D32_SFLOAT_S8_UINT:
		return true
	}
	return false
}

// Aspects returns the aspects present in images of the format.
func (f VkFormat) Aspects() VkImageAspectFlags {
	switch f {
	case VkFormat_VK_FORMAT_D16_UNORM, VkFormat_VK_FORMAT_D32_SFLOAT:
		return VkImageAspectFlags(VkImageAspectFlagBits_VK_IMAGE_ASPECT_DEPTH_BIT)
	case VkFormat_VK_FORMAT_S8_UINT:
		return VkImageAspectFlags(VkImageAspectFlagBits_VK_IMAGE_ASPECT_STENCIL_BIT)
	case VkFormat_VK_FORMAT_D24_UNORM_S8_UINT, VkFormat_VK_FORMAT_D32_SFLOAT_S8_UINT:
		return VkImageAspectFlags(VkImageAspectFlagBits_VK_IMAGE_ASPECT_DEPTH_BIT |
			VkImageAspectFlagBits_VK_IMAGE_ASPECT_STENCIL_BIT)
	default:
		return VkImageAspectFlags(VkImageAspectFlagBits_VK_IMAGE_ASPECT_COLOR_BIT)
	}
}

type VkColorSpaceKHR uint32

const (
	VkColorSpaceKHR_VK_COLOR_SPACE_SRGB_NONLINEAR_KHR       VkColorSpaceKHR = 0
	VkColorSpaceKHR_VK_COLOR_SPACE_DISPLAY_P3_NONLINEAR_EXT VkColorSpaceKHR = 1000104001
	VkColorSpaceKHR_VK_COLOR_SPACE_EXTENDED_SRGB_LINEAR_EXT VkColorSpaceKHR = 1000104002
	VkColorSpaceKHR_VK_COLOR_SPACE_HDR10_ST2084_EXT         VkColorSpaceKHR = 1000104008
	VkColorSpaceKHR_VK_COLOR_SPACE_PASS_THROUGH_EXT         VkColorSpaceKHR = 1000104013
)

type VkFormatFeatureFlagBits uint32
type VkFormatFeatureFlags uint32

const (
	VkFormatFeatureFlagBits_VK_FORMAT_FEATURE_SAMPLED_IMAGE_BIT            VkFormatFeatureFlagBits = 0x1
	VkFormatFeatureFlagBits_VK_FORMAT_FEATURE_STORAGE_IMAGE_BIT            VkFormatFeatureFlagBits = 0x2
	VkFormatFeatureFlagBits_VK_FORMAT_FEATURE_COLOR_ATTACHMENT_BIT         VkFormatFeatureFlagBits = 0x80
	VkFormatFeatureFlagBits_VK_FORMAT_FEATURE_DEPTH_STENCIL_ATTACHMENT_BIT VkFormatFeatureFlagBits = 0x200
	VkFormatFeatureFlagBits_VK_FORMAT_FEATURE_TRANSFER_SRC_BIT             VkFormatFeatureFlagBits = 0x4000
	VkFormatFeatureFlagBits_VK_FORMAT_FEATURE_TRANSFER_DST_BIT             VkFormatFeatureFlagBits = 0x8000
)

type VkPresentModeKHR uint32

const (
	VkPresentModeKHR_VK_PRESENT_MODE_IMMEDIATE_KHR                 VkPresentModeKHR = 0
	VkPresentModeKHR_VK_PRESENT_MODE_MAILBOX_KHR                   VkPresentModeKHR = 1
	VkPresentModeKHR_VK_PRESENT_MODE_FIFO_KHR                      VkPresentModeKHR = 2
	VkPresentModeKHR_VK_PRESENT_MODE_FIFO_RELAXED_KHR              VkPresentModeKHR = 3
	VkPresentModeKHR_VK_PRESENT_MODE_SHARED_DEMAND_REFRESH_KHR     VkPresentModeKHR = 1000111000
	VkPresentModeKHR_VK_PRESENT_MODE_SHARED_CONTINUOUS_REFRESH_KHR VkPresentModeKHR = 1000111001
)

// IsShared returns true for the shared presentable image modes.
func (m VkPresentModeKHR) IsShared() bool {
	return m == VkPresentModeKHR_VK_PRESENT_MODE_SHARED_DEMAND_REFRESH_KHR ||
		m == VkPresentModeKHR_VK_PRESENT_MODE_SHARED_CONTINUOUS_REFRESH_KHR
}

type VkSurfaceTransformFlagBitsKHR uint32
type VkSurfaceTransformFlagsKHR uint32

const (
	VkSurfaceTransformFlagBitsKHR_VK_SURFACE_TRANSFORM_IDENTITY_BIT_KHR                     VkSurfaceTransformFlagBitsKHR = 0x1
	VkSurfaceTransformFlagBitsKHR_VK_SURFACE_TRANSFORM_ROTATE_90_BIT_KHR                    VkSurfaceTransformFlagBitsKHR = 0x2
	VkSurfaceTransformFlagBitsKHR_VK_SURFACE_TRANSFORM_ROTATE_180_BIT_KHR                   VkSurfaceTransformFlagBitsKHR = 0x4
	VkSurfaceTransformFlagBitsKHR_VK_SURFACE_TRANSFORM_ROTATE_270_BIT_KHR                   VkSurfaceTransformFlagBitsKHR = 0x8
	VkSurfaceTransformFlagBitsKHR_VK_SURFACE_TRANSFORM_HORIZONTAL_MIRROR_BIT_KHR            VkSurfaceTransformFlagBitsKHR = 0x10
	VkSurfaceTransformFlagBitsKHR_VK_SURFACE_TRANSFORM_HORIZONTAL_MIRROR_ROTATE_90_BIT_KHR  VkSurfaceTransformFlagBitsKHR = 0x20
	VkSurfaceTransformFlagBitsKHR_VK_SURFACE_TRANSFORM_HORIZONTAL_MIRROR_ROTATE_180_BIT_KHR VkSurfaceTransformFlagBitsKHR = 0x40
	VkSurfaceTransformFlagBitsKHR_VK_SURFACE_TRANSFORM_HORIZONTAL_MIRROR_ROTATE_270_BIT_KHR VkSurfaceTransformFlagBitsKHR = 0x80
	VkSurfaceTransformFlagBitsKHR_VK_SURFACE_TRANSFORM_INHERIT_BIT_KHR                      VkSurfaceTransformFlagBitsKHR = 0x100
)

// SwapsExtent returns true for the transforms that rotate by 90 or 270
// degrees, exchanging width and height.
func (t VkSurfaceTransformFlagBitsKHR) SwapsExtent() bool {
	switch t {
	case VkSurfaceTransformFlagBitsKHR_VK_SURFACE_TRANSFORM_ROTATE_90_BIT_KHR,
		VkSurfaceTransformFlagBitsKHR_VK_SURFACE_TRANSFORM_ROTATE_270_BIT_KHR,
		VkSurfaceTransformFlagBitsKHR_VK_SURFACE_TRANSFORM_HORIZONTAL_MIRROR_ROTATE_90_BIT_KHR,
		VkSurfaceTransformFlagBitsKHR_VK_SURFACE_TRANSFORM_HORIZONTAL_MIRROR_ROTATE_270_BIT_KHR:
		return true
	}
	return false
}

type VkCompositeAlphaFlagBitsKHR uint32
type VkCompositeAlphaFlagsKHR uint32

const (
	VkCompositeAlphaFlagBitsKHR_VK_COMPOSITE_ALPHA_OPAQUE_BIT_KHR          VkCompositeAlphaFlagBitsKHR = 0x1
	VkCompositeAlphaFlagBitsKHR_VK_COMPOSITE_ALPHA_PRE_MULTIPLIED_BIT_KHR  VkCompositeAlphaFlagBitsKHR = 0x2
	VkCompositeAlphaFlagBitsKHR_VK_COMPOSITE_ALPHA_POST_MULTIPLIED_BIT_KHR VkCompositeAlphaFlagBitsKHR = 0x4
	VkCompositeAlphaFlagBitsKHR_VK_COMPOSITE_ALPHA_INHERIT_BIT_KHR         VkCompositeAlphaFlagBitsKHR = 0x8
)

type VkSwapchainCreateFlagsKHR uint32

const (
	VkSwapchainCreateFlagBitsKHR_VK_SWAPCHAIN_CREATE_SPLIT_INSTANCE_BIND_REGIONS_BIT_KHR VkSwapchainCreateFlagsKHR = 0x1
	VkSwapchainCreateFlagBitsKHR_VK_SWAPCHAIN_CREATE_PROTECTED_BIT_KHR                   VkSwapchainCreateFlagsKHR = 0x2
	VkSwapchainCreateFlagBitsKHR_VK_SWAPCHAIN_CREATE_MUTABLE_FORMAT_BIT_KHR              VkSwapchainCreateFlagsKHR = 0x4
)

type VkDisplayPlaneAlphaFlagBitsKHR uint32
type VkDisplayPlaneAlphaFlagsKHR uint32

const (
	VkDisplayPlaneAlphaFlagBitsKHR_VK_DISPLAY_PLANE_ALPHA_OPAQUE_BIT_KHR                  VkDisplayPlaneAlphaFlagBitsKHR = 0x1
	VkDisplayPlaneAlphaFlagBitsKHR_VK_DISPLAY_PLANE_ALPHA_GLOBAL_BIT_KHR                  VkDisplayPlaneAlphaFlagBitsKHR = 0x2
	VkDisplayPlaneAlphaFlagBitsKHR_VK_DISPLAY_PLANE_ALPHA_PER_PIXEL_BIT_KHR               VkDisplayPlaneAlphaFlagBitsKHR = 0x4
	VkDisplayPlaneAlphaFlagBitsKHR_VK_DISPLAY_PLANE_ALPHA_PER_PIXEL_PREMULTIPLIED_BIT_KHR VkDisplayPlaneAlphaFlagBitsKHR = 0x8
)

type VkFullScreenExclusiveEXT uint32

const (
	VkFullScreenExclusiveEXT_VK_FULL_SCREEN_EXCLUSIVE_DEFAULT_EXT                VkFullScreenExclusiveEXT = 0
	VkFullScreenExclusiveEXT_VK_FULL_SCREEN_EXCLUSIVE_ALLOWED_EXT                VkFullScreenExclusiveEXT = 1
	VkFullScreenExclusiveEXT_VK_FULL_SCREEN_EXCLUSIVE_DISALLOWED_EXT             VkFullScreenExclusiveEXT = 2
	VkFullScreenExclusiveEXT_VK_FULL_SCREEN_EXCLUSIVE_APPLICATION_CONTROLLED_EXT VkFullScreenExclusiveEXT = 3
)

type VkSemaphoreType uint32

const (
	VkSemaphoreType_VK_SEMAPHORE_TYPE_BINARY   VkSemaphoreType = 0
	VkSemaphoreType_VK_SEMAPHORE_TYPE_TIMELINE VkSemaphoreType = 1
)

type VkFenceCreateFlags uint32

const VkFenceCreateFlagBits_VK_FENCE_CREATE_SIGNALED_BIT VkFenceCreateFlags = 0x1

type VkQueryType uint32

const (
	VkQueryType_VK_QUERY_TYPE_OCCLUSION           VkQueryType = 0
	VkQueryType_VK_QUERY_TYPE_PIPELINE_STATISTICS VkQueryType = 1
	VkQueryType_VK_QUERY_TYPE_TIMESTAMP           VkQueryType = 2
)

type VkQueryControlFlags uint32

type VkSubpassContents uint32

const (
	VkSubpassContents_VK_SUBPASS_CONTENTS_INLINE                    VkSubpassContents = 0
	VkSubpassContents_VK_SUBPASS_CONTENTS_SECONDARY_COMMAND_BUFFERS VkSubpassContents = 1
)

type VkRenderingFlags uint32

const (
	VkRenderingFlagBits_VK_RENDERING_CONTENTS_SECONDARY_COMMAND_BUFFERS_BIT VkRenderingFlags = 0x1
	VkRenderingFlagBits_VK_RENDERING_SUSPENDING_BIT                         VkRenderingFlags = 0x2
	VkRenderingFlagBits_VK_RENDERING_RESUMING_BIT                           VkRenderingFlags = 0x4
)

type VkPipelineStageFlags uint64

const (
	VkPipelineStageFlagBits_VK_PIPELINE_STAGE_TOP_OF_PIPE_BIT             VkPipelineStageFlags = 0x1
	VkPipelineStageFlagBits_VK_PIPELINE_STAGE_DRAW_INDIRECT_BIT           VkPipelineStageFlags = 0x2
	VkPipelineStageFlagBits_VK_PIPELINE_STAGE_VERTEX_INPUT_BIT            VkPipelineStageFlags = 0x4
	VkPipelineStageFlagBits_VK_PIPELINE_STAGE_FRAGMENT_SHADER_BIT         VkPipelineStageFlags = 0x80
	VkPipelineStageFlagBits_VK_PIPELINE_STAGE_COLOR_ATTACHMENT_OUTPUT_BIT VkPipelineStageFlags = 0x400
	VkPipelineStageFlagBits_VK_PIPELINE_STAGE_COMPUTE_SHADER_BIT          VkPipelineStageFlags = 0x800
	VkPipelineStageFlagBits_VK_PIPELINE_STAGE_TRANSFER_BIT                VkPipelineStageFlags = 0x1000
	VkPipelineStageFlagBits_VK_PIPELINE_STAGE_BOTTOM_OF_PIPE_BIT          VkPipelineStageFlags = 0x2000
	VkPipelineStageFlagBits_VK_PIPELINE_STAGE_HOST_BIT                    VkPipelineStageFlags = 0x4000
	VkPipelineStageFlagBits_VK_PIPELINE_STAGE_ALL_GRAPHICS_BIT            VkPipelineStageFlags = 0x8000
	VkPipelineStageFlagBits_VK_PIPELINE_STAGE_ALL_COMMANDS_BIT            VkPipelineStageFlags = 0x10000
)

type VkAccessFlags uint64

type VkAttachmentLoadOp uint32

const (
	VkAttachmentLoadOp_VK_ATTACHMENT_LOAD_OP_LOAD      VkAttachmentLoadOp = 0
	VkAttachmentLoadOp_VK_ATTACHMENT_LOAD_OP_CLEAR     VkAttachmentLoadOp = 1
	VkAttachmentLoadOp_VK_ATTACHMENT_LOAD_OP_DONT_CARE VkAttachmentLoadOp = 2
)

type VkIndexType uint32

const (
	VkIndexType_VK_INDEX_TYPE_UINT16 VkIndexType = 0
	VkIndexType_VK_INDEX_TYPE_UINT32 VkIndexType = 1
)

type VkDescriptorType uint32

const (
	VkDescriptorType_VK_DESCRIPTOR_TYPE_SAMPLER                VkDescriptorType = 0
	VkDescriptorType_VK_DESCRIPTOR_TYPE_COMBINED_IMAGE_SAMPLER VkDescriptorType = 1
	VkDescriptorType_VK_DESCRIPTOR_TYPE_SAMPLED_IMAGE          VkDescriptorType = 2
	VkDescriptorType_VK_DESCRIPTOR_TYPE_STORAGE_IMAGE          VkDescriptorType = 3
	VkDescriptorType_VK_DESCRIPTOR_TYPE_UNIFORM_BUFFER         VkDescriptorType = 6
	VkDescriptorType_VK_DESCRIPTOR_TYPE_STORAGE_BUFFER         VkDescriptorType = 7
)

// Extension names consulted by the layer.
const (
	VK_KHR_shared_presentable_image         = "VK_KHR_shared_presentable_image"
	VK_KHR_swapchain_mutable_format         = "VK_KHR_swapchain_mutable_format"
	VK_KHR_present_id                       = "VK_KHR_present_id"
	VK_KHR_present_wait                     = "VK_KHR_present_wait"
	VK_KHR_incremental_present              = "VK_KHR_incremental_present"
	VK_KHR_display_swapchain                = "VK_KHR_display_swapchain"
	VK_GOOGLE_display_timing                = "VK_GOOGLE_display_timing"
	VK_KHR_android_surface                  = "VK_KHR_android_surface"
	VK_EXT_full_screen_exclusive            = "VK_EXT_full_screen_exclusive"
	VK_KHR_surface_protected_capabilities   = "VK_KHR_surface_protected_capabilities"
	VK_KHR_synchronization2                 = "VK_KHR_synchronization2"
	VK_KHR_dynamic_rendering                = "VK_KHR_dynamic_rendering"
	VK_KHR_device_group                     = "VK_KHR_device_group"
)
