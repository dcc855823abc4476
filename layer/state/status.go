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

package state

import (
	"fmt"
	"strings"

	"github.com/google/vkstate/layer/vulkan"
)

// CBStatus is a set of state bits tracked by a command buffer. A bit is set
// once the state it names has been provided, either statically by the bound
// graphics pipeline or by a vkCmdSet* command.
type CBStatus uint64

const (
	StatusLineWidth CBStatus = 1 << iota
	StatusDepthBias
	StatusBlendConstants
	StatusDepthBounds
	StatusStencilReadMask
	StatusStencilWriteMask
	StatusStencilReference
	StatusViewport
	StatusScissor
	StatusIndexBufferBound
	StatusExclusiveScissor
	StatusShadingRatePalette
	StatusLineStipple
	StatusViewportWScaling
	StatusCullMode
	StatusFrontFace
	StatusPrimitiveTopology
	StatusViewportWithCount
	StatusScissorWithCount
	StatusVertexInputBindingStride
	StatusDepthTestEnable
	StatusDepthWriteEnable
	StatusDepthCompareOp
	StatusDepthBoundsTestEnable
	StatusStencilTestEnable
	StatusStencilOp
	StatusDiscardRectangle
	StatusSampleLocations
	StatusCoarseSampleOrder
	StatusPatchControlPoints
	StatusRasterizerDiscardEnable
	StatusDepthBiasEnable
	StatusLogicOp
	StatusPrimitiveRestartEnable
	StatusVertexInput
	StatusColorWriteEnable

	// StatusNone is the empty set.
	StatusNone CBStatus = 0
	// StatusAllStateSet is every bit a pipeline can provide. The index buffer
	// is never provided by a pipeline.
	StatusAllStateSet = (StatusColorWriteEnable<<1 - 1) &^ StatusIndexBufferBound
)

var dynamicStates = []struct {
	state  vulkan.VkDynamicState
	status CBStatus
	name   string
}{
	{vulkan.VkDynamicState_VK_DYNAMIC_STATE_LINE_WIDTH, StatusLineWidth, "VK_DYNAMIC_STATE_LINE_WIDTH"},
	{vulkan.VkDynamicState_VK_DYNAMIC_STATE_DEPTH_BIAS, StatusDepthBias, "VK_DYNAMIC_STATE_DEPTH_BIAS"},
	{vulkan.VkDynamicState_VK_DYNAMIC_STATE_BLEND_CONSTANTS, StatusBlendConstants, "VK_DYNAMIC_STATE_BLEND_CONSTANTS"},
	{vulkan.VkDynamicState_VK_DYNAMIC_STATE_DEPTH_BOUNDS, StatusDepthBounds, "VK_DYNAMIC_STATE_DEPTH_BOUNDS"},
	{vulkan.VkDynamicState_VK_DYNAMIC_STATE_STENCIL_COMPARE_MASK, StatusStencilReadMask, "VK_DYNAMIC_STATE_STENCIL_COMPARE_MASK"},
	{vulkan.VkDynamicState_VK_DYNAMIC_STATE_STENCIL_WRITE_MASK, StatusStencilWriteMask, "VK_DYNAMIC_STATE_STENCIL_WRITE_MASK"},
	{vulkan.VkDynamicState_VK_DYNAMIC_STATE_STENCIL_REFERENCE, StatusStencilReference, "VK_DYNAMIC_STATE_STENCIL_REFERENCE"},
	{vulkan.VkDynamicState_VK_DYNAMIC_STATE_VIEWPORT, StatusViewport, "VK_DYNAMIC_STATE_VIEWPORT"},
	{vulkan.VkDynamicState_VK_DYNAMIC_STATE_SCISSOR, StatusScissor, "VK_DYNAMIC_STATE_SCISSOR"},
	{vulkan.VkDynamicState_VK_DYNAMIC_STATE_EXCLUSIVE_SCISSOR_NV, StatusExclusiveScissor, "VK_DYNAMIC_STATE_EXCLUSIVE_SCISSOR_NV"},
	{vulkan.VkDynamicState_VK_DYNAMIC_STATE_VIEWPORT_SHADING_RATE_NV, StatusShadingRatePalette, "VK_DYNAMIC_STATE_VIEWPORT_SHADING_RATE_PALETTE_NV"},
	{vulkan.VkDynamicState_VK_DYNAMIC_STATE_LINE_STIPPLE_EXT, StatusLineStipple, "VK_DYNAMIC_STATE_LINE_STIPPLE_EXT"},
	{vulkan.VkDynamicState_VK_DYNAMIC_STATE_VIEWPORT_W_SCALING_NV, StatusViewportWScaling, "VK_DYNAMIC_STATE_VIEWPORT_W_SCALING_NV"},
	{vulkan.VkDynamicState_VK_DYNAMIC_STATE_CULL_MODE, StatusCullMode, "VK_DYNAMIC_STATE_CULL_MODE"},
	{vulkan.VkDynamicState_VK_DYNAMIC_STATE_FRONT_FACE, StatusFrontFace, "VK_DYNAMIC_STATE_FRONT_FACE"},
	{vulkan.VkDynamicState_VK_DYNAMIC_STATE_PRIMITIVE_TOPOLOGY, StatusPrimitiveTopology, "VK_DYNAMIC_STATE_PRIMITIVE_TOPOLOGY"},
	{vulkan.VkDynamicState_VK_DYNAMIC_STATE_VIEWPORT_WITH_COUNT, StatusViewportWithCount, "VK_DYNAMIC_STATE_VIEWPORT_WITH_COUNT"},
	{vulkan.VkDynamicState_VK_DYNAMIC_STATE_SCISSOR_WITH_COUNT, StatusScissorWithCount, "VK_DYNAMIC_STATE_SCISSOR_WITH_COUNT"},
	{vulkan.VkDynamicState_VK_DYNAMIC_STATE_VERTEX_INPUT_BINDING_STRIDE, StatusVertexInputBindingStride, "VK_DYNAMIC_STATE_VERTEX_INPUT_BINDING_STRIDE"},
	{vulkan.VkDynamicState_VK_DYNAMIC_STATE_DEPTH_TEST_ENABLE, StatusDepthTestEnable, "VK_DYNAMIC_STATE_DEPTH_TEST_ENABLE"},
	{vulkan.VkDynamicState_VK_DYNAMIC_STATE_DEPTH_WRITE_ENABLE, StatusDepthWriteEnable, "VK_DYNAMIC_STATE_DEPTH_WRITE_ENABLE"},
	{vulkan.VkDynamicState_VK_DYNAMIC_STATE_DEPTH_COMPARE_OP, StatusDepthCompareOp, "VK_DYNAMIC_STATE_DEPTH_COMPARE_OP"},
	{vulkan.VkDynamicState_VK_DYNAMIC_STATE_DEPTH_BOUNDS_TEST_ENABLE, StatusDepthBoundsTestEnable, "VK_DYNAMIC_STATE_DEPTH_BOUNDS_TEST_ENABLE"},
	{vulkan.VkDynamicState_VK_DYNAMIC_STATE_STENCIL_TEST_ENABLE, StatusStencilTestEnable, "VK_DYNAMIC_STATE_STENCIL_TEST_ENABLE"},
	{vulkan.VkDynamicState_VK_DYNAMIC_STATE_STENCIL_OP, StatusStencilOp, "VK_DYNAMIC_STATE_STENCIL_OP"},
	{vulkan.VkDynamicState_VK_DYNAMIC_STATE_DISCARD_RECTANGLE_EXT, StatusDiscardRectangle, "VK_DYNAMIC_STATE_DISCARD_RECTANGLE_EXT"},
	{vulkan.VkDynamicState_VK_DYNAMIC_STATE_SAMPLE_LOCATIONS_EXT, StatusSampleLocations, "VK_DYNAMIC_STATE_SAMPLE_LOCATIONS_EXT"},
	{vulkan.VkDynamicState_VK_DYNAMIC_STATE_VIEWPORT_COARSE_SAMPLE_ORDER, StatusCoarseSampleOrder, "VK_DYNAMIC_STATE_VIEWPORT_COARSE_SAMPLE_ORDER_NV"},
	{vulkan.VkDynamicState_VK_DYNAMIC_STATE_PATCH_CONTROL_POINTS_EXT, StatusPatchControlPoints, "VK_DYNAMIC_STATE_PATCH_CONTROL_POINTS_EXT"},
	{vulkan.VkDynamicState_VK_DYNAMIC_STATE_RASTERIZER_DISCARD_ENABLE, StatusRasterizerDiscardEnable, "VK_DYNAMIC_STATE_RASTERIZER_DISCARD_ENABLE"},
	{vulkan.VkDynamicState_VK_DYNAMIC_STATE_DEPTH_BIAS_ENABLE, StatusDepthBiasEnable, "VK_DYNAMIC_STATE_DEPTH_BIAS_ENABLE"},
	{vulkan.VkDynamicState_VK_DYNAMIC_STATE_LOGIC_OP_EXT, StatusLogicOp, "VK_DYNAMIC_STATE_LOGIC_OP_EXT"},
	{vulkan.VkDynamicState_VK_DYNAMIC_STATE_PRIMITIVE_RESTART_ENABLE, StatusPrimitiveRestartEnable, "VK_DYNAMIC_STATE_PRIMITIVE_RESTART_ENABLE"},
	{vulkan.VkDynamicState_VK_DYNAMIC_STATE_VERTEX_INPUT_EXT, StatusVertexInput, "VK_DYNAMIC_STATE_VERTEX_INPUT_EXT"},
	{vulkan.VkDynamicState_VK_DYNAMIC_STATE_COLOR_WRITE_ENABLE_EXT, StatusColorWriteEnable, "VK_DYNAMIC_STATE_COLOR_WRITE_ENABLE_EXT"},
}

// StatusOf returns the status bit provided by the dynamic state s, or
// StatusNone for a state the layer does not track.
func StatusOf(s vulkan.VkDynamicState) CBStatus {
	for _, d := range dynamicStates {
		if d.state == s {
			return d.status
		}
	}
	return StatusNone
}

// DynamicStatus returns the status bits of a pipeline's dynamic states.
func DynamicStatus(states []vulkan.VkDynamicState) CBStatus {
	out := StatusNone
	for _, s := range states {
		out |= StatusOf(s)
	}
	return out
}

// String returns the dynamic states named by the bits of s, joined by '|'.
func (s CBStatus) String() string {
	if s == StatusNone {
		return "none"
	}
	parts := []string{}
	for _, d := range dynamicStates {
		if s&d.status != 0 {
			parts = append(parts, d.name)
			s &^= d.status
		}
	}
	if s&StatusIndexBufferBound != 0 {
		parts = append(parts, "index buffer")
		s &^= StatusIndexBufferBound
	}
	if s != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", uint64(s)))
	}
	return strings.Join(parts, "|")
}
