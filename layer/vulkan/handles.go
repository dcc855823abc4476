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

// Package vulkan holds the Vulkan handles, enumerants, structures and
// intercepted commands consumed by the validation layer.
//
// Names follow the Vulkan registry, so a command such as
// vkCmdDraw is represented by a *VkCmdDraw holding its parameters.
package vulkan

import "fmt"

type (
	VkInstance       uint64
	VkPhysicalDevice uint64
	VkDevice         uint64
	VkQueue          uint64
	VkCommandPool    uint64
	VkCommandBuffer  uint64
	VkImage          uint64
	VkImageView      uint64
	VkBuffer         uint64
	VkBufferView     uint64
	VkPipeline       uint64
	VkDescriptorSet  uint64
	VkRenderPass     uint64
	VkFramebuffer    uint64
	VkEvent          uint64
	VkQueryPool      uint64
	VkSemaphore      uint64
	VkFence          uint64
	VkSurfaceKHR     uint64
	VkSwapchainKHR   uint64
	VkDisplayKHR     uint64
	VkDisplayModeKHR uint64
)

// VK_NULL_HANDLE is the null value of every handle type.
const VK_NULL_HANDLE = 0

// Special queue family indices.
const (
	VK_QUEUE_FAMILY_IGNORED  = ^uint32(0)
	VK_QUEUE_FAMILY_EXTERNAL = ^uint32(0) - 1
	VK_QUEUE_FAMILY_FOREIGN  = ^uint32(0) - 2
)

// Special counts and sizes.
const (
	VK_REMAINING_MIP_LEVELS   = ^uint32(0)
	VK_REMAINING_ARRAY_LAYERS = ^uint32(0)
	VK_WHOLE_SIZE             = ^uint64(0)
	UINT64_MAX                = ^uint64(0)
)

// Handle is implemented by every handle type so that reports can name the
// objects they refer to.
type Handle interface {
	// HandleType returns the Vulkan object type name of the handle.
	HandleType() string
	// Value returns the raw handle value.
	Value() uint64
}

func (h VkInstance) HandleType() string       { return "VkInstance" }
func (h VkPhysicalDevice) HandleType() string { return "VkPhysicalDevice" }
func (h VkDevice) HandleType() string         { return "VkDevice" }
func (h VkQueue) HandleType() string          { return "VkQueue" }
func (h VkCommandPool) HandleType() string    { return "VkCommandPool" }
func (h VkCommandBuffer) HandleType() string  { return "VkCommandBuffer" }
func (h VkImage) HandleType() string          { return "VkImage" }
func (h VkImageView) HandleType() string      { return "VkImageView" }
func (h VkBuffer) HandleType() string         { return "VkBuffer" }
func (h VkBufferView) HandleType() string     { return "VkBufferView" }
func (h VkPipeline) HandleType() string       { return "VkPipeline" }
func (h VkDescriptorSet) HandleType() string  { return "VkDescriptorSet" }
func (h VkRenderPass) HandleType() string     { return "VkRenderPass" }
func (h VkFramebuffer) HandleType() string    { return "VkFramebuffer" }
func (h VkEvent) HandleType() string          { return "VkEvent" }
func (h VkQueryPool) HandleType() string      { return "VkQueryPool" }
func (h VkSemaphore) HandleType() string      { return "VkSemaphore" }
func (h VkFence) HandleType() string          { return "VkFence" }
func (h VkSurfaceKHR) HandleType() string     { return "VkSurfaceKHR" }
func (h VkSwapchainKHR) HandleType() string   { return "VkSwapchainKHR" }
func (h VkDisplayKHR) HandleType() string     { return "VkDisplayKHR" }
func (h VkDisplayModeKHR) HandleType() string { return "VkDisplayModeKHR" }

func (h VkInstance) Value() uint64       { return uint64(h) }
func (h VkPhysicalDevice) Value() uint64 { return uint64(h) }
func (h VkDevice) Value() uint64         { return uint64(h) }
func (h VkQueue) Value() uint64          { return uint64(h) }
func (h VkCommandPool) Value() uint64    { return uint64(h) }
func (h VkCommandBuffer) Value() uint64  { return uint64(h) }
func (h VkImage) Value() uint64          { return uint64(h) }
func (h VkImageView) Value() uint64      { return uint64(h) }
func (h VkBuffer) Value() uint64         { return uint64(h) }
func (h VkBufferView) Value() uint64     { return uint64(h) }
func (h VkPipeline) Value() uint64       { return uint64(h) }
func (h VkDescriptorSet) Value() uint64  { return uint64(h) }
func (h VkRenderPass) Value() uint64     { return uint64(h) }
func (h VkFramebuffer) Value() uint64    { return uint64(h) }
func (h VkEvent) Value() uint64          { return uint64(h) }
func (h VkQueryPool) Value() uint64      { return uint64(h) }
func (h VkSemaphore) Value() uint64      { return uint64(h) }
func (h VkFence) Value() uint64          { return uint64(h) }
func (h VkSurfaceKHR) Value() uint64     { return uint64(h) }
func (h VkSwapchainKHR) Value() uint64   { return uint64(h) }
func (h VkDisplayKHR) Value() uint64     { return uint64(h) }
func (h VkDisplayModeKHR) Value() uint64 { return uint64(h) }

// HandleString formats h as the type name followed by the hex value.
func HandleString(h Handle) string {
	return fmt.Sprintf("%s 0x%x", h.HandleType(), h.Value())
}
