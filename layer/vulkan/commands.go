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

// Cmd is an intercepted Vulkan call.
type Cmd interface {
	// CmdName returns the Vulkan entry point name of the call.
	CmdName() string
}

// CommandBufferCmd is a vkCmd* call recorded into a command buffer.
type CommandBufferCmd interface {
	Cmd
	// Target returns the command buffer the call records into.
	Target() VkCommandBuffer
}

// VkGetDeviceQueue is a call to vkGetDeviceQueue.
type VkGetDeviceQueue struct {
	QueueFamilyIndex uint32
	QueueIndex       uint32
	Queue            VkQueue
}

// VkCreateCommandPool is a call to vkCreateCommandPool.
type VkCreateCommandPool struct {
	CreateInfo  VkCommandPoolCreateInfo
	CommandPool VkCommandPool
}

// VkDestroyCommandPool is a call to vkDestroyCommandPool.
type VkDestroyCommandPool struct {
	CommandPool VkCommandPool
}

// VkResetCommandPool is a call to vkResetCommandPool.
type VkResetCommandPool struct {
	CommandPool VkCommandPool
	Flags       VkCommandPoolResetFlags
}

// VkAllocateCommandBuffers is a call to vkAllocateCommandBuffers.
type VkAllocateCommandBuffers struct {
	AllocateInfo   VkCommandBufferAllocateInfo
	CommandBuffers []VkCommandBuffer
}

// VkFreeCommandBuffers is a call to vkFreeCommandBuffers.
type VkFreeCommandBuffers struct {
	CommandPool    VkCommandPool
	CommandBuffers []VkCommandBuffer
}

// VkBeginCommandBuffer is a call to vkBeginCommandBuffer.
type VkBeginCommandBuffer struct {
	CommandBuffer VkCommandBuffer
	BeginInfo     VkCommandBufferBeginInfo
}

// VkEndCommandBuffer is a call to vkEndCommandBuffer.
type VkEndCommandBuffer struct {
	CommandBuffer VkCommandBuffer
}

// VkResetCommandBuffer is a call to vkResetCommandBuffer.
type VkResetCommandBuffer struct {
	CommandBuffer VkCommandBuffer
	Flags         VkCommandBufferResetFlags
}

// VkCreateImage is a call to vkCreateImage.
type VkCreateImage struct {
	CreateInfo VkImageCreateInfo
	Image      VkImage
}

// VkDestroyImage is a call to vkDestroyImage.
type VkDestroyImage struct {
	Image VkImage
}

// VkCreateImageView is a call to vkCreateImageView.
type VkCreateImageView struct {
	CreateInfo VkImageViewCreateInfo
	View       VkImageView
}

// VkDestroyImageView is a call to vkDestroyImageView.
type VkDestroyImageView struct {
	ImageView VkImageView
}

// VkCreateBuffer is a call to vkCreateBuffer.
type VkCreateBuffer struct {
	CreateInfo VkBufferCreateInfo
	Buffer     VkBuffer
}

// VkDestroyBuffer is a call to vkDestroyBuffer.
type VkDestroyBuffer struct {
	Buffer VkBuffer
}

// VkCreateGraphicsPipelines is a call to vkCreateGraphicsPipelines.
type VkCreateGraphicsPipelines struct {
	CreateInfos []VkGraphicsPipelineCreateInfo
	Pipelines   []VkPipeline
}

// VkCreateComputePipelines is a call to vkCreateComputePipelines.
type VkCreateComputePipelines struct {
	CreateInfos []VkComputePipelineCreateInfo
	Pipelines   []VkPipeline
}

// VkDestroyPipeline is a call to vkDestroyPipeline.
type VkDestroyPipeline struct {
	Pipeline VkPipeline
}

// VkAllocateDescriptorSets is a call to vkAllocateDescriptorSets.
type VkAllocateDescriptorSets struct {
	AllocateInfo   VkDescriptorSetAllocateInfo
	DescriptorSets []VkDescriptorSet
}

// VkFreeDescriptorSets is a call to vkFreeDescriptorSets.
type VkFreeDescriptorSets struct {
	DescriptorSets []VkDescriptorSet
}

// VkUpdateDescriptorSets is a call to vkUpdateDescriptorSets.
type VkUpdateDescriptorSets struct {
	DescriptorWrites []VkWriteDescriptorSet
}

// VkCreateRenderPass is a call to vkCreateRenderPass.
type VkCreateRenderPass struct {
	CreateInfo VkRenderPassCreateInfo
	RenderPass VkRenderPass
}

// VkDestroyRenderPass is a call to vkDestroyRenderPass.
type VkDestroyRenderPass struct {
	RenderPass VkRenderPass
}

// VkCreateFramebuffer is a call to vkCreateFramebuffer.
type VkCreateFramebuffer struct {
	CreateInfo  VkFramebufferCreateInfo
	Framebuffer VkFramebuffer
}

// VkDestroyFramebuffer is a call to vkDestroyFramebuffer.
type VkDestroyFramebuffer struct {
	Framebuffer VkFramebuffer
}

// VkCreateEvent is a call to vkCreateEvent.
type VkCreateEvent struct {
	Event VkEvent
}

// VkDestroyEvent is a call to vkDestroyEvent.
type VkDestroyEvent struct {
	Event VkEvent
}

// VkSetEvent is a call to vkSetEvent.
type VkSetEvent struct {
	Event VkEvent
}

// VkResetEvent is a call to vkResetEvent.
type VkResetEvent struct {
	Event VkEvent
}

// VkCreateQueryPool is a call to vkCreateQueryPool.
type VkCreateQueryPool struct {
	CreateInfo VkQueryPoolCreateInfo
	QueryPool  VkQueryPool
}

// VkDestroyQueryPool is a call to vkDestroyQueryPool.
type VkDestroyQueryPool struct {
	QueryPool VkQueryPool
}

// VkResetQueryPool is a call to vkResetQueryPool.
type VkResetQueryPool struct {
	QueryPool  VkQueryPool
	FirstQuery uint32
	QueryCount uint32
}

// VkCreateSemaphore is a call to vkCreateSemaphore.
type VkCreateSemaphore struct {
	CreateInfo VkSemaphoreCreateInfo
	Semaphore  VkSemaphore
}

// VkDestroySemaphore is a call to vkDestroySemaphore.
type VkDestroySemaphore struct {
	Semaphore VkSemaphore
}

// VkCreateFence is a call to vkCreateFence.
type VkCreateFence struct {
	CreateInfo VkFenceCreateInfo
	Fence      VkFence
}

// VkDestroyFence is a call to vkDestroyFence.
type VkDestroyFence struct {
	Fence VkFence
}

// VkResetFences is a call to vkResetFences.
type VkResetFences struct {
	Fences []VkFence
}

// VkWaitForFences is a call to vkWaitForFences.
type VkWaitForFences struct {
	Fences  []VkFence
	WaitAll bool
	Timeout uint64
}

// VkGetFenceStatus is a call to vkGetFenceStatus.
type VkGetFenceStatus struct {
	Fence VkFence
}

// VkQueueSubmit is a call to vkQueueSubmit.
type VkQueueSubmit struct {
	Queue   VkQueue
	Submits []VkSubmitInfo
	Fence   VkFence
}

// VkQueueWaitIdle is a call to vkQueueWaitIdle.
type VkQueueWaitIdle struct {
	Queue VkQueue
}

// VkDeviceWaitIdle is a call to vkDeviceWaitIdle.
type VkDeviceWaitIdle struct{}

// VkCreateHeadlessSurfaceEXT is a call to vkCreateHeadlessSurfaceEXT.
type VkCreateHeadlessSurfaceEXT struct {
	Surface VkSurfaceKHR
}

// VkCreateAndroidSurfaceKHR is a call to vkCreateAndroidSurfaceKHR.
type VkCreateAndroidSurfaceKHR struct {
	Surface VkSurfaceKHR
}

// VkCreateDisplayPlaneSurfaceKHR is a call to vkCreateDisplayPlaneSurfaceKHR.
type VkCreateDisplayPlaneSurfaceKHR struct {
	CreateInfo VkDisplaySurfaceCreateInfoKHR
	Surface    VkSurfaceKHR
}

// VkDestroySurfaceKHR is a call to vkDestroySurfaceKHR.
type VkDestroySurfaceKHR struct {
	Surface VkSurfaceKHR
}

// VkGetPhysicalDeviceSurfaceSupportKHR is a call to vkGetPhysicalDeviceSurfaceSupportKHR.
type VkGetPhysicalDeviceSurfaceSupportKHR struct {
	QueueFamilyIndex uint32
	Surface          VkSurfaceKHR
	Supported        bool
}

// VkGetPhysicalDeviceDisplayPlanePropertiesKHR is a call to vkGetPhysicalDeviceDisplayPlanePropertiesKHR.
type VkGetPhysicalDeviceDisplayPlanePropertiesKHR struct {
	Properties []VkDisplayPlanePropertiesKHR
}

// VkGetDisplayPlaneSupportedDisplaysKHR is a call to vkGetDisplayPlaneSupportedDisplaysKHR.
type VkGetDisplayPlaneSupportedDisplaysKHR struct {
	PlaneIndex uint32
	Displays   []VkDisplayKHR
}

// VkGetDisplayPlaneCapabilitiesKHR is a call to vkGetDisplayPlaneCapabilitiesKHR.
type VkGetDisplayPlaneCapabilitiesKHR struct {
	Mode       VkDisplayModeKHR
	PlaneIndex uint32
}

// VkCreateSwapchainKHR is a call to vkCreateSwapchainKHR.
type VkCreateSwapchainKHR struct {
	CreateInfo VkSwapchainCreateInfoKHR
	Swapchain  VkSwapchainKHR
}

// VkCreateSharedSwapchainsKHR is a call to vkCreateSharedSwapchainsKHR.
type VkCreateSharedSwapchainsKHR struct {
	CreateInfos []VkSwapchainCreateInfoKHR
	Swapchains  []VkSwapchainKHR
}

// VkDestroySwapchainKHR is a call to vkDestroySwapchainKHR.
type VkDestroySwapchainKHR struct {
	Swapchain VkSwapchainKHR
}

// VkGetSwapchainImagesKHR is a call to vkGetSwapchainImagesKHR.
type VkGetSwapchainImagesKHR struct {
	Swapchain VkSwapchainKHR
	Count     uint32
	Images    []VkImage
}

// VkAcquireNextImageKHR is a call to vkAcquireNextImageKHR.
type VkAcquireNextImageKHR struct {
	Swapchain  VkSwapchainKHR
	Timeout    uint64
	Semaphore  VkSemaphore
	Fence      VkFence
	ImageIndex uint32
}

// VkAcquireNextImage2KHR is a call to vkAcquireNextImage2KHR.
type VkAcquireNextImage2KHR struct {
	AcquireInfo VkAcquireNextImageInfoKHR
	ImageIndex  uint32
}

// VkQueuePresentKHR is a call to vkQueuePresentKHR.
type VkQueuePresentKHR struct {
	Queue       VkQueue
	PresentInfo VkPresentInfoKHR
}

// VkWaitForPresentKHR is a call to vkWaitForPresentKHR.
type VkWaitForPresentKHR struct {
	Swapchain VkSwapchainKHR
	PresentId uint64
	Timeout   uint64
}

// VkAcquireFullScreenExclusiveModeEXT is a call to vkAcquireFullScreenExclusiveModeEXT.
type VkAcquireFullScreenExclusiveModeEXT struct {
	Swapchain VkSwapchainKHR
}

// VkReleaseFullScreenExclusiveModeEXT is a call to vkReleaseFullScreenExclusiveModeEXT.
type VkReleaseFullScreenExclusiveModeEXT struct {
	Swapchain VkSwapchainKHR
}

// VkCmdBindPipeline is a call to vkCmdBindPipeline.
type VkCmdBindPipeline struct {
	CommandBuffer     VkCommandBuffer
	PipelineBindPoint VkPipelineBindPoint
	Pipeline          VkPipeline
}

// VkCmdBindDescriptorSets is a call to vkCmdBindDescriptorSets.
type VkCmdBindDescriptorSets struct {
	CommandBuffer     VkCommandBuffer
	PipelineBindPoint VkPipelineBindPoint
	FirstSet          uint32
	DescriptorSets    []VkDescriptorSet
	DynamicOffsets    []uint32
}

// VkCmdPushDescriptorSetKHR is a call to vkCmdPushDescriptorSetKHR.
type VkCmdPushDescriptorSetKHR struct {
	CommandBuffer     VkCommandBuffer
	PipelineBindPoint VkPipelineBindPoint
	Set               uint32
	DescriptorWrites  []VkWriteDescriptorSet
}

// VkCmdBindVertexBuffers is a call to vkCmdBindVertexBuffers.
type VkCmdBindVertexBuffers struct {
	CommandBuffer VkCommandBuffer
	FirstBinding  uint32
	Buffers       []VkBuffer
	Offsets       []uint64
}

// VkCmdBindIndexBuffer is a call to vkCmdBindIndexBuffer.
type VkCmdBindIndexBuffer struct {
	CommandBuffer VkCommandBuffer
	Buffer        VkBuffer
	Offset        uint64
	IndexType     VkIndexType
}

// VkCmdSetViewport is a call to vkCmdSetViewport.
type VkCmdSetViewport struct {
	CommandBuffer VkCommandBuffer
	FirstViewport uint32
	ViewportCount uint32
}

// VkCmdSetScissor is a call to vkCmdSetScissor.
type VkCmdSetScissor struct {
	CommandBuffer VkCommandBuffer
	FirstScissor  uint32
	ScissorCount  uint32
}

// VkCmdSetLineWidth is a call to vkCmdSetLineWidth.
type VkCmdSetLineWidth struct {
	CommandBuffer VkCommandBuffer
	LineWidth     float32
}

// VkCmdSetDepthBias is a call to vkCmdSetDepthBias.
type VkCmdSetDepthBias struct {
	CommandBuffer  VkCommandBuffer
	ConstantFactor float32
	Clamp          float32
	SlopeFactor    float32
}

// VkCmdSetBlendConstants is a call to vkCmdSetBlendConstants.
type VkCmdSetBlendConstants struct {
	CommandBuffer  VkCommandBuffer
	BlendConstants [4]float32
}

// VkCmdSetDepthBounds is a call to vkCmdSetDepthBounds.
type VkCmdSetDepthBounds struct {
	CommandBuffer  VkCommandBuffer
	MinDepthBounds float32
	MaxDepthBounds float32
}

// VkCmdSetStencilCompareMask is a call to vkCmdSetStencilCompareMask.
type VkCmdSetStencilCompareMask struct {
	CommandBuffer VkCommandBuffer
	FaceMask      uint32
	CompareMask   uint32
}

// VkCmdSetStencilWriteMask is a call to vkCmdSetStencilWriteMask.
type VkCmdSetStencilWriteMask struct {
	CommandBuffer VkCommandBuffer
	FaceMask      uint32
	WriteMask     uint32
}

// VkCmdSetStencilReference is a call to vkCmdSetStencilReference.
type VkCmdSetStencilReference struct {
	CommandBuffer VkCommandBuffer
	FaceMask      uint32
	Reference     uint32
}

// VkCmdSetCullMode is a call to vkCmdSetCullMode.
type VkCmdSetCullMode struct {
	CommandBuffer VkCommandBuffer
	CullMode      uint32
}

// VkCmdSetFrontFace is a call to vkCmdSetFrontFace.
type VkCmdSetFrontFace struct {
	CommandBuffer VkCommandBuffer
	FrontFace     uint32
}

// VkCmdSetPrimitiveTopology is a call to vkCmdSetPrimitiveTopology.
type VkCmdSetPrimitiveTopology struct {
	CommandBuffer     VkCommandBuffer
	PrimitiveTopology uint32
}

// VkCmdSetViewportWithCount is a call to vkCmdSetViewportWithCount.
type VkCmdSetViewportWithCount struct {
	CommandBuffer VkCommandBuffer
	ViewportCount uint32
}

// VkCmdSetScissorWithCount is a call to vkCmdSetScissorWithCount.
type VkCmdSetScissorWithCount struct {
	CommandBuffer VkCommandBuffer
	ScissorCount  uint32
}

// VkCmdSetDepthTestEnable is a call to vkCmdSetDepthTestEnable.
type VkCmdSetDepthTestEnable struct {
	CommandBuffer   VkCommandBuffer
	DepthTestEnable bool
}

// VkCmdSetDepthWriteEnable is a call to vkCmdSetDepthWriteEnable.
type VkCmdSetDepthWriteEnable struct {
	CommandBuffer    VkCommandBuffer
	DepthWriteEnable bool
}

// VkCmdSetDepthCompareOp is a call to vkCmdSetDepthCompareOp.
type VkCmdSetDepthCompareOp struct {
	CommandBuffer  VkCommandBuffer
	DepthCompareOp uint32
}

// VkCmdSetDepthBoundsTestEnable is a call to vkCmdSetDepthBoundsTestEnable.
type VkCmdSetDepthBoundsTestEnable struct {
	CommandBuffer         VkCommandBuffer
	DepthBoundsTestEnable bool
}

// VkCmdSetStencilTestEnable is a call to vkCmdSetStencilTestEnable.
type VkCmdSetStencilTestEnable struct {
	CommandBuffer     VkCommandBuffer
	StencilTestEnable bool
}

// VkCmdSetStencilOp is a call to vkCmdSetStencilOp.
type VkCmdSetStencilOp struct {
	CommandBuffer VkCommandBuffer
	FaceMask      uint32
	FailOp        uint32
	PassOp        uint32
	DepthFailOp   uint32
	CompareOp     uint32
}

// VkCmdSetLineStippleEXT is a call to vkCmdSetLineStippleEXT.
type VkCmdSetLineStippleEXT struct {
	CommandBuffer      VkCommandBuffer
	LineStippleFactor  uint32
	LineStipplePattern uint16
}

// VkCmdSetRasterizerDiscardEnable is a call to vkCmdSetRasterizerDiscardEnable.
type VkCmdSetRasterizerDiscardEnable struct {
	CommandBuffer           VkCommandBuffer
	RasterizerDiscardEnable bool
}

// VkCmdSetDepthBiasEnable is a call to vkCmdSetDepthBiasEnable.
type VkCmdSetDepthBiasEnable struct {
	CommandBuffer   VkCommandBuffer
	DepthBiasEnable bool
}

// VkCmdSetPrimitiveRestartEnable is a call to vkCmdSetPrimitiveRestartEnable.
type VkCmdSetPrimitiveRestartEnable struct {
	CommandBuffer          VkCommandBuffer
	PrimitiveRestartEnable bool
}

// VkCmdSetLogicOpEXT is a call to vkCmdSetLogicOpEXT.
type VkCmdSetLogicOpEXT struct {
	CommandBuffer VkCommandBuffer
	LogicOp       uint32
}

// VkCmdSetPatchControlPointsEXT is a call to vkCmdSetPatchControlPointsEXT.
type VkCmdSetPatchControlPointsEXT struct {
	CommandBuffer      VkCommandBuffer
	PatchControlPoints uint32
}

// VkCmdSetColorWriteEnableEXT is a call to vkCmdSetColorWriteEnableEXT.
type VkCmdSetColorWriteEnableEXT struct {
	CommandBuffer     VkCommandBuffer
	ColorWriteEnables []bool
}

// VkCmdSetVertexInputEXT is a call to vkCmdSetVertexInputEXT.
type VkCmdSetVertexInputEXT struct {
	CommandBuffer  VkCommandBuffer
	BindingCount   uint32
	AttributeCount uint32
}

// VkCmdDraw is a call to vkCmdDraw.
type VkCmdDraw struct {
	CommandBuffer VkCommandBuffer
	VertexCount   uint32
	InstanceCount uint32
	FirstVertex   uint32
	FirstInstance uint32
}

// VkCmdDrawIndexed is a call to vkCmdDrawIndexed.
type VkCmdDrawIndexed struct {
	CommandBuffer VkCommandBuffer
	IndexCount    uint32
	InstanceCount uint32
	FirstIndex    uint32
	VertexOffset  int32
	FirstInstance uint32
}

// VkCmdDrawIndirect is a call to vkCmdDrawIndirect.
type VkCmdDrawIndirect struct {
	CommandBuffer VkCommandBuffer
	Buffer        VkBuffer
	Offset        uint64
	DrawCount     uint32
	Stride        uint32
}

// VkCmdDrawIndexedIndirect is a call to vkCmdDrawIndexedIndirect.
type VkCmdDrawIndexedIndirect struct {
	CommandBuffer VkCommandBuffer
	Buffer        VkBuffer
	Offset        uint64
	DrawCount     uint32
	Stride        uint32
}

// VkCmdDispatch is a call to vkCmdDispatch.
type VkCmdDispatch struct {
	CommandBuffer VkCommandBuffer
	GroupCountX   uint32
	GroupCountY   uint32
	GroupCountZ   uint32
}

// VkCmdDispatchIndirect is a call to vkCmdDispatchIndirect.
type VkCmdDispatchIndirect struct {
	CommandBuffer VkCommandBuffer
	Buffer        VkBuffer
	Offset        uint64
}

// VkCmdTraceRaysKHR is a call to vkCmdTraceRaysKHR.
type VkCmdTraceRaysKHR struct {
	CommandBuffer VkCommandBuffer
	Width         uint32
	Height        uint32
	Depth         uint32
}

// VkCmdBuildAccelerationStructuresKHR is a call to vkCmdBuildAccelerationStructuresKHR.
type VkCmdBuildAccelerationStructuresKHR struct {
	CommandBuffer VkCommandBuffer
	InfoCount     uint32
}

// VkCmdBeginRenderPass is a call to vkCmdBeginRenderPass.
type VkCmdBeginRenderPass struct {
	CommandBuffer   VkCommandBuffer
	RenderPassBegin VkRenderPassBeginInfo
	Contents        VkSubpassContents
}

// VkCmdNextSubpass is a call to vkCmdNextSubpass.
type VkCmdNextSubpass struct {
	CommandBuffer VkCommandBuffer
	Contents      VkSubpassContents
}

// VkCmdEndRenderPass is a call to vkCmdEndRenderPass.
type VkCmdEndRenderPass struct {
	CommandBuffer VkCommandBuffer
}

// VkCmdBeginRendering is a call to vkCmdBeginRendering.
type VkCmdBeginRendering struct {
	CommandBuffer VkCommandBuffer
	RenderingInfo VkRenderingInfo
}

// VkCmdEndRendering is a call to vkCmdEndRendering.
type VkCmdEndRendering struct {
	CommandBuffer VkCommandBuffer
}

// VkCmdExecuteCommands is a call to vkCmdExecuteCommands.
type VkCmdExecuteCommands struct {
	CommandBuffer  VkCommandBuffer
	CommandBuffers []VkCommandBuffer
}

// VkCmdPipelineBarrier is a call to vkCmdPipelineBarrier.
type VkCmdPipelineBarrier struct {
	CommandBuffer        VkCommandBuffer
	SrcStageMask         VkPipelineStageFlags
	DstStageMask         VkPipelineStageFlags
	MemoryBarriers       []VkMemoryBarrier
	BufferMemoryBarriers []VkBufferMemoryBarrier
	ImageMemoryBarriers  []VkImageMemoryBarrier
}

// VkCmdPipelineBarrier2 is a call to vkCmdPipelineBarrier2.
type VkCmdPipelineBarrier2 struct {
	CommandBuffer  VkCommandBuffer
	DependencyInfo VkDependencyInfo
}

// VkCmdSetEvent is a call to vkCmdSetEvent.
type VkCmdSetEvent struct {
	CommandBuffer VkCommandBuffer
	Event         VkEvent
	StageMask     VkPipelineStageFlags
}

// VkCmdResetEvent is a call to vkCmdResetEvent.
type VkCmdResetEvent struct {
	CommandBuffer VkCommandBuffer
	Event         VkEvent
	StageMask     VkPipelineStageFlags
}

// VkCmdWaitEvents is a call to vkCmdWaitEvents.
type VkCmdWaitEvents struct {
	CommandBuffer        VkCommandBuffer
	Events               []VkEvent
	SrcStageMask         VkPipelineStageFlags
	DstStageMask         VkPipelineStageFlags
	MemoryBarriers       []VkMemoryBarrier
	BufferMemoryBarriers []VkBufferMemoryBarrier
	ImageMemoryBarriers  []VkImageMemoryBarrier
}

// VkCmdBeginQuery is a call to vkCmdBeginQuery.
type VkCmdBeginQuery struct {
	CommandBuffer VkCommandBuffer
	QueryPool     VkQueryPool
	Query         uint32
	Flags         VkQueryControlFlags
}

// VkCmdEndQuery is a call to vkCmdEndQuery.
type VkCmdEndQuery struct {
	CommandBuffer VkCommandBuffer
	QueryPool     VkQueryPool
	Query         uint32
}

// VkCmdResetQueryPool is a call to vkCmdResetQueryPool.
type VkCmdResetQueryPool struct {
	CommandBuffer VkCommandBuffer
	QueryPool     VkQueryPool
	FirstQuery    uint32
	QueryCount    uint32
}

// VkCmdWriteTimestamp is a call to vkCmdWriteTimestamp.
type VkCmdWriteTimestamp struct {
	CommandBuffer VkCommandBuffer
	PipelineStage VkPipelineStageFlags
	QueryPool     VkQueryPool
	Query         uint32
}

// VkCmdCopyImage is a call to vkCmdCopyImage.
type VkCmdCopyImage struct {
	CommandBuffer  VkCommandBuffer
	SrcImage       VkImage
	SrcImageLayout VkImageLayout
	DstImage       VkImage
	DstImageLayout VkImageLayout
	Regions        []VkImageCopy
}

// VkCmdCopyBufferToImage is a call to vkCmdCopyBufferToImage.
type VkCmdCopyBufferToImage struct {
	CommandBuffer  VkCommandBuffer
	SrcBuffer      VkBuffer
	DstImage       VkImage
	DstImageLayout VkImageLayout
	Regions        []VkBufferImageCopy
}

// VkCmdCopyImageToBuffer is a call to vkCmdCopyImageToBuffer.
type VkCmdCopyImageToBuffer struct {
	CommandBuffer  VkCommandBuffer
	SrcImage       VkImage
	SrcImageLayout VkImageLayout
	DstBuffer      VkBuffer
	Regions        []VkBufferImageCopy
}

// VkCmdClearColorImage is a call to vkCmdClearColorImage.
type VkCmdClearColorImage struct {
	CommandBuffer VkCommandBuffer
	Image         VkImage
	ImageLayout   VkImageLayout
	Ranges        []VkImageSubresourceRange
}

// VkCmdClearDepthStencilImage is a call to vkCmdClearDepthStencilImage.
type VkCmdClearDepthStencilImage struct {
	CommandBuffer VkCommandBuffer
	Image         VkImage
	ImageLayout   VkImageLayout
	Ranges        []VkImageSubresourceRange
}

func (*VkGetDeviceQueue) CmdName() string { return "vkGetDeviceQueue" }
func (*VkCreateCommandPool) CmdName() string { return "vkCreateCommandPool" }
func (*VkDestroyCommandPool) CmdName() string { return "vkDestroyCommandPool" }
func (*VkResetCommandPool) CmdName() string { return "vkResetCommandPool" }
func (*VkAllocateCommandBuffers) CmdName() string { return "vkAllocateCommandBuffers" }
func (*VkFreeCommandBuffers) CmdName() string { return "vkFreeCommandBuffers" }
func (*VkBeginCommandBuffer) CmdName() string { return "vkBeginCommandBuffer" }
func (*VkEndCommandBuffer) CmdName() string { return "vkEndCommandBuffer" }
func (*VkResetCommandBuffer) CmdName() string { return "vkResetCommandBuffer" }
func (*VkCreateImage) CmdName() string { return "vkCreateImage" }
func (*VkDestroyImage) CmdName() string { return "vkDestroyImage" }
func (*VkCreateImageView) CmdName() string { return "vkCreateImageView" }
func (*VkDestroyImageView) CmdName() string { return "vkDestroyImageView" }
func (*VkCreateBuffer) CmdName() string { return "vkCreateBuffer" }
func (*VkDestroyBuffer) CmdName() string { return "vkDestroyBuffer" }
func (*VkCreateGraphicsPipelines) CmdName() string { return "vkCreateGraphicsPipelines" }
func (*VkCreateComputePipelines) CmdName() string { return "vkCreateComputePipelines" }
func (*VkDestroyPipeline) CmdName() string { return "vkDestroyPipeline" }
func (*VkAllocateDescriptorSets) CmdName() string { return "vkAllocateDescriptorSets" }
func (*VkFreeDescriptorSets) CmdName() string { return "vkFreeDescriptorSets" }
func (*VkUpdateDescriptorSets) CmdName() string { return "vkUpdateDescriptorSets" }
func (*VkCreateRenderPass) CmdName() string { return "vkCreateRenderPass" }
func (*VkDestroyRenderPass) CmdName() string { return "vkDestroyRenderPass" }
func (*VkCreateFramebuffer) CmdName() string { return "vkCreateFramebuffer" }
func (*VkDestroyFramebuffer) CmdName() string { return "vkDestroyFramebuffer" }
func (*VkCreateEvent) CmdName() string { return "vkCreateEvent" }
func (*VkDestroyEvent) CmdName() string { return "vkDestroyEvent" }
func (*VkSetEvent) CmdName() string { return "vkSetEvent" }
func (*VkResetEvent) CmdName() string { return "vkResetEvent" }
func (*VkCreateQueryPool) CmdName() string { return "vkCreateQueryPool" }
func (*VkDestroyQueryPool) CmdName() string { return "vkDestroyQueryPool" }
func (*VkResetQueryPool) CmdName() string { return "vkResetQueryPool" }
func (*VkCreateSemaphore) CmdName() string { return "vkCreateSemaphore" }
func (*VkDestroySemaphore) CmdName() string { return "vkDestroySemaphore" }
func (*VkCreateFence) CmdName() string { return "vkCreateFence" }
func (*VkDestroyFence) CmdName() string { return "vkDestroyFence" }
func (*VkResetFences) CmdName() string { return "vkResetFences" }
func (*VkWaitForFences) CmdName() string { return "vkWaitForFences" }
func (*VkGetFenceStatus) CmdName() string { return "vkGetFenceStatus" }
func (*VkQueueSubmit) CmdName() string { return "vkQueueSubmit" }
func (*VkQueueWaitIdle) CmdName() string { return "vkQueueWaitIdle" }
func (*VkDeviceWaitIdle) CmdName() string { return "vkDeviceWaitIdle" }

func (*VkCreateHeadlessSurfaceEXT) CmdName() string { return "vkCreateHeadlessSurfaceEXT" }
func (*VkCreateAndroidSurfaceKHR) CmdName() string { return "vkCreateAndroidSurfaceKHR" }
func (*VkCreateDisplayPlaneSurfaceKHR) CmdName() string { return "vkCreateDisplayPlaneSurfaceKHR" }
func (*VkDestroySurfaceKHR) CmdName() string { return "vkDestroySurfaceKHR" }
func (*VkGetPhysicalDeviceSurfaceSupportKHR) CmdName() string { return "vkGetPhysicalDeviceSurfaceSupportKHR" }
func (*VkGetPhysicalDeviceDisplayPlanePropertiesKHR) CmdName() string { return "vkGetPhysicalDeviceDisplayPlanePropertiesKHR" }
func (*VkGetDisplayPlaneSupportedDisplaysKHR) CmdName() string { return "vkGetDisplayPlaneSupportedDisplaysKHR" }
func (*VkGetDisplayPlaneCapabilitiesKHR) CmdName() string { return "vkGetDisplayPlaneCapabilitiesKHR" }
func (*VkCreateSwapchainKHR) CmdName() string { return "vkCreateSwapchainKHR" }
func (*VkCreateSharedSwapchainsKHR) CmdName() string { return "vkCreateSharedSwapchainsKHR" }
func (*VkDestroySwapchainKHR) CmdName() string { return "vkDestroySwapchainKHR" }
func (*VkGetSwapchainImagesKHR) CmdName() string { return "vkGetSwapchainImagesKHR" }
func (*VkAcquireNextImageKHR) CmdName() string { return "vkAcquireNextImageKHR" }
func (*VkAcquireNextImage2KHR) CmdName() string { return "vkAcquireNextImage2KHR" }
func (*VkQueuePresentKHR) CmdName() string { return "vkQueuePresentKHR" }
func (*VkWaitForPresentKHR) CmdName() string { return "vkWaitForPresentKHR" }
func (*VkAcquireFullScreenExclusiveModeEXT) CmdName() string { return "vkAcquireFullScreenExclusiveModeEXT" }
func (*VkReleaseFullScreenExclusiveModeEXT) CmdName() string { return "vkReleaseFullScreenExclusiveModeEXT" }

func (*VkCmdBindPipeline) CmdName() string { return "vkCmdBindPipeline" }
func (*VkCmdBindDescriptorSets) CmdName() string { return "vkCmdBindDescriptorSets" }
func (*VkCmdPushDescriptorSetKHR) CmdName() string { return "vkCmdPushDescriptorSetKHR" }
func (*VkCmdBindVertexBuffers) CmdName() string { return "vkCmdBindVertexBuffers" }
func (*VkCmdBindIndexBuffer) CmdName() string { return "vkCmdBindIndexBuffer" }
func (*VkCmdSetViewport) CmdName() string { return "vkCmdSetViewport" }
func (*VkCmdSetScissor) CmdName() string { return "vkCmdSetScissor" }
func (*VkCmdSetLineWidth) CmdName() string { return "vkCmdSetLineWidth" }
func (*VkCmdSetDepthBias) CmdName() string { return "vkCmdSetDepthBias" }
func (*VkCmdSetBlendConstants) CmdName() string { return "vkCmdSetBlendConstants" }
func (*VkCmdSetDepthBounds) CmdName() string { return "vkCmdSetDepthBounds" }
func (*VkCmdSetStencilCompareMask) CmdName() string { return "vkCmdSetStencilCompareMask" }
func (*VkCmdSetStencilWriteMask) CmdName() string { return "vkCmdSetStencilWriteMask" }
func (*VkCmdSetStencilReference) CmdName() string { return "vkCmdSetStencilReference" }
func (*VkCmdSetCullMode) CmdName() string { return "vkCmdSetCullMode" }
func (*VkCmdSetFrontFace) CmdName() string { return "vkCmdSetFrontFace" }
func (*VkCmdSetPrimitiveTopology) CmdName() string { return "vkCmdSetPrimitiveTopology" }
func (*VkCmdSetViewportWithCount) CmdName() string { return "vkCmdSetViewportWithCount" }
func (*VkCmdSetScissorWithCount) CmdName() string { return "vkCmdSetScissorWithCount" }
func (*VkCmdSetDepthTestEnable) CmdName() string { return "vkCmdSetDepthTestEnable" }
func (*VkCmdSetDepthWriteEnable) CmdName() string { return "vkCmdSetDepthWriteEnable" }
func (*VkCmdSetDepthCompareOp) CmdName() string { return "vkCmdSetDepthCompareOp" }
func (*VkCmdSetDepthBoundsTestEnable) CmdName() string { return "vkCmdSetDepthBoundsTestEnable" }
func (*VkCmdSetStencilTestEnable) CmdName() string { return "vkCmdSetStencilTestEnable" }
func (*VkCmdSetStencilOp) CmdName() string { return "vkCmdSetStencilOp" }
func (*VkCmdSetLineStippleEXT) CmdName() string { return "vkCmdSetLineStippleEXT" }
func (*VkCmdSetRasterizerDiscardEnable) CmdName() string { return "vkCmdSetRasterizerDiscardEnable" }
func (*VkCmdSetDepthBiasEnable) CmdName() string { return "vkCmdSetDepthBiasEnable" }
func (*VkCmdSetPrimitiveRestartEnable) CmdName() string { return "vkCmdSetPrimitiveRestartEnable" }
func (*VkCmdSetLogicOpEXT) CmdName() string { return "vkCmdSetLogicOpEXT" }
func (*VkCmdSetPatchControlPointsEXT) CmdName() string { return "vkCmdSetPatchControlPointsEXT" }
func (*VkCmdSetColorWriteEnableEXT) CmdName() string { return "vkCmdSetColorWriteEnableEXT" }
func (*VkCmdSetVertexInputEXT) CmdName() string { return "vkCmdSetVertexInputEXT" }
func (*VkCmdDraw) CmdName() string { return "vkCmdDraw" }
func (*VkCmdDrawIndexed) CmdName() string { return "vkCmdDrawIndexed" }
func (*VkCmdDrawIndirect) CmdName() string { return "vkCmdDrawIndirect" }
func (*VkCmdDrawIndexedIndirect) CmdName() string { return "vkCmdDrawIndexedIndirect" }
func (*VkCmdDispatch) CmdName() string { return "vkCmdDispatch" }
func (*VkCmdDispatchIndirect) CmdName() string { return "vkCmdDispatchIndirect" }
func (*VkCmdTraceRaysKHR) CmdName() string { return "vkCmdTraceRaysKHR" }
func (*VkCmdBuildAccelerationStructuresKHR) CmdName() string { return "vkCmdBuildAccelerationStructuresKHR" }
func (*VkCmdBeginRenderPass) CmdName() string { return "vkCmdBeginRenderPass" }
func (*VkCmdNextSubpass) CmdName() string { return "vkCmdNextSubpass" }
func (*VkCmdEndRenderPass) CmdName() string { return "vkCmdEndRenderPass" }
func (*VkCmdBeginRendering) CmdName() string { return "vkCmdBeginRendering" }
func (*VkCmdEndRendering) CmdName() string { return "vkCmdEndRendering" }
func (*VkCmdExecuteCommands) CmdName() string { return "vkCmdExecuteCommands" }
func (*VkCmdPipelineBarrier) CmdName() string { return "vkCmdPipelineBarrier" }
func (*VkCmdPipelineBarrier2) CmdName() string { return "vkCmdPipelineBarrier2" }
func (*VkCmdSetEvent) CmdName() string { return "vkCmdSetEvent" }
func (*VkCmdResetEvent) CmdName() string { return "vkCmdResetEvent" }
func (*VkCmdWaitEvents) CmdName() string { return "vkCmdWaitEvents" }
func (*VkCmdBeginQuery) CmdName() string { return "vkCmdBeginQuery" }
func (*VkCmdEndQuery) CmdName() string { return "vkCmdEndQuery" }
func (*VkCmdResetQueryPool) CmdName() string { return "vkCmdResetQueryPool" }
func (*VkCmdWriteTimestamp) CmdName() string { return "vkCmdWriteTimestamp" }
func (*VkCmdCopyImage) CmdName() string { return "vkCmdCopyImage" }
func (*VkCmdCopyBufferToImage) CmdName() string { return "vkCmdCopyBufferToImage" }
func (*VkCmdCopyImageToBuffer) CmdName() string { return "vkCmdCopyImageToBuffer" }
func (*VkCmdClearColorImage) CmdName() string { return "vkCmdClearColorImage" }
func (*VkCmdClearDepthStencilImage) CmdName() string { return "vkCmdClearDepthStencilImage" }

func (c *VkCmdBindPipeline) Target() VkCommandBuffer { return c.CommandBuffer }
func (c *VkCmdBindDescriptorSets) Target() VkCommandBuffer { return c.CommandBuffer }
func (c *VkCmdPushDescriptorSetKHR) Target() VkCommandBuffer { return c.CommandBuffer }
func (c *VkCmdBindVertexBuffers) Target() VkCommandBuffer { return c.CommandBuffer }
func (c *VkCmdBindIndexBuffer) Target() VkCommandBuffer { return c.CommandBuffer }
func (c *VkCmdSetViewport) Target() VkCommandBuffer { return c.CommandBuffer }
func (c *VkCmdSetScissor) Target() VkCommandBuffer { return c.CommandBuffer }
func (c *VkCmdSetLineWidth) Target() VkCommandBuffer { return c.CommandBuffer }
func (c *VkCmdSetDepthBias) Target() VkCommandBuffer { return c.CommandBuffer }
func (c *VkCmdSetBlendConstants) Target() VkCommandBuffer { return c.CommandBuffer }
func (c *VkCmdSetDepthBounds) Target() VkCommandBuffer { return c.CommandBuffer }
func (c *VkCmdSetStencilCompareMask) Target() VkCommandBuffer { return c.CommandBuffer }
func (c *VkCmdSetStencilWriteMask) Target() VkCommandBuffer { return c.CommandBuffer }
func (c *VkCmdSetStencilReference) Target() VkCommandBuffer { return c.CommandBuffer }
func (c *VkCmdSetCullMode) Target() VkCommandBuffer { return c.CommandBuffer }
func (c *VkCmdSetFrontFace) Target() VkCommandBuffer { return c.CommandBuffer }
func (c *VkCmdSetPrimitiveTopology) Target() VkCommandBuffer { return c.CommandBuffer }
func (c *VkCmdSetViewportWithCount) Target() VkCommandBuffer { return c.CommandBuffer }
func (c *VkCmdSetScissorWithCount) Target() VkCommandBuffer { return c.CommandBuffer }
func (c *VkCmdSetDepthTestEnable) Target() VkCommandBuffer { return c.CommandBuffer }
func (c *VkCmdSetDepthWriteEnable) Target() VkCommandBuffer { return c.CommandBuffer }
func (c *VkCmdSetDepthCompareOp) Target() VkCommandBuffer { return c.CommandBuffer }
func (c *VkCmdSetDepthBoundsTestEnable) Target() VkCommandBuffer { return c.CommandBuffer }
func (c *VkCmdSetStencilTestEnable) Target() VkCommandBuffer { return c.CommandBuffer }
func (c *VkCmdSetStencilOp) Target() VkCommandBuffer { return c.CommandBuffer }
func (c *VkCmdSetLineStippleEXT) Target() VkCommandBuffer { return c.CommandBuffer }
func (c *VkCmdSetRasterizerDiscardEnable) Target() VkCommandBuffer { return c.CommandBuffer }
func (c *VkCmdSetDepthBiasEnable) Target() VkCommandBuffer { return c.CommandBuffer }
func (c *VkCmdSetPrimitiveRestartEnable) Target() VkCommandBuffer { return c.CommandBuffer }
func (c *VkCmdSetLogicOpEXT) Target() VkCommandBuffer { return c.CommandBuffer }
func (c *VkCmdSetPatchControlPointsEXT) Target() VkCommandBuffer { return c.CommandBuffer }
func (c *VkCmdSetColorWriteEnableEXT) Target() VkCommandBuffer { return c.CommandBuffer }
func (c *VkCmdSetVertexInputEXT) Target() VkCommandBuffer { return c.CommandBuffer }
func (c *VkCmdDraw) Target() VkCommandBuffer { return c.CommandBuffer }
func (c *VkCmdDrawIndexed) Target() VkCommandBuffer { return c.CommandBuffer }
func (c *VkCmdDrawIndirect) Target() VkCommandBuffer { return c.CommandBuffer }
func (c *VkCmdDrawIndexedIndirect) Target() VkCommandBuffer { return c.CommandBuffer }
func (c *VkCmdDispatch) Target() VkCommandBuffer { return c.CommandBuffer }
func (c *VkCmdDispatchIndirect) Target() VkCommandBuffer { return c.CommandBuffer }
func (c *VkCmdTraceRaysKHR) Target() VkCommandBuffer { return c.CommandBuffer }
func (c *VkCmdBuildAccelerationStructuresKHR) Target() VkCommandBuffer { return c.CommandBuffer }
func (c *VkCmdBeginRenderPass) Target() VkCommandBuffer { return c.CommandBuffer }
func (c *VkCmdNextSubpass) Target() VkCommandBuffer { return c.CommandBuffer }
func (c *VkCmdEndRenderPass) Target() VkCommandBuffer { return c.CommandBuffer }
func (c *VkCmdBeginRendering) Target() VkCommandBuffer { return c.CommandBuffer }
func (c *VkCmdEndRendering) Target() VkCommandBuffer { return c.CommandBuffer }
func (c *VkCmdExecuteCommands) Target() VkCommandBuffer { return c.CommandBuffer }
func (c *VkCmdPipelineBarrier) Target() VkCommandBuffer { return c.CommandBuffer }
func (c *VkCmdPipelineBarrier2) Target() VkCommandBuffer { return c.CommandBuffer }
func (c *VkCmdSetEvent) Target() VkCommandBuffer { return c.CommandBuffer }
func (c *VkCmdResetEvent) Target() VkCommandBuffer { return c.CommandBuffer }
func (c *VkCmdWaitEvents) Target() VkCommandBuffer { return c.CommandBuffer }
func (c *VkCmdBeginQuery) Target() VkCommandBuffer { return c.CommandBuffer }
func (c *VkCmdEndQuery) Target() VkCommandBuffer { return c.CommandBuffer }
func (c *VkCmdResetQueryPool) Target() VkCommandBuffer { return c.CommandBuffer }
func (c *VkCmdWriteTimestamp) Target() VkCommandBuffer { return c.CommandBuffer }
func (c *VkCmdCopyImage) Target() VkCommandBuffer { return c.CommandBuffer }
func (c *VkCmdCopyBufferToImage) Target() VkCommandBuffer { return c.CommandBuffer }
func (c *VkCmdCopyImageToBuffer) Target() VkCommandBuffer { return c.CommandBuffer }
func (c *VkCmdClearColorImage) Target() VkCommandBuffer { return c.CommandBuffer }
func (c *VkCmdClearDepthStencilImage) Target() VkCommandBuffer { return c.CommandBuffer }

// Cmds maps each supported entry point name to a constructor of its command.
var Cmds = map[string]func() Cmd{
	"vkGetDeviceQueue":                             func() Cmd { return &VkGetDeviceQueue{} },
	"vkCreateCommandPool":                          func() Cmd { return &VkCreateCommandPool{} },
	"vkDestroyCommandPool":                         func() Cmd { return &VkDestroyCommandPool{} },
	"vkResetCommandPool":                           func() Cmd { return &VkResetCommandPool{} },
	"vkAllocateCommandBuffers":                     func() Cmd { return &VkAllocateCommandBuffers{} },
	"vkFreeCommandBuffers":                         func() Cmd { return &VkFreeCommandBuffers{} },
	"vkBeginCommandBuffer":                         func() Cmd { return &VkBeginCommandBuffer{} },
	"vkEndCommandBuffer":                           func() Cmd { return &VkEndCommandBuffer{} },
	"vkResetCommandBuffer":                         func() Cmd { return &VkResetCommandBuffer{} },
	"vkCreateImage":                                func() Cmd { return &VkCreateImage{} },
	"vkDestroyImage":                               func() Cmd { return &VkDestroyImage{} },
	"vkCreateImageView":                            func() Cmd { return &VkCreateImageView{} },
	"vkDestroyImageView":                           func() Cmd { return &VkDestroyImageView{} },
	"vkCreateBuffer":                               func() Cmd { return &VkCreateBuffer{} },
	"vkDestroyBuffer":                              func() Cmd { return &VkDestroyBuffer{} },
	"vkCreateGraphicsPipelines":                    func() Cmd { return &VkCreateGraphicsPipelines{} },
	"vkCreateComputePipelines":                     func() Cmd { return &VkCreateComputePipelines{} },
	"vkDestroyPipeline":                            func() Cmd { return &VkDestroyPipeline{} },
	"vkAllocateDescriptorSets":                     func() Cmd { return &VkAllocateDescriptorSets{} },
	"vkFreeDescriptorSets":                         func() Cmd { return &VkFreeDescriptorSets{} },
	"vkUpdateDescriptorSets":                       func() Cmd { return &VkUpdateDescriptorSets{} },
	"vkCreateRenderPass":                           func() Cmd { return &VkCreateRenderPass{} },
	"vkDestroyRenderPass":                          func() Cmd { return &VkDestroyRenderPass{} },
	"vkCreateFramebuffer":                          func() Cmd { return &VkCreateFramebuffer{} },
	"vkDestroyFramebuffer":                         func() Cmd { return &VkDestroyFramebuffer{} },
	"vkCreateEvent":                                func() Cmd { return &VkCreateEvent{} },
	"vkDestroyEvent":                               func() Cmd { return &VkDestroyEvent{} },
	"vkSetEvent":                                   func() Cmd { return &VkSetEvent{} },
	"vkResetEvent":                                 func() Cmd { return &VkResetEvent{} },
	"vkCreateQueryPool":                            func() Cmd { return &VkCreateQueryPool{} },
	"vkDestroyQueryPool":                           func() Cmd { return &VkDestroyQueryPool{} },
	"vkResetQueryPool":                             func() Cmd { return &VkResetQueryPool{} },
	"vkCreateSemaphore":                            func() Cmd { return &VkCreateSemaphore{} },
	"vkDestroySemaphore":                           func() Cmd { return &VkDestroySemaphore{} },
	"vkCreateFence":                                func() Cmd { return &VkCreateFence{} },
	"vkDestroyFence":                               func() Cmd { return &VkDestroyFence{} },
	"vkResetFences":                                func() Cmd { return &VkResetFences{} },
	"vkWaitForFences":                              func() Cmd { return &VkWaitForFences{} },
	"vkGetFenceStatus":                             func() Cmd { return &VkGetFenceStatus{} },
	"vkQueueSubmit":                                func() Cmd { return &VkQueueSubmit{} },
	"vkQueueWaitIdle":                              func() Cmd { return &VkQueueWaitIdle{} },
	"vkDeviceWaitIdle":                             func() Cmd { return &VkDeviceWaitIdle{} },
	"vkCreateHeadlessSurfaceEXT":                   func() Cmd { return &VkCreateHeadlessSurfaceEXT{} },
	"vkCreateAndroidSurfaceKHR":                    func() Cmd { return &VkCreateAndroidSurfaceKHR{} },
	"vkCreateDisplayPlaneSurfaceKHR":               func() Cmd { return &VkCreateDisplayPlaneSurfaceKHR{} },
	"vkDestroySurfaceKHR":                          func() Cmd { return &VkDestroySurfaceKHR{} },
	"vkGetPhysicalDeviceSurfaceSupportKHR":         func() Cmd { return &VkGetPhysicalDeviceSurfaceSupportKHR{} },
	"vkGetPhysicalDeviceDisplayPlanePropertiesKHR": func() Cmd { return &VkGetPhysicalDeviceDisplayPlanePropertiesKHR{} },
	"vkGetDisplayPlaneSupportedDisplaysKHR":        func() Cmd { return &VkGetDisplayPlaneSupportedDisplaysKHR{} },
	"vkGetDisplayPlaneCapabilitiesKHR":             func() Cmd { return &VkGetDisplayPlaneCapabilitiesKHR{} },
	"vkCreateSwapchainKHR":                         func() Cmd { return &VkCreateSwapchainKHR{} },
	"vkCreateSharedSwapchainsKHR":                  func() Cmd { return &VkCreateSharedSwapchainsKHR{} },
	"vkDestroySwapchainKHR":                        func() Cmd { return &VkDestroySwapchainKHR{} },
	"vkGetSwapchainImagesKHR":                      func() Cmd { return &VkGetSwapchainImagesKHR{} },
	"vkAcquireNextImageKHR":                        func() Cmd { return &VkAcquireNextImageKHR{} },
	"vkAcquireNextImage2KHR":                       func() Cmd { return &VkAcquireNextImage2KHR{} },
	"vkQueuePresentKHR":                            func() Cmd { return &VkQueuePresentKHR{} },
	"vkWaitForPresentKHR":                          func() Cmd { return &VkWaitForPresentKHR{} },
	"vkAcquireFullScreenExclusiveModeEXT":          func() Cmd { return &VkAcquireFullScreenExclusiveModeEXT{} },
	"vkReleaseFullScreenExclusiveModeEXT":          func() Cmd { return &VkReleaseFullScreenExclusiveModeEXT{} },
	"vkCmdBindPipeline":                            func() Cmd { return &VkCmdBindPipeline{} },
	"vkCmdBindDescriptorSets":                      func() Cmd { return &VkCmdBindDescriptorSets{} },
	"vkCmdPushDescriptorSetKHR":                    func() Cmd { return &VkCmdPushDescriptorSetKHR{} },
	"vkCmdBindVertexBuffers":                       func() Cmd { return &VkCmdBindVertexBuffers{} },
	"vkCmdBindIndexBuffer":                         func() Cmd { return &VkCmdBindIndexBuffer{} },
	"vkCmdSetViewport":                             func() Cmd { return &VkCmdSetViewport{} },
	"vkCmdSetScissor":                              func() Cmd { return &VkCmdSetScissor{} },
	"vkCmdSetLineWidth":                            func() Cmd { return &VkCmdSetLineWidth{} },
	"vkCmdSetDepthBias":                            func() Cmd { return &VkCmdSetDepthBias{} },
	"vkCmdSetBlendConstants":                       func() Cmd { return &VkCmdSetBlendConstants{} },
	"vkCmdSetDepthBounds":                          func() Cmd { return &VkCmdSetDepthBounds{} },
	"vkCmdSetStencilCompareMask":                   func() Cmd { return &VkCmdSetStencilCompareMask{} },
	"vkCmdSetStencilWriteMask":                     func() Cmd { return &VkCmdSetStencilWriteMask{} },
	"vkCmdSetStencilReference":                     func() Cmd { return &VkCmdSetStencilReference{} },
	"vkCmdSetCullMode":                             func() Cmd { return &VkCmdSetCullMode{} },
	"vkCmdSetFrontFace":                            func() Cmd { return &VkCmdSetFrontFace{} },
	"vkCmdSetPrimitiveTopology":                    func() Cmd { return &VkCmdSetPrimitiveTopology{} },
	"vkCmdSetViewportWithCount":                    func() Cmd { return &VkCmdSetViewportWithCount{} },
	"vkCmdSetScissorWithCount":                     func() Cmd { return &VkCmdSetScissorWithCount{} },
	"vkCmdSetDepthTestEnable":                      func() Cmd { return &VkCmdSetDepthTestEnable{} },
	"vkCmdSetDepthWriteEnable":                     func() Cmd { return &VkCmdSetDepthWriteEnable{} },
	"vkCmdSetDepthCompareOp":                       func() Cmd { return &VkCmdSetDepthCompareOp{} },
	"vkCmdSetDepthBoundsTestEnable":                func() Cmd { return &VkCmdSetDepthBoundsTestEnable{} },
	"vkCmdSetStencilTestEnable":                    func() Cmd { return &VkCmdSetStencilTestEnable{} },
	"vkCmdSetStencilOp":                            func() Cmd { return &VkCmdSetStencilOp{} },
	"vkCmdSetLineStippleEXT":                       func() Cmd { return &VkCmdSetLineStippleEXT{} },
	"vkCmdSetRasterizerDiscardEnable":              func() Cmd { return &VkCmdSetRasterizerDiscardEnable{} },
	"vkCmdSetDepthBiasEnable":                      func() Cmd { return &VkCmdSetDepthBiasEnable{} },
	"vkCmdSetPrimitiveRestartEnable":               func() Cmd { return &VkCmdSetPrimitiveRestartEnable{} },
	"vkCmdSetLogicOpEXT":                           func() Cmd { return &VkCmdSetLogicOpEXT{} },
	"vkCmdSetPatchControlPointsEXT":                func() Cmd { return &VkCmdSetPatchControlPointsEXT{} },
	"vkCmdSetColorWriteEnableEXT":                  func() Cmd { return &VkCmdSetColorWriteEnableEXT{} },
	"vkCmdSetVertexInputEXT":                       func() Cmd { return &VkCmdSetVertexInputEXT{} },
	"vkCmdDraw":                                    func() Cmd { return &VkCmdDraw{} },
	"vkCmdDrawIndexed":                             func() Cmd { return &VkCmdDrawIndexed{} },
	"vkCmdDrawIndirect":                            func() Cmd { return &VkCmdDrawIndirect{} },
	"vkCmdDrawIndexedIndirect":                     func() Cmd { return &VkCmdDrawIndexedIndirect{} },
	"vkCmdDispatch":                                func() Cmd { return &VkCmdDispatch{} },
	"vkCmdDispatchIndirect":                        func() Cmd { return &VkCmdDispatchIndirect{} },
	"vkCmdTraceRaysKHR":                            func() Cmd { return &VkCmdTraceRaysKHR{} },
	"vkCmdBuildAccelerationStructuresKHR":          func() Cmd { return &VkCmdBuildAccelerationStructuresKHR{} },
	"vkCmdBeginRenderPass":                         func() Cmd { return &VkCmdBeginRenderPass{} },
	"vkCmdNextSubpass":                             func() Cmd { return &VkCmdNextSubpass{} },
	"vkCmdEndRenderPass":                           func() Cmd { return &VkCmdEndRenderPass{} },
	"vkCmdBeginRendering":                          func() Cmd { return &VkCmdBeginRendering{} },
	"vkCmdEndRendering":                            func() Cmd { return &VkCmdEndRendering{} },
	"vkCmdExecuteCommands":                         func() Cmd { return &VkCmdExecuteCommands{} },
	"vkCmdPipelineBarrier":                         func() Cmd { return &VkCmdPipelineBarrier{} },
	"vkCmdPipelineBarrier2":                        func() Cmd { return &VkCmdPipelineBarrier2{} },
	"vkCmdSetEvent":                                func() Cmd { return &VkCmdSetEvent{} },
	"vkCmdResetEvent":                              func() Cmd { return &VkCmdResetEvent{} },
	"vkCmdWaitEvents":                              func() Cmd { return &VkCmdWaitEvents{} },
	"vkCmdBeginQuery":                              func() Cmd { return &VkCmdBeginQuery{} },
	"vkCmdEndQuery":                                func() Cmd { return &VkCmdEndQuery{} },
	"vkCmdResetQueryPool":                          func() Cmd { return &VkCmdResetQueryPool{} },
	"vkCmdWriteTimestamp":                          func() Cmd { return &VkCmdWriteTimestamp{} },
	"vkCmdCopyImage":                               func() Cmd { return &VkCmdCopyImage{} },
	"vkCmdCopyBufferToImage":                       func() Cmd { return &VkCmdCopyBufferToImage{} },
	"vkCmdCopyImageToBuffer":                       func() Cmd { return &VkCmdCopyImageToBuffer{} },
	"vkCmdClearColorImage":                         func() Cmd { return &VkCmdClearColorImage{} },
	"vkCmdClearDepthStencilImage":                  func() Cmd { return &VkCmdClearDepthStencilImage{} },
}
