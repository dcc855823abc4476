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

type VkExtent2D struct {
	Width  uint32
	Height uint32
}

type VkExtent3D struct {
	Width  uint32
	Height uint32
	Depth  uint32
}

type VkOffset2D struct {
	X int32
	Y int32
}

type VkOffset3D struct {
	X int32
	Y int32
	Z int32
}

type VkRect2D struct {
	Offset VkOffset2D
	Extent VkExtent2D
}

type VkImageSubresourceRange struct {
	AspectMask     VkImageAspectFlags
	BaseMipLevel   uint32
	LevelCount     uint32
	BaseArrayLayer uint32
	LayerCount     uint32
}

type VkImageSubresourceLayers struct {
	AspectMask     VkImageAspectFlags
	MipLevel       uint32
	BaseArrayLayer uint32
	LayerCount     uint32
}

// Range returns the subresource range covered by the layers.
func (l VkImageSubresourceLayers) Range() VkImageSubresourceRange {
	return VkImageSubresourceRange{
		AspectMask:     l.AspectMask,
		BaseMipLevel:   l.MipLevel,
		LevelCount:     1,
		BaseArrayLayer: l.BaseArrayLayer,
		LayerCount:     l.LayerCount,
	}
}

type VkImageCreateInfo struct {
	Flags                 VkImageCreateFlags
	ImageType             VkImageType
	Format                VkFormat
	Extent                VkExtent3D
	MipLevels             uint32
	ArrayLayers           uint32
	Samples               uint32
	Tiling                VkImageTiling
	Usage                 VkImageUsageFlags
	SharingMode           VkSharingMode
	QueueFamilyIndices    []uint32
	InitialLayout         VkImageLayout
	ExternalFormatAndroid bool
}

type VkImageViewCreateInfo struct {
	Image            VkImage
	Format           VkFormat
	SubresourceRange VkImageSubresourceRange
}

type VkBufferCreateInfo struct {
	Size               uint64
	Usage              uint32
	SharingMode        VkSharingMode
	QueueFamilyIndices []uint32
}

type VkCommandPoolCreateInfo struct {
	Flags            VkCommandPoolCreateFlags
	QueueFamilyIndex uint32
}

type VkCommandBufferAllocateInfo struct {
	CommandPool        VkCommandPool
	Level              VkCommandBufferLevel
	CommandBufferCount uint32
}

type VkCommandBufferInheritanceInfo struct {
	RenderPass           VkRenderPass
	Subpass              uint32
	Framebuffer          VkFramebuffer
	OcclusionQueryEnable bool
	// Rendering is the VkCommandBufferInheritanceRenderingInfo extension.
	Rendering *VkCommandBufferInheritanceRenderingInfo
}

type VkCommandBufferInheritanceRenderingInfo struct {
	Flags                   VkRenderingFlags
	ColorAttachmentFormats  []VkFormat
	DepthAttachmentFormat   VkFormat
	StencilAttachmentFormat VkFormat
}

type VkCommandBufferBeginInfo struct {
	Flags           VkCommandBufferUsageFlags
	InheritanceInfo *VkCommandBufferInheritanceInfo
}

type VkMemoryBarrier struct {
	SrcStageMask  VkPipelineStageFlags
	SrcAccessMask VkAccessFlags
	DstStageMask  VkPipelineStageFlags
	DstAccessMask VkAccessFlags
}

type VkBufferMemoryBarrier struct {
	SrcStageMask        VkPipelineStageFlags
	SrcAccessMask       VkAccessFlags
	DstStageMask        VkPipelineStageFlags
	DstAccessMask       VkAccessFlags
	SrcQueueFamilyIndex uint32
	DstQueueFamilyIndex uint32
	Buffer              VkBuffer
	Offset              uint64
	Size                uint64
}

type VkImageMemoryBarrier struct {
	SrcStageMask        VkPipelineStageFlags
	SrcAccessMask       VkAccessFlags
	DstStageMask        VkPipelineStageFlags
	DstAccessMask       VkAccessFlags
	OldLayout           VkImageLayout
	NewLayout           VkImageLayout
	SrcQueueFamilyIndex uint32
	DstQueueFamilyIndex uint32
	Image               VkImage
	SubresourceRange    VkImageSubresourceRange
}

// VkDependencyInfo is the synchronization2 barrier batch. The per barrier
// stage masks are only meaningful in this form.
type VkDependencyInfo struct {
	MemoryBarriers       []VkMemoryBarrier
	BufferMemoryBarriers []VkBufferMemoryBarrier
	ImageMemoryBarriers  []VkImageMemoryBarrier
}

type VkAttachmentDescription struct {
	Format        VkFormat
	LoadOp        VkAttachmentLoadOp
	InitialLayout VkImageLayout
	FinalLayout   VkImageLayout
}

type VkAttachmentReference struct {
	Attachment uint32
	Layout     VkImageLayout
}

// VK_ATTACHMENT_UNUSED marks an unused attachment reference.
const VK_ATTACHMENT_UNUSED = ^uint32(0)

type VkSubpassDescription struct {
	PipelineBindPoint      VkPipelineBindPoint
	InputAttachments       []VkAttachmentReference
	ColorAttachments       []VkAttachmentReference
	ResolveAttachments     []VkAttachmentReference
	DepthStencilAttachment *VkAttachmentReference
}

type VkRenderPassCreateInfo struct {
	Attachments []VkAttachmentDescription
	Subpasses   []VkSubpassDescription
}

type VkFramebufferCreateInfo struct {
	RenderPass  VkRenderPass
	Attachments []VkImageView
	Width       uint32
	Height      uint32
	Layers      uint32
}

type VkRenderPassBeginInfo struct {
	RenderPass  VkRenderPass
	Framebuffer VkFramebuffer
	RenderArea  VkRect2D
}

type VkRenderingAttachmentInfo struct {
	ImageView   VkImageView
	ImageLayout VkImageLayout
}

type VkRenderingInfo struct {
	Flags             VkRenderingFlags
	RenderArea        VkRect2D
	LayerCount        uint32
	ViewMask          uint32
	ColorAttachments  []VkRenderingAttachmentInfo
	DepthAttachment   *VkRenderingAttachmentInfo
	StencilAttachment *VkRenderingAttachmentInfo
}

type VkGraphicsPipelineCreateInfo struct {
	DynamicStates []VkDynamicState
	RenderPass    VkRenderPass
	Subpass       uint32
}

type VkComputePipelineCreateInfo struct {
	Flags uint32
}

type VkDescriptorImageInfo struct {
	ImageView   VkImageView
	ImageLayout VkImageLayout
}

type VkDescriptorBufferInfo struct {
	Buffer VkBuffer
	Offset uint64
	Range  uint64
}

type VkWriteDescriptorSet struct {
	DstSet          VkDescriptorSet
	DstBinding      uint32
	DstArrayElement uint32
	DescriptorType  VkDescriptorType
	ImageInfo       []VkDescriptorImageInfo
	BufferInfo      []VkDescriptorBufferInfo
}

type VkDescriptorSetAllocateInfo struct {
	// UpdateAfterBind is set when every set layout was created with
	// VK_DESCRIPTOR_SET_LAYOUT_CREATE_UPDATE_AFTER_BIND_POOL_BIT.
	UpdateAfterBind bool
	SetCount        uint32
}

type VkQueryPoolCreateInfo struct {
	QueryType  VkQueryType
	QueryCount uint32
}

type VkSemaphoreCreateInfo struct {
	SemaphoreType VkSemaphoreType
	InitialValue  uint64
}

type VkFenceCreateInfo struct {
	Flags VkFenceCreateFlags
}

type VkSubmitInfo struct {
	WaitSemaphores   []VkSemaphore
	WaitDstStageMask []VkPipelineStageFlags
	CommandBuffers   []VkCommandBuffer
	SignalSemaphores []VkSemaphore
}

type VkImageCopy struct {
	SrcSubresource VkImageSubresourceLayers
	DstSubresource VkImageSubresourceLayers
}

type VkBufferImageCopy struct {
	BufferOffset     uint64
	ImageSubresource VkImageSubresourceLayers
}

type VkQueueFamilyProperties struct {
	QueueFlags VkQueueFlags
	QueueCount uint32
}

type VkPhysicalDeviceLimits struct {
	MaxImageDimension2D uint32
}

type VkFormatProperties struct {
	LinearTilingFeatures  VkFormatFeatureFlags
	OptimalTilingFeatures VkFormatFeatureFlags
}

type VkImageFormatProperties struct {
	MaxExtent       VkExtent3D
	MaxMipLevels    uint32
	MaxArrayLayers  uint32
	SampleCounts    uint32
	MaxResourceSize uint64
}

type VkSurfaceCapabilitiesKHR struct {
	MinImageCount           uint32
	MaxImageCount           uint32
	CurrentExtent           VkExtent2D
	MinImageExtent          VkExtent2D
	MaxImageExtent          VkExtent2D
	MaxImageArrayLayers     uint32
	SupportedTransforms     VkSurfaceTransformFlagsKHR
	CurrentTransform        VkSurfaceTransformFlagBitsKHR
	SupportedCompositeAlpha VkCompositeAlphaFlagsKHR
	SupportedUsageFlags     VkImageUsageFlags
}

type VkSurfaceFormatKHR struct {
	Format     VkFormat
	ColorSpace VkColorSpaceKHR
}

type VkSwapchainCreateInfoKHR struct {
	Flags              VkSwapchainCreateFlagsKHR
	Surface            VkSurfaceKHR
	MinImageCount      uint32
	ImageFormat        VkFormat
	ImageColorSpace    VkColorSpaceKHR
	ImageExtent        VkExtent2D
	ImageArrayLayers   uint32
	ImageUsage         VkImageUsageFlags
	ImageSharingMode   VkSharingMode
	QueueFamilyIndices []uint32
	PreTransform       VkSurfaceTransformFlagBitsKHR
	CompositeAlpha     VkCompositeAlphaFlagBitsKHR
	PresentMode        VkPresentModeKHR
	Clipped            bool
	OldSwapchain       VkSwapchainKHR
	// FullScreenExclusive is the VkSurfaceFullScreenExclusiveInfoEXT
	// extension, DEFAULT when absent.
	FullScreenExclusive VkFullScreenExclusiveEXT
	// ViewFormats is the VkImageFormatListCreateInfo extension.
	ViewFormats []VkFormat
}

type VkRectLayerKHR struct {
	Offset VkOffset2D
	Extent VkExtent2D
	Layer  uint32
}

type VkPresentRegionKHR struct {
	Rectangles []VkRectLayerKHR
}

type VkPresentTimeGOOGLE struct {
	PresentID          uint32
	DesiredPresentTime uint64
}

type VkDisplayPresentInfoKHR struct {
	SrcRect    VkRect2D
	DstRect    VkRect2D
	Persistent bool
}

type VkPresentInfoKHR struct {
	WaitSemaphores []VkSemaphore
	Swapchains     []VkSwapchainKHR
	ImageIndices   []uint32
	// Regions is the VkPresentRegionsKHR extension, one entry per swapchain.
	Regions []VkPresentRegionKHR
	// Times is the VkPresentTimesInfoGOOGLE extension.
	Times []VkPresentTimeGOOGLE
	// PresentIds is the VkPresentIdKHR extension.
	PresentIds []uint64
	// DisplayPresent is the VkDisplayPresentInfoKHR extension.
	DisplayPresent *VkDisplayPresentInfoKHR
}

type VkAcquireNextImageInfoKHR struct {
	Swapchain  VkSwapchainKHR
	Timeout    uint64
	Semaphore  VkSemaphore
	Fence      VkFence
	DeviceMask uint32
}

type VkDisplayPlanePropertiesKHR struct {
	CurrentDisplay    VkDisplayKHR
	CurrentStackIndex uint32
}

type VkDisplayPlaneCapabilitiesKHR struct {
	SupportedAlpha VkDisplayPlaneAlphaFlagsKHR
}

type VkDisplaySurfaceCreateInfoKHR struct {
	DisplayMode     VkDisplayModeKHR
	PlaneIndex      uint32
	PlaneStackIndex uint32
	Transform       VkSurfaceTransformFlagBitsKHR
	GlobalAlpha     float32
	AlphaMode       VkDisplayPlaneAlphaFlagBitsKHR
	ImageExtent     VkExtent2D
}
