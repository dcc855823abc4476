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
	"fmt"
	"sync"

	"github.com/jinzhu/copier"

	"github.com/google/vkstate/core/log"
	"github.com/google/vkstate/layer/registry"
	"github.com/google/vkstate/layer/report"
	"github.com/google/vkstate/layer/state"
	"github.com/google/vkstate/layer/vulkan"
)

// ImageState is the position of a presentable image in the acquire and
// present cycle.
type ImageState int

const (
	// ImageAcquirable is an image that has never been acquired.
	ImageAcquirable ImageState = iota
	ImageAcquired
	// ImagePresented is an image handed back to the presentation engine. It
	// can be acquired again.
	ImagePresented
)

func (s ImageState) String() string {
	switch s {
	case ImageAcquirable:
		return "acquirable"
	case ImageAcquired:
		return "acquired"
	case ImagePresented:
		return "presented"
	}
	return fmt.Sprintf("ImageState(%d)", int(s))
}

// ImagesQuery tracks the two call idiom of vkGetSwapchainImagesKHR.
type ImagesQuery int

const (
	ImagesUncalled ImagesQuery = iota
	// ImagesCountQueried is set once the application asked for the number of
	// images.
	ImagesCountQueried
	// ImagesDetailsQueried is set once the images have been returned.
	ImagesDetailsQueried
)

// SwapchainImage is one presentable image of a swapchain.
type SwapchainImage struct {
	// Image is nil until the image has been returned by
	// vkGetSwapchainImagesKHR.
	Image *state.Image
	State ImageState
}

// Swapchain is the state of a VkSwapchainKHR.
type Swapchain struct {
	registry.Node
	CreateInfo vulkan.VkSwapchainCreateInfoKHR
	Surface    *Surface

	mu           sync.Mutex
	retired      bool
	images       []SwapchainImage
	acquired     uint32
	maxPresentID uint64
	query        ImagesQuery
	// queried is the count returned by the sizing call.
	queried   uint32
	exclusive bool
}

// VkSwapchain returns the handle of the swapchain.
func (s *Swapchain) VkSwapchain() vulkan.VkSwapchainKHR { return s.Handle().(vulkan.VkSwapchainKHR) }

// Retired returns true once the swapchain has been passed as the old
// swapchain of a new one.
func (s *Swapchain) Retired() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.retired
}

func (s *Swapchain) retire() {
	s.mu.Lock()
	s.retired = true
	s.mu.Unlock()
}

// Images returns the presentable images known so far.
func (s *Swapchain) Images() []SwapchainImage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]SwapchainImage{}, s.images...)
}

// Acquired returns the number of images acquired and not yet presented.
func (s *Swapchain) Acquired() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.acquired
}

// MaxPresentID returns the largest present id used with the swapchain.
func (s *Swapchain) MaxPresentID() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.maxPresentID
}

// ImagesQuery returns how far the application got in retrieving the images.
func (s *Swapchain) ImagesQuery() ImagesQuery {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

// FullScreenExclusive returns true while the application holds exclusive
// full-screen access.
func (s *Swapchain) FullScreenExclusive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.exclusive
}

// ImageCreateInfo returns the parameters of the images of a swapchain
// created with ci.
func ImageCreateInfo(ci vulkan.VkSwapchainCreateInfoKHR) vulkan.VkImageCreateInfo {
	out := vulkan.VkImageCreateInfo{
		ImageType:          vulkan.VkImageType_VK_IMAGE_TYPE_2D,
		Format:             ci.ImageFormat,
		Extent:             vulkan.VkExtent3D{Width: ci.ImageExtent.Width, Height: ci.ImageExtent.Height, Depth: 1},
		MipLevels:          1,
		ArrayLayers:        ci.ImageArrayLayers,
		Samples:            1,
		Tiling:             vulkan.VkImageTiling_VK_IMAGE_TILING_OPTIMAL,
		Usage:              ci.ImageUsage,
		SharingMode:        ci.ImageSharingMode,
		QueueFamilyIndices: append([]uint32{}, ci.QueueFamilyIndices...),
		InitialLayout:      vulkan.VkImageLayout_VK_IMAGE_LAYOUT_UNDEFINED,
	}
	if ci.Flags&vulkan.VkSwapchainCreateFlagBitsKHR_VK_SWAPCHAIN_CREATE_SPLIT_INSTANCE_BIND_REGIONS_BIT_KHR != 0 {
		out.Flags |= vulkan.VkImageCreateFlagBits_VK_IMAGE_CREATE_SPLIT_INSTANCE_BIND_REGIONS_BIT
	}
	if ci.Flags&vulkan.VkSwapchainCreateFlagBitsKHR_VK_SWAPCHAIN_CREATE_PROTECTED_BIT_KHR != 0 {
		out.Flags |= vulkan.VkImageCreateFlagBits_VK_IMAGE_CREATE_PROTECTED_BIT
	}
	if ci.Flags&vulkan.VkSwapchainCreateFlagBitsKHR_VK_SWAPCHAIN_CREATE_MUTABLE_FORMAT_BIT_KHR != 0 {
		out.Flags |= vulkan.VkImageCreateFlagBits_VK_IMAGE_CREATE_MUTABLE_FORMAT_BIT |
			vulkan.VkImageCreateFlagBits_VK_IMAGE_CREATE_EXTENDED_USAGE_BIT
	}
	return out
}

// CreateSwapchain records a vkCreateSwapchainKHR call. The old swapchain is
// retired even when the creation failed.
func (t *Tracker) CreateSwapchain(ctx context.Context, ci vulkan.VkSwapchainCreateInfoKHR, h vulkan.VkSwapchainKHR, result vulkan.VkResult) *Swapchain {
	if old := t.Swapchain(ci.OldSwapchain); old != nil {
		old.retire()
		log.D(ctx, "Swapchain %v retired", vulkan.HandleString(ci.OldSwapchain))
	}
	if result != vulkan.VkResult_VK_SUCCESS || h == vulkan.VK_NULL_HANDLE {
		return nil
	}
	sc := &Swapchain{Surface: t.Surface(ci.Surface)}
	if err := copier.CopyWithOption(&sc.CreateInfo, &ci, copier.Option{DeepCopy: true}); err != nil {
		log.F(ctx, true, "Copying swapchain create info: %v", err)
	}
	sc.Init(h)
	t.reg().Add(sc)
	if sc.Surface != nil {
		sc.Surface.setSwapchain(sc)
	}
	log.D(ctx, "Swapchain %v: %dx%d, %d images minimum", vulkan.HandleString(h),
		ci.ImageExtent.Width, ci.ImageExtent.Height, ci.MinImageCount)
	return sc
}

// ValidateCreateSharedSwapchains checks a vkCreateSharedSwapchainsKHR call.
func (t *Tracker) ValidateCreateSharedSwapchains(ctx context.Context, cis []vulkan.VkSwapchainCreateInfoKHR) bool {
	skip := false
	for i, ci := range cis {
		skip = t.validateCreateSwapchain(ctx, fmt.Sprintf("vkCreateSharedSwapchainsKHR[%d]", i), ci) || skip
	}
	return skip
}

// CreateSharedSwapchains records a vkCreateSharedSwapchainsKHR call.
func (t *Tracker) CreateSharedSwapchains(ctx context.Context, cis []vulkan.VkSwapchainCreateInfoKHR, hs []vulkan.VkSwapchainKHR, result vulkan.VkResult) {
	for i, ci := range cis {
		h := vulkan.VkSwapchainKHR(vulkan.VK_NULL_HANDLE)
		if i < len(hs) {
			h = hs[i]
		}
		t.CreateSwapchain(ctx, ci, h, result)
	}
}

// ValidateDestroySwapchain checks that no pending work uses the images of
// the swapchain.
func (t *Tracker) ValidateDestroySwapchain(ctx context.Context, h vulkan.VkSwapchainKHR) bool {
	sc := t.Swapchain(h)
	if sc == nil {
		return false
	}
	for _, img := range sc.Images() {
		if img.Image != nil && img.Image.InUse() {
			return t.rep().LogError(ctx, report.Objs(h, img.Image.Handle()), "VUID-vkDestroySwapchainKHR-swapchain-01282",
				"vkDestroySwapchainKHR(): %v is in use by a command buffer that has not completed.",
				vulkan.HandleString(img.Image.Handle()))
		}
	}
	return false
}

// DestroySwapchain forgets the swapchain and its images.
func (t *Tracker) DestroySwapchain(ctx context.Context, h vulkan.VkSwapchainKHR) {
	sc := registry.Remove[*Swapchain](t.reg(), h)
	if sc == nil {
		return
	}
	for _, img := range sc.Images() {
		if img.Image != nil {
			t.dev.DestroyImage(ctx, img.Image.VkImage())
		}
	}
	if sc.Surface != nil {
		sc.Surface.releaseSwapchain(sc)
	}
	sc.Destroy(ctx)
}

// ValidateGetSwapchainImages checks that the images are only requested
// after their number, and no more than that number.
func (t *Tracker) ValidateGetSwapchainImages(ctx context.Context, h vulkan.VkSwapchainKHR, count uint32, images bool) bool {
	sc := t.Swapchain(h)
	if sc == nil || !images {
		return false
	}
	sc.mu.Lock()
	query, queried := sc.query, sc.queried
	sc.mu.Unlock()

	skip := false
	if query == ImagesUncalled {
		skip = t.rep().LogWarning(ctx, report.Objs(h), vuidPriorCount,
			"vkGetSwapchainImagesKHR(): called with non-NULL pSwapchainImages before the number of images was queried.") || skip
	}
	if count > queried {
		skip = t.rep().LogError(ctx, report.Objs(h), vuidInvalidCount,
			"vkGetSwapchainImagesKHR(): pSwapchainImageCount (%d) is greater than the %d images returned by the sizing call.",
			count, queried) || skip
	}
	return skip
}

// GetSwapchainImages records a vkGetSwapchainImagesKHR call. The presentable
// images are created on the call that returns them. A nil images is the
// sizing call.
func (t *Tracker) GetSwapchainImages(ctx context.Context, h vulkan.VkSwapchainKHR, count uint32, images []vulkan.VkImage, result vulkan.VkResult) {
	if result != vulkan.VkResult_VK_SUCCESS && result != vulkan.VkResult_VK_INCOMPLETE {
		return
	}
	sc := t.Swapchain(h)
	if sc == nil {
		return
	}
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if images == nil {
		if sc.query < ImagesCountQueried {
			sc.query = ImagesCountQueried
		}
		sc.queried = count
		return
	}
	sc.query = ImagesDetailsQueried
	if int(count) > len(images) {
		count = uint32(len(images))
	}
	for len(sc.images) < int(count) {
		sc.images = append(sc.images, SwapchainImage{})
	}
	ci := ImageCreateInfo(sc.CreateInfo)
	for i := uint32(0); i < count; i++ {
		if sc.images[i].Image != nil {
			continue
		}
		sc.images[i].Image = t.dev.AddSwapchainImage(ctx, images[i], ci, h, i)
	}
	log.D(ctx, "Swapchain %v: %d images", vulkan.HandleString(h), len(sc.images))
}
