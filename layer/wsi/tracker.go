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

// Package wsi tracks the window system integration objects of a device:
// surfaces, swapchains and their presentable images, and validates image
// acquisition and presentation against them.
//
// The presentable images are ordinary state.Image objects of the device, so
// command buffers record and submit layout transitions on them like on any
// other image. Presentation reads the layouts merged by those submissions.
package wsi

import (
	"context"
	"sync"

	"github.com/google/vkstate/core/log"
	"github.com/google/vkstate/layer/caps"
	"github.com/google/vkstate/layer/registry"
	"github.com/google/vkstate/layer/report"
	"github.com/google/vkstate/layer/state"
	"github.com/google/vkstate/layer/vulkan"
)

const (
	vuidPreTransform        = "UNASSIGNED-CoreValidation-SwapchainPreTransform"
	vuidExtensionNotEnabled = "UNASSIGNED-CoreValidation-DrawState-ExtensionNotEnabled"
	vuidPriorCount          = "UNASSIGNED-CoreValidation-SwapchainPriorCount"
	vuidInvalidCount        = "UNASSIGNED-CoreValidation-SwapchainInvalidCount"
	vuidForwardProgress     = "UNASSIGNED-CoreValidation-DrawState-QueueForwardProgress"
)

// Tracker holds the surfaces and swapchains used with a device.
type Tracker struct {
	dev *state.Device

	mu sync.Mutex
	// planes is the number of display planes returned by
	// vkGetPhysicalDeviceDisplayPlanePropertiesKHR, or -1 before the call.
	planes int
}

// New returns a tracker for the window system objects of dev.
func New(dev *state.Device) *Tracker {
	return &Tracker{dev: dev, planes: -1}
}

// Device returns the device the tracker belongs to.
func (t *Tracker) Device() *state.Device { return t.dev }

func (t *Tracker) reg() *registry.Registry { return t.dev.Registry() }
func (t *Tracker) caps() caps.Provider { return t.dev.Caps() }
func (t *Tracker) rep() report.Reporter { return t.dev.Reporter() }

// anySurface reports whether presentation is supported on every surface by
// every queue family, as on Android.
func (t *Tracker) anySurface() bool {
	return t.caps().HasExtension(vulkan.VK_KHR_android_surface)
}

// Swapchains returns every live swapchain ordered by handle.
func (t *Tracker) Swapchains() []*Swapchain { return registry.All[*Swapchain](t.reg()) }

// Swapchain returns the state of h, or nil.
func (t *Tracker) Swapchain(h vulkan.VkSwapchainKHR) *Swapchain { return registry.Get[*Swapchain](t.reg(), h) }

// Surface returns the state of h, or nil.
func (t *Tracker) Surface(h vulkan.VkSurfaceKHR) *Surface { return registry.Get[*Surface](t.reg(), h) }

func (t *Tracker) semaphore(h vulkan.VkSemaphore) *state.Semaphore {
	return registry.Get[*state.Semaphore](t.reg(), h)
}

func (t *Tracker) fence(h vulkan.VkFence) *state.Fence {
	return registry.Get[*state.Fence](t.reg(), h)
}

func (t *Tracker) queue(ctx context.Context, h vulkan.VkQueue) *state.Queue {
	q := registry.Get[*state.Queue](t.reg(), h)
	if q == nil {
		log.W(ctx, "Unknown queue %v", vulkan.HandleString(h))
	}
	return q
}
