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

// Package dispatch is the boundary between the application and the driver.
//
// A call is validated against the tracked state before it reaches the driver.
// Once the driver returns, the effects of the call are recorded given its
// result.
package dispatch

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/google/vkstate/core/log"
	"github.com/google/vkstate/layer/registry"
	"github.com/google/vkstate/layer/report"
	"github.com/google/vkstate/layer/state"
	"github.com/google/vkstate/layer/vulkan"
	"github.com/google/vkstate/layer/wsi"
)

// Driver executes the calls that passed validation.
type Driver interface {
	// Call executes cmd, filling in its output fields, and returns the
	// result of the call. Calls returning void return VK_SUCCESS.
	Call(ctx context.Context, cmd vulkan.Cmd) vulkan.VkResult
}

// DriverFunc adapts a function to the Driver interface.
type DriverFunc func(ctx context.Context, cmd vulkan.Cmd) vulkan.VkResult

// Call calls f(ctx, cmd).
func (f DriverFunc) Call(ctx context.Context, cmd vulkan.Cmd) vulkan.VkResult { return f(ctx, cmd) }

// Null is a driver that succeeds every call without touching it.
var Null Driver = DriverFunc(func(context.Context, vulkan.Cmd) vulkan.VkResult { return vulkan.VkResult_VK_SUCCESS })

// Layer intercepts the calls made on one device.
type Layer struct {
	dev    *state.Device
	wsi    *wsi.Tracker
	driver Driver
}

// New returns a layer tracking dev and forwarding calls to driver.
func New(dev *state.Device, driver Driver) *Layer {
	return &Layer{dev: dev, wsi: wsi.New(dev), driver: driver}
}

// Device returns the tracked device.
func (l *Layer) Device() *state.Device { return l.dev }

// WSI returns the tracker of the device's surfaces and swapchains.
func (l *Layer) WSI() *wsi.Tracker { return l.wsi }

// Call validates cmd, hands it to the driver and records its effects.
//
// If validation asks for the call to be skipped, the driver is not called,
// VK_ERROR_VALIDATION_FAILED_EXT is returned with an error of code
// FailedPrecondition, and nothing is recorded. A call naming a command
// buffer, queue or command pool the layer does not know returns an error of
// code NotFound.
func (l *Layer) Call(ctx context.Context, cmd vulkan.Cmd) (vulkan.VkResult, error) {
	name := cmd.CmdName()
	ctx = report.PutCall(ctx, name)
	ctx = log.Enter(ctx, name)

	skip, err := l.validate(ctx, cmd)
	if err != nil {
		return vulkan.VkResult_VK_ERROR_VALIDATION_FAILED_EXT, err
	}
	if skip {
		log.D(ctx, "Skipped")
		return vulkan.VkResult_VK_ERROR_VALIDATION_FAILED_EXT,
			status.Errorf(codes.FailedPrecondition, "%s: skipped by validation", name)
	}
	result := l.driver.Call(ctx, cmd)
	l.record(ctx, cmd, result)
	return result, nil
}

func unknown(name string, h vulkan.Handle) error {
	return status.Errorf(codes.NotFound, "%s: unknown %s", name, vulkan.HandleString(h))
}

func (l *Layer) commandBuffer(name string, h vulkan.VkCommandBuffer) (*state.CommandBuffer, error) {
	if cb := registry.Get[*state.CommandBuffer](l.dev.Registry(), h); cb != nil {
		return cb, nil
	}
	return nil, unknown(name, h)
}

func (l *Layer) queue(name string, h vulkan.VkQueue) (*state.Queue, error) {
	if q := registry.Get[*state.Queue](l.dev.Registry(), h); q != nil {
		return q, nil
	}
	return nil, unknown(name, h)
}

func (l *Layer) pool(name string, h vulkan.VkCommandPool) (*state.CommandPool, error) {
	if p := registry.Get[*state.CommandPool](l.dev.Registry(), h); p != nil {
		return p, nil
	}
	return nil, unknown(name, h)
}
