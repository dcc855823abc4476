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

// Package state tracks the objects of a Vulkan device as the calls made
// against it are intercepted, and validates each call against that state.
//
// Every tracked object embeds a registry.Node. Objects that hold references
// to others, such as command buffers, register themselves as parents of the
// referenced nodes so that destroying a resource invalidates its users.
package state

import (
	"context"
	"sync"

	"github.com/google/vkstate/core/log"
	"github.com/google/vkstate/layer/caps"
	"github.com/google/vkstate/layer/layout"
	"github.com/google/vkstate/layer/qfo"
	"github.com/google/vkstate/layer/registry"
	"github.com/google/vkstate/layer/report"
	"github.com/google/vkstate/layer/vulkan"
)

// Device is the state of a logical device.
type Device struct {
	Handle vulkan.VkDevice

	reg     *registry.Registry
	caps    caps.Provider
	rep     report.Reporter
	layouts *layout.Global
	qfo     *qfo.Tracker

	// submit serializes submissions and the merges into the global state.
	submit sync.Mutex

	mu      sync.Mutex
	queries map[QueryObject]QueryState
}

// NewDevice returns the state of the device h, using p to answer capability
// queries and reporting issues to rep.
func NewDevice(h vulkan.VkDevice, p caps.Provider, rep report.Reporter) *Device {
	return &Device{
		Handle:  h,
		reg:     registry.New(),
		caps:    p,
		rep:     rep,
		layouts: layout.NewGlobal(),
		qfo:     qfo.NewTracker(),
		queries: map[QueryObject]QueryState{},
	}
}

// Registry returns the objects of the device.
func (d *Device) Registry() *registry.Registry { return d.reg }

// Caps returns the capability provider of the device.
func (d *Device) Caps() caps.Provider { return d.caps }

// Reporter returns the issue sink of the device.
func (d *Device) Reporter() report.Reporter { return d.rep }

// Layouts returns the image layouts resulting from the submitted work.
func (d *Device) Layouts() *layout.Global { return d.layouts }

// Transfers returns the queue family ownership transfers awaiting an acquire.
func (d *Device) Transfers() *qfo.Tracker { return d.qfo }

// GetDeviceQueue records the queue returned by vkGetDeviceQueue. Repeated
// calls for the same queue return the existing state.
func (d *Device) GetDeviceQueue(ctx context.Context, family, index uint32, h vulkan.VkQueue) *Queue {
	if q := registry.Get[*Queue](d.reg, h); q != nil {
		return q
	}
	q := &Queue{
		dev:    d,
		Family: family,
		Index:  index,
		Flags:  caps.QueueFamilyFlags(d.caps, family),
	}
	q.Init(h)
	d.reg.Add(q)
	log.D(ctx, "Queue %v: family %d index %d", vulkan.HandleString(h), family, index)
	return q
}

// Queues returns the queues retrieved from the device.
func (d *Device) Queues() []*Queue { return registry.All[*Queue](d.reg) }

// DeviceWaitIdle retires the work of every queue.
func (d *Device) DeviceWaitIdle(ctx context.Context) {
	for _, q := range d.Queues() {
		q.WaitIdle(ctx)
	}
}

// validateNotInUse reports vuid if obj is used by pending work.
func (d *Device) validateNotInUse(ctx context.Context, obj registry.Object, vuid, call string) bool {
	if !obj.Base().InUse() {
		return false
	}
	h := obj.Base().Handle()
	return d.rep.LogError(ctx, report.Objs(h), vuid,
		"%s(): %v is in use by a command buffer that has not completed.", call, vulkan.HandleString(h))
}
