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
	"context"
	"sync"

	"github.com/google/vkstate/layer/registry"
	"github.com/google/vkstate/layer/report"
	"github.com/google/vkstate/layer/vulkan"
)

// Event is the state of a VkEvent.
type Event struct {
	registry.Node

	mu sync.Mutex
	// stage holds the stages that signaled the event, HOST for vkSetEvent and
	// zero while the event is reset.
	stage vulkan.VkPipelineStageFlags
}

// StageMask returns the stages that last signaled the event.
func (e *Event) StageMask() vulkan.VkPipelineStageFlags {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stage
}

func (e *Event) setStageMask(s vulkan.VkPipelineStageFlags) {
	e.mu.Lock()
	e.stage = s
	e.mu.Unlock()
}

// CreateEvent records a new event.
func (d *Device) CreateEvent(ctx context.Context, h vulkan.VkEvent) *Event {
	e := &Event{}
	e.Init(h)
	d.reg.Add(e)
	return e
}

// SetEvent records a vkSetEvent call.
func (d *Device) SetEvent(ctx context.Context, h vulkan.VkEvent) {
	if e := registry.Get[*Event](d.reg, h); e != nil {
		e.setStageMask(vulkan.VkPipelineStageFlagBits_VK_PIPELINE_STAGE_HOST_BIT)
	}
}

// ResetEvent records a vkResetEvent call.
func (d *Device) ResetEvent(ctx context.Context, h vulkan.VkEvent) {
	if e := registry.Get[*Event](d.reg, h); e != nil {
		e.setStageMask(0)
	}
}

// ValidateDestroyEvent checks a vkDestroyEvent call.
func (d *Device) ValidateDestroyEvent(ctx context.Context, h vulkan.VkEvent) bool {
	if e := registry.Get[*Event](d.reg, h); e != nil {
		return d.validateNotInUse(ctx, e, "VUID-vkDestroyEvent-event-01145", "vkDestroyEvent")
	}
	return false
}

// DestroyEvent forgets the event and invalidates its users.
func (d *Device) DestroyEvent(ctx context.Context, h vulkan.VkEvent) {
	if e := registry.Remove[*Event](d.reg, h); e != nil {
		e.Destroy(ctx)
	}
}

// QueryPool is the state of a VkQueryPool.
type QueryPool struct {
	registry.Node
	CreateInfo vulkan.VkQueryPoolCreateInfo
}

// CreateQueryPool records a new query pool. Its queries start in an unknown
// state and must be reset before use.
func (d *Device) CreateQueryPool(ctx context.Context, h vulkan.VkQueryPool, ci vulkan.VkQueryPoolCreateInfo) *QueryPool {
	p := &QueryPool{CreateInfo: ci}
	p.Init(h)
	d.reg.Add(p)
	return p
}

// ValidateDestroyQueryPool checks a vkDestroyQueryPool call.
func (d *Device) ValidateDestroyQueryPool(ctx context.Context, h vulkan.VkQueryPool) bool {
	if p := registry.Get[*QueryPool](d.reg, h); p != nil {
		return d.validateNotInUse(ctx, p, "VUID-vkDestroyQueryPool-queryPool-00793", "vkDestroyQueryPool")
	}
	return false
}

// DestroyQueryPool forgets the pool, its query states, and invalidates its
// users.
func (d *Device) DestroyQueryPool(ctx context.Context, h vulkan.VkQueryPool) {
	if p := registry.Remove[*QueryPool](d.reg, h); p != nil {
		p.Destroy(ctx)
		d.mu.Lock()
		for q := range d.queries {
			if q.Pool == h {
				delete(d.queries, q)
			}
		}
		d.mu.Unlock()
	}
}

// Semaphore is the state of a VkSemaphore.
type Semaphore struct {
	registry.Node
	Type vulkan.VkSemaphoreType

	mu       sync.Mutex
	signaled bool
	// signaler is the queue or swapchain with a pending signal operation.
	signaler vulkan.Handle
	value    uint64
}

// Signaled returns true if a binary semaphore has a pending or completed
// signal that has not been waited on.
func (s *Semaphore) Signaled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.signaled
}

// Signaler returns the object that last signaled the semaphore.
func (s *Semaphore) Signaler() vulkan.Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.signaler
}

// Signal records a signal operation by the queue or swapchain h.
func (s *Semaphore) Signal(h vulkan.Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.signaled, s.signaler = true, h
	s.value++
}

// Wait records a wait operation, consuming the signal.
func (s *Semaphore) Wait() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.signaled = false
}

// CreateSemaphore records a new semaphore.
func (d *Device) CreateSemaphore(ctx context.Context, h vulkan.VkSemaphore, ci vulkan.VkSemaphoreCreateInfo) *Semaphore {
	s := &Semaphore{Type: ci.SemaphoreType, value: ci.InitialValue}
	s.Init(h)
	d.reg.Add(s)
	return s
}

// ValidateDestroySemaphore checks a vkDestroySemaphore call.
func (d *Device) ValidateDestroySemaphore(ctx context.Context, h vulkan.VkSemaphore) bool {
	s := registry.Get[*Semaphore](d.reg, h)
	if s == nil {
		return false
	}
	if q, ok := s.Signaler().(vulkan.VkQueue); ok && s.Signaled() {
		if queue := registry.Get[*Queue](d.reg, q); queue != nil && queue.Busy() {
			return d.rep.LogError(ctx, report.Objs(h), "VUID-vkDestroySemaphore-semaphore-01137",
				"vkDestroySemaphore(): %v has a signal pending on %v.", vulkan.HandleString(h), vulkan.HandleString(q))
		}
	}
	return false
}

// DestroySemaphore forgets the semaphore.
func (d *Device) DestroySemaphore(ctx context.Context, h vulkan.VkSemaphore) {
	if s := registry.Remove[*Semaphore](d.reg, h); s != nil {
		s.Destroy(ctx)
	}
}

// FenceState is the state of a fence.
type FenceState int

const (
	FenceUnsignaled FenceState = iota
	// FenceInflight is a fence with a pending signal operation.
	FenceInflight
	FenceSignaled
)

func (s FenceState) String() string {
	switch s {
	case FenceUnsignaled:
		return "unsignaled"
	case FenceInflight:
		return "in flight"
	case FenceSignaled:
		return "signaled"
	}
	return "unknown"
}

// Fence is the state of a VkFence.
type Fence struct {
	registry.Node

	mu    sync.Mutex
	state FenceState
	// queue and seq identify the submission that signals the fence. queue is
	// nil for fences signaled by an image acquisition.
	queue *Queue
	seq   uint64
}

// State returns the current state of the fence.
func (f *Fence) State() FenceState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Enqueue records a pending signal by the submission seq of q. q is nil when
// the signal comes from the presentation engine.
func (f *Fence) Enqueue(q *Queue, seq uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state, f.queue, f.seq = FenceInflight, q, seq
}

func (f *Fence) signal() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state, f.queue = FenceSignaled, nil
}

func (f *Fence) pending() (*Queue, uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != FenceInflight {
		return nil, 0
	}
	return f.queue, f.seq
}

// CreateFence records a new fence.
func (d *Device) CreateFence(ctx context.Context, h vulkan.VkFence, ci vulkan.VkFenceCreateInfo) *Fence {
	f := &Fence{}
	if ci.Flags&vulkan.VkFenceCreateFlagBits_VK_FENCE_CREATE_SIGNALED_BIT != 0 {
		f.state = FenceSignaled
	}
	f.Init(h)
	d.reg.Add(f)
	return f
}

// ValidateDestroyFence checks a vkDestroyFence call.
func (d *Device) ValidateDestroyFence(ctx context.Context, h vulkan.VkFence) bool {
	f := registry.Get[*Fence](d.reg, h)
	if f == nil || f.State() != FenceInflight {
		return false
	}
	return d.rep.LogError(ctx, report.Objs(h), "VUID-vkDestroyFence-fence-01120",
		"vkDestroyFence(): %v is in use.", vulkan.HandleString(h))
}

// DestroyFence forgets the fence.
func (d *Device) DestroyFence(ctx context.Context, h vulkan.VkFence) {
	if f := registry.Remove[*Fence](d.reg, h); f != nil {
		f.Destroy(ctx)
	}
}

// ValidateResetFences checks that none of the fences is in flight.
func (d *Device) ValidateResetFences(ctx context.Context, hs []vulkan.VkFence) bool {
	skip := false
	for _, h := range hs {
		if f := registry.Get[*Fence](d.reg, h); f != nil && f.State() == FenceInflight {
			skip = d.rep.LogError(ctx, report.Objs(h), "VUID-vkResetFences-pFences-01123",
				"vkResetFences(): %v is in use.", vulkan.HandleString(h)) || skip
		}
	}
	return skip
}

// ResetFences returns the fences to the unsignaled state.
func (d *Device) ResetFences(ctx context.Context, hs []vulkan.VkFence) {
	for _, h := range hs {
		if f := registry.Get[*Fence](d.reg, h); f != nil {
			f.mu.Lock()
			f.state, f.queue = FenceUnsignaled, nil
			f.mu.Unlock()
		}
	}
}

// FenceSignaled records that the fence is known to be signaled, as reported
// by a successful vkWaitForFences or vkGetFenceStatus. The work submitted to
// the fence's queue up to and including its submission is retired.
func (d *Device) FenceSignaled(ctx context.Context, h vulkan.VkFence) {
	f := registry.Get[*Fence](d.reg, h)
	if f == nil {
		return
	}
	if q, seq := f.pending(); q != nil {
		q.Retire(ctx, seq)
	}
	f.signal()
}

// WaitForFences records a successful vkWaitForFences. With waitAll false
// only the state of the device is known to have advanced for one fence, so
// nothing is retired.
func (d *Device) WaitForFences(ctx context.Context, hs []vulkan.VkFence, waitAll bool, result vulkan.VkResult) {
	if result != vulkan.VkResult_VK_SUCCESS || (!waitAll && len(hs) > 1) {
		return
	}
	for _, h := range hs {
		d.FenceSignaled(ctx, h)
	}
}
