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

	"github.com/google/vkstate/core/log"
	"github.com/google/vkstate/layer/layout"
	"github.com/google/vkstate/layer/qfo"
	"github.com/google/vkstate/layer/registry"
	"github.com/google/vkstate/layer/report"
	"github.com/google/vkstate/layer/vulkan"
)

const (
	vuidInvalidImageLayout = "UNASSIGNED-CoreValidation-DrawState-InvalidImageLayout"
	vuidForwardProgress    = "UNASSIGNED-CoreValidation-DrawState-QueueForwardProgress"
	vuidSingleSubmit       = "UNASSIGNED-CoreValidation-DrawState-CommandBufferSingleSubmitViolation"
)

// Queue is the state of a VkQueue.
type Queue struct {
	registry.Node
	dev    *Device
	Family uint32
	Index  uint32
	Flags  vulkan.VkQueueFlags

	mu      sync.Mutex
	seq     uint64
	pending []*submission
}

// submission is a vkQueueSubmit call that has not been retired.
type submission struct {
	seq     uint64
	cbs     []*CommandBuffer
	queries map[QueryObject]QueryState
	fence   *Fence
}

// Batch is the state seen by the command buffers of one vkQueueSubmit call:
// the device state after the work already submitted, updated by each command
// buffer of the call in order.
type Batch struct {
	Queue *Queue
	// Layouts holds the image layouts changed by the command buffers so far.
	Layouts *layout.Set
	Queries map[QueryObject]QueryState
	Events  map[vulkan.VkEvent]vulkan.VkPipelineStageFlags
	// Reporter receives the issues found by deferred checks.
	Reporter report.Reporter
}

func (q *Queue) newBatch(rep report.Reporter) *Batch {
	return &Batch{
		Queue:    q,
		Layouts:  layout.NewSet(),
		Queries:  map[QueryObject]QueryState{},
		Events:   map[vulkan.VkEvent]vulkan.VkPipelineStageFlags{},
		Reporter: rep,
	}
}

// VkQueue returns the handle of the queue.
func (q *Queue) VkQueue() vulkan.VkQueue { return q.Handle().(vulkan.VkQueue) }

// Busy returns true while the queue has submissions that were not retired.
func (q *Queue) Busy() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending) > 0
}

// Seq returns the sequence number of the last submission.
func (q *Queue) Seq() uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.seq
}

// Retire completes the submissions of the queue up to and including seq:
// their command buffers are no longer in use, ended queries become available
// and fences are signaled.
func (q *Queue) Retire(ctx context.Context, seq uint64) {
	q.mu.Lock()
	n := 0
	for n < len(q.pending) && q.pending[n].seq <= seq {
		n++
	}
	done := q.pending[:n]
	q.pending = append([]*submission{}, q.pending[n:]...)
	q.mu.Unlock()

	for _, s := range done {
		for _, cb := range s.cbs {
			cb.inUse.Add(-1)
		}
		available := map[QueryObject]QueryState{}
		for obj, st := range s.queries {
			if st == QueryEnded && q.dev.QueryState(obj) == QueryEnded {
				available[obj] = QueryAvailable
			}
		}
		q.dev.setQueryStates(available)
		if s.fence != nil {
			s.fence.signal()
		}
		log.D(ctx, "%v retired submission %d", vulkan.HandleString(q.Handle()), s.seq)
	}
}

// WaitIdle retires every submission of the queue.
func (q *Queue) WaitIdle(ctx context.Context) { q.Retire(ctx, q.Seq()) }

// ValidateSubmit checks a vkQueueSubmit call against the state of the
// command buffers, the device and the queue.
func (q *Queue) ValidateSubmit(ctx context.Context, submits []vulkan.VkSubmitInfo, fence vulkan.VkFence) bool {
	d := q.dev
	d.submit.Lock()
	defer d.submit.Unlock()
	rep, qh := d.rep, q.Handle()
	skip := false
	if f := registry.Get[*Fence](d.reg, fence); f != nil {
		switch f.State() {
		case FenceSignaled:
			skip = rep.LogError(ctx, report.Objs(qh, fence), "VUID-vkQueueSubmit-fence-00063",
				"vkQueueSubmit(): %v is already signaled. It must be reset first.", vulkan.HandleString(fence)) || skip
		case FenceInflight:
			skip = rep.LogError(ctx, report.Objs(qh, fence), "VUID-vkQueueSubmit-fence-00064",
				"vkQueueSubmit(): %v is already in use by another submission.", vulkan.HandleString(fence)) || skip
		}
	}
	b := q.newBatch(rep)
	signaled := map[*Semaphore]bool{}
	seen := map[*CommandBuffer]bool{}
	transfers := []qfo.Submitted{}
	for i, info := range submits {
		skip = q.validateWaits(ctx, info.WaitSemaphores, signaled) || skip
		suspended := false
		for _, h := range info.CommandBuffers {
			cb := registry.Get[*CommandBuffer](d.reg, h)
			if cb == nil {
				continue
			}
			skip = cb.validateSubmission(ctx, b, seen[cb]) || skip
			skip = cb.validateSuspension(ctx, i, &suspended) || skip
			seen[cb] = true
			transfers = append(transfers, qfo.Submitted{Handle: h, Barriers: cb.Barriers()})
		}
		if suspended {
			skip = rep.LogError(ctx, report.Objs(qh), "VUID-VkSubmitInfo-pCommandBuffers-06014",
				"vkQueueSubmit(): pSubmits[%d] ends with a suspended render pass instance.", i) || skip
		}
		skip = q.validateSignals(ctx, info.SignalSemaphores, signaled) || skip
	}
	return d.qfo.Validate(ctx, rep, q.VkQueue(), transfers) || skip
}

func (q *Queue) validateWaits(ctx context.Context, hs []vulkan.VkSemaphore, signaled map[*Semaphore]bool) bool {
	skip := false
	for _, h := range hs {
		s := registry.Get[*Semaphore](q.dev.reg, h)
		if s == nil || s.Type != vulkan.VkSemaphoreType_VK_SEMAPHORE_TYPE_BINARY {
			continue
		}
		state, ok := signaled[s]
		if !ok {
			state = s.Signaled()
		}
		if !state {
			skip = q.dev.rep.LogError(ctx, report.Objs(q.Handle(), h), vuidForwardProgress,
				"vkQueueSubmit(): %v waits on %v, which has no way to be signaled.",
				vulkan.HandleString(q.Handle()), vulkan.HandleString(h)) || skip
		}
		signaled[s] = false
	}
	return skip
}

func (q *Queue) validateSignals(ctx context.Context, hs []vulkan.VkSemaphore, signaled map[*Semaphore]bool) bool {
	skip := false
	for _, h := range hs {
		s := registry.Get[*Semaphore](q.dev.reg, h)
		if s == nil || s.Type != vulkan.VkSemaphoreType_VK_SEMAPHORE_TYPE_BINARY {
			continue
		}
		state, ok := signaled[s]
		if !ok {
			state = s.Signaled()
		}
		if state {
			skip = q.dev.rep.LogError(ctx, report.Objs(q.Handle(), h), vuidForwardProgress,
				"vkQueueSubmit(): %v signals %v, which is already signaled and not waited on.",
				vulkan.HandleString(q.Handle()), vulkan.HandleString(h)) || skip
		}
		signaled[s] = true
	}
	return skip
}

// validateSubmission checks that cb can be submitted to the queue of b and
// runs its deferred checks, updating b with its effects. duplicate is set if
// cb was already submitted earlier in the same call.
func (cb *CommandBuffer) validateSubmission(ctx context.Context, b *Batch, duplicate bool) bool {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	rep, q := cb.dev.rep, b.Queue
	objs := report.Objs(q.Handle(), cb.Handle())
	name := vulkan.HandleString(cb.Handle())
	if !cb.IsPrimary() {
		return rep.LogError(ctx, objs, "VUID-VkSubmitInfo-pCommandBuffers-00075",
			"vkQueueSubmit(): %v is a secondary command buffer.", name)
	}
	skip := false
	if cb.state != Recorded {
		if cb.state.Invalid() {
			skip = cb.reportBroken(ctx, "vkQueueSubmit") || skip
		}
		return rep.LogError(ctx, objs, "VUID-vkQueueSubmit-pCommandBuffers-00070",
			"vkQueueSubmit(): %v is %v, not executable.", name, cb.state) || skip
	}
	simultaneous := cb.beginInfo.Flags&simultaneousBit != 0
	if (cb.InUse() || duplicate) && !simultaneous {
		skip = rep.LogError(ctx, objs, "VUID-vkQueueSubmit-pCommandBuffers-00071",
			"vkQueueSubmit(): %v is already in use and was not begun with "+
				"VK_COMMAND_BUFFER_USAGE_SIMULTANEOUS_USE_BIT.", name) || skip
	}
	if cb.beginInfo.Flags&oneTimeBit != 0 && (cb.submitCount > 0 || duplicate) {
		skip = rep.LogError(ctx, objs, vuidSingleSubmit,
			"vkQueueSubmit(): %v was begun with VK_COMMAND_BUFFER_USAGE_ONE_TIME_SUBMIT_BIT and has already "+
				"been submitted %d times.", name, cb.submitCount+btoi(duplicate)) || skip
	}
	for _, sub := range cb.sortedLinked() {
		skip = cb.validateLinked(ctx, b, sub) || skip
	}
	if cb.Pool.QueueFamily != q.Family {
		skip = rep.LogError(ctx, report.Objs(q.Handle(), cb.Handle(), cb.Pool.Handle()),
			"VUID-vkQueueSubmit-pCommandBuffers-00074",
			"vkQueueSubmit(): %v was allocated for queue family %d but is submitted to %v of family %d.",
			name, cb.Pool.QueueFamily, vulkan.HandleString(q.Handle()), q.Family) || skip
	}
	skip = cb.validateLayouts(ctx, b) || skip
	return cb.runDeferred(ctx, b, true) || skip
}

func btoi(b bool) int {
	if b {
		return 1
	}
	return 0
}

func (cb *CommandBuffer) sortedLinked() []*CommandBuffer {
	out := make([]*CommandBuffer, 0, len(cb.linked))
	for l := range cb.linked {
		out = append(out, l)
	}
	sortCommandBuffers(out)
	return out
}

func (cb *CommandBuffer) validateLinked(ctx context.Context, b *Batch, sub *CommandBuffer) bool {
	sub.mu.RLock()
	defer sub.mu.RUnlock()
	rep, objs := cb.dev.rep, report.Objs(b.Queue.Handle(), cb.Handle(), sub.Handle())
	skip := false
	if sub.state != Recorded {
		skip = rep.LogError(ctx, objs, "VUID-vkQueueSubmit-pCommandBuffers-00072",
			"vkQueueSubmit(): secondary %v executed by %v is %v.",
			vulkan.HandleString(sub.Handle()), vulkan.HandleString(cb.Handle()), sub.state) || skip
	}
	if sub.InUse() && sub.beginInfo.Flags&simultaneousBit == 0 {
		skip = rep.LogError(ctx, objs, "VUID-vkQueueSubmit-pCommandBuffers-00073",
			"vkQueueSubmit(): secondary %v executed by %v is already in use and was not begun with "+
				"VK_COMMAND_BUFFER_USAGE_SIMULTANEOUS_USE_BIT.",
			vulkan.HandleString(sub.Handle()), vulkan.HandleString(cb.Handle())) || skip
	}
	return skip
}

// validateLayouts checks the layouts cb expects its images in against the
// layouts left by the command buffers submitted before it, then applies its
// own transitions to b. It must be called with the lock held.
func (cb *CommandBuffer) validateLayouts(ctx context.Context, b *Batch) bool {
	skip := false
	for _, img := range cb.layouts.Images() {
		m := cb.layouts.Get(img)
		for _, mm := range m.Mismatches(b.Layouts.Get(img), cb.dev.layouts.Snapshot(img)) {
			skip = b.Reporter.LogError(ctx, report.Objs(b.Queue.Handle(), cb.Handle(), img), vuidInvalidImageLayout,
				"vkQueueSubmit(): %v expects %v %v (and %d following subresources) in %v but it is in %v.",
				vulkan.HandleString(cb.Handle()), vulkan.HandleString(img), mm.First, mm.Count-1, mm.Expected, mm.Actual) || skip
		}
		b.Layouts.Mutable(img, m.Encoder()).UpdateFrom(m)
	}
	return skip
}

// runDeferred runs the checks and state updates recorded for submission
// time. It must be called with the lock held.
func (cb *CommandBuffer) runDeferred(ctx context.Context, b *Batch, checks bool) bool {
	skip := false
	if checks {
		for _, f := range cb.submitFuncs {
			skip = f(ctx, b) || skip
		}
	}
	for _, f := range cb.queryUpdates {
		skip = f(ctx, cb, b) || skip
	}
	for _, f := range cb.eventUpdates {
		skip = f(ctx, cb, b) || skip
	}
	return skip
}

// validateSuspension checks that render pass instances suspended by a
// command buffer of a batch are resumed by the next one.
func (cb *CommandBuffer) validateSuspension(ctx context.Context, info int, suspended *bool) bool {
	has, suspends, resumes := cb.RenderPassInstance()
	rep, objs := cb.dev.rep, report.Objs(cb.Handle())
	skip := false
	switch {
	case *suspended && !resumes:
		skip = rep.LogError(ctx, objs, "VUID-VkSubmitInfo-pCommandBuffers-06016",
			"vkQueueSubmit(): pSubmits[%d] suspends a render pass instance that %v does not resume.",
			info, vulkan.HandleString(cb.Handle()))
	case !*suspended && resumes:
		skip = rep.LogError(ctx, objs, "VUID-VkSubmitInfo-pCommandBuffers-06193",
			"vkQueueSubmit(): %v resumes a render pass instance in pSubmits[%d] that was not suspended.",
			vulkan.HandleString(cb.Handle()), info)
	}
	if has {
		*suspended = suspends
	}
	return skip
}

// RecordSubmit records a vkQueueSubmit call that returned result. The
// effects of the command buffers become part of the device state and their
// work is pending until retired.
func (q *Queue) RecordSubmit(ctx context.Context, submits []vulkan.VkSubmitInfo, fence vulkan.VkFence, result vulkan.VkResult) {
	if !result.Succeeded() {
		return
	}
	d := q.dev
	d.submit.Lock()
	defer d.submit.Unlock()
	b := q.newBatch(report.Discard)
	s := &submission{}
	transfers := []qfo.Submitted{}
	for _, info := range submits {
		for _, h := range info.WaitSemaphores {
			if sem := registry.Get[*Semaphore](d.reg, h); sem != nil {
				sem.Wait()
			}
		}
		for _, h := range info.CommandBuffers {
			cb := registry.Get[*CommandBuffer](d.reg, h)
			if cb == nil {
				continue
			}
			s.cbs = append(s.cbs, cb.recordSubmission(ctx, b)...)
			transfers = append(transfers, qfo.Submitted{Handle: h, Barriers: cb.Barriers()})
		}
		for _, h := range info.SignalSemaphores {
			if sem := registry.Get[*Semaphore](d.reg, h); sem != nil {
				sem.Signal(q.Handle())
			}
		}
	}
	d.layouts.Apply(b.Layouts)
	d.qfo.Record(transfers)
	d.setQueryStates(b.Queries)
	for h, mask := range b.Events {
		if e := registry.Get[*Event](d.reg, h); e != nil {
			e.setStageMask(mask)
		}
	}
	s.queries = b.Queries
	s.fence = registry.Get[*Fence](d.reg, fence)

	q.mu.Lock()
	q.seq++
	s.seq = q.seq
	q.pending = append(q.pending, s)
	q.mu.Unlock()
	if s.fence != nil {
		s.fence.Enqueue(q, s.seq)
	}
	log.D(ctx, "%v submission %d: %d command buffers", vulkan.HandleString(q.Handle()), s.seq, len(s.cbs))
}

// recordSubmission applies the effects of cb to b and marks cb and the
// secondaries it executes in use. It returns the command buffers marked.
func (cb *CommandBuffer) recordSubmission(ctx context.Context, b *Batch) []*CommandBuffer {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	for _, img := range cb.layouts.Images() {
		m := cb.layouts.Get(img)
		b.Layouts.Mutable(img, m.Encoder()).UpdateFrom(m)
	}
	cb.runDeferred(ctx, b, false)
	cb.submitCount++
	cb.inUse.Add(1)
	out := []*CommandBuffer{cb}
	for _, sub := range cb.sortedLinked() {
		sub.inUse.Add(1)
		out = append(out, sub)
	}
	return out
}
