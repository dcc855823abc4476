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

package qfo

import (
	"context"
	"sync"

	"github.com/google/vkstate/layer/report"
	"github.com/google/vkstate/layer/vulkan"
)

// Submitted is a command buffer of a queue submission, in submission order.
type Submitted struct {
	Handle   vulkan.VkCommandBuffer
	Barriers *CommandBuffer
}

type vuids struct {
	batchDuplicate   string
	pendingDuplicate string
	missingRelease   string
}

var (
	bufferVUIDs = vuids{
		batchDuplicate:   "UNASSIGNED-VkBufferMemoryBarrier-buffer-00002",
		pendingDuplicate: "UNASSIGNED-VkBufferMemoryBarrier-buffer-00003",
		missingRelease:   "UNASSIGNED-VkBufferMemoryBarrier-buffer-00004",
	}
	imageVUIDs = vuids{
		batchDuplicate:   "UNASSIGNED-VkImageMemoryBarrier-image-00002",
		pendingDuplicate: "UNASSIGNED-VkImageMemoryBarrier-image-00003",
		missingRelease:   "UNASSIGNED-VkImageMemoryBarrier-image-00004",
	}
)

// Tracker holds the releases submitted to the device that have not been
// acquired yet.
type Tracker struct {
	mu      sync.Mutex
	buffers map[BufferTransfer]struct{}
	images  map[ImageTransfer]struct{}
}

// NewTracker returns a tracker with no pending release.
func NewTracker() *Tracker {
	return &Tracker{buffers: map[BufferTransfer]struct{}{}, images: map[ImageTransfer]struct{}{}}
}

// PendingBuffers returns the buffer releases awaiting an acquire.
func (t *Tracker) PendingBuffers() []BufferTransfer {
	t.mu.Lock()
	defer t.mu.Unlock()
	return sorted(t.buffers)
}

// PendingImages returns the image releases awaiting an acquire.
func (t *Tracker) PendingImages() []ImageTransfer {
	t.mu.Lock()
	defer t.mu.Unlock()
	return sorted(t.images)
}

func validate[T Transfer](ctx context.Context, rep report.Reporter, queue vulkan.VkQueue, cb vulkan.VkCommandBuffer,
	sets Sets[T], pending map[T]struct{}, batch Sets[T], ids vuids) bool {

	skip := false
	for _, r := range sorted(sets.Release) {
		if _, ok := pending[r]; ok {
			skip = rep.LogError(ctx, report.Objs(queue, cb, r.Resource()), ids.pendingDuplicate,
				"%v releases %v, which was already released and not yet acquired.", vulkan.HandleString(cb), r) || skip
		}
		if _, ok := batch.Release[r]; ok {
			skip = rep.LogError(ctx, report.Objs(queue, cb, r.Resource()), ids.batchDuplicate,
				"%v releases %v, which is also released earlier in the same submission.", vulkan.HandleString(cb), r) || skip
		}
		batch.Release[r] = struct{}{}
	}
	for _, a := range sorted(sets.Acquire) {
		_, released := pending[a]
		if _, ok := batch.Release[a]; ok {
			released = true
		}
		if !released {
			skip = rep.LogError(ctx, report.Objs(queue, cb, a.Resource()), ids.missingRelease,
				"%v acquires %v without a matching submitted release.", vulkan.HandleString(cb), a) || skip
		}
		if _, ok := batch.Acquire[a]; ok {
			skip = rep.LogError(ctx, report.Objs(queue, cb, a.Resource()), ids.batchDuplicate,
				"%v acquires %v, which is also acquired earlier in the same submission.", vulkan.HandleString(cb), a) || skip
		}
		batch.Acquire[a] = struct{}{}
	}
	return skip
}

// Validate checks the transfers of a queue submission against the pending
// releases. It does not modify the tracker.
func (t *Tracker) Validate(ctx context.Context, rep report.Reporter, queue vulkan.VkQueue, cbs []Submitted) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	skip := false
	buffers, images := newSets[BufferTransfer](), newSets[ImageTransfer]()
	for _, cb := range cbs {
		if cb.Barriers == nil {
			continue
		}
		skip = validate(ctx, rep, queue, cb.Handle, cb.Barriers.Buffers, t.buffers, buffers, bufferVUIDs) || skip
		skip = validate(ctx, rep, queue, cb.Handle, cb.Barriers.Images, t.images, images, imageVUIDs) || skip
	}
	return skip
}

func apply[T Transfer](sets Sets[T], pending map[T]struct{}) {
	for r := range sets.Release {
		pending[r] = struct{}{}
	}
	for a := range sets.Acquire {
		delete(pending, a)
	}
}

// Record updates the pending releases with a submission: releases become
// pending and acquires retire the release they match.
func (t *Tracker) Record(cbs []Submitted) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, cb := range cbs {
		if cb.Barriers == nil {
			continue
		}
		apply(cb.Barriers.Buffers, t.buffers)
		apply(cb.Barriers.Images, t.images)
	}
}

// Forget drops the pending releases of a destroyed resource.
func (t *Tracker) Forget(h vulkan.Handle) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for r := range t.buffers {
		if r.Resource() == h {
			delete(t.buffers, r)
		}
	}
	for r := range t.images {
		if r.Resource() == h {
			delete(t.images, r)
		}
	}
}
