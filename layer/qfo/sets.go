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
	"sort"

	"golang.org/x/exp/maps"

	"github.com/google/vkstate/layer/report"
	"github.com/google/vkstate/layer/vulkan"
)

// Sets holds the release and acquire barriers of one kind recorded by a
// command buffer.
type Sets[T Transfer] struct {
	Release map[T]struct{}
	Acquire map[T]struct{}
}

func newSets[T Transfer]() Sets[T] {
	return Sets[T]{Release: map[T]struct{}{}, Acquire: map[T]struct{}{}}
}

func (s Sets[T]) of(d Direction) map[T]struct{} {
	if d == Release {
		return s.Release
	}
	return s.Acquire
}

// sorted returns the keys of set in a stable order.
func sorted[T Transfer](set map[T]struct{}) []T {
	out := maps.Keys(set)
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].Resource().Value(), out[j].Resource().Value()
		if a != b {
			return a < b
		}
		return out[i].String() < out[j].String()
	})
	return out
}

// CommandBuffer holds the transfer barriers recorded by one command buffer.
type CommandBuffer struct {
	Buffers Sets[BufferTransfer]
	Images  Sets[ImageTransfer]
}

// NewCommandBuffer returns empty barrier sets.
func NewCommandBuffer() *CommandBuffer {
	return &CommandBuffer{Buffers: newSets[BufferTransfer](), Images: newSets[ImageTransfer]()}
}

// Reset drops every recorded barrier.
func (c *CommandBuffer) Reset() {
	c.Buffers = newSets[BufferTransfer]()
	c.Images = newSets[ImageTransfer]()
}

// Empty returns true if no transfer barrier was recorded.
func (c *CommandBuffer) Empty() bool {
	return len(c.Buffers.Release) == 0 && len(c.Buffers.Acquire) == 0 &&
		len(c.Images.Release) == 0 && len(c.Images.Acquire) == 0
}

// Merge adds the barriers of a secondary command buffer.
func (c *CommandBuffer) Merge(o *CommandBuffer) {
	maps.Copy(c.Buffers.Release, o.Buffers.Release)
	maps.Copy(c.Buffers.Acquire, o.Buffers.Acquire)
	maps.Copy(c.Images.Release, o.Images.Release)
	maps.Copy(c.Images.Acquire, o.Images.Acquire)
}

const (
	vuidBufferDuplicate = "UNASSIGNED-VkBufferMemoryBarrier-buffer-00001"
	vuidImageDuplicate  = "UNASSIGNED-VkImageMemoryBarrier-image-00001"
)

func record[T Transfer](ctx context.Context, rep report.Reporter, cb vulkan.VkCommandBuffer,
	sets Sets[T], d Direction, t T, vuid string) bool {

	set := sets.of(d)
	if _, dup := set[t]; dup {
		return rep.LogWarning(ctx, report.Objs(cb, t.Resource()), vuid,
			"%v has a duplicate %v of %v queue family ownership in the same command buffer.",
			vulkan.HandleString(cb), d, t)
	}
	set[t] = struct{}{}
	return false
}

// RecordBarriers records the transfer barriers among the given barriers for
// a command buffer allocated for poolFamily. Barriers that are not transfers
// are ignored. Duplicates are reported as warnings.
func (c *CommandBuffer) RecordBarriers(ctx context.Context, rep report.Reporter, cb vulkan.VkCommandBuffer,
	poolFamily uint32, buffers []vulkan.VkBufferMemoryBarrier, images []vulkan.VkImageMemoryBarrier) bool {

	skip := false
	for _, b := range buffers {
		if d := DirectionOf(poolFamily, b); d != None {
			skip = record(ctx, rep, cb, c.Buffers, d, BufferTransferOf(b), vuidBufferDuplicate) || skip
		}
	}
	for _, b := range images {
		if d := DirectionOf(poolFamily, b); d != None {
			skip = record(ctx, rep, cb, c.Images, d, ImageTransferOf(b), vuidImageDuplicate) || skip
		}
	}
	return skip
}
