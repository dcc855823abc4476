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

package qfo_test

import (
	"testing"

	"github.com/google/vkstate/core/assert"
	"github.com/google/vkstate/core/log"
	"github.com/google/vkstate/layer/qfo"
	"github.com/google/vkstate/layer/report"
	"github.com/google/vkstate/layer/vulkan"
)

func TestClassify(t *testing.T) {
	ctx := log.Testing(t)
	for _, test := range []struct {
		name           string
		pool, src, dst uint32
		expect         qfo.Direction
	}{
		{"release", 1, 1, 2, qfo.Release},
		{"acquire", 2, 1, 2, qfo.Acquire},
		{"same family", 1, 1, 1, qfo.None},
		{"unrelated pool", 3, 1, 2, qfo.None},
		{"ignored", 1, vulkan.VK_QUEUE_FAMILY_IGNORED, 1, qfo.None},
		{"external", 1, 1, vulkan.VK_QUEUE_FAMILY_EXTERNAL, qfo.None},
		{"foreign", 1, vulkan.VK_QUEUE_FAMILY_FOREIGN, 1, qfo.None},
	} {
		assert.For(ctx, test.name).That(qfo.Classify(test.pool, test.src, test.dst)).Equals(test.expect)
	}

	assert.For(ctx, "memory barrier").That(qfo.DirectionOf(1, vulkan.VkMemoryBarrier{})).Equals(qfo.None)
	assert.For(ctx, "image barrier").That(qfo.DirectionOf(1, vulkan.VkImageMemoryBarrier{
		SrcQueueFamilyIndex: 1, DstQueueFamilyIndex: 0,
	})).Equals(qfo.Release)
	assert.For(ctx, "buffer barrier").That(qfo.DirectionOf(0, &vulkan.VkBufferMemoryBarrier{
		SrcQueueFamilyIndex: 1, DstQueueFamilyIndex: 0,
	})).Equals(qfo.Acquire)
}

func bufferBarrier(src, dst uint32) vulkan.VkBufferMemoryBarrier {
	return vulkan.VkBufferMemoryBarrier{
		SrcQueueFamilyIndex: src,
		DstQueueFamilyIndex: dst,
		Buffer:              10,
		Size:                vulkan.VK_WHOLE_SIZE,
	}
}

func imageBarrier(src, dst uint32) vulkan.VkImageMemoryBarrier {
	return vulkan.VkImageMemoryBarrier{
		SrcQueueFamilyIndex: src,
		DstQueueFamilyIndex: dst,
		Image:               20,
		SubresourceRange: vulkan.VkImageSubresourceRange{
			AspectMask: vulkan.VkImageAspectFlags(vulkan.VkImageAspectFlagBits_VK_IMAGE_ASPECT_COLOR_BIT),
			LevelCount: 1,
			LayerCount: 1,
		},
	}
}

func TestRecordDuplicateWarns(t *testing.T) {
	ctx := log.Testing(t)
	rep := report.NewCollector(report.DefaultSettings)
	cb := qfo.NewCommandBuffer()

	buffers := []vulkan.VkBufferMemoryBarrier{bufferBarrier(0, 1), bufferBarrier(0, 1), bufferBarrier(0, 0)}
	images := []vulkan.VkImageMemoryBarrier{imageBarrier(0, 1)}
	assert.For(ctx, "skip").That(cb.RecordBarriers(ctx, rep, 1, 0, buffers, images)).Equals(false)

	assert.For(ctx, "buffer releases").That(len(cb.Buffers.Release)).Equals(1)
	assert.For(ctx, "image releases").That(len(cb.Images.Release)).Equals(1)
	assert.For(ctx, "acquires").That(len(cb.Buffers.Acquire) + len(cb.Images.Acquire)).Equals(0)
	assert.For(ctx, "duplicate").That(rep.Count("UNASSIGNED-VkBufferMemoryBarrier-buffer-00001")).Equals(1)
	assert.For(ctx, "errors").That(rep.Errors()).Equals(0)

	cb.Reset()
	assert.For(ctx, "reset").That(cb.Empty()).Equals(true)
}

func TestTrackerPairsTransfers(t *testing.T) {
	ctx := log.Testing(t)
	rep := report.NewCollector(report.DefaultSettings)
	tracker := qfo.NewTracker()

	release := qfo.NewCommandBuffer()
	release.RecordBarriers(ctx, rep, 1, 0, []vulkan.VkBufferMemoryBarrier{bufferBarrier(0, 1)},
		[]vulkan.VkImageMemoryBarrier{imageBarrier(0, 1)})
	acquire := qfo.NewCommandBuffer()
	acquire.RecordBarriers(ctx, rep, 2, 1, []vulkan.VkBufferMemoryBarrier{bufferBarrier(0, 1)},
		[]vulkan.VkImageMemoryBarrier{imageBarrier(0, 1)})

	// Acquiring before anything was released.
	acquireSubmit := []qfo.Submitted{{Handle: 2, Barriers: acquire}}
	tracker.Validate(ctx, rep, 100, acquireSubmit)
	assert.For(ctx, "missing buffer release").That(rep.Count("UNASSIGNED-VkBufferMemoryBarrier-buffer-00004")).Equals(1)
	assert.For(ctx, "missing image release").That(rep.Count("UNASSIGNED-VkImageMemoryBarrier-image-00004")).Equals(1)
	rep.Reset()

	releaseSubmit := []qfo.Submitted{{Handle: 1, Barriers: release}}
	assert.For(ctx, "release").That(tracker.Validate(ctx, rep, 100, releaseSubmit)).Equals(false)
	assert.For(ctx, "release clean").That(rep.Errors()).Equals(0)
	tracker.Record(releaseSubmit)
	assert.For(ctx, "pending buffers").ThatSlice(tracker.PendingBuffers()).IsLength(1)
	assert.For(ctx, "pending images").ThatSlice(tracker.PendingImages()).IsLength(1)

	// Releasing again while the first release is pending.
	tracker.Validate(ctx, rep, 100, releaseSubmit)
	assert.For(ctx, "pending duplicate").That(rep.Count("UNASSIGNED-VkBufferMemoryBarrier-buffer-00003")).Equals(1)
	rep.Reset()

	tracker.Validate(ctx, rep, 101, acquireSubmit)
	assert.For(ctx, "acquire clean").That(rep.Errors()).Equals(0)
	tracker.Record(acquireSubmit)
	assert.For(ctx, "retired buffers").ThatSlice(tracker.PendingBuffers()).IsEmpty()
	assert.For(ctx, "retired images").ThatSlice(tracker.PendingImages()).IsEmpty()
}

func TestTrackerBatch(t *testing.T) {
	ctx := log.Testing(t)
	rep := report.NewCollector(report.DefaultSettings)
	tracker := qfo.NewTracker()

	release := qfo.NewCommandBuffer()
	release.RecordBarriers(ctx, rep, 1, 0, []vulkan.VkBufferMemoryBarrier{bufferBarrier(0, 1)}, nil)
	acquire := qfo.NewCommandBuffer()
	acquire.RecordBarriers(ctx, rep, 2, 1, []vulkan.VkBufferMemoryBarrier{bufferBarrier(0, 1)}, nil)

	// A release followed by its acquire in one submission pairs up.
	batch := []qfo.Submitted{{Handle: 1, Barriers: release}, {Handle: 2, Barriers: acquire}}
	assert.For(ctx, "paired").That(tracker.Validate(ctx, rep, 100, batch)).Equals(false)
	assert.For(ctx, "paired clean").That(rep.Errors()).Equals(0)

	dup := []qfo.Submitted{{Handle: 1, Barriers: release}, {Handle: 3, Barriers: release}}
	tracker.Validate(ctx, rep, 100, dup)
	assert.For(ctx, "batch duplicate").That(rep.Count("UNASSIGNED-VkBufferMemoryBarrier-buffer-00002")).Equals(1)

	tracker.Record([]qfo.Submitted{{Handle: 1, Barriers: release}})
	tracker.Forget(vulkan.VkBuffer(10))
	assert.For(ctx, "forgotten").ThatSlice(tracker.PendingBuffers()).IsEmpty()
}
