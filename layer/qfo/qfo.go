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

// Package qfo tracks queue family ownership transfers.
//
// A transfer is a release barrier recorded on the source queue family paired
// with an acquire barrier, for the same resource range and family pair,
// recorded on the destination queue family.
package qfo

import (
	"fmt"

	"github.com/google/vkstate/layer/vulkan"
)

// Direction is the role of a barrier in an ownership transfer.
type Direction int

const (
	// None is a barrier that is not part of a transfer.
	None Direction = iota
	// Release is the half of a transfer recorded on the source family.
	Release
	// Acquire is the half of a transfer recorded on the destination family.
	Acquire
)

func (d Direction) String() string {
	switch d {
	case Release:
		return "release"
	case Acquire:
		return "acquire"
	default:
		return "none"
	}
}

// IsSpecial returns true for the reserved queue family indices.
func IsSpecial(family uint32) bool {
	switch family {
	case vulkan.VK_QUEUE_FAMILY_IGNORED, vulkan.VK_QUEUE_FAMILY_EXTERNAL, vulkan.VK_QUEUE_FAMILY_FOREIGN:
		return true
	}
	return false
}

// Classify returns the direction of a barrier between the src and dst
// families recorded in a command buffer allocated for poolFamily.
func Classify(poolFamily, src, dst uint32) Direction {
	if src == dst || IsSpecial(src) || IsSpecial(dst) {
		return None
	}
	switch poolFamily {
	case src:
		return Release
	case dst:
		return Acquire
	}
	return None
}

// Families returns the queue families of a barrier. Memory barriers carry no
// families and report ok false.
func Families(barrier interface{}) (src, dst uint32, ok bool) {
	switch b := barrier.(type) {
	case vulkan.VkBufferMemoryBarrier:
		return b.SrcQueueFamilyIndex, b.DstQueueFamilyIndex, true
	case *vulkan.VkBufferMemoryBarrier:
		return b.SrcQueueFamilyIndex, b.DstQueueFamilyIndex, true
	case vulkan.VkImageMemoryBarrier:
		return b.SrcQueueFamilyIndex, b.DstQueueFamilyIndex, true
	case *vulkan.VkImageMemoryBarrier:
		return b.SrcQueueFamilyIndex, b.DstQueueFamilyIndex, true
	case vulkan.VkMemoryBarrier, *vulkan.VkMemoryBarrier:
		return 0, 0, false
	}
	panic(fmt.Errorf("%T is not a barrier", barrier))
}

// DirectionOf returns the direction of barrier recorded in a command buffer
// allocated for poolFamily.
func DirectionOf(poolFamily uint32, barrier interface{}) Direction {
	src, dst, ok := Families(barrier)
	if !ok {
		return None
	}
	return Classify(poolFamily, src, dst)
}

// Transfer is the identity of one half of an ownership transfer.
type Transfer interface {
	comparable
	// Resource returns the buffer or image being transferred.
	Resource() vulkan.Handle
	// Families returns the source and destination queue families.
	Families() (src, dst uint32)
	fmt.Stringer
}

// BufferTransfer identifies a buffer range ownership transfer.
type BufferTransfer struct {
	Buffer vulkan.VkBuffer
	Offset uint64
	Size   uint64
	Src    uint32
	Dst    uint32
}

// BufferTransferOf returns the transfer identity of b.
func BufferTransferOf(b vulkan.VkBufferMemoryBarrier) BufferTransfer {
	return BufferTransfer{b.Buffer, b.Offset, b.Size, b.SrcQueueFamilyIndex, b.DstQueueFamilyIndex}
}

func (t BufferTransfer) Resource() vulkan.Handle     { return t.Buffer }
func (t BufferTransfer) Families() (src, dst uint32) { return t.Src, t.Dst }
func (t BufferTransfer) String() string {
	return fmt.Sprintf("%v offset %d size %d from family %d to %d",
		vulkan.HandleString(t.Buffer), t.Offset, t.Size, t.Src, t.Dst)
}

// ImageTransfer identifies an image subresource range ownership transfer.
type ImageTransfer struct {
	Image vulkan.VkImage
	Range vulkan.VkImageSubresourceRange
	Src   uint32
	Dst   uint32
}

// ImageTransferOf returns the transfer identity of b.
func ImageTransferOf(b vulkan.VkImageMemoryBarrier) ImageTransfer {
	return ImageTransfer{b.Image, b.SubresourceRange, b.SrcQueueFamilyIndex, b.DstQueueFamilyIndex}
}

func (t ImageTransfer) Resource() vulkan.Handle     { return t.Image }
func (t ImageTransfer) Families() (src, dst uint32) { return t.Src, t.Dst }
func (t ImageTransfer) String() string {
	r := t.Range
	return fmt.Sprintf("%v aspects 0x%x mips %d+%d layers %d+%d from family %d to %d",
		vulkan.HandleString(t.Image), uint32(r.AspectMask), r.BaseMipLevel, r.LevelCount,
		r.BaseArrayLayer, r.LayerCount, t.Src, t.Dst)
}
