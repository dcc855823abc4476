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

package layout

import (
	"fmt"

	"github.com/google/vkstate/core/math/interval"
	"github.com/google/vkstate/layer/vulkan"
)

// Subresource identifies a single aspect, mip level and array layer of an
// image.
type Subresource struct {
	Aspect vulkan.VkImageAspectFlagBits
	Mip    uint32
	Layer  uint32
}

func (s Subresource) String() string {
	return fmt.Sprintf("aspect 0x%x mip %d layer %d", uint32(s.Aspect), s.Mip, s.Layer)
}

// Encoder maps the subresources of an image to consecutive integers, aspect
// major, then mip level, then array layer.
type Encoder struct {
	aspects []vulkan.VkImageAspectFlagBits
	mips    uint32
	layers  uint32
}

// NewEncoder returns the encoder for an image with the given aspects, mip
// levels and array layers.
func NewEncoder(aspects vulkan.VkImageAspectFlags, mips, layers uint32) Encoder {
	e := Encoder{mips: mips, layers: layers}
	for bit := vulkan.VkImageAspectFlagBits(1); bit != 0 && bit <= vulkan.VkImageAspectFlagBits_VK_IMAGE_ASPECT_PLANE_2_BIT; bit <<= 1 {
		if vulkan.VkImageAspectFlags(bit)&aspects != 0 {
			e.aspects = append(e.aspects, bit)
		}
	}
	return e
}

// EncoderFor returns the encoder for an image created with ci.
func EncoderFor(ci vulkan.VkImageCreateInfo) Encoder {
	layers := ci.ArrayLayers
	if layers == 0 {
		layers = 1
	}
	mips := ci.MipLevels
	if mips == 0 {
		mips = 1
	}
	return NewEncoder(ci.Format.Aspects(), mips, layers)
}

// Size returns the number of subresources.
func (e Encoder) Size() uint64 {
	return uint64(len(e.aspects)) * uint64(e.mips) * uint64(e.layers)
}

// Aspects returns the aspects of the image.
func (e Encoder) Aspects() vulkan.VkImageAspectFlags {
	out := vulkan.VkImageAspectFlags(0)
	for _, a := range e.aspects {
		out |= vulkan.VkImageAspectFlags(a)
	}
	return out
}

// Encode returns the index of s.
func (e Encoder) Encode(s Subresource) uint64 {
	for i, a := range e.aspects {
		if a == s.Aspect {
			return (uint64(i)*uint64(e.mips)+uint64(s.Mip))*uint64(e.layers) + uint64(s.Layer)
		}
	}
	panic(fmt.Errorf("aspect 0x%x is not part of the image", uint32(s.Aspect)))
}

// Decode returns the subresource with the index i.
func (e Encoder) Decode(i uint64) Subresource {
	layer := i % uint64(e.layers)
	i /= uint64(e.layers)
	mip := i % uint64(e.mips)
	aspect := i / uint64(e.mips)
	return Subresource{Aspect: e.aspects[aspect], Mip: uint32(mip), Layer: uint32(layer)}
}

// Normalize resolves the REMAINING counts of r and clamps it to the image.
func (e Encoder) Normalize(r vulkan.VkImageSubresourceRange) vulkan.VkImageSubresourceRange {
	r.AspectMask &= e.Aspects()
	if r.BaseMipLevel > e.mips {
		r.BaseMipLevel = e.mips
	}
	if r.LevelCount == vulkan.VK_REMAINING_MIP_LEVELS || r.BaseMipLevel+r.LevelCount > e.mips {
		r.LevelCount = e.mips - r.BaseMipLevel
	}
	if r.BaseArrayLayer > e.layers {
		r.BaseArrayLayer = e.layers
	}
	if r.LayerCount == vulkan.VK_REMAINING_ARRAY_LAYERS || r.BaseArrayLayer+r.LayerCount > e.layers {
		r.LayerCount = e.layers - r.BaseArrayLayer
	}
	return r
}

// Whole returns the range covering every subresource.
func (e Encoder) Whole() vulkan.VkImageSubresourceRange {
	return vulkan.VkImageSubresourceRange{
		AspectMask: e.Aspects(),
		LevelCount: e.mips,
		LayerCount: e.layers,
	}
}

// Spans returns the index spans covered by r, in ascending order with
// adjacent spans joined.
func (e Encoder) Spans(r vulkan.VkImageSubresourceRange) []interval.U64Span {
	r = e.Normalize(r)
	out := []interval.U64Span{}
	if r.LevelCount == 0 || r.LayerCount == 0 {
		return out
	}
	for _, a := range e.aspects {
		if vulkan.VkImageAspectFlags(a)&r.AspectMask == 0 {
			continue
		}
		for mip := r.BaseMipLevel; mip < r.BaseMipLevel+r.LevelCount; mip++ {
			start := e.Encode(Subresource{a, mip, r.BaseArrayLayer})
			span := interval.U64Span{Start: start, End: start + uint64(r.LayerCount)}
			if n := len(out); n > 0 && out[n-1].End == span.Start {
				out[n-1].End = span.End
				continue
			}
			out = append(out, span)
		}
	}
	return out
}
