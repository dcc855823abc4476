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
	"sort"
	"sync"

	"github.com/jinzhu/copier"

	"github.com/google/vkstate/core/log"
	"github.com/google/vkstate/layer/layout"
	"github.com/google/vkstate/layer/registry"
	"github.com/google/vkstate/layer/report"
	"github.com/google/vkstate/layer/vulkan"
)

// deepCopy copies src into dst without sharing slices or pointers, so that
// the state never aliases memory owned by the caller.
func deepCopy(ctx context.Context, dst, src interface{}) {
	if err := copier.CopyWithOption(dst, src, copier.Option{DeepCopy: true}); err != nil {
		log.F(ctx, true, "Copying %T: %v", src, err)
	}
}

// forward passes an invalidation on to the parents of n, with n appended to
// the chain of invalid nodes.
func forward(ctx context.Context, n *registry.Node, invalid []*registry.Node) {
	chain := append(append([]*registry.Node{}, invalid...), n)
	for _, p := range n.Parents() {
		p.NotifyInvalidate(ctx, chain, false)
	}
}

// Image is the state of a VkImage.
type Image struct {
	registry.Node
	CreateInfo vulkan.VkImageCreateInfo
	Encoder    layout.Encoder
	// Swapchain is the swapchain owning a presentable image.
	Swapchain      vulkan.VkSwapchainKHR
	SwapchainIndex uint32
}

// VkImage returns the handle of the image.
func (i *Image) VkImage() vulkan.VkImage { return i.Handle().(vulkan.VkImage) }

// FullRange returns the range of every subresource of the image.
func (i *Image) FullRange() vulkan.VkImageSubresourceRange { return i.Encoder.Whole() }

// CreateImage records a new image.
func (d *Device) CreateImage(ctx context.Context, h vulkan.VkImage, ci vulkan.VkImageCreateInfo) *Image {
	img := &Image{Encoder: layout.EncoderFor(ci)}
	deepCopy(ctx, &img.CreateInfo, &ci)
	img.Init(h)
	d.reg.Add(img)
	d.layouts.AddImage(h, img.Encoder, ci.InitialLayout)
	return img
}

// AddSwapchainImage records the presentable image index of swapchain sc.
func (d *Device) AddSwapchainImage(ctx context.Context, h vulkan.VkImage, ci vulkan.VkImageCreateInfo,
	sc vulkan.VkSwapchainKHR, index uint32) *Image {

	ci.InitialLayout = vulkan.VkImageLayout_VK_IMAGE_LAYOUT_UNDEFINED
	img := d.CreateImage(ctx, h, ci)
	img.Swapchain, img.SwapchainIndex = sc, index
	return img
}

// ValidateDestroyImage checks a vkDestroyImage call.
func (d *Device) ValidateDestroyImage(ctx context.Context, h vulkan.VkImage) bool {
	img := registry.Get[*Image](d.reg, h)
	if img == nil {
		return false
	}
	if img.Swapchain != vulkan.VK_NULL_HANDLE {
		return d.rep.LogError(ctx, report.Objs(h, img.Swapchain), "VUID-vkDestroyImage-image-04882",
			"vkDestroyImage(): %v is a presentable image of %v.", vulkan.HandleString(h), vulkan.HandleString(img.Swapchain))
	}
	return d.validateNotInUse(ctx, img, "VUID-vkDestroyImage-image-01000", "vkDestroyImage")
}

// DestroyImage forgets the image and invalidates its users.
func (d *Device) DestroyImage(ctx context.Context, h vulkan.VkImage) {
	if img := registry.Remove[*Image](d.reg, h); img != nil {
		img.Destroy(ctx)
		d.layouts.RemoveImage(h)
		d.qfo.Forget(h)
	}
}

// ImageView is the state of a VkImageView.
type ImageView struct {
	registry.Node
	CreateInfo vulkan.VkImageViewCreateInfo
	Image      *Image
	// Range is the subresource range of the view with the remaining counts
	// resolved.
	Range vulkan.VkImageSubresourceRange
}

// NotifyInvalidate passes the invalidation of the image on to the users of
// the view.
func (v *ImageView) NotifyInvalidate(ctx context.Context, invalid []*registry.Node, unlink bool) {
	forward(ctx, &v.Node, invalid)
}

// CreateImageView records a new image view. It returns nil if the image is
// unknown.
func (d *Device) CreateImageView(ctx context.Context, h vulkan.VkImageView, ci vulkan.VkImageViewCreateInfo) *ImageView {
	img := registry.Get[*Image](d.reg, ci.Image)
	if img == nil {
		log.W(ctx, "vkCreateImageView(): unknown image %v", vulkan.HandleString(ci.Image))
		return nil
	}
	v := &ImageView{Image: img, Range: img.Encoder.Normalize(ci.SubresourceRange)}
	deepCopy(ctx, &v.CreateInfo, &ci)
	v.Init(h)
	img.AddParent(v)
	d.reg.Add(v)
	return v
}

// ValidateDestroyImageView checks a vkDestroyImageView call.
func (d *Device) ValidateDestroyImageView(ctx context.Context, h vulkan.VkImageView) bool {
	if v := registry.Get[*ImageView](d.reg, h); v != nil {
		return d.validateNotInUse(ctx, v, "VUID-vkDestroyImageView-imageView-01026", "vkDestroyImageView")
	}
	return false
}

// DestroyImageView forgets the view and invalidates its users.
func (d *Device) DestroyImageView(ctx context.Context, h vulkan.VkImageView) {
	if v := registry.Remove[*ImageView](d.reg, h); v != nil {
		v.Destroy(ctx)
		v.Image.RemoveParent(v)
	}
}

// Buffer is the state of a VkBuffer.
type Buffer struct {
	registry.Node
	CreateInfo vulkan.VkBufferCreateInfo
}

// CreateBuffer records a new buffer.
func (d *Device) CreateBuffer(ctx context.Context, h vulkan.VkBuffer, ci vulkan.VkBufferCreateInfo) *Buffer {
	b := &Buffer{}
	deepCopy(ctx, &b.CreateInfo, &ci)
	b.Init(h)
	d.reg.Add(b)
	return b
}

// ValidateDestroyBuffer checks a vkDestroyBuffer call.
func (d *Device) ValidateDestroyBuffer(ctx context.Context, h vulkan.VkBuffer) bool {
	if b := registry.Get[*Buffer](d.reg, h); b != nil {
		return d.validateNotInUse(ctx, b, "VUID-vkDestroyBuffer-buffer-00922", "vkDestroyBuffer")
	}
	return false
}

// DestroyBuffer forgets the buffer and invalidates its users.
func (d *Device) DestroyBuffer(ctx context.Context, h vulkan.VkBuffer) {
	if b := registry.Remove[*Buffer](d.reg, h); b != nil {
		b.Destroy(ctx)
		d.qfo.Forget(h)
	}
}

// Pipeline is the state of a VkPipeline.
type Pipeline struct {
	registry.Node
	BindPoint vulkan.VkPipelineBindPoint
	// DynamicStatus holds the state bits the pipeline leaves to vkCmdSet*
	// commands.
	DynamicStatus CBStatus
	RenderPass    vulkan.VkRenderPass
	Subpass       uint32
}

// StaticStatus returns the state bits provided by the pipeline itself.
func (p *Pipeline) StaticStatus() CBStatus { return StatusAllStateSet &^ p.DynamicStatus }

// CreateGraphicsPipelines records the pipelines created by a
// vkCreateGraphicsPipelines call.
func (d *Device) CreateGraphicsPipelines(ctx context.Context, cis []vulkan.VkGraphicsPipelineCreateInfo, hs []vulkan.VkPipeline) {
	for i, h := range hs {
		if i >= len(cis) || h == vulkan.VK_NULL_HANDLE {
			continue
		}
		p := &Pipeline{
			BindPoint:     vulkan.VkPipelineBindPoint_VK_PIPELINE_BIND_POINT_GRAPHICS,
			DynamicStatus: DynamicStatus(cis[i].DynamicStates),
			RenderPass:    cis[i].RenderPass,
			Subpass:       cis[i].Subpass,
		}
		p.Init(h)
		d.reg.Add(p)
	}
}

// CreateComputePipelines records the pipelines created by a
// vkCreateComputePipelines call.
func (d *Device) CreateComputePipelines(ctx context.Context, hs []vulkan.VkPipeline) {
	for _, h := range hs {
		if h == vulkan.VK_NULL_HANDLE {
			continue
		}
		p := &Pipeline{BindPoint: vulkan.VkPipelineBindPoint_VK_PIPELINE_BIND_POINT_COMPUTE}
		p.Init(h)
		d.reg.Add(p)
	}
}

// ValidateDestroyPipeline checks a vkDestroyPipeline call.
func (d *Device) ValidateDestroyPipeline(ctx context.Context, h vulkan.VkPipeline) bool {
	if p := registry.Get[*Pipeline](d.reg, h); p != nil {
		return d.validateNotInUse(ctx, p, "VUID-vkDestroyPipeline-pipeline-00765", "vkDestroyPipeline")
	}
	return false
}

// DestroyPipeline forgets the pipeline and invalidates its users.
func (d *Device) DestroyPipeline(ctx context.Context, h vulkan.VkPipeline) {
	if p := registry.Remove[*Pipeline](d.reg, h); p != nil {
		p.Destroy(ctx)
	}
}

type descriptorKey struct{ binding, element uint32 }

// ImageDescriptor is an image written to a descriptor set.
type ImageDescriptor struct {
	Binding, Element uint32
	View             *ImageView
	Layout           vulkan.VkImageLayout
}

// DescriptorSet is the state of a VkDescriptorSet, or of a set pushed with
// vkCmdPushDescriptorSetKHR.
type DescriptorSet struct {
	registry.Node
	UpdateAfterBind bool
	Push            bool

	mu      sync.Mutex
	images  map[descriptorKey]ImageDescriptor
	buffers map[descriptorKey]vulkan.VkDescriptorBufferInfo
}

func newDescriptorSet(h vulkan.VkDescriptorSet) *DescriptorSet {
	s := &DescriptorSet{
		images:  map[descriptorKey]ImageDescriptor{},
		buffers: map[descriptorKey]vulkan.VkDescriptorBufferInfo{},
	}
	s.Init(h)
	return s
}

// NotifyInvalidate passes the invalidation of a written view on to the
// command buffers the set is bound to.
func (s *DescriptorSet) NotifyInvalidate(ctx context.Context, invalid []*registry.Node, unlink bool) {
	forward(ctx, &s.Node, invalid)
}

// ImageDescriptors returns the image descriptors of the set ordered by
// binding and array element.
func (s *DescriptorSet) ImageDescriptors() []ImageDescriptor {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ImageDescriptor, 0, len(s.images))
	for _, d := range s.images {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Binding != out[j].Binding {
			return out[i].Binding < out[j].Binding
		}
		return out[i].Element < out[j].Element
	})
	return out
}

// BufferCount returns the number of buffer descriptors written to the set.
func (s *DescriptorSet) BufferCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.buffers)
}

func (s *DescriptorSet) write(reg *registry.Registry, w vulkan.VkWriteDescriptorSet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, info := range w.ImageInfo {
		k := descriptorKey{w.DstBinding, w.DstArrayElement + uint32(i)}
		if old, ok := s.images[k]; ok && old.View != nil {
			old.View.RemoveParent(s)
		}
		v := registry.Get[*ImageView](reg, info.ImageView)
		if v != nil {
			v.AddParent(s)
		}
		s.images[k] = ImageDescriptor{Binding: k.binding, Element: k.element, View: v, Layout: info.ImageLayout}
	}
	for i, info := range w.BufferInfo {
		s.buffers[descriptorKey{w.DstBinding, w.DstArrayElement + uint32(i)}] = info
	}
}

func (s *DescriptorSet) release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.images {
		if d.View != nil {
			d.View.RemoveParent(s)
		}
	}
}

// AllocateDescriptorSets records the sets returned by
// vkAllocateDescriptorSets.
func (d *Device) AllocateDescriptorSets(ctx context.Context, info vulkan.VkDescriptorSetAllocateInfo, hs []vulkan.VkDescriptorSet) {
	for _, h := range hs {
		s := newDescriptorSet(h)
		s.UpdateAfterBind = info.UpdateAfterBind
		d.reg.Add(s)
	}
}

// ValidateFreeDescriptorSets checks a vkFreeDescriptorSets call.
func (d *Device) ValidateFreeDescriptorSets(ctx context.Context, hs []vulkan.VkDescriptorSet) bool {
	skip := false
	for _, h := range hs {
		if s := registry.Get[*DescriptorSet](d.reg, h); s != nil {
			skip = d.validateNotInUse(ctx, s, "VUID-vkFreeDescriptorSets-pDescriptorSets-00309", "vkFreeDescriptorSets") || skip
		}
	}
	return skip
}

// FreeDescriptorSets forgets the sets and invalidates the command buffers
// they are bound to.
func (d *Device) FreeDescriptorSets(ctx context.Context, hs []vulkan.VkDescriptorSet) {
	for _, h := range hs {
		if s := registry.Remove[*DescriptorSet](d.reg, h); s != nil {
			s.Destroy(ctx)
			s.release()
		}
	}
}

// ValidateUpdateDescriptorSets checks that the written sets are not in use,
// unless they allow updates after binding.
func (d *Device) ValidateUpdateDescriptorSets(ctx context.Context, writes []vulkan.VkWriteDescriptorSet) bool {
	skip := false
	for _, w := range writes {
		s := registry.Get[*DescriptorSet](d.reg, w.DstSet)
		if s == nil || s.UpdateAfterBind || !s.InUse() {
			continue
		}
		skip = d.rep.LogError(ctx, report.Objs(w.DstSet), "VUID-vkUpdateDescriptorSets-None-03047",
			"vkUpdateDescriptorSets(): %v is in use by a command buffer that has not completed.",
			vulkan.HandleString(w.DstSet)) || skip
	}
	return skip
}

// UpdateDescriptorSets applies the writes. Command buffers holding a set that
// does not allow updates after binding become invalid.
func (d *Device) UpdateDescriptorSets(ctx context.Context, writes []vulkan.VkWriteDescriptorSet) {
	for _, w := range writes {
		s := registry.Get[*DescriptorSet](d.reg, w.DstSet)
		if s == nil {
			continue
		}
		s.write(d.reg, w)
		if !s.UpdateAfterBind {
			s.Invalidate(ctx, false)
		}
	}
}

// RenderPass is the state of a VkRenderPass.
type RenderPass struct {
	registry.Node
	CreateInfo vulkan.VkRenderPassCreateInfo
}

// CreateRenderPass records a new render pass.
func (d *Device) CreateRenderPass(ctx context.Context, h vulkan.VkRenderPass, ci vulkan.VkRenderPassCreateInfo) *RenderPass {
	rp := &RenderPass{}
	deepCopy(ctx, &rp.CreateInfo, &ci)
	rp.Init(h)
	d.reg.Add(rp)
	return rp
}

// ValidateDestroyRenderPass checks a vkDestroyRenderPass call.
func (d *Device) ValidateDestroyRenderPass(ctx context.Context, h vulkan.VkRenderPass) bool {
	if rp := registry.Get[*RenderPass](d.reg, h); rp != nil {
		return d.validateNotInUse(ctx, rp, "VUID-vkDestroyRenderPass-renderPass-00873", "vkDestroyRenderPass")
	}
	return false
}

// DestroyRenderPass forgets the render pass and invalidates its users.
func (d *Device) DestroyRenderPass(ctx context.Context, h vulkan.VkRenderPass) {
	if rp := registry.Remove[*RenderPass](d.reg, h); rp != nil {
		rp.Destroy(ctx)
	}
}

// Framebuffer is the state of a VkFramebuffer.
type Framebuffer struct {
	registry.Node
	CreateInfo  vulkan.VkFramebufferCreateInfo
	RenderPass  *RenderPass
	Attachments []*ImageView
}

// NotifyInvalidate passes the invalidation of an attachment on to the users
// of the framebuffer.
func (f *Framebuffer) NotifyInvalidate(ctx context.Context, invalid []*registry.Node, unlink bool) {
	forward(ctx, &f.Node, invalid)
}

// ValidateCreateFramebuffer checks a vkCreateFramebuffer call.
func (d *Device) ValidateCreateFramebuffer(ctx context.Context, ci vulkan.VkFramebufferCreateInfo) bool {
	rp := registry.Get[*RenderPass](d.reg, ci.RenderPass)
	if rp == nil || len(rp.CreateInfo.Attachments) == len(ci.Attachments) {
		return false
	}
	return d.rep.LogError(ctx, report.Objs(ci.RenderPass), "VUID-VkFramebufferCreateInfo-attachmentCount-00876",
		"vkCreateFramebuffer(): attachmentCount %d does not match the %d attachments of %v.",
		len(ci.Attachments), len(rp.CreateInfo.Attachments), vulkan.HandleString(ci.RenderPass))
}

// CreateFramebuffer records a new framebuffer.
func (d *Device) CreateFramebuffer(ctx context.Context, h vulkan.VkFramebuffer, ci vulkan.VkFramebufferCreateInfo) *Framebuffer {
	fb := &Framebuffer{RenderPass: registry.Get[*RenderPass](d.reg, ci.RenderPass)}
	deepCopy(ctx, &fb.CreateInfo, &ci)
	fb.Init(h)
	for _, a := range ci.Attachments {
		v := registry.Get[*ImageView](d.reg, a)
		if v != nil {
			v.AddParent(fb)
		}
		fb.Attachments = append(fb.Attachments, v)
	}
	d.reg.Add(fb)
	return fb
}

// ValidateDestroyFramebuffer checks a vkDestroyFramebuffer call.
func (d *Device) ValidateDestroyFramebuffer(ctx context.Context, h vulkan.VkFramebuffer) bool {
	if fb := registry.Get[*Framebuffer](d.reg, h); fb != nil {
		return d.validateNotInUse(ctx, fb, "VUID-vkDestroyFramebuffer-framebuffer-00892", "vkDestroyFramebuffer")
	}
	return false
}

// DestroyFramebuffer forgets the framebuffer and invalidates its users.
func (d *Device) DestroyFramebuffer(ctx context.Context, h vulkan.VkFramebuffer) {
	if fb := registry.Remove[*Framebuffer](d.reg, h); fb != nil {
		fb.Destroy(ctx)
		for _, v := range fb.Attachments {
			if v != nil {
				v.RemoveParent(fb)
			}
		}
	}
}
