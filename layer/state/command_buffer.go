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
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/google/vkstate/core/log"
	"github.com/google/vkstate/layer/layout"
	"github.com/google/vkstate/layer/qfo"
	"github.com/google/vkstate/layer/registry"
	"github.com/google/vkstate/layer/report"
	"github.com/google/vkstate/layer/vulkan"
)

// State is the recording state of a command buffer.
type State int

const (
	New State = iota
	Recording
	Recorded
	// InvalidComplete is a recorded command buffer that referenced an object
	// which was destroyed or modified.
	InvalidComplete
	// InvalidIncomplete is a command buffer whose recording failed or
	// referenced an object which was destroyed before recording ended.
	InvalidIncomplete
)

func (s State) String() string {
	switch s {
	case New:
		return "new"
	case Recording:
		return "recording"
	case Recorded:
		return "recorded"
	case InvalidComplete:
		return "invalid (complete)"
	case InvalidIncomplete:
		return "invalid (incomplete)"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Invalid returns true for both invalid states.
func (s State) Invalid() bool { return s == InvalidComplete || s == InvalidIncomplete }

// SubmitFunc is run for each submission of the command buffer it was
// recorded into, once the submission order is known.
type SubmitFunc func(ctx context.Context, b *Batch) bool

// ExecuteFunc is run when a secondary command buffer is executed by a
// primary. fb is the framebuffer of the primary's render pass, if any.
type ExecuteFunc func(ctx context.Context, secondary, primary *CommandBuffer, fb *Framebuffer) bool

// EventFunc updates the stage masks of events as seen by a submission.
type EventFunc func(ctx context.Context, cb *CommandBuffer, b *Batch) bool

// QueryFunc updates the states of queries as seen by a submission.
type QueryFunc func(ctx context.Context, cb *CommandBuffer, b *Batch) bool

const (
	bindGraphics = iota
	bindCompute
	bindRayTracing
	bindPointCount
)

func bindPointIndex(bp vulkan.VkPipelineBindPoint) (int, bool) {
	switch bp {
	case vulkan.VkPipelineBindPoint_VK_PIPELINE_BIND_POINT_GRAPHICS:
		return bindGraphics, true
	case vulkan.VkPipelineBindPoint_VK_PIPELINE_BIND_POINT_COMPUTE:
		return bindCompute, true
	case vulkan.VkPipelineBindPoint_VK_PIPELINE_BIND_POINT_RAY_TRACING_KHR:
		return bindRayTracing, true
	}
	return 0, false
}

// LastBound is the state bound to one pipeline bind point.
type LastBound struct {
	Pipeline *Pipeline
	// Sets holds the bound descriptor sets by set index. Unbound entries are
	// nil.
	Sets           []*DescriptorSet
	DynamicOffsets [][]uint32
	// PushDescriptorSet is the set last written by vkCmdPushDescriptorSetKHR.
	PushDescriptorSet *DescriptorSet
}

// CommandBuffer is the state of a VkCommandBuffer.
type CommandBuffer struct {
	registry.Node
	dev   *Device
	Pool  *CommandPool
	Level vulkan.VkCommandBufferLevel

	// inUse counts the submissions of the command buffer that have not been
	// retired.
	inUse atomic.Int32

	mu           sync.RWMutex
	state        State
	beginInfo    vulkan.VkCommandBufferBeginInfo
	commandCount int
	submitCount  int

	pipelineBound bool
	status        CBStatus
	staticStatus  CBStatus
	dynamicStatus CBStatus
	lastBound     [bindPointCount]LastBound

	renderPass      *RenderPass
	subpass         uint32
	subpassContents vulkan.VkSubpassContents
	framebuffer     *Framebuffer
	attachments     []*ImageView
	// rendering is the active dynamic rendering instance.
	rendering                  *vulkan.VkRenderingInfo
	hasRenderPassInstance      bool
	suspendsRenderPassInstance bool
	resumesRenderPassInstance  bool

	indexBuffer   *Buffer
	vertexBuffers map[uint32]*Buffer

	activeQueries  map[QueryObject]struct{}
	startedQueries map[QueryObject]struct{}
	resetQueries   map[QueryObject]struct{}
	updatedQueries map[QueryObject]struct{}

	waitedEvents map[vulkan.VkEvent]struct{}
	events       []vulkan.VkEvent

	barriers *qfo.CommandBuffer
	layouts  *layout.Set

	bindings map[*registry.Node]registry.Object
	broken   map[*registry.Node][]*registry.Node
	// brokenOrder holds the keys of broken in the order they broke.
	brokenOrder []*registry.Node
	linked      map[*CommandBuffer]struct{}

	submitFuncs  []SubmitFunc
	executeFuncs []ExecuteFunc
	eventUpdates []EventFunc
	queryUpdates []QueryFunc

	hasDraw       bool
	hasDispatch   bool
	hasTraceRays  bool
	hasBuildAccel bool
}

func newCommandBuffer(d *Device, pool *CommandPool, h vulkan.VkCommandBuffer, level vulkan.VkCommandBufferLevel) *CommandBuffer {
	cb := &CommandBuffer{dev: d, Pool: pool, Level: level}
	cb.Init(h)
	cb.clear()
	return cb
}

// VkCommandBuffer returns the handle of the command buffer.
func (cb *CommandBuffer) VkCommandBuffer() vulkan.VkCommandBuffer {
	return cb.Handle().(vulkan.VkCommandBuffer)
}

// IsPrimary returns true for primary command buffers.
func (cb *CommandBuffer) IsPrimary() bool {
	return cb.Level == vulkan.VkCommandBufferLevel_VK_COMMAND_BUFFER_LEVEL_PRIMARY
}

// clear returns every per recording field to its initial value.
func (cb *CommandBuffer) clear() {
	cb.state = New
	cb.beginInfo = vulkan.VkCommandBufferBeginInfo{}
	cb.commandCount, cb.submitCount = 0, 0
	cb.pipelineBound = false
	cb.status, cb.staticStatus, cb.dynamicStatus = StatusNone, StatusNone, StatusNone
	cb.lastBound = [bindPointCount]LastBound{}
	cb.renderPass, cb.subpass, cb.subpassContents = nil, 0, vulkan.VkSubpassContents_VK_SUBPASS_CONTENTS_INLINE
	cb.framebuffer, cb.attachments, cb.rendering = nil, nil, nil
	cb.hasRenderPassInstance, cb.suspendsRenderPassInstance, cb.resumesRenderPassInstance = false, false, false
	cb.indexBuffer = nil
	cb.vertexBuffers = map[uint32]*Buffer{}
	cb.activeQueries = map[QueryObject]struct{}{}
	cb.startedQueries = map[QueryObject]struct{}{}
	cb.resetQueries = map[QueryObject]struct{}{}
	cb.updatedQueries = map[QueryObject]struct{}{}
	cb.waitedEvents = map[vulkan.VkEvent]struct{}{}
	cb.events = nil
	cb.barriers = qfo.NewCommandBuffer()
	cb.layouts = layout.NewSet()
	cb.bindings = map[*registry.Node]registry.Object{}
	cb.broken = map[*registry.Node][]*registry.Node{}
	cb.brokenOrder = nil
	cb.linked = map[*CommandBuffer]struct{}{}
	cb.submitFuncs, cb.executeFuncs, cb.eventUpdates, cb.queryUpdates = nil, nil, nil, nil
	cb.hasDraw, cb.hasDispatch, cb.hasTraceRays, cb.hasBuildAccel = false, false, false, false
}

// reset unbinds everything the command buffer references and clears it. It
// must be called with the lock held, and returns true if primaries that
// executed the command buffer must be invalidated once the lock is released.
func (cb *CommandBuffer) reset(ctx context.Context) bool {
	for n := range cb.bindings {
		n.RemoveParent(cb)
	}
	for _, lb := range cb.lastBound {
		if lb.PushDescriptorSet != nil {
			lb.PushDescriptorSet.release()
		}
	}
	unlinkPrimaries := false
	if cb.IsPrimary() {
		for sub := range cb.linked {
			sub.RemoveParent(cb)
			sub.mu.Lock()
			delete(sub.linked, cb)
			sub.mu.Unlock()
		}
	} else {
		unlinkPrimaries = len(cb.Parents()) > 0
	}
	cb.clear()
	log.D(ctx, "%v reset", vulkan.HandleString(cb.Handle()))
	return unlinkPrimaries
}

// bind records that the command buffer references obj. It must be called
// with the lock held.
func (cb *CommandBuffer) bind(obj registry.Object) {
	n := obj.Base()
	if _, ok := cb.bindings[n]; ok {
		return
	}
	if n.AddParent(cb) {
		cb.bindings[n] = obj
	}
}

// InUse returns true while a submission of the command buffer is pending.
func (cb *CommandBuffer) InUse() bool { return cb.inUse.Load() > 0 }

// NotifyInvalidate marks the command buffer invalid because the first node
// of invalid was destroyed or modified.
func (cb *CommandBuffer) NotifyInvalidate(ctx context.Context, invalid []*registry.Node, unlink bool) {
	if len(invalid) == 0 {
		return
	}
	cb.mu.Lock()
	switch cb.state {
	case Recording:
		cb.state = InvalidIncomplete
	case Recorded:
		cb.state = InvalidComplete
	}
	first := invalid[0]
	if _, ok := cb.broken[first]; !ok {
		cb.brokenOrder = append(cb.brokenOrder, first)
	}
	cb.broken[first] = append([]*registry.Node{}, invalid...)
	if unlink {
		delete(cb.bindings, first)
		for sub := range cb.linked {
			if &sub.Node == first {
				delete(cb.linked, sub)
			}
		}
		if img, ok := first.Handle().(vulkan.VkImage); ok {
			cb.layouts.Delete(img)
		}
	}
	cb.mu.Unlock()
	log.D(ctx, "%v invalidated by %v", vulkan.HandleString(cb.Handle()), vulkan.HandleString(first.Handle()))
	forward(ctx, &cb.Node, invalid)
}

// describeBroken returns a description of the chain of objects that broke
// the command buffer through n.
func describeBroken(chain []*registry.Node) string {
	parts := make([]string, len(chain))
	for i, n := range chain {
		parts[i] = vulkan.HandleString(n.Handle())
	}
	return strings.Join(parts, " used by ")
}

// reportBroken reports each binding that made the command buffer invalid. It
// must be called with the lock held.
func (cb *CommandBuffer) reportBroken(ctx context.Context, call string) bool {
	skip := false
	for _, n := range cb.brokenOrder {
		chain := cb.broken[n]
		vuid := "UNASSIGNED-CoreValidation-DrawState-InvalidCommandBuffer-" + strings.TrimPrefix(n.Handle().HandleType(), "Vk")
		skip = cb.dev.rep.LogError(ctx, report.Objs(cb.Handle(), n.Handle()), vuid,
			"%s(): %v is invalid because %s was destroyed or updated.",
			call, vulkan.HandleString(cb.Handle()), describeBroken(chain)) || skip
	}
	return skip
}

// State returns the recording state.
func (cb *CommandBuffer) State() State {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.state
}

// CommandCount returns the number of commands recorded since Begin.
func (cb *CommandBuffer) CommandCount() int {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.commandCount
}

// SubmitCount returns the number of times the recording was submitted.
func (cb *CommandBuffer) SubmitCount() int {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.submitCount
}

// BeginInfo returns the begin info of the current recording.
func (cb *CommandBuffer) BeginInfo() vulkan.VkCommandBufferBeginInfo {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.beginInfo
}

// Status returns the state bits provided so far, the bits provided by the
// bound graphics pipeline and the bits provided by vkCmdSet* commands.
func (cb *CommandBuffer) Status() (status, static, dynamic CBStatus) {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.status, cb.staticStatus, cb.dynamicStatus
}

// PipelineBound returns true once any pipeline was bound.
func (cb *CommandBuffer) PipelineBound() bool {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.pipelineBound
}

// LastBound returns a copy of the state bound to bp.
func (cb *CommandBuffer) LastBound(bp vulkan.VkPipelineBindPoint) LastBound {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	i, ok := bindPointIndex(bp)
	if !ok {
		return LastBound{}
	}
	lb := cb.lastBound[i]
	lb.Sets = append([]*DescriptorSet{}, lb.Sets...)
	lb.DynamicOffsets = append([][]uint32{}, lb.DynamicOffsets...)
	return lb
}

// ActiveRenderPass returns the render pass instance being recorded, if any,
// and its subpass index.
func (cb *CommandBuffer) ActiveRenderPass() (*RenderPass, uint32) {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.renderPass, cb.subpass
}

// InRendering returns true while a dynamic rendering instance is active.
func (cb *CommandBuffer) InRendering() bool {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.rendering != nil
}

// RenderPassInstance returns whether the command buffer records a render
// pass instance, and whether it suspends and resumes one.
func (cb *CommandBuffer) RenderPassInstance() (has, suspends, resumes bool) {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.hasRenderPassInstance, cb.suspendsRenderPassInstance, cb.resumesRenderPassInstance
}

// Work returns the kinds of work recorded into the command buffer.
func (cb *CommandBuffer) Work() (draw, dispatch, traceRays, buildAccel bool) {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.hasDraw, cb.hasDispatch, cb.hasTraceRays, cb.hasBuildAccel
}

// Bindings returns the handles of the objects referenced by the command
// buffer, in handle order.
func (cb *CommandBuffer) Bindings() []vulkan.Handle {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	out := make([]vulkan.Handle, 0, len(cb.bindings))
	for n := range cb.bindings {
		out = append(out, n.Handle())
	}
	sortHandles(out)
	return out
}

// BrokenBindings returns the handles of the objects that made the command
// buffer invalid, in the order they did.
func (cb *CommandBuffer) BrokenBindings() []vulkan.Handle {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	out := make([]vulkan.Handle, len(cb.brokenOrder))
	for i, n := range cb.brokenOrder {
		out[i] = n.Handle()
	}
	return out
}

// Linked returns the command buffers linked by vkCmdExecuteCommands: the
// executed secondaries of a primary, or the primaries of a secondary.
func (cb *CommandBuffer) Linked() []*CommandBuffer {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	out := make([]*CommandBuffer, 0, len(cb.linked))
	for l := range cb.linked {
		out = append(out, l)
	}
	sortCommandBuffers(out)
	return out
}

// Barriers returns the queue family ownership transfers recorded so far.
func (cb *CommandBuffer) Barriers() *qfo.CommandBuffer {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.barriers
}

// ActiveQueries returns the queries begun and not yet ended.
func (cb *CommandBuffer) ActiveQueries() []QueryObject {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return sortedQueries(cb.activeQueries)
}

// Events returns the events set, reset or waited on, in recorded order.
func (cb *CommandBuffer) Events() []vulkan.VkEvent {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return append([]vulkan.VkEvent{}, cb.events...)
}

// ImageLayout returns the layout of the subresource of img at the current
// point of the recording, falling back to the layout after the submitted
// work when the command buffer has not used the subresource.
func (cb *CommandBuffer) ImageLayout(img vulkan.VkImage, s layout.Subresource) vulkan.VkImageLayout {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	if m := cb.layouts.Get(img); m != nil {
		if l := m.CurrentLayout(s); l != layout.None {
			return l
		}
		if l := m.InitialLayout(s); l != layout.None {
			return l
		}
	}
	return cb.dev.layouts.Layout(img, s)
}

// LayoutMap returns the layouts recorded for img, or nil. The map must not
// be modified.
func (cb *CommandBuffer) LayoutMap(img vulkan.VkImage) *layout.Map {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.layouts.Get(img)
}

// SetImageLayout records a transition of the range of img to l. Subresources
// not yet used by the command buffer are expected in expected, or in l when
// expected is layout.None.
func (cb *CommandBuffer) SetImageLayout(img *Image, r vulkan.VkImageSubresourceRange, l, expected vulkan.VkImageLayout) {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.setImageLayout(img, r, l, expected)
}

// SetImageInitialLayout records that the range of img is expected in l where
// the command buffer has no expectation yet.
func (cb *CommandBuffer) SetImageInitialLayout(img *Image, r vulkan.VkImageSubresourceRange, l vulkan.VkImageLayout) {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.setImageInitialLayout(img, r, l)
}

func (cb *CommandBuffer) setImageLayout(img *Image, r vulkan.VkImageSubresourceRange, l, expected vulkan.VkImageLayout) {
	cb.bind(img)
	cb.layouts.Mutable(img.VkImage(), img.Encoder).SetSubresourceRangeLayout(r, l, expected)
}

func (cb *CommandBuffer) setImageInitialLayout(img *Image, r vulkan.VkImageSubresourceRange, l vulkan.VkImageLayout) {
	cb.bind(img)
	cb.layouts.Mutable(img.VkImage(), img.Encoder).SetSubresourceRangeInitialLayout(r, l)
}

func (cb *CommandBuffer) setViewLayout(v *ImageView, l, expected vulkan.VkImageLayout) {
	if v == nil || v.Image == nil {
		return
	}
	cb.bind(v)
	cb.setImageLayout(v.Image, v.Range, l, expected)
}

// ValidateBegin checks a vkBeginCommandBuffer call.
func (cb *CommandBuffer) ValidateBegin(ctx context.Context, info vulkan.VkCommandBufferBeginInfo) bool {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	rep, h := cb.dev.rep, cb.Handle()
	skip := false
	switch {
	case cb.InUse():
		skip = rep.LogError(ctx, report.Objs(h), "VUID-vkBeginCommandBuffer-commandBuffer-00049",
			"vkBeginCommandBuffer(): %v is in use and has not completed.", vulkan.HandleString(h)) || skip
	case cb.state == Recording:
		skip = rep.LogError(ctx, report.Objs(h), "VUID-vkBeginCommandBuffer-commandBuffer-00049",
			"vkBeginCommandBuffer(): %v is already recording. vkEndCommandBuffer() must be called first.",
			vulkan.HandleString(h)) || skip
	case cb.state != New && !cb.Pool.Resettable():
		skip = rep.LogError(ctx, report.Objs(h, cb.Pool.Handle()), "VUID-vkBeginCommandBuffer-commandBuffer-00050",
			"vkBeginCommandBuffer(): %v is %v, which requires an implicit reset, but %v was not created with "+
				"VK_COMMAND_POOL_CREATE_RESET_COMMAND_BUFFER_BIT.",
			vulkan.HandleString(h), cb.state, vulkan.HandleString(cb.Pool.Handle())) || skip
	}
	if cb.IsPrimary() {
		return skip
	}
	inh := info.InheritanceInfo
	if inh == nil {
		return rep.LogError(ctx, report.Objs(h), "VUID-vkBeginCommandBuffer-commandBuffer-00051",
			"vkBeginCommandBuffer(): secondary %v has no inheritance info.", vulkan.HandleString(h)) || skip
	}
	if info.Flags&continueBit != 0 && inh.RenderPass == vulkan.VK_NULL_HANDLE && inh.Rendering == nil {
		skip = rep.LogError(ctx, report.Objs(h), "VUID-VkCommandBufferBeginInfo-flags-00053",
			"vkBeginCommandBuffer(): secondary %v continues a render pass but inherits none.",
			vulkan.HandleString(h)) || skip
	}
	return skip
}

const (
	continueBit     = vulkan.VkCommandBufferUsageFlags(vulkan.VkCommandBufferUsageFlagBits_VK_COMMAND_BUFFER_USAGE_RENDER_PASS_CONTINUE_BIT)
	simultaneousBit = vulkan.VkCommandBufferUsageFlags(vulkan.VkCommandBufferUsageFlagBits_VK_COMMAND_BUFFER_USAGE_SIMULTANEOUS_USE_BIT)
	oneTimeBit      = vulkan.VkCommandBufferUsageFlags(vulkan.VkCommandBufferUsageFlagBits_VK_COMMAND_BUFFER_USAGE_ONE_TIME_SUBMIT_BIT)
)

// Begin records a vkBeginCommandBuffer call, resetting the command buffer if
// it was not new.
func (cb *CommandBuffer) Begin(ctx context.Context, info vulkan.VkCommandBufferBeginInfo) {
	cb.mu.Lock()
	unlink := false
	if cb.state != New {
		unlink = cb.reset(ctx)
	}
	deepCopy(ctx, &cb.beginInfo, &info)
	cb.state = Recording
	if inh := cb.beginInfo.InheritanceInfo; !cb.IsPrimary() && inh != nil && info.Flags&continueBit != 0 {
		if rp := registry.Get[*RenderPass](cb.dev.reg, inh.RenderPass); rp != nil {
			cb.renderPass, cb.subpass = rp, inh.Subpass
			cb.bind(rp)
		}
		if fb := registry.Get[*Framebuffer](cb.dev.reg, inh.Framebuffer); fb != nil {
			cb.framebuffer = fb
			cb.bind(fb)
			cb.executeFuncs = append(cb.executeFuncs, checkInheritedFramebuffer(inh.Framebuffer))
		}
		if inh.Rendering != nil {
			cb.rendering = &vulkan.VkRenderingInfo{Flags: inh.Rendering.Flags}
		}
	}
	cb.mu.Unlock()
	if unlink {
		cb.Invalidate(ctx, true)
	}
}

func checkInheritedFramebuffer(inherited vulkan.VkFramebuffer) ExecuteFunc {
	return func(ctx context.Context, secondary, primary *CommandBuffer, fb *Framebuffer) bool {
		if fb == nil || fb.Handle() == vulkan.Handle(inherited) {
			return false
		}
		return primary.dev.rep.LogError(ctx, report.Objs(primary.Handle(), secondary.Handle(), fb.Handle()),
			"VUID-vkCmdExecuteCommands-pCommandBuffers-00099",
			"vkCmdExecuteCommands(): %v inherits %v but is executed in a render pass using %v.",
			vulkan.HandleString(secondary.Handle()), vulkan.HandleString(inherited), vulkan.HandleString(fb.Handle()))
	}
}

// ValidateEnd checks a vkEndCommandBuffer call.
func (cb *CommandBuffer) ValidateEnd(ctx context.Context) bool {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	rep, h := cb.dev.rep, cb.Handle()
	skip := false
	if cb.state != Recording {
		if cb.state == InvalidIncomplete {
			skip = cb.reportBroken(ctx, "vkEndCommandBuffer") || skip
		}
		return rep.LogError(ctx, report.Objs(h), "VUID-vkEndCommandBuffer-commandBuffer-00059",
			"vkEndCommandBuffer(): %v is %v, not recording.", vulkan.HandleString(h), cb.state) || skip
	}
	if cb.IsPrimary() && (cb.renderPass != nil || cb.rendering != nil) {
		skip = rep.LogError(ctx, report.Objs(h), "VUID-vkEndCommandBuffer-commandBuffer-00060",
			"vkEndCommandBuffer(): %v ends inside a render pass instance.", vulkan.HandleString(h)) || skip
	}
	for _, q := range sortedQueries(cb.activeQueries) {
		skip = rep.LogError(ctx, report.Objs(h, q.Pool), "VUID-vkEndCommandBuffer-commandBuffer-00061",
			"vkEndCommandBuffer(): %v ends with %v still active.", vulkan.HandleString(h), q) || skip
	}
	return skip
}

// End records a vkEndCommandBuffer call that returned result. A command
// buffer with an unterminated scope never becomes executable.
func (cb *CommandBuffer) End(ctx context.Context, result vulkan.VkResult) {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	if cb.state != Recording {
		return
	}
	complete := len(cb.activeQueries) == 0 && !(cb.IsPrimary() && (cb.renderPass != nil || cb.rendering != nil))
	if result.Succeeded() && complete {
		cb.state = Recorded
	} else {
		cb.state = InvalidIncomplete
	}
}

// ValidateReset checks a vkResetCommandBuffer call.
func (cb *CommandBuffer) ValidateReset(ctx context.Context) bool {
	rep, h := cb.dev.rep, cb.Handle()
	skip := false
	if !cb.Pool.Resettable() {
		skip = rep.LogError(ctx, report.Objs(h, cb.Pool.Handle()), "VUID-vkResetCommandBuffer-commandBuffer-00046",
			"vkResetCommandBuffer(): %v was not allocated from a pool created with "+
				"VK_COMMAND_POOL_CREATE_RESET_COMMAND_BUFFER_BIT.", vulkan.HandleString(h)) || skip
	}
	if cb.InUse() {
		skip = rep.LogError(ctx, report.Objs(h), "VUID-vkResetCommandBuffer-commandBuffer-00045",
			"vkResetCommandBuffer(): %v is in use and has not completed.", vulkan.HandleString(h)) || skip
	}
	return skip
}

// Reset returns the command buffer to the new state. The local image layout
// view is discarded.
func (cb *CommandBuffer) Reset(ctx context.Context) {
	cb.mu.Lock()
	unlink := cb.reset(ctx)
	cb.mu.Unlock()
	if unlink {
		cb.Invalidate(ctx, true)
	}
}

// destroy unbinds everything and marks the command buffer destroyed.
func (cb *CommandBuffer) destroy(ctx context.Context) {
	cb.mu.Lock()
	cb.reset(ctx)
	cb.mu.Unlock()
	cb.Destroy(ctx)
}
