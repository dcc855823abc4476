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

	"github.com/google/vkstate/layer/registry"
	"github.com/google/vkstate/layer/report"
	"github.com/google/vkstate/layer/vulkan"
)

type renderPassScope int

const (
	scopeAny renderPassScope = iota
	scopeInside
	scopeOutside
)

type cmdInfo struct {
	queues      vulkan.VkQueueFlags
	scope       renderPassScope
	primaryOnly bool
}

const (
	qG   = vulkan.VkQueueFlags(vulkan.VkQueueFlagBits_VK_QUEUE_GRAPHICS_BIT)
	qC   = vulkan.VkQueueFlags(vulkan.VkQueueFlagBits_VK_QUEUE_COMPUTE_BIT)
	qT   = vulkan.VkQueueFlags(vulkan.VkQueueFlagBits_VK_QUEUE_TRANSFER_BIT)
	qGC  = qG | qC
	qGCT = qG | qC | qT
)

// cmdInfos holds the queue and render pass requirements of the commands
// recorded into command buffers.
var cmdInfos = map[string]cmdInfo{
	"vkCmdBindPipeline":                   {qGC, scopeAny, false},
	"vkCmdBindDescriptorSets":             {qGC, scopeAny, false},
	"vkCmdPushDescriptorSetKHR":           {qGC, scopeAny, false},
	"vkCmdBindVertexBuffers":              {qG, scopeAny, false},
	"vkCmdBindIndexBuffer":                {qG, scopeAny, false},
	"vkCmdDraw":                           {qG, scopeInside, false},
	"vkCmdDrawIndexed":                    {qG, scopeInside, false},
	"vkCmdDrawIndirect":                   {qG, scopeInside, false},
	"vkCmdDrawIndexedIndirect":            {qG, scopeInside, false},
	"vkCmdDispatch":                       {qC, scopeOutside, false},
	"vkCmdDispatchIndirect":               {qC, scopeOutside, false},
	"vkCmdTraceRaysKHR":                   {qC, scopeOutside, false},
	"vkCmdBuildAccelerationStructuresKHR": {qC, scopeOutside, false},
	"vkCmdBeginRenderPass":                {qG, scopeOutside, true},
	"vkCmdNextSubpass":                    {qG, scopeInside, true},
	"vkCmdEndRenderPass":                  {qG, scopeInside, true},
	"vkCmdBeginRendering":                 {qG, scopeOutside, false},
	"vkCmdEndRendering":                   {qG, scopeInside, false},
	"vkCmdExecuteCommands":                {qGCT, scopeAny, true},
	"vkCmdPipelineBarrier":                {qGCT, scopeAny, false},
	"vkCmdPipelineBarrier2":               {qGCT, scopeAny, false},
	"vkCmdSetEvent":                       {qGC, scopeOutside, false},
	"vkCmdResetEvent":                     {qGC, scopeOutside, false},
	"vkCmdWaitEvents":                     {qGC, scopeAny, false},
	"vkCmdBeginQuery":                     {qGC, scopeAny, false},
	"vkCmdEndQuery":                       {qGC, scopeAny, false},
	"vkCmdResetQueryPool":                 {qGC, scopeOutside, false},
	"vkCmdWriteTimestamp":                 {qGCT, scopeAny, false},
	"vkCmdCopyImage":                      {qGCT, scopeOutside, false},
	"vkCmdCopyBufferToImage":              {qGCT, scopeOutside, false},
	"vkCmdCopyImageToBuffer":              {qGCT, scopeOutside, false},
	"vkCmdClearColorImage":                {qGC, scopeOutside, false},
	"vkCmdClearDepthStencilImage":         {qG, scopeOutside, false},
}

// StateCmds maps the vkCmdSet* commands to the state bits they provide.
var StateCmds = map[string]CBStatus{
	"vkCmdSetViewport":                StatusViewport,
	"vkCmdSetScissor":                 StatusScissor,
	"vkCmdSetLineWidth":               StatusLineWidth,
	"vkCmdSetDepthBias":               StatusDepthBias,
	"vkCmdSetBlendConstants":          StatusBlendConstants,
	"vkCmdSetDepthBounds":             StatusDepthBounds,
	"vkCmdSetStencilCompareMask":      StatusStencilReadMask,
	"vkCmdSetStencilWriteMask":        StatusStencilWriteMask,
	"vkCmdSetStencilReference":        StatusStencilReference,
	"vkCmdSetCullMode":                StatusCullMode,
	"vkCmdSetFrontFace":               StatusFrontFace,
	"vkCmdSetPrimitiveTopology":       StatusPrimitiveTopology,
	"vkCmdSetViewportWithCount":       StatusViewportWithCount,
	"vkCmdSetScissorWithCount":        StatusScissorWithCount,
	"vkCmdSetDepthTestEnable":         StatusDepthTestEnable,
	"vkCmdSetDepthWriteEnable":        StatusDepthWriteEnable,
	"vkCmdSetDepthCompareOp":          StatusDepthCompareOp,
	"vkCmdSetDepthBoundsTestEnable":   StatusDepthBoundsTestEnable,
	"vkCmdSetStencilTestEnable":       StatusStencilTestEnable,
	"vkCmdSetStencilOp":               StatusStencilOp,
	"vkCmdSetLineStippleEXT":          StatusLineStipple,
	"vkCmdSetRasterizerDiscardEnable": StatusRasterizerDiscardEnable,
	"vkCmdSetDepthBiasEnable":         StatusDepthBiasEnable,
	"vkCmdSetPrimitiveRestartEnable":  StatusPrimitiveRestartEnable,
	"vkCmdSetLogicOpEXT":              StatusLogicOp,
	"vkCmdSetPatchControlPointsEXT":   StatusPatchControlPoints,
	"vkCmdSetColorWriteEnableEXT":     StatusColorWriteEnable,
	"vkCmdSetVertexInputEXT":          StatusVertexInput,
}

func init() {
	for name := range StateCmds {
		cmdInfos[name] = cmdInfo{qG, scopeAny, false}
	}
}

// ValidateCmd checks the conditions shared by every command recorded into a
// command buffer: the command buffer is recording, its pool's queue family
// supports the command, and the command is recorded at a legal render pass
// scope.
func (cb *CommandBuffer) ValidateCmd(ctx context.Context, name string) bool {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.validateCmd(ctx, name)
}

func (cb *CommandBuffer) inRenderPass() bool { return cb.renderPass != nil || cb.rendering != nil }

func (cb *CommandBuffer) validateCmd(ctx context.Context, name string) bool {
	rep, h := cb.dev.rep, cb.Handle()
	if cb.state != Recording {
		if cb.state.Invalid() {
			return cb.reportBroken(ctx, name)
		}
		return rep.LogError(ctx, report.Objs(h), fmt.Sprintf("VUID-%s-commandBuffer-recording", name),
			"%s(): %v is %v. It must be in the recording state.", name, vulkan.HandleString(h), cb.state)
	}
	info, ok := cmdInfos[name]
	if !ok {
		return false
	}
	skip := false
	flags := cb.Pool.QueueFlags
	if flags&qGC != 0 {
		flags |= qT
	}
	if flags&info.queues == 0 {
		skip = rep.LogError(ctx, report.Objs(h, cb.Pool.Handle()), fmt.Sprintf("VUID-%s-commandBuffer-cmdpool", name),
			"%s(): %v was allocated from %v of queue family %d, which does not support the command.",
			name, vulkan.HandleString(h), vulkan.HandleString(cb.Pool.Handle()), cb.Pool.QueueFamily) || skip
	}
	switch {
	case info.scope == scopeInside && !cb.inRenderPass():
		skip = rep.LogError(ctx, report.Objs(h), fmt.Sprintf("VUID-%s-renderpass", name),
			"%s(): must be called inside a render pass instance.", name) || skip
	case info.scope == scopeOutside && cb.inRenderPass():
		skip = rep.LogError(ctx, report.Objs(h), fmt.Sprintf("VUID-%s-renderpass", name),
			"%s(): must be called outside of a render pass instance.", name) || skip
	}
	if info.primaryOnly && !cb.IsPrimary() {
		skip = rep.LogError(ctx, report.Objs(h), fmt.Sprintf("VUID-%s-bufferlevel", name),
			"%s(): %v is a secondary command buffer.", name, vulkan.HandleString(h)) || skip
	}
	return skip
}

// recordCmd counts a recorded command. It must be called with the lock held.
func (cb *CommandBuffer) recordCmd() { cb.commandCount++ }

// RecordCmd records a command that has no effect on the tracked state.
func (cb *CommandBuffer) RecordCmd(ctx context.Context) {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.recordCmd()
}

// RecordStateCmd records a vkCmdSet* command providing the state bits.
func (cb *CommandBuffer) RecordStateCmd(ctx context.Context, bits CBStatus) {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.recordCmd()
	cb.dynamicStatus |= bits
	cb.status |= bits
}

// ValidateBindPipeline checks that the pipeline matches the bind point.
func (cb *CommandBuffer) ValidateBindPipeline(ctx context.Context, bp vulkan.VkPipelineBindPoint, h vulkan.VkPipeline) bool {
	skip := cb.ValidateCmd(ctx, "vkCmdBindPipeline")
	p := registry.Get[*Pipeline](cb.dev.reg, h)
	if p != nil && p.BindPoint != bp {
		skip = cb.dev.rep.LogError(ctx, report.Objs(cb.Handle(), h), "VUID-vkCmdBindPipeline-pipelineBindPoint-00779",
			"vkCmdBindPipeline(): %v was not created for bind point %d.", vulkan.HandleString(h), bp) || skip
	}
	return skip
}

// BindPipeline records a vkCmdBindPipeline call. Binding a graphics pipeline
// discards the dynamic state it provides statically.
func (cb *CommandBuffer) BindPipeline(ctx context.Context, bp vulkan.VkPipelineBindPoint, h vulkan.VkPipeline) {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.recordCmd()
	i, ok := bindPointIndex(bp)
	p := registry.Get[*Pipeline](cb.dev.reg, h)
	if !ok || p == nil {
		return
	}
	if i == bindGraphics {
		static := p.StaticStatus()
		cb.dynamicStatus &^= static
		cb.staticStatus = static
		cb.status = static | cb.dynamicStatus | cb.status&StatusIndexBufferBound
	}
	cb.lastBound[i].Pipeline = p
	cb.pipelineBound = true
	cb.bind(p)
}

// UpdateLastBoundDescriptorSets records a vkCmdBindDescriptorSets call.
func (cb *CommandBuffer) UpdateLastBoundDescriptorSets(ctx context.Context, bp vulkan.VkPipelineBindPoint,
	first uint32, sets []vulkan.VkDescriptorSet, dynamicOffsets []uint32) {

	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.recordCmd()
	i, ok := bindPointIndex(bp)
	if !ok {
		return
	}
	lb := &cb.lastBound[i]
	need := int(first) + len(sets)
	for len(lb.Sets) < need {
		lb.Sets = append(lb.Sets, nil)
		lb.DynamicOffsets = append(lb.DynamicOffsets, nil)
	}
	for j, h := range sets {
		s := registry.Get[*DescriptorSet](cb.dev.reg, h)
		lb.Sets[int(first)+j] = s
		lb.DynamicOffsets[int(first)+j] = nil
		if s != nil {
			cb.bind(s)
		}
	}
	if len(sets) > 0 {
		lb.DynamicOffsets[first] = append([]uint32{}, dynamicOffsets...)
	}
}

// PushDescriptorSetState records a vkCmdPushDescriptorSetKHR call. The pushed
// set replaces the set bound at the index.
func (cb *CommandBuffer) PushDescriptorSetState(ctx context.Context, bp vulkan.VkPipelineBindPoint,
	set uint32, writes []vulkan.VkWriteDescriptorSet) {

	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.recordCmd()
	i, ok := bindPointIndex(bp)
	if !ok {
		return
	}
	lb := &cb.lastBound[i]
	if lb.PushDescriptorSet == nil {
		lb.PushDescriptorSet = newDescriptorSet(vulkan.VkDescriptorSet(vulkan.VK_NULL_HANDLE))
		lb.PushDescriptorSet.Push = true
		cb.bind(lb.PushDescriptorSet)
	}
	for _, w := range writes {
		lb.PushDescriptorSet.write(cb.dev.reg, w)
	}
	for len(lb.Sets) <= int(set) {
		lb.Sets = append(lb.Sets, nil)
		lb.DynamicOffsets = append(lb.DynamicOffsets, nil)
	}
	lb.Sets[set] = lb.PushDescriptorSet
}

// BindVertexBuffers records a vkCmdBindVertexBuffers call.
func (cb *CommandBuffer) BindVertexBuffers(ctx context.Context, first uint32, buffers []vulkan.VkBuffer) {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.recordCmd()
	for i, h := range buffers {
		b := registry.Get[*Buffer](cb.dev.reg, h)
		cb.vertexBuffers[first+uint32(i)] = b
		if b != nil {
			cb.bind(b)
		}
	}
}

// BindIndexBuffer records a vkCmdBindIndexBuffer call.
func (cb *CommandBuffer) BindIndexBuffer(ctx context.Context, h vulkan.VkBuffer) {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.recordCmd()
	if b := registry.Get[*Buffer](cb.dev.reg, h); b != nil {
		cb.indexBuffer = b
		cb.status |= StatusIndexBufferBound
		cb.bind(b)
	}
}

// ValidateDraw checks a draw command: a graphics pipeline is bound, every
// state it leaves dynamic has been set and indexed draws have an index
// buffer.
func (cb *CommandBuffer) ValidateDraw(ctx context.Context, name string, indexed bool) bool {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	skip := cb.validateCmd(ctx, name)
	rep, h := cb.dev.rep, cb.Handle()
	p := cb.lastBound[bindGraphics].Pipeline
	if p == nil {
		return rep.LogError(ctx, report.Objs(h), fmt.Sprintf("VUID-%s-None-02700", name),
			"%s(): no graphics pipeline is bound.", name) || skip
	}
	if missing := p.DynamicStatus &^ cb.status; missing != StatusNone {
		skip = rep.LogError(ctx, report.Objs(h, p.Handle()), fmt.Sprintf("VUID-%s-commandBuffer-02701", name),
			"%s(): %v uses dynamic state that was not set: %v.", name, vulkan.HandleString(p.Handle()), missing) || skip
	}
	if indexed && cb.status&StatusIndexBufferBound == 0 {
		skip = rep.LogError(ctx, report.Objs(h), fmt.Sprintf("VUID-%s-None-07312", name),
			"%s(): no index buffer is bound.", name) || skip
	}
	return skip
}

// ValidateDispatch checks a dispatch, trace rays or acceleration structure
// build command: a pipeline is bound to the bind point it uses.
func (cb *CommandBuffer) ValidateDispatch(ctx context.Context, name string, bp vulkan.VkPipelineBindPoint) bool {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	skip := cb.validateCmd(ctx, name)
	i, ok := bindPointIndex(bp)
	if ok && cb.lastBound[i].Pipeline == nil {
		skip = cb.dev.rep.LogError(ctx, report.Objs(cb.Handle()), fmt.Sprintf("VUID-%s-None-02700", name),
			"%s(): no pipeline is bound to bind point %d.", name, bp) || skip
	}
	return skip
}

// Work kinds recorded by the work commands.
const (
	WorkDraw = iota
	WorkDispatch
	WorkTraceRays
	WorkBuildAccelerationStructure
)

// RecordWork records a draw, dispatch, trace rays or acceleration structure
// build command. The descriptor sets bound for the command are checked again
// at submission, once the image layouts they rely on are known.
func (cb *CommandBuffer) RecordWork(ctx context.Context, kind int, bp vulkan.VkPipelineBindPoint, name string) {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.recordCmd()
	switch kind {
	case WorkDraw:
		cb.hasDraw = true
	case WorkDispatch:
		cb.hasDispatch = true
	case WorkTraceRays:
		cb.hasTraceRays = true
	case WorkBuildAccelerationStructure:
		cb.hasBuildAccel = true
		return
	}
	if i, ok := bindPointIndex(bp); ok {
		sets := append([]*DescriptorSet{}, cb.lastBound[i].Sets...)
		cb.submitFuncs = append(cb.submitFuncs, checkDescriptorLayouts(cb, name, sets))
	}
}

// checkDescriptorLayouts returns a submit function checking that the images
// written to the sets are in the layouts the descriptors declare.
func checkDescriptorLayouts(cb *CommandBuffer, name string, sets []*DescriptorSet) SubmitFunc {
	return func(ctx context.Context, b *Batch) bool {
		skip := false
		for _, s := range sets {
			if s == nil || s.Destroyed() {
				continue
			}
			for _, d := range s.ImageDescriptors() {
				if d.View == nil || d.View.Destroyed() || d.View.Image == nil {
					continue
				}
				img := d.View.Image
				m := b.Layouts.Get(img.VkImage())
				g := cb.dev.layouts.Snapshot(img.VkImage())
				probe := layoutProbe(img, d.View.Range, d.Layout)
				for _, mm := range probe.Mismatches(m, g) {
					skip = b.Reporter.LogError(ctx, report.Objs(b.Queue.Handle(), cb.Handle(), s.Handle(), img.Handle()),
						vuidInvalidImageLayout,
						"%s(): descriptor binding %d[%d] of %v expects %v in %v but %v is in %v.",
						name, d.Binding, d.Element, vulkan.HandleString(s.Handle()), vulkan.HandleString(img.Handle()),
						mm.Expected, mm.First, mm.Actual) || skip
				}
			}
		}
		return skip
	}
}
