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

	"github.com/google/vkstate/layer/registry"
	"github.com/google/vkstate/layer/report"
	"github.com/google/vkstate/layer/vulkan"
)

const hostStage = vulkan.VkPipelineStageFlagBits_VK_PIPELINE_STAGE_HOST_BIT

// SetEvent records a vkCmdSetEvent call, or a vkCmdResetEvent call when
// stageMask is 0.
func (cb *CommandBuffer) SetEvent(ctx context.Context, h vulkan.VkEvent, stageMask vulkan.VkPipelineStageFlags) {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.recordCmd()
	e := registry.Get[*Event](cb.dev.reg, h)
	if e == nil {
		return
	}
	cb.bind(e)
	cb.events = append(cb.events, h)
	cb.eventUpdates = append(cb.eventUpdates, func(ctx context.Context, cb *CommandBuffer, b *Batch) bool {
		b.Events[h] = stageMask
		return false
	})
}

// ResetEvent records a vkCmdResetEvent call.
func (cb *CommandBuffer) ResetEvent(ctx context.Context, h vulkan.VkEvent) { cb.SetEvent(ctx, h, 0) }

// ValidateWaitEvents checks a vkCmdWaitEvents call.
func (cb *CommandBuffer) ValidateWaitEvents(ctx context.Context, c *vulkan.VkCmdWaitEvents) bool {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	skip := cb.validateCmd(ctx, "vkCmdWaitEvents")
	return cb.validateBarriers(ctx, "vkCmdWaitEvents", barriersV1, c.BufferMemoryBarriers, c.ImageMemoryBarriers) || skip
}

// WaitEvents records a vkCmdWaitEvents call. The source stage mask is
// checked against the stages that set the events once the submission order
// is known.
func (cb *CommandBuffer) WaitEvents(ctx context.Context, c *vulkan.VkCmdWaitEvents) {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.recordCmd()
	waited := []vulkan.VkEvent{}
	for _, h := range c.Events {
		if e := registry.Get[*Event](cb.dev.reg, h); e != nil {
			cb.bind(e)
			cb.waitedEvents[h] = struct{}{}
			cb.events = append(cb.events, h)
			waited = append(waited, h)
		}
	}
	cb.recordBarriers(ctx, c.BufferMemoryBarriers, c.ImageMemoryBarriers)
	cb.eventUpdates = append(cb.eventUpdates, checkWaitEvents(waited, c.SrcStageMask))
}

func checkWaitEvents(waited []vulkan.VkEvent, srcStageMask vulkan.VkPipelineStageFlags) EventFunc {
	return func(ctx context.Context, cb *CommandBuffer, b *Batch) bool {
		var stages vulkan.VkPipelineStageFlags
		for _, h := range waited {
			if s, ok := b.Events[h]; ok {
				stages |= s
			} else if e := registry.Get[*Event](cb.dev.reg, h); e != nil {
				stages |= e.StageMask()
			}
		}
		if srcStageMask == stages || srcStageMask == stages|hostStage {
			return false
		}
		return b.Reporter.LogError(ctx, report.Objs(cb.Handle()), "VUID-vkCmdWaitEvents-srcStageMask-parameter",
			"vkCmdWaitEvents(): srcStageMask 0x%x must be the bitwise OR of the stage masks 0x%x used to set the "+
				"events, optionally with VK_PIPELINE_STAGE_HOST_BIT.", uint64(srcStageMask), uint64(stages))
	}
}

// WaitedEvents returns true if the command buffer waits on h.
func (cb *CommandBuffer) WaitedEvents(h vulkan.VkEvent) bool {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	_, ok := cb.waitedEvents[h]
	return ok
}

func (cb *CommandBuffer) queryPool(h vulkan.VkQueryPool) *QueryPool {
	return registry.Get[*QueryPool](cb.dev.reg, h)
}

// ValidateBeginQuery checks a vkCmdBeginQuery call.
func (cb *CommandBuffer) ValidateBeginQuery(ctx context.Context, pool vulkan.VkQueryPool, query uint32) bool {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	skip := cb.validateCmd(ctx, "vkCmdBeginQuery")
	p := cb.queryPool(pool)
	if p == nil {
		return skip
	}
	q := QueryObject{pool, query}
	if query >= p.CreateInfo.QueryCount {
		skip = cb.dev.rep.LogError(ctx, report.Objs(cb.Handle(), pool), "VUID-vkCmdBeginQuery-query-00802",
			"vkCmdBeginQuery(): query %d is not less than the %d queries of %v.",
			query, p.CreateInfo.QueryCount, vulkan.HandleString(pool)) || skip
	}
	if _, ok := cb.activeQueries[q]; ok {
		skip = cb.dev.rep.LogError(ctx, report.Objs(cb.Handle(), pool), "VUID-vkCmdBeginQuery-queryPool-01922",
			"vkCmdBeginQuery(): %v is already active.", q) || skip
	}
	return skip
}

// BeginQuery records a vkCmdBeginQuery call.
func (cb *CommandBuffer) BeginQuery(ctx context.Context, pool vulkan.VkQueryPool, query uint32) {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.recordCmd()
	p := cb.queryPool(pool)
	if p == nil {
		return
	}
	cb.bind(p)
	q := QueryObject{pool, query}
	cb.activeQueries[q] = struct{}{}
	cb.startedQueries[q] = struct{}{}
	cb.queryUpdates = append(cb.queryUpdates, func(ctx context.Context, cb *CommandBuffer, b *Batch) bool {
		skip := false
		if s := cb.dev.queryState(b.Queries, q); s != QueryReset {
			skip = b.Reporter.LogError(ctx, report.Objs(cb.Handle(), pool), "VUID-vkCmdBeginQuery-None-00807",
				"vkCmdBeginQuery(): %v is %v. It must be reset before it is begun.", q, s)
		}
		b.Queries[q] = QueryRunning
		return skip
	})
}

// ValidateEndQuery checks a vkCmdEndQuery call.
func (cb *CommandBuffer) ValidateEndQuery(ctx context.Context, pool vulkan.VkQueryPool, query uint32) bool {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	skip := cb.validateCmd(ctx, "vkCmdEndQuery")
	q := QueryObject{pool, query}
	if _, ok := cb.activeQueries[q]; !ok {
		skip = cb.dev.rep.LogError(ctx, report.Objs(cb.Handle(), pool), "VUID-vkCmdEndQuery-None-01923",
			"vkCmdEndQuery(): %v is not active.", q) || skip
	}
	return skip
}

// EndQuery records a vkCmdEndQuery call.
func (cb *CommandBuffer) EndQuery(ctx context.Context, pool vulkan.VkQueryPool, query uint32) {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.recordCmd()
	q := QueryObject{pool, query}
	delete(cb.activeQueries, q)
	cb.updatedQueries[q] = struct{}{}
	cb.queryUpdates = append(cb.queryUpdates, func(ctx context.Context, cb *CommandBuffer, b *Batch) bool {
		b.Queries[q] = QueryEnded
		return false
	})
}

// ValidateResetQueryPool checks a vkCmdResetQueryPool call.
func (cb *CommandBuffer) ValidateResetQueryPool(ctx context.Context, pool vulkan.VkQueryPool, first, count uint32) bool {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	skip := cb.validateCmd(ctx, "vkCmdResetQueryPool")
	p := cb.queryPool(pool)
	if p == nil {
		return skip
	}
	n := p.CreateInfo.QueryCount
	switch {
	case first >= n:
		skip = cb.dev.rep.LogError(ctx, report.Objs(cb.Handle(), pool), "VUID-vkCmdResetQueryPool-firstQuery-00796",
			"vkCmdResetQueryPool(): firstQuery %d is not less than the %d queries of %v.", first, n, vulkan.HandleString(pool)) || skip
	case uint64(first)+uint64(count) > uint64(n):
		skip = cb.dev.rep.LogError(ctx, report.Objs(cb.Handle(), pool), "VUID-vkCmdResetQueryPool-firstQuery-00797",
			"vkCmdResetQueryPool(): queries %d to %d exceed the %d queries of %v.",
			first, uint64(first)+uint64(count)-1, n, vulkan.HandleString(pool)) || skip
	}
	return skip
}

// ResetQueryPool records a vkCmdResetQueryPool call.
func (cb *CommandBuffer) ResetQueryPool(ctx context.Context, pool vulkan.VkQueryPool, first, count uint32) {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.recordCmd()
	p := cb.queryPool(pool)
	if p == nil {
		return
	}
	cb.bind(p)
	qs := make([]QueryObject, 0, count)
	for i := first; i < first+count && i < p.CreateInfo.QueryCount; i++ {
		q := QueryObject{pool, i}
		cb.resetQueries[q] = struct{}{}
		qs = append(qs, q)
	}
	cb.queryUpdates = append(cb.queryUpdates, func(ctx context.Context, cb *CommandBuffer, b *Batch) bool {
		for _, q := range qs {
			b.Queries[q] = QueryReset
		}
		return false
	})
}

// ValidateWriteTimestamp checks a vkCmdWriteTimestamp call.
func (cb *CommandBuffer) ValidateWriteTimestamp(ctx context.Context, pool vulkan.VkQueryPool, query uint32) bool {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	skip := cb.validateCmd(ctx, "vkCmdWriteTimestamp")
	if p := cb.queryPool(pool); p != nil && query >= p.CreateInfo.QueryCount {
		skip = cb.dev.rep.LogError(ctx, report.Objs(cb.Handle(), pool), "VUID-vkCmdWriteTimestamp-query-04904",
			"vkCmdWriteTimestamp(): query %d is not less than the %d queries of %v.",
			query, p.CreateInfo.QueryCount, vulkan.HandleString(pool)) || skip
	}
	return skip
}

// WriteTimestamp records a vkCmdWriteTimestamp call.
func (cb *CommandBuffer) WriteTimestamp(ctx context.Context, pool vulkan.VkQueryPool, query uint32) {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.recordCmd()
	p := cb.queryPool(pool)
	if p == nil {
		return
	}
	cb.bind(p)
	q := QueryObject{pool, query}
	cb.updatedQueries[q] = struct{}{}
	cb.queryUpdates = append(cb.queryUpdates, func(ctx context.Context, cb *CommandBuffer, b *Batch) bool {
		skip := false
		if s := cb.dev.queryState(b.Queries, q); s != QueryReset {
			skip = b.Reporter.LogError(ctx, report.Objs(cb.Handle(), pool), "VUID-vkCmdWriteTimestamp-None-00830",
				"vkCmdWriteTimestamp(): %v is %v. It must be reset before the timestamp is written.", q, s)
		}
		b.Queries[q] = QueryEnded
		return skip
	})
}
