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
	"github.com/google/vkstate/layer/vulkan"
)

// QueryObject identifies a single query of a pool.
type QueryObject struct {
	Pool  vulkan.VkQueryPool
	Query uint32
}

func (q QueryObject) String() string {
	return fmt.Sprintf("query %d of %v", q.Query, vulkan.HandleString(q.Pool))
}

// QueryState is the state of a query as seen by the device.
type QueryState int

const (
	// QueryUnknown is the state of a query that was never reset.
	QueryUnknown QueryState = iota
	QueryReset
	QueryRunning
	QueryEnded
	QueryAvailable
)

func (s QueryState) String() string {
	switch s {
	case QueryUnknown:
		return "unknown"
	case QueryReset:
		return "reset"
	case QueryRunning:
		return "running"
	case QueryEnded:
		return "ended"
	case QueryAvailable:
		return "available"
	}
	return fmt.Sprintf("QueryState(%d)", int(s))
}

// QueryState returns the state of the query after the work retired so far.
func (d *Device) QueryState(q QueryObject) QueryState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.queries[q]
}

func (d *Device) setQueryStates(states map[QueryObject]QueryState) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for q, s := range states {
		d.queries[q] = s
	}
}

// ResetQueryPool records a host reset of a range of queries.
func (d *Device) ResetQueryPool(ctx context.Context, pool vulkan.VkQueryPool, first, count uint32) {
	if registry.Get[*QueryPool](d.reg, pool) == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := first; i < first+count; i++ {
		d.queries[QueryObject{pool, i}] = QueryReset
	}
}

// queryState returns the state of q in the running states of a submission,
// falling back to the device.
func (d *Device) queryState(local map[QueryObject]QueryState, q QueryObject) QueryState {
	if s, ok := local[q]; ok {
		return s
	}
	return d.QueryState(q)
}
