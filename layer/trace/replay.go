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

package trace

import (
	"context"

	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/google/vkstate/core/log"
	"github.com/google/vkstate/layer/dispatch"
	"github.com/google/vkstate/layer/vulkan"
)

// Driver is a dispatch.Driver returning the results recorded in a trace.
type Driver struct {
	results map[vulkan.Cmd]vulkan.VkResult
}

var _ dispatch.Driver = (*Driver)(nil)

// NewDriver returns a driver for the calls of t.
func NewDriver(t *Trace) *Driver {
	d := &Driver{results: make(map[vulkan.Cmd]vulkan.VkResult, len(t.Calls))}
	for _, c := range t.Calls {
		d.results[c.Cmd] = c.Result
	}
	return d
}

// Call returns the recorded result of cmd, or VK_SUCCESS for a call that is
// not part of the trace.
func (d *Driver) Call(ctx context.Context, cmd vulkan.Cmd) vulkan.VkResult {
	if r, ok := d.results[cmd]; ok {
		return r
	}
	return vulkan.VkResult_VK_SUCCESS
}

// Stats counts the outcome of a replay.
type Stats struct {
	Calls   int
	Skipped int
}

// Replay passes every call of t through l in order. Calls skipped by
// validation are counted and replay carries on. A call naming an object the
// trace never created stops the replay.
func Replay(ctx context.Context, l *dispatch.Layer, t *Trace) (Stats, error) {
	ctx = log.V{"trace": t.Name}.Bind(ctx)
	stats := Stats{}
	for _, c := range t.Calls {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		stats.Calls++
		_, err := l.Call(ctx, c.Cmd)
		switch status.Code(err) {
		case codes.OK:
		case codes.FailedPrecondition:
			stats.Skipped++
		default:
			return stats, errors.Wrapf(err, "%s line %d", t.Name, c.Line)
		}
	}
	log.D(ctx, "Replayed %d calls, %d skipped", stats.Calls, stats.Skipped)
	return stats, nil
}
