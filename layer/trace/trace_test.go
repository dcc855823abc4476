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

package trace_test

import (
	"context"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/google/vkstate/core/assert"
	"github.com/google/vkstate/core/log"
	"github.com/google/vkstate/layer/caps"
	"github.com/google/vkstate/layer/dispatch"
	"github.com/google/vkstate/layer/report"
	"github.com/google/vkstate/layer/state"
	"github.com/google/vkstate/layer/trace"
	"github.com/google/vkstate/layer/vulkan"
)

func replay(ctx context.Context, t *trace.Trace, s report.Settings) (*report.Collector, trace.Stats, error) {
	rep := report.NewCollector(s)
	dev := state.NewDevice(vulkan.VkDevice(1), caps.NewStatic(caps.Default()), rep)
	stats, err := trace.Replay(ctx, dispatch.New(dev, trace.NewDriver(t)), t)
	return rep, stats, err
}

func TestDecode(t *testing.T) {
	ctx := log.Testing(t)
	tr, err := trace.Parse("inline.yaml", []byte(`
profile: device.toml
calls:
  - call: vkCreateFence
    args: {fence: 5, createInfo: {flags: 1}}
  - call: vkWaitForFences
    args: {fences: [5], WAITALL: true, timeout: 1000}
    result: VK_TIMEOUT
  - call: vkDeviceWaitIdle
`))
	if !assert.For(ctx, "err").ThatError(err).Succeeded() {
		return
	}
	assert.For(ctx, "profile").ThatString(tr.ProfilePath("/traces")).Equals("/traces/device.toml")
	assert.For(ctx, "calls").ThatSlice(tr.Calls).IsLength(3)

	create := tr.Calls[0].Cmd.(*vulkan.VkCreateFence)
	assert.For(ctx, "fence").That(create.Fence).Equals(vulkan.VkFence(5))
	assert.For(ctx, "flags").That(create.CreateInfo.Flags).Equals(vulkan.VkFenceCreateFlags(1))
	assert.For(ctx, "line").ThatInteger(tr.Calls[0].Line).Equals(4)

	wait := tr.Calls[1].Cmd.(*vulkan.VkWaitForFences)
	assert.For(ctx, "fences").ThatSlice(wait.Fences).Equals([]vulkan.VkFence{5})
	assert.For(ctx, "waitAll").ThatBoolean(wait.WaitAll).IsTrue()
	assert.For(ctx, "result").That(tr.Calls[1].Result).Equals(vulkan.VkResult_VK_TIMEOUT)
	assert.For(ctx, "default result").That(tr.Calls[2].Result).Equals(vulkan.VkResult_VK_SUCCESS)
}

func TestDecodeErrors(t *testing.T) {
	ctx := log.Testing(t)
	for _, test := range []struct {
		name string
		data string
		code codes.Code
	}{
		{"unknown call", "calls: [{call: vkCreateDevice}]", codes.InvalidArgument},
		{"unknown result", "calls: [{call: vkDeviceWaitIdle, result: VK_MAYBE}]", codes.InvalidArgument},
		{"bad args", "calls: [{call: vkCreateFence, args: {fence: [1, 2]}}]", codes.InvalidArgument},
		{"bad document", "calls: {call: vkDeviceWaitIdle}", codes.Unknown},
	} {
		_, err := trace.Parse(test.name, []byte(test.data))
		assert.For(ctx, test.name).ThatError(err).Failed()
		assert.For(ctx, test.name).That(status.Code(err)).Equals(test.code)
	}
}

func TestReplayFrame(t *testing.T) {
	ctx := log.Testing(t)
	tr, err := trace.Load("testdata/frame.yaml")
	if !assert.For(ctx, "load").ThatError(err).Succeeded() {
		return
	}
	rep, stats, err := replay(ctx, tr, report.DefaultSettings)
	assert.For(ctx, "replay").ThatError(err).Succeeded()
	assert.For(ctx, "calls").ThatInteger(stats.Calls).Equals(14)
	assert.For(ctx, "skipped").ThatInteger(stats.Skipped).Equals(0)
	assert.For(ctx, "issues").ThatSlice(rep.Issues()).IsEmpty()
}

func TestReplayReportsIssues(t *testing.T) {
	ctx := log.Testing(t)
	tr, err := trace.Load("testdata/unpresented.yaml")
	if !assert.For(ctx, "load").ThatError(err).Succeeded() {
		return
	}
	rep, stats, err := replay(ctx, tr, report.DefaultSettings)
	assert.For(ctx, "replay").ThatError(err).Succeeded()
	assert.For(ctx, "skipped").ThatInteger(stats.Skipped).Equals(0)
	assert.For(ctx, "layout").ThatBoolean(rep.Has("VUID-VkPresentInfoKHR-pImageIndices-01296")).IsTrue()

	_, stats, err = replay(ctx, tr, report.Settings{BreakOnError: true})
	assert.For(ctx, "replay with break").ThatError(err).Succeeded()
	assert.For(ctx, "skipped with break").ThatInteger(stats.Skipped).Equals(1)
}

func TestReplayUnknownHandle(t *testing.T) {
	ctx := log.Testing(t)
	tr, err := trace.Parse("unknown.yaml", []byte(`
calls:
  - call: vkGetDeviceQueue
    args: {queue: 10}
  - call: vkQueueWaitIdle
    args: {queue: 11}
  - call: vkDeviceWaitIdle
`))
	if !assert.For(ctx, "parse").ThatError(err).Succeeded() {
		return
	}
	_, stats, err := replay(ctx, tr, report.DefaultSettings)
	assert.For(ctx, "code").That(status.Code(err)).Equals(codes.NotFound)
	assert.For(ctx, "message").ThatString(err.Error()).Contains("unknown.yaml line 5")
	assert.For(ctx, "stopped").ThatInteger(stats.Calls).Equals(2)
}

func TestReplayCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(log.Testing(t))
	cancel()
	tr := &trace.Trace{Name: "cancelled", Calls: []trace.Call{{Cmd: &vulkan.VkDeviceWaitIdle{}}}}
	_, stats, err := replay(ctx, tr, report.DefaultSettings)
	assert.For(ctx, "err").ThatError(err).Equals(context.Canceled)
	assert.For(ctx, "calls").ThatInteger(stats.Calls).Equals(0)
}
