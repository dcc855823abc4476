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

package state_test

import (
	"testing"

	"github.com/google/vkstate/core/assert"
	"github.com/google/vkstate/core/log"
	"github.com/google/vkstate/layer/state"
	"github.com/google/vkstate/layer/vulkan"
)

func TestStatusString(t *testing.T) {
	ctx := log.Testing(t)
	for _, test := range []struct {
		status   state.CBStatus
		expected string
	}{
		{state.StatusNone, "none"},
		{state.StatusViewport, "VK_DYNAMIC_STATE_VIEWPORT"},
		{state.StatusScissor | state.StatusViewport, "VK_DYNAMIC_STATE_VIEWPORT|VK_DYNAMIC_STATE_SCISSOR"},
		{state.StatusIndexBufferBound, "index buffer"},
	} {
		assert.For(ctx, "%x", uint64(test.status)).ThatString(test.status.String()).Equals(test.expected)
	}
}

func TestDynamicStatus(t *testing.T) {
	ctx := log.Testing(t)
	s := state.DynamicStatus([]vulkan.VkDynamicState{
		vulkan.VkDynamicState_VK_DYNAMIC_STATE_VIEWPORT,
		vulkan.VkDynamicState_VK_DYNAMIC_STATE_LINE_WIDTH,
		vulkan.VkDynamicState(0x7fffffff),
	})
	assert.For(ctx, "bits").That(s).Equals(state.StatusViewport | state.StatusLineWidth)
	assert.For(ctx, "unknown").That(state.StatusOf(vulkan.VkDynamicState(0x7fffffff))).Equals(state.StatusNone)
	assert.For(ctx, "index buffer").That(state.StatusAllStateSet & state.StatusIndexBufferBound).Equals(state.StatusNone)
	assert.For(ctx, "last bit").That(state.StatusAllStateSet & state.StatusColorWriteEnable).Equals(state.StatusColorWriteEnable)
	assert.For(ctx, "no extra bits").That(state.StatusAllStateSet &^ (state.StatusColorWriteEnable<<1 - 1)).Equals(state.StatusNone)
	for name, bits := range state.StateCmds {
		assert.For(ctx, name).That(bits & state.StatusAllStateSet).Equals(bits)
	}
}

func TestStateString(t *testing.T) {
	ctx := log.Testing(t)
	assert.For(ctx, "new").ThatString(state.New.String()).Equals("new")
	assert.For(ctx, "invalid").ThatString(state.InvalidComplete.String()).Equals("invalid (complete)")
	assert.For(ctx, "invalid states").ThatBoolean(state.InvalidIncomplete.Invalid()).IsTrue()
	assert.For(ctx, "recorded").ThatBoolean(state.Recorded.Invalid()).IsFalse()
}
