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

package fault_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/vkstate/core/assert"
	"github.com/google/vkstate/core/fault"
	"github.com/google/vkstate/core/log"
)

const (
	errMissing = fault.Const("missing")
	errLoud    = fault.Const("too loud")
)

func TestConst(t *testing.T) {
	ctx := log.Testing(t)
	wrapped := fmt.Errorf("reading settings: %w", errMissing)
	assert.For(ctx, "msg").ThatString(errMissing.Error()).Equals("missing")
	assert.For(ctx, "is").That(errors.Is(wrapped, errMissing)).Equals(true)
	assert.For(ctx, "is not").That(errors.Is(wrapped, errLoud)).Equals(false)
}

func TestList(t *testing.T) {
	ctx := log.Testing(t)
	l := fault.List{}
	assert.For(ctx, "empty first").ThatError(l.First()).Succeeded()
	assert.For(ctx, "empty err").ThatError(l.Err()).Succeeded()

	l.Collect(nil)
	assert.For(ctx, "nil ignored").ThatInteger(len(l)).Equals(0)

	l.Collect(errMissing)
	assert.For(ctx, "single").ThatError(l.Err()).Equals(errMissing)

	l.Collect(fmt.Errorf("limit: %w", errLoud))
	assert.For(ctx, "first").ThatError(l.First()).Equals(errMissing)
	assert.For(ctx, "msg").ThatError(l.Err()).HasMessage("missing; limit: too loud")
	assert.For(ctx, "is first").That(errors.Is(l.Err(), errMissing)).Equals(true)
	assert.For(ctx, "is second").That(errors.Is(l.Err(), errLoud)).Equals(true)
}
