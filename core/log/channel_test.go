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

package log_test

import (
	"sync"
	"testing"

	"github.com/google/vkstate/core/assert"
	"github.com/google/vkstate/core/log"
)

func TestChannelFlushesOnClose(t *testing.T) {
	ctx := log.Testing(t)
	mu := sync.Mutex{}
	got := []string{}
	closed := false
	to := log.NewHandler(func(m *log.Message) {
		mu.Lock()
		got = append(got, m.Text)
		mu.Unlock()
	}, func() { closed = true })

	h := log.Channel(to, 2)
	wg := sync.WaitGroup{}
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h.Handle(&log.Message{Text: "queued"})
		}()
	}
	wg.Wait()
	h.Close()
	h.Handle(&log.Message{Text: "late"})

	assert.For(ctx, "messages").ThatInteger(len(got)).Equals(8)
	assert.For(ctx, "closed").ThatBoolean(closed).IsTrue()
}
