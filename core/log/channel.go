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

package log

// Channel returns a Handler that forwards messages to to from a single
// goroutine, so to need not be safe for concurrent use. Closing the returned
// handler flushes the pending messages before closing to.
func Channel(to Handler, size int) Handler {
	c := make(chan *Message, size)
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer to.Close()
		for m := range c {
			if m == nil {
				return
			}
			to.Handle(m)
		}
	}()
	return NewHandler(func(m *Message) {
		if m == nil {
			return
		}
		select {
		case c <- m:
		case <-done: // Dropped.
		}
	}, func() {
		select {
		case <-done:
		case c <- nil:
			<-done
		}
	})
}
