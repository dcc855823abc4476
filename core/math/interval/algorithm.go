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

package interval

import "sort"

// findSpanFor returns the index of the span holding value, or -1.
func findSpanFor(l List, value uint64) int {
	i := sort.Search(l.Length(), func(at int) bool {
		return value < l.GetSpan(at).Start
	}) - 1
	if i >= 0 && value < l.GetSpan(i).End {
		return i
	}
	return -1
}

func search(l List, t Predicate) int {
	return sort.Search(l.Length(), func(at int) bool { return t(l.GetSpan(at)) })
}
