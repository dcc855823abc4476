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

// List is the interface to an object that can be used as an interval list by
// the algorithms.
type List interface {
	// Length returns the number of intervals in the list.
	Length() int
	// GetSpan returns the span for the element at index in the list.
	GetSpan(index int) U64Span
}

// Predicate is used as the condition for a Search.
type Predicate func(test U64Span) bool

// Search finds the first interval in the list that the supplied predicate
// returns true for. If no interval matches the predicate, it returns the
// length of the list.
func Search(l List, t Predicate) int {
	return search(l, t)
}

// IndexOf returns the index of the span the value is a part of, or -1 if not
// found.
func IndexOf(l List, value uint64) int {
	return findSpanFor(l, value)
}

// Contains returns true if the value is found inside on of the intervals.
func Contains(l List, value uint64) bool {
	return findSpanFor(l, value) >= 0
}
