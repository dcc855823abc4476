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

// Package report collects the validation issues raised by the layer.
package report

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/vkstate/core/log"
	"github.com/google/vkstate/layer/vulkan"
)

// Severity is the kind of a reported issue.
type Severity int

const (
	// Error is a violation of a valid usage rule.
	Error Severity = iota
	// Warning is legal but suspect usage.
	Warning
	// Performance is legal usage that is likely to be slow.
	Performance
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Performance:
		return "performance"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// logSeverity is the level issues are logged at. Issues are logged one level
// below their severity, the collected issues are the result.
func (s Severity) logSeverity() log.Severity {
	switch s {
	case Error:
		return log.Warning
	case Warning:
		return log.Info
	default:
		return log.Debug
	}
}

// Objects lists the handles an issue refers to.
type Objects []vulkan.Handle

// Objs is shorthand for building an Objects list.
func Objs(h ...vulkan.Handle) Objects { return Objects(h) }

func (o Objects) String() string {
	parts := make([]string, len(o))
	for i, h := range o {
		parts[i] = vulkan.HandleString(h)
	}
	return strings.Join(parts, ", ")
}

// Reporter receives validation issues. Each method returns true if the call
// that raised the issue should be skipped.
type Reporter interface {
	LogError(ctx context.Context, objects Objects, vuid string, format string, args ...interface{}) bool
	LogWarning(ctx context.Context, objects Objects, vuid string, format string, args ...interface{}) bool
	LogPerformanceWarning(ctx context.Context, objects Objects, vuid string, format string, args ...interface{}) bool
}

// Issue is a single reported problem.
type Issue struct {
	Severity Severity
	VUID     string
	Objects  Objects
	Message  string
	Time     time.Time
	// Call is the Vulkan entry point being processed when the issue was raised.
	Call string
}

// Settings controls which issues are kept and which abort the call.
type Settings struct {
	// BreakOn lists the VUIDs that cause the reporting call to be skipped.
	BreakOn []string
	// BreakOnError skips every call that raises an error.
	BreakOnError bool
	// Mute lists the VUIDs that are dropped.
	Mute []string
	// DuplicateLimit caps the number of issues kept per VUID. Zero is
	// unlimited.
	DuplicateLimit int
	// ReportWarnings keeps warnings and performance warnings.
	ReportWarnings bool
}

// DefaultSettings keeps everything and never aborts.
var DefaultSettings = Settings{ReportWarnings: true}

type callKeyTy string

const callKey callKeyTy = "report.callKey"

// PutCall returns a context that attributes issues to the named entry point.
func PutCall(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, callKey, name)
}

// GetCall returns the entry point name assigned to ctx.
func GetCall(ctx context.Context) string {
	out, _ := ctx.Value(callKey).(string)
	return out
}

// Collector is a Reporter that keeps the issues it is given.
type Collector struct {
	mu         sync.Mutex
	settings   Settings
	breakOn    map[string]bool
	mute       map[string]bool
	counts     map[string]int
	suppressed int
	issues     []Issue
}

var _ Reporter = (*Collector)(nil)

// NewCollector returns a Collector using the given settings.
func NewCollector(s Settings) *Collector {
	c := &Collector{counts: map[string]int{}}
	c.Configure(s)
	return c
}

// Configure replaces the settings of the collector. Already collected issues
// are kept.
func (c *Collector) Configure(s Settings) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.settings = s
	c.breakOn = toSet(s.BreakOn)
	c.mute = toSet(s.Mute)
}

func toSet(l []string) map[string]bool {
	out := make(map[string]bool, len(l))
	for _, s := range l {
		out[s] = true
	}
	return out
}

// LogError reports a valid usage violation.
func (c *Collector) LogError(ctx context.Context, objects Objects, vuid string, format string, args ...interface{}) bool {
	return c.add(ctx, Error, objects, vuid, fmt.Sprintf(format, args...))
}

// LogWarning reports suspect usage.
func (c *Collector) LogWarning(ctx context.Context, objects Objects, vuid string, format string, args ...interface{}) bool {
	return c.add(ctx, Warning, objects, vuid, fmt.Sprintf(format, args...))
}

// LogPerformanceWarning reports usage that is likely to be slow.
func (c *Collector) LogPerformanceWarning(ctx context.Context, objects Objects, vuid string, format string, args ...interface{}) bool {
	return c.add(ctx, Performance, objects, vuid, fmt.Sprintf(format, args...))
}

func (c *Collector) add(ctx context.Context, s Severity, objects Objects, vuid, msg string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.mute[vuid] || (s != Error && !c.settings.ReportWarnings) {
		return false
	}
	abort := c.breakOn[vuid] || (s == Error && c.settings.BreakOnError)

	c.counts[vuid]++
	if limit := c.settings.DuplicateLimit; limit > 0 && c.counts[vuid] > limit {
		c.suppressed++
		return abort
	}

	now := time.Now()
	if clock := log.GetClock(ctx); clock != nil {
		now = clock.Time()
	}
	issue := Issue{
		Severity: s,
		VUID:     vuid,
		Objects:  append(Objects{}, objects...),
		Message:  msg,
		Time:     now,
		Call:     GetCall(ctx),
	}
	c.issues = append(c.issues, issue)

	log.Bind(ctx, log.V{"vuid": vuid, "objects": objects}).
		Logf(s.logSeverity(), false, "%s", msg)
	return abort
}

// Issues returns a copy of the collected issues, in report order.
func (c *Collector) Issues() []Issue {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Issue{}, c.issues...)
}

// Count returns the number of times vuid was reported, including suppressed
// duplicates.
func (c *Collector) Count(vuid string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[vuid]
}

// Has returns true if vuid was reported at least once.
func (c *Collector) Has(vuid string) bool { return c.Count(vuid) > 0 }

// Suppressed returns the number of issues dropped by the duplicate limit.
func (c *Collector) Suppressed() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.suppressed
}

// Errors returns the number of collected errors.
func (c *Collector) Errors() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, i := range c.issues {
		if i.Severity == Error {
			n++
		}
	}
	return n
}

// Reset drops all the collected issues and counts.
func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.issues = nil
	c.counts = map[string]int{}
	c.suppressed = 0
}

type discard struct{}

func (discard) LogError(context.Context, Objects, string, string, ...interface{}) bool   { return false }
func (discard) LogWarning(context.Context, Objects, string, string, ...interface{}) bool { return false }
func (discard) LogPerformanceWarning(context.Context, Objects, string, string, ...interface{}) bool {
	return false
}

// Discard is a Reporter that drops every report.
var Discard Reporter = discard{}
