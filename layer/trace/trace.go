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

// Package trace reads recorded sequences of Vulkan calls.
//
// A trace is a YAML document listing calls in the order they were made:
//
//	profile: pixel.yaml
//	calls:
//	  - call: vkCreateFence
//	    args: {fence: 5, createInfo: {flags: 1}}
//	  - call: vkWaitForFences
//	    args: {fences: [5], waitAll: true, timeout: 1000}
//	    result: VK_TIMEOUT
//
// The args of a call are the fields of the matching command, keys are
// matched ignoring case. A missing result is VK_SUCCESS.
package trace

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gopkg.in/yaml.v3"

	"github.com/google/vkstate/layer/vulkan"
)

// Call is a single recorded call.
type Call struct {
	Cmd    vulkan.Cmd
	Result vulkan.VkResult
	// Line is the line of the call in the trace file.
	Line int
}

// Trace is a decoded trace.
type Trace struct {
	// Name identifies the trace, usually its path.
	Name string
	// Profile is the path of the device profile the trace was recorded on,
	// relative to the trace. It is empty for the default device.
	Profile string
	Calls   []Call
}

// ProfilePath returns the path of the trace's profile, resolved against dir.
func (t *Trace) ProfilePath(dir string) string {
	if t.Profile == "" || filepath.IsAbs(t.Profile) {
		return t.Profile
	}
	return filepath.Join(dir, t.Profile)
}

type file struct {
	Profile string    `yaml:"profile"`
	Calls   []rawCall `yaml:"calls"`
}

type rawCall struct {
	Call   string    `yaml:"call"`
	Args   yaml.Node `yaml:"args"`
	Result string    `yaml:"result"`
	line   int
}

func (c *rawCall) UnmarshalYAML(n *yaml.Node) error {
	type plain rawCall
	if err := n.Decode((*plain)(c)); err != nil {
		return err
	}
	c.line = n.Line
	return nil
}

// Decode reads a trace from r.
func Decode(name string, r io.Reader) (*Trace, error) {
	f := file{}
	d := yaml.NewDecoder(r)
	d.KnownFields(true)
	if err := d.Decode(&f); err != nil && err != io.EOF {
		return nil, errors.Wrapf(err, "decoding %s", name)
	}
	t := &Trace{Name: name, Profile: f.Profile, Calls: make([]Call, 0, len(f.Calls))}
	for i := range f.Calls {
		c, err := decodeCall(&f.Calls[i])
		if err != nil {
			return nil, errors.Wrapf(err, "%s call %d", name, i)
		}
		t.Calls = append(t.Calls, c)
	}
	return t, nil
}

// Parse decodes a trace held in memory.
func Parse(name string, data []byte) (*Trace, error) {
	return Decode(name, bytes.NewReader(data))
}

// Load reads the trace file at path.
func Load(path string) (*Trace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading trace")
	}
	return Parse(path, data)
}

func decodeCall(raw *rawCall) (Call, error) {
	newCmd, ok := vulkan.Cmds[raw.Call]
	if !ok {
		return Call{}, status.Errorf(codes.InvalidArgument, "line %d: unknown call %q", raw.line, raw.Call)
	}
	c := Call{Cmd: newCmd(), Result: vulkan.VkResult_VK_SUCCESS, Line: raw.line}
	if raw.Result != "" {
		if c.Result, ok = vulkan.ParseResult(raw.Result); !ok {
			return Call{}, status.Errorf(codes.InvalidArgument, "line %d: %s: unknown result %q", raw.line, raw.Call, raw.Result)
		}
	}
	if raw.Args.Kind == 0 {
		return c, nil
	}
	lowerKeys(&raw.Args)
	if err := raw.Args.Decode(c.Cmd); err != nil {
		return Call{}, status.Errorf(codes.InvalidArgument, "line %d: %s: %v", raw.line, raw.Call, err)
	}
	return c, nil
}

// lowerKeys lower-cases every mapping key under n, the form the decoder
// expects for fields without tags.
func lowerKeys(n *yaml.Node) {
	if n.Kind == yaml.MappingNode {
		for i := 0; i < len(n.Content); i += 2 {
			k := n.Content[i]
			k.Value = strings.ToLower(k.Value)
		}
	}
	for _, c := range n.Content {
		lowerKeys(c)
	}
}
