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

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/golang/protobuf/jsonpb"
	structpb "github.com/golang/protobuf/ptypes/struct"
	"github.com/muesli/termenv"
	"github.com/pkg/errors"

	"github.com/google/vkstate/layer/report"
)

type printer struct {
	w   io.Writer
	out *termenv.Output
}

func newPrinter(w io.Writer, color bool) *printer {
	opts := []termenv.OutputOption{}
	if !color {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}
	return &printer{w: w, out: termenv.NewOutput(w, opts...)}
}

func (p *printer) severity(s report.Severity) string {
	style := p.out.String(s.String())
	switch s {
	case report.Error:
		style = style.Foreground(p.out.Color("1")).Bold()
	case report.Warning:
		style = style.Foreground(p.out.Color("3"))
	default:
		style = style.Foreground(p.out.Color("6"))
	}
	return style.String()
}

func (p *printer) print(r *checked) {
	issues := r.rep.Issues()
	fmt.Fprintf(p.w, "%s: %d calls, %d skipped, %d issues\n",
		p.out.String(r.path).Bold(), r.stats.Calls, r.stats.Skipped, len(issues))
	for _, i := range issues {
		fmt.Fprintf(p.w, "  %s %s [%s] %s\n", p.severity(i.Severity), i.Call, p.out.String(i.VUID).Faint(), i.Message)
	}
	if n := r.rep.Suppressed(); n > 0 {
		fmt.Fprintf(p.w, "  %d further issues suppressed\n", n)
	}
}

// writeReport writes the issues of every trace as a JSON object keyed by the
// trace path.
func writeReport(path string, results []*checked) error {
	all := &structpb.Struct{Fields: map[string]*structpb.Value{}}
	for _, r := range results {
		s, err := r.rep.ToStruct()
		if err != nil {
			return err
		}
		all.Fields[r.path] = &structpb.Value{Kind: &structpb.Value_StructValue{StructValue: s}}
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating report")
	}
	m := jsonpb.Marshaler{Indent: "  "}
	if err := m.Marshal(f, all); err != nil {
		f.Close()
		return errors.Wrapf(err, "writing %s", path)
	}
	return f.Close()
}
