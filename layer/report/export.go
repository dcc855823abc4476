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

package report

import (
	"io"

	"github.com/golang/protobuf/jsonpb"
	"github.com/golang/protobuf/ptypes"
	structpb "github.com/golang/protobuf/ptypes/struct"
	"github.com/pkg/errors"
)

// ToStruct converts the issue to a protobuf Struct.
func (i Issue) ToStruct() (*structpb.Struct, error) {
	ts, err := ptypes.TimestampProto(i.Time)
	if err != nil {
		return nil, errors.Wrapf(err, "issue %s", i.VUID)
	}
	objects := make([]*structpb.Value, len(i.Objects))
	for n, h := range i.Objects {
		objects[n] = &structpb.Value{Kind: &structpb.Value_StructValue{StructValue: &structpb.Struct{
			Fields: map[string]*structpb.Value{
				"type":   stringValue(h.HandleType()),
				"handle": {Kind: &structpb.Value_NumberValue{NumberValue: float64(h.Value())}},
			},
		}}}
	}
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"severity": stringValue(i.Severity.String()),
		"vuid":     stringValue(i.VUID),
		"message":  stringValue(i.Message),
		"call":     stringValue(i.Call),
		"time":     stringValue(ptypes.TimestampString(ts)),
		"objects":  {Kind: &structpb.Value_ListValue{ListValue: &structpb.ListValue{Values: objects}}},
	}}, nil
}

func stringValue(s string) *structpb.Value {
	return &structpb.Value{Kind: &structpb.Value_StringValue{StringValue: s}}
}

// ToStruct converts all the collected issues to a protobuf Struct holding
// the issue list and the summary counts.
func (c *Collector) ToStruct() (*structpb.Struct, error) {
	issues := c.Issues()
	list := make([]*structpb.Value, len(issues))
	for n, i := range issues {
		s, err := i.ToStruct()
		if err != nil {
			return nil, err
		}
		list[n] = &structpb.Value{Kind: &structpb.Value_StructValue{StructValue: s}}
	}
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"issues":     {Kind: &structpb.Value_ListValue{ListValue: &structpb.ListValue{Values: list}}},
		"errors":     {Kind: &structpb.Value_NumberValue{NumberValue: float64(c.Errors())}},
		"suppressed": {Kind: &structpb.Value_NumberValue{NumberValue: float64(c.Suppressed())}},
	}}, nil
}

// WriteJSON writes the collected issues to w as indented JSON.
func (c *Collector) WriteJSON(w io.Writer) error {
	s, err := c.ToStruct()
	if err != nil {
		return err
	}
	m := jsonpb.Marshaler{Indent: "  "}
	return errors.Wrap(m.Marshal(w, s), "writing report")
}
