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

// Package config loads the layer settings and device profiles.
package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/google/vkstate/core/fault"
)

// ErrUnknownFormat is returned for files that are neither YAML nor TOML.
const ErrUnknownFormat = fault.Const("Unknown configuration file format")

// Format is a configuration file encoding.
type Format int

const (
	// YAML is selected by the .yaml and .yml extensions.
	YAML Format = iota
	// TOML is selected by the .toml extension.
	TOML
)

// FormatOf returns the encoding of the file at path, chosen by extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	}
	return 0, errors.Wrapf(ErrUnknownFormat, "%s", path)
}

// Unmarshal decodes data into v using the encoding implied by the name.
// Unknown fields are an error in both encodings.
func Unmarshal(name string, data []byte, v interface{}) error {
	f, err := FormatOf(name)
	if err != nil {
		return err
	}
	switch f {
	case TOML:
		d := toml.NewDecoder(bytes.NewReader(data))
		d.DisallowUnknownFields()
		err = d.Decode(v)
	default:
		d := yaml.NewDecoder(bytes.NewReader(data))
		d.KnownFields(true)
		err = d.Decode(v)
		if err == io.EOF {
			// An empty document leaves v unchanged.
			err = nil
		}
	}
	return errors.Wrapf(err, "decoding %s", name)
}

// Marshal encodes v using the encoding implied by the name.
func Marshal(name string, v interface{}) ([]byte, error) {
	f, err := FormatOf(name)
	if err != nil {
		return nil, err
	}
	var out []byte
	switch f {
	case TOML:
		out, err = toml.Marshal(v)
	default:
		out, err = yaml.Marshal(v)
	}
	return out, errors.Wrapf(err, "encoding %s", name)
}

// ReadFile decodes the file at path into v.
func ReadFile(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "reading configuration")
	}
	return Unmarshal(path, data, v)
}
