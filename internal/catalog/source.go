/*
Copyright 2025 The llm-d Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package catalog

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// maxLineSize bounds a single JSON Lines record.
const maxLineSize = 1 << 20

// NewSource returns a file backed source for path chosen by extension:
// .json, .jsonl and .ndjson are read as JSON Lines, .yaml and .yml as YAML.
func NewSource(path string) (Source, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonl", ".ndjson":
		return &JSONLinesSource{Path: path}, nil
	case ".yaml", ".yml":
		return &YAMLSource{Path: path}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

// JSONLinesSource reads one JSON object per line. Blank lines are ignored.
// Non string values are kept in their JSON text form.
type JSONLinesSource struct {
	Path string
	// Reader, when set, is read instead of Path.
	Reader io.Reader
}

func (s *JSONLinesSource) Name() string {
	if s.Path == "" {
		return "jsonl:reader"
	}
	return s.Path
}

// Records implements Source.
func (s *JSONLinesSource) Records(ctx context.Context) ([]Record, error) {
	r, closeFn, err := open(s.Path, s.Reader)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	var records []Record
	line := 0
	for scanner.Scan() {
		line++
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		raw := bytes.TrimSpace(scanner.Bytes())
		if len(raw) == 0 {
			continue
		}
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(raw, &fields); err != nil {
			return nil, fmt.Errorf("%s:%d: %w", s.Name(), line, err)
		}
		rec := make(Record, len(fields))
		for k, v := range fields {
			rec[k] = jsonString(v)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.Name(), err)
	}
	return records, nil
}

// YAMLSource reads a YAML sequence of mappings.
type YAMLSource struct {
	Path string
	// Reader, when set, is read instead of Path.
	Reader io.Reader
}

func (s *YAMLSource) Name() string {
	if s.Path == "" {
		return "yaml:reader"
	}
	return s.Path
}

// Records implements Source.
func (s *YAMLSource) Records(ctx context.Context) ([]Record, error) {
	r, closeFn, err := open(s.Path, s.Reader)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	var docs []map[string]yaml.Node
	if err := yaml.NewDecoder(r).Decode(&docs); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("parsing %s: %w", s.Name(), err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	records := make([]Record, 0, len(docs))
	for _, doc := range docs {
		rec := make(Record, len(doc))
		for k, node := range doc {
			rec[k] = yamlString(&node)
		}
		records = append(records, rec)
	}
	return records, nil
}

// StaticSource serves records held in memory.
type StaticSource struct {
	Items []Record
}

func (s *StaticSource) Name() string { return "static" }

// Records implements Source. The returned records are copies.
func (s *StaticSource) Records(ctx context.Context) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]Record, len(s.Items))
	for i, rec := range s.Items {
		cp := make(Record, len(rec))
		for k, v := range rec {
			cp[k] = v
		}
		out[i] = cp
	}
	return out, nil
}

func open(path string, r io.Reader) (io.Reader, func(), error) {
	if r != nil {
		return r, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening catalog: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

// yamlString returns the value of a scalar node, and the YAML text of a
// sequence or mapping.
func yamlString(node *yaml.Node) string {
	if node.Kind == yaml.ScalarNode {
		return node.Value
	}
	out, err := yaml.Marshal(node)
	if err != nil {
		return ""
	}
	return strings.TrimRight(string(out), "\n")
}

// jsonString renders a raw JSON value as a plain string.
func jsonString(v json.RawMessage) string {
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return s
	}
	text := strings.TrimSpace(string(v))
	if text == "null" {
		return ""
	}
	if f, err := strconv.ParseFloat(text, 64); err == nil {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return text
}
