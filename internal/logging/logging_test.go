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

package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		want    zapcore.Level
		wantErr bool
	}{
		{name: "Test case 1: Empty defaults to info", level: "", want: zapcore.InfoLevel},
		{name: "Test case 2: Debug", level: "debug", want: zapcore.Level(-1)},
		{name: "Test case 3: Trace with padding", level: " TRACE ", want: zapcore.Level(-2)},
		{name: "Test case 4: Error", level: "error", want: zapcore.ErrorLevel},
		{name: "Test case 5: Unknown", level: "loud", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLevel(tt.level)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewWithWriter_Verbosity(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, zapcore.Level(-DEBUG), true)

	logger.V(DEBUG).Info("debug line", "round", 3)
	logger.V(TRACE).Info("trace line")

	out := buf.String()
	assert.Contains(t, out, `"msg":"debug line"`)
	assert.Contains(t, out, `"round":3`)
	assert.NotContains(t, out, "trace line")
}
