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

package solver

import (
	"bytes"
	"context"
	"errors"
	"math"
	"testing"

	"github.com/go-logr/logr"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/llm-d/llm-d-shelf-optimizer/internal/logging"
	"github.com/llm-d/llm-d-shelf-optimizer/pkg/config"
	"github.com/llm-d/llm-d-shelf-optimizer/pkg/core"
)

func testSpec(shelves, width, weight int) config.OptimizerSpec {
	spec := config.DefaultOptimizerSpec()
	spec.Shelves = shelves
	spec.Capacity = config.CapacitySpec{Width: width, Weight: weight}
	return spec
}

func TestAcceptance(t *testing.T) {
	tests := []struct {
		name        string
		delta       float64
		temperature float64
		want        float64
	}{
		{name: "Test case 1: Improvement", delta: -5, temperature: 10, want: 1},
		{name: "Test case 2: Equal cost", delta: 0, temperature: 10, want: 1},
		{name: "Test case 3: Worse at high temperature", delta: 10, temperature: 10, want: math.Exp(-1)},
		{name: "Test case 4: Worse at low temperature", delta: 10, temperature: 1e-3, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, acceptance(tt.delta, tt.temperature), 1e-12)
		})
	}
}

func TestExpectedRounds(t *testing.T) {
	assert.Equal(t, 270, ExpectedRounds(config.DefaultInitialTemperature, config.DefaultAlpha, config.DefaultMinTemperature))
}

func TestAnnealer_Run(t *testing.T) {
	spec := testSpec(5, 800, 10000)
	var rounds []RoundStats
	annealer := NewAnnealer(spec, NewRand(42)).WithObserver(func(s RoundStats) {
		rounds = append(rounds, s)
	})

	result, err := annealer.Run(context.Background(), library())
	require.NoError(t, err)

	assert.Equal(t, len(library()), result.Solution.ItemCount())
	assert.True(t, result.Solution.Feasible(spec.Capacity.Capacity()))
	assert.LessOrEqual(t, result.Cost, result.InitialCost)
	assert.InDelta(t, annealer.Objective().Evaluate(result.Solution), result.Cost, 1e-9)
	assert.Equal(t, result.Rounds, result.Accepted+result.Rejected+result.Infeasible)

	// the temperature crosses the floor on the last cooling step, which is not evaluated
	want := ExpectedRounds(spec.Annealing.InitialTemperature, spec.Annealing.Alpha, spec.Annealing.MinTemperature) - 1
	assert.Equal(t, want, result.Rounds)
	require.Len(t, rounds, result.Rounds)

	for i := 1; i < len(rounds); i++ {
		assert.LessOrEqual(t, rounds[i].BestCost, rounds[i-1].BestCost, "round %d", rounds[i].Round)
		assert.Less(t, rounds[i].Temperature, rounds[i-1].Temperature)
	}
	for _, r := range rounds {
		assert.LessOrEqual(t, r.BestCost, r.CurrentCost)
	}
	assert.Equal(t, rounds[len(rounds)-1].BestCost, result.Cost)
}

func TestAnnealer_MaxIterations(t *testing.T) {
	spec := testSpec(5, 800, 10000)
	spec.Annealing.MaxIterations = 10

	result, err := NewAnnealer(spec, NewRand(1)).Run(context.Background(), library())
	require.NoError(t, err)
	assert.Equal(t, 10, result.Rounds)
}

func TestAnnealer_SingleShelf(t *testing.T) {
	spec := testSpec(1, 800, 10000)
	items := library()[:3]

	result, err := NewAnnealer(spec, NewRand(2)).Run(context.Background(), items)
	require.NoError(t, err)

	require.Len(t, result.Solution.Shelves, 1)
	assert.Len(t, result.Solution.Shelves[0], 3)
	width := 0
	for _, it := range items {
		width += it.Width
	}
	assert.InDelta(t, float64(800-width), result.Breakdown.Space, 1e-9)
	assert.Zero(t, result.Breakdown.Variance)
}

func TestAnnealer_ItemsThatCannotShare(t *testing.T) {
	spec := testSpec(2, 10, 100)
	items := []core.Item{item("x", "X", 6, 1), item("y", "Y", 6, 1)}

	for seed := int64(0); seed < 20; seed++ {
		result, err := NewAnnealer(spec, NewRand(seed)).Run(context.Background(), items)
		require.NoError(t, err)
		require.Empty(t, result.Dropped)
		assert.Len(t, result.Solution.Shelves[0], 1, "seed %d", seed)
		assert.Len(t, result.Solution.Shelves[1], 1, "seed %d", seed)
		assert.NotEqual(t, result.Solution.Shelves[0][0].Group, result.Solution.Shelves[1][0].Group)
	}
}

func TestAnnealer_DeterministicForSeed(t *testing.T) {
	spec := testSpec(5, 800, 10000)

	first, err := NewAnnealer(spec, NewRand(123)).Run(context.Background(), library())
	require.NoError(t, err)
	second, err := NewAnnealer(spec, NewRand(123)).Run(context.Background(), library())
	require.NoError(t, err)

	if diff := cmp.Diff(first.Solution, second.Solution); diff != "" {
		t.Errorf("solutions differ for the same seed (-first +second):\n%s", diff)
	}
	assert.Equal(t, first.Cost, second.Cost)
	assert.Equal(t, first.Accepted, second.Accepted)
}

func TestAnnealer_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := NewAnnealer(testSpec(5, 800, 10000), NewRand(9)).Run(ctx, library())
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	require.NotNil(t, result)
	assert.Zero(t, result.Rounds)
	assert.Equal(t, result.InitialCost, result.Cost)
	assert.Equal(t, len(library()), result.Solution.ItemCount())
}

func TestAnnealer_LogVerbosity(t *testing.T) {
	tests := []struct {
		name      string
		level     zapcore.Level
		wantDone  bool
		wantRound bool
	}{
		{name: "Test case 1: Info", level: zapcore.InfoLevel},
		{name: "Test case 2: Debug", level: zapcore.Level(-logging.DEBUG), wantDone: true},
		{name: "Test case 3: Trace", level: zapcore.Level(-logging.TRACE), wantDone: true, wantRound: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			ctx := logr.NewContext(context.Background(), logging.NewWithWriter(&buf, tt.level, true))

			spec := testSpec(3, 800, 10000)
			spec.Annealing.MaxIterations = 5
			_, err := NewAnnealer(spec, NewRand(1)).Run(ctx, library()[:6])
			require.NoError(t, err)

			assert.Equal(t, tt.wantDone, bytes.Contains(buf.Bytes(), []byte(`"msg":"Annealing completed"`)))
			assert.Equal(t, tt.wantRound, bytes.Contains(buf.Bytes(), []byte(`"msg":"Annealing round"`)))
		})
	}
}
