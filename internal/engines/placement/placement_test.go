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

package placement

import (
	"context"
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llm-d/llm-d-shelf-optimizer/pkg/config"
	"github.com/llm-d/llm-d-shelf-optimizer/pkg/core"
	"github.com/llm-d/llm-d-shelf-optimizer/pkg/solver"
)

func testItems() []core.Item {
	var items []core.Item
	for a := 0; a < 8; a++ {
		for b := 0; b <= a%3; b++ {
			items = append(items, core.NewItem(fmt.Sprintf("Book %d-%d", a, b), fmt.Sprintf("Author %d", a), 25+3*b, 350+50*a))
		}
	}
	return items
}

func testSpec(strategy string) config.OptimizerSpec {
	spec := config.DefaultOptimizerSpec()
	spec.Shelves = 4
	spec.Strategy = strategy
	spec.Restarts = 3
	spec.Parallelism = 2
	return spec
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    EngineStrategy
		wantErr bool
	}{
		{name: "Test case 1: Annealing", input: "annealing", want: AnnealingStrategy},
		{name: "Test case 2: Empty defaults to annealing", input: "", want: AnnealingStrategy},
		{name: "Test case 3: Multistart", input: "multistart", want: MultiStartStrategy},
		{name: "Test case 4: Greedy", input: "greedy", want: GreedyStrategy},
		{name: "Test case 5: Unknown", input: "genetic", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, gotErr := ParseStrategy(tt.input)
			if gotErr != nil {
				if !tt.wantErr {
					t.Errorf("ParseStrategy() failed: %v", gotErr)
				}
				return
			}
			if tt.wantErr {
				t.Fatal("ParseStrategy() succeeded unexpectedly")
			}
			if got != tt.want {
				t.Errorf("ParseStrategy() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewEngine(t *testing.T) {
	tests := []struct {
		name     string
		strategy string
		want     reflect.Type
		wantErr  bool
	}{
		{name: "Test case 1: Annealing", strategy: config.StrategyAnnealing, want: reflect.TypeOf(&AnnealingEngine{})},
		{name: "Test case 2: Multistart", strategy: config.StrategyMultiStart, want: reflect.TypeOf(&MultiStartEngine{})},
		{name: "Test case 3: Greedy", strategy: config.StrategyGreedy, want: reflect.TypeOf(&GreedyEngine{})},
		{name: "Test case 4: Unsupported", strategy: "tabu", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, gotErr := NewEngine(testSpec(tt.strategy), 1)
			if gotErr != nil {
				if !tt.wantErr {
					t.Errorf("NewEngine() failed: %v", gotErr)
				}
				return
			}
			if tt.wantErr {
				t.Fatal("NewEngine() succeeded unexpectedly")
			}
			if reflect.TypeOf(got) != tt.want {
				t.Errorf("NewEngine() = %T, want %v", got, tt.want)
			}
		})
	}
}

func TestNewEngineConfigs(t *testing.T) {
	_, err := NewAnnealingEngine(nil)
	assert.Error(t, err)
	_, err = NewGreedyEngine(nil)
	assert.Error(t, err)
	_, err = NewMultiStartEngine(nil)
	assert.Error(t, err)
	_, err = NewMultiStartEngine(&MultiStartEngineConfig{Restarts: 0})
	assert.Error(t, err)

	cfg := &MultiStartEngineConfig{Restarts: 2}
	engine, err := NewMultiStartEngine(cfg)
	require.NoError(t, err)
	assert.Positive(t, engine.parallelism)
	// the default is resolved on the engine, not written back
	assert.Zero(t, cfg.Parallelism)

	engine, err = NewMultiStartEngine(&MultiStartEngineConfig{Restarts: 2, Parallelism: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, engine.parallelism)
}

func TestAnnealingEngine_Place(t *testing.T) {
	rounds := 0
	engine, err := NewAnnealingEngine(&AnnealingEngineConfig{
		EngineConfig: EngineConfig{Spec: testSpec(config.StrategyAnnealing), Seed: 5},
		Observer:     func(solver.RoundStats) { rounds++ },
	})
	require.NoError(t, err)

	outcome, err := engine.Place(context.Background(), testItems())
	require.NoError(t, err)
	assert.Equal(t, AnnealingStrategy, outcome.Strategy)
	assert.Equal(t, int64(5), outcome.Best.Seed)
	assert.Equal(t, outcome.Best.Rounds, rounds)
	require.Len(t, outcome.Runs, 1)
	assert.Equal(t, outcome.Best.Cost, outcome.Runs[0].Cost)
}

func TestGreedyEngine_Place(t *testing.T) {
	engine, err := NewEngine(testSpec(config.StrategyGreedy), 5)
	require.NoError(t, err)

	outcome, err := engine.Place(context.Background(), testItems())
	require.NoError(t, err)
	assert.Zero(t, outcome.Best.Rounds)
	assert.Equal(t, outcome.Best.InitialCost, outcome.Best.Cost)
	assert.Equal(t, len(testItems()), outcome.Best.Solution.ItemCount())

	annealing, err := NewEngine(testSpec(config.StrategyAnnealing), 5)
	require.NoError(t, err)
	annealed, err := annealing.Place(context.Background(), testItems())
	require.NoError(t, err)
	// same seed, same starting point
	assert.Equal(t, outcome.Best.Cost, annealed.Best.InitialCost)
	assert.LessOrEqual(t, annealed.Best.Cost, outcome.Best.Cost)
}

func TestMultiStartEngine_Place(t *testing.T) {
	engine, err := NewEngine(testSpec(config.StrategyMultiStart), 100)
	require.NoError(t, err)

	outcome, err := engine.Place(context.Background(), testItems())
	require.NoError(t, err)
	require.Len(t, outcome.Runs, 3)
	for i, run := range outcome.Runs {
		assert.Equal(t, i, run.Index)
		assert.Equal(t, int64(100+i), run.Seed)
		assert.LessOrEqual(t, outcome.Best.Cost, run.Cost)
	}
	assert.Equal(t, outcome.Runs[outcome.BestRun].Cost, outcome.Best.Cost)
	assert.Equal(t, outcome.Runs[outcome.BestRun].Seed, outcome.Best.Seed)

	again, err := engine.Place(context.Background(), testItems())
	require.NoError(t, err)
	assert.Equal(t, outcome.BestRun, again.BestRun)
	assert.Equal(t, outcome.Best.Cost, again.Best.Cost)
}

func TestMultiStartEngine_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	engine, err := NewEngine(testSpec(config.StrategyMultiStart), 1)
	require.NoError(t, err)
	outcome, err := engine.Place(ctx, testItems())
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, outcome)
	require.NotNil(t, outcome.Best)
}
