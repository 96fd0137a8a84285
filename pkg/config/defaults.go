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

package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"k8s.io/utils/ptr"
)

var (
	// ErrInvalidSpec is wrapped by every validation failure.
	ErrInvalidSpec = errors.New("invalid optimizer spec")

	validate = validator.New(validator.WithRequiredStructEnabled())
)

// DefaultAnnealingSpec returns the reference annealing schedule.
func DefaultAnnealingSpec() AnnealingSpec {
	return AnnealingSpec{
		InitialTemperature:      DefaultInitialTemperature,
		Alpha:                   DefaultAlpha,
		MinTemperature:          DefaultMinTemperature,
		MaxIterations:           DefaultMaxIterations,
		MaxPlacementAttempts:    DefaultMaxPlacementAttempts,
		MaxPerturbationAttempts: DefaultMaxPerturbationAttempts,
	}
}

// DefaultPenaltyWeights returns the reference 50/20/10 weights.
func DefaultPenaltyWeights() PenaltyWeights {
	return PenaltyWeights{
		Space:     DefaultSpaceWeight,
		Variance:  DefaultVarianceWeight,
		Adjacency: DefaultAdjacencyWeight,
	}
}

// DefaultOptimizerSpec returns the reference configuration: 7 shelves of 800 mm
// and 10 kg each.
func DefaultOptimizerSpec() OptimizerSpec {
	return OptimizerSpec{
		Shelves: DefaultShelves,
		Capacity: CapacitySpec{
			Width:  DefaultShelfWidth,
			Weight: DefaultShelfWeight,
		},
		Annealing: DefaultAnnealingSpec(),
		Weights:   DefaultPenaltyWeights(),
		Strategy:  DefaultStrategy,
		Restarts:  DefaultRestarts,
	}
}

// Validate checks for invalid configuration values.
func (s *OptimizerSpec) Validate() error {
	if err := validate.Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: %s must satisfy %s=%s, got %v",
				ErrInvalidSpec, fe.Namespace(), fe.Tag(), fe.Param(), fe.Value())
		}
		return fmt.Errorf("%w: %w", ErrInvalidSpec, err)
	}
	if s.Strategy == StrategyMultiStart && s.Restarts < 2 {
		return fmt.Errorf("%w: multistart strategy needs at least 2 restarts, got %d", ErrInvalidSpec, s.Restarts)
	}
	return nil
}

// EffectiveSeed returns the configured seed, or a time based one when unset.
func (s *OptimizerSpec) EffectiveSeed() int64 {
	return ptr.Deref(s.Seed, time.Now().UnixNano())
}
