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

// Package config provides the typed configuration of the shelf optimizer.
//
// Configuration Types:
//
//   - OptimizerSpec: top-level settings (shelf count, strategy, seed, restarts)
//   - CapacitySpec: per-shelf width and weight limits
//   - AnnealingSpec: temperature schedule and attempt budgets
//   - PenaltyWeights: weights of the space, weight-variance and adjacency terms
//
// Loading from files, environment variables and flags lives in internal/config;
// this package only defines the types, their defaults and their validation so it
// can be embedded by other programs.
//
// Example usage:
//
//	spec := config.DefaultOptimizerSpec()
//	spec.Shelves = 5
//	spec.Seed = ptr.To[int64](42)
//	if err := spec.Validate(); err != nil {
//	    return err
//	}
//
// Configuration Validation:
//
// Validate checks:
//   - Numeric ranges (e.g., 0 < alpha < 1, positive capacities)
//   - Cross-field constraints (e.g., minTemperature < initialTemperature)
//   - Enumerations (strategy)
package config
