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

// Package placement provides the engines that arrange catalog items onto
// shelves. NewEngine selects an engine from the configured strategy:
//
//   - annealing: one simulated annealing chain seeded from the configuration.
//   - multistart: several independent chains run concurrently, the lowest
//     cost result wins.
//   - greedy: the randomized whole-group placement used as the annealing
//     starting point, without any search.
package placement
