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

// Package actuator publishes the outcome of an optimization run as Prometheus
// metrics.
//
// The MetricsEmitter owns a private registry, so several runs in one process
// (tests, multi-start chains) never collide with the global registry. After a
// run the registry can be written as a node-exporter textfile:
//
//	emitter := actuator.NewMetricsEmitter()
//	emitter.EmitOutcome(outcome)
//	err := emitter.WriteTextfile("/var/lib/node_exporter/shelf_optimizer.prom")
//
// # Metrics
//
//	shelf_optimizer_best_cost                      gauge
//	shelf_optimizer_initial_cost                   gauge
//	shelf_optimizer_penalty{component}             gauge, component is space, variance or adjacency
//	shelf_optimizer_shelf_width_mm{shelf}          gauge
//	shelf_optimizer_shelf_weight_grams{shelf}      gauge
//	shelf_optimizer_rounds_total                   counter
//	shelf_optimizer_moves_total{outcome}           counter, outcome is accepted, rejected or infeasible
//	shelf_optimizer_dropped_items_total            counter
//	shelf_optimizer_restarts                       gauge
//	shelf_optimizer_run_duration_seconds           histogram
//	shelf_optimizer_arrangement_valid              gauge, 1 when validation passed
package actuator
