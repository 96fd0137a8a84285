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

package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// ShelfArrangementSpec records the inputs of the optimization run.
type ShelfArrangementSpec struct {
	// Catalog is the catalog source the items were loaded from.
	// +optional
	Catalog string `json:"catalog,omitempty"`

	// Shelves is the number of shelves.
	// +kubebuilder:validation:Minimum=1
	Shelves int `json:"shelves"`

	// Capacity holds the per-shelf limits.
	Capacity ShelfCapacity `json:"capacity"`

	// Strategy is the placement strategy used.
	// +kubebuilder:validation:Enum=annealing;multistart;greedy
	Strategy string `json:"strategy"`

	// Seed is the base seed of the random source.
	Seed int64 `json:"seed"`

	// Weights are the penalty weights, as decimal strings.
	Weights PenaltyWeights `json:"weights"`
}

// ShelfCapacity holds the per-shelf limits.
type ShelfCapacity struct {
	// WidthMM is the usable shelf width in millimeters.
	WidthMM int `json:"widthMM"`

	// WeightGrams is the maximum shelf load in grams.
	WeightGrams int `json:"weightGrams"`
}

// PenaltyWeights holds the weights of the objective terms.
// Values are decimal strings so that documents stay exact across encoders.
type PenaltyWeights struct {
	Space     string `json:"space"`
	Variance  string `json:"variance"`
	Adjacency string `json:"adjacency"`
}

// Book is an item placed on, or dropped from, a shelf.
type Book struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	WidthMM     int    `json:"widthMM"`
	WeightGrams int    `json:"weightGrams"`

	// Extra carries catalog fields the optimizer does not interpret.
	// +optional
	Extra map[string]string `json:"extra,omitempty"`
}

// Shelf is one shelf of the arrangement, with its books in order.
type Shelf struct {
	// Index is 1-based.
	Index       int    `json:"index"`
	WidthMM     int    `json:"widthMM"`
	WeightGrams int    `json:"weightGrams"`
	Books       []Book `json:"books"`
}

// PenaltyBreakdown holds the objective terms of the arrangement, as decimal strings.
type PenaltyBreakdown struct {
	Space     string `json:"space"`
	Variance  string `json:"variance"`
	Adjacency string `json:"adjacency"`
	Total     string `json:"total"`
}

// SearchStatus summarizes the search that produced the arrangement.
type SearchStatus struct {
	// InitialCost is the penalty of the starting arrangement.
	InitialCost string `json:"initialCost"`

	Rounds     int `json:"rounds"`
	Accepted   int `json:"accepted"`
	Rejected   int `json:"rejected"`
	Infeasible int `json:"infeasible"`

	// Restarts is the number of chains run; BestRun the index of the winning one.
	Restarts int `json:"restarts"`
	BestRun  int `json:"bestRun"`

	// Duration is the wall time of the search.
	Duration metav1.Duration `json:"duration"`
}

// ShelfArrangementStatus holds the arrangement and the outcome of its checks.
type ShelfArrangementStatus struct {
	// Shelves is the arrangement, in shelf order.
	Shelves []Shelf `json:"shelves,omitempty"`

	// Dropped lists the books the initial placement could not fit.
	// +optional
	Dropped []Book `json:"dropped,omitempty"`

	// Cost is the penalty of the arrangement.
	Cost PenaltyBreakdown `json:"cost,omitempty"`

	// Search summarizes the search.
	Search SearchStatus `json:"search,omitempty"`

	// LastRunTime is the completion time of the run.
	LastRunTime metav1.Time `json:"lastRunTime,omitempty"`

	// Conditions represent the latest observations of the arrangement
	// +listType=map
	// +listMapKey=type
	Conditions []metav1.Condition `json:"conditions,omitempty" patchStrategy:"merge" patchMergeKey:"type"`
}

// +kubebuilder:object:root=true
// +kubebuilder:printcolumn:name="Shelves",type=integer,JSONPath=".spec.shelves"
// +kubebuilder:printcolumn:name="Cost",type=string,JSONPath=".status.cost.total"
// +kubebuilder:printcolumn:name="Valid",type=string,JSONPath=".status.conditions[?(@.type=='ArrangementValid')].status"

// ShelfArrangement is a saved optimization result.
type ShelfArrangement struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   ShelfArrangementSpec   `json:"spec,omitempty"`
	Status ShelfArrangementStatus `json:"status,omitempty"`
}

// ShelfArrangementList contains a list of ShelfArrangement documents.
// +kubebuilder:object:root=true
type ShelfArrangementList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`

	Items []ShelfArrangement `json:"items"`
}

// Condition Types for ShelfArrangement
const (
	// TypeArrangementValid indicates whether the arrangement passed validation
	TypeArrangementValid = "ArrangementValid"
	// TypeAllItemsPlaced indicates whether every catalog item is on a shelf
	TypeAllItemsPlaced = "AllItemsPlaced"
)

// Condition Reasons for ArrangementValid
const (
	// ReasonConstraintsSatisfied indicates every shelf is within limits and groups are adjacent
	ReasonConstraintsSatisfied = "ConstraintsSatisfied"
	// ReasonCapacityExceeded indicates at least one shelf is over a limit
	ReasonCapacityExceeded = "CapacityExceeded"
	// ReasonGroupNotContiguous indicates a group is split within a shelf
	ReasonGroupNotContiguous = "GroupNotContiguous"
	// ReasonItemsMismatch indicates the arrangement lost or duplicated items
	ReasonItemsMismatch = "ItemsMismatch"
)

// Condition Reasons for AllItemsPlaced
const (
	// ReasonAllPlaced indicates no group was dropped
	ReasonAllPlaced = "AllPlaced"
	// ReasonGroupsDropped indicates at least one group did not fit anywhere
	ReasonGroupsDropped = "GroupsDropped"
)
