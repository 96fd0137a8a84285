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

package core

import "fmt"

// Item is a single book to be placed on a shelf.
// Items are created once at catalog ingestion and never mutated afterwards.
type Item struct {
	// Title is the display title.
	Title string `json:"title"`

	// Group is the grouping key (the author). Items sharing a group should end up
	// next to each other.
	Group string `json:"group"`

	// Width is the spine width in millimeters.
	Width int `json:"width"`

	// Weight is the weight in grams.
	Weight int `json:"weight"`

	// Extra holds catalog fields the optimizer does not interpret (URL, ISBN, ...).
	Extra map[string]string `json:"extra,omitempty"`
}

// NewItem creates an item with the required attributes and no passthrough metadata.
func NewItem(title, group string, width, weight int) Item {
	return Item{
		Title:  title,
		Group:  group,
		Width:  width,
		Weight: weight,
	}
}

// String returns a compact human readable form of the item.
func (i Item) String() string {
	return fmt.Sprintf("%s - %s (%d mm, %d g)", i.Group, i.Title, i.Width, i.Weight)
}

// Capacity holds the per-shelf limits.
type Capacity struct {
	// Width is the usable shelf width in millimeters.
	Width int `json:"width"`

	// Weight is the maximum load of a shelf in grams.
	Weight int `json:"weight"`
}

// Group is a run of items sharing the same group key, in catalog order.
type Group struct {
	Key   string
	Items []Item
}

// GroupItems groups items by key, preserving the order in which keys are first
// discovered and the order of items inside each group.
func GroupItems(items []Item) []Group {
	index := make(map[string]int)
	groups := make([]Group, 0)
	for _, item := range items {
		i, ok := index[item.Group]
		if !ok {
			i = len(groups)
			index[item.Group] = i
			groups = append(groups, Group{Key: item.Group})
		}
		groups[i].Items = append(groups[i].Items, item)
	}
	return groups
}
