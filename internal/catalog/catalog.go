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
	"context"
	"fmt"
	"strings"

	"github.com/go-logr/logr"

	"github.com/llm-d/llm-d-shelf-optimizer/internal/logging"
	"github.com/llm-d/llm-d-shelf-optimizer/internal/utils/measure"
	"github.com/llm-d/llm-d-shelf-optimizer/pkg/core"
)

// Skip reasons reported in Stats.Skipped.
const (
	SkipNoDimensions  = "noDimensions"
	SkipBadDimensions = "badDimensions"
	SkipNoWeight      = "noWeight"
	SkipBadWeight     = "badWeight"
)

// Load reads every record from src and converts the valid ones into items,
// preserving catalog order.
func Load(ctx context.Context, src Source) ([]core.Item, Stats, error) {
	logger := logr.FromContextOrDiscard(ctx).WithValues("catalog", src.Name())

	records, err := src.Records(ctx)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("loading catalog %s: %w", src.Name(), err)
	}

	stats := Stats{Records: len(records), Skipped: map[string]int{}}
	items := make([]core.Item, 0, len(records))
	for i, rec := range records {
		item, reason, err := ToItem(rec)
		if err != nil {
			stats.Skipped[reason]++
			logger.V(logging.DEBUG).Info("Skipping catalog record",
				"index", i,
				"title", rec.Get(FieldTitle),
				"reason", reason,
				"error", err.Error())
			continue
		}
		items = append(items, item)
	}
	stats.Items = len(items)

	logger.V(logging.DEBUG).Info("Catalog loaded",
		"records", stats.Records,
		"items", stats.Items,
		"skipped", stats.SkippedTotal())
	return items, stats, nil
}

// ToItem converts a record into an item. On failure it returns the skip reason.
func ToItem(rec Record) (core.Item, string, error) {
	dims := rec.Get(FieldDimensions)
	if dims == "" {
		return core.Item{}, SkipNoDimensions, errNoDimensions
	}
	width, err := measure.ParseWidth(dims)
	if err != nil {
		return core.Item{}, SkipBadDimensions, err
	}

	weightText := rec.Get(FieldWeight)
	if weightText == "" {
		return core.Item{}, SkipNoWeight, errNoWeight
	}
	weight, err := measure.ParseWeight(weightText)
	if err != nil {
		return core.Item{}, SkipBadWeight, err
	}

	author := rec.Get(FieldAuthor)
	if author == "" {
		author = UnknownAuthor
	}

	item := core.NewItem(rec.Get(FieldTitle), author, width, weight)
	for k, v := range rec {
		switch k {
		case FieldTitle, FieldAuthor, FieldDimensions, FieldWeight:
			continue
		}
		if item.Extra == nil {
			item.Extra = make(map[string]string)
		}
		item.Extra[k] = v
	}
	return item, "", nil
}

func trim(s string) string {
	return strings.TrimSpace(s)
}
