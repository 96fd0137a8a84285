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

// Package catalog loads item records from an already materialized catalog and
// converts them into optimizer items.
//
// A catalog is a sequence of records with free-form string fields. The fields
// Title, Author, Dimensions and Weight are interpreted; every other field is
// carried as passthrough metadata on the item. Records that cannot be turned
// into an item are skipped and logged at debug level, they never fail a load.
//
// Sources:
//   - JSONLinesSource reads one JSON object per line.
//   - YAMLSource reads a YAML sequence of mappings.
//   - StaticSource serves records held in memory.
//
// NewSource picks a file backed source from the file extension.
package catalog
