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

import "context"

// Source is the interface for pluggable catalog providers.
type Source interface {
	// Name returns a short description of the source for logs (e.g., the file path).
	Name() string

	// Records returns every record of the catalog in catalog order.
	Records(ctx context.Context) ([]Record, error)
}
