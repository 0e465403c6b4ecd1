// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package pipeline orchestrates one search run: input validation, filter
// normalization, the active-filter precondition gate, the search call,
// optional truncation, profile enrichment and the final transformation into
// output records, optionally persisted to a dataset repository.
//
// Enrichment is the only concurrent stage. It fans out over a fixed-size
// worker pool and writes each outcome into the slot matching its input index,
// so the output is index-aligned with the search results regardless of
// completion order. Per-item enrichment failures are recorded as data on the
// affected item and never abort the run.
package pipeline
