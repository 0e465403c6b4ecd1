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


// Package filter normalizes loosely-specified query input into the canonical
// filter tree the search API accepts. Each category accepts several
// equivalent shapes (raw code, human label, or structured pair), resolved
// against the reference catalogs:
//   - states and SBA certifications must match a catalog entry
//   - self-certifications and quality standards tolerate unknown terms by
//     synthesizing an option from the raw input
//   - zip codes, NAICS codes and keywords are free-form
//
// Every resolved list is deduplicated by canonical value in first-seen order.
// CountActive reports how many filter facets are engaged; a count of zero
// means the tree is entirely at its neutral defaults and no search should be
// executed.
package filter
