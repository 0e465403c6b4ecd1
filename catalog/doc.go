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


// Package catalog holds the static reference vocabularies of the search API:
// U.S. states and territories, SBA certification families, self-certification
// families, quality-assurance standards and the last-updated presets.
// All lookup tables are built once at package init and are read-only, so they
// are safe to share across goroutines. Lookups return a copy of the matched
// option and a boolean reporting whether the term was found.
package catalog
