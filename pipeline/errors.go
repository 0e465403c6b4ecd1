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


package pipeline

import "errors"

var (
	// ErrClientRequired is returned when a search client is not provided.
	ErrClientRequired = errors.New("search client required")

	// ErrNoActiveFilters indicates the canonical filter tree is entirely
	// at its neutral defaults. The search is refused before any network
	// call is made.
	ErrNoActiveFilters = errors.New("at least one filter must be provided (search term, state, certification, NAICS code, etc.)")
)
