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


package core

import "errors"

var (
	// ErrValidation indicates the run input failed validation or filter
	// normalization. The wrapping message names the offending term.
	ErrValidation = errors.New("invalid input")

	// ErrInvalidOperator indicates an operator outside {Or, And}.
	ErrInvalidOperator = errors.New("operator must be Or or And")

	// ErrInvalidRelation indicates a relation outside {at-least, no-more}.
	ErrInvalidRelation = errors.New("relation must be at-least or no-more")

	// ErrInvalidConcurrency indicates a profile concurrency outside [1, 10].
	ErrInvalidConcurrency = errors.New("profile concurrency must be between 1 and 10")

	// ErrNegativeValue indicates a numeric input that must be non-negative.
	ErrNegativeValue = errors.New("value cannot be negative")
)
