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


package filter

import "errors"

var (
	// ErrEmptyValue indicates a filter entry with no usable value.
	ErrEmptyValue = errors.New("empty value")

	// ErrUnknownState indicates a state that matched no catalog value,
	// code or name.
	ErrUnknownState = errors.New("unknown state")

	// ErrUnknownSBACertification indicates an SBA certification that
	// matched no catalog value or label.
	ErrUnknownSBACertification = errors.New("unsupported SBA certification")

	// ErrMissingNAICSCode indicates a NAICS entry without a code.
	ErrMissingNAICSCode = errors.New("NAICS code missing value")

	// ErrEmptyKeyword indicates a blank keyword.
	ErrEmptyKeyword = errors.New("keyword cannot be empty")

	// ErrCustomRangeRequired indicates lastUpdated=custom without a
	// customDateRange.
	ErrCustomRangeRequired = errors.New("customDateRange is required when lastUpdated is set to custom")

	// ErrInvalidCustomRange indicates a custom range bound that is not a
	// parseable date.
	ErrInvalidCustomRange = errors.New("customDateRange must contain valid dates")

	// ErrCustomRangeOrder indicates a custom range with from after to.
	ErrCustomRangeOrder = errors.New("customDateRange.from must not be after customDateRange.to")

	// ErrUnknownLastUpdated indicates a last-updated name that matches no
	// preset.
	ErrUnknownLastUpdated = errors.New("unknown lastUpdated option")
)
