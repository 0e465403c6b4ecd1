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


package api

import (
	"errors"
	"fmt"
)

var (
	// ErrSearchFailed indicates the search call could not complete after
	// its retry budget.
	ErrSearchFailed = errors.New("search request failed")

	// ErrAPIError indicates a syntactically valid search response whose
	// body carried a domain-level error field. Never retried.
	ErrAPIError = errors.New("search API reported an error")

	// ErrProfileFailed indicates a profile call could not complete after
	// its retry budget.
	ErrProfileFailed = errors.New("profile request failed")

	// ErrInvalidMaxAttempts is returned when a retry budget is not positive.
	ErrInvalidMaxAttempts = errors.New("max attempts must be positive")
)

// statusError is a non-2xx HTTP response. Only server-side and throttling
// statuses are retryable.
type statusError struct {
	status int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.status)
}

func (e *statusError) retryable() bool {
	return e.status >= 500 || e.status == 429
}

// retryableError reports whether err is worth another attempt: transport
// failures and retryable HTTP statuses are, everything else is not.
func retryableError(err error) bool {
	var se *statusError
	if errors.As(err, &se) {
		return se.retryable()
	}
	return true
}
