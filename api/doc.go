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


// Package api is the HTTP client for the SBA certification search service.
// The Client issues the canonical search POST and per-entity profile GETs,
// each with its own timeout and a small bounded retry budget for transient
// failures. A proxy source, when configured, supplies one proxy URL per
// outgoing request.
package api
