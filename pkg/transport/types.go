// Copyright 2024 The nthscraper Authors
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

// Package transport implements the throttled HTTP layer used by the scraper.
package transport

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

// NoThrottle disables the pre-request throttle delay for a single request.
const NoThrottle = time.Duration(-1)

// RequestOpts holds the per-request knobs.
type RequestOpts struct {
	// Throttle is the delay applied before issuing the request. Zero means
	// "let the session pick its default"; NoThrottle disables the delay
	// explicitly. The transport itself only sleeps for positive values.
	Throttle time.Duration
	// Headers are merged over the client's default header set
	Headers map[string]string
	// Body is the request body (POST)
	Body io.Reader
	// ContentType is the Content-Type header for the request body
	ContentType string
}

// Response holds the outcome of a request: status, headers and raw body.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// StatusError reports a response that completed with a non-2xx status.
type StatusError struct {
	StatusCode int
	URL        string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("non-2xx status: %d for %s", e.StatusCode, e.URL)
}
