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

package scraper

import "errors"

var (
	// ErrInvalidElement is returned when wrapping a nil node reference.
	// It indicates a programming error in the caller, not a scraping miss.
	ErrInvalidElement = errors.New("invalid element: nil node reference")

	// ErrNotFound is returned by single-match lookups that matched nothing.
	ErrNotFound = errors.New("failed to find element")

	// ErrAttributeNotFound is returned when a literal attribute is absent.
	ErrAttributeNotFound = errors.New("attribute not found")

	// ErrDocumentNotLoaded is returned by document-scope lookups issued
	// before any fetch or load call. It is distinct from ErrNotFound: the
	// session had no tree to search at all.
	ErrDocumentNotLoaded = errors.New("document is not loaded")
)

// DefaultInnerTextFilters are the strings removed from innerText extractions
// when the caller does not supply its own filter list.
var DefaultInnerTextFilters = []string{"\n", "\t"}
