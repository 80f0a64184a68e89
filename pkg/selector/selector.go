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

// Package selector translates selenium-style selector modes into XPath
// expressions executable against a parsed HTML tree. The translation is a
// pure function: it never touches the tree and never performs I/O.
package selector

import (
	"errors"
	"fmt"
	"strings"
)

// By is an enum representing the supported selector modes.
type By int

const (
	// ByID matches nodes whose id attribute equals the pattern
	ByID By = iota
	// ByClassName matches nodes whose class token list contains the pattern
	ByClassName
	// ByTagName matches nodes by tag name (the tag scope is ignored)
	ByTagName
	// ByXPath passes the pattern through verbatim as an XPath expression
	ByXPath
	// ByAttribute matches nodes whose attribute equals a value; the pattern
	// is encoded as "name=value"
	ByAttribute
	// ByName matches nodes whose name attribute equals the pattern
	ByName
	// ByLinkText matches anchors whose text equals the pattern
	ByLinkText
	// ByPartialLinkText matches anchors whose text contains the pattern
	ByPartialLinkText
	// ByCSS passes the pattern through verbatim as a CSS selector; it is
	// executed by the CSS engine rather than the XPath engine
	ByCSS
)

// AnyTag is the default tag scope: the generated XPath matches any node type.
const AnyTag = "node()"

// ErrUnsupportedMode is returned when a selector mode outside the enumerated
// set is requested. This is a configuration error and is never retried.
var ErrUnsupportedMode = errors.New("unsupported selector mode")

// String returns the human readable name of the selector mode.
func (b By) String() string {
	switch b {
	case ByID:
		return "id"
	case ByClassName:
		return "class name"
	case ByTagName:
		return "tag name"
	case ByXPath:
		return "xpath"
	case ByAttribute:
		return "attribute"
	case ByName:
		return "name"
	case ByLinkText:
		return "link text"
	case ByPartialLinkText:
		return "partial link text"
	case ByCSS:
		return "css selector"
	default:
		return fmt.Sprintf("unknown(%d)", int(b))
	}
}

// IsCSS reports whether the mode is resolved by the CSS engine instead of
// the XPath engine.
func (b By) IsCSS() bool {
	return b == ByCSS
}

// ModeValues translates the given (mode, pattern, tag scope) into an error
// label and a backend query string. The label is always produced, even on
// success, so callers can use it uniformly when logging query failures.
// An empty tag defaults to AnyTag. An unknown mode fails with
// ErrUnsupportedMode and never yields a query string.
func ModeValues(by By, pattern string, tag string) (string, string, error) {
	if strings.TrimSpace(tag) == "" {
		tag = AnyTag
	}

	errMessage := fmt.Sprintf("Error finding element by %s '%s'", by, pattern)

	var query string
	switch by {
	case ByID:
		query = fmt.Sprintf("//%s[@id='%s']", tag, pattern)
	case ByClassName:
		// Whitespace-delimited token membership, not a substring match
		query = fmt.Sprintf("//%s[contains(concat(' ', normalize-space(@class), ' '), ' %s ')]", tag, pattern)
	case ByTagName:
		query = "//" + pattern
	case ByXPath, ByCSS:
		query = pattern
	case ByAttribute:
		name, value, found := strings.Cut(pattern, "=")
		if !found {
			// A bare name matches on presence of the attribute
			query = fmt.Sprintf("//%s[@%s]", tag, name)
		} else {
			query = fmt.Sprintf("//%s[@%s='%s']", tag, name, value)
		}
	case ByName:
		query = fmt.Sprintf("//%s[@name='%s']", tag, pattern)
	case ByLinkText:
		query = fmt.Sprintf("//a[normalize-space(text())='%s']", pattern)
	case ByPartialLinkText:
		query = fmt.Sprintf("//a[contains(text(), '%s')]", pattern)
	default:
		return errMessage, "", fmt.Errorf("%w: %s", ErrUnsupportedMode, by)
	}

	return errMessage, query, nil
}
