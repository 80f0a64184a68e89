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

package selector

import (
	"errors"
	"testing"
)

func TestModeValues(t *testing.T) {
	testCases := []struct {
		name     string
		by       By
		pattern  string
		tag      string
		expected string
	}{
		{"ByIDDefaultTag", ByID, "main", "", "//node()[@id='main']"},
		{"ByIDScopedTag", ByID, "main", "div", "//div[@id='main']"},
		{"ByClassName", ByClassName, "rows", "", "//node()[contains(concat(' ', normalize-space(@class), ' '), ' rows ')]"},
		{"ByTagName", ByTagName, "table", "span", "//table"},
		{"ByXPathVerbatim", ByXPath, "//div[@data-x='1']/p", "span", "//div[@data-x='1']/p"},
		{"ByAttributeNameValue", ByAttribute, "data-kind=row", "", "//node()[@data-kind='row']"},
		{"ByAttributePresence", ByAttribute, "data-kind", "tr", "//tr[@data-kind]"},
		{"ByName", ByName, "q", "input", "//input[@name='q']"},
		{"ByLinkText", ByLinkText, "Next page", "", "//a[normalize-space(text())='Next page']"},
		{"ByPartialLinkText", ByPartialLinkText, "Next", "", "//a[contains(text(), 'Next')]"},
		{"ByCSSVerbatim", ByCSS, "div.rows > p", "", "div.rows > p"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			label, query, err := ModeValues(tc.by, tc.pattern, tc.tag)
			if err != nil {
				t.Fatalf("ModeValues returned an error: %v", err)
			}
			if query != tc.expected {
				t.Errorf("Expected query %q, got %q", tc.expected, query)
			}
			if label == "" {
				t.Errorf("Expected a non-empty error label")
			}
		})
	}
}

func TestModeValuesIsPure(t *testing.T) {
	for by := ByID; by <= ByCSS; by++ {
		label1, query1, err1 := ModeValues(by, "pattern", "div")
		label2, query2, err2 := ModeValues(by, "pattern", "div")
		if label1 != label2 || query1 != query2 || (err1 == nil) != (err2 == nil) {
			t.Errorf("ModeValues(%s) is not deterministic: (%q, %q, %v) vs (%q, %q, %v)",
				by, label1, query1, err1, label2, query2, err2)
		}
	}
}

func TestModeValuesUnsupportedMode(t *testing.T) {
	label, query, err := ModeValues(By(42), "pattern", "")
	if !errors.Is(err, ErrUnsupportedMode) {
		t.Errorf("Expected ErrUnsupportedMode, got %v", err)
	}
	if query != "" {
		t.Errorf("Expected no query string for an unsupported mode, got %q", query)
	}
	if label == "" {
		t.Errorf("Expected a non-empty error label even on failure")
	}
}

func TestByString(t *testing.T) {
	if ByID.String() != "id" {
		t.Errorf("Expected 'id', got %q", ByID.String())
	}
	if By(42).String() != "unknown(42)" {
		t.Errorf("Expected 'unknown(42)', got %q", By(42).String())
	}
}

func TestIsCSS(t *testing.T) {
	if !ByCSS.IsCSS() {
		t.Errorf("ByCSS should be resolved by the CSS engine")
	}
	if ByXPath.IsCSS() {
		t.Errorf("ByXPath should not be resolved by the CSS engine")
	}
}
