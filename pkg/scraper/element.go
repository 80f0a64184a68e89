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

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/antchfx/htmlquery"
	"github.com/antchfx/xpath"
	"golang.org/x/net/html"

	cmn "github.com/nthlab/nthscraper/pkg/common"
	"github.com/nthlab/nthscraper/pkg/selector"
)

// Element wraps exactly one node of a parsed HTML tree. It is a non-owning,
// read-only view: the tree belongs to the Scraper session that parsed it,
// and an Element obtained before a reload must not be used afterwards.
type Element struct {
	node *html.Node
}

// NewElement wraps the given node. It fails with ErrInvalidElement when the
// node reference is nil; an Element never wraps "nothing".
func NewElement(node *html.Node) (*Element, error) {
	if node == nil {
		return nil, ErrInvalidElement
	}
	return &Element{node: node}, nil
}

// Node returns the underlying tree node.
func (e *Element) Node() *html.Node {
	return e.node
}

// FindAll finds all elements matching the selector within this element's
// subtree, in document order. The optional tag argument narrows the scope to
// a tag name (default: any node type). A selector that matches nothing
// yields an empty slice; a selector that fails to translate or execute is
// logged and also yields an empty slice, never an error.
func (e *Element) FindAll(by selector.By, pattern string, tag ...string) []*Element {
	return findAll(e.node, by, pattern, tagScope(tag))
}

// Find finds the first element matching the selector within this element's
// subtree. It fails with ErrNotFound when nothing matches or the query
// cannot be executed; an unsupported selector mode surfaces as
// selector.ErrUnsupportedMode.
func (e *Element) Find(by selector.By, pattern string, tag ...string) (*Element, error) {
	return find(e.node, by, pattern, tagScope(tag))
}

// Text returns the text content of the element and all its descendants,
// concatenated in document order with no separator.
func (e *Element) Text() string {
	return htmlquery.InnerText(e.node)
}

// OwnText returns only the element's direct text content: the text run
// immediately after the start tag, before the first child element. It
// returns an empty string, not an error, when there is none.
func (e *Element) OwnText() string {
	var sb strings.Builder
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			break
		}
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	}
	return sb.String()
}

// TagName returns the element's tag name as stored by the parser.
func (e *Element) TagName() string {
	return e.node.Data
}

// Attr retrieves an attribute or pseudo-attribute of the element. The
// reserved names are checked before any literal lookup: "innerText" returns
// Text() with every filter string removed in order (DefaultInnerTextFilters
// when none are given) and outer whitespace trimmed; "innerHTML" returns the
// element's subtree serialized back to markup. Any other name is looked up
// as a literal attribute and fails with ErrAttributeNotFound when absent.
func (e *Element) Attr(attribute string, innerTextFilters ...string) (string, error) {
	switch attribute {
	case "innerText":
		filters := innerTextFilters
		if len(filters) == 0 {
			filters = DefaultInnerTextFilters
		}
		text := e.Text()
		for _, rep := range filters {
			text = strings.ReplaceAll(text, rep, "")
		}
		return strings.TrimSpace(text), nil
	case "innerHTML":
		return htmlquery.OutputHTML(e.node, true), nil
	}

	for _, a := range e.node.Attr {
		if a.Key == attribute {
			return a.Val, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrAttributeNotFound, attribute)
}

// Parent returns the element's parent, or nil (not an error) when the
// element is the tree root.
func (e *Element) Parent() *Element {
	p := e.node.Parent
	if p == nil || p.Type == html.DocumentNode {
		return nil
	}
	return &Element{node: p}
}

// Children returns the element's direct child elements, optionally filtered
// by tag name ("*" or no argument matches any tag). It returns an empty
// slice when nothing matches.
func (e *Element) Children(tag ...string) []*Element {
	filter := ""
	if len(tag) > 0 {
		filter = tag[0]
	}

	children := []*Element{}
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		if filter != "" && filter != "*" && c.Data != filter {
			continue
		}
		children = append(children, &Element{node: c})
	}
	return children
}

// String implements fmt.Stringer.
func (e *Element) String() string {
	return fmt.Sprintf("Element: <%s> element instance", e.TagName())
}

// tagScope resolves the optional tag argument to the default scope.
func tagScope(tag []string) string {
	if len(tag) == 0 || strings.TrimSpace(tag[0]) == "" {
		return selector.AnyTag
	}
	return tag[0]
}

// findAll translates the selector and executes it against the subtree rooted
// at the given node. Translation and execution failures are swallowed after
// logging: an empty result is a valid, common outcome when scraping pages of
// varying structure.
func findAll(root *html.Node, by selector.By, pattern, tag string) []*Element {
	errMessage, query, err := selector.ModeValues(by, pattern, tag)
	if err != nil {
		cmn.DebugMsg(cmn.DbgLvlError, "%s: %v", errMessage, err)
		return []*Element{}
	}

	nodes, err := queryNodes(root, by, query)
	if err != nil {
		cmn.DebugMsg(cmn.DbgLvlError, "%s: %v", errMessage, err)
		return []*Element{}
	}

	elements := make([]*Element, 0, len(nodes))
	for _, node := range nodes {
		elements = append(elements, &Element{node: node})
	}
	return elements
}

// find translates the selector and returns the first match in document
// order. Unlike findAll, absence here is an error the caller branches on.
func find(root *html.Node, by selector.By, pattern, tag string) (*Element, error) {
	_, query, err := selector.ModeValues(by, pattern, tag)
	if err != nil {
		return nil, err
	}

	nodes, err := queryNodes(root, by, query)
	if err != nil {
		return nil, fmt.Errorf("%w: by %s '%s': %v", ErrNotFound, by, pattern, err)
	}
	if len(nodes) == 0 {
		return nil, fmt.Errorf("%w: by %s '%s'", ErrNotFound, by, pattern)
	}
	return NewElement(nodes[0])
}

// queryNodes runs the translated query through the engine the mode belongs
// to: CSS selectors through cascadia/goquery, everything else through the
// XPath engine.
func queryNodes(root *html.Node, by selector.By, query string) ([]*html.Node, error) {
	if by.IsCSS() {
		matcher, err := cascadia.Compile(query)
		if err != nil {
			return nil, fmt.Errorf("invalid css selector: %w", err)
		}
		return goquery.NewDocumentFromNode(root).FindMatcher(matcher).Nodes, nil
	}

	expr, err := xpath.Compile(query)
	if err != nil {
		return nil, fmt.Errorf("invalid xpath expression: %w", err)
	}
	return htmlquery.QuerySelectorAll(root, expr), nil
}
