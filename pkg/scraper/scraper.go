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

// Package scraper implements a selenium-style scraping facade: it fetches a
// document over HTTP or from a local file, parses it into a navigable tree
// and resolves selenium-like selectors against it. Transport and parsing are
// delegated to the transport package and to htmlquery respectively.
package scraper

import (
	"bytes"
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/antchfx/htmlquery"
	"github.com/google/uuid"
	"golang.org/x/net/html"

	cmn "github.com/nthlab/nthscraper/pkg/common"
	cfg "github.com/nthlab/nthscraper/pkg/config"
	"github.com/nthlab/nthscraper/pkg/selector"
	"github.com/nthlab/nthscraper/pkg/transport"
)

// Scraper is a scraping session. It owns the currently loaded document tree
// and the last transport response; both are replaced wholesale on every
// fetch or load call, never merged. A session supports one writer at a time:
// concurrent fetch calls on the same Scraper must be serialized by the
// caller.
type Scraper struct {
	client    *transport.Client
	config    cfg.Config
	sessionID string

	doc      *html.Node
	response *transport.Response
}

// New creates a scraping session with its own transport client.
func New(config cfg.Config) *Scraper {
	return NewWithClient(config, transport.NewClient(config.Network))
}

// NewWithClient creates a scraping session on an existing transport client,
// so several sessions can share one throttle budget and hit counter.
func NewWithClient(config cfg.Config, client *transport.Client) *Scraper {
	return &Scraper{
		client:    client,
		config:    config,
		sessionID: uuid.New().String(),
	}
}

// Get fetches the given URL with a GET request and loads the response body
// as the session document.
func (s *Scraper) Get(ctx context.Context, url string, opts transport.RequestOpts) (*transport.Response, error) {
	return s.getResponse(ctx, http.MethodGet, url, opts)
}

// Post fetches the given URL with a POST request and loads the response body
// as the session document.
func (s *Scraper) Post(ctx context.Context, url string, opts transport.RequestOpts) (*transport.Response, error) {
	return s.getResponse(ctx, http.MethodPost, url, opts)
}

// getResponse performs the request and replaces the session state. When the
// caller gives no throttle, a random delay between the configured bounds is
// chosen. Transport failures (including non-2xx statuses) propagate and
// leave the previous session state untouched.
func (s *Scraper) getResponse(ctx context.Context, method, url string, opts transport.RequestOpts) (*transport.Response, error) {
	switch {
	case opts.Throttle == 0:
		opts.Throttle = time.Duration(s.randomThrottle()) * time.Second
	case opts.Throttle == transport.NoThrottle:
		opts.Throttle = 0
	}

	cmn.DebugMsg(cmn.DbgLvlDebug, "[session %s] %s %s (throttle %s)", s.sessionID, method, url, opts.Throttle)

	resp, err := s.client.Request(ctx, method, url, opts)
	if err != nil {
		return resp, err
	}
	return resp, s.loadResponse(resp)
}

// GetFromLocal loads a document from the local filesystem, bypassing
// throttling and the default header set. State replacement semantics are the
// same as for Get.
func (s *Scraper) GetFromLocal(path string) (*transport.Response, error) {
	resp, err := s.client.ReadLocal(path)
	if err != nil {
		return nil, err
	}

	cmn.DebugMsg(cmn.DbgLvlInfo, "[session %s] Scraping data from: %s", s.sessionID, path)
	return resp, s.loadResponse(resp)
}

// loadResponse replaces the session response and document root. An empty
// body leaves the session in the "unloaded" state.
func (s *Scraper) loadResponse(resp *transport.Response) error {
	s.response = resp

	if len(resp.Body) == 0 {
		s.doc = nil
		return nil
	}

	doc, err := htmlquery.Parse(bytes.NewReader(resp.Body))
	if err != nil {
		s.doc = nil
		return fmt.Errorf("parse document: %w", err)
	}
	s.doc = doc
	return nil
}

// FindAll finds all elements matching the selector at document scope, in
// document order. With no loaded document it logs and returns an empty
// slice, like any other empty result.
func (s *Scraper) FindAll(by selector.By, pattern string, tag ...string) []*Element {
	if s.doc == nil {
		cmn.DebugMsg(cmn.DbgLvlError, "[session %s] Document is not loaded, cannot run queries", s.sessionID)
		return []*Element{}
	}
	return findAll(s.doc, by, pattern, tagScope(tag))
}

// Find finds the first element matching the selector at document scope. With
// no loaded document it fails with ErrDocumentNotLoaded, which is distinct
// from ErrNotFound: there was no document to search at all.
func (s *Scraper) Find(by selector.By, pattern string, tag ...string) (*Element, error) {
	if s.doc == nil {
		return nil, ErrDocumentNotLoaded
	}
	return find(s.doc, by, pattern, tagScope(tag))
}

// Root returns the current document root wrapped as an Element, so callers
// can run subtree navigation from the top. It fails with
// ErrDocumentNotLoaded when the session has no document.
func (s *Scraper) Root() (*Element, error) {
	if s.doc == nil {
		return nil, ErrDocumentNotLoaded
	}
	return NewElement(s.doc)
}

// Response returns the last transport response, or nil before any fetch.
func (s *Scraper) Response() *transport.Response {
	return s.response
}

// Loaded reports whether the session currently holds a parsed document.
func (s *Scraper) Loaded() bool {
	return s.doc != nil
}

// Client returns the session's transport client.
func (s *Scraper) Client() *transport.Client {
	return s.client
}

// SessionID returns the unique identifier of this session, used in logs.
func (s *Scraper) SessionID() string {
	return s.sessionID
}

// randomThrottle picks a random throttle delay in seconds between the
// configured bounds (inclusive).
func (s *Scraper) randomThrottle() int {
	min := s.config.Scraper.ThrottleMin
	max := s.config.Scraper.ThrottleMax
	if min <= 0 && max <= 0 {
		// Unconfigured session: fall back to a random delay in [1,5]
		min, max = 1, 5
	}
	if max < min {
		max = min
	}
	if max == min {
		return min
	}
	return min + rand.Intn(max-min+1)
}
