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

// The config package contains the configuration file parsing logic.
package config

// Network holds the settings for the HTTP transport layer.
type Network struct {
	// UserAgent is the identifying User-Agent header sent with every request
	UserAgent string `yaml:"user_agent"`
	// Timeout is the total request timeout in seconds (including redirects)
	Timeout int `yaml:"timeout"`
	// FollowRedirects controls whether 3xx responses are followed
	FollowRedirects bool `yaml:"follow_redirects"`
	// MaxBodySize is the hard cap for a response body in bytes
	MaxBodySize int64 `yaml:"max_body_size"`
	// RateLimit is the sustained request rate in requests per second
	RateLimit float64 `yaml:"rate_limit"`
}

// Scraper holds the settings for the scraping session layer.
type Scraper struct {
	// ThrottleMin and ThrottleMax bound the random per-request throttle
	// delay (in seconds) applied when the caller does not give one
	ThrottleMin int `yaml:"throttle_min"`
	ThrottleMax int `yaml:"throttle_max"`
}

// Config is the top-level configuration structure.
type Config struct {
	Network    Network `yaml:"network"`
	Scraper    Scraper `yaml:"scraper"`
	DebugLevel int     `yaml:"debug_level"`
}
