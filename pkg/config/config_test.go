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

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
network:
  user_agent: test-agent
  timeout: 10
scraper:
  throttle_min: 2
  throttle_max: 3
debug_level: 1
`)

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned an error: %v", err)
	}

	if config.Network.UserAgent != "test-agent" {
		t.Errorf("Expected user agent %q, got %q", "test-agent", config.Network.UserAgent)
	}
	if config.Network.Timeout != 10 {
		t.Errorf("Expected timeout 10, got %d", config.Network.Timeout)
	}
	if config.Scraper.ThrottleMin != 2 || config.Scraper.ThrottleMax != 3 {
		t.Errorf("Unexpected throttle bounds: [%d,%d]", config.Scraper.ThrottleMin, config.Scraper.ThrottleMax)
	}
	if config.DebugLevel != 1 {
		t.Errorf("Expected debug level 1, got %d", config.DebugLevel)
	}
	// Fields absent from the file keep their defaults
	if config.Network.MaxBodySize != 16<<20 {
		t.Errorf("Expected the default body size cap, got %d", config.Network.MaxBodySize)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("Expected an error for a missing file, got none")
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := writeConfig(t, "network: [not a map")
	if _, err := LoadConfig(path); err == nil {
		t.Errorf("Expected an error for invalid YAML, got none")
	}
}

func TestLoadConfigEnvInterpolation(t *testing.T) {
	t.Setenv("NTHSCRAPER_TEST_UA", "agent-from-env")

	path := writeConfig(t, `
network:
  user_agent: ${NTHSCRAPER_TEST_UA}
`)

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned an error: %v", err)
	}
	if config.Network.UserAgent != "agent-from-env" {
		t.Errorf("Expected the interpolated user agent, got %q", config.Network.UserAgent)
	}
}

func TestNewConfigDefaults(t *testing.T) {
	config := NewConfig()

	if config.Network.UserAgent != DefaultUserAgent {
		t.Errorf("Expected the default user agent")
	}
	if config.Network.Timeout != 30 {
		t.Errorf("Expected the default timeout, got %d", config.Network.Timeout)
	}
	if !config.Network.FollowRedirects {
		t.Errorf("Expected redirects to be followed by default")
	}
	if config.Scraper.ThrottleMin != 1 || config.Scraper.ThrottleMax != 5 {
		t.Errorf("Unexpected default throttle bounds: [%d,%d]", config.Scraper.ThrottleMin, config.Scraper.ThrottleMax)
	}
}

func TestThrottleBoundsNormalized(t *testing.T) {
	path := writeConfig(t, `
scraper:
  throttle_min: 4
  throttle_max: 2
`)

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned an error: %v", err)
	}
	if config.Scraper.ThrottleMax < config.Scraper.ThrottleMin {
		t.Errorf("Expected normalized throttle bounds, got [%d,%d]", config.Scraper.ThrottleMin, config.Scraper.ThrottleMax)
	}
}

func TestIsEmpty(t *testing.T) {
	if !IsEmpty(Config{}) {
		t.Errorf("Expected a zero config to be empty")
	}
	if IsEmpty(NewConfig()) {
		t.Errorf("Expected the default config to be non-empty")
	}
}
