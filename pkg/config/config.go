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

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v2"
)

const (
	// DefaultUserAgent identifies the scraper when no user agent is configured.
	DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_11_5) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/50.0.2661.102 Safari/537.36"

	defaultTimeout     = 30
	defaultMaxBodySize = 16 << 20
	defaultThrottleMin = 1
	defaultThrottleMax = 5
)

// NewConfig returns a Config filled with the default values.
func NewConfig() Config {
	return Config{
		Network: Network{
			UserAgent:       DefaultUserAgent,
			Timeout:         defaultTimeout,
			FollowRedirects: true,
			MaxBodySize:     defaultMaxBodySize,
		},
		Scraper: Scraper{
			ThrottleMin: defaultThrottleMin,
			ThrottleMax: defaultThrottleMax,
		},
	}
}

// fileExists checks if a file exists at the given filename.
// It returns true if the file exists and is not a directory, and false otherwise.
func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return false
	}
	return !info.IsDir()
}

// interpolateEnvVars replaces occurrences of `${VAR}` or `$VAR` in the input string
// with the value of the VAR environment variable.
func interpolateEnvVars(input string) string {
	envVarPattern := regexp.MustCompile(`\$\{?(\w+)\}?`)
	return envVarPattern.ReplaceAllStringFunc(input, func(varName string) string {
		trimmedVarName := strings.TrimSuffix(strings.TrimPrefix(varName, "${"), "}")
		trimmedVarName = strings.TrimPrefix(trimmedVarName, "$")
		return os.Getenv(trimmedVarName)
	})
}

// LoadConfig reads and unmarshals a configuration file with the given name.
// Environment variables referenced in the file are interpolated before
// parsing, and missing fields are filled with their default values.
func LoadConfig(confName string) (Config, error) {
	if !fileExists(confName) {
		return Config{}, fmt.Errorf("file does not exist: %s", confName)
	}

	data, err := os.ReadFile(confName)
	if err != nil {
		return Config{}, err
	}

	// Interpolate environment variables before unmarshaling
	interpolated := interpolateEnvVars(string(data))

	config := NewConfig()
	err = yaml.Unmarshal([]byte(interpolated), &config)
	if err != nil {
		return Config{}, err
	}

	applyDefaults(&config)
	return config, nil
}

// applyDefaults fills the zero-valued fields with their defaults.
func applyDefaults(c *Config) {
	if strings.TrimSpace(c.Network.UserAgent) == "" {
		c.Network.UserAgent = DefaultUserAgent
	}
	if c.Network.Timeout <= 0 {
		c.Network.Timeout = defaultTimeout
	}
	if c.Network.MaxBodySize <= 0 {
		c.Network.MaxBodySize = defaultMaxBodySize
	}
	if c.Scraper.ThrottleMin < 0 {
		c.Scraper.ThrottleMin = defaultThrottleMin
	}
	if c.Scraper.ThrottleMax <= 0 {
		c.Scraper.ThrottleMax = defaultThrottleMax
	}
	if c.Scraper.ThrottleMax < c.Scraper.ThrottleMin {
		c.Scraper.ThrottleMax = c.Scraper.ThrottleMin
	}
}

// IsEmpty checks if the given config is empty.
// It returns true if the config is empty, false otherwise.
func IsEmpty(config Config) bool {
	return config == Config{}
}
