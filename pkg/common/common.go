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

// Package common package is used to store common functions and variables
package common

import (
	"fmt"
	"log"
	"os"
)

// InitLogger initializes the logger for the given application name.
// Log lines are prefixed with "<appName> [<hostname>:<pid>:<ppid>]: " so that
// multiple scraper processes writing to the same stream stay distinguishable.
func InitLogger(appName string) {
	log.SetOutput(os.Stdout)

	hostname, err := os.Hostname()
	if err != nil {
		hostname = "localhost"
	}

	loggerPrefix = fmt.Sprintf("%s [%s:%d:%d]: ", appName, hostname, os.Getpid(), os.Getppid())

	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
}

// SetDebugLevel allows to set the current debug level
func SetDebugLevel(dbgLvl DbgLevel) {
	debugLevel = dbgLvl
	if debugLevel > DbgLvlInfo {
		// Include caller info when debugging is on
		log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)
	} else {
		log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	}
}

// GetDebugLevel returns the value of the current debug level
func GetDebugLevel() DbgLevel {
	return debugLevel
}

// DebugMsg logs a message at the given debug level. Info, Error and Fatal
// messages are always logged; Debug messages are logged only when the
// configured debug level is equal or higher. Fatal also exits the process.
func DebugMsg(dbgLvl DbgLevel, msg string, args ...interface{}) {
	if dbgLvl == DbgLvlDebug && debugLevel < DbgLvlDebug {
		return
	}
	log.Printf(loggerPrefix+msg, args...)
	if dbgLvl == DbgLvlFatal {
		os.Exit(1)
	}
}
