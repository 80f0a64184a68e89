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

package common

import (
	"bytes"
	"log"
	"os"
	"strings"
	"testing"
)

func TestSetAndGetDebugLevel(t *testing.T) {
	original := GetDebugLevel()
	defer SetDebugLevel(original)

	SetDebugLevel(DbgLvlDebug)
	if GetDebugLevel() != DbgLvlDebug {
		t.Errorf("Expected debug level %d, got %d", DbgLvlDebug, GetDebugLevel())
	}
}

func TestDebugMsgLevels(t *testing.T) {
	original := GetDebugLevel()
	defer SetDebugLevel(original)

	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stdout)

	SetDebugLevel(DbgLvlNone)
	DebugMsg(DbgLvlDebug, "hidden message")
	if strings.Contains(buf.String(), "hidden message") {
		t.Errorf("Debug messages should be suppressed below the debug level")
	}

	DebugMsg(DbgLvlInfo, "info message")
	if !strings.Contains(buf.String(), "info message") {
		t.Errorf("Info messages should always be logged")
	}

	buf.Reset()
	SetDebugLevel(DbgLvlDebug)
	DebugMsg(DbgLvlDebug, "visible message")
	if !strings.Contains(buf.String(), "visible message") {
		t.Errorf("Debug messages should be logged at the debug level")
	}
}
