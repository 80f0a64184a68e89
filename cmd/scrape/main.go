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

// Package main (scrape) is a command line tool that fetches a page (or reads
// a local file), resolves a selector against it and prints the matched text
// or attribute values.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	cmn "github.com/nthlab/nthscraper/pkg/common"
	cfg "github.com/nthlab/nthscraper/pkg/config"
	"github.com/nthlab/nthscraper/pkg/scraper"
	"github.com/nthlab/nthscraper/pkg/selector"
	"github.com/nthlab/nthscraper/pkg/transport"
)

var config cfg.Config

// modeNames maps command line mode names to selector modes.
var modeNames = map[string]selector.By{
	"id":                selector.ByID,
	"class":             selector.ByClassName,
	"tag":               selector.ByTagName,
	"xpath":             selector.ByXPath,
	"attribute":         selector.ByAttribute,
	"name":              selector.ByName,
	"link_text":         selector.ByLinkText,
	"partial_link_text": selector.ByPartialLinkText,
	"css":               selector.ByCSS,
}

func main() {
	configFile := flag.String("config", "", "Path to the configuration file (optional)")
	url := flag.String("url", "", "URL to fetch")
	file := flag.String("file", "", "Local file to read instead of fetching a URL")
	mode := flag.String("type", "xpath", "Selector mode (id, class, tag, xpath, attribute, name, link_text, partial_link_text, css)")
	pattern := flag.String("selector", "", "Selector pattern")
	tag := flag.String("tag", "", "Tag scope for the selector (default: any node)")
	attr := flag.String("attr", "", "Attribute to print instead of the element text")
	all := flag.Bool("all", false, "Print all matches instead of just the first one")
	post := flag.Bool("post", false, "Use a POST request instead of GET")
	throttle := flag.Int("throttle", 0, "Throttle delay in seconds (0 = random)")

	cmn.InitLogger("scrape")

	flag.Parse()

	if *pattern == "" || (*url == "" && *file == "") {
		flag.Usage()
		os.Exit(2)
	}

	by, ok := modeNames[*mode]
	if !ok {
		cmn.DebugMsg(cmn.DbgLvlFatal, "Unknown selector mode: %s", *mode)
	}

	config = cfg.NewConfig()
	if *configFile != "" {
		var err error
		config, err = cfg.LoadConfig(*configFile)
		if err != nil {
			cmn.DebugMsg(cmn.DbgLvlFatal, "Failed to load %s: %v", *configFile, err)
		}
	}
	cmn.SetDebugLevel(cmn.DbgLevel(config.DebugLevel))

	s := scraper.New(config)

	var err error
	if *file != "" {
		_, err = s.GetFromLocal(*file)
	} else {
		opts := transport.RequestOpts{}
		if *throttle > 0 {
			opts.Throttle = time.Duration(*throttle) * time.Second
		}
		if *post {
			_, err = s.Post(context.Background(), *url, opts)
		} else {
			_, err = s.Get(context.Background(), *url, opts)
		}
	}
	if err != nil {
		cmn.DebugMsg(cmn.DbgLvlFatal, "Failed to load document: %v", err)
	}

	if *all {
		for _, element := range s.FindAll(by, *pattern, *tag) {
			printElement(element, *attr)
		}
		return
	}

	element, err := s.Find(by, *pattern, *tag)
	if err != nil {
		cmn.DebugMsg(cmn.DbgLvlFatal, "%v", err)
	}
	printElement(element, *attr)
}

func printElement(element *scraper.Element, attr string) {
	if attr == "" {
		fmt.Println(element.Text())
		return
	}
	value, err := element.Attr(attr)
	if err != nil {
		cmn.DebugMsg(cmn.DbgLvlError, "%v", err)
		return
	}
	fmt.Println(value)
}
