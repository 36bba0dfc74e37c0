// Catalog Engine
// Copyright (c) 2026 The Dealgrotto Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Catalog Engine.
//
// Catalog Engine is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Catalog Engine is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Catalog Engine.  If not, see <http://www.gnu.org/licenses/>.

// catalogsearch is a development tool: it loads a JSON catalog fixture and
// runs interactive queries against the engine, printing ranked results and
// corrections. It is not part of the library surface.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/dealgrotto/catalog-engine/pkg/catalog"
	"github.com/dealgrotto/catalog-engine/pkg/config"
	"github.com/dealgrotto/catalog-engine/pkg/helpers"
	"github.com/dealgrotto/catalog-engine/pkg/search"
)

func main() {
	catalogPath := flag.String("catalog", "", "path to JSON catalog fixture")
	configPath := flag.String("config", "", "path to TOML config (defaults used when empty)")
	region := flag.String("region", "us", "region for cache keys")
	language := flag.String("lang", "en", "language for cache keys")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	if err := run(*catalogPath, *configPath, *region, *language, *debug); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(catalogPath, configPath, region, language string, debug bool) error {
	if catalogPath == "" {
		return fmt.Errorf("missing required -catalog flag")
	}

	if err := helpers.SetupLogging(os.TempDir(), debug, zerolog.ConsoleWriter{Out: os.Stderr}); err != nil {
		return fmt.Errorf("setup logging: %w", err)
	}

	cfg := config.Defaults()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	items, err := loadCatalog(catalogPath)
	if err != nil {
		return err
	}

	engine := search.NewEngine(cfg, nil)
	items = engine.NormalizeBatch(items)

	searchables := make([]catalog.Searchable, len(items))
	for i := range items {
		searchables[i] = &items[i]
	}

	fmt.Printf("loaded %d items; type a query (ctrl-d to exit)\n", len(items))
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		result, err := engine.SearchWithSuggestions(region, language, scanner.Text(), catalog.KindAny, searchables)
		if err != nil {
			return fmt.Errorf("search: %w", err)
		}

		for i, scored := range result.Items {
			fmt.Printf("%2d. %-50s %8.1f\n", i+1, scored.Item.DisplayText(), scored.Score)
		}
		for _, s := range result.Suggestions {
			fmt.Printf("    did you mean %q for %q? (%.0f%%)\n", s.Suggested, s.Term, s.Confidence*100)
		}
	}
	return scanner.Err()
}

// loadCatalog reads a JSON array of catalog items.
func loadCatalog(path string) ([]catalog.Item, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is an operator-supplied fixture
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	var items []catalog.Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return items, nil
}
