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

// Package config holds the engine's tuning knobs: cache TTL, result
// windows, and fuzzy thresholds. Values load from TOML and are validated
// before use; the zero-config path uses defaults matching the production
// storefront.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	toml "github.com/pelletier/go-toml/v2"
)

// Values is the full engine configuration.
type Values struct {
	Cache  Cache  `toml:"cache"`
	Search Search `toml:"search"`
}

// Cache configures the result cache.
type Cache struct {
	// TTLSeconds is how long a cached result set stays servable.
	TTLSeconds int `toml:"ttl_seconds" validate:"gte=1"`
}

// Search configures ranking and suggestion windows.
type Search struct {
	// ResultLimit is the default result window for full result pages.
	ResultLimit int `toml:"result_limit" validate:"gte=1,lte=500"`
	// SuggestionLimit caps how many did-you-mean corrections are returned.
	SuggestionLimit int `toml:"suggestion_limit" validate:"gte=1,lte=20"`
	// SuggestionFloor is the result-set size below which corrections are
	// attached to a search response.
	SuggestionFloor int `toml:"suggestion_floor" validate:"gte=0,lte=50"`
}

// Defaults match the production storefront tuning.
func Defaults() Values {
	return Values{
		Cache: Cache{
			TTLSeconds: 300,
		},
		Search: Search{
			ResultLimit:     50,
			SuggestionLimit: 5,
			SuggestionFloor: 5,
		},
	}
}

// TTL returns the cache TTL as a duration.
func (c Cache) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

// Load reads a TOML config file over the defaults and validates the result.
func Load(path string) (Values, error) {
	vals := Defaults()

	data, err := os.ReadFile(path) //nolint:gosec // path is operator-supplied config
	if err != nil {
		return Values{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &vals); err != nil {
		return Values{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := vals.Validate(); err != nil {
		return Values{}, err
	}
	return vals, nil
}

// Validate checks every field constraint.
func (v Values) Validate() error {
	if err := validator.New().Struct(v); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}
	return nil
}
