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

// Package catalog defines the records the search core ranks: stores,
// vouchers, and products fetched by an external storage collaborator.
// The core borrows these records for the duration of a ranking call and
// never mutates them.
package catalog

import (
	"time"

	"github.com/dealgrotto/catalog-engine/pkg/catalog/attrs"
)

// Kind identifies which concrete entity a catalog record represents.
type Kind uint8

const (
	// KindAny matches every entity kind; used in cache keys and filters.
	KindAny Kind = iota
	KindStore
	KindVoucher
	KindProduct
)

// String returns the lowercase name of the kind, suitable for cache keys.
func (k Kind) String() string {
	switch k {
	case KindStore:
		return "store"
	case KindVoucher:
		return "voucher"
	case KindProduct:
		return "product"
	case KindAny:
		return "any"
	default:
		return "any"
	}
}

// Flags carries the business signals that boost an item's relevance score
// independent of text matching.
type Flags struct {
	Featured  bool
	Exclusive bool
	Verified  bool
}

// Item is a plain catalog record as supplied by the storage collaborator.
// Attributes is derived by a batch normalization pass and is recomputed only
// when the source text changes.
type Item struct {
	CreatedAt   time.Time
	UpdatedAt   time.Time
	ID          string
	Name        string
	Description string
	Attrs       attrs.Attributes
	Tags        []string
	Related     []string
	Popularity  int
	Kind        Kind
	Flags       Flags
}

// Searchable is the capability the ranker requires of an entity. Stores,
// vouchers, and products share ranking logic but differ in which fields feed
// the combined searchable text, so the ranker is generic over this interface
// rather than over concrete types.
type Searchable interface {
	ItemID() string
	ItemKind() Kind
	DisplayText() string
	SecondaryText() string
	SearchTags() []string
	RelatedNames() []string
	PopularityScore() int
	ItemFlags() Flags
	Attributes() attrs.Attributes
}

func (i *Item) ItemID() string               { return i.ID }
func (i *Item) ItemKind() Kind               { return i.Kind }
func (i *Item) DisplayText() string          { return i.Name }
func (i *Item) SecondaryText() string        { return i.Description }
func (i *Item) SearchTags() []string         { return i.Tags }
func (i *Item) RelatedNames() []string       { return i.Related }
func (i *Item) PopularityScore() int         { return i.Popularity }
func (i *Item) ItemFlags() Flags             { return i.Flags }
func (i *Item) Attributes() attrs.Attributes { return i.Attrs }

// ScoredItem pairs a catalog record with its relevance score. For non-empty
// queries the ranker guarantees Score > 0 for every item it returns;
// zero-score items are excluded, not ranked last. The empty-query browse
// ordering keeps zero scores, since items are ordered by business signals
// alone there.
type ScoredItem struct {
	Item  Searchable
	Score float64
}
