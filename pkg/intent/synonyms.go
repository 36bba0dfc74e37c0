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

package intent

// Static expansion tables, read-only after initialization.

// synonymTable maps a query word to the terms it expands into. Expansion is
// one-way: searching "phone" should recall "smartphone" listings, but the
// reverse entries are listed explicitly where wanted.
var synonymTable = map[string][]string{
	"phone":      {"smartphone", "mobile", "cellphone"},
	"smartphone": {"phone", "mobile"},
	"mobile":     {"phone", "smartphone"},
	"laptop":     {"notebook", "ultrabook", "computer"},
	"notebook":   {"laptop"},
	"tv":         {"television", "smart tv"},
	"television": {"tv"},
	"headphones": {"earphones", "earbuds", "headset"},
	"earbuds":    {"headphones", "earphones"},
	"tablet":     {"ipad", "slate"},
	"console":    {"gaming console", "games console"},
	"watch":      {"smartwatch", "wristwatch"},
	"shoes":      {"sneakers", "trainers", "footwear"},
	"sneakers":   {"shoes", "trainers"},
	"voucher":    {"coupon", "promo code", "discount code"},
	"coupon":     {"voucher", "promo code", "discount code"},
	"discount":   {"deal", "offer", "sale"},
	"deal":       {"discount", "offer", "sale"},
	"cheap":      {"affordable", "budget"},
	"vacuum":     {"hoover", "vacuum cleaner"},
	"fridge":     {"refrigerator"},
	"perfume":    {"fragrance", "cologne"},
}

// categoryEntry maps a category to the keywords that signal it. First
// category whose keyword list intersects the query wins, so more specific
// categories come first.
type categoryEntry struct {
	Name     string
	Keywords []string
}

var categoryTable = []categoryEntry{
	{Name: "electronics", Keywords: []string{
		"phone", "smartphone", "laptop", "notebook", "tablet", "tv",
		"television", "headphones", "earbuds", "console", "camera",
		"monitor", "charger", "smartwatch",
	}},
	{Name: "fashion", Keywords: []string{
		"shoes", "sneakers", "trainers", "shirt", "dress", "jeans",
		"jacket", "hoodie", "bag", "sunglasses",
	}},
	{Name: "beauty", Keywords: []string{
		"perfume", "fragrance", "makeup", "skincare", "shampoo", "lipstick",
	}},
	{Name: "home", Keywords: []string{
		"vacuum", "fridge", "refrigerator", "kettle", "sofa", "mattress",
		"lamp", "cookware",
	}},
	{Name: "grocery", Keywords: []string{
		"grocery", "groceries", "coffee", "snacks", "drinks",
	}},
	{Name: "travel", Keywords: []string{
		"flight", "flights", "hotel", "hotels", "holiday", "luggage",
	}},
}
