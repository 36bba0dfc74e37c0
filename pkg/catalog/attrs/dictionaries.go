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

package attrs

// Static dictionaries for attribute extraction. All tables are read-only
// after package initialization and safe to share across goroutines.
//
// Ordering is significant everywhere: extraction is first-match-wins, so
// within each table more specific entries must precede more general ones
// ("iphone 15 pro max" before "iphone 15 pro", "space gray" before "gray").

// brandEntry maps a canonical brand name to the aliases that identify it in
// free text. Product-line names (ipad, galaxy, pixel) count as brand
// evidence even when the manufacturer is never spelled out.
type brandEntry struct {
	Canonical string
	Aliases   []string
}

var brandTable = []brandEntry{
	{Canonical: "Apple", Aliases: []string{
		"apple", "iphone", "ipad", "macbook", "imac", "airpods", "apple watch",
	}},
	{Canonical: "Samsung", Aliases: []string{
		"samsung", "galaxy",
	}},
	{Canonical: "Google", Aliases: []string{
		"google", "pixel", "nest", "chromecast",
	}},
	{Canonical: "Sony", Aliases: []string{
		"sony", "playstation", "bravia", "ps5", "ps4",
	}},
	{Canonical: "Microsoft", Aliases: []string{
		"microsoft", "xbox", "surface",
	}},
	{Canonical: "Huawei", Aliases: []string{
		"huawei", "matebook", "mate pro",
	}},
	{Canonical: "Xiaomi", Aliases: []string{
		"xiaomi", "redmi", "poco",
	}},
	{Canonical: "OnePlus", Aliases: []string{
		"oneplus", "one plus",
	}},
	{Canonical: "Lenovo", Aliases: []string{
		"lenovo", "thinkpad", "ideapad",
	}},
	{Canonical: "Dell", Aliases: []string{
		"dell", "alienware", "inspiron", "xps",
	}},
	{Canonical: "HP", Aliases: []string{
		"hewlett packard", "hp pavilion", "hp envy", "hp spectre", "hp omen", "hp",
	}},
	{Canonical: "Asus", Aliases: []string{
		"asus", "zenbook", "vivobook", "rog",
	}},
	{Canonical: "LG", Aliases: []string{
		"lg gram", "lg oled", "lg",
	}},
	{Canonical: "Nike", Aliases: []string{
		"nike", "air jordan", "air max", "air force 1",
	}},
	{Canonical: "Adidas", Aliases: []string{
		"adidas", "ultraboost", "stan smith", "superstar",
	}},
	{Canonical: "Dyson", Aliases: []string{
		"dyson", "airwrap",
	}},
	{Canonical: "Bose", Aliases: []string{
		"bose", "quietcomfort",
	}},
	{Canonical: "JBL", Aliases: []string{
		"jbl",
	}},
	{Canonical: "Nintendo", Aliases: []string{
		"nintendo", "switch oled",
	}},
}

// modelEntry maps a canonical model name to its aliases, including common
// compact spellings ("ip15pro").
type modelEntry struct {
	Canonical string
	Aliases   []string
}

// modelTable is keyed by canonical brand. Model extraction only runs after
// brand resolution, so an unresolved brand skips this table entirely.
var modelTable = map[string][]modelEntry{
	"Apple": {
		{Canonical: "iPhone 15 Pro Max", Aliases: []string{"iphone 15 pro max", "ip15promax", "ip15pm"}},
		{Canonical: "iPhone 15 Pro", Aliases: []string{"iphone 15 pro", "ip15pro"}},
		{Canonical: "iPhone 15", Aliases: []string{"iphone 15", "ip15"}},
		{Canonical: "iPhone 14 Pro", Aliases: []string{"iphone 14 pro", "ip14pro"}},
		{Canonical: "iPhone 14", Aliases: []string{"iphone 14", "ip14"}},
		{Canonical: "iPhone SE", Aliases: []string{"iphone se"}},
		{Canonical: "MacBook Pro", Aliases: []string{"macbook pro", "mbp"}},
		{Canonical: "MacBook Air", Aliases: []string{"macbook air", "mba"}},
		{Canonical: "iPad Pro", Aliases: []string{"ipad pro"}},
		{Canonical: "iPad Air", Aliases: []string{"ipad air"}},
		{Canonical: "iPad Mini", Aliases: []string{"ipad mini"}},
		{Canonical: "Apple Watch Ultra", Aliases: []string{"apple watch ultra", "watch ultra"}},
		{Canonical: "AirPods Pro", Aliases: []string{"airpods pro"}},
		{Canonical: "AirPods Max", Aliases: []string{"airpods max"}},
	},
	"Samsung": {
		{Canonical: "Galaxy S24 Ultra", Aliases: []string{"galaxy s24 ultra", "s24 ultra", "s24u"}},
		{Canonical: "Galaxy S24", Aliases: []string{"galaxy s24", "s24"}},
		{Canonical: "Galaxy S23 Ultra", Aliases: []string{"galaxy s23 ultra", "s23 ultra"}},
		{Canonical: "Galaxy S23", Aliases: []string{"galaxy s23", "s23"}},
		{Canonical: "Galaxy Z Fold", Aliases: []string{"galaxy z fold", "z fold", "zfold"}},
		{Canonical: "Galaxy Z Flip", Aliases: []string{"galaxy z flip", "z flip", "zflip"}},
		{Canonical: "Galaxy Tab S9", Aliases: []string{"galaxy tab s9", "tab s9"}},
		{Canonical: "Galaxy Watch", Aliases: []string{"galaxy watch"}},
		{Canonical: "Galaxy Buds", Aliases: []string{"galaxy buds"}},
	},
	"Google": {
		{Canonical: "Pixel 8 Pro", Aliases: []string{"pixel 8 pro"}},
		{Canonical: "Pixel 8", Aliases: []string{"pixel 8"}},
		{Canonical: "Pixel 7a", Aliases: []string{"pixel 7a"}},
		{Canonical: "Pixel 7", Aliases: []string{"pixel 7"}},
		{Canonical: "Pixel Watch", Aliases: []string{"pixel watch"}},
		{Canonical: "Pixel Buds", Aliases: []string{"pixel buds"}},
	},
	"Sony": {
		{Canonical: "PlayStation 5", Aliases: []string{"playstation 5", "ps5"}},
		{Canonical: "PlayStation 4", Aliases: []string{"playstation 4", "ps4"}},
		{Canonical: "WH-1000XM5", Aliases: []string{"wh 1000xm5", "1000xm5", "xm5"}},
		{Canonical: "WH-1000XM4", Aliases: []string{"wh 1000xm4", "1000xm4", "xm4"}},
		{Canonical: "Bravia XR", Aliases: []string{"bravia xr", "bravia"}},
	},
	"Microsoft": {
		{Canonical: "Xbox Series X", Aliases: []string{"xbox series x", "series x"}},
		{Canonical: "Xbox Series S", Aliases: []string{"xbox series s", "series s"}},
		{Canonical: "Surface Pro", Aliases: []string{"surface pro"}},
		{Canonical: "Surface Laptop", Aliases: []string{"surface laptop"}},
	},
	"Nintendo": {
		{Canonical: "Switch OLED", Aliases: []string{"switch oled"}},
		{Canonical: "Switch Lite", Aliases: []string{"switch lite"}},
		{Canonical: "Switch", Aliases: []string{"switch"}},
	},
	"OnePlus": {
		{Canonical: "OnePlus 12", Aliases: []string{"oneplus 12", "one plus 12"}},
		{Canonical: "OnePlus 11", Aliases: []string{"oneplus 11", "one plus 11"}},
	},
	"Nike": {
		{Canonical: "Air Jordan 1", Aliases: []string{"air jordan 1", "jordan 1"}},
		{Canonical: "Air Max 90", Aliases: []string{"air max 90"}},
		{Canonical: "Air Force 1", Aliases: []string{"air force 1", "af1"}},
	},
	"Adidas": {
		{Canonical: "Ultraboost", Aliases: []string{"ultraboost", "ultra boost"}},
		{Canonical: "Stan Smith", Aliases: []string{"stan smith"}},
		{Canonical: "Superstar", Aliases: []string{"superstar"}},
	},
}

// colorTable lists recognized product colors, multi-word names first so
// "space gray" wins over "gray". Values are stored normalized; matches are
// title-cased for display.
var colorTable = []string{
	"space gray", "space grey", "space black", "midnight green", "midnight blue",
	"product red", "rose gold", "pacific blue", "sierra blue", "alpine green",
	"deep purple", "natural titanium", "blue titanium", "white titanium",
	"black titanium", "phantom black", "phantom silver", "cream",
	"graphite", "midnight", "starlight", "lavender",
	"black", "white", "blue", "red", "green", "yellow", "purple", "pink",
	"gray", "grey", "silver", "gold", "orange", "brown", "beige", "navy",
	"titanium", "bronze", "coral", "mint",
}

// garmentSizes maps garment-size tokens to their normalized uppercase form.
// Multi-word tokens are matched before single tokens by the extractor.
var garmentSizes = []struct {
	Token      string
	Normalized string
}{
	{"extra extra large", "2XL"},
	{"extra large", "XL"},
	{"extra small", "XS"},
	{"3xl", "3XL"},
	{"2xl", "2XL"},
	{"xxl", "2XL"},
	{"xl", "XL"},
	{"xs", "XS"},
	{"small", "S"},
	{"medium", "M"},
	{"large", "L"},
}

// fashionCategories are category hints that bias size extraction toward
// garment tokens over numeric dimensions.
var fashionCategories = map[string]bool{
	"fashion":  true,
	"clothing": true,
	"apparel":  true,
	"shoes":    true,
}

// BrandForAlias resolves a single word or phrase against the brand alias
// dictionary. Query expansion uses this to pull sibling aliases into the
// term set when a query word names a product line.
func BrandForAlias(alias string) (string, bool) {
	for _, entry := range brandTable {
		for _, a := range entry.Aliases {
			if a == alias {
				return entry.Canonical, true
			}
		}
	}
	return "", false
}

// AliasesForBrand returns the alias list of a canonical brand, or nil when
// the brand is unknown. The returned slice is shared; callers must not
// mutate it.
func AliasesForBrand(brand string) []string {
	for _, entry := range brandTable {
		if entry.Canonical == brand {
			return entry.Aliases
		}
	}
	return nil
}
