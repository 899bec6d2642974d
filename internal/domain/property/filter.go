package property

import (
	"sort"
	"strconv"
	"strings"
)

// Sort keys for listing results.
const (
	SortNewest    = "newest"
	SortPriceLow  = "price_low"
	SortPriceHigh = "price_high"
)

// Filters describes the listing predicates. The zero value matches
// everything. Predicates are AND-combined.
type Filters struct {
	Type        string
	Status      string
	MinPrice    *float64
	MaxPrice    *float64
	MinBedrooms *int
	City        string
}

// ParseFilters builds Filters from raw query values. Parse-or-skip:
// a numeric value that does not parse means "filter not applied", never
// an error. "all" and "" mean no constraint for type and status.
func ParseFilters(typ, status, minPrice, maxPrice, minBedrooms, city string) Filters {
	f := Filters{City: strings.TrimSpace(city)}

	if typ != "" && typ != "all" {
		f.Type = typ
	}
	if status != "" && status != "all" {
		f.Status = status
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(minPrice), 64); err == nil {
		f.MinPrice = &v
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(maxPrice), 64); err == nil {
		f.MaxPrice = &v
	}
	if v, err := strconv.Atoi(strings.TrimSpace(minBedrooms)); err == nil {
		f.MinBedrooms = &v
	}
	return f
}

func (f Filters) matches(p Property) bool {
	if f.Type != "" && p.Type != f.Type {
		return false
	}
	if f.Status != "" && p.Status != f.Status {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.MinBedrooms != nil && p.Bedrooms < *f.MinBedrooms {
		return false
	}
	if f.City != "" && !strings.Contains(strings.ToLower(p.City), strings.ToLower(f.City)) {
		return false
	}
	return true
}

// FilterAndSort applies the filters and sort order to a loaded listing.
// Pure and stable: the input slice is never mutated, and equal-keyed
// elements keep their relative order so repeated filtering does not
// reshuffle the list. SortNewest (and any unknown key) preserves the
// input order, which the repository already returns newest-first.
func FilterAndSort(properties []Property, filters Filters, sortKey string) []Property {
	result := make([]Property, 0, len(properties))
	for _, p := range properties {
		if filters.matches(p) {
			result = append(result, p)
		}
	}

	switch sortKey {
	case SortPriceLow:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price < result[j].Price })
	case SortPriceHigh:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price > result[j].Price })
	}

	return result
}
