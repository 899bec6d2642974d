package property

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fixtures() []Property {
	return []Property{
		{ID: 3, Title: "Seaside Villa", Type: TypeVilla, Status: StatusForRent, Price: 450000, Bedrooms: 5, City: "Miami"},
		{ID: 2, Title: "Downtown Apartment", Type: TypeApartment, Status: StatusForSale, Price: 200000, Bedrooms: 3, City: "Denver"},
		{ID: 1, Title: "Family House", Type: TypeHouse, Status: StatusForSale, Price: 180000, Bedrooms: 2, City: "Austin"},
	}
}

func ids(props []Property) []int64 {
	out := make([]int64, 0, len(props))
	for _, p := range props {
		out = append(out, p.ID)
	}
	return out
}

func TestFilterAndSort_NoFilters_SortsByPrice(t *testing.T) {
	input := []Property{
		{ID: 1, Price: 300000},
		{ID: 2, Price: 150000},
		{ID: 3, Price: 450000},
	}

	low := FilterAndSort(input, Filters{}, SortPriceLow)
	assert.Equal(t, []int64{2, 1, 3}, ids(low))

	high := FilterAndSort(input, Filters{}, SortPriceHigh)
	assert.Equal(t, []int64{3, 1, 2}, ids(high))

	// No elements dropped or duplicated.
	assert.Len(t, low, len(input))
	assert.Len(t, high, len(input))
}

func TestFilterAndSort_NewestPreservesInputOrder(t *testing.T) {
	input := fixtures()
	result := FilterAndSort(input, Filters{}, SortNewest)
	assert.Equal(t, []int64{3, 2, 1}, ids(result))

	// Unknown sort keys behave like newest.
	result = FilterAndSort(input, Filters{}, "sideways")
	assert.Equal(t, []int64{3, 2, 1}, ids(result))
}

func TestFilterAndSort_TypeAndBedrooms(t *testing.T) {
	minBeds := 2
	input := []Property{
		{ID: 1, Type: TypeApartment, Price: 200000, Bedrooms: 3},
		{ID: 2, Type: TypeHouse, Price: 180000, Bedrooms: 2},
	}

	result := FilterAndSort(input, Filters{Type: TypeApartment, MinBedrooms: &minBeds}, SortNewest)
	assert.Equal(t, []int64{1}, ids(result))
}

func TestFilterAndSort_PriceRange(t *testing.T) {
	min, max := 190000.0, 460000.0
	result := FilterAndSort(fixtures(), Filters{MinPrice: &min, MaxPrice: &max}, SortPriceLow)
	assert.Equal(t, []int64{2, 3}, ids(result))
}

func TestFilterAndSort_CitySubstringCaseInsensitive(t *testing.T) {
	result := FilterAndSort(fixtures(), Filters{City: "mIaM"}, SortNewest)
	assert.Equal(t, []int64{3}, ids(result))
}

func TestFilterAndSort_Idempotent(t *testing.T) {
	f := Filters{Status: StatusForSale}
	once := FilterAndSort(fixtures(), f, SortPriceLow)
	twice := FilterAndSort(once, f, SortPriceLow)
	assert.Equal(t, once, twice)
}

func TestFilterAndSort_StableOnEqualPrices(t *testing.T) {
	input := []Property{
		{ID: 1, Price: 100},
		{ID: 2, Price: 100},
		{ID: 3, Price: 100},
	}
	result := FilterAndSort(input, Filters{}, SortPriceLow)
	assert.Equal(t, []int64{1, 2, 3}, ids(result))
}

func TestFilterAndSort_DoesNotMutateInput(t *testing.T) {
	input := fixtures()
	_ = FilterAndSort(input, Filters{}, SortPriceLow)
	assert.Equal(t, []int64{3, 2, 1}, ids(input))
}

func TestParseFilters_ParseOrSkip(t *testing.T) {
	f := ParseFilters("all", "", "abc", "450000", "not-a-number", "")

	assert.Empty(t, f.Type)
	assert.Empty(t, f.Status)
	assert.Nil(t, f.MinPrice, "unparseable min price is skipped, not rejected")
	assert.Nil(t, f.MinBedrooms)
	if assert.NotNil(t, f.MaxPrice) {
		assert.Equal(t, 450000.0, *f.MaxPrice)
	}
}

func TestParseFilters_Values(t *testing.T) {
	f := ParseFilters(TypeHouse, StatusSold, "100", "200", "3", "  Austin ")

	assert.Equal(t, TypeHouse, f.Type)
	assert.Equal(t, StatusSold, f.Status)
	assert.Equal(t, 100.0, *f.MinPrice)
	assert.Equal(t, 200.0, *f.MaxPrice)
	assert.Equal(t, 3, *f.MinBedrooms)
	assert.Equal(t, "Austin", f.City)
}
