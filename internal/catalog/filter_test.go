package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"petbhai-backend/internal/domain"
)

var testBrands = []domain.Brand{
	{ID: 1, Name: "Me-O"},
	{ID: 2, Name: "Pedigree"},
}

func fixture() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "Me-O Tuna", Category: domain.CategoryCatFood, BrandID: 1, Price: 500, Rating: 4.5, Tags: []string{"fish", "adult"}},
		{ID: 2, Name: "Pedigree Chicken", Category: domain.CategoryDogFood, BrandID: 2, Price: 500, Rating: 4.2},
		{ID: 3, Name: "Squeaky Bone", Category: domain.CategoryToys, BrandID: 2, Price: 100, Rating: 3.9},
	}
}

func ids(products []domain.Product) []int {
	out := make([]int, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestEmptyParamsKeepEverythingInOrder(t *testing.T) {
	got := Apply(fixture(), testBrands, Params{})
	assert.Equal(t, []int{1, 2, 3}, ids(got))
}

func TestCategoryFilterNarrows(t *testing.T) {
	products := []domain.Product{
		{ID: 1, Name: "Me-O Tuna", Category: domain.CategoryCatFood},
		{ID: 2, Name: "Pedigree", Category: domain.CategoryDogFood},
	}

	got := Apply(products, nil, Params{Category: domain.CategoryCatFood})

	assert.Equal(t, []int{1}, ids(got))
}

func TestQueryMatchesNameCategoryAndTags(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []int
	}{
		{"name substring, case-insensitive", "tuna", []int{1}},
		{"category substring", "dog", []int{2}},
		{"tag substring", "fish", []int{1}},
		{"no match", "hamster wheel", []int{}},
		{"empty keeps all", "", []int{1, 2, 3}},
		{"whitespace only keeps all", "   ", []int{1, 2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(fixture(), testBrands, Params{Query: tt.query})
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestBrandFilter(t *testing.T) {
	got := Apply(fixture(), testBrands, Params{Brand: "Pedigree"})
	assert.Equal(t, []int{2, 3}, ids(got))

	// unresolvable brand name disables the filter rather than matching
	// nothing
	got = Apply(fixture(), testBrands, Params{Brand: "Whiskers Inc"})
	assert.Equal(t, []int{1, 2, 3}, ids(got))

	got = Apply(fixture(), testBrands, Params{Brand: All})
	assert.Equal(t, []int{1, 2, 3}, ids(got))
}

func TestCategoryAndBrandFiltersCommute(t *testing.T) {
	products := fixture()

	catFirst := Apply(products, testBrands, Params{Category: domain.CategoryDogFood})
	catThenBrand := Apply(catFirst, testBrands, Params{Brand: "Pedigree"})

	brandFirst := Apply(products, testBrands, Params{Brand: "Pedigree"})
	brandThenCat := Apply(brandFirst, testBrands, Params{Category: domain.CategoryDogFood})

	assert.Equal(t, ids(catThenBrand), ids(brandThenCat))
}

func TestSortPriceAscendingIsStable(t *testing.T) {
	products := []domain.Product{
		{ID: 1, Price: 500},
		{ID: 2, Price: 500},
		{ID: 3, Price: 100},
	}

	got := Apply(products, nil, Params{Sort: SortPriceAsc})

	// cheapest first; the two price-500 items keep their original
	// relative order
	assert.Equal(t, []int{3, 1, 2}, ids(got))
}

func TestSortOptions(t *testing.T) {
	tests := []struct {
		sort SortOption
		want []int
	}{
		{SortDefault, []int{1, 2, 3}},
		{SortPriceAsc, []int{3, 1, 2}},
		{SortPriceDesc, []int{1, 2, 3}},
		{SortRatingDesc, []int{1, 2, 3}},
	}
	for _, tt := range tests {
		t.Run(string(tt.sort), func(t *testing.T) {
			got := Apply(fixture(), testBrands, Params{Sort: tt.sort})
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	products := []domain.Product{
		{ID: 1, Price: 900},
		{ID: 2, Price: 100},
	}

	_ = Apply(products, nil, Params{Sort: SortPriceAsc})

	assert.Equal(t, []int{1, 2}, ids(products))
}
