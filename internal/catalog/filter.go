// Package catalog implements the shop page's product filter and sort
// pipeline as a pure function of its inputs.
package catalog

import (
	"sort"
	"strings"

	"petbhai-backend/internal/domain"
)

type SortOption string

const (
	SortDefault    SortOption = "default"
	SortPriceAsc   SortOption = "price-asc"
	SortPriceDesc  SortOption = "price-desc"
	SortRatingDesc SortOption = "rating-desc"
)

// All disables the category or brand filter.
const All = "All"

type Params struct {
	Query    string
	Category string
	Brand    string
	Sort     SortOption
}

// Apply runs the pipeline in its fixed order: text search, category
// filter, brand filter, then sort. The filters are independent
// predicate narrowings; only the sort step determines final order, and
// it is stable so ties keep their relative position.
func Apply(products []domain.Product, brands []domain.Brand, p Params) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	brandID, brandKnown := resolveBrand(brands, p.Brand)

	for _, prod := range products {
		if !matchesQuery(prod, p.Query) {
			continue
		}
		if p.Category != "" && p.Category != All && prod.Category != p.Category {
			continue
		}
		if brandKnown && prod.BrandID != brandID {
			continue
		}
		out = append(out, prod)
	}

	switch p.Sort {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortRatingDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	}
	return out
}

// matchesQuery does a case-insensitive substring match over name,
// category and tags. An empty query keeps everything.
func matchesQuery(p domain.Product, query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.Name), query) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Category), query) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

// resolveBrand maps a brand name to its id. An empty name, "All", or a
// name with no matching brand all disable the brand filter.
func resolveBrand(brands []domain.Brand, name string) (int, bool) {
	if name == "" || name == All {
		return 0, false
	}
	for _, b := range brands {
		if strings.EqualFold(b.Name, name) {
			return b.ID, true
		}
	}
	return 0, false
}
