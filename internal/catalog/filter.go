package catalog

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Criteria is the storefront's ephemeral filter state. The zero value
// matches every book. Facets holds category labels and/or language tags,
// selected from one combined multi-select.
type Criteria struct {
	Search   string
	Facets   []string
	PriceMin decimal.Decimal

	// PriceMax is inclusive; the zero value means no upper bound.
	PriceMax decimal.Decimal
}

// Filter returns the books matching every active criterion, in catalog
// order. Facets combine with OR among themselves and with AND against the
// other criteria. Pure: no side effects, input slice untouched.
func Filter(books []Book, c Criteria) []Book {
	out := make([]Book, 0, len(books))
	for _, b := range books {
		if matches(b, c) {
			out = append(out, b)
		}
	}
	return out
}

func matches(b Book, c Criteria) bool {
	if q := strings.TrimSpace(c.Search); q != "" {
		q = strings.ToLower(q)
		if !strings.Contains(strings.ToLower(b.Title), q) &&
			!strings.Contains(strings.ToLower(b.Author), q) {
			return false
		}
	}

	if len(c.Facets) > 0 && !anyFacet(b, c.Facets) {
		return false
	}

	if b.Price.Cmp(c.PriceMin) < 0 {
		return false
	}
	if !c.PriceMax.IsZero() && b.Price.Cmp(c.PriceMax) > 0 {
		return false
	}

	return true
}

func anyFacet(b Book, facets []string) bool {
	for _, f := range facets {
		if b.HasCategory(f) {
			return true
		}
	}
	return false
}

// Facets are the distinct category and language labels across the
// catalog, each sorted lexicographically.
type Facets struct {
	Categories []string `json:"categories"`
	Languages  []string `json:"languages"`
}

func CollectFacets(books []Book) Facets {
	cats := map[string]struct{}{}
	langs := map[string]struct{}{}
	for _, b := range books {
		for _, c := range b.Categories {
			cats[c] = struct{}{}
		}
		if b.Language != "" {
			langs[b.Language] = struct{}{}
		}
	}

	return Facets{
		Categories: sortedKeys(cats),
		Languages:  sortedKeys(langs),
	}
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
