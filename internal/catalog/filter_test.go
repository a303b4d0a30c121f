package catalog_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Isfahan/internal/catalog"
)

func testShelf() []catalog.Book {
	return []catalog.Book{
		{ID: "a", Title: "The Midnight Library", Author: "Matt Haig", Categories: []string{"Fiction"}, Price: decimal.RequireFromString("10"), Language: "English"},
		{ID: "b", Title: "ফেলুদা সমগ্র", Author: "সত্যজিৎ রায়", Categories: []string{"Bangla", "Mystery"}, Price: decimal.RequireFromString("20"), Language: "Bangla"},
		{ID: "c", Title: "Atomic Habits", Author: "James Clear", Categories: []string{"Self-Help"}, Price: decimal.RequireFromString("18.99"), Language: "English"},
	}
}

func ids(books []catalog.Book) []string {
	out := make([]string, 0, len(books))
	for _, b := range books {
		out = append(out, b.ID)
	}
	return out
}

func TestFilter_DefaultCriteriaIsIdentity(t *testing.T) {
	shelf := testShelf()

	got := catalog.Filter(shelf, catalog.Criteria{})

	if diff := cmp.Diff(shelf, got); diff != "" {
		t.Fatalf("filtered catalog differs (-want +got):\n%s", diff)
	}
}

func TestFilter_EmptyCatalog(t *testing.T) {
	got := catalog.Filter(nil, catalog.Criteria{Search: "library"})
	assert.Empty(t, got)
}

func TestFilter_SearchMatchesTitleOrAuthor(t *testing.T) {
	shelf := testShelf()

	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{"title substring", "midnight", []string{"a"}},
		{"author substring", "clear", []string{"c"}},
		{"case insensitive", "ATOMIC", []string{"c"}},
		{"bangla title", "ফেলুদা", []string{"b"}},
		{"no match", "zzz", []string{}},
		{"surrounding space trimmed", "  midnight  ", []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := catalog.Filter(shelf, catalog.Criteria{Search: tt.search})
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilter_FacetsAreORedAndANDedWithPrice(t *testing.T) {
	shelf := testShelf()

	// Both facets selected: a matches Fiction, b matches Bangla, but the
	// price cap excludes b.
	got := catalog.Filter(shelf, catalog.Criteria{
		Facets:   []string{"Fiction", "Bangla"},
		PriceMax: decimal.RequireFromString("15"),
	})

	assert.Equal(t, []string{"a"}, ids(got))
}

func TestFilter_LanguageTagCountsAsFacet(t *testing.T) {
	shelf := testShelf()

	got := catalog.Filter(shelf, catalog.Criteria{Facets: []string{"English"}})

	assert.Equal(t, []string{"a", "c"}, ids(got))
}

func TestFilter_PriceBoundsInclusive(t *testing.T) {
	shelf := testShelf()

	got := catalog.Filter(shelf, catalog.Criteria{
		PriceMin: decimal.RequireFromString("10"),
		PriceMax: decimal.RequireFromString("20"),
	})

	assert.Equal(t, []string{"a", "b", "c"}, ids(got))

	got = catalog.Filter(shelf, catalog.Criteria{
		PriceMin: decimal.RequireFromString("10.01"),
		PriceMax: decimal.RequireFromString("19.99"),
	})

	assert.Equal(t, []string{"c"}, ids(got))
}

func TestFilter_PreservesCatalogOrder(t *testing.T) {
	shelf := testShelf()

	got := catalog.Filter(shelf, catalog.Criteria{Facets: []string{"English", "Bangla"}})

	assert.Equal(t, []string{"a", "b", "c"}, ids(got))
}

func TestCollectFacets(t *testing.T) {
	facets := catalog.CollectFacets(testShelf())

	assert.Equal(t, []string{"Bangla", "Fiction", "Mystery", "Self-Help"}, facets.Categories)
	assert.Equal(t, []string{"Bangla", "English"}, facets.Languages)
}

func TestCollectFacets_SeedCatalog(t *testing.T) {
	store := catalog.NewMemStore()
	books, err := store.List(t.Context())
	require.NoError(t, err)

	facets := catalog.CollectFacets(books)

	assert.Contains(t, facets.Categories, "Bangla")
	assert.Contains(t, facets.Categories, "Science Fiction")
	assert.Equal(t, []string{"Bangla", "English"}, facets.Languages)
	assert.IsIncreasing(t, facets.Categories)
}
