package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Isfahan/internal/catalog"
)

func TestSnapshot_CarriesSchemaVersion(t *testing.T) {
	raw, err := encodeSnapshot([]LineItem{{
		Book:     catalog.Book{ID: "1", Title: "The Midnight Library", Price: decimal.RequireFromString("16.99")},
		Quantity: 2,
	}})
	require.NoError(t, err)

	assert.Contains(t, raw, `"schema_version":1`)
	assert.Contains(t, raw, `"quantity":2`)
}

func TestDecodeSnapshot_AcceptsLegacyUnversioned(t *testing.T) {
	// The browser-era snapshot had no schema_version field.
	raw := `{"items":[{"book":{"id":"9","title":"Klara and the Sun","price":"17.49"},"quantity":1}]}`

	items, err := decodeSnapshot(raw)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "9", items[0].Book.ID)
}

func TestDecodeSnapshot_RejectsUnknownVersion(t *testing.T) {
	_, err := decodeSnapshot(`{"schema_version":2,"items":[]}`)
	assert.Error(t, err)
}

func TestDecodeSnapshot_RejectsInvalidItems(t *testing.T) {
	_, err := decodeSnapshot(`{"items":[{"book":{"id":"x"},"quantity":0}]}`)
	assert.Error(t, err)

	_, err = decodeSnapshot(`{"items":[{"book":{"id":""},"quantity":3}]}`)
	assert.Error(t, err)
}

func TestSnapshot_EmptyCartRoundTrips(t *testing.T) {
	raw, err := encodeSnapshot(nil)
	require.NoError(t, err)

	items, err := decodeSnapshot(raw)
	require.NoError(t, err)
	assert.Empty(t, items)
}
