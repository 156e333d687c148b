package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSort_Prefixes(t *testing.T) {
	orders := ParseSort([]string{"+title", "-releaseDate.year"})

	assert.Len(t, orders, 2)
	assert.Equal(t, Order{Field: "title", Desc: false}, orders[0])
	assert.Equal(t, Order{Field: "releaseDate.year", Desc: true}, orders[1])
}

func TestParseSort_DropsMalformedTokens(t *testing.T) {
	// No direction prefix, bare prefixes and empty tokens all drop
	orders := ParseSort([]string{"", "+", "-", "budget", "-rating"})

	assert.Len(t, orders, 1)
	assert.Equal(t, Order{Field: "rating", Desc: true}, orders[0])
}

func TestParseSort_PreservesOrderAndDuplicates(t *testing.T) {
	orders := ParseSort([]string{"-name", "+name"})

	assert.Len(t, orders, 2)
	assert.Equal(t, "name", orders[0].Field)
	assert.True(t, orders[0].Desc)
	assert.Equal(t, "name", orders[1].Field)
	assert.False(t, orders[1].Desc)
}

func TestParseSort_Empty(t *testing.T) {
	assert.Empty(t, ParseSort(nil))
	assert.Empty(t, ParseSort([]string{}))
}
