// internal/domain/catalog/meta_test.go
package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetaDerivesFilterVocabulary(t *testing.T) {
	cat := New([]Product{
		{ID: 1, Name: "Tee", Price: 999, Category: "T-Shirts", Sizes: []string{"S", "M"}, Colors: []string{"Black"}},
		{ID: 2, Name: "Hoodie", Price: 2499, Category: "Hoodies", Sizes: []string{"M", "L"}, Colors: []string{"Grey", "Black"}},
		{ID: 3, Name: "Tee Two", Price: 1199, Category: "T-Shirts", Sizes: []string{"S"}, Colors: []string{"White"}},
	})

	meta := cat.Meta()

	assert.Equal(t, []string{CategoryAll, CategoryNew, CategoryBest, "T-Shirts", "Hoodies"}, meta.Categories)
	assert.Equal(t, []string{"L", "M", "S"}, meta.Sizes)
	assert.ElementsMatch(t, []string{"Black", "Grey", "White"}, meta.Colors)
	assert.Equal(t, PriceRange{Min: 999, Max: 2499}, meta.PriceRange)
	assert.Equal(t, []Sort{SortNewest, SortPriceAsc, SortPriceDesc, SortRatingDesc}, meta.Sorts)
}

func TestMetaSizesSortNaturally(t *testing.T) {
	cat := New([]Product{
		{ID: 1, Name: "Jeans", Price: 1999, Category: "Bottoms", Sizes: []string{"32", "28", "30"}},
		{ID: 2, Name: "Sneakers", Price: 3499, Category: "Footwear", Sizes: []string{"UK10", "UK6", "UK9"}},
	})

	meta := cat.Meta()

	// "UK10" comes after "UK9"; a plain string sort would flip them.
	assert.Equal(t, []string{"28", "30", "32", "UK6", "UK9", "UK10"}, meta.Sizes)
}

func TestNaturalLess(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"28", "30", true},
		{"UK6", "UK10", true},
		{"UK10", "UK9", false},
		{"M", "S", true},
		{"S", "S", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, naturalLess(tt.a, tt.b), "%q < %q", tt.a, tt.b)
	}
}

func TestMetaEmptyCatalog(t *testing.T) {
	meta := New(nil).Meta()

	assert.Equal(t, []string{CategoryAll, CategoryNew, CategoryBest}, meta.Categories)
	assert.Empty(t, meta.Sizes)
	assert.Equal(t, PriceRange{}, meta.PriceRange)
}
