// internal/domain/catalog/meta.go
package catalog

import (
	"sort"
	"strconv"
)

// PriceRange is the catalog-wide min/max price, used to hint the price
// filter inputs.
type PriceRange struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

// Meta is the derived filter metadata the shop sidebar renders.
type Meta struct {
	Categories []string   `json:"categories"`
	Sizes      []string   `json:"sizes"`
	Colors     []string   `json:"colors"`
	PriceRange PriceRange `json:"price_range"`
	Sorts      []Sort     `json:"sorts"`
}

// Meta derives the filter metadata from the snapshot. The category list
// starts with All and the flag pseudo-categories; sizes are in natural
// order so "UK10" sorts after "UK9".
func (c *Catalog) Meta() Meta {
	meta := Meta{
		Categories: []string{CategoryAll, CategoryNew, CategoryBest},
		Sorts:      []Sort{SortNewest, SortPriceAsc, SortPriceDesc, SortRatingDesc},
	}

	seenCategory := map[string]bool{}
	seenSize := map[string]bool{}
	seenColor := map[string]bool{}

	for i, p := range c.products {
		if !seenCategory[p.Category] {
			seenCategory[p.Category] = true
			meta.Categories = append(meta.Categories, p.Category)
		}
		for _, s := range p.Sizes {
			if !seenSize[s] {
				seenSize[s] = true
				meta.Sizes = append(meta.Sizes, s)
			}
		}
		for _, col := range p.Colors {
			if !seenColor[col] {
				seenColor[col] = true
				meta.Colors = append(meta.Colors, col)
			}
		}
		if i == 0 || p.Price < meta.PriceRange.Min {
			meta.PriceRange.Min = p.Price
		}
		if p.Price > meta.PriceRange.Max {
			meta.PriceRange.Max = p.Price
		}
	}

	sort.Slice(meta.Sizes, func(i, j int) bool {
		return naturalLess(meta.Sizes[i], meta.Sizes[j])
	})

	return meta
}

// naturalLess compares strings treating digit runs as numbers, so
// "28" < "30" and "UK6" < "UK10".
func naturalLess(a, b string) bool {
	for a != "" && b != "" {
		aChunk, aNum, aRest := nextChunk(a)
		bChunk, bNum, bRest := nextChunk(b)

		if aNum >= 0 && bNum >= 0 {
			if aNum != bNum {
				return aNum < bNum
			}
		} else if aChunk != bChunk {
			return aChunk < bChunk
		}

		a, b = aRest, bRest
	}
	return len(a) < len(b)
}

// nextChunk splits off the leading run of digits or non-digits. The
// numeric value is -1 for non-digit chunks.
func nextChunk(s string) (chunk string, num int64, rest string) {
	isDigit := s[0] >= '0' && s[0] <= '9'
	i := 1
	for i < len(s) && (s[i] >= '0' && s[i] <= '9') == isDigit {
		i++
	}
	chunk, rest = s[:i], s[i:]
	num = -1
	if isDigit {
		num, _ = strconv.ParseInt(chunk, 10, 64)
	}
	return chunk, num, rest
}
