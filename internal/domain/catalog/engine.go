// internal/domain/catalog/engine.go
package catalog

import (
	"sort"
	"strings"
)

// DefaultPageSize is the number of products shown per listing page.
const DefaultPageSize = 8

// Page is one window of a filtered, sorted product list together with
// the pagination metadata the listing page renders.
type Page struct {
	Items      []Product `json:"items"`
	Page       int       `json:"page"`
	TotalPages int       `json:"total_pages"`
	Total      int       `json:"total"`
}

// FilterAndSort applies the query's predicates to the catalog and
// returns the matches in the requested order. Predicates are conjunctive
// across dimensions; within the size and color sets any overlap matches.
// The catalog itself is never mutated.
func FilterAndSort(c *Catalog, q Query) []Product {
	text := strings.ToLower(strings.TrimSpace(q.Text))

	out := make([]Product, 0, c.Len())
	for _, p := range c.Products() {
		if !matchesText(&p, text) {
			continue
		}
		if !matchesCategory(&p, q.Category) {
			continue
		}
		if q.MinPrice != nil && p.Price < *q.MinPrice {
			continue
		}
		if q.MaxPrice != nil && p.Price > *q.MaxPrice {
			continue
		}
		if len(q.Sizes) > 0 && !anySize(&p, q.Sizes) {
			continue
		}
		if len(q.Colors) > 0 && !anyColor(&p, q.Colors) {
			continue
		}
		out = append(out, p)
	}

	sortProducts(out, q.Sort)
	return out
}

// Paginate slices the list into the requested page. Out-of-range pages
// are clamped into [1, totalPages], never rejected; callers should
// compare the returned page against the requested one and update their
// canonical query state when it differs.
func Paginate(list []Product, page, pageSize int) Page {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	total := len(list)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page{
		Items:      list[start:end],
		Page:       page,
		TotalPages: totalPages,
		Total:      total,
	}
}

func matchesText(p *Product, text string) bool {
	if text == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), text) ||
		strings.Contains(strings.ToLower(p.Description), text) ||
		strings.Contains(strings.ToLower(p.Category), text)
}

func matchesCategory(p *Product, category string) bool {
	switch category {
	case "", CategoryAll:
		return true
	case CategoryNew:
		return p.IsNew
	case CategoryBest:
		return p.IsBestSeller
	}
	return p.Category == category
}

func anySize(p *Product, sizes []string) bool {
	for _, s := range sizes {
		if p.HasSize(s) {
			return true
		}
	}
	return false
}

func anyColor(p *Product, colors []string) bool {
	for _, c := range colors {
		if p.HasColor(c) {
			return true
		}
	}
	return false
}

func sortProducts(list []Product, order Sort) {
	switch order {
	case SortPriceAsc:
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Price < list[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Price > list[j].Price
		})
	case SortRatingDesc:
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Rating > list[j].Rating
		})
	default:
		// newest: isNew first, then higher id (more recently added)
		sort.SliceStable(list, func(i, j int) bool {
			if list[i].IsNew != list[j].IsNew {
				return list[i].IsNew
			}
			return list[i].ID > list[j].ID
		})
	}
}
