// internal/domain/catalog/query.go
package catalog

import (
	"net/url"
	"strconv"
	"strings"
)

// Sort identifies one of the supported result orderings.
type Sort string

const (
	SortNewest     Sort = "newest"
	SortPriceAsc   Sort = "price_asc"
	SortPriceDesc  Sort = "price_desc"
	SortRatingDesc Sort = "rating_desc"
)

// Pseudo-categories filter on product flags instead of the category field.
const (
	CategoryAll  = "All"
	CategoryNew  = "New"
	CategoryBest = "Best"
)

// Query holds one listing request: free-text search, category, sort
// order, page and the optional filter dimensions. A Query is rebuilt
// from the request parameters on every call and never persisted.
type Query struct {
	Text     string   `json:"text,omitempty"`
	Category string   `json:"category"`
	Sort     Sort     `json:"sort"`
	Page     int      `json:"page"`
	MinPrice *int64   `json:"min_price,omitempty"`
	MaxPrice *int64   `json:"max_price,omitempty"`
	Sizes    []string `json:"sizes,omitempty"`
	Colors   []string `json:"colors,omitempty"`
}

// DefaultQuery returns the query an unfiltered listing page uses.
func DefaultQuery() Query {
	return Query{
		Category: CategoryAll,
		Sort:     SortNewest,
		Page:     1,
	}
}

// ParseQuery builds a Query from flat request parameters. Malformed
// values degrade to their defaults: an unknown sort falls back to
// newest, a bad page to 1 and non-numeric price bounds are ignored.
func ParseQuery(params url.Values) Query {
	q := DefaultQuery()

	q.Text = strings.TrimSpace(params.Get("q"))

	if category := strings.TrimSpace(params.Get("category")); category != "" {
		q.Category = category
	}

	switch Sort(params.Get("sort")) {
	case SortPriceAsc:
		q.Sort = SortPriceAsc
	case SortPriceDesc:
		q.Sort = SortPriceDesc
	case SortRatingDesc:
		q.Sort = SortRatingDesc
	}

	if page, err := strconv.Atoi(params.Get("page")); err == nil && page > 1 {
		q.Page = page
	}

	q.MinPrice = parsePriceBound(params.Get("min"))
	q.MaxPrice = parsePriceBound(params.Get("max"))

	q.Sizes = splitList(params.Get("size"))
	q.Colors = splitList(params.Get("color"))

	return q
}

// Values encodes the query back to flat parameters, omitting defaults
// so that equivalent queries share one canonical representation.
func (q Query) Values() url.Values {
	params := url.Values{}

	if q.Text != "" {
		params.Set("q", q.Text)
	}
	if q.Category != "" && q.Category != CategoryAll {
		params.Set("category", q.Category)
	}
	if q.Sort != "" && q.Sort != SortNewest {
		params.Set("sort", string(q.Sort))
	}
	if q.Page > 1 {
		params.Set("page", strconv.Itoa(q.Page))
	}
	if q.MinPrice != nil {
		params.Set("min", strconv.FormatInt(*q.MinPrice, 10))
	}
	if q.MaxPrice != nil {
		params.Set("max", strconv.FormatInt(*q.MaxPrice, 10))
	}
	if len(q.Sizes) > 0 {
		params.Set("size", strings.Join(q.Sizes, ","))
	}
	if len(q.Colors) > 0 {
		params.Set("color", strings.Join(q.Colors, ","))
	}

	return params
}

// Encode returns the canonical query string for shareable listing links.
func (q Query) Encode() string {
	return q.Values().Encode()
}

func parsePriceBound(raw string) *int64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value < 0 {
		return nil
	}
	return &value
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
