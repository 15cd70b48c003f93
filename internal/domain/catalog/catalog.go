// internal/domain/catalog/catalog.go
package catalog

// Catalog is an immutable snapshot of the product table, built once at
// process start. Every query and pricing call works against the same
// snapshot, so all call sites agree on what a product costs.
type Catalog struct {
	products []Product
	byID     map[uint]*Product
}

// New builds a catalog snapshot from a product list. The slice is
// copied; later mutation of the input does not affect the snapshot.
func New(products []Product) *Catalog {
	c := &Catalog{
		products: make([]Product, len(products)),
		byID:     make(map[uint]*Product, len(products)),
	}
	copy(c.products, products)
	for i := range c.products {
		c.byID[c.products[i].ID] = &c.products[i]
	}
	return c
}

// Products returns the full product list in catalog order. Callers must
// treat the returned slice as read-only.
func (c *Catalog) Products() []Product {
	return c.products
}

// ByID resolves a product id, returning nil for unknown ids.
func (c *Catalog) ByID(id uint) *Product {
	return c.byID[id]
}

// Len returns the number of products in the snapshot.
func (c *Catalog) Len() int {
	return len(c.products)
}

// Related returns up to limit products sharing the given product's
// category, excluding the product itself.
func (c *Catalog) Related(p *Product, limit int) []Product {
	related := make([]Product, 0, limit)
	for _, cand := range c.products {
		if cand.ID == p.ID || cand.Category != p.Category {
			continue
		}
		related = append(related, cand)
		if len(related) == limit {
			break
		}
	}
	return related
}
