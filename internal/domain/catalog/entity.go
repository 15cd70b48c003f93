// internal/domain/catalog/entity.go
package catalog

// Product represents one catalog entry. The catalog is read-only at
// runtime: rows are seeded once and served from an in-memory snapshot.
type Product struct {
	ID           uint     `gorm:"primaryKey" json:"id"`
	Name         string   `gorm:"not null;size:255" json:"name"`
	Price        int64    `gorm:"not null" json:"price"` // Whole rupees, no minor units
	Category     string   `gorm:"not null;size:100;index" json:"category"`
	Description  string   `gorm:"type:text" json:"description"`
	Image        string   `gorm:"size:500" json:"image"`
	Sizes        []string `gorm:"serializer:json" json:"sizes"`
	Colors       []string `gorm:"serializer:json" json:"colors"`
	Rating       float64  `gorm:"not null" json:"rating"`
	IsNew        bool     `gorm:"default:false" json:"is_new"`
	IsBestSeller bool     `gorm:"default:false" json:"is_best_seller"`
}

// TableName overrides the table name
func (Product) TableName() string {
	return "products"
}

// HasSize reports whether the product is offered in the given size label.
func (p *Product) HasSize(size string) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

// HasColor reports whether the product is offered in the given color label.
func (p *Product) HasColor(color string) bool {
	for _, c := range p.Colors {
		if c == color {
			return true
		}
	}
	return false
}
