// internal/interfaces/http/handlers/catalog.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/your-org/urbanwear-backend/internal/domain/catalog"
)

// CatalogHandler serves the product listing, product detail and
// catalog metadata endpoints.
type CatalogHandler struct {
	catalog  *catalog.Catalog
	pageSize int
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(cat *catalog.Catalog, pageSize int) *CatalogHandler {
	if pageSize < 1 {
		pageSize = catalog.DefaultPageSize
	}
	return &CatalogHandler{
		catalog:  cat,
		pageSize: pageSize,
	}
}

// GetProducts handles GET /products
// Filters, sorts and paginates the catalog based on query parameters.
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	query := catalog.ParseQuery(c.Request.URL.Query())

	matched := catalog.FilterAndSort(h.catalog, query)
	page := catalog.Paginate(matched, query.Page, h.pageSize)

	// Echo back the canonical query so clients can sync their URL state
	// after an out-of-range page was clamped.
	query.Page = page.Page

	c.JSON(http.StatusOK, gin.H{
		"message": "Products retrieved successfully",
		"data": gin.H{
			"products":    page.Items,
			"page":        page.Page,
			"total_pages": page.TotalPages,
			"total":       page.Total,
			"query":       query.Encode(),
		},
	})
}

// GetProduct handles GET /products/:id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	product := h.catalog.ByID(uint(id))
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product retrieved successfully",
		"data": gin.H{
			"product": product,
			"related": h.catalog.Related(product, 4),
		},
	})
}

// GetCatalogMeta handles GET /products/meta
// Returns the filter vocabulary derived from the catalog.
func (h *CatalogHandler) GetCatalogMeta(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Catalog metadata retrieved successfully",
		"data":    h.catalog.Meta(),
	})
}
