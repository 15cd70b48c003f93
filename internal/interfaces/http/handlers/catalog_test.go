// internal/interfaces/http/handlers/catalog_test.go
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/urbanwear-backend/internal/domain/catalog"
)

func newCatalogRouter(cat *catalog.Catalog) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewCatalogHandler(cat, catalog.DefaultPageSize)

	router := gin.New()
	router.GET("/products", handler.GetProducts)
	router.GET("/products/meta", handler.GetCatalogMeta)
	router.GET("/products/:id", handler.GetProduct)
	return router
}

func wideCatalog(n int) *catalog.Catalog {
	products := make([]catalog.Product, n)
	for i := range products {
		products[i] = catalog.Product{
			ID:       uint(i + 1),
			Name:     fmt.Sprintf("Tee %d", i+1),
			Price:    999,
			Category: "T-Shirts",
			Sizes:    []string{"M"},
			Colors:   []string{"Black"},
			Rating:   4.0,
		}
	}
	return catalog.New(products)
}

type listingPayload struct {
	Message string `json:"message"`
	Data    struct {
		Products   []catalog.Product `json:"products"`
		Page       int               `json:"page"`
		TotalPages int               `json:"total_pages"`
		Total      int               `json:"total"`
		Query      string            `json:"query"`
	} `json:"data"`
}

func TestGetProductsFirstPage(t *testing.T) {
	router := newCatalogRouter(wideCatalog(20))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var payload listingPayload
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))

	assert.Len(t, payload.Data.Products, 8)
	assert.Equal(t, 1, payload.Data.Page)
	assert.Equal(t, 3, payload.Data.TotalPages)
	assert.Equal(t, 20, payload.Data.Total)
	assert.Equal(t, "", payload.Data.Query)
}

func TestGetProductsClampsOvershootPage(t *testing.T) {
	router := newCatalogRouter(wideCatalog(20))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products?page=99", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var payload listingPayload
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))

	assert.Equal(t, 3, payload.Data.Page)
	assert.Len(t, payload.Data.Products, 4)
	// The echoed canonical query carries the clamped page.
	assert.Equal(t, "page=3", payload.Data.Query)
}

func TestGetProductsAppliesFilters(t *testing.T) {
	cat := catalog.New([]catalog.Product{
		{ID: 1, Name: "Zip Hoodie", Price: 2499, Category: "Hoodies", Sizes: []string{"M"}, Colors: []string{"Grey"}, Rating: 4.8},
		{ID: 2, Name: "Graphic Tee", Price: 999, Category: "T-Shirts", Sizes: []string{"S"}, Colors: []string{"White"}, Rating: 3.9},
	})
	router := newCatalogRouter(cat)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products?q=hoodie", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var payload listingPayload
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))

	require.Len(t, payload.Data.Products, 1)
	assert.Equal(t, uint(1), payload.Data.Products[0].ID)
}

func TestGetProductByID(t *testing.T) {
	router := newCatalogRouter(wideCatalog(5))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products/3", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var payload struct {
		Data struct {
			Product catalog.Product   `json:"product"`
			Related []catalog.Product `json:"related"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))

	assert.Equal(t, uint(3), payload.Data.Product.ID)
	// Related products share the category and exclude the product itself.
	assert.Len(t, payload.Data.Related, 4)
	for _, p := range payload.Data.Related {
		assert.NotEqual(t, uint(3), p.ID)
		assert.Equal(t, "T-Shirts", p.Category)
	}
}

func TestGetProductErrors(t *testing.T) {
	router := newCatalogRouter(wideCatalog(5))

	tests := []struct {
		path     string
		wantCode int
	}{
		{"/products/999", http.StatusNotFound},
		{"/products/abc", http.StatusBadRequest},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, tt.path, nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, tt.wantCode, w.Code, tt.path)
	}
}

func TestGetCatalogMeta(t *testing.T) {
	router := newCatalogRouter(wideCatalog(3))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products/meta", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var payload struct {
		Data catalog.Meta `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))

	assert.Contains(t, payload.Data.Categories, catalog.CategoryAll)
	assert.Contains(t, payload.Data.Categories, "T-Shirts")
	assert.Equal(t, []string{"M"}, payload.Data.Sizes)
	assert.Equal(t, catalog.PriceRange{Min: 999, Max: 999}, payload.Data.PriceRange)
}
