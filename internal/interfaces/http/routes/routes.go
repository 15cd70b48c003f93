// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/your-org/urbanwear-backend/internal/config"
	"github.com/your-org/urbanwear-backend/internal/domain/cart"
	"github.com/your-org/urbanwear-backend/internal/domain/catalog"
	"github.com/your-org/urbanwear-backend/internal/domain/order"
	"github.com/your-org/urbanwear-backend/internal/domain/pricing"
	"github.com/your-org/urbanwear-backend/internal/domain/wishlist"
	"github.com/your-org/urbanwear-backend/internal/interfaces/http/handlers"
)

// SetupRoutes wires the storefront services and registers every route
// group. The cart service is shared: wishlist moves items through it
// and checkout prices through it, so all three see identical totals.
func SetupRoutes(rg *gin.RouterGroup, redisClient *redis.Client, cat *catalog.Catalog, cfg *config.Config) {
	engine := pricing.NewEngine(pricing.Rules{
		TaxRate:         cfg.Pricing.TaxRate,
		FreeShippingMin: cfg.Pricing.FreeShippingMin,
		FlatShippingFee: cfg.Pricing.FlatShippingFee,
	})

	cartService := cart.NewService(cart.NewRedisStore(redisClient, cart.SessionTTL), cat, engine)
	wishlistService := wishlist.NewService(wishlist.NewRedisStore(redisClient, wishlist.SessionTTL), cat, cartService)
	orderService := order.NewService(cartService, order.NewRedisSnapshotStore(redisClient))

	setupCatalogRoutes(rg, cat, cfg)
	setupCartRoutes(rg, cartService)
	setupWishlistRoutes(rg, wishlistService)
	setupCheckoutRoutes(rg, orderService)
}

// setupCatalogRoutes sets up product listing and detail routes
func setupCatalogRoutes(rg *gin.RouterGroup, cat *catalog.Catalog, cfg *config.Config) {
	catalogHandler := handlers.NewCatalogHandler(cat, cfg.Catalog.PageSize)

	products := rg.Group("/products")
	{
		products.GET("", catalogHandler.GetProducts)
		products.GET("/meta", catalogHandler.GetCatalogMeta)
		products.GET("/:id", catalogHandler.GetProduct)
	}
}

// setupCartRoutes sets up session cart routes
func setupCartRoutes(rg *gin.RouterGroup, cartService *cart.Service) {
	cartHandler := handlers.NewCartHandler(cartService)

	carts := rg.Group("/cart")
	{
		carts.GET("", cartHandler.GetCart)
		carts.DELETE("", cartHandler.ClearCart)
		carts.POST("/items", cartHandler.AddItem)
		carts.PUT("/items", cartHandler.UpdateItem)
		carts.DELETE("/items", cartHandler.RemoveItem)
		carts.POST("/coupon", cartHandler.ApplyCoupon)
		carts.DELETE("/coupon", cartHandler.RemoveCoupon)
	}
}

// setupWishlistRoutes sets up session wishlist routes
func setupWishlistRoutes(rg *gin.RouterGroup, wishlistService *wishlist.Service) {
	wishlistHandler := handlers.NewWishlistHandler(wishlistService)

	wishlists := rg.Group("/wishlist")
	{
		wishlists.GET("", wishlistHandler.GetWishlist)
		wishlists.DELETE("", wishlistHandler.ClearWishlist)
		wishlists.POST("/toggle", wishlistHandler.ToggleItem)
		wishlists.DELETE("/items/:id", wishlistHandler.RemoveItem)
		wishlists.POST("/items/:id/move-to-cart", wishlistHandler.MoveToCart)
	}
}

// setupCheckoutRoutes sets up checkout and order routes
func setupCheckoutRoutes(rg *gin.RouterGroup, orderService *order.Service) {
	checkoutHandler := handlers.NewCheckoutHandler(orderService)

	checkout := rg.Group("/checkout")
	{
		checkout.GET("/summary", checkoutHandler.GetSummary)
		checkout.POST("/orders", checkoutHandler.PlaceOrder)
	}

	orders := rg.Group("/orders")
	{
		orders.GET("/last", checkoutHandler.GetLastOrder)
	}
}
