// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/your-org/urbanwear-backend/internal/domain/order"
)

// CheckoutHandler handles checkout and order HTTP requests
type CheckoutHandler struct {
	orderService *order.Service
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(orderService *order.Service) *CheckoutHandler {
	return &CheckoutHandler{
		orderService: orderService,
	}
}

// GetSummary handles GET /checkout/summary
// Returns the priced cart exactly as checkout will charge it.
func (h *CheckoutHandler) GetSummary(c *gin.Context) {
	sessionID := getOrCreateSessionID(c)

	resp, err := h.orderService.Summary(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve checkout summary",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Checkout summary retrieved successfully",
		"data":    resp,
	})
}

// PlaceOrder handles POST /checkout/orders
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	sessionID := getOrCreateSessionID(c)

	var req order.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	placed, err := h.orderService.PlaceOrder(c.Request.Context(), sessionID, &req)
	if err != nil {
		if errors.Is(err, order.ErrEmptyCart) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Cart is empty",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to place order",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"data":    placed,
	})
}

// GetLastOrder handles GET /orders/last
func (h *CheckoutHandler) GetLastOrder(c *gin.Context) {
	sessionID := getOrCreateSessionID(c)

	placed, err := h.orderService.LastOrder(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, order.ErrNoOrder) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "No order has been placed in this session",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve order",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order retrieved successfully",
		"data":    placed,
	})
}
