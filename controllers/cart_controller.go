package controllers

import (
	"net/http"

	"storefront-service/cart"
	"storefront-service/middleware"
	"storefront-service/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CartController struct {
	Carts     *cart.Service
	Summaries *cart.SummaryCache
	Logger    *zap.Logger
}

func NewCartController(carts *cart.Service, summaries *cart.SummaryCache, logger *zap.Logger) *CartController {
	return &CartController{
		Carts:     carts,
		Summaries: summaries,
		Logger:    logger,
	}
}

// GetCart returns the caller's current cart.
func (cc *CartController) GetCart(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	current, err := cc.Carts.Get(c.Request.Context(), userID)
	if err != nil {
		cc.Logger.Error("get cart failed", zap.String("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get cart"})
		return
	}
	c.JSON(http.StatusOK, current)
}

// AddItem adds a product line, or bumps its quantity if present.
func (cc *CartController) AddItem(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	var item models.CartItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if item.ProductID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product_id is required"})
		return
	}
	if item.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price must not be negative"})
		return
	}

	current, err := cc.Carts.AddItem(c.Request.Context(), userID, item)
	if err != nil {
		cc.Logger.Error("add item failed", zap.String("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save cart"})
		return
	}
	c.JSON(http.StatusOK, current)
}

// UpdateQuantity overwrites a line's quantity; zero or below removes it.
func (cc *CartController) UpdateQuantity(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	var input struct {
		ProductID string `json:"product_id" binding:"required"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	current, err := cc.Carts.SetQuantity(c.Request.Context(), userID, input.ProductID, input.Quantity)
	if err != nil {
		cc.Logger.Error("update quantity failed", zap.String("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update cart"})
		return
	}
	c.JSON(http.StatusOK, current)
}

// RemoveItem deletes a line from the cart.
func (cc *CartController) RemoveItem(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)
	productID := c.Param("product_id")

	current, err := cc.Carts.RemoveItem(c.Request.Context(), userID, productID)
	if err != nil {
		cc.Logger.Error("remove item failed", zap.String("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update cart"})
		return
	}
	c.JSON(http.StatusOK, current)
}

// ClearCart empties the cart.
func (cc *CartController) ClearCart(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	if err := cc.Carts.Clear(c.Request.Context(), userID); err != nil {
		cc.Logger.Error("clear cart failed", zap.String("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "cart cleared"})
}

// GetSummary returns the derived badge count and total price.
func (cc *CartController) GetSummary(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	summary, err := cc.Summaries.Get(c.Request.Context(), userID)
	if err != nil {
		cc.Logger.Error("get summary failed", zap.String("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get cart summary"})
		return
	}
	c.JSON(http.StatusOK, summary)
}
