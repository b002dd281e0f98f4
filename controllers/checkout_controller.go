package controllers

import (
	"errors"
	"net/http"

	"storefront-service/checkout"
	"storefront-service/middleware"
	"storefront-service/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CheckoutController struct {
	Checkout *checkout.Service
	Logger   *zap.Logger
}

func NewCheckoutController(svc *checkout.Service, logger *zap.Logger) *CheckoutController {
	return &CheckoutController{
		Checkout: svc,
		Logger:   logger,
	}
}

// Submit places an order for the caller's cart.
func (cc *CheckoutController) Submit(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	result, err := cc.Checkout.Submit(c.Request.Context(), userID, req)
	switch {
	case errors.Is(err, checkout.ErrNoAddress):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please select an address"})
		return
	case errors.Is(err, checkout.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty"})
		return
	case errors.Is(err, checkout.ErrInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": "Checkout already in progress"})
		return
	case err != nil:
		cc.Logger.Error("checkout failed", zap.String("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to place order"})
		return
	}

	if result.State == checkout.StateFailed {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Error placing order: " + result.Message})
		return
	}

	c.JSON(http.StatusOK, result)
}
