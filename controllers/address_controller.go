package controllers

import (
	"net/http"

	"storefront-service/checkout"
	"storefront-service/middleware"
	"storefront-service/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AddressController passes address reads and creates through to the
// external address service, forwarding the caller's token.
type AddressController struct {
	Addresses *checkout.AddressClient
	Logger    *zap.Logger
}

func NewAddressController(client *checkout.AddressClient, logger *zap.Logger) *AddressController {
	return &AddressController{
		Addresses: client,
		Logger:    logger,
	}
}

func (ac *AddressController) List(c *gin.Context) {
	token := c.GetString(middleware.ContextToken)

	addresses, err := ac.Addresses.List(c.Request.Context(), token)
	if err != nil {
		ac.Logger.Error("list addresses failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to load addresses"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": addresses})
}

func (ac *AddressController) Create(c *gin.Context) {
	token := c.GetString(middleware.ContextToken)

	var input models.Address
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	created, err := ac.Addresses.Create(c.Request.Context(), token, input)
	if err != nil {
		ac.Logger.Error("create address failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to add address"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Address added successfully!", "data": created})
}
