package routes

import (
	"net/http"

	"storefront-service/cart"
	"storefront-service/checkout"
	"storefront-service/config"
	"storefront-service/controllers"
	"storefront-service/middleware"
	"storefront-service/navigation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Register wires the HTTP surface. Everything but the health check
// sits behind JWT auth; the dashboard route is additionally role-gated.
func Register(
	r *gin.Engine,
	carts *cart.Service,
	summaries *cart.SummaryCache,
	checkoutSvc *checkout.Service,
	addressClient *checkout.AddressClient,
	cfg config.Config,
	logger *zap.Logger,
) {
	cartCtrl := controllers.NewCartController(carts, summaries, logger)
	checkoutCtrl := controllers.NewCheckoutController(checkoutSvc, logger)
	addressCtrl := controllers.NewAddressController(addressClient, logger)
	navCtrl := controllers.NewNavigationController()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/")
	api.Use(middleware.RateLimit())
	api.Use(middleware.Auth(cfg.JWTSecret))
	{
		cartGroup := api.Group("/cart")
		{
			cartGroup.GET("", cartCtrl.GetCart)
			cartGroup.GET("/summary", cartCtrl.GetSummary)
			cartGroup.POST("/add", cartCtrl.AddItem)
			cartGroup.PUT("/quantity", cartCtrl.UpdateQuantity)
			cartGroup.DELETE("/remove/:product_id", cartCtrl.RemoveItem)
			cartGroup.DELETE("/clear", cartCtrl.ClearCart)
			cartGroup.POST("/checkout", checkoutCtrl.Submit)
		}

		api.GET("/addresses", addressCtrl.List)
		api.POST("/addresses", addressCtrl.Create)

		api.GET("/navigation", navCtrl.GetViews)

		// The dashboard itself is reachable by employees and
		// admins only; which tabs render inside it comes from
		// /navigation.
		api.GET("/dashboard", middleware.RequireView(navigation.ViewDashboard), navCtrl.GetViews)
	}
}
