package controllers

import (
	"net/http"

	"storefront-service/middleware"
	"storefront-service/navigation"

	"github.com/gin-gonic/gin"
)

// NavigationController tells the client which views the caller's role
// may render and where to land by default.
type NavigationController struct{}

func NewNavigationController() *NavigationController {
	return &NavigationController{}
}

func (nc *NavigationController) GetViews(c *gin.Context) {
	role := navigation.Role(c.GetString(middleware.ContextRole))

	c.JSON(http.StatusOK, gin.H{
		"role":         role,
		"views":        navigation.ViewsFor(role),
		"default_view": navigation.DefaultView(role),
	})
}
