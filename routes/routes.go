package routes

import (
	"fixora/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all endpoints for the availability engine.
func RegisterRoutes(r *gin.Engine, availabilityHandler *handlers.AvailabilityHandler) {
	api := r.Group("/api/availability")
	{
		api.POST("/offers", availabilityHandler.FindOffers)
		api.GET("/company/:companyID", availabilityHandler.CompanyAvailability)
		api.POST("/resolve", availabilityHandler.ResolveToken)
	}

	r.GET("/health", handlers.HealthHandler)
}
