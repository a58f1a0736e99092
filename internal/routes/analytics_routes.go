package routes

import (
	"github.com/gin-gonic/gin"
)

func AnalyticsRoutes(r *gin.Engine, d Deps) {
	analytics := r.Group("/analytics")
	{
		analytics.GET("/passengers", d.Analytics.PassengerStats)
	}
}
