package routes

import (
	"github.com/gin-gonic/gin"

	"my_taxi/internal/middleware"
	"my_taxi/internal/models"
)

func PassengerRoutes(r *gin.Engine, d Deps) {
	passenger := r.Group("/passenger")
	passenger.Use(middleware.RequireAuth(d.Tokens), middleware.RequireRole(models.RolePassenger))
	{
		passenger.GET("/drivers", d.Auth.ListDrivers)
	}
}
