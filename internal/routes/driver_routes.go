package routes

import (
	"github.com/gin-gonic/gin"

	"my_taxi/internal/middleware"
	"my_taxi/internal/models"
)

func DriverRoutes(r *gin.Engine, d Deps) {
	driver := r.Group("/driver")
	driver.Use(middleware.RequireAuth(d.Tokens), middleware.RequireRole(models.RoleDriver))
	{
		driver.GET("/passengers", d.Auth.ListPassengers)
	}
}
