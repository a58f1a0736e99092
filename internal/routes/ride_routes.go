package routes

import (
	"github.com/gin-gonic/gin"

	"my_taxi/internal/config"
	"my_taxi/internal/middleware"
	"my_taxi/internal/models"
)

func RideRoutes(r *gin.Engine, d Deps) {
	auth := middleware.RequireAuth(d.Tokens)

	rides := r.Group("/rides")
	{
		rides.POST("", auth, middleware.RequireRole(models.RolePassenger), d.Rides.Create)
		rides.PATCH("/:id", auth, middleware.RequireRole(models.RoleDriver), d.Rides.UpdateStatus)
		rides.DELETE("/:id", auth, middleware.RequireRole(models.RoleAdmin), d.Rides.Delete)

		// Listing policy is configurable: "strict" keeps the fleet view
		// admin-only, "open" matches the variant with no gate at all.
		if d.RidesAccess == config.RidesOpen {
			rides.GET("", d.Rides.List)
		} else {
			rides.GET("", auth, middleware.RequireRole(models.RoleAdmin), d.Rides.List)
		}
	}
}
