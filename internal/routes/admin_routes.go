package routes

import (
	"github.com/gin-gonic/gin"

	"my_taxi/internal/middleware"
	"my_taxi/internal/models"
)

func AdminRoutes(r *gin.Engine, d Deps) {
	admin := r.Group("/admin")
	admin.Use(middleware.RequireAuth(d.Tokens), middleware.RequireRole(models.RoleAdmin))
	{
		admin.DELETE("/users/:id", d.Auth.AdminDeleteUser)
	}
}
