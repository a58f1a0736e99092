package routes

import (
	"github.com/gin-gonic/gin"

	"my_taxi/internal/middleware"
)

func UserRoutes(r *gin.Engine, d Deps) {
	me := r.Group("/users/me")
	me.Use(middleware.RequireAuth(d.Tokens))
	{
		me.GET("", d.Auth.Me)
		me.PATCH("", d.Auth.UpdateMe)
		me.DELETE("", d.Auth.DeleteMe)
	}
}
