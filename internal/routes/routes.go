package routes

import (
	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"

	"my_taxi/internal/controllers"
	"my_taxi/internal/token"
)

// Deps carries everything the route groups need: the controllers, the
// token service for the auth middleware and the rides listing policy.
type Deps struct {
	Auth        *controllers.AuthController
	Rides       *controllers.RideController
	Analytics   *controllers.AnalyticsController
	Tokens      *token.Service
	RidesAccess string
}

func SetupRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(ginlog.SetLogger(), gin.Recovery())

	AuthRoutes(r, d)
	UserRoutes(r, d)
	AdminRoutes(r, d)
	DriverRoutes(r, d)
	PassengerRoutes(r, d)
	RideRoutes(r, d)
	AnalyticsRoutes(r, d)

	return r
}
