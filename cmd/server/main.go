package main

import (
	"log"
	"net/http"

	"my_taxi/internal/config"
	"my_taxi/internal/controllers"
	"my_taxi/internal/logger"
	"my_taxi/internal/middleware"
	"my_taxi/internal/routes"
	"my_taxi/internal/store"
	"my_taxi/internal/token"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	cfg := config.Load()

	// Connect to the database
	st, err := store.Open(cfg.DSN())
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer st.Close()

	tokens := token.New(cfg.JWTSecret, cfg.TokenTTL)

	r := routes.SetupRouter(routes.Deps{
		Auth:        &controllers.AuthController{Store: st, Tokens: tokens},
		Rides:       &controllers.RideController{Store: st},
		Analytics:   &controllers.AnalyticsController{Store: st},
		Tokens:      tokens,
		RidesAccess: cfg.RidesAccess,
	})

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	log.Println("🚀 Server running at " + cfg.ServerAddr)
	log.Fatal(http.ListenAndServe(cfg.ServerAddr, handler))
}
