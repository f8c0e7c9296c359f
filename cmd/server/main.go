package main

import (
	"log"
	"net/http"

	"chakula/internal/config"
	"chakula/internal/controllers"
	"chakula/internal/logger"
	"chakula/internal/mailer"
	"chakula/internal/middleware"
	"chakula/internal/routes"
)

func main() {
	// One config object for the whole process
	cfg := config.Load()

	// Structured logging to a rotating file
	logger.Setup(cfg)

	// Connect to the database
	config.InitDB(cfg)

	// Wire the components that need config
	middleware.Setup(cfg)
	controllers.Setup(cfg, mailer.New(cfg))

	r := routes.SetupRouter()

	log.Printf("Server running at :%s", cfg.Port)
	log.Fatal(http.ListenAndServe("0.0.0.0:"+cfg.Port, r))
}
