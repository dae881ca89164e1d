package main

import (
	"context"
	"time"

	"github.com/archsol/portfolio-api/internal/app"
)

// @title           Portfolio API
// @version         1.0
// @description     Backend for the portfolio website: static portfolio content and the contact email pipeline.
// @server          http://localhost:8080
// @securityDefinitions.apikey  APIKeyAuth
// @in header
// @name X-API-Key
// @description API key paired with the X-API-Secret header.
func main() {
	application := app.New()    // Initialize the application
	wait := application.Start() // Start the application and wait for the termination signal
	<-wait                      // Wait for the application to receive a termination signal
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	application.Stop(ctx) // Stop the application gracefully
}
