package main

import (
	"hotel/config"
	"hotel/di"
	"hotel/shared/logger"
)

// @title						Hotel back office API
// @version					1.0
// @description				Guests, rooms and bookings of the hotel, with availability and pricing.
// @BasePath					/
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
