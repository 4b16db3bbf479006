package main

import (
	"orchid/config"
	"orchid/di"
	"orchid/shared/logger"
)

// @title Orchid Hotel Operations API
// @version 1.0
// @description Room inventory, bookings, billing, restaurant and reporting for a single hotel.
// @BasePath /
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
