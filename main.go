package main

import (
	"fmt"
	"os"

	"github.com/gofiber/fiber/v2"

	"cpu-scheduler/api"
	"cpu-scheduler/config"
	"cpu-scheduler/internal/logging"
)

func main() {
	cfg := config.GetSchedulerConfig()
	logger := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	app := fiber.New()
	api.RegisterRoutes(app.Group("/api"), api.NewSchedulerHandlerImpl(cfg, logger))

	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.Info("listening", "addr", addr)
	if err := app.Listen(addr); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
