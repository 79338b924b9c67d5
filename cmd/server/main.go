package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"visionserver/internal/app"
	"visionserver/internal/config"
)

func main() {
	cfg := config.Load()

	application, err := app.NewApp(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("🚀 %s\n", cfg.ServerName)
	fmt.Printf("📍 URL: http://localhost:%d\n", cfg.Port)
	fmt.Printf("🌍 Environment: %s\n", cfg.Environment)
	fmt.Printf("📁 Static files: %s\n", cfg.StaticDirectory)
	fmt.Printf("📝 Logs: %s\n", cfg.LogDirectory)

	runErr := application.Run(ctx)
	if err := application.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error during cleanup: %v\n", err)
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", runErr)
		os.Exit(1)
	}
}
