package main

import (
	"fmt"
	"os"

	"github.com/hexstrike-ai/cmd"
	"github.com/hexstrike-ai/internal/config"
	"github.com/hexstrike-ai/internal/logger"
)

func main() {
	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	// Execute command
	if err := cmd.Execute(cfg, log); err != nil {
		log.Error("Command execution failed", "error", err)
		os.Exit(1)
	}
}
