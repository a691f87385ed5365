package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mathutils/mcp-calculator/pkg/logger"
	"github.com/mathutils/mcp-calculator/pkg/mcp"
)

// Version is set during build
var Version = "dev"

func main() {
	loadDotEnv()

	logger.Info("Starting MCP Calculator", "version", Version)

	// Create MCP calculator server
	calcServer := mcp.NewMCPCalcServer(Version)

	// Start the stdio server
	logger.Info("Starting MCP server...")
	if err := server.ServeStdio(calcServer.Server()); err != nil {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
}

// loadDotEnv loads environment overrides from a .env file if one is present,
// then rebuilds the logger so an MCP_DEBUG value set there takes effect.
// MCP_DEBUG is the only variable consumed; running without a .env is normal.
func loadDotEnv() {
	err := godotenv.Load()
	if err == nil {
		logger.Configure()
		logger.Debug("Loaded environment from .env file")
		return
	}
	if !os.IsNotExist(err) {
		logger.Warn("Failed to load .env file", "error", err)
	}
}
