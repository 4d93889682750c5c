package main

import "os"

// Config holds environment-based configuration for the MCP server
type Config struct {
	GCPProjectID string
	StateFile    string
}

// LoadConfig reads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		GCPProjectID: os.Getenv("GCP_PROJECT_ID"),
		StateFile:    os.Getenv("INFRA_VISION_STATE_FILE"),
	}
}

// HasProject returns true if a GCP project is configured via environment
func (c *Config) HasProject() bool {
	return c.GCPProjectID != ""
}
