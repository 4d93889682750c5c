package main

import (
	"fmt"
	"os"

	"github.com/elC0mpa/infra-vision/cmd/mcp/tools"
	"github.com/mark3labs/mcp-go/server"
)

func main() {
	cfg := LoadConfig()

	s := server.NewMCPServer(
		"infra-vision-mcp",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	tools.RegisterInfraTools(s, cfg.GCPProjectID, cfg.StateFile)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
