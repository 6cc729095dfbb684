package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/claude/timesplit/internal/mcp"
	"github.com/claude/timesplit/internal/planner"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	serverURL := flag.String("server", "", "timesplit server URL (e.g. https://timesplit.tail1234.ts.net); plans locally when empty")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("timesplit-mcp", Version)
		return
	}

	// stdout carries the MCP protocol, so logs go to stderr.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	var p mcp.Planner
	if *serverURL != "" {
		p = mcp.NewHTTPClient(*serverURL)
		log.Info("remote mode", "server", *serverURL)
	} else {
		p = mcp.Local{Builder: planner.New(planner.UUIDv7)}
		log.Info("local mode")
	}

	if err := mcpserver.ServeStdio(mcp.New(p, Version, log)); err != nil {
		log.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}
