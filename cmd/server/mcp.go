package main

import (
	"flag"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/Magal-W/HebrewWeek/pkg/api"
	"github.com/Magal-W/HebrewWeek/pkg/store"
)

// cmdMCP serves the read-only glossary tools over MCP stdio, for use as a
// local tool server alongside the HTTP server.
func cmdMCP(args []string) {
	fs := flag.NewFlagSet("mcp", flag.ExitOnError)
	cfgPath := fs.String("config", "config.yaml", "path to config file")
	fs.Parse(args)

	logger := newLogger()
	cfg := loadConfig(*cfgPath, logger)

	db, err := store.Open(cfg.DBPath)
	if err != nil {
		logger.Error("open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	srv := server.NewMCPServer("hebrewweek", "1.0.0")
	api.RegisterMCPTools(srv, store.New(db))

	logger.Info("mcp server on stdio", "db", cfg.DBPath)
	if err := server.ServeStdio(srv); err != nil {
		logger.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}
