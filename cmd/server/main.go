package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"gopkg.in/yaml.v3"

	"github.com/Magal-W/HebrewWeek/pkg/api"
	"github.com/Magal-W/HebrewWeek/pkg/auth"
	"github.com/Magal-W/HebrewWeek/pkg/moderation"
	"github.com/Magal-W/HebrewWeek/pkg/store"
)

type config struct {
	Addr               string `yaml:"addr"`
	DBPath             string `yaml:"db_path"`
	AdminHashFile      string `yaml:"admin_hash_file"`
	RequireParticipant bool   `yaml:"require_participant"`
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		cmdServe(os.Args[2:])
	case "import":
		cmdImport(os.Args[2:])
	case "hashpass":
		cmdHashpass(os.Args[2:])
	case "mcp":
		cmdMCP(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: hebrewweek <command>

Commands:
  serve     Start the HTTP server
  import    Bulk-import translation pairs from a CSV file
  hashpass  Hash an admin password for the hash file
  mcp       Serve glossary lookup tools over MCP stdio
`)
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

func cmdServe(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	cfgPath := fs.String("config", "config.yaml", "path to config file")
	fs.Parse(args)

	logger := newLogger()
	cfg := loadConfig(*cfgPath, logger)

	verifier, err := auth.LoadVerifier(cfg.AdminHashFile)
	if err != nil {
		logger.Error("load admin hash", "path", cfg.AdminHashFile, "error", err)
		logger.Info("generate one with: hebrewweek hashpass")
		os.Exit(1)
	}

	db, err := store.Open(cfg.DBPath)
	if err != nil {
		logger.Error("open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	router := api.NewRouter(api.Deps{
		Store:    store.New(db),
		Engine:   moderation.NewEngine(store.NewUnitOfWork(db), moderation.Policy{RequireParticipant: cfg.RequireParticipant}),
		Verifier: verifier,
		Logger:   logger,
	})

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("hebrewweek listening", "addr", cfg.Addr, "db", cfg.DBPath)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	srv.Shutdown(context.Background())
}

func loadConfig(path string, logger *slog.Logger) config {
	cfg := config{
		Addr:          ":8080",
		DBPath:        "hebrewweek.db",
		AdminHashFile: "admin.hash",
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Info("no config file, using defaults", "path", path)
			return cfg
		}
		logger.Error("read config", "error", err)
		os.Exit(1)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		logger.Error("parse config", "error", err)
		os.Exit(1)
	}
	return cfg
}
