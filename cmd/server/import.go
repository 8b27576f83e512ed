package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Magal-W/HebrewWeek/pkg/importer"
	"github.com/Magal-W/HebrewWeek/pkg/store"
)

func cmdImport(args []string) {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	cfgPath := fs.String("config", "config.yaml", "path to config file")
	csvPath := fs.String("csv", "", "CSV file of english,hebrew pairs")
	header := fs.Bool("header", false, "skip the first row")
	charset := fs.String("charset", "", "file encoding when not UTF-8 (e.g. windows-1255)")
	fs.Parse(args)

	if *csvPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: hebrewweek import --csv <file> [--header] [--charset <name>]")
		os.Exit(1)
	}

	logger := newLogger()
	cfg := loadConfig(*cfgPath, logger)

	db, err := store.Open(cfg.DBPath)
	if err != nil {
		logger.Error("open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	res, err := importer.ImportTranslations(context.Background(), store.NewUnitOfWork(db), *csvPath, importer.Options{
		HasHeader: *header,
		Charset:   *charset,
	})
	if err != nil {
		logger.Error("import failed", "error", err)
		os.Exit(1)
	}
	logger.Info("import done", "imported", res.Imported, "skipped", res.Skipped)
}
