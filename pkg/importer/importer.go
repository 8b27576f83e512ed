// Package importer bulk-loads translation pairs from CSV files.
package importer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/htmlindex"

	"github.com/Magal-W/HebrewWeek/pkg/store"
)

// Options controls how a CSV file is read.
type Options struct {
	// HasHeader skips the first row.
	HasHeader bool
	// Charset names the file encoding (e.g. "windows-1255") when the file
	// is not UTF-8. Empty means UTF-8.
	Charset string
	// Comma is the field delimiter; zero means ','.
	Comma rune
}

// Result summarizes an import run.
type Result struct {
	Imported int
	Skipped  int
}

// ImportTranslations reads english,hebrew rows from the CSV at path and
// inserts them as accepted translations inside a single transaction. Rows
// with a blank english or hebrew field are counted as skipped. The import is
// all-or-nothing: a malformed row aborts it.
func ImportTranslations(ctx context.Context, uow *store.UnitOfWork, path string, opts Options) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	var src io.Reader = f
	if opts.Charset != "" {
		enc, err := htmlindex.Get(opts.Charset)
		if err != nil {
			return Result{}, fmt.Errorf("unknown charset %q: %w", opts.Charset, err)
		}
		src = enc.NewDecoder().Reader(f)
	}

	r := csv.NewReader(src)
	r.Comma = ','
	if opts.Comma != 0 {
		r.Comma = opts.Comma
	}
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	if opts.HasHeader {
		if _, err := r.Read(); err != nil && err != io.EOF {
			return Result{}, fmt.Errorf("read header: %w", err)
		}
	}

	var res Result
	err = uow.WithinTx(ctx, func(ctx context.Context, tx store.DBTX) error {
		s := store.New(tx)
		line := 0
		if opts.HasHeader {
			line = 1
		}
		for {
			record, err := r.Read()
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return fmt.Errorf("read row: %w", err)
			}
			line++

			if len(record) < 2 {
				return fmt.Errorf("row %d: want english,hebrew, got %d fields", line, len(record))
			}
			english := strings.TrimSpace(record[0])
			hebrew := strings.TrimSpace(record[1])
			if english == "" || hebrew == "" {
				res.Skipped++
				continue
			}

			if _, err := s.AddTranslation(ctx, english, hebrew); err != nil {
				return fmt.Errorf("row %d: %w", line, err)
			}
			res.Imported++
		}
	})
	if err != nil {
		return Result{}, err
	}
	return res, nil
}
