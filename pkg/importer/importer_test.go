package importer

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/htmlindex"

	"github.com/Magal-W/HebrewWeek/pkg/store"
)

func newTestStore(t *testing.T) (*store.Store, *store.UnitOfWork) {
	t.Helper()
	db, err := store.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return store.New(db), store.NewUnitOfWork(db)
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestImportTranslations(t *testing.T) {
	s, uow := newTestStore(t)
	path := writeFile(t, "pairs.csv", []byte("english,hebrew\nrun,לרוץ\nweek,שבוע\n"))

	res, err := ImportTranslations(context.Background(), uow, path, Options{HasHeader: true})
	require.NoError(t, err)
	assert.Equal(t, Result{Imported: 2}, res)

	pairs, err := s.Translations(context.Background())
	require.NoError(t, err)
	require.Len(t, pairs, 2)
	assert.Equal(t, "run", pairs[0].English)
	assert.Equal(t, "לרוץ", pairs[0].Hebrew)
}

func TestImportSkipsBlankFields(t *testing.T) {
	s, uow := newTestStore(t)
	path := writeFile(t, "pairs.csv", []byte("run,לרוץ\n,שבוע\nweek,\n"))

	res, err := ImportTranslations(context.Background(), uow, path, Options{})
	require.NoError(t, err)
	assert.Equal(t, Result{Imported: 1, Skipped: 2}, res)

	pairs, err := s.Translations(context.Background())
	require.NoError(t, err)
	assert.Len(t, pairs, 1)
}

func TestImportTranscodesCharset(t *testing.T) {
	s, uow := newTestStore(t)

	enc, err := htmlindex.Get("windows-1255")
	require.NoError(t, err)
	data, err := enc.NewEncoder().Bytes([]byte("run,לרוץ\n"))
	require.NoError(t, err)
	path := writeFile(t, "legacy.csv", data)

	res, err := ImportTranslations(context.Background(), uow, path, Options{Charset: "windows-1255"})
	require.NoError(t, err)
	assert.Equal(t, Result{Imported: 1}, res)

	pairs, err := s.Translations(context.Background())
	require.NoError(t, err)
	require.Len(t, pairs, 1)
	assert.Equal(t, "לרוץ", pairs[0].Hebrew)
}

func TestImportAbortsOnShortRow(t *testing.T) {
	s, uow := newTestStore(t)
	path := writeFile(t, "bad.csv", []byte("run,לרוץ\nweek\n"))

	_, err := ImportTranslations(context.Background(), uow, path, Options{})
	require.Error(t, err)

	// The failed import left nothing behind.
	pairs, err := s.Translations(context.Background())
	require.NoError(t, err)
	assert.Empty(t, pairs)
}

func TestImportUnknownCharset(t *testing.T) {
	_, uow := newTestStore(t)
	path := writeFile(t, "pairs.csv", []byte("run,לרוץ\n"))

	_, err := ImportTranslations(context.Background(), uow, path, Options{Charset: "no-such-charset"})
	require.Error(t, err)
}
