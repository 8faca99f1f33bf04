package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"book-catalog/library"
)

func tempManager(t *testing.T) *library.Manager {
	t.Helper()
	manager, err := library.NewManager(library.Options{Path: filepath.Join(t.TempDir(), "data.json")})
	require.NoError(t, err)
	return manager
}

func TestImportRecords(t *testing.T) {
	manager := tempManager(t)

	raw := []byte(`[
		{"title": "Dune", "author": "Herbert", "category": "SciFi", "year": "1965"},
		{"title": "Emma", "author": "Austen", "category": "Classic", "year": 1815},
		{"title": "Ulysses", "author": "Joyce", "category": "", "year": "n/a"},
		{"title": "Fragment", "author": "Anon"}
	]`)

	success, errors, err := importRecords(manager, raw)
	require.NoError(t, err)
	assert.Equal(t, 4, success)
	assert.Equal(t, 0, errors)

	books, err := manager.Books.List()
	require.NoError(t, err)
	require.Len(t, books, 4)

	// Quoted and bare years both import.
	assert.Equal(t, 1965, books[0].Year)
	assert.Equal(t, 1815, books[1].Year)
	// Unparsable or absent years fall back to 0, and the empty category
	// gets the creation-time default, same as an interactive add.
	assert.Equal(t, 0, books[2].Year)
	assert.Equal(t, library.DefaultCategory, books[2].Category)
	assert.Equal(t, 0, books[3].Year)
	assert.Equal(t, library.DefaultCategory, books[3].Category)
}

func TestImportRecordsMalformedFile(t *testing.T) {
	manager := tempManager(t)

	_, _, err := importRecords(manager, []byte("[not valid json"))
	require.Error(t, err)

	books, err := manager.Books.List()
	require.NoError(t, err)
	assert.Empty(t, books)
}

func TestImportRecordsCountsCatalogFailures(t *testing.T) {
	manager := tempManager(t)

	// Corrupting the backing file makes every add fail at the read step.
	require.NoError(t, os.WriteFile(manager.Path(), []byte("{not valid json"), 0o644))

	raw := []byte(`[
		{"title": "Dune", "author": "Herbert", "category": "SciFi", "year": "1965"},
		{"title": "Emma", "author": "Austen", "category": "Classic", "year": 1815}
	]`)

	success, errors, err := importRecords(manager, raw)
	require.NoError(t, err)
	assert.Equal(t, 0, success)
	assert.Equal(t, 2, errors)
}
