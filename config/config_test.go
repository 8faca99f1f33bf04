package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"book-catalog/library"
)

func TestNewDefaults(t *testing.T) {
	t.Setenv("CATALOG_DATA_PATH", "")

	cfg := New()
	assert.Equal(t, library.DefaultPath, cfg.Data.Path)
}

func TestNewEnvOverride(t *testing.T) {
	t.Setenv("CATALOG_DATA_PATH", "/tmp/catalog.json")

	cfg := New()
	assert.Equal(t, "/tmp/catalog.json", cfg.Data.Path)
}
