package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/destiny-api/internal/engine/progression"
	"github.com/KirkDiggler/destiny-api/internal/testutils"
)

func TestWriteTablesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.json")
	tables := progression.BuildTables(testutils.FixtureItems())

	require.NoError(t, writeTablesFile(path, tables))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	read, err := progression.ReadJSON(f)
	require.NoError(t, err)
	assert.Equal(t, tables, read)

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestWriteTablesFileBadDirectory(t *testing.T) {
	err := writeTablesFile(filepath.Join(t.TempDir(), "missing", "tables.json"), nil)
	assert.Error(t, err)
}
