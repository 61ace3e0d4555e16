package migrate

import (
	"context"
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations_EmbeddedAndAnnotated(t *testing.T) {
	files, err := fs.Glob(Migrations(), "migrations/*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, name := range files {
		raw, err := fs.ReadFile(Migrations(), name)
		require.NoError(t, err)
		body := string(raw)
		assert.True(t, strings.Contains(body, "-- +goose Up"), name)
		assert.True(t, strings.Contains(body, "-- +goose Down"), name)
	}
}

func TestMigrations_CoverEveryTable(t *testing.T) {
	files, err := fs.Glob(Migrations(), "migrations/*.sql")
	require.NoError(t, err)

	var all strings.Builder
	for _, name := range files {
		raw, err := fs.ReadFile(Migrations(), name)
		require.NoError(t, err)
		all.Write(raw)
	}

	for _, table := range []string{"eggs", "dead_chickens", "customers", "shipments", "suppliers", "inventory", "inventory_thresholds", "egg_predictions"} {
		assert.True(t, strings.Contains(all.String(), "CREATE TABLE IF NOT EXISTS "+table+" "), table)
	}
}

func TestRun_RequiresDB(t *testing.T) {
	err := Run(context.Background(), nil, "up")
	assert.Error(t, err)
}
