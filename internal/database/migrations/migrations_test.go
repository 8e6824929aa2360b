package migrations

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLatestVersion(t *testing.T) {
	version, err := LatestVersion()
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)
}

func TestInitMigration_Constraints(t *testing.T) {
	up, err := migrationFiles.ReadFile("files/000001_init.up.sql")
	require.NoError(t, err)
	sql := string(up)

	assert.Contains(t, sql, "UNIQUE (project_id, applicant_id)")
	assert.Contains(t, sql, "REFERENCES projects(id)")
	assert.False(t, strings.Contains(strings.ToUpper(sql), "ON DELETE CASCADE"),
		"applications must be purged by the registry, not by the database")

	down, err := migrationFiles.ReadFile("files/000001_init.down.sql")
	require.NoError(t, err)
	for _, table := range []string{"notifications", "applications", "projects", "profiles"} {
		assert.Contains(t, string(down), "DROP TABLE IF EXISTS "+table)
	}
}

func TestStatus_UpToDate(t *testing.T) {
	assert.True(t, Status{Current: 1, Latest: 1}.UpToDate())
	assert.False(t, Status{Current: 0, Latest: 1}.UpToDate())
	assert.False(t, Status{Current: 1, Latest: 1, Dirty: true}.UpToDate())
}
