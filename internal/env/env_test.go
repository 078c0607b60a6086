package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadSetsVariables(t *testing.T) {
	path := writeEnvFile(t, `
# viewer overrides
VIEWER_MODULE=sorbant
VIEWER_TITLE="Water Harvester"
VIEWER_THEME='dark'

BROKEN LINE WITHOUT EQUALS
`)
	t.Setenv("VIEWER_MODULE", "")
	t.Setenv("VIEWER_TITLE", "")
	t.Setenv("VIEWER_THEME", "")

	require.NoError(t, Load(path))
	assert.Equal(t, "sorbant", os.Getenv("VIEWER_MODULE"))
	assert.Equal(t, "Water Harvester", os.Getenv("VIEWER_TITLE"), "double quotes stripped")
	assert.Equal(t, "dark", os.Getenv("VIEWER_THEME"), "single quotes stripped")
}

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	assert.NoError(t, Load(filepath.Join(t.TempDir(), "nope.env")))
}

func TestLoadTrimsWhitespace(t *testing.T) {
	path := writeEnvFile(t, "  SPACED_KEY =  spaced value  \n")
	t.Setenv("SPACED_KEY", "")
	require.NoError(t, Load(path))
	assert.Equal(t, "spaced value", os.Getenv("SPACED_KEY"))
}
