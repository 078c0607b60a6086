package logger

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogStoresStampedLines(t *testing.T) {
	t.Chdir(t.TempDir())
	l := New()
	l.Log("viewer started")
	l.Logf("selected %s", "peltier")

	lines := l.Lines()
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "["), "timestamp prefix")
	assert.Contains(t, lines[0], "viewer started")
	assert.Contains(t, lines[1], "selected peltier")
}

func TestLinesReturnsCopy(t *testing.T) {
	t.Chdir(t.TempDir())
	l := New()
	l.Log("one")

	lines := l.Lines()
	lines[0] = "mutated"
	assert.Contains(t, l.Lines()[0], "one")
}
