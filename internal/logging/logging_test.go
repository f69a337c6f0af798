package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-kit/log/level"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "info")

	level.Debug(logger).Log("msg", "hidden")
	level.Info(logger).Log("msg", "shown", "student", "a@b.com")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=shown")
	assert.Contains(t, out, "student=a@b.com")
	assert.Contains(t, out, "level=info")
	assert.Contains(t, out, "caller=")
}

func TestNew_DebugLevel(t *testing.T) {
	var buf bytes.Buffer
	level.Debug(New(&buf, "debug")).Log("msg", "detail")
	assert.Contains(t, buf.String(), "msg=detail")
}

func TestNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "gradebook.log")
	logger, closer, err := NewFile(path, "warn")
	require.NoError(t, err)

	level.Info(logger).Log("msg", "skipped")
	level.Error(logger).Log("msg", "kept")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=kept")
	assert.NotContains(t, string(data), "skipped")
}
