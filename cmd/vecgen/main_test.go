package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testConfig = `
generic_import: github.com/cwbudde/manyvecs/vector
sqrt_import: github.com/cwbudde/manyvecs/internal/fastmath
dimensions:
  - size: 2
    fields: [X, Y]
scalars:
  - {type: float64, suffix: f64, kind: float}
  - {type: int, suffix: i, kind: signed}
operators:
  - {name: Add, symbol: "+", doc: sum}
`

func writeConfig(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "vecgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0o644))
	return path
}

func TestRunWritesFiles(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, dir)

	require.NoError(t, run(cfg, dir, false, false, &bytes.Buffer{}, zap.NewNop()))

	src, err := os.ReadFile(filepath.Join(dir, "vec2_gen.go"))
	require.NoError(t, err)
	assert.Contains(t, string(src), "// Code generated by vecgen from vecgen.yaml. DO NOT EDIT.")
	assert.Contains(t, string(src), "type Vec2f64 struct")
	assert.Contains(t, string(src), "func (v Vec2i) Add(o Vec2i) Vec2i")
}

func TestRunList(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, dir)

	var out bytes.Buffer
	require.NoError(t, run(cfg, dir, false, true, &out, zap.NewNop()))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[1], "vec2_gen.go"), lines[1])

	_, err := os.Stat(filepath.Join(dir, "vec2_gen.go"))
	assert.True(t, os.IsNotExist(err), "list must not write files")
}

func TestRunDryRun(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, dir)

	require.NoError(t, run(cfg, dir, true, false, &bytes.Buffer{}, zap.NewNop()))

	_, err := os.Stat(filepath.Join(dir, "vec2_gen.go"))
	assert.True(t, os.IsNotExist(err), "dry run must not write files")
}

func TestRunMissingConfig(t *testing.T) {
	err := run(filepath.Join(t.TempDir(), "missing.yaml"), ".", false, false, &bytes.Buffer{}, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config")
}
