package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osuushi/inkmesh/internal/stroke"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadOptional_Missing(t *testing.T) {
	cfg, err := LoadOptional(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)

	opts, err := cfg.StrokeOptions()
	require.NoError(t, err)
	assert.Equal(t, stroke.DefaultOptions(), opts)
}

func TestLoadOptional(t *testing.T) {
	path := writeConfig(t, `
stroke:
  width: 8
  cap: Flat
  subdivisions: 4
  miter_limit: 2.5
`)
	cfg, err := LoadOptional(path)
	require.NoError(t, err)
	assert.Equal(t, StrokeConfig{Width: 8, Cap: "Flat", Subdivisions: 4, MiterLimit: 2.5}, cfg.Stroke)

	opts, err := cfg.StrokeOptions()
	require.NoError(t, err)
	assert.Equal(t, 8.0, opts.Width)
	assert.Equal(t, stroke.CapFlat, opts.Cap)
	assert.Equal(t, 4.0, opts.Subdivisions)
	assert.Equal(t, stroke.DefaultMaxError, opts.MaxError)
	assert.Equal(t, 2.5, opts.MiterLimit)
}

func TestLoadOptional_Malformed(t *testing.T) {
	_, err := LoadOptional(writeConfig(t, "stroke: [1, 2"))
	assert.ErrorContains(t, err, "failed to parse")

	_, err = LoadOptional(writeConfig(t, "stroke:\n  width: wide\n"))
	assert.ErrorContains(t, err, "failed to parse")
}

func TestStrokeOptions_Invalid(t *testing.T) {
	_, err := (&Config{Stroke: StrokeConfig{Cap: "square"}}).StrokeOptions()
	assert.EqualError(t, err, `stroke.cap: unknown cap style "square"`)

	_, err = (&Config{Stroke: StrokeConfig{Width: -1}}).StrokeOptions()
	assert.EqualError(t, err, "stroke.width must not be negative (got -1)")
}

func TestStrokeOptions_FirstNegativeFieldIsReported(t *testing.T) {
	cfg := &Config{Stroke: StrokeConfig{Width: -1, Subdivisions: -2, MaxError: -3, MiterLimit: -4}}
	for i := 0; i < 20; i++ {
		_, err := cfg.StrokeOptions()
		assert.EqualError(t, err, "stroke.width must not be negative (got -1)")
	}

	cfg.Stroke.Width = 0
	_, err := cfg.StrokeOptions()
	assert.EqualError(t, err, "stroke.subdivisions must not be negative (got -2)")
}
