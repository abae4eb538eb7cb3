package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	phrases := writeFile(t, dir, "phrases.txt", "# list\nanalysis paralysis\n")
	path := writeFile(t, dir, "config.yaml", `
ignore_case: true
phrases: ["Golden hammer"]
phrase_files: [`+phrases+`]
cache_size: 100
workers: 2
log:
  level: debug
  console: false
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.IgnoreCase)
	assert.Equal(t, 100, cfg.CacheSize)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.Log.Console)

	all, err := cfg.AllPhrases()
	require.NoError(t, err)
	assert.Equal(t, []string{"Golden hammer", "analysis paralysis"}, all)

	b, err := cfg.Builder()
	require.NoError(t, err)
	m, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, 2, m.Size())
	assert.Len(t, m.ParseText("GOLDEN HAMMER and Analysis Paralysis"), 2)
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, runtime.NumCPU(), cfg.Workers)
	assert.False(t, cfg.IgnoreCase)

	path := writeFile(t, t.TempDir(), "config.yaml", "workers: 0\n")
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, runtime.NumCPU(), cfg.Workers)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, dir, "bad.yaml", "workers: [1\n"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, dir, "norm.yaml", "normalizers: [stem]\n"))
	assert.ErrorContains(t, err, "unknown normalizer")

	_, err = Load(writeFile(t, dir, "cache.yaml", "cache_size: -1\n"))
	assert.ErrorContains(t, err, "cache_size")

	cfg := Default()
	cfg.PhraseFiles = []string{filepath.Join(dir, "nope.txt")}
	_, err = cfg.Builder()
	assert.Error(t, err)
}

func TestBuilderNormalizers(t *testing.T) {
	cfg := Default()
	cfg.Phrases = []string{"file system"}
	cfg.Normalizers = []string{"nfkc", "lowercase"}

	b, err := cfg.Builder()
	require.NoError(t, err)
	m, err := b.Build()
	require.NoError(t, err)
	got := m.ParseText("the ＦＩＬＥ System")
	require.Len(t, got, 1)
	assert.Equal(t, "file system", got[0].Phrase)
}
