package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetKoanf creates a fresh koanf instance for each test.
func resetKoanf() {
	k = koanf.New(".")
}

func TestConfigFileLoading(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".cssprune.toml")
	configContent := `
verbose = true
threads = 8

[scan]
exclude-dirs = ["vendor", "tmp"]
include-extensions = ["vue", "svelte"]
css-extensions = ["less"]
lexer = true
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	assert.True(t, k.Bool("verbose"))
	assert.Equal(t, 8, k.Int("threads"))
	assert.Equal(t, []string{"vendor", "tmp"}, k.Strings("scan.exclude-dirs"))
	assert.Equal(t, []string{"vue", "svelte"}, k.Strings("scan.include-extensions"))
	assert.Equal(t, []string{"less"}, k.Strings("scan.css-extensions"))
	assert.True(t, k.Bool("scan.lexer"))
}

func TestConfigFileNotFound_UsesDefaults(t *testing.T) {
	resetKoanf()

	// Point to non-existent config — should not error
	require.NoError(t, loadConfigFromPath("/nonexistent/.cssprune.toml"))

	rules := buildRules()
	assert.Contains(t, rules.ExcludeDirs, "node_modules")
	assert.Contains(t, rules.IncludeExtensions, "html")
	assert.Equal(t, []string{"css", "scss"}, rules.CSSExtensions)
}

func TestEnvVarOverridesConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".cssprune.toml")
	configContent := `
threads = 2

[log]
level = "info"
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	// Env vars loaded after the file take precedence
	t.Setenv("CSSPRUNE_THREADS", "16")
	t.Setenv("CSSPRUNE_LOG_LEVEL", "debug")

	require.NoError(t, loadConfigFromPath(configPath))

	assert.Equal(t, 16, k.Int("threads"))
	assert.Equal(t, "debug", k.String("log.level"))
}

func TestBuildRules_FromConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".cssprune.toml")
	configContent := `
[scan]
exclude-dirs = ["vendor"]
css-extensions = ["less", "styl"]
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	rules := buildRules()
	assert.Equal(t, []string{"vendor"}, rules.ExcludeDirs)
	assert.Equal(t, []string{"less", "styl"}, rules.CSSExtensions)
	// Keys absent from the file keep their defaults.
	assert.Contains(t, rules.IncludeExtensions, "html")
}

func TestBuildExecutionOptions(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".cssprune.toml")
	require.NoError(t, os.WriteFile(configPath, []byte("threads = 4\nquiet = true\n"), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	opts := buildExecutionOptions()
	assert.Equal(t, 4, opts.ThreadCount)
	assert.Nil(t, opts.Progress)
}

func TestFindConfigFile(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})

	assert.Equal(t, "", findConfigFile())

	require.NoError(t, os.WriteFile("cssprune.toml", []byte(""), 0644))
	assert.Equal(t, "cssprune.toml", findConfigFile())

	// The hidden file takes priority over the plain one.
	require.NoError(t, os.WriteFile(".cssprune.toml", []byte(""), 0644))
	assert.Equal(t, ".cssprune.toml", findConfigFile())
}

func TestInitCommand_CreatesConfigFile(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})

	cmd := rootCmd
	cmd.SetArgs([]string{"init"})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(".cssprune.toml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "[scan]")
	assert.Contains(t, string(data), "node_modules")
	assert.Contains(t, string(data), "[log]")
}

func TestInitCommand_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})

	require.NoError(t, os.WriteFile(".cssprune.toml", []byte("existing"), 0644))

	cmd := rootCmd
	cmd.SetArgs([]string{"init"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestInitCommand_ForceOverwrite(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})

	require.NoError(t, os.WriteFile(".cssprune.toml", []byte("existing"), 0644))

	cmd := rootCmd
	cmd.SetArgs([]string{"init", "--force"})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(".cssprune.toml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "[scan]")
}

func TestVersionCommand(t *testing.T) {
	cmd := rootCmd
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
}

func TestGetStringWithFallback(t *testing.T) {
	resetKoanf()

	// No keys set - should return default
	assert.Equal(t, "default", getStringWithFallback("flag-key", "config.key", "default"))
}

func TestGetBoolWithFallback(t *testing.T) {
	resetKoanf()

	// No keys set - should return default
	assert.False(t, getBoolWithFallback("flag-key", "config.key", false))
	assert.True(t, getBoolWithFallback("flag-key", "config.key", true))
}

func TestGetIntWithFallback(t *testing.T) {
	resetKoanf()

	// No keys set - should return default
	assert.Equal(t, 42, getIntWithFallback("flag-key", "config.key", 42))
}
