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
	configPath := filepath.Join(dir, ".tailgen.yaml")
	configContent := `
verbose: true

build:
  out: assets/app.css
  minify: true
  disable:
    - svg
    - tables

check:
  strict: true
  threshold: 80.0
  paths:
    - "custom/**/*.templ"
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	assert.True(t, k.Bool("verbose"))
	assert.Equal(t, "assets/app.css", k.String("build.out"))
	assert.True(t, k.Bool("build.minify"))
	assert.Equal(t, []string{"svg", "tables"}, k.Strings("build.disable"))
	assert.True(t, k.Bool("check.strict"))
	assert.InDelta(t, 80.0, k.Float64("check.threshold"), 0.01)
}

func TestConfigFileNotFound_UsesDefaults(t *testing.T) {
	resetKoanf()

	// Missing config files are not an error
	require.NoError(t, loadConfigFromPath("/nonexistent/.tailgen.yaml"))

	config := buildGeneratorConfig()
	assert.False(t, config.Minify)
	assert.False(t, config.TreeShakeKeyframes)
	assert.True(t, config.Spacing)
	assert.True(t, config.SVG)
	assert.Equal(t, []string{"**/*.templ", "**/*.html"}, scanPaths())
}

func TestEnvVarOverridesConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".tailgen.yaml")
	configContent := `
build:
  minify: false
check:
  strict: false
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	// Set env vars that should override config file
	t.Setenv("TAILGEN_BUILD_MINIFY", "true")
	t.Setenv("TAILGEN_CHECK_STRICT", "true")

	require.NoError(t, loadConfigFromPath(configPath))

	assert.True(t, k.Bool("build.minify"))
	assert.True(t, k.Bool("check.strict"))
}

func TestBuildGeneratorConfig_DisabledCategories(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".tailgen.yaml")
	configContent := `
build:
  disable:
    - svg
    - Tables
    - " filters "
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	config := buildGeneratorConfig()
	assert.False(t, config.SVG)
	assert.False(t, config.Tables)
	assert.False(t, config.Filters)
	assert.True(t, config.Spacing)
	assert.True(t, config.Colors)
}

func TestBuildCheckConfig_Defaults(t *testing.T) {
	resetKoanf()

	config := buildCheckConfig()
	assert.False(t, config.Strict)
	assert.InDelta(t, 0.0, config.Threshold, 0.01)
	assert.Equal(t, 0, config.MaxIssues)
	assert.True(t, config.PrintIssuedLines)
	assert.True(t, config.PrintLinterName)
	assert.Equal(t, []string{"**/*.templ", "**/*.html"}, config.ScanPaths)
}

func TestBuildCheckConfig_FromConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".tailgen.yaml")
	configContent := `
check:
  strict: true
  threshold: 75.5
  paths:
    - "src/**/*.html"
  max-issues: 10
  print-lines: false
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	config := buildCheckConfig()
	assert.True(t, config.Strict)
	assert.InDelta(t, 75.5, config.Threshold, 0.01)
	assert.Equal(t, []string{"src/**/*.html"}, config.ScanPaths)
	assert.Equal(t, 10, config.MaxIssues)
	assert.False(t, config.PrintIssuedLines)
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

	data, err := os.ReadFile(".tailgen.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "build:")
	assert.Contains(t, string(data), "check:")
}

func TestInitCommand_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})

	require.NoError(t, os.WriteFile(".tailgen.yaml", []byte("existing"), 0644))

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

	require.NoError(t, os.WriteFile(".tailgen.yaml", []byte("existing"), 0644))

	cmd := rootCmd
	cmd.SetArgs([]string{"init", "--force"})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(".tailgen.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "build:")
}

func TestVersionCommand(t *testing.T) {
	cmd := rootCmd
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
}

func TestGetStringWithFallback(t *testing.T) {
	resetKoanf()

	assert.Equal(t, "default", getStringWithFallback("flag-key", "config.key", "default"))
}

func TestGetBoolWithFallback(t *testing.T) {
	resetKoanf()

	assert.False(t, getBoolWithFallback("flag-key", "config.key", false))
	assert.True(t, getBoolWithFallback("flag-key", "config.key", true))
}

func TestGetIntWithFallback(t *testing.T) {
	resetKoanf()

	assert.Equal(t, 42, getIntWithFallback("flag-key", "config.key", 42))
}

func TestGetFloat64WithFallback(t *testing.T) {
	resetKoanf()

	assert.InDelta(t, 3.14, getFloat64WithFallback("flag-key", "config.key", 3.14), 0.01)
}
