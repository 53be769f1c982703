package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"

	"github.com/aethelur/tailgen"
)

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".tailgen.yaml"
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence)
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// Separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (TAILGEN_* prefix)
	if err := k.Load(env.Provider("TAILGEN_", ".", func(s string) string {
		// TAILGEN_BUILD_MINIFY -> build.minify
		// TAILGEN_CHECK_STRICT -> check.strict
		// TAILGEN_VERBOSE -> verbose
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "TAILGEN_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildGeneratorConfig constructs the library's Config struct from koanf state.
func buildGeneratorConfig() tailgen.Config {
	config := tailgen.DefaultConfig()
	config.Minify = getBoolWithFallback("minify", "build.minify", false)
	config.TreeShakeKeyframes = getBoolWithFallback("tree-shake-keyframes", "build.tree-shake-keyframes", false)

	for _, name := range scanDisabledCategories() {
		disableCategory(&config, name)
	}

	return config
}

// scanDisabledCategories merges the --disable flag with the config file's
// build.disable list.
func scanDisabledCategories() []string {
	if disabled := k.Strings("disable"); len(disabled) > 0 {
		return disabled
	}
	return k.Strings("build.disable")
}

// disableCategory flips the named toggle off. Unknown names are ignored;
// the library validates that at least one category survives.
func disableCategory(config *tailgen.Config, name string) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "accessibility":
		config.Accessibility = false
	case "tables":
		config.Tables = false
	case "layout":
		config.Layout = false
	case "flexgrid":
		config.FlexGrid = false
	case "transitions":
		config.Transitions = false
	case "transforms":
		config.Transforms = false
	case "filters":
		config.Filters = false
	case "effects":
		config.Effects = false
	case "backgrounds":
		config.Backgrounds = false
	case "borders":
		config.Borders = false
	case "typography":
		config.Typography = false
	case "svg":
		config.SVG = false
	case "colors":
		config.Colors = false
	case "sizing":
		config.Sizing = false
	case "spacing":
		config.Spacing = false
	case "interactivity":
		config.Interactivity = false
	}
}

// scanPaths resolves the source glob patterns: flag key first, then
// config key, then defaults.
func scanPaths() []string {
	if paths := k.Strings("paths"); len(paths) > 0 {
		return paths
	}
	if paths := k.Strings("build.paths"); len(paths) > 0 {
		return paths
	}
	return []string{
		"**/*.templ",
		"**/*.html",
	}
}

// buildCheckConfig constructs the library's CheckConfig struct from koanf state.
func buildCheckConfig() tailgen.CheckConfig {
	return tailgen.CheckConfig{
		ScanPaths:        scanPaths(),
		Verbose:          getBoolWithFallback("verbose", "verbose", false),
		Strict:           getBoolWithFallback("strict", "check.strict", false),
		Threshold:        getFloat64WithFallback("threshold", "check.threshold", 0.0),
		MaxIssues:        getIntWithFallback("max-issues", "check.max-issues", 0),
		MaxSameIssues:    getIntWithFallback("max-same-issues", "check.max-same-issues", 0),
		PrintIssuedLines: getBoolWithFallback("print-lines", "check.print-lines", true),
		PrintLinterName:  getBoolWithFallback("print-linter-name", "check.print-linter-name", true),
		UseColors:        getBoolWithFallback("color", "color", false),
	}
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}

// getFloat64WithFallback checks the flag key first, then the config file key, then returns the default.
func getFloat64WithFallback(flagKey, configKey string, defaultVal float64) float64 {
	if k.Exists(flagKey) {
		return k.Float64(flagKey)
	}
	if k.Exists(configKey) {
		return k.Float64(configKey)
	}
	return defaultVal
}
