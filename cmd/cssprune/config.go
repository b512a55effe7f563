package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/yacobolo/cssprune"
)

var k = koanf.New(".")

// configSearchPaths are tried in order when --config is not given.
var configSearchPaths = []string{
	".cssprune.toml",
	"cssprune.toml",
	"config/cssprune.toml",
}

// loadConfig loads configuration with precedence: flags > env > file >
// defaults. It must run after cobra parses flags (PreRunE or RunE).
func loadConfig(cmd *cobra.Command, _ []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = findConfigFile()
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// CLI flags (highest precedence; only flags that were explicitly set)
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a TOML file and environment
// variables. Separated from loadConfig so tests can run it without a cobra
// command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers); missing file is
	// fine, defaults apply.
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
				return fmt.Errorf("loading config file %s: %w", configPath, err)
			}
		}
	}

	// 2. Environment variables (CSSPRUNE_* prefix)
	if err := k.Load(env.Provider("CSSPRUNE_", ".", func(s string) string {
		// CSSPRUNE_THREADS -> threads
		// CSSPRUNE_SCAN_PREVIEW -> scan.preview
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "CSSPRUNE_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// findConfigFile returns the first config file that exists, or "".
func findConfigFile() string {
	for _, path := range configSearchPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// buildRules constructs the engine's filter rules from koanf state.
func buildRules() cssprune.FilterRules {
	rules := cssprune.DefaultRules()
	if v := getStringsWithFallback("exclude-dir", "scan.exclude-dirs"); len(v) > 0 {
		rules.ExcludeDirs = v
	}
	if v := getStringsWithFallback("ext", "scan.include-extensions"); len(v) > 0 {
		rules.IncludeExtensions = v
	}
	if v := getStringsWithFallback("css-ext", "scan.css-extensions"); len(v) > 0 {
		rules.CSSExtensions = v
	}
	return rules
}

// buildExecutionOptions constructs the shared execution options. Progress
// goes to stderr so it never pollutes report output; --quiet disables it.
func buildExecutionOptions() cssprune.ExecutionOptions {
	opts := cssprune.ExecutionOptions{
		ThreadCount: getIntWithFallback("threads", "threads", 0),
	}
	if !getBoolWithFallback("quiet", "quiet", false) {
		opts.Progress = cssprune.NewConsoleProgress(os.Stderr)
	}
	return opts
}

// getStringWithFallback checks the flag key first, then the config file key,
// then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getStringsWithFallback checks the flag key first, then the config file key.
func getStringsWithFallback(flagKey, configKey string) []string {
	if v := k.Strings(flagKey); len(v) > 0 {
		return v
	}
	return k.Strings(configKey)
}

// getBoolWithFallback checks the flag key first, then the config file key,
// then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key,
// then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}
