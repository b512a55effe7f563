package main

import (
	"log/slog"
	"strconv"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	defaultLogFilename   = ".cssprune.log"
	defaultLogMaxSize    = 10 // megabytes
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28 // days
)

// configureLogger points the global slog logger at a rotating log file.
// Console output stays reserved for reports and progress.
func configureLogger(verbose bool) {
	logPath := getStringWithFallback("log-file", "log.file", defaultLogFilename)

	var level slog.Level
	if verbose {
		level = slog.LevelDebug
	} else {
		level = parseSlogLevel(getStringWithFallback("log-level", "log.level", ""), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    getIntWithFallback("log-max-size", "log.max-size", defaultLogMaxSize),
		MaxBackups: getIntWithFallback("log-max-backups", "log.max-backups", defaultLogMaxBackups),
		MaxAge:     getIntWithFallback("log-max-age", "log.max-age", defaultLogMaxAge),
		Compress:   getBoolWithFallback("log-compress", "log.compress", true),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}
