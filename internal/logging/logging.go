// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logging builds the zerolog logger used by the cmdargs binary.
//
// Console output goes to the given writer (stderr in practice). When a log
// file is configured, the same events are also written, uncolored, to a
// lumberjack-rotated file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/jeranaias/cmdargs/internal/config"
)

const timeFormat = "2006-01-02 15:04:05"

// New returns a logger writing to out and, if cfg.File is set, to a rotating
// file. The returned io.Closer releases the file; it is a no-op otherwise.
func New(prefix string, cfg config.LogConfig, out io.Writer, color bool) (zerolog.Logger, io.Closer, error) {
	writers := []io.Writer{consoleWriter(prefix, out, !color)}

	var closer io.Closer = nopCloser{}
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return zerolog.Nop(), closer, fmt.Errorf("failed to create log directory: %w", err)
		}
		rotating := &lumberjack.Logger{
			Filename: cfg.File,
			MaxSize:  cfg.MaxSizeMB,
			MaxAge:   cfg.MaxAgeDays,
			Compress: cfg.Compress,
		}
		writers = append(writers, consoleWriter(prefix, rotating, true))
		closer = rotating
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		With().
		Timestamp().
		Logger().
		Level(ParseLevel(cfg.Level))
	return logger, closer, nil
}

// ParseLevel maps a config level name to a zerolog level. Unknown names
// fall back to warn.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled":
		return zerolog.Disabled
	default:
		return zerolog.WarnLevel
	}
}

func consoleWriter(prefix string, out io.Writer, noColor bool) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: timeFormat,
		NoColor:    noColor,
		FormatLevel: func(i interface{}) string {
			return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
		},
		FormatMessage: func(i interface{}) string {
			return fmt.Sprintf("[%s] %v", prefix, i)
		},
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
