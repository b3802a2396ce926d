// cmdargs - declare command-line options and print what was parsed.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"encoding/json"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/jeranaias/cmdargs/internal/argparse"
	"github.com/jeranaias/cmdargs/internal/cli"
	"github.com/jeranaias/cmdargs/internal/config"
	"github.com/jeranaias/cmdargs/internal/logging"
	"github.com/jeranaias/cmdargs/internal/manifest"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// declare registers the options this binary understands.
func declare(p *argparse.Parser) error {
	commands := []struct {
		name string
		opts argparse.CommandOptions
	}{
		{"help", argparse.CommandOptions{Shortcut: "h", Description: "Print this help"}},
		{"version", argparse.CommandOptions{Shortcut: "v", Description: "Print the version from the manifest"}},
		{"test1", argparse.CommandOptions{Shortcut: "s", Description: "Special test string", Default: "SpecialVal"}},
		{"hello", argparse.CommandOptions{Shortcut: "n", Description: "Special test number", Default: 10}},
		{"test3", argparse.CommandOptions{Shortcut: "b", Description: "Special test boolean", Default: true}},
	}
	for _, c := range commands {
		if err := p.Register(c.name, c.opts); err != nil {
			return err
		}
	}
	return nil
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		return cli.HandleError(stderr, err, false)
	}
	jsonErrors := cfg.Output.JSONErrors

	color, err := cli.ApplyColorMode(cfg.Output.Color)
	if err != nil {
		return cli.HandleError(stderr, err, jsonErrors)
	}

	log, closer, err := logging.New("cmdargs", cfg.Log, stderr, color)
	if err != nil {
		return cli.HandleError(stderr, err, jsonErrors)
	}
	defer closer.Close()

	log.Debug().
		Str("version", Version).
		Str("commit", GitCommit).
		Str("built", BuildDate).
		Msg("starting")

	policy := argparse.FlagsCompat
	if cfg.Parser.StrictFlags {
		policy = argparse.FlagsStrict
	}

	parser := argparse.New(args,
		argparse.WithLogger(log),
		argparse.WithFlagPolicy(policy),
		argparse.WithShortcuts(),
	)
	if err := declare(parser); err != nil {
		return cli.HandleError(stderr, err, jsonErrors)
	}
	log.Debug().Strs("tokens", parser.Tokens()).Msg("parsing")

	parsed, err := parser.Parse()
	if err != nil {
		return cli.HandleError(stderr, err, jsonErrors)
	}
	if parsed == nil {
		return cli.ExitSuccess
	}
	if pos := parsed.Positional(); len(pos) > 0 {
		log.Warn().Strs("tokens", pos).Msg("ignoring values before the first option")
	}

	rep := cli.NewReporter(manifestSource(cfg), parser.Registry(), stdout, cli.WithColor(color))
	switch {
	case parsed.Has("help"):
		err = rep.RenderHelp()
	case parsed.Has("version"):
		err = rep.RenderVersion()
	default:
		err = printParsed(stdout, parsed, log)
	}
	if err != nil {
		return cli.HandleError(stderr, err, jsonErrors)
	}
	return cli.ExitSuccess
}

func manifestSource(cfg *config.Config) manifest.Source {
	if cfg.Parser.ManifestPath != "" {
		return manifest.File{Path: cfg.Parser.ManifestPath}
	}
	return manifest.Installed{}
}

func printParsed(w io.Writer, parsed *argparse.ParsedArguments, log zerolog.Logger) error {
	log.Debug().Strs("names", parsed.Names()).Msg("printing parsed arguments")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(parsed)
}
