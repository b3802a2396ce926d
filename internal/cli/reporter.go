// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// reporter.go - Help and version output for registered commands.
//
// Both renderers read the manifest on every call.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/cmdargs/internal/argparse"
	"github.com/jeranaias/cmdargs/internal/manifest"
	"github.com/jeranaias/cmdargs/internal/util"
)

const (
	// helpIndent prefixes every option line
	helpIndent = "  "
	// helpGap separates the longest name from its description
	helpGap = "  "
	// noShortcut replaces "-x, " for commands without a shortcut
	noShortcut = "    "
)

// Reporter renders help and version text.
type Reporter struct {
	source   manifest.Source
	registry *argparse.Registry
	out      io.Writer
	color    bool
}

// ReporterOption configures a Reporter.
type ReporterOption func(*Reporter)

// WithColor forces colored output on or off. The default follows ColorsEnabled.
func WithColor(enabled bool) ReporterOption {
	return func(r *Reporter) {
		r.color = enabled
	}
}

// NewReporter creates a reporter that writes to out.
func NewReporter(source manifest.Source, registry *argparse.Registry, out io.Writer, opts ...ReporterOption) *Reporter {
	r := &Reporter{
		source:   source,
		registry: registry,
		out:      out,
		color:    ColorsEnabled(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RenderHelp prints the usage line, the manifest description and one line
// per registered command, descriptions aligned on a single column.
func (r *Reporter) RenderHelp() error {
	md, err := r.source.Load()
	if err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Usage: %s [option]\n\n", r.paint(TitleStyle, md.Name))
	if md.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", md.Description)
	}
	fmt.Fprintf(&b, "%s\n", r.paint(SectionStyle, "options:"))

	for _, line := range r.optionLines() {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	_, err = io.WriteString(r.out, b.String())
	return err
}

// RenderVersion prints "v<version>".
func (r *Reporter) RenderVersion() error {
	md, err := r.source.Load()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.out, r.paint(ValueStyle, "v"+md.Version))
	return err
}

// optionLines formats registered commands in registration order.
func (r *Reporter) optionLines() []string {
	if r.registry == nil {
		return nil
	}
	cmds := r.registry.Commands()

	// The column is set by the widest "-x, --name" cell; a wide shortcut
	// rune counts.
	cells := make([]string, len(cmds))
	for i, cmd := range cmds {
		short := noShortcut
		if cmd.HasShortcut() {
			short = fmt.Sprintf("-%c, ", cmd.Shortcut())
		}
		cells[i] = short + "--" + cmd.Name()
	}
	width := util.MaxWidth(cells)
	continuation := "\n" + strings.Repeat(" ", util.StringWidth(helpIndent)+width+util.StringWidth(helpGap))

	lines := make([]string, 0, len(cmds))
	for i, cmd := range cmds {
		tail := strings.ReplaceAll(cmd.Description(), "\n", continuation)
		if def := cmd.DefaultString(); def != "" {
			d := r.paint(DimStyle, "(default: "+def+")")
			if tail == "" {
				tail = d
			} else {
				tail += " " + d
			}
		}
		line := helpIndent + r.paint(FlagStyle, cells[i])
		if tail != "" {
			line = helpIndent + r.paint(FlagStyle, util.PadRight(cells[i], width)) + helpGap + tail
		}
		lines = append(lines, line)
	}
	return lines
}

func (r *Reporter) paint(style lipgloss.Style, text string) string {
	if !r.color {
		return text
	}
	return style.Render(text)
}
