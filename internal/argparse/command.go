// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package argparse

import (
	"fmt"
	"reflect"
	"unicode"
	"unicode/utf8"
)

// CommandOptions holds the optional fields of a command declaration.
type CommandOptions struct {
	// Shortcut is a single-character alias such as "v". Empty means none.
	Shortcut string
	// Description is shown in help output.
	Description string
	// Default is advisory only; the scanner never applies it.
	// Accepted kinds: nil, string, bool, any integer or float.
	Default any
}

// Command is a declared option. Commands are immutable once registered.
type Command struct {
	name        string
	shortcut    rune
	description string
	defaultVal  any
}

// Name returns the long name used as "--name".
func (c Command) Name() string { return c.name }

// Shortcut returns the alias rune, or 0 when the command has none.
func (c Command) Shortcut() rune { return c.shortcut }

// HasShortcut reports whether a shortcut was declared.
func (c Command) HasShortcut() bool { return c.shortcut != 0 }

// Description returns the help text.
func (c Command) Description() string { return c.description }

// Default returns the advisory default value, or nil.
func (c Command) Default() any { return c.defaultVal }

// DefaultString renders the default value as text, "" when unset.
func (c Command) DefaultString() string {
	if c.defaultVal == nil {
		return ""
	}
	return fmt.Sprint(c.defaultVal)
}

// newCommand validates name and opts and builds a Command.
func newCommand(name string, opts CommandOptions) (Command, error) {
	if name == "" {
		return Command{}, newRegistrationError(name, "name", "", ErrMissingName)
	}
	if !validName(name) {
		return Command{}, newRegistrationError(name, "name", name, fmt.Errorf("%w: name must be printable text", ErrInvalidType))
	}

	var shortcut rune
	if opts.Shortcut != "" {
		r, ok := validShortcut(opts.Shortcut)
		if !ok {
			return Command{}, newRegistrationError(name, "shortcut", opts.Shortcut, fmt.Errorf("%w: shortcut must be a single character", ErrInvalidType))
		}
		shortcut = r
	}

	// Absent or text.
	if !utf8.ValidString(opts.Description) {
		return Command{}, newRegistrationError(name, "description", "", fmt.Errorf("%w: description must be text", ErrInvalidType))
	}

	if !validDefault(opts.Default) {
		return Command{}, newRegistrationError(name, "default", "", fmt.Errorf("%w: default must be text, number or boolean, got %T", ErrInvalidType, opts.Default))
	}

	return Command{
		name:        name,
		shortcut:    shortcut,
		description: opts.Description,
		defaultVal:  opts.Default,
	}, nil
}

// validName accepts any printable UTF-8 text; the scanner takes whatever
// follows "--" as a name, so spaces and extra dashes are reachable.
func validName(name string) bool {
	if !utf8.ValidString(name) {
		return false
	}
	for _, r := range name {
		if !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}

func validShortcut(s string) (rune, bool) {
	if !utf8.ValidString(s) || utf8.RuneCountInString(s) != 1 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == '-' || unicode.IsSpace(r) || !unicode.IsPrint(r) {
		return 0, false
	}
	return r, true
}

func validDefault(v any) bool {
	if v == nil {
		return true
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
