// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package argparse

import (
	"github.com/rs/zerolog"
)

// Registry holds declared commands in registration order.
// It is owned by a single caller: populate it, then scan. No locking is done.
type Registry struct {
	commands   []Command
	byName     map[string]int
	byShortcut map[rune]int
	log        zerolog.Logger
}

// NewRegistry creates an empty registry that logs to log.
func NewRegistry(log zerolog.Logger) *Registry {
	return &Registry{
		byName:     make(map[string]int),
		byShortcut: make(map[rune]int),
		log:        log,
	}
}

// Register declares a command. A failed call leaves the registry unchanged.
func (r *Registry) Register(name string, opts CommandOptions) error {
	cmd, err := newCommand(name, opts)
	if err != nil {
		r.log.Debug().Err(err).Str("name", name).Msg("command rejected")
		return err
	}

	if _, exists := r.byName[cmd.name]; exists {
		return newRegistrationError(name, "name", name, ErrDuplicateName)
	}
	if cmd.HasShortcut() {
		if _, exists := r.byShortcut[cmd.shortcut]; exists {
			return newRegistrationError(name, "shortcut", opts.Shortcut, ErrDuplicateShortcut)
		}
	}

	idx := len(r.commands)
	r.commands = append(r.commands, cmd)
	r.byName[cmd.name] = idx
	if cmd.HasShortcut() {
		r.byShortcut[cmd.shortcut] = idx
	}

	r.log.Debug().
		Str("name", cmd.name).
		Str("shortcut", opts.Shortcut).
		Int("count", len(r.commands)).
		Msg("command registered")
	return nil
}

// MustRegister is like Register but panics on error.
// Intended for static declarations in main packages.
func (r *Registry) MustRegister(name string, opts CommandOptions) {
	if err := r.Register(name, opts); err != nil {
		panic(err)
	}
}

// Lookup returns the command registered under name.
func (r *Registry) Lookup(name string) (Command, bool) {
	idx, ok := r.byName[name]
	if !ok {
		return Command{}, false
	}
	return r.commands[idx], true
}

// LookupShortcut returns the command whose shortcut is s.
func (r *Registry) LookupShortcut(s rune) (Command, bool) {
	idx, ok := r.byShortcut[s]
	if !ok {
		return Command{}, false
	}
	return r.commands[idx], true
}

// Commands returns a copy of the declared commands in registration order.
func (r *Registry) Commands() []Command {
	out := make([]Command, len(r.commands))
	copy(out, r.commands)
	return out
}

// Len returns the number of declared commands.
func (r *Registry) Len() int {
	return len(r.commands)
}
