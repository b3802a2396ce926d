// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package argparse

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry() *Registry {
	return NewRegistry(zerolog.Nop())
}

func TestRegistry_Register(t *testing.T) {
	r := newTestRegistry()

	require.NoError(t, r.Register("test1", CommandOptions{
		Shortcut:    "s",
		Description: "Speciale test String",
		Default:     "SpecialVal",
	}))
	require.NoError(t, r.Register("hello", CommandOptions{
		Shortcut:    "n",
		Description: "Speciale test Number",
		Default:     10,
	}))
	require.NoError(t, r.Register("test3", CommandOptions{
		Shortcut:    "b",
		Description: "Speciale test boolean",
		Default:     true,
	}))

	require.Equal(t, 3, r.Len())

	cmd, ok := r.Lookup("hello")
	require.True(t, ok)
	assert.Equal(t, "hello", cmd.Name())
	assert.Equal(t, 'n', cmd.Shortcut())
	assert.Equal(t, "Speciale test Number", cmd.Description())
	assert.Equal(t, 10, cmd.Default())
	assert.Equal(t, "10", cmd.DefaultString())

	cmd, ok = r.LookupShortcut('b')
	require.True(t, ok)
	assert.Equal(t, "test3", cmd.Name())

	names := make([]string, 0, r.Len())
	for _, c := range r.Commands() {
		names = append(names, c.Name())
	}
	assert.Equal(t, []string{"test1", "hello", "test3"}, names)
}

func TestRegistry_ShortcutOptional(t *testing.T) {
	r := newTestRegistry()
	require.NoError(t, r.Register("alpha", CommandOptions{}))
	require.NoError(t, r.Register("beta", CommandOptions{}))

	cmd, ok := r.Lookup("alpha")
	require.True(t, ok)
	assert.False(t, cmd.HasShortcut())
	assert.Equal(t, "", cmd.DefaultString())
}

func TestRegistry_DuplicateName(t *testing.T) {
	tests := []struct {
		name   string
		second CommandOptions
	}{
		{name: "identical", second: CommandOptions{Shortcut: "a", Description: "first"}},
		{name: "different shortcut", second: CommandOptions{Shortcut: "z", Description: "first"}},
		{name: "different description", second: CommandOptions{Shortcut: "y", Description: "other"}},
		{name: "no shortcut", second: CommandOptions{Default: 42}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRegistry()
			require.NoError(t, r.Register("dup", CommandOptions{Shortcut: "a", Description: "first"}))

			err := r.Register("dup", tt.second)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrDuplicateName), "got %v", err)
			assert.True(t, IsRegistrationError(err))
			assert.Equal(t, 1, r.Len())
		})
	}
}

func TestRegistry_DuplicateShortcut(t *testing.T) {
	r := newTestRegistry()
	require.NoError(t, r.Register("hello", CommandOptions{Shortcut: "n", Description: "Speciale test Number", Default: 10}))

	err := r.Register("test2bis", CommandOptions{Shortcut: "n", Description: "ccwxcwxcwxc", Default: 1542})
	require.ErrorIs(t, err, ErrDuplicateShortcut)

	var re *RegistrationError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "test2bis", re.Name)
	assert.Equal(t, "shortcut", re.Field)
	assert.Equal(t, "n", re.Value)

	// registry unchanged, the name is still free
	assert.Equal(t, 1, r.Len())
	_, ok := r.Lookup("test2bis")
	assert.False(t, ok)
	require.NoError(t, r.Register("test2bis", CommandOptions{Shortcut: "m"}))
}

func TestRegistry_Validation(t *testing.T) {
	tests := []struct {
		name    string
		cmdName string
		opts    CommandOptions
		wantErr error
		field   string
	}{
		{name: "missing name", cmdName: "", wantErr: ErrMissingName, field: "name"},
		{name: "name with control character", cmdName: "a\x01b", wantErr: ErrInvalidType, field: "name"},
		{name: "name with tab", cmdName: "a\tb", wantErr: ErrInvalidType, field: "name"},
		{name: "name invalid utf8", cmdName: "bad\xff", wantErr: ErrInvalidType, field: "name"},
		{name: "shortcut too long", cmdName: "ok", opts: CommandOptions{Shortcut: "ab"}, wantErr: ErrInvalidType, field: "shortcut"},
		{name: "shortcut dash", cmdName: "ok", opts: CommandOptions{Shortcut: "-"}, wantErr: ErrInvalidType, field: "shortcut"},
		{name: "shortcut space", cmdName: "ok", opts: CommandOptions{Shortcut: " "}, wantErr: ErrInvalidType, field: "shortcut"},
		{name: "invalid utf8 description", cmdName: "ok", opts: CommandOptions{Description: "\xff"}, wantErr: ErrInvalidType, field: "description"},
		{name: "slice default", cmdName: "ok", opts: CommandOptions{Default: []string{"a"}}, wantErr: ErrInvalidType, field: "default"},
		{name: "struct default", cmdName: "ok", opts: CommandOptions{Default: struct{}{}}, wantErr: ErrInvalidType, field: "default"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRegistry()
			err := r.Register(tt.cmdName, tt.opts)
			require.ErrorIs(t, err, tt.wantErr)

			var re *RegistrationError
			require.ErrorAs(t, err, &re)
			assert.Equal(t, tt.field, re.Field)
			assert.Equal(t, 0, r.Len())
		})
	}
}

func TestRegistry_NamesReachableByScanner(t *testing.T) {
	// "--two words" and "---x" both reach the scanner as names.
	r := newTestRegistry()
	require.NoError(t, r.Register("two words", CommandOptions{}))
	require.NoError(t, r.Register("-x", CommandOptions{}))
	require.NoError(t, r.Register("multi", CommandOptions{Description: "first line\nsecond line"}))

	s := NewScanner(r, FlagsCompat, zerolog.Nop())
	got, err := s.Scan([]string{"--two words", "a", "---x", "b"})
	require.NoError(t, err)
	assertEntries(t, got, []entry{{"two words", ScalarValue("a")}, {"-x", ScalarValue("b")}})

	cmd, ok := r.Lookup("multi")
	require.True(t, ok)
	assert.Equal(t, "first line\nsecond line", cmd.Description())
}

func TestRegistry_AcceptedDefaults(t *testing.T) {
	defaults := []any{nil, "text", true, false, 10, int64(-3), uint8(7), 1.5, float32(2)}
	r := newTestRegistry()
	for i, d := range defaults {
		name := string(rune('a' + i))
		require.NoError(t, r.Register(name, CommandOptions{Default: d}), "default %#v", d)
	}
	assert.Equal(t, len(defaults), r.Len())
}

func TestRegistry_UnicodeShortcut(t *testing.T) {
	r := newTestRegistry()
	require.NoError(t, r.Register("lambda", CommandOptions{Shortcut: "λ"}))

	cmd, ok := r.LookupShortcut('λ')
	require.True(t, ok)
	assert.Equal(t, "lambda", cmd.Name())
}

func TestRegistry_MustRegisterPanics(t *testing.T) {
	r := newTestRegistry()
	r.MustRegister("dup", CommandOptions{})
	assert.Panics(t, func() {
		r.MustRegister("dup", CommandOptions{})
	})
}

func TestRegistry_CommandsIsCopy(t *testing.T) {
	r := newTestRegistry()
	r.MustRegister("one", CommandOptions{Shortcut: "o"})

	cmds := r.Commands()
	cmds[0] = Command{name: "mutated"}

	cmd, ok := r.Lookup("one")
	require.True(t, ok)
	assert.Equal(t, "one", cmd.Name())
	assert.Equal(t, "one", r.Commands()[0].Name())
}
