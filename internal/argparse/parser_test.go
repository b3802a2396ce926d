// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package argparse

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Parse(t *testing.T) {
	p := New([]string{"--test1", "SpecialVal", "--hello", "10", "20"})
	require.NoError(t, p.Register("test1", CommandOptions{Shortcut: "s", Description: "Speciale test String"}))
	require.NoError(t, p.Register("hello", CommandOptions{Shortcut: "n", Description: "Speciale test Number"}))

	got, err := p.Parse()
	require.NoError(t, err)

	v, ok := got.Get("test1")
	require.True(t, ok)
	assert.Equal(t, "SpecialVal", v.String())

	v, ok = got.Get("hello")
	require.True(t, ok)
	assert.Equal(t, []string{"10", "20"}, v.Strings())
}

func TestParser_TokensAreCopied(t *testing.T) {
	tokens := []string{"--test1", "a"}
	p := New(tokens)
	p.Registry().MustRegister("test1", CommandOptions{})

	tokens[1] = "mutated"

	got, err := p.Parse()
	require.NoError(t, err)
	v, _ := got.Get("test1")
	assert.Equal(t, "a", v.String())
	assert.Equal(t, []string{"--test1", "a"}, p.Tokens())
}

func TestParser_NoCommands(t *testing.T) {
	_, err := New([]string{"--x"}).Parse()
	assert.ErrorIs(t, err, ErrNoCommands)
}

func TestParser_EmptyTokens(t *testing.T) {
	p := New(nil)
	require.NoError(t, p.Register("x", CommandOptions{}))
	got, err := p.Parse()
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestParser_WithFlagPolicy(t *testing.T) {
	p := New([]string{"--flagA", "--flagB"}, WithFlagPolicy(FlagsStrict))
	require.NoError(t, p.Register("flagA", CommandOptions{}))

	got, err := p.Parse()
	require.NoError(t, err)
	assert.Equal(t, []string{"flagA", "flagB"}, got.Names())
}

func TestParser_WithShortcuts(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   []entry
	}{
		{
			name:   "shortcut expands to its command",
			tokens: []string{"-s", "SpecialVal", "-n", "10"},
			want:   []entry{{"test1", ScalarValue("SpecialVal")}, {"hello", ScalarValue("10")}},
		},
		{
			name:   "unknown shortcut stays a value",
			tokens: []string{"--test1", "-z"},
			want:   []entry{{"test1", ScalarValue("-z")}},
		},
		{
			name:   "combined shortcuts are not split",
			tokens: []string{"--test1", "-sn"},
			want:   []entry{{"test1", ScalarValue("-sn")}},
		},
		{
			name:   "negative number stays a value",
			tokens: []string{"--hello", "-1"},
			want:   []entry{{"hello", ScalarValue("-1")}},
		},
		{
			name:   "multibyte shortcut",
			tokens: []string{"-λ", "x"},
			want:   []entry{{"lambda", ScalarValue("x")}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(tt.tokens, WithShortcuts())
			require.NoError(t, p.Register("test1", CommandOptions{Shortcut: "s"}))
			require.NoError(t, p.Register("hello", CommandOptions{Shortcut: "n"}))
			require.NoError(t, p.Register("lambda", CommandOptions{Shortcut: "λ"}))

			got, err := p.Parse()
			require.NoError(t, err)
			assertEntries(t, got, tt.want)
			assert.Equal(t, tt.tokens, p.Tokens(), "injected tokens are not rewritten")
		})
	}
}

func TestParser_ShortcutsOffByDefault(t *testing.T) {
	p := New([]string{"-s", "x"})
	require.NoError(t, p.Register("test1", CommandOptions{Shortcut: "s"}))

	got, err := p.Parse()
	require.NoError(t, err)
	assert.Equal(t, 0, got.Len())
	assert.Equal(t, []string{"-s", "x"}, got.Positional())
}

func TestParser_WithLogger(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)

	p := New([]string{"--a", "1"}, WithLogger(log))
	require.NoError(t, p.Register("a", CommandOptions{Shortcut: "a"}))
	require.Error(t, p.Register("a", CommandOptions{}))
	_, err := p.Parse()
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"message":"command registered"`)
	assert.Contains(t, out, `"message":"arguments scanned"`)
	assert.Contains(t, out, `"policy":"compat"`)
}
