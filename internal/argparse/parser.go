// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package argparse

import (
	"unicode/utf8"

	"github.com/rs/zerolog"
)

// Parser couples a Registry with an injected token vector.
type Parser struct {
	tokens    []string
	registry  *Registry
	policy    FlagPolicy
	shortcuts bool
	log       zerolog.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger used for debug output. The default discards.
func WithLogger(log zerolog.Logger) Option {
	return func(p *Parser) {
		p.log = log
	}
}

// WithFlagPolicy selects how value-less flags are recorded.
func WithFlagPolicy(policy FlagPolicy) Option {
	return func(p *Parser) {
		p.policy = policy
	}
}

// WithShortcuts rewrites a standalone "-x" token to "--name" when x is a
// registered shortcut. Other single-dash tokens stay values and combined
// short flags ("-ab") are not split.
func WithShortcuts() Option {
	return func(p *Parser) {
		p.shortcuts = true
	}
}

// New creates a parser for tokens, conventionally os.Args[1:].
// The slice is copied.
func New(tokens []string, opts ...Option) *Parser {
	p := &Parser{
		tokens: append([]string(nil), tokens...),
		policy: FlagsCompat,
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.registry = NewRegistry(p.log)
	return p
}

// Register declares a command on the parser's registry.
func (p *Parser) Register(name string, opts CommandOptions) error {
	return p.registry.Register(name, opts)
}

// Registry returns the parser's registry.
func (p *Parser) Registry() *Registry {
	return p.registry
}

// Tokens returns a copy of the injected tokens.
func (p *Parser) Tokens() []string {
	return append([]string(nil), p.tokens...)
}

// Parse scans the injected tokens. See Scanner.Scan for the result contract.
func (p *Parser) Parse() (*ParsedArguments, error) {
	tokens := p.tokens
	if p.shortcuts {
		tokens = p.expandShortcuts(tokens)
	}
	return NewScanner(p.registry, p.policy, p.log).Scan(tokens)
}

func (p *Parser) expandShortcuts(tokens []string) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok
		if len(tok) < 2 || tok[0] != '-' || IsLongFlag(tok) {
			continue
		}
		r, size := utf8.DecodeRuneInString(tok[1:])
		if 1+size != len(tok) {
			continue
		}
		if cmd, ok := p.registry.LookupShortcut(r); ok {
			out[i] = longFlagPrefix + cmd.Name()
			p.log.Debug().Str("token", tok).Str("command", cmd.Name()).Msg("expanded shortcut")
		}
	}
	return out
}
