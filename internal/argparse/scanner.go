// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package argparse

import (
	"strings"

	"github.com/rs/zerolog"
)

// longFlagPrefix introduces a command context, e.g. "--name".
const longFlagPrefix = "--"

// FlagPolicy controls how long flags that receive no value are recorded.
type FlagPolicy int

const (
	// FlagsCompat records a flag as true only when it directly follows
	// another flag; the earlier flag of the pair is not recorded and stays
	// the current context. A lone or trailing flag is not recorded.
	//
	//	--a --b    => {b: true}
	//	--a --b x  => {b: true, a: "x"}
	FlagsCompat FlagPolicy = iota
	// FlagsStrict records every flag that receives no value as true.
	//
	//	--a --b    => {a: true, b: true}
	//	--a --b x  => {a: true, b: "x"}
	FlagsStrict
)

func (p FlagPolicy) String() string {
	switch p {
	case FlagsCompat:
		return "compat"
	case FlagsStrict:
		return "strict"
	default:
		return "unknown"
	}
}

// Scanner groups raw tokens into command/value pairs.
type Scanner struct {
	registry *Registry
	policy   FlagPolicy
	log      zerolog.Logger
}

// NewScanner returns a scanner bound to registry.
func NewScanner(registry *Registry, policy FlagPolicy, log zerolog.Logger) *Scanner {
	return &Scanner{
		registry: registry,
		policy:   policy,
		log:      log,
	}
}

// IsLongFlag reports whether token starts with the two-dash prefix.
func IsLongFlag(token string) bool {
	return strings.HasPrefix(token, longFlagPrefix)
}

// Scan walks tokens once, left to right.
//
// An empty registry is an error regardless of tokens. Zero tokens yield a
// nil result and nil error. Long-flag names are not checked against the
// registry.
func (s *Scanner) Scan(tokens []string) (*ParsedArguments, error) {
	if s.registry == nil || s.registry.Len() == 0 {
		return nil, ErrNoCommands
	}
	if len(tokens) == 0 {
		return nil, nil
	}

	result := newParsedArguments()
	var (
		current    string
		haveCmd    bool
		values     []string
		prevIsFlag bool
	)

	for _, token := range tokens {
		if IsLongFlag(token) {
			name := strings.TrimPrefix(token, longFlagPrefix)
			values = values[:0:0]

			switch {
			case !prevIsFlag:
				current, haveCmd = name, true
				prevIsFlag = true
			case s.policy == FlagsStrict:
				result.set(current, FlagValue())
				current = name
			default:
				result.set(name, FlagValue())
			}
			continue
		}

		prevIsFlag = false
		if !haveCmd {
			result.positional = append(result.positional, token)
			continue
		}
		values = append(values, token)
		if len(values) == 1 {
			result.set(current, ScalarValue(token))
		} else {
			result.set(current, ListValue(values...))
		}
	}

	if s.policy == FlagsStrict && prevIsFlag {
		result.set(current, FlagValue())
	}

	s.log.Debug().
		Int("tokens", len(tokens)).
		Int("names", result.Len()).
		Str("policy", s.policy.String()).
		Msg("arguments scanned")
	return result, nil
}
