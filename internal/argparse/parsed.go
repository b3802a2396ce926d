// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package argparse

import (
	"bytes"
	"encoding/json"
)

// Kind identifies which form a Value holds.
type Kind int

const (
	// KindFlag is a long flag recorded without a value (boolean true).
	KindFlag Kind = iota
	// KindScalar is a single text value.
	KindScalar
	// KindList is two or more text values in input order.
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindFlag:
		return "flag"
	case KindScalar:
		return "scalar"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}

// Value is the value recorded for one command name.
type Value struct {
	kind   Kind
	values []string
}

// FlagValue returns the boolean-true value.
func FlagValue() Value {
	return Value{kind: KindFlag}
}

// ScalarValue returns a single text value.
func ScalarValue(s string) Value {
	return Value{kind: KindScalar, values: []string{s}}
}

// ListValue returns an ordered sequence value. A single element collapses
// to a scalar; no elements yield an empty list.
func ListValue(values ...string) Value {
	if len(values) == 1 {
		return ScalarValue(values[0])
	}
	return Value{kind: KindList, values: append([]string(nil), values...)}
}

// Kind returns the form of the value.
func (v Value) Kind() Kind { return v.kind }

// IsFlag reports whether the value is boolean true.
func (v Value) IsFlag() bool { return v.kind == KindFlag }

// IsList reports whether the value is a sequence.
func (v Value) IsList() bool { return v.kind == KindList }

// String returns the scalar text, the first element of a list, or "" for a flag.
func (v Value) String() string {
	if len(v.values) == 0 {
		return ""
	}
	return v.values[0]
}

// Strings returns all values in input order; nil for a flag.
func (v Value) Strings() []string {
	if v.kind == KindFlag {
		return nil
	}
	return append([]string(nil), v.values...)
}

// MarshalJSON encodes a flag as true, a scalar as a string and a list as an array.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindFlag:
		return []byte("true"), nil
	case KindScalar:
		return json.Marshal(v.String())
	default:
		values := v.Strings()
		if values == nil {
			values = []string{}
		}
		return json.Marshal(values)
	}
}

// ParsedArguments maps command names to values, preserving the order in
// which names first appeared in the input.
type ParsedArguments struct {
	order      []string
	values     map[string]Value
	positional []string
}

func newParsedArguments() *ParsedArguments {
	return &ParsedArguments{values: make(map[string]Value)}
}

// set assigns name. An existing name keeps its original position.
func (p *ParsedArguments) set(name string, v Value) {
	if _, exists := p.values[name]; !exists {
		p.order = append(p.order, name)
	}
	p.values[name] = v
}

// Get returns the value recorded for name.
func (p *ParsedArguments) Get(name string) (Value, bool) {
	if p == nil {
		return Value{}, false
	}
	v, ok := p.values[name]
	return v, ok
}

// Has reports whether name was seen.
func (p *ParsedArguments) Has(name string) bool {
	_, ok := p.Get(name)
	return ok
}

// Names returns recorded names in first-appearance order.
func (p *ParsedArguments) Names() []string {
	if p == nil {
		return nil
	}
	return append([]string(nil), p.order...)
}

// Len returns the number of recorded names.
func (p *ParsedArguments) Len() int {
	if p == nil {
		return 0
	}
	return len(p.order)
}

// Positional returns bare tokens that appeared before any long flag.
func (p *ParsedArguments) Positional() []string {
	if p == nil {
		return nil
	}
	return append([]string(nil), p.positional...)
}

// MarshalJSON encodes the mapping as a JSON object in first-appearance order.
func (p *ParsedArguments) MarshalJSON() ([]byte, error) {
	if p == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range p.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		val, err := p.values[name].MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
