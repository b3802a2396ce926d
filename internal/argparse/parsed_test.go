// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package argparse

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_Accessors(t *testing.T) {
	flag := FlagValue()
	assert.Equal(t, KindFlag, flag.Kind())
	assert.True(t, flag.IsFlag())
	assert.Equal(t, "", flag.String())
	assert.Nil(t, flag.Strings())

	scalar := ScalarValue("x")
	assert.Equal(t, KindScalar, scalar.Kind())
	assert.False(t, scalar.IsList())
	assert.Equal(t, "x", scalar.String())
	assert.Equal(t, []string{"x"}, scalar.Strings())

	list := ListValue("a", "b")
	assert.Equal(t, KindList, list.Kind())
	assert.True(t, list.IsList())
	assert.Equal(t, "a", list.String())
	assert.Equal(t, []string{"a", "b"}, list.Strings())

	assert.Equal(t, scalar, ListValue("x"), "single element collapses to scalar")
}

func TestValue_EmptyList(t *testing.T) {
	empty := ListValue()
	assert.Equal(t, KindList, empty.Kind())
	assert.True(t, empty.IsList())
	assert.Equal(t, "", empty.String())
	assert.Empty(t, empty.Strings())

	data, err := json.Marshal(empty)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}

func TestValue_StringsIsCopy(t *testing.T) {
	list := ListValue("a", "b")
	got := list.Strings()
	got[0] = "z"
	assert.Equal(t, []string{"a", "b"}, list.Strings())
}

func TestParsedArguments_MarshalJSON(t *testing.T) {
	p := newParsedArguments()
	p.set("zeta", ScalarValue("1"))
	p.set("alpha", FlagValue())
	p.set("mid", ListValue("x", "y"))
	p.set("zeta", ScalarValue("2"))
	p.set("empty", ListValue())

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Equal(t, `{"zeta":"2","alpha":true,"mid":["x","y"],"empty":[]}`, string(data))
}

func TestParsedArguments_NilSafe(t *testing.T) {
	var p *ParsedArguments
	assert.Equal(t, 0, p.Len())
	assert.Nil(t, p.Names())
	assert.Nil(t, p.Positional())
	assert.False(t, p.Has("x"))

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "flag", KindFlag.String())
	assert.Equal(t, "scalar", KindScalar.String())
	assert.Equal(t, "list", KindList.String())
	assert.Equal(t, "unknown", Kind(99).String())
}
