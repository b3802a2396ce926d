// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// UNICODE: Width-aware helpers keep help columns aligned when command names
// contain double-width (CJK) or combining characters.

// StringWidth returns the display width of a string in terminal cells.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// MaxWidth returns the widest display width among values, 0 for none.
func MaxWidth(values []string) int {
	max := 0
	for _, v := range values {
		if w := StringWidth(v); w > max {
			max = w
		}
	}
	return max
}

// PadRight pads s with spaces to the given display width.
// Strings already at or beyond width are returned unchanged.
func PadRight(s string, width int) string {
	w := StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
