// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small string helpers shared by the cmdargs packages.
//
// # Key Functions
//
//   - StringWidth, MaxWidth: terminal cell width of text
//   - PadRight: width-aware right padding for column layout
//
// # Usage
//
//	width := util.MaxWidth(names)
//	for _, n := range names {
//	    fmt.Println(util.PadRight(n, width), "|")
//	}
package util
