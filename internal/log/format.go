// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

// Format is the format of the logs.
type Format uint8

const (
	// FormatConsole writes human readable lines with coloured levels.
	FormatConsole Format = iota
	// FormatText writes human readable lines without colours.
	FormatText
)
