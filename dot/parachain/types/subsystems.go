// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package parachaintypes

// SubSystemName is the name of a parachain subsystem.
type SubSystemName string

const (
	RuntimeAPI SubSystemName = "RuntimeAPI"
)
