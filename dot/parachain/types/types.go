// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package parachaintypes

import (
	"fmt"

	"github.com/ChainSafe/parachain-availability/lib/crypto/sr25519"
)

// SessionIndex is a session index.
type SessionIndex uint32

// ValidatorIndex is the index of a validator in the validator set of a session.
type ValidatorIndex uint32

// GroupIndex is the unique identifier of a validator group within a session.
type GroupIndex uint32

// ValidatorID is the sr25519 public key of a parachain validator.
type ValidatorID [sr25519.PublicKeyLength]byte

// AuthorityDiscoveryID is the public key used to discover and reach a validator
// over the network.
type AuthorityDiscoveryID [sr25519.PublicKeyLength]byte

func (a AuthorityDiscoveryID) String() string {
	return fmt.Sprintf("0x%x", a[:])
}

// AssignmentID is the public key used for approval voting assignments.
type AssignmentID [sr25519.PublicKeyLength]byte

// SessionInfo is the information about a session as known by the runtime.
// Field order follows the SCALE encoding of the runtime structure.
type SessionInfo struct {
	// All the validators actively participating in parachain consensus, indices into the
	// full validator set.
	ActiveValidatorIndices []ValidatorIndex
	// A secure random seed for the session, gathered from BABE.
	RandomSeed [32]byte
	// The amount of sessions to keep for disputes.
	DisputePeriod SessionIndex
	// Validators in canonical ordering.
	Validators []ValidatorID
	// Validators' authority discovery keys for the session in canonical ordering.
	DiscoveryKeys []AuthorityDiscoveryID
	// The assignment keys for validators.
	AssignmentKeys []AssignmentID
	// Validators in shuffled ordering - these are the validator groups as produced
	// by the `Scheduler` module for the session and are typically referred to by
	// `GroupIndex`.
	ValidatorGroups [][]ValidatorIndex
	// The number of availability cores used by the protocol during this session.
	NCores uint32
	// The zeroth delay tranche width.
	ZerothDelayTrancheWidth uint32
	// The number of samples we do of `relay_vrf_modulo`.
	RelayVRFModuloSamples uint32
	// The number of delay tranches in total.
	NDelayTranches uint32
	// How many slots (BABE / SASSAFRAS) must pass before an assignment is considered a
	// no-show.
	NoShowSlots uint32
	// The number of validators needed to approve a block.
	NeededApprovals uint32
}
