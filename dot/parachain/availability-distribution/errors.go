// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package availabilitydistribution

import "errors"

var (
	// ErrQueryFailed is returned when a runtime query failed or was cancelled.
	ErrQueryFailed = errors.New("runtime query failed")
	// ErrNoSuchSession is returned when the runtime does not know the requested session.
	ErrNoSuchSession = errors.New("no such session")
	// ErrSessionNotCached is returned when bad validators are reported for a session
	// which is not cached.
	ErrSessionNotCached = errors.New("session is not cached")
	// ErrValidatorGroupNotFound is returned when bad validators are reported for a group
	// the cached session does not have.
	ErrValidatorGroupNotFound = errors.New("validator group not found")
	// ErrInvariantViolation is returned when the runtime returned inconsistent session data.
	ErrInvariantViolation = errors.New("session data invariant violated")
)
