// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package availabilitydistribution

import (
	"context"

	parachaintypes "github.com/ChainSafe/parachain-availability/dot/parachain/types"
	"github.com/ChainSafe/parachain-availability/lib/common"
)

// RuntimeAPI queries session data from the runtime.
type RuntimeAPI interface {
	// SessionIndexForChild returns the session index of a child of the relay parent.
	SessionIndexForChild(ctx context.Context, parent common.Hash) (parachaintypes.SessionIndex, error)
	// SessionInfo returns the session info of a session, or nil if the session does not exist.
	SessionInfo(ctx context.Context, parent common.Hash, sessionIndex parachaintypes.SessionIndex) (
		*parachaintypes.SessionInfo, error)
}
