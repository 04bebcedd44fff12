// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package parachain

import (
	"bytes"
	"errors"
	"fmt"

	parachaintypes "github.com/ChainSafe/parachain-availability/dot/parachain/types"
	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

const (
	sessionIndexForChildCall = "ParachainHost_session_index_for_child"
	sessionInfoCall          = "ParachainHost_session_info"
)

var errInvalidOptionByte = errors.New("invalid option byte")

// Executor executes an exported runtime function with SCALE encoded
// arguments and returns the SCALE encoded result.
type Executor interface {
	Exec(function string, data []byte) ([]byte, error)
}

// RuntimeInstance for runtime methods
type RuntimeInstance interface {
	ParachainHostSessionIndexForChild() (parachaintypes.SessionIndex, error)
	ParachainHostSessionInfo(sessionIndex parachaintypes.SessionIndex) (*parachaintypes.SessionInfo, error)
}

var _ RuntimeInstance = (*Instance)(nil)

// Instance calls the parachain host runtime API of a runtime at a given block.
type Instance struct {
	executor Executor
}

// NewInstance creates an Instance calling into the given executor.
func NewInstance(executor Executor) *Instance {
	return &Instance{executor: executor}
}

// ParachainHostSessionIndexForChild returns the session index expected at a child of the
// block the runtime is instantiated at.
func (in *Instance) ParachainHostSessionIndexForChild() (parachaintypes.SessionIndex, error) {
	encodedSessionIndex, err := in.executor.Exec(sessionIndexForChildCall, []byte{})
	if err != nil {
		return 0, fmt.Errorf("exec %s: %w", sessionIndexForChildCall, err)
	}

	var sessionIndex parachaintypes.SessionIndex
	err = scale.NewDecoder(bytes.NewReader(encodedSessionIndex)).Decode(&sessionIndex)
	if err != nil {
		return 0, fmt.Errorf("scale decoding session index: %w", err)
	}

	return sessionIndex, nil
}

// ParachainHostSessionInfo returns the session info of the given session.
// It returns nil if the runtime does not know the session.
func (in *Instance) ParachainHostSessionInfo(sessionIndex parachaintypes.SessionIndex) (
	*parachaintypes.SessionInfo, error) {
	buffer := bytes.NewBuffer(nil)
	encoder := scale.NewEncoder(buffer)
	err := encoder.Encode(sessionIndex)
	if err != nil {
		return nil, fmt.Errorf("encoding session index: %w", err)
	}

	encodedSessionInfo, err := in.executor.Exec(sessionInfoCall, buffer.Bytes())
	if err != nil {
		return nil, fmt.Errorf("exec %s: %w", sessionInfoCall, err)
	}

	decoder := scale.NewDecoder(bytes.NewReader(encodedSessionInfo))
	optionByte, err := decoder.ReadOneByte()
	if err != nil {
		return nil, fmt.Errorf("scale decoding session info option: %w", err)
	}

	switch optionByte {
	case 0:
		return nil, nil
	case 1:
	default:
		return nil, fmt.Errorf("%w: %d", errInvalidOptionByte, optionByte)
	}

	sessionInfo := new(parachaintypes.SessionInfo)
	err = decoder.Decode(sessionInfo)
	if err != nil {
		return nil, fmt.Errorf("scale decoding session info: %w", err)
	}

	return sessionInfo, nil
}
