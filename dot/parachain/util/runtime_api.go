// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package util

import (
	"context"
	"fmt"

	parachaintypes "github.com/ChainSafe/parachain-availability/dot/parachain/types"
	"github.com/ChainSafe/parachain-availability/lib/common"
)

// RuntimeAPIMessage is a request to the runtime API subsystem, evaluated against the
// runtime state at RelayParent. The response is sent on ResponseChannel as a
// RuntimeAPIResponse.
type RuntimeAPIMessage[message any] struct {
	RelayParent     common.Hash
	Message         message
	ResponseChannel chan any
}

// RuntimeAPIResponse is the answer to a RuntimeAPIMessage.
type RuntimeAPIResponse[T any] struct {
	Value T
	Error error
}

// SessionIndexForChild requests the session index expected at a child of the relay parent.
type SessionIndexForChild struct{}

// SessionInfoRequest requests the session info of a session.
type SessionInfoRequest struct {
	SessionIndex parachaintypes.SessionIndex
}

// RequestSessionIndexForChild asks the runtime API subsystem for the session index of a child
// of the given relay parent.
func RequestSessionIndexForChild(
	ctx context.Context,
	overseerChannel chan<- any,
	parent common.Hash,
) (parachaintypes.SessionIndex, error) {
	index, err := requestRuntimeAPI[SessionIndexForChild, parachaintypes.SessionIndex](
		ctx, overseerChannel, parent, SessionIndexForChild{})
	if err != nil {
		return 0, fmt.Errorf("requesting session index for child of %s: %w", parent, err)
	}
	return index, nil
}

// RequestSessionInfo asks the runtime API subsystem for the session info of the given session,
// using the runtime at the given relay parent. A nil session info means the session is unknown.
func RequestSessionInfo(
	ctx context.Context,
	overseerChannel chan<- any,
	parent common.Hash,
	sessionIndex parachaintypes.SessionIndex,
) (*parachaintypes.SessionInfo, error) {
	info, err := requestRuntimeAPI[SessionInfoRequest, *parachaintypes.SessionInfo](
		ctx, overseerChannel, parent, SessionInfoRequest{SessionIndex: sessionIndex})
	if err != nil {
		return nil, fmt.Errorf("requesting session info for session %d: %w", sessionIndex, err)
	}
	return info, nil
}

func requestRuntimeAPI[Request, Response any](
	ctx context.Context,
	overseerChannel chan<- any,
	parent common.Hash,
	request Request,
) (value Response, err error) {
	respChan := make(chan any, 1)
	message := RuntimeAPIMessage[Request]{
		RelayParent:     parent,
		Message:         request,
		ResponseChannel: respChan,
	}

	res, err := Call(ctx, overseerChannel, message, respChan)
	if err != nil {
		return value, err
	}

	response, ok := res.(RuntimeAPIResponse[Response])
	if !ok {
		return value, fmt.Errorf("%w: %T", ErrUnexpectedResponse, res)
	}
	if response.Error != nil {
		return value, response.Error
	}
	return response.Value, nil
}

// RuntimeAPIClient queries the runtime API subsystem over the overseer channel.
type RuntimeAPIClient struct {
	overseerChannel chan<- any
}

// NewRuntimeAPIClient creates a RuntimeAPIClient sending requests on the given channel.
func NewRuntimeAPIClient(overseerChannel chan<- any) *RuntimeAPIClient {
	return &RuntimeAPIClient{overseerChannel: overseerChannel}
}

// SessionIndexForChild returns the session index of a child of the given relay parent.
func (c *RuntimeAPIClient) SessionIndexForChild(ctx context.Context, parent common.Hash) (
	parachaintypes.SessionIndex, error) {
	return RequestSessionIndexForChild(ctx, c.overseerChannel, parent)
}

// SessionInfo returns the session info of the given session, or nil if it does not exist.
func (c *RuntimeAPIClient) SessionInfo(
	ctx context.Context,
	parent common.Hash,
	sessionIndex parachaintypes.SessionIndex,
) (*parachaintypes.SessionInfo, error) {
	return RequestSessionInfo(ctx, c.overseerChannel, parent, sessionIndex)
}
