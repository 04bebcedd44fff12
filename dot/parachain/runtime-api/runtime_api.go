// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package runtimeapi

import (
	"context"
	"fmt"
	"sync"

	parachain "github.com/ChainSafe/parachain-availability/dot/parachain/runtime"
	parachaintypes "github.com/ChainSafe/parachain-availability/dot/parachain/types"
	"github.com/ChainSafe/parachain-availability/dot/parachain/util"
	"github.com/ChainSafe/parachain-availability/internal/log"
	"github.com/ChainSafe/parachain-availability/lib/common"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "parachain-runtime-api"))

// BlockState gives access to the runtime at a given block.
type BlockState interface {
	GetRuntime(blockHash common.Hash) (parachain.RuntimeInstance, error)
}

// RuntimeAPI is the subsystem answering runtime API requests of other subsystems.
type RuntimeAPI struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	blockState BlockState

	OverseerToSubSystem <-chan any
	SubSystemToOverseer chan<- any
}

// Register creates the runtime API subsystem.
func Register(overseerChan chan<- any, blockState BlockState) *RuntimeAPI {
	return &RuntimeAPI{
		blockState:          blockState,
		SubSystemToOverseer: overseerChan,
	}
}

// Run starts processing messages until Stop is called or the context is done.
func (r *RuntimeAPI) Run(ctx context.Context, overseerToSubSystem chan any, subSystemToOverseer chan any) {
	r.ctx, r.cancel = context.WithCancel(ctx)
	r.OverseerToSubSystem = overseerToSubSystem
	if subSystemToOverseer != nil {
		r.SubSystemToOverseer = subSystemToOverseer
	}

	r.wg.Add(1)
	go r.processMessages()
}

func (*RuntimeAPI) Name() parachaintypes.SubSystemName {
	return parachaintypes.RuntimeAPI
}

// Stop stops the subsystem and waits for the message loop to exit.
// It does nothing if the subsystem was never run.
func (r *RuntimeAPI) Stop() {
	if r.cancel == nil {
		return
	}
	r.cancel()
	r.wg.Wait()
}

func (r *RuntimeAPI) processMessages() {
	defer r.wg.Done()

	for {
		select {
		case msg, ok := <-r.OverseerToSubSystem:
			if !ok {
				return
			}
			r.processMessage(msg)

		case <-r.ctx.Done():
			if err := r.ctx.Err(); err != nil {
				logger.Debugf("ctx error: %v", err)
			}
			return
		}
	}
}

func (r *RuntimeAPI) processMessage(msg any) {
	switch msg := msg.(type) {
	case util.RuntimeAPIMessage[util.SessionIndexForChild]:
		var response util.RuntimeAPIResponse[parachaintypes.SessionIndex]
		rt, err := r.blockState.GetRuntime(msg.RelayParent)
		if err != nil {
			response.Error = fmt.Errorf("getting runtime for %s: %w", msg.RelayParent, err)
		} else {
			response.Value, response.Error = rt.ParachainHostSessionIndexForChild()
		}
		r.respond(msg.ResponseChannel, response)

	case util.RuntimeAPIMessage[util.SessionInfoRequest]:
		var response util.RuntimeAPIResponse[*parachaintypes.SessionInfo]
		rt, err := r.blockState.GetRuntime(msg.RelayParent)
		if err != nil {
			response.Error = fmt.Errorf("getting runtime for %s: %w", msg.RelayParent, err)
		} else {
			response.Value, response.Error = rt.ParachainHostSessionInfo(msg.Message.SessionIndex)
		}
		r.respond(msg.ResponseChannel, response)

	default:
		logger.Warnf("unhandled message type %T", msg)
	}
}

func (r *RuntimeAPI) respond(responseChannel chan any, response any) {
	select {
	case responseChannel <- response:
	case <-r.ctx.Done():
		logger.Debugf("dropping response %T: %v", response, r.ctx.Err())
	}
}
