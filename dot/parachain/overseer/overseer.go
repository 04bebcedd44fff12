// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package overseer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	parachaintypes "github.com/ChainSafe/parachain-availability/dot/parachain/types"
	"github.com/ChainSafe/parachain-availability/dot/parachain/util"
	"github.com/ChainSafe/parachain-availability/internal/log"
)

var (
	logger = log.NewFromGlobal(log.AddContext("pkg", "parachain-overseer"))

	errDuplicateSubsystem = errors.New("subsystem registered twice")
	errStopTimeout        = errors.New("timed out waiting for subsystems to stop")
)

const stopTimeout = 500 * time.Millisecond

// Subsystem is an interface for subsystems to be registered with the overseer.
type Subsystem interface {
	// Run starts the subsystem. It must not block.
	Run(ctx context.Context, overseerToSubSystem chan any, subSystemToOverseer chan any)
	Name() parachaintypes.SubSystemName
	// Stop stops the subsystem and waits for it to exit.
	Stop()
}

// Overseer runs the registered subsystems and routes the messages they send
// to the subsystem serving them.
type Overseer struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	SubsystemsToOverseer chan any
	subsystems           map[Subsystem]chan any // map[Subsystem]OverseerToSubSystem channel
	nameToSubsystem      map[parachaintypes.SubSystemName]Subsystem
	running              []Subsystem
}

func NewOverseer() *Overseer {
	ctx, cancel := context.WithCancel(context.Background())
	return &Overseer{
		ctx:                  ctx,
		cancel:               cancel,
		SubsystemsToOverseer: make(chan any),
		subsystems:           make(map[Subsystem]chan any),
	}
}

// RegisterSubsystem registers a subsystem with the overseer and returns the
// OverseerToSubSystem channel which is passed to the subsystem's Run method.
// Subsystems must be registered before Start is called.
func (o *Overseer) RegisterSubsystem(subsystem Subsystem) chan any {
	overseerToSubSystem := make(chan any)
	o.subsystems[subsystem] = overseerToSubSystem
	return overseerToSubSystem
}

// Start runs the registered subsystems and starts routing messages.
func (o *Overseer) Start() error {
	nameToSubsystem := make(map[parachaintypes.SubSystemName]Subsystem, len(o.subsystems))
	for subsystem := range o.subsystems {
		name := subsystem.Name()
		if _, ok := nameToSubsystem[name]; ok {
			return fmt.Errorf("%w: %s", errDuplicateSubsystem, name)
		}
		nameToSubsystem[name] = subsystem
	}
	o.nameToSubsystem = nameToSubsystem

	for subsystem, overseerToSubSystem := range o.subsystems {
		subsystem.Run(o.ctx, overseerToSubSystem, o.SubsystemsToOverseer)
		o.running = append(o.running, subsystem)
		logger.Debugf("subsystem %s started", subsystem.Name())
	}

	o.wg.Add(1)
	go o.processMessages()
	return nil
}

func (o *Overseer) processMessages() {
	defer o.wg.Done()

	for {
		select {
		case msg := <-o.SubsystemsToOverseer:
			o.route(msg)
		case <-o.ctx.Done():
			if err := o.ctx.Err(); err != nil {
				logger.Debugf("ctx error: %v", err)
			}
			logger.Info("overseer stopping")
			return
		}
	}
}

func (o *Overseer) route(msg any) {
	switch msg.(type) {
	case util.RuntimeAPIMessage[util.SessionIndexForChild],
		util.RuntimeAPIMessage[util.SessionInfoRequest]:
		o.sendTo(parachaintypes.RuntimeAPI, msg)
	default:
		logger.Errorf("unknown message type %T", msg)
	}
}

func (o *Overseer) sendTo(name parachaintypes.SubSystemName, msg any) {
	subsystem, ok := o.nameToSubsystem[name]
	if !ok {
		logger.Errorf("no subsystem %s registered for message %T", name, msg)
		return
	}

	overseerToSubSystem := o.subsystems[subsystem]
	// the sender waits on its own context for the response
	go func() {
		err := util.SendMessage(o.ctx, overseerToSubSystem, msg)
		if err != nil {
			logger.Debugf("dropping message %T for subsystem %s: %v", msg, name, err)
		}
	}()
}

// Stop stops the subsystems and the message routing.
func (o *Overseer) Stop() error {
	o.cancel()

	for _, subsystem := range o.running {
		subsystem.Stop()
	}

	if waitTimeout(&o.wg, stopTimeout) {
		return errStopTimeout
	}
	return nil
}

func waitTimeout(wg *sync.WaitGroup, timeout time.Duration) (timeouted bool) {
	c := make(chan struct{})
	go func() {
		defer close(c)
		wg.Wait()
	}()
	timeoutTimer := time.NewTimer(timeout)
	select {
	case <-c:
		if !timeoutTimer.Stop() {
			<-timeoutTimer.C
		}
		return false // completed normally
	case <-timeoutTimer.C:
		return true // timed out
	}
}
