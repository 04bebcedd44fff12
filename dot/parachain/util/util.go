// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package util

import (
	"context"
	"errors"
	"fmt"

	parachaintypes "github.com/ChainSafe/parachain-availability/dot/parachain/types"
	"github.com/ChainSafe/parachain-availability/lib/crypto/sr25519"
	"github.com/ChainSafe/parachain-availability/lib/keystore"
)

var ErrUnexpectedResponse = errors.New("unexpected response type")

// SigningKeyAndIndex finds the first key we can sign with from the given set of validators,
// if any, and returns it along with the validator index.
// Validators are checked in index order; identities that are not valid sr25519
// public keys are skipped.
func SigningKeyAndIndex(
	validators []parachaintypes.ValidatorID,
	ks keystore.KeypairGetter,
) (*parachaintypes.ValidatorID, parachaintypes.ValidatorIndex) {
	for i, validator := range validators {
		publicKey, err := sr25519.NewPublicKey(validator[:])
		if err != nil {
			continue
		}

		keypair := ks.GetKeypair(publicKey)
		if keypair != nil {
			validator := validator
			return &validator, parachaintypes.ValidatorIndex(i)
		}
	}
	return nil, 0
}

// Call sends the given message to the given channel and waits for a response
// until the context is done.
func Call(ctx context.Context, channel chan<- any, message any, responseChan chan any) (any, error) {
	if err := SendMessage(ctx, channel, message); err != nil {
		return nil, fmt.Errorf("send message: %w", err)
	}

	select {
	case response := <-responseChan:
		return response, nil
	case <-ctx.Done():
		return nil, fmt.Errorf("waiting for response: %w", ctx.Err())
	}
}

// SendMessage sends the given message to the given channel until the context is done.
func SendMessage(ctx context.Context, channel chan<- any, message any) error {
	select {
	case channel <- message:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
