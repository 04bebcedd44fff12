// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package keystore

import (
	"errors"

	"github.com/ChainSafe/parachain-availability/lib/crypto"
)

var (
	ErrKeyTypeNotSupported = errors.New("given key type is not supported by this keystore")
)

// Name represents a defined keystore name
type Name string

var (
	// ParaName is the keystore holding parachain validator keys.
	ParaName Name = "para"
	// AudiName is the keystore holding authority discovery keys.
	AudiName Name = "audi"
)

// KeypairGetter gets a keypair from a public key.
// It returns nil if the keystore does not hold the key.
type KeypairGetter interface {
	GetKeypair(pub crypto.PublicKey) crypto.Keypair
}

// Inserter inserts a keypair.
type Inserter interface {
	Insert(kp crypto.Keypair) error
}

// Keystore provides key management functionality
type Keystore interface {
	KeypairGetter
	Inserter
	Name() Name
	Type() crypto.KeyType
	PublicKeys() []crypto.PublicKey
	Size() int
}
