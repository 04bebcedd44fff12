// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package keystore

import (
	"fmt"
	"sync"

	"github.com/ChainSafe/parachain-availability/lib/crypto"
)

type publicKeyBytes [32]byte

var _ Keystore = (*BasicKeystore)(nil)

// BasicKeystore holds keys of a certain type
type BasicKeystore struct {
	name Name
	typ  crypto.KeyType
	keys map[publicKeyBytes]crypto.Keypair
	lock sync.RWMutex
}

// NewBasicKeystore creates a new BasicKeystore with the given key type
func NewBasicKeystore(name Name, typ crypto.KeyType) *BasicKeystore {
	return &BasicKeystore{
		name: name,
		typ:  typ,
		keys: make(map[publicKeyBytes]crypto.Keypair),
	}
}

// Name returns the keystore's name
func (ks *BasicKeystore) Name() Name {
	return ks.name
}

// Type returns the keystore's key type
func (ks *BasicKeystore) Type() crypto.KeyType {
	return ks.typ
}

// Size returns the number of keys in the keystore
func (ks *BasicKeystore) Size() int {
	ks.lock.RLock()
	defer ks.lock.RUnlock()
	return len(ks.keys)
}

// Insert adds a keypair to the keystore
func (ks *BasicKeystore) Insert(kp crypto.Keypair) error {
	if kp.Type() != ks.typ {
		return fmt.Errorf("%w: %s", ErrKeyTypeNotSupported, kp.Type())
	}

	ks.lock.Lock()
	defer ks.lock.Unlock()
	ks.keys[toKeyBytes(kp.Public())] = kp
	return nil
}

// GetKeypair returns a keypair corresponding to the given public key, or nil if it doesn't exist
func (ks *BasicKeystore) GetKeypair(pub crypto.PublicKey) crypto.Keypair {
	ks.lock.RLock()
	defer ks.lock.RUnlock()
	return ks.keys[toKeyBytes(pub)]
}

// PublicKeys returns all public keys in the keystore
func (ks *BasicKeystore) PublicKeys() []crypto.PublicKey {
	ks.lock.RLock()
	defer ks.lock.RUnlock()

	srkeys := make([]crypto.PublicKey, 0, len(ks.keys))
	for _, kp := range ks.keys {
		srkeys = append(srkeys, kp.Public())
	}
	return srkeys
}

func toKeyBytes(pub crypto.PublicKey) (b publicKeyBytes) {
	copy(b[:], pub.Encode())
	return b
}
