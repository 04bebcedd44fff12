// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package crypto

// KeyType str
type KeyType = string

const (
	// Ed25519Type ed25519
	Ed25519Type KeyType = "ed25519"
	// Sr25519Type sr25519
	Sr25519Type KeyType = "sr25519"
	// Secp256k1Type secp256k1
	Secp256k1Type KeyType = "secp256k1"
	// UnknownType is used by the GenericKeystore
	UnknownType KeyType = "unknown"
)

// PublicKey interface
type PublicKey interface {
	Encode() []byte
	Hex() string
}

// Keypair interface
type Keypair interface {
	Type() KeyType
	Public() PublicKey
}
