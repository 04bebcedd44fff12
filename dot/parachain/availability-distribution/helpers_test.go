// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package availabilitydistribution

import (
	"fmt"
	"math/rand"
	"testing"

	parachaintypes "github.com/ChainSafe/parachain-availability/dot/parachain/types"
	"github.com/ChainSafe/parachain-availability/lib/common"
	"github.com/ChainSafe/parachain-availability/lib/crypto"
	"github.com/ChainSafe/parachain-availability/lib/crypto/sr25519"
	"github.com/ChainSafe/parachain-availability/lib/keystore"
	"github.com/stretchr/testify/require"
)

func discoveryKey(validator parachaintypes.ValidatorIndex) parachaintypes.AuthorityDiscoveryID {
	return parachaintypes.AuthorityDiscoveryID(common.MustBlake2bHash([]byte(fmt.Sprintf("discovery-%d", validator))))
}

func discoveryKeys(validators ...parachaintypes.ValidatorIndex) []parachaintypes.AuthorityDiscoveryID {
	keys := make([]parachaintypes.AuthorityDiscoveryID, len(validators))
	for i, v := range validators {
		keys[i] = discoveryKey(v)
	}
	return keys
}

// newRuntimeSession returns runtime session info with one sr25519 validator per index
// used in groups, and the validators' keypairs by index.
func newRuntimeSession(t *testing.T, groups [][]parachaintypes.ValidatorIndex) (
	*parachaintypes.SessionInfo, []*sr25519.Keypair) {
	t.Helper()

	var n int
	for _, group := range groups {
		for _, v := range group {
			if int(v)+1 > n {
				n = int(v) + 1
			}
		}
	}

	info := &parachaintypes.SessionInfo{
		Validators:      make([]parachaintypes.ValidatorID, n),
		DiscoveryKeys:   make([]parachaintypes.AuthorityDiscoveryID, n),
		ValidatorGroups: groups,
		NCores:          uint32(len(groups)),
	}
	keypairs := make([]*sr25519.Keypair, n)
	for i := 0; i < n; i++ {
		seed := common.MustBlake2bHash([]byte(fmt.Sprintf("validator-%d", i)))
		kp, err := sr25519.NewKeypairFromSeed(seed[:])
		require.NoError(t, err)

		keypairs[i] = kp
		info.Validators[i] = parachaintypes.ValidatorID(kp.Public().(*sr25519.PublicKey).AsBytes())
		info.DiscoveryKeys[i] = discoveryKey(parachaintypes.ValidatorIndex(i))
	}
	return info, keypairs
}

func newKeystore(t *testing.T, keypairs ...*sr25519.Keypair) *keystore.BasicKeystore {
	t.Helper()

	ks := keystore.NewBasicKeystore(keystore.ParaName, crypto.Sr25519Type)
	for _, kp := range keypairs {
		err := ks.Insert(kp)
		require.NoError(t, err)
	}
	return ks
}

func newTestCache(t *testing.T, ks keystore.KeypairGetter, runtime RuntimeAPI, cfg Config, seed int64) *SessionCache {
	t.Helper()

	cfg.Rand = rand.New(rand.NewSource(seed)) //nolint:gosec
	cache, err := NewSessionCache(ks, runtime, cfg)
	require.NoError(t, err)
	return cache
}

func copyGroups(groups [][]parachaintypes.ValidatorIndex) [][]parachaintypes.ValidatorIndex {
	copied := make([][]parachaintypes.ValidatorIndex, len(groups))
	for i, group := range groups {
		copied[i] = append([]parachaintypes.ValidatorIndex(nil), group...)
	}
	return copied
}
