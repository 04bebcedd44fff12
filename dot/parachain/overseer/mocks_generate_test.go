// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package overseer

//go:generate mockgen -destination=mocks_test.go -package=$GOPACKAGE github.com/ChainSafe/parachain-availability/dot/parachain/runtime-api BlockState
//go:generate mockgen -destination=mock_runtime_instance_test.go -package $GOPACKAGE github.com/ChainSafe/parachain-availability/dot/parachain/runtime RuntimeInstance
